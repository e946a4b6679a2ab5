package multiplier

import (
	"fmt"

	"github.com/meganmergo/piranha/series"
	"github.com/meganmergo/piranha/symbols"
)

// band is a contiguous range [Lo, Hi) of bucket indices in the shared
// output table's bucket space. In hash-band mode each worker deposits only
// products whose bucket falls inside its band; bands partition the bucket
// space, so worker outputs are key-disjoint by construction.
type band struct {
	Lo, Hi uint64
}

// contains reports whether bucket b falls inside the band.
func (bd band) contains(b uint64) bool {
	return b >= bd.Lo && b < bd.Hi
}

// Accumulator is the mutable merging hash table a worker deposits product
// terms into. Inserting an existing monomial folds the coefficients with
// AddInPlace and evicts the entry when the sum cancels to zero, so every
// stored coefficient is non-zero at all observer-visible moments.
//
// Each worker owns a private Accumulator for the duration of one
// multiplication; there is no lock on the insert path. Cross-worker
// conflicts are prevented by the partitioning strategy, not by locking.
type Accumulator struct {
	syms *symbols.Set
	tab  *series.Table

	// sharedMask is C-1 for the shared output capacity C chosen by the
	// estimator. Band classification always uses this mask, even after
	// the private table resizes, so a mid-flight resize never moves a
	// product into another worker's band.
	sharedMask uint64
	band       band
	banded     bool
}

// NewAccumulator creates an unbanded accumulator over the given symbol
// set, pre-sized for capacity terms. Unbanded accumulators accept every
// product; the serial path and the row-band workers use them.
func NewAccumulator(set *symbols.Set, capacity int, maxLoad float64) *Accumulator {
	return &Accumulator{
		syms: set,
		tab:  series.NewTable(capacity, maxLoad),
	}
}

// NewBandAccumulator creates an accumulator that accepts only products
// whose bucket under the shared capacity falls inside bd. sharedCapacity
// must be a power of two; the private table is pre-sized for the band's
// expected share of the output.
func NewBandAccumulator(set *symbols.Set, sharedCapacity int, bd band, maxLoad float64) *Accumulator {
	expected := int(float64(bd.Hi-bd.Lo) * maxLoad)
	return &Accumulator{
		syms:       set,
		tab:        series.NewTable(expected, maxLoad),
		sharedMask: uint64(sharedCapacity - 1),
		band:       bd,
		banded:     true,
	}
}

// Accepts reports whether a product monomial with the given hash belongs
// to this accumulator's band. Unbanded accumulators accept everything.
// Kernels call this before the coefficient multiplication, so pairs
// outside the band cost only a monomial add and a hash.
func (a *Accumulator) Accepts(hash uint64) bool {
	return !a.banded || a.band.contains(hash&a.sharedMask)
}

// Insert deposits a term, merging and zero-evicting per the table
// contract.
//
// Parameters:
//   - t: The term to deposit; its coefficient must be non-zero.
//
// Returns:
//   - error: series.ErrIncompatibleSymbols (wrapped) if the monomial arity
//     disagrees with the owning symbol set, or a coefficient error from
//     the merge.
func (a *Accumulator) Insert(t series.Term) error {
	if t.Monomial.Arity() != a.syms.Len() {
		return fmt.Errorf("%w: monomial arity %d over %s", series.ErrIncompatibleSymbols, t.Monomial.Arity(), a.syms)
	}
	return a.tab.InsertHashed(t.Monomial.Hash(), t)
}

// insertHashed is Insert with a precomputed hash and without the arity
// check; kernels validate arity once per multiplication, not per product.
func (a *Accumulator) insertHashed(hash uint64, t series.Term) error {
	return a.tab.InsertHashed(hash, t)
}

// Len returns the number of stored terms.
func (a *Accumulator) Len() int {
	return a.tab.Len()
}

// ForEach visits every stored term in arbitrary order. Visited terms share
// storage with the accumulator.
func (a *Accumulator) ForEach(fn func(series.Term) bool) {
	a.tab.ForEach(fn)
}

// Merge folds other into a with coefficient merging, preserving the
// non-zero invariant. Used by the row-band strategy, whose workers produce
// overlapping keys.
//
// Parameters:
//   - other: The accumulator to fold in; it is left unusable.
//
// Returns:
//   - error: The first coefficient error encountered.
func (a *Accumulator) Merge(other *Accumulator) error {
	var mergeErr error
	other.tab.ForEach(func(t series.Term) bool {
		if err := a.tab.InsertHashed(t.Monomial.Hash(), t); err != nil {
			mergeErr = err
			return false
		}
		return true
	})
	return mergeErr
}

// AbsorbDisjoint moves other's entries into a without coefficient
// operations, assuming key-disjointness. This is the cheap union for
// hash-band results: bands partition the bucket space, so no monomial can
// appear in two band accumulators.
func (a *Accumulator) AbsorbDisjoint(other *Accumulator) {
	a.tab.AbsorbDisjoint(other.tab)
}

// IntoSeries hands the accumulated table off as a series over the owning
// symbol set. The accumulator must not be used afterwards.
func (a *Accumulator) IntoSeries() *series.Series {
	return series.FromTable(a.syms, a.tab)
}
