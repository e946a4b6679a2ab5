// Package series implements the sparse series container: a mapping from
// monomial to non-zero coefficient, held in a specialized open-addressing
// hash table, together with the symbol set over which the monomials are
// defined.
//
// The container supports the additive operations needed around
// multiplication (insert-with-merge, Add, Sub, Neg); multiplication itself
// lives in the multiplier package.
package series

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/meganmergo/piranha/coefficient"
	"github.com/meganmergo/piranha/monomial"
	"github.com/meganmergo/piranha/symbols"
)

// ErrIncompatibleSymbols is returned when an operation mixes series or
// terms defined over different symbol sets.
var ErrIncompatibleSymbols = errors.New("series: incompatible symbol sets")

// Series is a sparse multivariate series: monomial → non-zero coefficient.
// Monomial positions are interpreted against the series' symbol set.
//
// A Series is safe for concurrent reads but not for concurrent mutation.
type Series struct {
	syms *symbols.Set
	tab  *Table
}

// NewEmpty creates an empty series over the given symbol set, pre-sized for
// capacity terms.
//
// Parameters:
//   - set: The symbol set the series' monomials are defined over.
//   - capacity: The expected number of terms (0 for the default).
//
// Returns:
//   - *Series: The empty series.
func NewEmpty(set *symbols.Set, capacity int) *Series {
	return &Series{syms: set, tab: NewTable(capacity, DefaultMaxLoadFactor)}
}

// FromTable wraps an already-populated table into a series. This is the
// hand-off point the multiplier uses after assembling an output table; the
// table's monomials must all have arity set.Len().
func FromTable(set *symbols.Set, tab *Table) *Series {
	return &Series{syms: set, tab: tab}
}

// Symbols returns the symbol set the series is defined over.
func (s *Series) Symbols() *symbols.Set {
	return s.syms
}

// Len returns the number of terms.
func (s *Series) Len() int {
	return s.tab.Len()
}

// IsZero reports whether the series has no terms.
func (s *Series) IsZero() bool {
	return s.tab.Len() == 0
}

// Insert adds a term to the series, merging coefficients when the monomial
// is already present and evicting the entry if the merge yields zero. The
// series takes ownership of the term's coefficient.
//
// Parameters:
//   - t: The term to insert.
//
// Returns:
//   - error: ErrIncompatibleSymbols if the monomial arity disagrees with
//     the symbol set, or a coefficient error from the merge.
func (s *Series) Insert(t Term) error {
	if t.Monomial.Arity() != s.syms.Len() {
		return fmt.Errorf("%w: monomial arity %d over %s", ErrIncompatibleSymbols, t.Monomial.Arity(), s.syms)
	}
	return s.tab.Insert(t)
}

// Find returns the coefficient stored under the given monomial. The
// returned coefficient shares storage with the series and must be treated
// as read-only.
func (s *Series) Find(m monomial.Monomial) (coefficient.Coefficient, bool) {
	t, ok := s.tab.Find(m)
	if !ok {
		return nil, false
	}
	return t.Coefficient, true
}

// ForEach visits every term in arbitrary order. Iteration stops early when
// fn returns false. Visited terms share storage with the series.
func (s *Series) ForEach(fn func(Term) bool) {
	s.tab.ForEach(fn)
}

// Terms returns a snapshot slice of the series' terms in arbitrary order.
// The slice is fresh but the terms share storage with the series.
func (s *Series) Terms() []Term {
	out := make([]Term, 0, s.tab.Len())
	s.tab.ForEach(func(t Term) bool {
		out = append(out, t)
		return true
	})
	return out
}

// Clone returns a deep copy of the series.
func (s *Series) Clone() *Series {
	c := NewEmpty(s.syms, s.Len())
	s.tab.ForEach(func(t Term) bool {
		// Fresh keys cannot collide, so any insert error would be a
		// coefficient-ring defect; terms inside a series share one ring.
		_ = c.tab.InsertHashed(t.Monomial.Hash(), t.Clone())
		return true
	})
	return c
}

// Add returns the sum of s and o as a new series.
//
// Returns:
//   - *Series: The sum.
//   - error: ErrIncompatibleSymbols when the symbol sets differ, or a
//     coefficient error from merging.
func (s *Series) Add(o *Series) (*Series, error) {
	if !s.syms.Equal(o.syms) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrIncompatibleSymbols, s.syms, o.syms)
	}
	sum := s.Clone()
	var mergeErr error
	o.tab.ForEach(func(t Term) bool {
		if err := sum.tab.InsertHashed(t.Monomial.Hash(), t.Clone()); err != nil {
			mergeErr = err
			return false
		}
		return true
	})
	if mergeErr != nil {
		return nil, mergeErr
	}
	return sum, nil
}

// Sub returns the difference s - o as a new series.
func (s *Series) Sub(o *Series) (*Series, error) {
	return s.Add(o.Neg())
}

// Neg returns the additive inverse of the series as a new series.
func (s *Series) Neg() *Series {
	n := NewEmpty(s.syms, s.Len())
	s.tab.ForEach(func(t Term) bool {
		_ = n.tab.InsertHashed(t.Monomial.Hash(), Term{Coefficient: t.Coefficient.Neg(), Monomial: t.Monomial.Clone()})
		return true
	})
	return n
}

// Equal reports whether two series hold the same terms over the same
// symbol set. Storage layout and term order are irrelevant.
func (s *Series) Equal(o *Series) bool {
	if !s.syms.Equal(o.syms) || s.Len() != o.Len() {
		return false
	}
	equal := true
	s.tab.ForEach(func(t Term) bool {
		ot, ok := o.tab.Find(t.Monomial)
		if !ok || !ot.Coefficient.Equal(t.Coefficient) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// String renders the series with terms sorted by degree then exponents, so
// output is stable across table layouts. Intended for diagnostics and
// tests, not for performance.
func (s *Series) String() string {
	terms := s.Terms()
	sort.Slice(terms, func(i, j int) bool {
		a, b := terms[i].Monomial, terms[j].Monomial
		if a.Degree() != b.Degree() {
			return a.Degree() < b.Degree()
		}
		for k := 0; k < a.Arity(); k++ {
			if a.Exponent(k) != b.Exponent(k) {
				return a.Exponent(k) < b.Exponent(k)
			}
		}
		return false
	})
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}
