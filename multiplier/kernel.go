package multiplier

import (
	"github.com/meganmergo/piranha/monomial"
	"github.com/meganmergo/piranha/series"
)

// A kernel multiplies one term pair and deposits the product into its
// bound accumulator. Order matters on the hot path: the product monomial
// and its hash come first so band-rejected pairs never pay for the
// coefficient multiplication (the expensive operation), and the filter
// runs before accumulator contact so rejected products are discarded
// without touching the table.
type kernel interface {
	// Multiply multiplies ta·tb and deposits the product if it passes the
	// band check and the filter.
	Multiply(ta, tb series.Term) error
}

// newKernel selects the kernel implementation for the given operands. The
// specialized packed kernel is chosen when both operands' keys use the
// fixed-width packed representation; its absence never changes results,
// only throughput.
func newKernel(acc *Accumulator, filter Filter, aTerms, bTerms []series.Term) kernel {
	if len(aTerms) > 0 && len(bTerms) > 0 {
		_, aPacked := aTerms[0].Monomial.(*monomial.Packed)
		_, bPacked := bTerms[0].Monomial.(*monomial.Packed)
		if aPacked && bPacked {
			return &packedKernel{acc: acc, filter: filter}
		}
	}
	return &generalKernel{acc: acc, filter: filter}
}

// generalKernel drives coefficient multiplication and monomial addition
// through their abstract operations. It works for every monomial
// representation, including mixed ones.
type generalKernel struct {
	acc    *Accumulator
	filter Filter
}

// Multiply implements the kernel contract on the general path.
func (k *generalKernel) Multiply(ta, tb series.Term) error {
	m, err := ta.Monomial.Add(tb.Monomial)
	if err != nil {
		return err
	}
	hash := m.Hash()
	if !k.acc.Accepts(hash) {
		return nil
	}
	c, err := ta.Coefficient.Mul(tb.Coefficient)
	if err != nil {
		return err
	}
	if c.IsZero() {
		return nil
	}
	if k.filter != nil && !k.filter(c, m) {
		return nil
	}
	return k.acc.insertHashed(hash, series.Term{Coefficient: c, Monomial: m})
}

// packedKernel is the specialized kernel for fixed-width packed monomials:
// the exponent add runs lane-wise into a reusable scratch key with an
// inlined rehash, and the scratch is only cloned once a product survives
// the band check. Term pairs that fall outside the worker's band therefore
// allocate nothing at all.
type packedKernel struct {
	acc     *Accumulator
	filter  Filter
	scratch monomial.Packed
}

// Multiply implements the kernel contract on the packed fast path, falling
// back to the general path for pairs whose keys are not both packed.
func (k *packedKernel) Multiply(ta, tb series.Term) error {
	pa, okA := ta.Monomial.(*monomial.Packed)
	pb, okB := tb.Monomial.(*monomial.Packed)
	if !okA || !okB {
		g := generalKernel{acc: k.acc, filter: k.filter}
		return g.Multiply(ta, tb)
	}
	pa.AddInto(pb, &k.scratch)
	hash := k.scratch.Hash()
	if !k.acc.Accepts(hash) {
		return nil
	}
	c, err := ta.Coefficient.Mul(tb.Coefficient)
	if err != nil {
		return err
	}
	if c.IsZero() {
		return nil
	}
	m := k.scratch.Clone()
	if k.filter != nil && !k.filter(c, m) {
		return nil
	}
	return k.acc.insertHashed(hash, series.Term{Coefficient: c, Monomial: m})
}
