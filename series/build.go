package series

import (
	"fmt"

	"github.com/meganmergo/piranha/coefficient"
	"github.com/meganmergo/piranha/monomial"
	"github.com/meganmergo/piranha/symbols"
)

// newKey builds a monomial over the given symbol set with a single non-zero
// exponent. Sets of arity up to monomial.PackedMaxArity get the packed
// representation so the multiplier's specialized kernel applies; larger
// sets fall back to the general vector.
func newKey(arity, pos, exp int) monomial.Monomial {
	if arity <= monomial.PackedMaxArity {
		exps := make([]int16, arity)
		if pos >= 0 {
			exps[pos] = int16(exp)
		}
		return monomial.MustPacked(exps...)
	}
	exps := make([]int32, arity)
	if pos >= 0 {
		exps[pos] = int32(exp)
	}
	return monomial.NewVector(exps...)
}

// Symbol returns the one-term series c·name over the given symbol set.
//
// Parameters:
//   - set: The symbol set; name must be a member.
//   - name: The symbol to raise to the first power.
//   - c: The coefficient; usually the ring's one.
//
// Returns:
//   - *Series: The one-term series.
//   - error: An error if name is not a member of set.
func Symbol(set *symbols.Set, name string, c coefficient.Coefficient) (*Series, error) {
	pos, ok := set.PositionOf(name)
	if !ok {
		return nil, fmt.Errorf("series: symbol %q is not in %s", name, set)
	}
	s := NewEmpty(set, 1)
	if err := s.Insert(Term{Coefficient: c, Monomial: newKey(set.Len(), pos, 1)}); err != nil {
		return nil, err
	}
	return s, nil
}

// Constant returns the one-term series holding c on the identity monomial,
// or the empty series when c is zero.
func Constant(set *symbols.Set, c coefficient.Coefficient) *Series {
	s := NewEmpty(set, 1)
	_ = s.Insert(Term{Coefficient: c, Monomial: newKey(set.Len(), -1, 0)})
	return s
}
