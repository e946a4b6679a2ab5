package series

import (
	"github.com/meganmergo/piranha/coefficient"
	"github.com/meganmergo/piranha/monomial"
)

// Term is a (coefficient, monomial) pair. Every term held by a series has a
// non-zero coefficient; that invariant is maintained by the container, not
// by Term itself.
type Term struct {
	Coefficient coefficient.Coefficient
	Monomial    monomial.Monomial
}

// Clone returns a deep copy of the term. The monomial is cloned as well
// even though monomials are immutable, so the copy shares nothing with the
// original.
func (t Term) Clone() Term {
	return Term{
		Coefficient: t.Coefficient.Clone(),
		Monomial:    t.Monomial.Clone(),
	}
}

// String renders the term as "coefficient·monomial".
func (t Term) String() string {
	return t.Coefficient.String() + "·" + t.Monomial.String()
}
