package multiplier

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/meganmergo/piranha/coefficient"
	"github.com/meganmergo/piranha/monomial"
	"github.com/meganmergo/piranha/series"
	"github.com/meganmergo/piranha/symbols"
)

// This file contains test fixtures exported for use by this package's
// tests and by external packages exercising the multiplier.

// ErrFaultInjected is the cause carried by FaultyCoefficient failures.
var ErrFaultInjected = errors.New("multiplier: injected coefficient fault")

// FaultyCoefficient is an integer-like ring element whose multiplication
// fails on demand. It exists to exercise the CoefficientError propagation
// path: a worker hitting the fault must abort its peers and surface the
// annotated error.
type FaultyCoefficient struct {
	// Value is the carried integer value.
	Value int64
	// FailMul makes every Mul call involving this value return
	// ErrFaultInjected.
	FailMul bool
}

// AddInPlace adds other into the receiver.
func (c *FaultyCoefficient) AddInPlace(other coefficient.Coefficient) error {
	o, ok := other.(*FaultyCoefficient)
	if !ok {
		return coefficient.ErrMismatchedRing
	}
	c.Value += o.Value
	return nil
}

// Mul returns the product, or ErrFaultInjected when the fault is armed.
func (c *FaultyCoefficient) Mul(other coefficient.Coefficient) (coefficient.Coefficient, error) {
	o, ok := other.(*FaultyCoefficient)
	if !ok {
		return nil, coefficient.ErrMismatchedRing
	}
	if c.FailMul || o.FailMul {
		return nil, ErrFaultInjected
	}
	return &FaultyCoefficient{Value: c.Value * o.Value}, nil
}

// Neg returns the additive inverse.
func (c *FaultyCoefficient) Neg() coefficient.Coefficient {
	return &FaultyCoefficient{Value: -c.Value, FailMul: c.FailMul}
}

// IsZero reports whether the value is zero.
func (c *FaultyCoefficient) IsZero() bool { return c.Value == 0 }

// One returns the unit with the fault disarmed.
func (c *FaultyCoefficient) One() coefficient.Coefficient {
	return &FaultyCoefficient{Value: 1}
}

// Clone returns an independent copy.
func (c *FaultyCoefficient) Clone() coefficient.Coefficient {
	cc := *c
	return &cc
}

// Equal reports value equality.
func (c *FaultyCoefficient) Equal(other coefficient.Coefficient) bool {
	o, ok := other.(*FaultyCoefficient)
	return ok && c.Value == o.Value
}

// Exact reports that the fixture ring is exact.
func (c *FaultyCoefficient) Exact() bool { return true }

// String renders the carried value.
func (c *FaultyCoefficient) String() string {
	return strconv.FormatInt(c.Value, 10)
}

// MustTerm builds an integer term over set from a symbol→exponent map.
// Symbols absent from the map get exponent zero. It panics on unknown
// symbol names; intended for tests and fixtures.
//
// Parameters:
//   - set: The symbol set.
//   - c: The integer coefficient.
//   - exps: Exponent per symbol name.
//
// Returns:
//   - series.Term: The constructed term.
func MustTerm(set *symbols.Set, c int64, exps map[string]int) series.Term {
	wide := make([]int16, set.Len())
	for name, e := range exps {
		pos, ok := set.PositionOf(name)
		if !ok {
			panic("multiplier: unknown symbol " + name)
		}
		wide[pos] = int16(e)
	}
	var m monomial.Monomial
	if set.Len() <= monomial.PackedMaxArity {
		m = monomial.MustPacked(wide...)
	} else {
		wider := make([]int32, len(wide))
		for i, e := range wide {
			wider[i] = int32(e)
		}
		m = monomial.NewVector(wider...)
	}
	return series.Term{Coefficient: coefficient.NewInteger(c), Monomial: m}
}

// MustPoly builds an integer polynomial from terms, panicking on any
// insertion error. Intended for tests and fixtures.
func MustPoly(set *symbols.Set, terms ...series.Term) *series.Series {
	s := series.NewEmpty(set, len(terms))
	for _, t := range terms {
		if err := s.Insert(t); err != nil {
			panic(err)
		}
	}
	return s
}

// RandomSeries builds a deterministic pseudo-random integer polynomial:
// up to nTerms distinct monomials over set with exponents in [0, maxExp].
// Each draw carries a non-zero coefficient in [-9, 9]; draws that hit the
// same monomial are merged, so a stored coefficient can fall outside that
// range and a merged term can cancel away. The same seed always produces
// the same series, which keeps property tests reproducible.
//
// Parameters:
//   - seed: The PRNG seed.
//   - set: The symbol set.
//   - nTerms: The number of term draws (duplicate monomials merge).
//   - maxExp: The inclusive exponent bound per symbol.
//
// Returns:
//   - *series.Series: The generated series.
func RandomSeries(seed int64, set *symbols.Set, nTerms, maxExp int) *series.Series {
	rng := rand.New(rand.NewSource(seed))
	s := series.NewEmpty(set, nTerms)
	for t := 0; t < nTerms; t++ {
		c := int64(rng.Intn(19) - 9)
		if c == 0 {
			c = 1
		}
		exps := make(map[string]int, set.Len())
		for i := 0; i < set.Len(); i++ {
			exps[set.Name(i)] = rng.Intn(maxExp + 1)
		}
		if err := s.Insert(MustTerm(set, c, exps)); err != nil {
			panic(err)
		}
	}
	return s
}
