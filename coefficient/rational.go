package coefficient

import (
	"fmt"
	"math/big"
)

// Rational is an arbitrary-precision rational coefficient backed by
// math/big.Rat. Values are kept in lowest terms by the underlying
// representation.
type Rational struct {
	v *big.Rat
}

// NewRational returns the rational num/den. It panics if den is zero,
// matching big.Rat semantics.
func NewRational(num, den int64) *Rational {
	return &Rational{v: big.NewRat(num, den)}
}

// NewRationalFromBig returns a Rational holding a copy of v.
func NewRationalFromBig(v *big.Rat) *Rational {
	return &Rational{v: new(big.Rat).Set(v)}
}

// Rat returns a copy of the underlying big.Rat value.
func (c *Rational) Rat() *big.Rat {
	return new(big.Rat).Set(c.v)
}

// AddInPlace adds other into the receiver.
func (c *Rational) AddInPlace(other Coefficient) error {
	o, ok := other.(*Rational)
	if !ok {
		return fmt.Errorf("rational += %T: %w", other, ErrMismatchedRing)
	}
	c.v.Add(c.v, o.v)
	return nil
}

// Mul returns the product of the receiver and other.
func (c *Rational) Mul(other Coefficient) (Coefficient, error) {
	o, ok := other.(*Rational)
	if !ok {
		return nil, fmt.Errorf("rational * %T: %w", other, ErrMismatchedRing)
	}
	return &Rational{v: new(big.Rat).Mul(c.v, o.v)}, nil
}

// Neg returns the additive inverse.
func (c *Rational) Neg() Coefficient {
	return &Rational{v: new(big.Rat).Neg(c.v)}
}

// IsZero reports whether the value is zero.
func (c *Rational) IsZero() bool {
	return c.v.Sign() == 0
}

// One returns the rational 1.
func (c *Rational) One() Coefficient {
	return NewRational(1, 1)
}

// Clone returns an independent copy.
func (c *Rational) Clone() Coefficient {
	return &Rational{v: new(big.Rat).Set(c.v)}
}

// Equal reports value equality with another Rational.
func (c *Rational) Equal(other Coefficient) bool {
	o, ok := other.(*Rational)
	return ok && c.v.Cmp(o.v) == 0
}

// Exact reports that rational arithmetic is exact.
func (c *Rational) Exact() bool {
	return true
}

// String renders the value as "num/den", or as "num" alone when the
// denominator is 1.
func (c *Rational) String() string {
	return c.v.RatString()
}
