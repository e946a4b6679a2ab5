package coefficient

import (
	"fmt"
	"math/big"
)

// Integer is an arbitrary-precision integer coefficient backed by math/big.
// The zero value is not usable; construct values with NewInteger or
// NewIntegerFromBig.
type Integer struct {
	v *big.Int
}

// NewInteger returns an Integer holding the given value.
func NewInteger(v int64) *Integer {
	return &Integer{v: big.NewInt(v)}
}

// NewIntegerFromBig returns an Integer holding a copy of v.
// The input is copied so later mutations of v do not leak into the
// coefficient.
func NewIntegerFromBig(v *big.Int) *Integer {
	return &Integer{v: new(big.Int).Set(v)}
}

// Big returns a copy of the underlying big.Int value.
func (c *Integer) Big() *big.Int {
	return new(big.Int).Set(c.v)
}

// AddInPlace adds other into the receiver.
func (c *Integer) AddInPlace(other Coefficient) error {
	o, ok := other.(*Integer)
	if !ok {
		return fmt.Errorf("integer += %T: %w", other, ErrMismatchedRing)
	}
	c.v.Add(c.v, o.v)
	return nil
}

// Mul returns the product of the receiver and other.
func (c *Integer) Mul(other Coefficient) (Coefficient, error) {
	o, ok := other.(*Integer)
	if !ok {
		return nil, fmt.Errorf("integer * %T: %w", other, ErrMismatchedRing)
	}
	return &Integer{v: new(big.Int).Mul(c.v, o.v)}, nil
}

// Neg returns the additive inverse.
func (c *Integer) Neg() Coefficient {
	return &Integer{v: new(big.Int).Neg(c.v)}
}

// IsZero reports whether the value is zero.
func (c *Integer) IsZero() bool {
	return c.v.Sign() == 0
}

// One returns the integer 1.
func (c *Integer) One() Coefficient {
	return NewInteger(1)
}

// Clone returns an independent copy.
func (c *Integer) Clone() Coefficient {
	return &Integer{v: new(big.Int).Set(c.v)}
}

// Equal reports value equality with another Integer.
func (c *Integer) Equal(other Coefficient) bool {
	o, ok := other.(*Integer)
	return ok && c.v.Cmp(o.v) == 0
}

// Exact reports that integer arithmetic is exact.
func (c *Integer) Exact() bool {
	return true
}

// String renders the value in base 10.
func (c *Integer) String() string {
	return c.v.String()
}
