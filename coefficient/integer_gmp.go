//go:build gmp

package coefficient

import (
	"fmt"

	"github.com/ncw/gmp"
)

// GMPInteger is an arbitrary-precision integer coefficient backed by GNU GMP
// through the cgo binding. It is a drop-in alternative to Integer for builds
// where GMP's multiplication throughput matters more than a pure-Go
// toolchain; select it with the "gmp" build tag.
type GMPInteger struct {
	v *gmp.Int
}

// NewGMPInteger returns a GMPInteger holding the given value.
func NewGMPInteger(v int64) *GMPInteger {
	return &GMPInteger{v: gmp.NewInt(v)}
}

// AddInPlace adds other into the receiver.
func (c *GMPInteger) AddInPlace(other Coefficient) error {
	o, ok := other.(*GMPInteger)
	if !ok {
		return fmt.Errorf("gmp integer += %T: %w", other, ErrMismatchedRing)
	}
	c.v.Add(c.v, o.v)
	return nil
}

// Mul returns the product of the receiver and other.
func (c *GMPInteger) Mul(other Coefficient) (Coefficient, error) {
	o, ok := other.(*GMPInteger)
	if !ok {
		return nil, fmt.Errorf("gmp integer * %T: %w", other, ErrMismatchedRing)
	}
	return &GMPInteger{v: new(gmp.Int).Mul(c.v, o.v)}, nil
}

// Neg returns the additive inverse.
func (c *GMPInteger) Neg() Coefficient {
	return &GMPInteger{v: new(gmp.Int).Neg(c.v)}
}

// IsZero reports whether the value is zero.
func (c *GMPInteger) IsZero() bool {
	return c.v.Sign() == 0
}

// One returns the integer 1.
func (c *GMPInteger) One() Coefficient {
	return NewGMPInteger(1)
}

// Clone returns an independent copy.
func (c *GMPInteger) Clone() Coefficient {
	return &GMPInteger{v: new(gmp.Int).Set(c.v)}
}

// Equal reports value equality with another GMPInteger.
func (c *GMPInteger) Equal(other Coefficient) bool {
	o, ok := other.(*GMPInteger)
	return ok && c.v.Cmp(o.v) == 0
}

// Exact reports that integer arithmetic is exact.
func (c *GMPInteger) Exact() bool {
	return true
}

// String renders the value in base 10.
func (c *GMPInteger) String() string {
	return c.v.String()
}
