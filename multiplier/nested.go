package multiplier

import (
	"context"
	"fmt"

	"github.com/meganmergo/piranha/coefficient"
	"github.com/meganmergo/piranha/series"
)

// SeriesCoefficient adapts a series to the coefficient.Coefficient
// interface, enabling series-of-series multiplication: the outer
// multiplier recurses through coefficient multiplication, which here is a
// serial inner multiplication. The adapter lives in this package rather
// than in coefficient because it needs the driver.
type SeriesCoefficient struct {
	s *series.Series
	// unit is a prototype of the inner ring's one, kept so One works even
	// when the wrapped series has cancelled down to zero terms.
	unit coefficient.Coefficient
}

// NewSeriesCoefficient wraps a series as a ring element. unit must be the
// multiplicative identity of the inner coefficient ring.
func NewSeriesCoefficient(s *series.Series, unit coefficient.Coefficient) *SeriesCoefficient {
	return &SeriesCoefficient{s: s, unit: unit}
}

// Series returns the wrapped series.
func (c *SeriesCoefficient) Series() *series.Series {
	return c.s
}

// AddInPlace adds other into the receiver.
func (c *SeriesCoefficient) AddInPlace(other coefficient.Coefficient) error {
	o, ok := other.(*SeriesCoefficient)
	if !ok {
		return fmt.Errorf("series += %T: %w", other, coefficient.ErrMismatchedRing)
	}
	sum, err := c.s.Add(o.s)
	if err != nil {
		return err
	}
	c.s = sum
	return nil
}

// Mul returns the product of the receiver and other, computed with the
// serial driver path: the outer multiplication already owns the worker
// pool, so nested products stay on their caller's goroutine.
func (c *SeriesCoefficient) Mul(other coefficient.Coefficient) (coefficient.Coefficient, error) {
	o, ok := other.(*SeriesCoefficient)
	if !ok {
		return nil, fmt.Errorf("series * %T: %w", other, coefficient.ErrMismatchedRing)
	}
	cfg := Config{ThreadCount: 1}
	prod, err := MultiplyWithConfig(context.Background(), c.s, o.s, cfg)
	if err != nil {
		return nil, err
	}
	return &SeriesCoefficient{s: prod, unit: c.unit}, nil
}

// Neg returns the additive inverse.
func (c *SeriesCoefficient) Neg() coefficient.Coefficient {
	return &SeriesCoefficient{s: c.s.Neg(), unit: c.unit}
}

// IsZero reports whether the wrapped series is empty.
func (c *SeriesCoefficient) IsZero() bool {
	return c.s.IsZero()
}

// One returns the one-term series holding the inner ring's one on the
// identity monomial.
func (c *SeriesCoefficient) One() coefficient.Coefficient {
	return &SeriesCoefficient{
		s:    series.Constant(c.s.Symbols(), c.unit.Clone()),
		unit: c.unit,
	}
}

// Clone returns an independent deep copy.
func (c *SeriesCoefficient) Clone() coefficient.Coefficient {
	return &SeriesCoefficient{s: c.s.Clone(), unit: c.unit}
}

// Equal reports whether other wraps an equal series.
func (c *SeriesCoefficient) Equal(other coefficient.Coefficient) bool {
	o, ok := other.(*SeriesCoefficient)
	return ok && c.s.Equal(o.s)
}

// Exact reports the exactness of the inner ring.
func (c *SeriesCoefficient) Exact() bool {
	return c.unit.Exact()
}

// String renders the wrapped series.
func (c *SeriesCoefficient) String() string {
	return "(" + c.s.String() + ")"
}
