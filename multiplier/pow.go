package multiplier

import (
	"context"
	"errors"

	"github.com/meganmergo/piranha/series"
)

// ErrEmptyPowerZero is returned by Pow when asked for the zeroth power of
// an empty series: the multiplicative identity requires knowing the
// coefficient ring, and an empty series names none.
var ErrEmptyPowerZero = errors.New("multiplier: zeroth power of the empty series is undefined")

// Pow raises a series to a non-negative integer power by repeated
// multiplication. Pow(s, 0) is the one-term series holding the ring's one
// on the identity monomial; Pow(s, 1) is a clone of s.
//
// Parameters:
//   - ctx: Cancellation context, threaded through every multiplication.
//   - s: The base series.
//   - n: The exponent.
//   - cfg: Tuning knobs passed to each multiplication.
//
// Returns:
//   - *series.Series: The power.
//   - error: ErrEmptyPowerZero, or any error from MultiplyWithConfig.
func Pow(ctx context.Context, s *series.Series, n uint, cfg Config) (*series.Series, error) {
	if n == 0 {
		terms := s.Terms()
		if len(terms) == 0 {
			return nil, ErrEmptyPowerZero
		}
		return series.Constant(s.Symbols(), terms[0].Coefficient.One()), nil
	}
	result := s.Clone()
	for i := uint(1); i < n; i++ {
		next, err := MultiplyWithConfig(ctx, result, s, cfg)
		if err != nil {
			return nil, err
		}
		result = next
	}
	return result, nil
}
