// Package monomial implements the exponent-vector keys of a series. A
// monomial is an ordered sequence of integer exponents, one per symbol of
// the owning symbol set; the monomial itself carries no symbol names.
//
// Two implementations are provided. Vector is the general representation
// with one int32 exponent per symbol. Packed stores up to eight int16
// exponents in a fixed array and is the fast path the multiplier's
// specialized kernel selects through a type assertion; its presence changes
// throughput only, never results.
package monomial

import (
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
)

// ErrArityMismatch is returned when a binary operation receives monomials
// of different arities.
var ErrArityMismatch = errors.New("monomial: arity mismatch")

// Monomial is the key capability set the series container and the
// multiplier require. Implementations are immutable after construction and
// therefore safe for concurrent reads.
type Monomial interface {
	// Add returns the element-wise sum of the receiver and other as a new
	// monomial. Returns ErrArityMismatch if the arities differ.
	Add(other Monomial) (Monomial, error)

	// Hash returns a well-mixed 64-bit hash of the exponents. Monomials
	// with equal arity and equal exponents hash identically, across
	// implementations.
	Hash() uint64

	// Equal reports element-wise exponent equality. Monomials of different
	// arity are never equal.
	Equal(other Monomial) bool

	// IsIdentity reports whether every exponent is zero, i.e. the monomial
	// is the multiplicative identity.
	IsIdentity() bool

	// Arity returns the number of exponents.
	Arity() int

	// Exponent returns the exponent at position i.
	Exponent(i int) int

	// Degree returns the sum of all exponents.
	Degree() int

	// Clone returns an independent copy.
	Clone() Monomial

	// String renders the exponent vector for diagnostics.
	String() string
}

// hashExponents hashes exponents in a representation-independent way: each
// exponent is widened to int32 and serialized little-endian. Vector and
// Packed feed this same canonical byte stream, so equal monomials hash
// identically regardless of representation.
func hashExponents(exps []int32) uint64 {
	if len(exps) <= 16 {
		var buf [64]byte
		for i, e := range exps {
			binary.LittleEndian.PutUint32(buf[4*i:], uint32(e))
		}
		return xxhash.Sum64(buf[:4*len(exps)])
	}
	buf := make([]byte, 4*len(exps))
	for i, e := range exps {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(e))
	}
	return xxhash.Sum64(buf)
}
