package monomial

import (
	"strconv"
	"strings"
)

// Vector is the general monomial representation: one int32 exponent per
// symbol. It supports any arity. Vectors are immutable after construction;
// the hash is computed once and cached.
type Vector struct {
	exps []int32
	hash uint64
}

// NewVector constructs a Vector from the given exponents. The slice is
// copied, so the caller retains ownership of the input.
func NewVector(exps ...int32) *Vector {
	v := &Vector{exps: make([]int32, len(exps))}
	copy(v.exps, exps)
	v.hash = hashExponents(v.exps)
	return v
}

// Identity returns the identity monomial (all exponents zero) of the given
// arity.
func Identity(arity int) *Vector {
	return &Vector{exps: make([]int32, arity), hash: hashExponents(make([]int32, arity))}
}

// Add returns the element-wise sum of the receiver and other.
func (v *Vector) Add(other Monomial) (Monomial, error) {
	if other.Arity() != len(v.exps) {
		return nil, ErrArityMismatch
	}
	sum := &Vector{exps: make([]int32, len(v.exps))}
	if o, ok := other.(*Vector); ok {
		for i, e := range v.exps {
			sum.exps[i] = e + o.exps[i]
		}
	} else {
		for i, e := range v.exps {
			sum.exps[i] = e + int32(other.Exponent(i))
		}
	}
	sum.hash = hashExponents(sum.exps)
	return sum, nil
}

// Hash returns the cached exponent hash.
func (v *Vector) Hash() uint64 {
	return v.hash
}

// Equal reports element-wise exponent equality.
func (v *Vector) Equal(other Monomial) bool {
	if other.Arity() != len(v.exps) {
		return false
	}
	if o, ok := other.(*Vector); ok {
		if v.hash != o.hash {
			return false
		}
		for i, e := range v.exps {
			if o.exps[i] != e {
				return false
			}
		}
		return true
	}
	for i, e := range v.exps {
		if int(e) != other.Exponent(i) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether every exponent is zero.
func (v *Vector) IsIdentity() bool {
	for _, e := range v.exps {
		if e != 0 {
			return false
		}
	}
	return true
}

// Arity returns the number of exponents.
func (v *Vector) Arity() int {
	return len(v.exps)
}

// Exponent returns the exponent at position i.
func (v *Vector) Exponent(i int) int {
	return int(v.exps[i])
}

// Degree returns the sum of all exponents.
func (v *Vector) Degree() int {
	d := 0
	for _, e := range v.exps {
		d += int(e)
	}
	return d
}

// Clone returns an independent copy.
func (v *Vector) Clone() Monomial {
	c := &Vector{exps: make([]int32, len(v.exps)), hash: v.hash}
	copy(c.exps, v.exps)
	return c
}

// String renders the exponent vector as "[e0 e1 ...]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range v.exps {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(e)))
	}
	sb.WriteByte(']')
	return sb.String()
}
