package monomial

import (
	"fmt"
	"strconv"
	"strings"
)

// PackedMaxArity is the largest arity the Packed representation supports.
// Eight int16 lanes fit in a single 16-byte array, which keeps the packed
// add and hash inside one cache line.
const PackedMaxArity = 8

// Packed is the fixed-width monomial representation for low arities: up to
// eight int16 exponents in a flat array. The multiplier's specialized
// kernel selects this representation by type assertion and uses AddInto to
// sum exponents without allocating per product.
//
// Exponent overflow past int16 is the caller's concern, as with the
// reference exponent tables this mirrors.
type Packed struct {
	exps  [PackedMaxArity]int16
	arity uint8
	hash  uint64
}

// NewPacked constructs a Packed monomial from the given exponents. It
// returns an error when more than PackedMaxArity exponents are supplied.
func NewPacked(exps ...int16) (*Packed, error) {
	if len(exps) > PackedMaxArity {
		return nil, fmt.Errorf("monomial: arity %d exceeds packed maximum %d", len(exps), PackedMaxArity)
	}
	p := &Packed{arity: uint8(len(exps))}
	copy(p.exps[:], exps)
	p.rehash()
	return p, nil
}

// MustPacked is like NewPacked but panics on an oversized arity. Intended
// for tests and static monomials.
func MustPacked(exps ...int16) *Packed {
	p, err := NewPacked(exps...)
	if err != nil {
		panic(err)
	}
	return p
}

// PackedIdentity returns the identity packed monomial of the given arity.
func PackedIdentity(arity int) (*Packed, error) {
	if arity > PackedMaxArity {
		return nil, fmt.Errorf("monomial: arity %d exceeds packed maximum %d", arity, PackedMaxArity)
	}
	p := &Packed{arity: uint8(arity)}
	p.rehash()
	return p, nil
}

// rehash recomputes the cached hash from the exponents. It widens each lane
// to int32 so packed and vector monomials with equal exponents hash
// identically.
func (p *Packed) rehash() {
	var wide [PackedMaxArity]int32
	for i := 0; i < int(p.arity); i++ {
		wide[i] = int32(p.exps[i])
	}
	p.hash = hashExponents(wide[:p.arity])
}

// AddInto writes the lane-wise sum of p and o into dst and rehashes dst.
// All three may alias. The multiplier's specialized kernel calls this with
// a reusable scratch destination to avoid allocating a monomial per
// product; the general path goes through Add. The actual lane loop is
// behind packedAdd, which the amd64 build selects at init time based on
// CPU capabilities.
func (p *Packed) AddInto(o, dst *Packed) {
	dst.arity = p.arity
	packedAdd(&dst.exps, &p.exps, &o.exps)
	dst.rehash()
}

// Add returns the lane-wise sum of the receiver and other.
func (p *Packed) Add(other Monomial) (Monomial, error) {
	if other.Arity() != int(p.arity) {
		return nil, ErrArityMismatch
	}
	if o, ok := other.(*Packed); ok {
		sum := &Packed{}
		p.AddInto(o, sum)
		return sum, nil
	}
	sum := &Packed{arity: p.arity}
	for i := 0; i < int(p.arity); i++ {
		sum.exps[i] = p.exps[i] + int16(other.Exponent(i))
	}
	sum.rehash()
	return sum, nil
}

// Hash returns the cached exponent hash.
func (p *Packed) Hash() uint64 {
	return p.hash
}

// Equal reports element-wise exponent equality.
func (p *Packed) Equal(other Monomial) bool {
	if other.Arity() != int(p.arity) {
		return false
	}
	if o, ok := other.(*Packed); ok {
		return p.hash == o.hash && p.exps == o.exps
	}
	for i := 0; i < int(p.arity); i++ {
		if int(p.exps[i]) != other.Exponent(i) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether every exponent is zero.
func (p *Packed) IsIdentity() bool {
	return p.exps == [PackedMaxArity]int16{}
}

// Arity returns the number of exponents.
func (p *Packed) Arity() int {
	return int(p.arity)
}

// Exponent returns the exponent at position i.
func (p *Packed) Exponent(i int) int {
	if i >= int(p.arity) {
		panic("monomial: exponent index out of range")
	}
	return int(p.exps[i])
}

// Degree returns the sum of all exponents.
func (p *Packed) Degree() int {
	d := 0
	for i := 0; i < int(p.arity); i++ {
		d += int(p.exps[i])
	}
	return d
}

// Clone returns an independent copy.
func (p *Packed) Clone() Monomial {
	c := *p
	return &c
}

// String renders the exponent vector as "[e0 e1 ...]".
func (p *Packed) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < int(p.arity); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(p.exps[i])))
	}
	sb.WriteByte(']')
	return sb.String()
}
