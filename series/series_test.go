package series

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meganmergo/piranha/coefficient"
	"github.com/meganmergo/piranha/monomial"
	"github.com/meganmergo/piranha/symbols"
)

func TestInsertChecksArity(t *testing.T) {
	t.Parallel()

	s := NewEmpty(symbols.MustNew("x", "y"), 0)
	err := s.Insert(intTerm(1, 1, 0, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleSymbols))

	require.NoError(t, s.Insert(intTerm(1, 1, 0)))
	assert.Equal(t, 1, s.Len())
}

func TestSymbolAndConstant(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x", "y")

	x, err := Symbol(set, "x", coefficient.NewInteger(1))
	require.NoError(t, err)
	assert.Equal(t, 1, x.Len())
	c, ok := x.Find(monomial.MustPacked(1, 0))
	require.True(t, ok)
	assert.True(t, c.Equal(coefficient.NewInteger(1)))

	_, err = Symbol(set, "w", coefficient.NewInteger(1))
	require.Error(t, err)

	one := Constant(set, coefficient.NewInteger(1))
	assert.Equal(t, 1, one.Len())
	c, ok = one.Find(monomial.MustPacked(0, 0))
	require.True(t, ok)
	assert.True(t, c.Equal(coefficient.NewInteger(1)))

	zero := Constant(set, coefficient.NewInteger(0))
	assert.True(t, zero.IsZero(), "a zero constant is the empty series")
}

func TestSymbolUsesPackedKeysForSmallArity(t *testing.T) {
	t.Parallel()

	small := symbols.MustNew("a", "b", "c")
	s, err := Symbol(small, "b", coefficient.NewInteger(1))
	require.NoError(t, err)
	_, packed := s.Terms()[0].Monomial.(*monomial.Packed)
	assert.True(t, packed, "arity ≤ 8 should select the packed representation")

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	large := symbols.MustNew(names...)
	s, err = Symbol(large, "i", coefficient.NewInteger(1))
	require.NoError(t, err)
	_, vector := s.Terms()[0].Monomial.(*monomial.Vector)
	assert.True(t, vector, "arity > 8 should fall back to the vector representation")
}

func TestAddAndSub(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x", "y")
	x, err := Symbol(set, "x", coefficient.NewInteger(1))
	require.NoError(t, err)
	y, err := Symbol(set, "y", coefficient.NewInteger(1))
	require.NoError(t, err)

	sum, err := x.Add(y)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Len())

	// x + x merges into 2x.
	twoX, err := x.Add(x)
	require.NoError(t, err)
	assert.Equal(t, 1, twoX.Len())
	c, ok := twoX.Find(monomial.MustPacked(1, 0))
	require.True(t, ok)
	assert.True(t, c.Equal(coefficient.NewInteger(2)))

	// x - x cancels to the empty series.
	diff, err := x.Sub(x)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	// Operands must be untouched.
	assert.Equal(t, 1, x.Len())
	c, ok = x.Find(monomial.MustPacked(1, 0))
	require.True(t, ok)
	assert.True(t, c.Equal(coefficient.NewInteger(1)))
}

func TestAddIncompatibleSymbols(t *testing.T) {
	t.Parallel()

	x, err := Symbol(symbols.MustNew("x"), "x", coefficient.NewInteger(1))
	require.NoError(t, err)
	y, err := Symbol(symbols.MustNew("y"), "y", coefficient.NewInteger(1))
	require.NoError(t, err)

	_, err = x.Add(y)
	assert.True(t, errors.Is(err, ErrIncompatibleSymbols))
}

func TestNeg(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x")
	x, err := Symbol(set, "x", coefficient.NewInteger(3))
	require.NoError(t, err)

	n := x.Neg()
	c, ok := n.Find(monomial.MustPacked(1))
	require.True(t, ok)
	assert.True(t, c.Equal(coefficient.NewInteger(-3)))

	// Double negation round-trips.
	assert.True(t, n.Neg().Equal(x))
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x")
	s, err := Symbol(set, "x", coefficient.NewInteger(1))
	require.NoError(t, err)

	c := s.Clone()
	require.NoError(t, c.Insert(intTerm(5, 2)))
	assert.Equal(t, 1, s.Len(), "mutating the clone must not affect the original")
	assert.Equal(t, 2, c.Len())
}

func TestEqualIgnoresLayout(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x", "y")
	a := NewEmpty(set, 0)
	b := NewEmpty(set, 64)
	for i := int16(0); i < 10; i++ {
		require.NoError(t, a.Insert(Term{Coefficient: coefficient.NewInteger(int64(i) + 1), Monomial: monomial.MustPacked(i, 0)}))
	}
	for i := int16(9); i >= 0; i-- {
		require.NoError(t, b.Insert(Term{Coefficient: coefficient.NewInteger(int64(i) + 1), Monomial: monomial.MustPacked(i, 0)}))
	}
	assert.True(t, a.Equal(b), "equality must not depend on insertion order or capacity")

	require.NoError(t, b.Insert(intTerm(1, 0, 5)))
	assert.False(t, a.Equal(b))
}

func TestStringIsStable(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x")
	s := NewEmpty(set, 0)
	require.NoError(t, s.Insert(Term{Coefficient: coefficient.NewInteger(2), Monomial: monomial.MustPacked(1)}))
	require.NoError(t, s.Insert(Term{Coefficient: coefficient.NewInteger(1), Monomial: monomial.MustPacked(0)}))
	assert.Equal(t, "1·[0] + 2·[1]", s.String())
	assert.Equal(t, "0", NewEmpty(set, 0).String())
}
