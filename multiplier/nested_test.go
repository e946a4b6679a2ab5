package multiplier

import (
	"context"
	"testing"

	"github.com/meganmergo/piranha/coefficient"
	"github.com/meganmergo/piranha/series"
	"github.com/meganmergo/piranha/symbols"
)

// nestedCoeff wraps an integer polynomial in y as a coefficient.
func nestedCoeff(t *testing.T, innerSet *symbols.Set, terms ...series.Term) *SeriesCoefficient {
	t.Helper()
	inner := series.NewEmpty(innerSet, len(terms))
	for _, term := range terms {
		if err := inner.Insert(term); err != nil {
			t.Fatalf("building inner series: %v", err)
		}
	}
	return NewSeriesCoefficient(inner, coefficient.NewInteger(1))
}

func TestSeriesOfSeriesMultiplication(t *testing.T) {
	t.Parallel()

	innerSet := symbols.MustNew("y")
	outerSet := symbols.MustNew("x")

	// a = (1 + y)·x, b = (1 - y)·x over the outer variable x.
	a := series.NewEmpty(outerSet, 1)
	if err := a.Insert(series.Term{
		Coefficient: nestedCoeff(t, innerSet,
			MustTerm(innerSet, 1, nil),
			MustTerm(innerSet, 1, map[string]int{"y": 1}),
		),
		Monomial: MustTerm(outerSet, 1, map[string]int{"x": 1}).Monomial,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := series.NewEmpty(outerSet, 1)
	if err := b.Insert(series.Term{
		Coefficient: nestedCoeff(t, innerSet,
			MustTerm(innerSet, 1, nil),
			MustTerm(innerSet, -1, map[string]int{"y": 1}),
		),
		Monomial: MustTerm(outerSet, 1, map[string]int{"x": 1}).Monomial,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	product, err := MultiplyWithConfig(context.Background(), a, b, serialCfg())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Len() != 1 {
		t.Fatalf("expected one outer term, got %d", product.Len())
	}

	// The x² coefficient must be (1+y)(1-y) = 1 - y².
	got, ok := product.Find(MustTerm(outerSet, 1, map[string]int{"x": 2}).Monomial)
	if !ok {
		t.Fatal("x² term missing")
	}
	want := nestedCoeff(t, innerSet,
		MustTerm(innerSet, 1, nil),
		MustTerm(innerSet, -1, map[string]int{"y": 2}),
	)
	if !got.Equal(want) {
		t.Errorf("expected inner series %s, got %s", want, got)
	}
}

func TestSeriesCoefficientRingOps(t *testing.T) {
	t.Parallel()

	innerSet := symbols.MustNew("y")
	oneY := nestedCoeff(t, innerSet, MustTerm(innerSet, 1, map[string]int{"y": 1}))

	t.Run("cancellation to zero", func(t *testing.T) {
		t.Parallel()
		sum := oneY.Clone()
		if err := sum.AddInPlace(oneY.Neg()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.IsZero() {
			t.Error("y + (-y) must be the zero series")
		}
	})

	t.Run("one", func(t *testing.T) {
		t.Parallel()
		one := oneY.One()
		prod, err := oneY.Mul(one)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !prod.Equal(oneY) {
			t.Error("y * 1 must be y")
		}
	})

	t.Run("exactness follows the inner ring", func(t *testing.T) {
		t.Parallel()
		if !oneY.Exact() {
			t.Error("nested integer series are exact")
		}
	})
}
