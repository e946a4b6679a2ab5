package multiplier

import (
	"errors"
	"testing"

	"github.com/meganmergo/piranha/coefficient"
	"github.com/meganmergo/piranha/monomial"
	"github.com/meganmergo/piranha/series"
	"github.com/meganmergo/piranha/symbols"
)

func TestAccumulatorInsertMergesAndEvicts(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x", "y")
	acc := NewAccumulator(set, 16, 0.5)

	term := func(c int64, ex, ey int16) series.Term {
		return series.Term{Coefficient: coefficient.NewInteger(c), Monomial: monomial.MustPacked(ex, ey)}
	}

	if err := acc.Insert(term(2, 1, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := acc.Insert(term(3, 1, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Len() != 1 {
		t.Fatalf("expected 1 merged entry, got %d", acc.Len())
	}

	if err := acc.Insert(term(-5, 1, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Len() != 0 {
		t.Error("merge to zero must evict the entry")
	}
}

func TestAccumulatorInsertChecksArity(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x", "y")
	acc := NewAccumulator(set, 16, 0.5)
	bad := series.Term{Coefficient: coefficient.NewInteger(1), Monomial: monomial.MustPacked(1)}
	if err := acc.Insert(bad); !errors.Is(err, series.ErrIncompatibleSymbols) {
		t.Errorf("expected ErrIncompatibleSymbols, got %v", err)
	}
}

func TestBandAccumulatorAccepts(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x")
	const capacity = 8
	lower := NewBandAccumulator(set, capacity, band{Lo: 0, Hi: 4}, 0.5)
	upper := NewBandAccumulator(set, capacity, band{Lo: 4, Hi: 8}, 0.5)

	// Every hash must be accepted by exactly one of the two bands.
	for e := int16(0); e < 100; e++ {
		h := monomial.MustPacked(e).Hash()
		inLower := lower.Accepts(h)
		inUpper := upper.Accepts(h)
		if inLower == inUpper {
			t.Fatalf("hash of [%d] accepted by %v bands", e, map[bool]string{true: "both", false: "neither"}[inLower])
		}
	}
}

func TestUnbandedAcceptsEverything(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x")
	acc := NewAccumulator(set, 16, 0.5)
	for e := int16(0); e < 50; e++ {
		if !acc.Accepts(monomial.MustPacked(e).Hash()) {
			t.Fatal("unbanded accumulator must accept every hash")
		}
	}
}

func TestAccumulatorMerge(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x")
	left := NewAccumulator(set, 16, 0.5)
	right := NewAccumulator(set, 16, 0.5)

	term := func(c int64, e int16) series.Term {
		return series.Term{Coefficient: coefficient.NewInteger(c), Monomial: monomial.MustPacked(e)}
	}

	// Overlapping keys: x^0 appears in both and x^1 cancels.
	if err := left.Insert(term(1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := left.Insert(term(4, 1)); err != nil {
		t.Fatal(err)
	}
	if err := right.Insert(term(2, 0)); err != nil {
		t.Fatal(err)
	}
	if err := right.Insert(term(-4, 1)); err != nil {
		t.Fatal(err)
	}
	if err := right.Insert(term(7, 2)); err != nil {
		t.Fatal(err)
	}

	if err := left.Merge(right); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := left.IntoSeries()
	if out.Len() != 2 {
		t.Fatalf("expected 2 entries after merge, got %d", out.Len())
	}
	c, ok := out.Find(monomial.MustPacked(0))
	if !ok || !c.Equal(coefficient.NewInteger(3)) {
		t.Error("overlapping key not merged")
	}
	if _, ok := out.Find(monomial.MustPacked(1)); ok {
		t.Error("cancelled key must be evicted during merge")
	}
	c, ok = out.Find(monomial.MustPacked(2))
	if !ok || !c.Equal(coefficient.NewInteger(7)) {
		t.Error("right-only key lost in merge")
	}
}

func TestAccumulatorAbsorbDisjoint(t *testing.T) {
	t.Parallel()

	set := symbols.MustNew("x")
	const capacity = 64
	bands := hashBands(capacity, 3)
	accs := make([]*Accumulator, len(bands))
	for k := range bands {
		accs[k] = NewBandAccumulator(set, capacity, bands[k], 0.5)
	}

	// Deposit each monomial into the accumulator owning its band, as the
	// hash-band workers would.
	const n = 200
	for e := int16(0); e < n; e++ {
		m := monomial.MustPacked(e)
		h := m.Hash()
		for k := range accs {
			if accs[k].Accepts(h) {
				term := series.Term{Coefficient: coefficient.NewInteger(int64(e) + 1), Monomial: m}
				if err := accs[k].Insert(term); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				break
			}
		}
	}

	out := NewAccumulator(set, n, 0.5)
	for k := range accs {
		out.AbsorbDisjoint(accs[k])
	}
	result := out.IntoSeries()
	if result.Len() != n {
		t.Fatalf("expected %d entries, got %d", n, result.Len())
	}
	for e := int16(0); e < n; e++ {
		c, ok := result.Find(monomial.MustPacked(e))
		if !ok || !c.Equal(coefficient.NewInteger(int64(e)+1)) {
			t.Fatalf("entry [%d] missing or corrupted after absorb", e)
		}
	}
}
