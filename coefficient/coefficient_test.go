package coefficient

import (
	"errors"
	"math/big"
	"testing"
)

// rings lists one representative value per concrete ring, for the shared
// contract checks.
func rings() map[string]func(int64) Coefficient {
	return map[string]func(int64) Coefficient{
		"integer":  func(v int64) Coefficient { return NewInteger(v) },
		"rational": func(v int64) Coefficient { return NewRational(v, 1) },
		"float":    func(v int64) Coefficient { return NewFloat(float64(v)) },
	}
}

func TestRingContract(t *testing.T) {
	t.Parallel()

	for name, mk := range rings() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a := mk(6)
			b := mk(7)

			prod, err := a.Mul(b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !prod.Equal(mk(42)) {
				t.Errorf("6*7: expected 42, got %s", prod)
			}

			sum := mk(6)
			if err := sum.AddInPlace(mk(7)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !sum.Equal(mk(13)) {
				t.Errorf("6+7: expected 13, got %s", sum)
			}

			if !mk(0).IsZero() {
				t.Error("zero value must report IsZero")
			}
			if mk(5).IsZero() {
				t.Error("non-zero value must not report IsZero")
			}

			neg := mk(5).Neg()
			if err := neg.AddInPlace(mk(5)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !neg.IsZero() {
				t.Errorf("x + (-x) must cancel to zero, got %s", neg)
			}

			if !mk(3).One().Equal(mk(1)) {
				t.Error("One must be the ring's multiplicative identity")
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	for name, mk := range rings() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			orig := mk(3)
			clone := orig.Clone()
			if err := clone.AddInPlace(mk(1)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !orig.Equal(mk(3)) {
				t.Errorf("mutating the clone changed the original: %s", orig)
			}
		})
	}
}

func TestMismatchedRings(t *testing.T) {
	t.Parallel()

	i := NewInteger(1)
	f := NewFloat(1)

	if err := i.AddInPlace(f); !errors.Is(err, ErrMismatchedRing) {
		t.Errorf("expected ErrMismatchedRing, got %v", err)
	}
	if _, err := f.Mul(i); !errors.Is(err, ErrMismatchedRing) {
		t.Errorf("expected ErrMismatchedRing, got %v", err)
	}
	if i.Equal(f) {
		t.Error("values from different rings must never be equal")
	}
}

func TestExactness(t *testing.T) {
	t.Parallel()

	if !NewInteger(1).Exact() {
		t.Error("integers are exact")
	}
	if !NewRational(1, 2).Exact() {
		t.Error("rationals are exact")
	}
	if NewFloat(1).Exact() {
		t.Error("floats are not exact")
	}
}

func TestIntegerBigValues(t *testing.T) {
	t.Parallel()

	big1 := new(big.Int).Lsh(big.NewInt(1), 200)
	a := NewIntegerFromBig(big1)
	prod, err := a.Mul(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 400)
	if prod.(*Integer).Big().Cmp(want) != 0 {
		t.Error("2^200 squared should be 2^400")
	}
	// The input copy must protect against later mutation of the source.
	big1.SetInt64(0)
	if a.IsZero() {
		t.Error("coefficient must not alias the caller's big.Int")
	}
}

func TestRationalReduction(t *testing.T) {
	t.Parallel()

	half := NewRational(2, 4)
	if half.String() != "1/2" {
		t.Errorf("expected 1/2, got %s", half)
	}
	third := NewRational(1, 3)
	prod, err := half.Mul(third)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !prod.Equal(NewRational(1, 6)) {
		t.Errorf("1/2 * 1/3: expected 1/6, got %s", prod)
	}
}
