package multiplier

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/meganmergo/piranha/coefficient"
	"github.com/meganmergo/piranha/series"
	"github.com/meganmergo/piranha/symbols"
)

// propSet is the symbol set shared by the algebraic-law properties.
var propSet = symbols.MustNew("x", "y", "z")

// propSeries derives a small random polynomial from a seed. Sizes are kept
// small so each property evaluation runs a handful of fast products.
func propSeries(seed int64) *series.Series {
	return RandomSeries(seed, propSet, 6, 4)
}

func mulSerial(t *testing.T, a, b *series.Series) *series.Series {
	t.Helper()
	got, err := MultiplyWithConfig(context.Background(), a, b, serialCfg())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

// TestRingLaws_PropertyBased verifies that multiplication over the integer
// coefficient ring satisfies the commutative-ring laws. Random seed pairs
// generate random sparse polynomials; the laws must hold for every draw.
func TestRingLaws_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("multiplication is commutative", prop.ForAll(
		func(seedF, seedG int64) bool {
			f, g := propSeries(seedF), propSeries(seedG)
			return mulSerial(t, f, g).Equal(mulSerial(t, g, f))
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("multiplication is associative", prop.ForAll(
		func(seedF, seedG, seedH int64) bool {
			f, g, h := propSeries(seedF), propSeries(seedG), propSeries(seedH)
			left := mulSerial(t, mulSerial(t, f, g), h)
			right := mulSerial(t, f, mulSerial(t, g, h))
			return left.Equal(right)
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(seedF, seedG, seedH int64) bool {
			f, g, h := propSeries(seedF), propSeries(seedG), propSeries(seedH)
			gPlusH, err := g.Add(h)
			if err != nil {
				return false
			}
			left := mulSerial(t, f, gPlusH)
			fg := mulSerial(t, f, g)
			fh := mulSerial(t, f, h)
			right, err := fg.Add(fh)
			if err != nil {
				return false
			}
			return left.Equal(right)
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))

	properties.Property("one is the multiplicative identity", prop.ForAll(
		func(seed int64) bool {
			f := propSeries(seed)
			one := series.Constant(propSet, coefficient.NewInteger(1))
			return mulSerial(t, f, one).Equal(f)
		},
		gen.Int64(),
	))

	properties.Property("zero annihilates", prop.ForAll(
		func(seed int64) bool {
			f := propSeries(seed)
			zero := series.NewEmpty(propSet, 0)
			return mulSerial(t, f, zero).IsZero()
		},
		gen.Int64(),
	))

	properties.Property("result terms are non-zero and bounded", prop.ForAll(
		func(seedF, seedG int64) bool {
			f, g := propSeries(seedF), propSeries(seedG)
			product := mulSerial(t, f, g)
			if product.Len() > f.Len()*g.Len() {
				return false
			}
			ok := true
			product.ForEach(func(term series.Term) bool {
				if term.Coefficient.IsZero() {
					ok = false
					return false
				}
				return true
			})
			return ok
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("parallel strategies agree with serial", prop.ForAll(
		func(seedF, seedG int64) bool {
			f, g := propSeries(seedF), propSeries(seedG)
			reference := mulSerial(t, f, g)
			for threads := 2; threads <= 4; threads++ {
				got, err := MultiplyWithConfig(context.Background(), f, g, parallelCfg(threads))
				if err != nil {
					return false
				}
				if !got.Equal(reference) {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestRationalRingLaws_PropertyBased spot-checks the ring laws over the
// rational ring through commutativity alone; rational AddInPlace allocates
// and normalizes, and the multiplier must not care.
func TestRationalRingLaws_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25
	properties := gopter.NewProperties(parameters)

	ratSeries := func(seed int64) *series.Series {
		ints := RandomSeries(seed, propSet, 5, 3)
		out := series.NewEmpty(propSet, ints.Len())
		ints.ForEach(func(term series.Term) bool {
			num := term.Coefficient.(*coefficient.Integer).Big().Int64()
			rat := series.Term{
				Coefficient: coefficient.NewRational(num, 3),
				Monomial:    term.Monomial.Clone(),
			}
			if err := out.Insert(rat); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			return true
		})
		return out
	}

	properties.Property("commutativity holds over rationals", prop.ForAll(
		func(seedF, seedG int64) bool {
			f, g := ratSeries(seedF), ratSeries(seedG)
			return mulSerial(t, f, g).Equal(mulSerial(t, g, f))
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}
