// Command generate-golden regenerates the golden term counts for the
// benchmark polynomial products used by the multiplier tests. The counts
// are computed with the serial path, which serves as the oracle the
// parallel strategies are checked against.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meganmergo/piranha/multiplier"
	"github.com/meganmergo/piranha/series"
	"github.com/meganmergo/piranha/symbols"
)

// GoldenCase records one product's expected cardinality.
type GoldenCase struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

func main() {
	outputDir := flag.String("out", "multiplier/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "multiply_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	ctx := context.Background()
	serial := multiplier.Config{ThreadCount: 1}

	var data []GoldenCase
	for _, c := range []struct {
		name string
		mk   func() (*series.Series, *series.Series, error)
	}{
		{"dense", denseOperands},
		{"dense_cancel", denseCancelOperands},
		{"sparse", sparseOperands},
		{"sparse_cancel", sparseCancelOperands},
	} {
		left, right, err := c.mk()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building %s operands: %v\n", c.name, err)
			os.Exit(1)
		}
		product, err := multiplier.MultiplyWithConfig(ctx, left, right, serial)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error multiplying %s: %v\n", c.name, err)
			os.Exit(1)
		}
		data = append(data, GoldenCase{Name: c.name, Size: product.Len()})
		fmt.Printf("Generated %s: %d terms\n", c.name, product.Len())
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// denseBase builds (1 + sx·x + y + z + t)^10 over {x, y, z, t}, with sx
// controlling the sign of the x term.
func denseBase(sx int64) (*series.Series, error) {
	set := symbols.MustNew("x", "y", "z", "t")
	base := multiplier.MustPoly(set,
		multiplier.MustTerm(set, 1, nil),
		multiplier.MustTerm(set, sx, map[string]int{"x": 1}),
		multiplier.MustTerm(set, 1, map[string]int{"y": 1}),
		multiplier.MustTerm(set, 1, map[string]int{"z": 1}),
		multiplier.MustTerm(set, 1, map[string]int{"t": 1}),
	)
	return multiplier.Pow(context.Background(), base, 10, multiplier.Config{ThreadCount: 1})
}

func denseOperands() (*series.Series, *series.Series, error) {
	f, err := denseBase(1)
	if err != nil {
		return nil, nil, err
	}
	one := multiplier.MustPoly(f.Symbols(), multiplier.MustTerm(f.Symbols(), 1, nil))
	g, err := f.Add(one)
	if err != nil {
		return nil, nil, err
	}
	return f, g, nil
}

func denseCancelOperands() (*series.Series, *series.Series, error) {
	f, err := denseBase(1)
	if err != nil {
		return nil, nil, err
	}
	h, err := denseBase(-1)
	if err != nil {
		return nil, nil, err
	}
	return f, h, nil
}

// sparseBase builds (1 + a·x + b·y + 2z² + 3t³ + 5u⁵)-shaped operands over
// {x, y, z, t, u} raised to the eighth power, per the exps/coefs tables.
func sparseBase(coefs map[string]int64, exps map[string]int) (*series.Series, error) {
	set := symbols.MustNew("x", "y", "z", "t", "u")
	terms := []series.Term{multiplier.MustTerm(set, 1, nil)}
	for name, c := range coefs {
		terms = append(terms, multiplier.MustTerm(set, c, map[string]int{name: exps[name]}))
	}
	base := multiplier.MustPoly(set, terms...)
	return multiplier.Pow(context.Background(), base, 8, multiplier.Config{ThreadCount: 1})
}

func sparseOperands() (*series.Series, *series.Series, error) {
	f, err := sparseBase(
		map[string]int64{"x": 1, "y": 1, "z": 2, "t": 3, "u": 5},
		map[string]int{"x": 1, "y": 1, "z": 2, "t": 3, "u": 5},
	)
	if err != nil {
		return nil, nil, err
	}
	g, err := sparseBase(
		map[string]int64{"u": 1, "t": 1, "z": 2, "y": 3, "x": 5},
		map[string]int{"u": 1, "t": 1, "z": 2, "y": 3, "x": 5},
	)
	if err != nil {
		return nil, nil, err
	}
	return f, g, nil
}

func sparseCancelOperands() (*series.Series, *series.Series, error) {
	f, err := sparseBase(
		map[string]int64{"x": 1, "y": 1, "z": 2, "t": 3, "u": 5},
		map[string]int{"x": 1, "y": 1, "z": 2, "t": 3, "u": 5},
	)
	if err != nil {
		return nil, nil, err
	}
	h, err := sparseBase(
		map[string]int64{"u": -1, "t": 1, "z": 2, "y": 3, "x": 5},
		map[string]int{"u": 1, "t": 1, "z": 2, "y": 3, "x": 5},
	)
	if err != nil {
		return nil, nil, err
	}
	return f, h, nil
}
