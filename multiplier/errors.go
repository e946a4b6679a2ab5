// Package multiplier implements the parallel sparse series multiplier: the
// estimator, partitioner, term-pair kernels, merging accumulator and the
// driver that orchestrates them into the public Multiply operation.
//
// This file defines the structured error types surfaced by Multiply,
// following Go's wrapping conventions: every wrapping type implements
// Unwrap so errors.Is and errors.As work across the taxonomy.
package multiplier

import (
	"errors"
	"fmt"

	"github.com/meganmergo/piranha/symbols"
)

// ErrCancelled is returned when a multiplication is aborted through the
// caller's context. Peers observe the shared cancellation flag and stop at
// the next poll point; no partial result is returned.
var ErrCancelled = errors.New("multiplier: cancelled")

// IncompatibleSymbolsError reports that the two operands are defined over
// different symbol sets. Alignment is the caller's responsibility; the
// multiplier only verifies equality.
type IncompatibleSymbolsError struct {
	// Left and Right are the operand symbol sets.
	Left, Right *symbols.Set
}

// Error returns the error message for an IncompatibleSymbolsError.
func (e *IncompatibleSymbolsError) Error() string {
	return fmt.Sprintf("multiplier: incompatible symbol sets %s and %s", e.Left, e.Right)
}

// CoefficientError wraps an error raised by a coefficient operation during
// multiplication, annotated with the worker and term-pair that triggered
// it.
type CoefficientError struct {
	// Worker is the index of the worker that hit the error.
	Worker int
	// PairA and PairB are the term indices (into the left and right
	// operands' term snapshots) whose product triggered the error.
	PairA, PairB int
	// Cause is the underlying coefficient error.
	Cause error
}

// Error returns the error message for a CoefficientError.
func (e *CoefficientError) Error() string {
	return fmt.Sprintf("multiplier: coefficient operation failed on worker %d, pair (%d,%d): %v",
		e.Worker, e.PairA, e.PairB, e.Cause)
}

// Unwrap returns the underlying coefficient error.
func (e *CoefficientError) Unwrap() error { return e.Cause }

// InternalError reports an invariant violation detected by a debug-build
// check. It indicates a defect in the multiplier itself, never in caller
// input.
type InternalError struct {
	// Message describes the violated invariant.
	Message string
}

// Error returns the error message for an InternalError.
func (e *InternalError) Error() string {
	return "multiplier: internal invariant violated: " + e.Message
}
