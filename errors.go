package cucoqu

import (
	"errors"
	"fmt"
)

// MaxSplineSegments is the largest number of quadratic segments a single
// cubic is approximated with.
const MaxSplineSegments = 100

// ErrApproxNotFound is returned when no quadratic spline of at most
// [MaxSplineSegments] segments approximates a cubic within tolerance.
var ErrApproxNotFound = errors.New("could not approximate cubic curve with a quadratic spline")

// ApproxNotFoundError describes which curve of a batch could not be
// approximated. It matches [ErrApproxNotFound] with [errors.Is].
type ApproxNotFoundError struct {
	// Index of the curve in the batch.
	Index int
	// Segments is the last segment count that was tried.
	Segments int
}

func (e *ApproxNotFoundError) Error() string {
	return fmt.Sprintf("curve %d: %s (tried %d segments)", e.Index, ErrApproxNotFound, e.Segments)
}

func (e *ApproxNotFoundError) Is(target error) bool {
	return target == ErrApproxNotFound
}
