package rangetree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPointSet is returned when a tree is built from no points.
	ErrEmptyPointSet = errors.New("rangetree: empty point set")

	// ErrInvalidDimension is returned for fewer than two dimensions.
	ErrInvalidDimension = errors.New("rangetree: invalid dimension")

	// ErrDimensionMismatch matches every *DimensionMismatchError.
	ErrDimensionMismatch = errors.New("rangetree: dimension mismatch")

	// ErrInvalidCoordinate is returned for NaN coordinates in points or queries.
	ErrInvalidCoordinate = errors.New("rangetree: invalid coordinate")

	// ErrTooManyPoints is returned when point indices would not fit the
	// 32-bit ids that Report returns.
	ErrTooManyPoints = errors.New("rangetree: too many points")

	// ErrCorrupt reports a broken structural invariant. It signals a bug, never
	// bad input, and a tree that produced it must not be queried.
	ErrCorrupt = errors.New("rangetree: structure invariant violated")
)

// DimensionMismatchError indicates a point or query whose coordinate count
// differs from the tree's dimensionality.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("rangetree: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrDimensionMismatch) hold.
func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorrupt}, args...)...)
}
