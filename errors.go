package vecnd

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the sentinel for operations that are undefined for
// their inputs: near-zero divisors or magnitudes, non-3D operands to
// cross/rotate, inverted clamp ranges, and empty aggregates. Specific causes
// wrap it with context; match with errors.Is.
var ErrInvalidOperation = errors.New("invalid operation")

// ErrIndexOutOfRange indicates indexed access past the end of a vector.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (size %d)", e.Index, e.Size)
}

// ErrDimensionMismatch indicates an elementwise operation on vectors of
// unequal dimensions, or a batch operation on collections of unequal counts.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
