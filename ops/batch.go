package ops

import (
	"fmt"

	"github.com/hupe1980/vecnd"
)

// checkCounts rejects collections of unequal counts. Reported as a
// dimension mismatch at the collection level.
func checkCounts(op string, a, b int) error {
	if a != b {
		return fmt.Errorf("%s: collection count %w", op, &vecnd.ErrDimensionMismatch{Expected: a, Actual: b})
	}

	return nil
}

// BatchAdd adds the vectors of a and b pairwise, producing a collection of
// the same count. The collections must have equal counts, and every pair
// must have equal dimensions.
func BatchAdd(a, b []vecnd.Vector) ([]vecnd.Vector, error) {
	if err := checkCounts("batch add", len(a), len(b)); err != nil {
		return nil, err
	}

	out := make([]vecnd.Vector, len(a))
	for i := range a {
		sum, err := a[i].Add(b[i])
		if err != nil {
			return nil, fmt.Errorf("batch add: pair %d: %w", i, err)
		}
		out[i] = sum
	}

	return out, nil
}

// BatchDot computes the dot product of the vectors of a and b pairwise,
// producing a collection of scalars. Same pairing discipline as BatchAdd.
func BatchDot(a, b []vecnd.Vector) ([]float64, error) {
	if err := checkCounts("batch dot product", len(a), len(b)); err != nil {
		return nil, err
	}

	out := make([]float64, len(a))
	for i := range a {
		dot, err := a[i].Dot(b[i])
		if err != nil {
			return nil, fmt.Errorf("batch dot product: pair %d: %w", i, err)
		}
		out[i] = dot
	}

	return out, nil
}
