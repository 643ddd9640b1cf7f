package ops

import (
	"fmt"

	"github.com/hupe1980/vecnd"
	"github.com/hupe1980/vecnd/internal/math64"
)

// Sum returns the sum of v's components. Zero for an empty vector.
func Sum(v vecnd.Vector) float64 {
	return math64.Sum(v.Data())
}

// Max returns the largest component. An empty vector is rejected.
func Max(v vecnd.Vector) (float64, error) {
	if v.Dimensions() == 0 {
		return 0, fmt.Errorf("%w: max of empty vector", vecnd.ErrInvalidOperation)
	}
	_, maxVal := math64.MinMax(v.Data())

	return maxVal, nil
}

// Min returns the smallest component. An empty vector is rejected.
func Min(v vecnd.Vector) (float64, error) {
	if v.Dimensions() == 0 {
		return 0, fmt.Errorf("%w: min of empty vector", vecnd.ErrInvalidOperation)
	}
	minVal, _ := math64.MinMax(v.Data())

	return minVal, nil
}

// Mean returns the arithmetic mean of the components. An empty vector is
// rejected.
func Mean(v vecnd.Vector) (float64, error) {
	if v.Dimensions() == 0 {
		return 0, fmt.Errorf("%w: mean of empty vector", vecnd.ErrInvalidOperation)
	}

	return math64.Sum(v.Data()) / float64(v.Dimensions()), nil
}
