package ops

import (
	"fmt"

	"github.com/hupe1980/vecnd"
)

// Centroid returns the arithmetic mean of a non-empty collection: the sum of
// all vectors divided by their count. All vectors must have equal dimensions.
func Centroid(vectors []vecnd.Vector) (vecnd.Vector, error) {
	if len(vectors) == 0 {
		return vecnd.Vector{}, fmt.Errorf("%w: centroid of empty collection", vecnd.ErrInvalidOperation)
	}

	sum := vectors[0].Clone()
	for i := 1; i < len(vectors); i++ {
		s, err := sum.Add(vectors[i])
		if err != nil {
			return vecnd.Vector{}, fmt.Errorf("centroid: vector %d: %w", i, err)
		}
		sum = s
	}

	return sum.Div(float64(len(vectors)))
}

// WeightedAverage returns sum(v_i * w_i) / sum(w_i). The vectors and weights
// collections must have equal counts; empty input and a near-zero total
// weight are rejected.
func WeightedAverage(vectors []vecnd.Vector, weights []float64) (vecnd.Vector, error) {
	if len(vectors) == 0 {
		return vecnd.Vector{}, fmt.Errorf("%w: weighted average of empty collection", vecnd.ErrInvalidOperation)
	}
	if err := checkCounts("weighted average", len(vectors), len(weights)); err != nil {
		return vecnd.Vector{}, err
	}

	sum := vectors[0].Scale(weights[0])
	total := weights[0]
	for i := 1; i < len(vectors); i++ {
		s, err := sum.Add(vectors[i].Scale(weights[i]))
		if err != nil {
			return vecnd.Vector{}, fmt.Errorf("weighted average: vector %d: %w", i, err)
		}
		sum = s
		total += weights[i]
	}

	// Div rejects a near-zero total weight (division instability).
	out, err := sum.Div(total)
	if err != nil {
		return vecnd.Vector{}, fmt.Errorf("weighted average: total weight %g: %w", total, err)
	}

	return out, nil
}
