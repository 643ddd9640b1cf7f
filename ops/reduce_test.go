package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecnd"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 6.0, Sum(vecnd.Of(1, 2, 3)))
	assert.Equal(t, -1.5, Sum(vecnd.Of(1, -2.5)))

	// Sum of an empty vector is defined as 0.
	assert.Equal(t, 0.0, Sum(vecnd.Vector{}))
}

func TestMinMaxMean(t *testing.T) {
	v := vecnd.Of(3, -1, 4, 1.5)

	maxVal, err := Max(v)
	require.NoError(t, err)
	assert.Equal(t, 4.0, maxVal)

	minVal, err := Min(v)
	require.NoError(t, err)
	assert.Equal(t, -1.0, minVal)

	mean, err := Mean(v)
	require.NoError(t, err)
	assert.InDelta(t, 1.875, mean, 1e-12)
}

func TestReduceEmptyRejected(t *testing.T) {
	var empty vecnd.Vector

	_, err := Max(empty)
	assert.ErrorIs(t, err, vecnd.ErrInvalidOperation)

	_, err = Min(empty)
	assert.ErrorIs(t, err, vecnd.ErrInvalidOperation)

	_, err = Mean(empty)
	assert.ErrorIs(t, err, vecnd.ErrInvalidOperation)
}

func TestReduceSingleComponent(t *testing.T) {
	v := vecnd.Of(42)

	maxVal, err := Max(v)
	require.NoError(t, err)
	minVal, err2 := Min(v)
	require.NoError(t, err2)
	mean, err3 := Mean(v)
	require.NoError(t, err3)

	assert.Equal(t, 42.0, maxVal)
	assert.Equal(t, 42.0, minVal)
	assert.Equal(t, 42.0, mean)
}
