package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecnd"
)

func TestBatchAdd(t *testing.T) {
	t.Run("pairwise", func(t *testing.T) {
		a := []vecnd.Vector{vecnd.Of(1, 2), vecnd.Of(3, 4)}
		b := []vecnd.Vector{vecnd.Of(5, 6), vecnd.Of(7, 8)}

		got, err := BatchAdd(a, b)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, vecnd.Of(6, 8).Equal(got[0]))
		assert.True(t, vecnd.Of(10, 12).Equal(got[1]))
	})

	t.Run("inputs unmodified", func(t *testing.T) {
		a := []vecnd.Vector{vecnd.Of(1, 2)}
		b := []vecnd.Vector{vecnd.Of(5, 6)}

		_, err := BatchAdd(a, b)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, a[0].Data())
		assert.Equal(t, []float64{5, 6}, b[0].Data())
	})

	t.Run("empty collections", func(t *testing.T) {
		got, err := BatchAdd(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("count mismatch", func(t *testing.T) {
		_, err := BatchAdd(
			[]vecnd.Vector{vecnd.Of(1, 2)},
			[]vecnd.Vector{vecnd.Of(1, 2), vecnd.Of(3, 4)},
		)
		var dm *vecnd.ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 1, dm.Expected)
		assert.Equal(t, 2, dm.Actual)
	})

	t.Run("first mismatched pair reported", func(t *testing.T) {
		a := []vecnd.Vector{vecnd.Of(1, 2), vecnd.Of(1, 2), vecnd.Of(1, 2)}
		b := []vecnd.Vector{vecnd.Of(1, 2), vecnd.Of(1, 2, 3), vecnd.Of(1)}

		_, err := BatchAdd(a, b)
		require.Error(t, err)
		assert.ErrorContains(t, err, "pair 1")
	})
}

func TestBatchDot(t *testing.T) {
	t.Run("pairwise scalars", func(t *testing.T) {
		a := []vecnd.Vector{vecnd.Of(1, 2, 3), vecnd.Of(1, 0)}
		b := []vecnd.Vector{vecnd.Of(4, 5, 6), vecnd.Of(0, 1)}

		got, err := BatchDot(a, b)
		require.NoError(t, err)
		assert.Equal(t, []float64{32, 0}, got)
	})

	t.Run("count mismatch", func(t *testing.T) {
		_, err := BatchDot([]vecnd.Vector{vecnd.Of(1)}, nil)
		var dm *vecnd.ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("pair dimension mismatch", func(t *testing.T) {
		_, err := BatchDot(
			[]vecnd.Vector{vecnd.Of(1, 2)},
			[]vecnd.Vector{vecnd.Of(1, 2, 3)},
		)
		var dm *vecnd.ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})
}
