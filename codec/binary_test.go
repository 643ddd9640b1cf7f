package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
	}{
		{"Simple", []float64{1, 2, 3}},
		{"Negative", []float64{-1.5, 0, 2.25}},
		{"Extremes", []float64{1e-300, 1e300, -0.0}},
		{"Empty", []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFloats(EncodeFloats(tt.v))
			require.NoError(t, err)
			assert.Equal(t, tt.v, got)
		})
	}
}

func TestConsumeFloats(t *testing.T) {
	t.Run("leaves remaining bytes", func(t *testing.T) {
		buf := AppendFloats(nil, []float64{1, 2})
		buf = AppendFloats(buf, []float64{3})

		first, rest, err := ConsumeFloats(buf)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, first)

		second, rest, err := ConsumeFloats(rest)
		require.NoError(t, err)
		assert.Equal(t, []float64{3}, second)
		assert.Empty(t, rest)
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := ConsumeFloats(nil)
		assert.Error(t, err)
	})

	t.Run("short buffer", func(t *testing.T) {
		buf := EncodeFloats([]float64{1, 2, 3})
		_, _, err := ConsumeFloats(buf[:len(buf)-1])
		assert.Error(t, err)
	})
}

func TestDecodeFloatsTrailingBytes(t *testing.T) {
	buf := append(EncodeFloats([]float64{1}), 0xFF)
	_, err := DecodeFloats(buf)
	assert.Error(t, err)
}

func TestBatchRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		vectors [][]float64
	}{
		{"Uniform", [][]float64{{1, 2}, {3, 4}}},
		// Ragged batches are legal at the encoding layer; dimension policy
		// belongs to the operation layers.
		{"Ragged", [][]float64{{1}, {2, 3, 4}, {}}},
		{"Empty", [][]float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBatch(EncodeBatch(tt.vectors))
			require.NoError(t, err)
			require.Len(t, got, len(tt.vectors))
			for i := range tt.vectors {
				assert.Equal(t, tt.vectors[i], got[i])
			}
		})
	}
}

func TestDecodeBatchErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := DecodeBatch(nil)
		assert.Error(t, err)
	})

	t.Run("truncated", func(t *testing.T) {
		buf := EncodeBatch([][]float64{{1, 2}, {3, 4}})
		_, err := DecodeBatch(buf[:len(buf)-4])
		assert.Error(t, err)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		buf := append(EncodeBatch([][]float64{{1}}), 0x00)
		_, err := DecodeBatch(buf)
		assert.Error(t, err)
	})
}
