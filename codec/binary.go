package codec

import (
	"encoding/binary"
	"errors"
	"math"
)

// Binary frame layout for a single vector:
//
//	[count uvarint][component float64 LE] * count
//
// A batch prefixes a uvarint vector count. This is the length-prefixed
// contiguous form host bindings copy straight into numeric array types.

// AppendFloats appends the length-prefixed encoding of v to dst.
func AppendFloats(dst []byte, v []float64) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(v)))
	for _, c := range v {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(c))
	}

	return dst
}

// EncodeFloats encodes a single vector.
func EncodeFloats(v []float64) []byte {
	return AppendFloats(make([]byte, 0, binary.MaxVarintLen64+8*len(v)), v)
}

// ConsumeFloats decodes one length-prefixed vector from the front of data,
// returning the components and the remaining bytes.
func ConsumeFloats(data []byte) ([]float64, []byte, error) {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, nil, errors.New("invalid vector length")
	}
	data = data[n:]
	if count > uint64(len(data))/8 {
		return nil, nil, errors.New("short buffer for components")
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}

	return out, data[count*8:], nil
}

// DecodeFloats decodes a single vector, rejecting trailing bytes.
func DecodeFloats(data []byte) ([]float64, error) {
	v, rest, err := ConsumeFloats(data)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errors.New("trailing bytes after vector")
	}

	return v, nil
}

// EncodeBatch encodes an ordered collection of vectors into one frame.
func EncodeBatch(vectors [][]float64) []byte {
	size := binary.MaxVarintLen64
	for _, v := range vectors {
		size += binary.MaxVarintLen64 + 8*len(v)
	}

	buf := make([]byte, 0, size)
	buf = binary.AppendUvarint(buf, uint64(len(vectors)))
	for _, v := range vectors {
		buf = AppendFloats(buf, v)
	}

	return buf
}

// DecodeBatch decodes a frame produced by EncodeBatch.
func DecodeBatch(data []byte) ([][]float64, error) {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errors.New("invalid batch length")
	}
	data = data[n:]
	// Every vector needs at least its own length byte.
	if count > uint64(len(data)) {
		return nil, errors.New("short buffer for batch")
	}

	out := make([][]float64, 0, count)
	for i := uint64(0); i < count; i++ {
		v, rest, err := ConsumeFloats(data)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		data = rest
	}
	if len(data) != 0 {
		return nil, errors.New("trailing bytes after batch")
	}

	return out, nil
}
