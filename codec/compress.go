package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the block compression algorithm used for
// bulk-transfer frames.
type CompressionType uint8

const (
	// CompressionNone stores frames uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast, good for hot paths).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD CompressionType = 2
)

func (t CompressionType) String() string {
	switch t {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Compressed frame layout:
//
//	[Type uint8][UncompressedSize uint32][CompressedSize uint32][Data...]
//
// CompressedSize == 0 means the data is stored uncompressed; Decompress
// never needs the type to be passed out of band.
const frameHeaderSize = 9

// Compress wraps data in a self-describing compressed frame. If compression
// does not help (ratio above 0.9) the data is stored uncompressed under the
// same header.
func Compress(data []byte, compressionType CompressionType) ([]byte, error) {
	var compressed []byte
	var err error

	switch compressionType {
	case CompressionNone:
		// Stored frame only.
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZSTD:
		compressed, err = compressZSTD(data)
	default:
		return nil, fmt.Errorf("unsupported compression type: %d", compressionType)
	}

	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, frameHeaderSize+len(data))
		result[0] = byte(compressionType)
		binary.LittleEndian.PutUint32(result[1:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[5:], 0) // 0 = uncompressed
		copy(result[frameHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, frameHeaderSize+len(compressed))
	result[0] = byte(compressionType)
	binary.LittleEndian.PutUint32(result[1:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[5:], uint32(len(compressed)))
	copy(result[frameHeaderSize:], compressed)
	return result, nil
}

// Decompress unwraps a frame produced by Compress.
func Decompress(frame []byte) ([]byte, error) {
	if len(frame) < frameHeaderSize {
		return nil, errors.New("short buffer for frame header")
	}

	compressionType := CompressionType(frame[0])
	uncompressedSize := binary.LittleEndian.Uint32(frame[1:])
	compressedSize := binary.LittleEndian.Uint32(frame[5:])
	body := frame[frameHeaderSize:]

	if compressedSize == 0 {
		if uint32(len(body)) < uncompressedSize {
			return nil, errors.New("short buffer for stored frame")
		}
		return body[:uncompressedSize], nil
	}
	if uint32(len(body)) < compressedSize {
		return nil, errors.New("short buffer for compressed frame")
	}
	body = body[:compressedSize]

	switch compressionType {
	case CompressionLZ4:
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return out[:n], nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		out, err := dec.DecodeAll(body, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %d", compressionType)
	}
}

func compressLZ4(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var c lz4.Compressor
	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := c.CompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	// n == 0 means incompressible; the caller stores the frame raw.
	return buf[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// Compressed wraps a Codec, compressing its output frames.
type Compressed struct {
	Codec Codec
	Type  CompressionType
}

// Marshal encodes with the wrapped codec and compresses the result.
func (c Compressed) Marshal(v any) ([]byte, error) {
	b, err := c.Codec.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Compress(b, c.Type)
}

// Unmarshal decompresses the frame and decodes with the wrapped codec.
func (c Compressed) Unmarshal(data []byte, v any) error {
	b, err := Decompress(data)
	if err != nil {
		return err
	}
	return c.Codec.Unmarshal(b, v)
}

// Name returns the wrapped codec name qualified by the compression type,
// e.g. "go-json+lz4".
func (c Compressed) Name() string {
	return c.Codec.Name() + "+" + c.Type.String()
}
