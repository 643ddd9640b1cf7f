// Package codec carries vectors and vector batches across the host-language
// boundary: pluggable payload codecs (JSON variants), a length-prefixed
// contiguous binary format for doubles, and optional block compression for
// bulk-transfer frames.
//
// Codec selection is a compatibility boundary: bytes produced by one codec
// decode only with the same codec. Self-describing containers should store
// the codec name and recover it with ByName.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
