// Package vecnd provides n-dimensional float64 vector arithmetic for Go.
//
// Vecnd is a pure computation library: a contiguous, resizable vector value
// type with elementwise arithmetic, geometric operations (normalization,
// dot/cross products, angles, projection, reflection, Rodrigues rotation),
// and batch/aggregate operations over ordered vector collections.
//
// # Quick Start
//
//	v := vecnd.Of(1, 2, 3)
//	w := vecnd.Of(4, 5, 6)
//
//	sum, _ := v.Add(w)         // (5, 7, 9)
//	dot, _ := v.Dot(w)         // 32
//	unit, _ := v.Normalize()   // unit vector along v
//
// # Error Model
//
// All failures are synchronous and fail-fast; no operation returns a partial
// result. Three error categories cover the whole surface:
//
//   - *ErrIndexOutOfRange: indexed access past the end of a vector
//   - *ErrDimensionMismatch: elementwise operations on unequal lengths
//     (or batch operations on unequal collection counts)
//   - ErrInvalidOperation: degenerate inputs - near-zero divisors and
//     magnitudes, non-3D cross/rotate operands, inverted clamp ranges,
//     empty aggregates
//
// Use errors.Is/errors.As to classify.
//
// # Equality
//
// Vector equality is approximate: equal dimensions and every corresponding
// component within the fixed absolute tolerance Epsilon (1e-9). This is the
// contract boundary tests rely on; it is deliberately not a relative scheme.
//
// # Batch Operations
//
// Free functions over []Vector live in the ops package: ops.BatchAdd,
// ops.BatchDot, ops.Centroid, ops.WeightedAverage, element-wise
// multiply/divide, and scalar reductions.
//
// # Boundary Encoding
//
// The codec package carries vectors across the host-language boundary:
// length-prefixed contiguous binary frames, JSON codecs, and optional block
// compression for bulk transfer. Vector itself implements
// encoding.BinaryMarshaler and json.Marshaler.
//
// # Concurrency
//
// Distinct Vector instances never alias unless Data() slices are shared
// explicitly, so concurrent reads of distinct instances are safe. Concurrent
// mutation of the same instance requires external synchronization.
package vecnd
