package vecnd

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/vecnd/internal/math64"
)

// Epsilon is the fixed absolute per-component tolerance used by Equal.
// It is a contract constant for boundary tests; do not replace it with a
// relative-tolerance scheme.
const Epsilon = 1e-9

// Vector is an ordered, resizable sequence of float64 components. The number
// of components is the vector's dimension; zero dimensions (the zero value)
// is a valid empty vector.
//
// Vector has value semantics through Clone: operations construct new results
// and never mutate their operands, except the explicit mutators Set,
// SetX/SetY/SetZ and Resize.
type Vector struct {
	data []float64
}

// New returns a zero-filled vector with dim components. dim must be
// non-negative.
func New(dim int) Vector {
	return Vector{data: make([]float64, dim)}
}

// NewFill returns a vector with dim components, all set to value. dim must be
// non-negative.
func NewFill(dim int, value float64) Vector {
	d := make([]float64, dim)
	for i := range d {
		d[i] = value
	}

	return Vector{data: d}
}

// Of builds a vector from its components:
//
//	v := vecnd.Of(1, 2, 3)
func Of(components ...float64) Vector {
	return FromSlice(components)
}

// FromSlice copies values verbatim, including length, into a new vector.
func FromSlice(values []float64) Vector {
	d := make([]float64, len(values))
	copy(d, values)

	return Vector{data: d}
}

// Zero3 returns a 3-dimensional zero vector. This is the legacy default for
// 2D/3D geometry callers; n-dimensional code should use New.
func Zero3() Vector {
	return New(3)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return FromSlice(v.data)
}

// Dimensions returns the number of components.
func (v Vector) Dimensions() int {
	return len(v.data)
}

// Is3D reports whether the vector has exactly 3 components. Cross and Rotate
// are only defined for 3D vectors.
func (v Vector) Is3D() bool {
	return len(v.data) == 3
}

// Get returns the component at index i.
func (v Vector) Get(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, &ErrIndexOutOfRange{Index: i, Size: len(v.data)}
	}

	return v.data[i], nil
}

// Set assigns the component at index i in place.
func (v *Vector) Set(i int, value float64) error {
	if i < 0 || i >= len(v.data) {
		return &ErrIndexOutOfRange{Index: i, Size: len(v.data)}
	}
	v.data[i] = value

	return nil
}

// X returns the component at index 0, or 0 if the vector is empty.
func (v Vector) X() float64 {
	if len(v.data) > 0 {
		return v.data[0]
	}

	return 0
}

// Y returns the component at index 1, or 0 if the vector is shorter.
func (v Vector) Y() float64 {
	if len(v.data) > 1 {
		return v.data[1]
	}

	return 0
}

// Z returns the component at index 2, or 0 if the vector is shorter.
func (v Vector) Z() float64 {
	if len(v.data) > 2 {
		return v.data[2]
	}

	return 0
}

// SetX assigns the component at index 0. On an empty vector it silently does
// nothing - legacy 2D/3D ergonomics, asymmetric with Set on purpose.
func (v *Vector) SetX(x float64) {
	if len(v.data) > 0 {
		v.data[0] = x
	}
}

// SetY assigns the component at index 1, silently doing nothing if the
// vector is shorter. See SetX.
func (v *Vector) SetY(y float64) {
	if len(v.data) > 1 {
		v.data[1] = y
	}
}

// SetZ assigns the component at index 2, silently doing nothing if the
// vector is shorter. See SetX.
func (v *Vector) SetZ(z float64) {
	if len(v.data) > 2 {
		v.data[2] = z
	}
}

// Data returns the underlying component slice without copying, for zero-copy
// bulk transfer to host-side numeric arrays. Mutating the returned slice
// mutates the vector.
func (v Vector) Data() []float64 {
	return v.data
}

// ToSlice returns a copy of the components.
func (v Vector) ToSlice() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Resize grows or shrinks the vector in place. New components are
// zero-filled; shrinking drops trailing components.
func (v *Vector) Resize(size int) error {
	return v.ResizeFill(size, 0)
}

// ResizeFill grows or shrinks the vector in place, filling new components
// with fill.
func (v *Vector) ResizeFill(size int, fill float64) error {
	if size < 0 {
		return fmt.Errorf("%w: resize to negative size %d", ErrInvalidOperation, size)
	}
	if size <= len(v.data) {
		v.data = v.data[:size]
		return nil
	}

	grown := make([]float64, size)
	n := copy(grown, v.data)
	for i := n; i < size; i++ {
		grown[i] = fill
	}
	v.data = grown

	return nil
}

// String renders the components in parenthesized, comma-separated order,
// e.g. "(1, 2, 3)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}

// GoString renders a constructor-call diagnostic form, e.g. "vecnd.Of(1, 2, 3)".
func (v Vector) GoString() string {
	return "vecnd.Of" + v.String()
}

// MarshalBinary implements encoding.BinaryMarshaler. The format is a uvarint
// component count followed by little-endian IEEE-754 bits per component -
// the length-prefixed contiguous form used at the host-language boundary.
func (v Vector) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, binary.MaxVarintLen64+8*len(v.data))
	buf = binary.AppendUvarint(buf, uint64(len(v.data)))
	for _, c := range v.data {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c))
	}

	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vector) UnmarshalBinary(data []byte) error {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return errors.New("invalid vector length")
	}
	data = data[n:]
	if count > uint64(len(data))/8 {
		return errors.New("short buffer for components")
	}

	d := make([]float64, count)
	for i := range d {
		d[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	v.data = d

	return nil
}

// MarshalJSON encodes the vector as a JSON array of components.
func (v Vector) MarshalJSON() ([]byte, error) {
	if v.data == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(v.data)
}

// UnmarshalJSON decodes a JSON array of components.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var d []float64
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	v.data = d

	return nil
}

// nearZero reports whether x is below the double-precision machine epsilon
// in magnitude. Degenerate-input guards (normalize, scalar division, total
// weights) all use this threshold.
func nearZero(x float64) bool {
	return math.Abs(x) < math64.Eps
}
