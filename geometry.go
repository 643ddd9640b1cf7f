package vecnd

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecnd/internal/math64"
)

// Magnitude returns the Euclidean norm. Zero for an empty vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(math64.Dot(v.data, v.data))
}

// MagnitudeSquared returns the squared Euclidean norm. Zero for an empty
// vector.
func (v Vector) MagnitudeSquared() float64 {
	return math64.Dot(v.data, v.data)
}

// Normalize returns v scaled to unit magnitude. A near-zero vector has no
// direction and is rejected.
func (v Vector) Normalize() (Vector, error) {
	mag := v.Magnitude()
	if nearZero(mag) {
		return Vector{}, fmt.Errorf("%w: cannot normalize near-zero vector", ErrInvalidOperation)
	}

	return v.Div(mag)
}

// Dot returns the sum of componentwise products.
func (v Vector) Dot(other Vector) (float64, error) {
	if err := v.checkDimensions(other); err != nil {
		return 0, err
	}

	return math64.Dot(v.data, other.data), nil
}

// Cross returns the right-handed cross product. Both operands must have
// exactly 3 components.
func (v Vector) Cross(other Vector) (Vector, error) {
	if !v.Is3D() || !other.Is3D() {
		return Vector{}, fmt.Errorf("%w: cross product requires 3-dimensional vectors (got %d and %d)",
			ErrInvalidOperation, len(v.data), len(other.data))
	}

	a, b := v.data, other.data

	return Of(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}

// Distance returns the Euclidean distance between v and other.
func (v Vector) Distance(other Vector) (float64, error) {
	d2, err := v.DistanceSquared(other)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(d2), nil
}

// DistanceSquared returns the squared Euclidean distance between v and other.
func (v Vector) DistanceSquared(other Vector) (float64, error) {
	if err := v.checkDimensions(other); err != nil {
		return 0, err
	}

	return math64.SquaredL2(v.data, other.data), nil
}

// AngleBetween returns the angle between v and other in radians, in [0, pi].
// Either operand being near-zero is rejected.
func (v Vector) AngleBetween(other Vector) (float64, error) {
	if err := v.checkDimensions(other); err != nil {
		return 0, err
	}

	m1, m2 := v.Magnitude(), other.Magnitude()
	if nearZero(m1) || nearZero(m2) {
		return 0, fmt.Errorf("%w: cannot compute angle with near-zero vector", ErrInvalidOperation)
	}

	cos := math64.Dot(v.data, other.data) / (m1 * m2)
	// Rounding can push the cosine marginally outside [-1, 1]; clamp before
	// acos to avoid a NaN.
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos), nil
}

// Projection returns the projection of v onto the target vector:
// onto * (v.onto / |onto|^2). A near-zero target is rejected.
func (v Vector) Projection(onto Vector) (Vector, error) {
	if err := v.checkDimensions(onto); err != nil {
		return Vector{}, err
	}

	den := onto.MagnitudeSquared()
	if nearZero(den) {
		return Vector{}, fmt.Errorf("%w: cannot project onto near-zero vector", ErrInvalidOperation)
	}

	return onto.Scale(math64.Dot(v.data, onto.data) / den), nil
}

// Reflection returns v reflected across the plane with the given normal:
// v - normal*(2*v.normal). A unit normal is conventional but not enforced.
func (v Vector) Reflection(normal Vector) (Vector, error) {
	if err := v.checkDimensions(normal); err != nil {
		return Vector{}, err
	}

	return v.Sub(normal.Scale(2 * math64.Dot(v.data, normal.data)))
}

// Rotate returns v rotated about axis by angle radians, using Rodrigues'
// rotation formula. The receiver must have exactly 3 components; the axis is
// validated by the embedded cross product.
func (v Vector) Rotate(axis Vector, angle float64) (Vector, error) {
	if !v.Is3D() {
		return Vector{}, fmt.Errorf("%w: rotation requires a 3-dimensional vector (got %d)",
			ErrInvalidOperation, len(v.data))
	}

	cross, err := v.Cross(axis)
	if err != nil {
		return Vector{}, err
	}

	cosA, sinA := math.Cos(angle), math.Sin(angle)

	term1 := v.Scale(cosA)
	term2 := cross.Scale(sinA)
	term3 := axis.Scale(math64.Dot(axis.data, v.data) * (1 - cosA))

	sum, err := term1.Add(term2)
	if err != nil {
		return Vector{}, err
	}

	return sum.Add(term3)
}

// Lerp returns the linear interpolation v + (other-v)*t. t is unconstrained;
// values outside [0, 1] extrapolate.
func (v Vector) Lerp(other Vector, t float64) (Vector, error) {
	if err := v.checkDimensions(other); err != nil {
		return Vector{}, err
	}

	out := make([]float64, len(v.data))
	math64.LerpTo(out, v.data, other.data, t)

	return Vector{data: out}, nil
}

// CosineSimilarity returns v.other / (|v| * |other|). Either operand being
// near-zero is rejected.
func (v Vector) CosineSimilarity(other Vector) (float64, error) {
	if err := v.checkDimensions(other); err != nil {
		return 0, err
	}

	m1, m2 := v.Magnitude(), other.Magnitude()
	if nearZero(m1) || nearZero(m2) {
		return 0, fmt.Errorf("%w: cannot compute cosine similarity with near-zero vector", ErrInvalidOperation)
	}

	return math64.Dot(v.data, other.data) / (m1 * m2), nil
}

// Clamp returns v with every component clamped to [minVal, maxVal].
func (v Vector) Clamp(minVal, maxVal float64) (Vector, error) {
	if minVal > maxVal {
		return Vector{}, fmt.Errorf("%w: clamp range min %g > max %g", ErrInvalidOperation, minVal, maxVal)
	}

	out := make([]float64, len(v.data))
	math64.ClampTo(out, v.data, minVal, maxVal)

	return Vector{data: out}, nil
}
