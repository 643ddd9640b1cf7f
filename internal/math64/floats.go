// Package math64 provides float64 loop kernels shared by the public vector
// packages. This is an internal package - external users should use the
// vecnd and ops packages, which enforce the dimension-checking policy.
package math64

// Eps is the double-precision machine epsilon, the smallest x such that
// 1+x != 1. Used for near-zero stability guards (normalization, scalar
// division, total weights).
const Eps = 2.220446049250313e-16

// Dot calculates the dot product of two vectors.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func Dot(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func SquaredL2(a, b []float64) float64 {
	var distance float64
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// Sum returns the sum of all elements. Zero for an empty slice.
func Sum(a []float64) float64 {
	var ret float64
	for _, x := range a {
		ret += x
	}

	return ret
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float64, scalar float64) {
	for i := range a {
		a[i] *= scalar
	}
}

// ScaleTo writes a*scalar into dst.
//
// SAFETY: Assumes len(dst) == len(a).
func ScaleTo(dst, a []float64, scalar float64) {
	for i := range a {
		dst[i] = a[i] * scalar
	}
}

// DivScalarTo writes a/scalar into dst. The near-zero guard on scalar is the
// caller's responsibility.
//
// SAFETY: Assumes len(dst) == len(a).
func DivScalarTo(dst, a []float64, scalar float64) {
	for i := range a {
		dst[i] = a[i] / scalar
	}
}

// AddTo writes a+b into dst.
//
// SAFETY: Assumes len(dst) == len(a) == len(b).
func AddTo(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// SubTo writes a-b into dst.
//
// SAFETY: Assumes len(dst) == len(a) == len(b).
func SubTo(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// MulTo writes the element-wise product a*b into dst.
//
// SAFETY: Assumes len(dst) == len(a) == len(b).
func MulTo(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

// NegTo writes -a into dst.
//
// SAFETY: Assumes len(dst) == len(a).
func NegTo(dst, a []float64) {
	for i := range a {
		dst[i] = -a[i]
	}
}

// LerpTo writes a + (b-a)*t into dst. t is unconstrained; values outside
// [0, 1] extrapolate.
//
// SAFETY: Assumes len(dst) == len(a) == len(b).
func LerpTo(dst, a, b []float64, t float64) {
	for i := range a {
		dst[i] = a[i] + (b[i]-a[i])*t
	}
}

// ClampTo writes a clamped to [minVal, maxVal] into dst. The caller validates
// minVal <= maxVal.
//
// SAFETY: Assumes len(dst) == len(a).
func ClampTo(dst, a []float64, minVal, maxVal float64) {
	for i := range a {
		x := a[i]
		if x < minVal {
			x = minVal
		} else if x > maxVal {
			x = maxVal
		}
		dst[i] = x
	}
}

// MinMax returns the smallest and largest element of a.
//
// SAFETY: Assumes len(a) > 0.
func MinMax(a []float64) (minVal, maxVal float64) {
	minVal, maxVal = a[0], a[0]
	for _, x := range a[1:] {
		if x < minVal {
			minVal = x
		}
		if x > maxVal {
			maxVal = x
		}
	}

	return minVal, maxVal
}
