// SPDX-License-Identifier: MIT

package number

import "math"

// IsNaN reports whether v is NaN.
func IsNaN[N Float](v N) bool {
	return v != v
}

// IsInf reports whether v is +Inf or -Inf.
func IsInf[N Float](v N) bool {
	return math.IsInf(float64(v), 0)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite[N Float](v N) bool {
	return !IsNaN(v) && !IsInf(v)
}

// IsNormal reports whether v is finite, non-zero and not subnormal.
func IsNormal[N Float](v N) bool {
	if !IsFinite(v) || v == 0 {
		return false
	}

	return Abs(v) >= MinPositive[N]()
}

// IsSubnormal reports whether v is a non-zero value below MinPositive.
func IsSubnormal[N Float](v N) bool {
	if !IsFinite(v) || v == 0 {
		return false
	}

	return Abs(v) < MinPositive[N]()
}

// IsSignNegative reports whether the sign bit of v is set (true for -0.0
// and negative NaNs).
func IsSignNegative[N Float](v N) bool {
	return math.Signbit(float64(v))
}

// IsSignPositive reports whether the sign bit of v is clear.
func IsSignPositive[N Float](v N) bool {
	return !IsSignNegative(v)
}

// Abs returns |v| by clearing the sign bit.
func Abs[N Float](v N) N {
	return N(math.Abs(float64(v)))
}

// Signum returns 1 with the sign of v, or NaN when v is NaN.
// Unlike a three-way sign, ±0 maps to ±1.
func Signum[N Float](v N) N {
	if IsNaN(v) {
		return v
	}

	return N(math.Copysign(1, float64(v)))
}

// Copysign returns a value with the magnitude of v and the sign of sign.
func Copysign[N Float](v, sign N) N {
	return N(math.Copysign(float64(v), float64(sign)))
}
