// SPDX-License-Identifier: MIT

// Package number: primitive casts.
//
// Two flavours, mirroring the classic numeric-trait families:
//   - Cast / FromPrimitive are range-checked and report failure via ok=false
//     (NaN or ±Inf into an integer, a value outside the target range).
//   - As saturates: NaN becomes 0, out-of-range values clamp to the target's
//     bounds, fractional parts are truncated toward zero.
//
// Target width and signedness are discovered at run time from the type
// parameter, so one implementation serves every Primitive.
package number

import (
	"math"
	"unsafe"
)

// Cast converts v to T with range checking.
//
// Integer targets: NaN and ±Inf fail; otherwise v is truncated toward zero
// and must fit T. Float targets: a finite v whose magnitude exceeds the
// target's MaxValue fails; NaN and ±Inf carry over.
func Cast[T Primitive, N Float](v N) (T, bool) {
	f := float64(v)
	if isFloatType[T]() {
		if widthOf[T]() == 4 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return 0, false
		}

		return T(f), true
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	lo, hi := intBounds[T]()
	if t < lo || t >= hi {
		return 0, false
	}

	return T(t), true
}

// As converts v to T, saturating at T's bounds.
func As[T Primitive, N Float](v N) T {
	f := float64(v)
	if isFloatType[T]() {
		return T(f)
	}

	if math.IsNaN(f) {
		return 0
	}
	t := math.Trunc(f)
	lo, hi := intBounds[T]()
	switch {
	case t < lo:
		return minInt[T]()
	case t >= hi:
		return maxInt[T]()
	}

	return T(t)
}

// FromPrimitive converts v to N. Integers always convert (rounding to the
// nearest representable N). Floats fail only when a finite v overflows N.
func FromPrimitive[N Float, T Primitive](v T) (N, bool) {
	if !isFloatType[T]() {
		return N(v), true
	}

	f := float64(v)
	if BitSize[N]() == bits32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, false
	}

	return N(v), true
}

// isFloatType reports whether T is a floating-point type.
func isFloatType[T Primitive]() bool {
	half := 0.5

	return T(half) != 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Primitive]() bool {
	var zero T

	return zero-1 < zero
}

// widthOf returns the size of T in bytes.
func widthOf[T Primitive]() int {
	var zero T

	return int(unsafe.Sizeof(zero))
}

// intBounds returns [lo, hi) for an integer T as float64.
// Both ends are powers of two and therefore exact.
func intBounds[T Primitive]() (lo, hi float64) {
	bits := widthOf[T]() * 8
	if isSigned[T]() {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}

	return 0, math.Ldexp(1, bits)
}

func minInt[T Primitive]() T {
	if !isSigned[T]() {
		return 0
	}
	lo, _ := intBounds[T]()

	return T(lo)
}

func maxInt[T Primitive]() T {
	if !isSigned[T]() {
		var zero T

		return zero - 1 // wraps to the all-ones value
	}

	return -(minInt[T]() + 1)
}
