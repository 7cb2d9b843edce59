// SPDX-License-Identifier: MIT

// Package cplx: component-wise ("naive") operations.
// Each function applies the scalar operation to Real and Imaginary
// independently; none of them respects the geometry of the complex plane.
package cplx

import (
	"math"

	"github.com/katalvlaran/complexn/number"
)

// Abs returns (|re|, |im|). It is NOT the modulus; see Amplitude.
func (c Complex[N]) Abs() Complex[N] {
	return Complex[N]{Real: number.Abs(c.Real), Imaginary: number.Abs(c.Imaginary)}
}

// Signum returns (±1, ±1) from each component's sign bit; NaN stays NaN.
func (c Complex[N]) Signum() Complex[N] {
	return Complex[N]{Real: number.Signum(c.Real), Imaginary: number.Signum(c.Imaginary)}
}

// Copysign returns c's magnitudes with the signs of sign, per component.
func (c Complex[N]) Copysign(sign Complex[N]) Complex[N] {
	return Complex[N]{
		Real:      number.Copysign(c.Real, sign.Real),
		Imaginary: number.Copysign(c.Imaginary, sign.Imaginary),
	}
}

// NaiveRound rounds each component half away from zero.
func (c Complex[N]) NaiveRound() Complex[N] { return c.apply(math.Round) }

// NaiveFloor rounds each component toward −Inf.
func (c Complex[N]) NaiveFloor() Complex[N] { return c.apply(math.Floor) }

// NaiveCeil rounds each component toward +Inf.
func (c Complex[N]) NaiveCeil() Complex[N] { return c.apply(math.Ceil) }

// NaiveTrunc rounds each component toward zero.
func (c Complex[N]) NaiveTrunc() Complex[N] { return c.apply(math.Trunc) }

// apply maps fn over both components in float64.
func (c Complex[N]) apply(fn func(float64) float64) Complex[N] {
	return Complex[N]{Real: N(fn(float64(c.Real))), Imaginary: N(fn(float64(c.Imaginary)))}
}
