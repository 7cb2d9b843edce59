// SPDX-License-Identifier: MIT

// Package cplx: modulus, phase and the exponential family.
//
// All functions use the principal branch: Argument is atan2(im, re) in
// (−π, π], Ln(c) = (ln|c|, arg c), and the real/complex powers are defined
// through Ln. Component math is carried out in float64 and rounded back to N.
package cplx

import (
	"math"

	"github.com/katalvlaran/complexn/number"
)

// Amplitude returns the modulus sqrt(re² + im²).
func (c Complex[N]) Amplitude() N {
	return N(math.Sqrt(float64(c.Real*c.Real + c.Imaginary*c.Imaginary)))
}

// Argument returns the phase atan2(im, re).
func (c Complex[N]) Argument() N {
	return N(math.Atan2(float64(c.Imaginary), float64(c.Real)))
}

// Ln returns the principal natural logarithm (ln|c|, arg c).
// Ln(0) = (−Inf, 0).
func (c Complex[N]) Ln() Complex[N] {
	return Complex[N]{
		Real:      N(math.Log(float64(c.Amplitude()))),
		Imaginary: c.Argument(),
	}
}

// Exp returns e^re · (cos im, sin im).
func (c Complex[N]) Exp() Complex[N] {
	r := N(math.Exp(float64(c.Real)))
	s, co := sincos(c.Imaginary)

	return Complex[N]{Real: r * co, Imaginary: r * s}
}

// Log returns the logarithm of c in a real base: Ln(c) / Ln(base + 0i).
func (c Complex[N]) Log(base N) Complex[N] {
	return c.Ln().Div(FromReal(base).Ln())
}

// Powi raises c to an integer power by binary exponentiation.
// Negative exponents raise Recip(c) to |exponent|; Powi(0) is One.
//
// Complexity: O(log |exponent|) multiplications.
func (c Complex[N]) Powi(exponent int) Complex[N] {
	return number.PowI(c, One[N](), exponent)
}

// Powf raises c to a real power: Exp(Ln(c) · exponent).
// A zero base follows Pow's zero-base rules.
func (c Complex[N]) Powf(exponent N) Complex[N] {
	if c.IsZero() {
		return zeroPow(FromReal(exponent))
	}

	return c.Ln().MulF(exponent).Exp()
}

// Pow raises c to a complex power using the polar form of c.
//
// Algorithm:
//  1. r = |c|, θ = arg c.
//  2. modulus = r^(other.re) · e^(−other.im·θ).
//  3. phase   = other.im·ln r + other.re·θ.
//  4. Rebuild with FromArgumentAmplitude(phase, modulus).
//
// A zero base is special-cased as math/cmplx.Pow does: 0^w = 1 when
// re(w) == 0, 0 when re(w) > 0, and +Inf (real exponent) or (+Inf, +Inf)
// when re(w) < 0. A NaN in either component of w yields (NaN, NaN).
func (c Complex[N]) Pow(other Complex[N]) Complex[N] {
	if c.IsZero() {
		return zeroPow(other)
	}

	r := float64(c.Amplitude())
	theta := float64(c.Argument())
	re, im := float64(other.Real), float64(other.Imaginary)

	modulus := math.Pow(r, re) * math.Exp(-im*theta)
	phase := im*math.Log(r) + re*theta

	return FromArgumentAmplitude(N(phase), N(modulus))
}

// zeroPow evaluates 0^w.
func zeroPow[N number.Float](w Complex[N]) Complex[N] {
	if w.IsNaN() {
		nan := N(math.NaN())

		return Complex[N]{Real: nan, Imaginary: nan}
	}

	switch {
	case w.Real == 0:
		return One[N]()
	case w.Real > 0:
		return Zero[N]()
	}

	inf := N(math.Inf(1))
	if w.Imaginary == 0 {
		return Complex[N]{Real: inf}
	}

	return Complex[N]{Real: inf, Imaginary: inf}
}

// sincos evaluates sin and cos of x in float64 and rounds back to N.
func sincos[N number.Float](x N) (N, N) {
	s, c := math.Sincos(float64(x))

	return N(s), N(c)
}
