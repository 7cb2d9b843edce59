// SPDX-License-Identifier: MIT

package cplx

import "github.com/katalvlaran/complexn/number"

// New returns re + im·i.
func New[N number.Float](re, im N) Complex[N] {
	return Complex[N]{Real: re, Imaginary: im}
}

// FromReal returns r + 0i.
func FromReal[N number.Float](r N) Complex[N] {
	return Complex[N]{Real: r}
}

// Zero returns the additive identity 0 + 0i.
func Zero[N number.Float]() Complex[N] {
	return Complex[N]{}
}

// One returns the multiplicative identity 1 + 0i.
func One[N number.Float]() Complex[N] {
	return Complex[N]{Real: 1}
}

// I returns the imaginary unit 0 + 1i.
func I[N number.Float]() Complex[N] {
	return Complex[N]{Imaginary: 1}
}

// FromArgumentAmplitude converts polar coordinates to rectangular form:
// (amplitude·cos θ, amplitude·sin θ).
func FromArgumentAmplitude[N number.Float](argument, amplitude N) Complex[N] {
	s, c := sincos(argument)

	return Complex[N]{Real: c * amplitude, Imaginary: s * amplitude}
}

// FromPair builds a value from a (real, imaginary) pair.
func FromPair[N number.Float](p [2]N) Complex[N] {
	return Complex[N]{Real: p[0], Imaginary: p[1]}
}

// Pair returns the components as a (real, imaginary) pair.
func (c Complex[N]) Pair() [2]N {
	return [2]N{c.Real, c.Imaginary}
}

// FromComplex128 converts a built-in complex128.
func FromComplex128[N number.Float](z complex128) Complex[N] {
	return Complex[N]{Real: N(real(z)), Imaginary: N(imag(z))}
}

// FromComplex64 converts a built-in complex64.
func FromComplex64[N number.Float](z complex64) Complex[N] {
	return Complex[N]{Real: N(real(z)), Imaginary: N(imag(z))}
}

// Complex128 converts c to the built-in complex128.
func (c Complex[N]) Complex128() complex128 {
	return complex(float64(c.Real), float64(c.Imaginary))
}

// Complex64 converts c to the built-in complex64, rounding each component.
func (c Complex[N]) Complex64() complex64 {
	return complex(float32(c.Real), float32(c.Imaginary))
}

// MinValue returns (min, min) where min is the most negative finite N.
func MinValue[N number.Float]() Complex[N] {
	m := number.MinValue[N]()

	return Complex[N]{Real: m, Imaginary: m}
}

// MaxValue returns (max, max) where max is the largest finite N.
func MaxValue[N number.Float]() Complex[N] {
	m := number.MaxValue[N]()

	return Complex[N]{Real: m, Imaginary: m}
}

// SetZero overwrites c with 0 + 0i.
func (c *Complex[N]) SetZero() { *c = Zero[N]() }

// SetOne overwrites c with 1 + 0i.
func (c *Complex[N]) SetOne() { *c = One[N]() }

// SetI overwrites c with 0 + 1i.
func (c *Complex[N]) SetI() { *c = I[N]() }

// ExtractReal returns (Real, 0).
func (c Complex[N]) ExtractReal() Complex[N] {
	return Complex[N]{Real: c.Real}
}

// ExtractImaginary returns (0, Imaginary).
func (c Complex[N]) ExtractImaginary() Complex[N] {
	return Complex[N]{Imaginary: c.Imaginary}
}
