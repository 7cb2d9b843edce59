// SPDX-License-Identifier: MIT

// Package cplx: numeric-trait conformance.
//
// This file makes Complex[N] usable wherever a scalar is expected:
//   - checked arithmetic (number.Checked),
//   - primitive casts (real component only, the imaginary part is dropped),
//   - the math constants of package number lifted to pure-real values.
//
// Bounds (MinValue/MaxValue) and identities (Zero/One) live in construct.go.
package cplx

import "github.com/katalvlaran/complexn/number"

// CheckedAdd returns c + other, or ok=false if either component sum is not finite.
func (c Complex[N]) CheckedAdd(other Complex[N]) (Complex[N], bool) {
	var k checker[N]
	out := Complex[N]{
		Real:      k.add(c.Real, other.Real),
		Imaginary: k.add(c.Imaginary, other.Imaginary),
	}

	return k.result(out)
}

// CheckedSub returns c - other, or ok=false if either component difference is not finite.
func (c Complex[N]) CheckedSub(other Complex[N]) (Complex[N], bool) {
	var k checker[N]
	out := Complex[N]{
		Real:      k.sub(c.Real, other.Real),
		Imaginary: k.sub(c.Imaginary, other.Imaginary),
	}

	return k.result(out)
}

// CheckedMul returns c · other. Every partial product and sum is checked;
// the first failure aborts.
func (c Complex[N]) CheckedMul(other Complex[N]) (Complex[N], bool) {
	var k checker[N]
	out := Complex[N]{
		Real:      k.sub(k.mul(c.Real, other.Real), k.mul(c.Imaginary, other.Imaginary)),
		Imaginary: k.add(k.mul(c.Real, other.Imaginary), k.mul(c.Imaginary, other.Real)),
	}

	return k.result(out)
}

// CheckedDiv returns c / other. Fails on a zero divisor and on any
// non-finite intermediate.
func (c Complex[N]) CheckedDiv(other Complex[N]) (Complex[N], bool) {
	var k checker[N]
	den := k.add(k.mul(other.Real, other.Real), k.mul(other.Imaginary, other.Imaginary))
	out := Complex[N]{
		Real:      k.div(k.add(k.mul(c.Real, other.Real), k.mul(c.Imaginary, other.Imaginary)), den),
		Imaginary: k.div(k.sub(k.mul(c.Imaginary, other.Real), k.mul(c.Real, other.Imaginary)), den),
	}

	return k.result(out)
}

// CheckedNeg returns -c, or ok=false if a component is not finite.
func (c Complex[N]) CheckedNeg() (Complex[N], bool) {
	var k checker[N]
	out := Complex[N]{Real: k.neg(c.Real), Imaginary: k.neg(c.Imaginary)}

	return k.result(out)
}

// checker threads the checked scalar operations of package number and
// latches the first failure; later steps become no-ops.
type checker[N number.Float] struct {
	failed bool
}

func (k *checker[N]) step(v N, ok bool) N {
	if !ok {
		k.failed = true
	}

	return v
}

func (k *checker[N]) add(a, b N) N {
	if k.failed {
		return 0
	}

	return k.step(number.CheckedAdd(a, b))
}

func (k *checker[N]) sub(a, b N) N {
	if k.failed {
		return 0
	}

	return k.step(number.CheckedSub(a, b))
}

func (k *checker[N]) mul(a, b N) N {
	if k.failed {
		return 0
	}

	return k.step(number.CheckedMul(a, b))
}

func (k *checker[N]) div(a, b N) N {
	if k.failed {
		return 0
	}

	return k.step(number.CheckedDiv(a, b))
}

func (k *checker[N]) neg(a N) N {
	if k.failed {
		return 0
	}

	return k.step(number.CheckedNeg(a))
}

func (k *checker[N]) result(c Complex[N]) (Complex[N], bool) {
	if k.failed {
		return Complex[N]{}, false
	}

	return c, true
}

// Cast converts the real component of c to T with range checking
// (see number.Cast). The imaginary component is discarded.
func Cast[T number.Primitive, N number.Float](c Complex[N]) (T, bool) {
	return number.Cast[T](c.Real)
}

// As converts the real component of c to T, saturating at T's bounds
// (see number.As). The imaginary component is discarded.
func As[T number.Primitive, N number.Float](c Complex[N]) T {
	return number.As[T](c.Real)
}

// FromPrimitive converts v to a pure-real Complex[N], or ok=false when v
// does not fit N (see number.FromPrimitive).
func FromPrimitive[N number.Float, T number.Primitive](v T) (Complex[N], bool) {
	r, ok := number.FromPrimitive[N](v)
	if !ok {
		return Complex[N]{}, false
	}

	return FromReal(r), true
}

// Math constants as pure-real values.

// Pi returns π + 0i.
func Pi[N number.Float]() Complex[N] { return FromReal(number.Pi[N]()) }

// Tau returns 2π + 0i.
func Tau[N number.Float]() Complex[N] { return FromReal(number.Tau[N]()) }

// E returns Euler's number e + 0i.
func E[N number.Float]() Complex[N] { return FromReal(number.E[N]()) }

// FracPi2 returns π/2 + 0i.
func FracPi2[N number.Float]() Complex[N] { return FromReal(number.FracPi2[N]()) }

// FracPi3 returns π/3 + 0i.
func FracPi3[N number.Float]() Complex[N] { return FromReal(number.FracPi3[N]()) }

// FracPi4 returns π/4 + 0i.
func FracPi4[N number.Float]() Complex[N] { return FromReal(number.FracPi4[N]()) }

// FracPi6 returns π/6 + 0i.
func FracPi6[N number.Float]() Complex[N] { return FromReal(number.FracPi6[N]()) }

// FracPi8 returns π/8 + 0i.
func FracPi8[N number.Float]() Complex[N] { return FromReal(number.FracPi8[N]()) }

// Frac1Pi returns 1/π + 0i.
func Frac1Pi[N number.Float]() Complex[N] { return FromReal(number.Frac1Pi[N]()) }

// Frac2Pi returns 2/π + 0i.
func Frac2Pi[N number.Float]() Complex[N] { return FromReal(number.Frac2Pi[N]()) }

// Frac2SqrtPi returns 2/√π + 0i.
func Frac2SqrtPi[N number.Float]() Complex[N] { return FromReal(number.Frac2SqrtPi[N]()) }

// Sqrt2 returns √2 + 0i.
func Sqrt2[N number.Float]() Complex[N] { return FromReal(number.Sqrt2[N]()) }

// Frac1Sqrt2 returns 1/√2 + 0i.
func Frac1Sqrt2[N number.Float]() Complex[N] { return FromReal(number.Frac1Sqrt2[N]()) }

// Ln2 returns ln 2 + 0i.
func Ln2[N number.Float]() Complex[N] { return FromReal(number.Ln2[N]()) }

// Ln10 returns ln 10 + 0i.
func Ln10[N number.Float]() Complex[N] { return FromReal(number.Ln10[N]()) }

// Log2E returns log₂ e + 0i.
func Log2E[N number.Float]() Complex[N] { return FromReal(number.Log2E[N]()) }

// Log10E returns log₁₀ e + 0i.
func Log10E[N number.Float]() Complex[N] { return FromReal(number.Log10E[N]()) }

// Log2Of10 returns log₂ 10 + 0i.
func Log2Of10[N number.Float]() Complex[N] { return FromReal(number.Log2Of10[N]()) }

// Log10Of2 returns log₁₀ 2 + 0i.
func Log10Of2[N number.Float]() Complex[N] { return FromReal(number.Log10Of2[N]()) }
