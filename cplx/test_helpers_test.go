// SPDX-License-Identifier: MIT
// Package cplx_test contains test helpers.
//
// Purpose:
//   • Deterministic random fixtures for property tests.
//   • Tolerance-aware assertions on Complex values.

package cplx_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/complexn/cplx"
)

// tol is the tolerance used for results that go through transcendental functions.
const tol = 1e-12

// seed keeps every property run reproducible.
const seed = 42

// c64 shortens float64 literals in tables.
type c64 = cplx.Complex[float64]

// RequireApprox fails the test when got and want differ by more than eps
// in either component (see Complex.ApproxEqual).
func RequireApprox(t *testing.T, want, got c64, eps float64) {
	t.Helper()
	require.Truef(t, got.ApproxEqual(want, cplx.WithEpsilon(eps)),
		"want %#v, got %#v (eps=%g)", want, got, eps)
}

// RequireBits fails unless got and want are bit-identical component-wise.
func RequireBits(t *testing.T, want, got c64) {
	t.Helper()
	require.Equalf(t, math.Float64bits(want.Real), math.Float64bits(got.Real),
		"real bits: want %#v, got %#v", want, got)
	require.Equalf(t, math.Float64bits(want.Imaginary), math.Float64bits(got.Imaginary),
		"imaginary bits: want %#v, got %#v", want, got)
}

// RequireSame fails unless got and want agree component-wise, where NaN
// matches NaN and -0 matches +0.
func RequireSame(t *testing.T, want, got c64) {
	t.Helper()
	same := func(x, y float64) bool { return x == y || (math.IsNaN(x) && math.IsNaN(y)) }
	require.Truef(t, same(want.Real, got.Real) && same(want.Imaginary, got.Imaginary),
		"want %#v, got %#v", want, got)
}

// requireClose compares by the modulus of the difference, scaled by |want|,
// so that a near-zero component of a large result is not judged on its own.
func requireClose(t *testing.T, want, got c64, eps float64) {
	t.Helper()
	scale := math.Max(1, want.Amplitude())
	d := got.Sub(want).Amplitude()
	require.Truef(t, d <= eps*scale, "want %#v, got %#v (|diff|=%g)", want, got, d)
}

// RandomComplex draws n values with components uniform in (-scale, scale).
// Exact zeros are skipped so callers may invert every value.
func RandomComplex(rng *rand.Rand, n int, scale float64) []c64 {
	out := make([]c64, 0, n)
	for len(out) < n {
		z := cplx.New(rng.Float64()*2*scale-scale, rng.Float64()*2*scale-scale)
		if z.IsZero() {
			continue
		}
		out = append(out, z)
	}

	return out
}

func negZero() float64 { return math.Copysign(0, -1) }
