// SPDX-License-Identifier: MIT

// Package cplx: the Complex value type.
// This file contains ONLY the type definition and the compile-time checks
// that it satisfies the capability interfaces of package number.
package cplx

import (
	"encoding"
	"fmt"

	"github.com/katalvlaran/complexn/number"
)

// Complex is a complex number with components of type N.
//
// The zero value is 0+0i. Components may hold any value of N, including
// NaN and ±Inf; no operation normalises them.
type Complex[N number.Float] struct {
	Real      N // real component
	Imaginary N // imaginary component
}

// Compile-time conformance checks.
var (
	_ number.Field[Complex[float64]]   = Complex[float64]{}
	_ number.Checked[Complex[float64]] = Complex[float64]{}
	_ number.Field[Complex[float32]]   = Complex[float32]{}
	_ number.Checked[Complex[float32]] = Complex[float32]{}

	_ fmt.Stringer               = Complex[float64]{}
	_ fmt.GoStringer             = Complex[float64]{}
	_ encoding.BinaryMarshaler   = Complex[float64]{}
	_ encoding.BinaryUnmarshaler = (*Complex[float64])(nil)
)
