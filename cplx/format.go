// SPDX-License-Identifier: MIT

// Package cplx: textual representations.
//
//	Display (String, %v):  ( + 3 + 4i )
//	Debug (GoString, %#v): Complex { real: 3.0, imaginary: 4.0i }
//
// Display draws each sign from the component's sign bit and prints the
// magnitude, so -0 renders as "- 0" and NaN with the sign bit set as "- NaN".
// Numbers are printed in plain decimal, never in exponent form.
//
// Debug prints signed components; integral values keep a ".0" suffix and
// magnitudes outside [1e-4, 1e16) switch to exponent form ("1e20", "1e-7").
package cplx

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/complexn/number"
)

// Debug-form thresholds for switching to exponent notation.
const (
	debugExpLow  = 1e-4
	debugExpHigh = 1e16
)

// String returns the display form.
func (c Complex[N]) String() string {
	return c.Display()
}

// Display returns the display form "( ± R ± Ii )".
//
// Options: WithPrecision (default shortest round-trip).
func (c Complex[N]) Display(opts ...Option) string {
	prec := gatherOptions(opts...).precision

	var b strings.Builder
	b.WriteString("( ")
	b.WriteByte(signByte(c.Real))
	b.WriteByte(' ')
	b.WriteString(formatMagnitude(c.Real, prec))
	b.WriteByte(' ')
	b.WriteByte(signByte(c.Imaginary))
	b.WriteByte(' ')
	b.WriteString(formatMagnitude(c.Imaginary, prec))
	b.WriteString("i )")

	return b.String()
}

// GoString returns the debug form "Complex { real: R, imaginary: Ii }".
func (c Complex[N]) GoString() string {
	return "Complex { real: " + formatDebug(c.Real) +
		", imaginary: " + formatDebug(c.Imaginary) + "i }"
}

func signByte[N number.Float](v N) byte {
	if number.IsSignNegative(v) {
		return '-'
	}

	return '+'
}

// formatMagnitude prints |v| in plain decimal.
func formatMagnitude[N number.Float](v N, prec int) string {
	f := math.Abs(float64(v))
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 0):
		return "inf"
	}

	return strconv.FormatFloat(f, 'f', prec, number.BitSize[N]())
}

// formatDebug prints v with its sign.
func formatDebug[N number.Float](v N) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	bits := number.BitSize[N]()
	if a := math.Abs(f); a != 0 && (a < debugExpLow || a >= debugExpHigh) {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, bits))
	}

	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// trimExponent rewrites Go's "1e+20" / "1e-07" as "1e20" / "1e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mant, exp := s[:i], s[i+1:]
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if neg {
		exp = "-" + exp
	}

	return mant + "e" + exp
}
