// SPDX-License-Identifier: MIT

package cplx

import (
	"math"

	"github.com/katalvlaran/complexn/number"
)

// IsZero reports whether both components are zero (either sign).
func (c Complex[N]) IsZero() bool {
	return c.Real == 0 && c.Imaginary == 0
}

// IsOne reports whether c is exactly 1 + 0i.
func (c Complex[N]) IsOne() bool {
	return c.Real == 1 && c.Imaginary == 0
}

// IsI reports whether c is exactly 0 + 1i.
func (c Complex[N]) IsI() bool {
	return c.Real == 0 && c.Imaginary == 1
}

// IsPureReal reports whether the imaginary component is zero.
func (c Complex[N]) IsPureReal() bool {
	return c.Imaginary == 0
}

// IsPureImaginary reports whether the real component is zero.
func (c Complex[N]) IsPureImaginary() bool {
	return c.Real == 0
}

// IsNaN reports whether either component is NaN.
func (c Complex[N]) IsNaN() bool {
	return number.IsNaN(c.Real) || number.IsNaN(c.Imaginary)
}

// IsFinite reports, per component, whether the value is neither NaN nor ±Inf.
func (c Complex[N]) IsFinite() (bool, bool) {
	return number.IsFinite(c.Real), number.IsFinite(c.Imaginary)
}

// IsNormal reports, per component, whether the value is normal (see number.IsNormal).
func (c Complex[N]) IsNormal() (bool, bool) {
	return number.IsNormal(c.Real), number.IsNormal(c.Imaginary)
}

// IsSubnormal reports, per component, whether the value is subnormal.
func (c Complex[N]) IsSubnormal() (bool, bool) {
	return number.IsSubnormal(c.Real), number.IsSubnormal(c.Imaginary)
}

// IsSignPositive reports, per component, whether the sign bit is clear.
func (c Complex[N]) IsSignPositive() (bool, bool) {
	return number.IsSignPositive(c.Real), number.IsSignPositive(c.Imaginary)
}

// IsSignNegative reports, per component, whether the sign bit is set.
func (c Complex[N]) IsSignNegative() (bool, bool) {
	return number.IsSignNegative(c.Real), number.IsSignNegative(c.Imaginary)
}

// Equal reports component-wise IEEE equality (NaN != NaN, -0 == +0).
func (c Complex[N]) Equal(other Complex[N]) bool {
	return c.Real == other.Real && c.Imaginary == other.Imaginary
}

// ApproxEqual reports whether each component of c is within eps of the
// matching component of other, where eps is absolute near zero and relative
// to the larger magnitude otherwise. Equal infinities compare equal; NaN
// never does.
//
// Options: WithEpsilon (default DefaultEpsilon).
func (c Complex[N]) ApproxEqual(other Complex[N], opts ...Option) bool {
	eps := gatherOptions(opts...).eps

	return approx(float64(c.Real), float64(other.Real), eps) &&
		approx(float64(c.Imaginary), float64(other.Imaginary), eps)
}

func approx(x, y, eps float64) bool {
	if x == y {
		return true
	}
	d := math.Abs(x - y)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return false
	}

	return d <= eps || d <= eps*math.Max(math.Abs(x), math.Abs(y))
}
