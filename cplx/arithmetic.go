// SPDX-License-Identifier: MIT

// Package cplx: field arithmetic.
//
// All operations follow IEEE-754 component-wise: nothing here checks for
// zero divisors or overflow. Use the Checked* family for that.
//
// Scalar variants are deliberately asymmetric:
//   - AddF / SubF move along the real axis only (x ± s = (re ± s, im)).
//   - MulF / DivF scale both components.
//
// The *Assign variants store the result in the receiver.
package cplx

// Add returns c + other.
func (c Complex[N]) Add(other Complex[N]) Complex[N] {
	return Complex[N]{Real: c.Real + other.Real, Imaginary: c.Imaginary + other.Imaginary}
}

// Sub returns c - other.
func (c Complex[N]) Sub(other Complex[N]) Complex[N] {
	return Complex[N]{Real: c.Real - other.Real, Imaginary: c.Imaginary - other.Imaginary}
}

// Mul returns c · other = (a·c − b·d, a·d + b·c).
func (c Complex[N]) Mul(other Complex[N]) Complex[N] {
	return Complex[N]{
		Real:      c.Real*other.Real - c.Imaginary*other.Imaginary,
		Imaginary: c.Real*other.Imaginary + c.Imaginary*other.Real,
	}
}

// Div returns c / other, computed as c·conj(other) / |other|².
// A zero divisor yields NaN/±Inf components.
func (c Complex[N]) Div(other Complex[N]) Complex[N] {
	denominator := other.Real*other.Real + other.Imaginary*other.Imaginary

	return Complex[N]{
		Real:      (c.Real*other.Real + c.Imaginary*other.Imaginary) / denominator,
		Imaginary: (c.Imaginary*other.Real - c.Real*other.Imaginary) / denominator,
	}
}

// AddF returns (re + s, im).
func (c Complex[N]) AddF(s N) Complex[N] {
	return Complex[N]{Real: c.Real + s, Imaginary: c.Imaginary}
}

// SubF returns (re - s, im).
func (c Complex[N]) SubF(s N) Complex[N] {
	return Complex[N]{Real: c.Real - s, Imaginary: c.Imaginary}
}

// MulF returns (re·s, im·s).
func (c Complex[N]) MulF(s N) Complex[N] {
	return Complex[N]{Real: c.Real * s, Imaginary: c.Imaginary * s}
}

// DivF returns (re/s, im/s).
func (c Complex[N]) DivF(s N) Complex[N] {
	return Complex[N]{Real: c.Real / s, Imaginary: c.Imaginary / s}
}

// Neg returns -c.
func (c Complex[N]) Neg() Complex[N] {
	return Complex[N]{Real: -c.Real, Imaginary: -c.Imaginary}
}

// Conj returns the complex conjugate (re, -im).
func (c Complex[N]) Conj() Complex[N] {
	return Complex[N]{Real: c.Real, Imaginary: -c.Imaginary}
}

// Not is an alias of Conj.
func (c Complex[N]) Not() Complex[N] {
	return c.Conj()
}

// Recip returns 1/c = conj(c) / |c|².
func (c Complex[N]) Recip() Complex[N] {
	divisor := c.Real*c.Real + c.Imaginary*c.Imaginary

	return Complex[N]{Real: c.Real / divisor, Imaginary: -c.Imaginary / divisor}
}

// Inv is an alias of Recip.
func (c Complex[N]) Inv() Complex[N] {
	return c.Recip()
}

// AddAssign sets c to c + other.
func (c *Complex[N]) AddAssign(other Complex[N]) { *c = c.Add(other) }

// SubAssign sets c to c - other.
func (c *Complex[N]) SubAssign(other Complex[N]) { *c = c.Sub(other) }

// MulAssign sets c to c · other.
func (c *Complex[N]) MulAssign(other Complex[N]) { *c = c.Mul(other) }

// DivAssign sets c to c / other.
func (c *Complex[N]) DivAssign(other Complex[N]) { *c = c.Div(other) }

// AddFAssign sets c to (re + s, im).
func (c *Complex[N]) AddFAssign(s N) { *c = c.AddF(s) }

// SubFAssign sets c to (re - s, im).
func (c *Complex[N]) SubFAssign(s N) { *c = c.SubF(s) }

// MulFAssign sets c to (re·s, im·s).
func (c *Complex[N]) MulFAssign(s N) { *c = c.MulF(s) }

// DivFAssign sets c to (re/s, im/s).
func (c *Complex[N]) DivFAssign(s N) { *c = c.DivF(s) }
