// SPDX-License-Identifier: MIT

package number

// Checked scalar arithmetic.
//
// Every operation returns (result, true) when the IEEE-754 result is finite
// and (0, false) otherwise: overflow to ±Inf, NaN production and NaN/Inf
// operands all count as failure. CheckedDiv additionally rejects a zero
// divisor, even for a 0/0 whose IEEE result would be NaN anyway.

// CheckedAdd returns a+b, or ok=false if the sum is not finite.
func CheckedAdd[N Float](a, b N) (N, bool) {
	return finite(a + b)
}

// CheckedSub returns a-b, or ok=false if the difference is not finite.
func CheckedSub[N Float](a, b N) (N, bool) {
	return finite(a - b)
}

// CheckedMul returns a*b, or ok=false if the product is not finite.
func CheckedMul[N Float](a, b N) (N, bool) {
	return finite(a * b)
}

// CheckedDiv returns a/b, or ok=false on a zero divisor or a non-finite quotient.
func CheckedDiv[N Float](a, b N) (N, bool) {
	if b == 0 {
		return 0, false
	}

	return finite(a / b)
}

// CheckedNeg returns -a, or ok=false if a is not finite.
func CheckedNeg[N Float](a N) (N, bool) {
	return finite(-a)
}

// finite gates v through the numeric policy.
func finite[N Float](v N) (N, bool) {
	if !IsFinite(v) {
		return 0, false
	}

	return v, true
}
