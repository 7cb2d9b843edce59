// SPDX-License-Identifier: MIT

package number

// PowN raises base to the non-negative power n by binary exponentiation.
//
// Algorithm:
//  1. acc := one.
//  2. While n > 0: if the low bit of n is set, acc = acc*base;
//     base = base*base; n >>= 1.
//
// Complexity: O(log n) multiplications.
//
// one is passed explicitly because an interface cannot supply a
// static identity for T.
func PowN[T Ring[T]](base, one T, n uint64) T {
	acc := one
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}

	return acc
}

// PowI raises base to a signed power. Negative exponents invert the base
// first and use |n|; n == 0 yields one.
func PowI[T Field[T], I Signed](base, one T, n I) T {
	if n >= 0 {
		return PowN(base, one, uint64(n))
	}

	// -(n+1)+1 keeps the magnitude exact for the most negative I.
	return PowN(base.Recip(), one, uint64(-(n+1))+1)
}
