// SPDX-License-Identifier: MIT

// Package cplx provides Complex[N], a complex number generic over its
// floating-point component type.
//
// 🚀 What is Complex[N]?
//
//	An ordered pair (Real, Imaginary) of any float32- or float64-based type,
//	with the method surface of a scalar numeric type:
//	  • Construction: New, FromReal, FromArgumentAmplitude, Zero, One, I
//	  • Arithmetic: Add/Sub/Mul/Div, scalar AddF/SubF/MulF/DivF, Neg, Recip, Conj
//	  • Transcendental: Amplitude, Argument, Ln, Exp, Log, Powi, Powf, Pow
//	  • Component-wise: Abs, Signum, NaiveRound/Floor/Ceil/Trunc, Copysign
//	  • Raw bits: BitAnd/BitOr/BitXor, Bytes/FromBytes, MarshalBinary
//	  • Traits: CheckedAdd/Sub/Mul/Div/Neg, MinValue/MaxValue, Cast/As,
//	    FromPrimitive, and the math constants lifted to pure-real values
//
// ✨ Semantics worth knowing:
//
//   - IEEE-754 all the way down: division by zero, NaN and overflow
//     propagate component-wise; nothing panics or returns an error.
//   - AddF/SubF shift the REAL axis only; MulF/DivF scale both components.
//   - Abs is component-wise. The modulus is Amplitude.
//   - The Naive* rounding family rounds each axis independently and ignores
//     the geometry of the complex plane.
//   - Casts read the real component only; the imaginary part is dropped.
//   - Bitwise operators combine the fixed-width IEEE encodings of the two
//     operands byte by byte. The result has no numeric meaning, but is
//     bit-identical on every platform.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/complexn/cplx"
//
//	z := cplx.New(3.0, 4.0)
//	fmt.Println(z.Amplitude())        // 5
//	fmt.Println(z.Mul(cplx.I[float64]())) // ( - 4 + 3i )
//
//	b := z.Bytes()                    // 16 bytes, little-endian
//	back, err := cplx.FromBytes[float64](b)
//
// Performance:
//
//   - Every operation is O(1) except Powi, which is O(log |n|).
//   - Only the byte-encoding helpers allocate.
//
// See example_test.go for runnable examples.
package cplx
