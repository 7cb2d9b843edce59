// SPDX-License-Identifier: MIT

// Package number describes the scalar component types that complexn builds on.
//
// 🚀 What lives here?
//
//	The capability set a floating-point component must offer so that a
//	complex value can be built on top of it, expressed as Go generics:
//	  • Float / Integer / Primitive type constraints (x/exp/constraints)
//	  • Bounds: MinValue, MaxValue, Epsilon, MinPositive
//	  • Checked scalar arithmetic returning (value, ok)
//	  • Range-checked and saturating primitive casts
//	  • IEEE-754 classification (IsFinite, IsNormal, IsSubnormal, sign bit)
//	  • Mathematical constants (Pi, E, Ln2 …) typed as N
//	  • Ring / Field / Checked interfaces and PowN, a generic
//	    exponentiation-by-squaring over any Ring
//
// ✨ Numeric policy:
//
//   - Arithmetic follows IEEE-754; nothing here normalises NaN or ±Inf.
//   - Checked operations fail (ok=false) whenever the exact result cannot
//     be represented as a finite value of N.
//   - Casts mirror the two classic flavours: Cast is range-checked,
//     As saturates.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/complexn/number"
//
//	max := number.MaxValue[float32]()          // 3.4028235e+38
//	sum, ok := number.CheckedAdd(max, max)     // ok == false
//	i8, ok := number.Cast[int8](float64(127.9)) // 127, true
//
// Performance:
//
//   - Every function is O(1) and allocation-free.
package number
