// Package complexn is a generic complex-number library: one value type,
// Complex[N], whose components are any float32- or float64-based type.
//
// 🚀 What is complexn?
//
//	A small, dependency-light module that brings together:
//		• cplx/   : Complex[N] with arithmetic, exp/log/pow, polar form,
//		            component-wise rounding, raw bit operations, binary
//		            encoding and numeric-trait conformance
//		• number/ : the component capability set: constraints, bounds,
//		            checked arithmetic, casts, IEEE classification, constants
//
// ✨ Why choose complexn?
//
//   - Generic: one implementation for float32, float64 and named float types
//   - Predictable: IEEE-754 component-wise, no hidden normalisation
//   - Portable: bit operations and encoding use a fixed, explicit layout
//   - Pure Go: no cgo
//
// Quick example:
//
//	z := cplx.New(0.0, 1.0)          // i
//	fmt.Println(z.Mul(z))            // ( - 1 + 0i )
//	fmt.Println(z.Powi(4).IsOne())   // true
//
//	go get github.com/katalvlaran/complexn
package complexn
