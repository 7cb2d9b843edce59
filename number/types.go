// SPDX-License-Identifier: MIT

// Package number: type constraints and capability interfaces.
// This file contains ONLY the constraint set and the interfaces a value type
// implements to be usable wherever a scalar numeric type is expected.
package number

import "golang.org/x/exp/constraints"

// Float is the component constraint: any type whose underlying type is
// float32 or float64.
type Float interface {
	constraints.Float
}

// Integer is any signed or unsigned integer type.
type Integer interface {
	constraints.Integer
}

// Signed is any signed integer type.
type Signed interface {
	constraints.Signed
}

// Primitive is the set of scalar types a value can be cast to or from.
type Primitive interface {
	constraints.Integer | constraints.Float
}

// Ring is the additive/multiplicative surface of a numeric value type T.
//
// Implementations are value types: every method returns a fresh T and leaves
// the receiver untouched.
type Ring[T any] interface {
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Neg() T

	// IsZero reports whether the value is the additive identity.
	IsZero() bool
	// IsOne reports whether the value is the multiplicative identity.
	IsOne() bool
}

// Field extends Ring with division and the multiplicative inverse.
type Field[T any] interface {
	Ring[T]
	Div(other T) T
	Recip() T
}

// Checked is the overflow-aware arithmetic surface. Each method returns
// ok=false instead of a non-representable result.
type Checked[T any] interface {
	CheckedAdd(other T) (T, bool)
	CheckedSub(other T) (T, bool)
	CheckedMul(other T) (T, bool)
	CheckedDiv(other T) (T, bool)
	CheckedNeg() (T, bool)
}
