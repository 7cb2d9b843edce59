// SPDX-License-Identifier: MIT

package number

import (
	"math"
	"unsafe"
)

// Bit widths of the two supported component layouts.
const (
	bits32 = 32
	bits64 = 64
)

// minNormal32 is the smallest positive normal float32 (2^-126).
const minNormal32 = 0x1p-126

// Float64 limits are variables: as constants they are not representable
// in float32, so N(const) would not compile.
var (
	maxFloat64  float64 = math.MaxFloat64
	minNormal64 float64 = 0x1p-1022
)

// BitSize returns the width of N in bits (32 or 64).
func BitSize[N Float]() int {
	var zero N

	return int(unsafe.Sizeof(zero)) * 8
}

// ByteSize returns the width of N in bytes (4 or 8).
func ByteSize[N Float]() int {
	var zero N

	return int(unsafe.Sizeof(zero))
}

// MaxValue returns the largest finite value of N.
func MaxValue[N Float]() N {
	if BitSize[N]() == bits32 {
		return N(math.MaxFloat32)
	}

	return N(maxFloat64)
}

// MinValue returns the most negative finite value of N (-MaxValue).
func MinValue[N Float]() N {
	return -MaxValue[N]()
}

// MinPositive returns the smallest positive normal value of N.
func MinPositive[N Float]() N {
	if BitSize[N]() == bits32 {
		return N(minNormal32)
	}

	return N(minNormal64)
}

// Epsilon returns the difference between 1 and the next representable N.
func Epsilon[N Float]() N {
	if BitSize[N]() == bits32 {
		return N(0x1p-23)
	}

	return N(0x1p-52)
}
