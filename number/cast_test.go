// SPDX-License-Identifier: MIT

package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/complexn/number"
)

func TestCastIntegers(t *testing.T) {
	t.Parallel()

	nan, inf := math.NaN(), math.Inf(1)

	tests := []struct {
		name   string
		v      float64
		want   int8
		wantOK bool
	}{
		{"in range", 127.9, 127, true},
		{"lowest", -128.9, -128, true},
		{"overflow", 128, 0, false},
		{"underflow", -129, 0, false},
		{"nan", nan, 0, false},
		{"inf", inf, 0, false},
		{"truncates", -3.99, -3, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := number.Cast[int8](tc.v)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCastUnsigned(t *testing.T) {
	t.Parallel()

	v, ok := number.Cast[uint8](255.5)
	assert.True(t, ok)
	assert.Equal(t, uint8(255), v)

	v, ok = number.Cast[uint8](-0.5)
	assert.True(t, ok, "truncates to zero before the range check")
	assert.Equal(t, uint8(0), v)

	_, ok = number.Cast[uint8](-1.0)
	assert.False(t, ok)
	_, ok = number.Cast[uint8](256.0)
	assert.False(t, ok)
}

func TestCastWideIntegers(t *testing.T) {
	t.Parallel()

	_, ok := number.Cast[int64](0x1p63)
	assert.False(t, ok, "2^63 does not fit int64")

	v, ok := number.Cast[int64](-0x1p63)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), v)

	u, ok := number.Cast[uint64](0x1p63)
	assert.True(t, ok)
	assert.Equal(t, uint64(1)<<63, u)

	_, ok = number.Cast[uint64](0x1p64)
	assert.False(t, ok)

	n, ok := number.Cast[int](float32(-12.5))
	assert.True(t, ok)
	assert.Equal(t, -12, n)
}

func TestCastFloats(t *testing.T) {
	t.Parallel()

	f, ok := number.Cast[float32](1.5)
	assert.True(t, ok)
	assert.Equal(t, float32(1.5), f)

	_, ok = number.Cast[float32](1e300)
	assert.False(t, ok)

	inf, ok := number.Cast[float32](math.Inf(-1))
	assert.True(t, ok)
	assert.True(t, math.IsInf(float64(inf), -1))

	d, ok := number.Cast[float64](float32(0.25))
	assert.True(t, ok)
	assert.Equal(t, 0.25, d)
}

func TestAs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int8(127), number.As[int8](300.0))
	assert.Equal(t, int8(-128), number.As[int8](-300.0))
	assert.Equal(t, int8(-3), number.As[int8](-3.7))
	assert.Equal(t, uint8(255), number.As[uint8](300.0))
	assert.Equal(t, uint8(0), number.As[uint8](-3.0))
	assert.Equal(t, uint16(0), number.As[uint16](math.NaN()))
	assert.Equal(t, int64(math.MaxInt64), number.As[int64](1e30))
	assert.Equal(t, int64(math.MinInt64), number.As[int64](math.Inf(-1)))
	assert.Equal(t, uint64(math.MaxUint64), number.As[uint64](math.Inf(1)))
	assert.Equal(t, int32(math.MaxInt32), number.As[int32](float32(3e9)))
}

func TestFromPrimitive(t *testing.T) {
	t.Parallel()

	v, ok := number.FromPrimitive[float64](int16(-7))
	assert.True(t, ok)
	assert.Equal(t, -7.0, v)

	big, ok := number.FromPrimitive[float32](uint64(math.MaxUint64))
	assert.True(t, ok, "integers always convert, rounding")
	assert.Equal(t, float32(0x1p64), big)

	_, ok = number.FromPrimitive[float32](1e300)
	assert.False(t, ok)

	n, ok := number.FromPrimitive[float32](math.NaN())
	assert.True(t, ok)
	assert.True(t, math.IsNaN(float64(n)))

	f, ok := number.FromPrimitive[myFloat](float64(2.5))
	assert.True(t, ok)
	assert.Equal(t, myFloat(2.5), f)
}
