// SPDX-License-Identifier: MIT

package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/complexn/number"
)

func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, math.Pi, number.Pi[float64]())
	assert.Equal(t, float32(math.Pi), number.Pi[float32]())
	assert.Equal(t, number.Pi[float64]()*2, number.Tau[float64]())
	assert.Equal(t, math.Sqrt2, number.Sqrt2[float64]())
	assert.InDelta(t, 1/math.Sqrt2, number.Frac1Sqrt2[float64](), 1e-16)
	assert.InDelta(t, math.Log2(10), number.Log2Of10[float64](), 1e-15)
	assert.InDelta(t, math.Log10(2), number.Log10Of2[float64](), 1e-16)
	assert.InDelta(t, 2/math.Sqrt(math.Pi), number.Frac2SqrtPi[float64](), 1e-15)
	assert.InDelta(t, math.Pi/8, float64(number.FracPi8[myFloat]()), 1e-7)
}
