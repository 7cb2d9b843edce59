// SPDX-License-Identifier: MIT

package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/complexn/number"
)

func TestCheckedScalar(t *testing.T) {
	t.Parallel()

	maxV := math.MaxFloat64
	nan := math.NaN()

	tests := []struct {
		name   string
		run    func() (float64, bool)
		want   float64
		wantOK bool
	}{
		{"add", func() (float64, bool) { return number.CheckedAdd(1.5, 2.0) }, 3.5, true},
		{"add overflow", func() (float64, bool) { return number.CheckedAdd(maxV, maxV) }, 0, false},
		{"sub", func() (float64, bool) { return number.CheckedSub(1.0, 3.0) }, -2, true},
		{"sub overflow", func() (float64, bool) { return number.CheckedSub(-maxV, maxV) }, 0, false},
		{"mul", func() (float64, bool) { return number.CheckedMul(3.0, -4.0) }, -12, true},
		{"mul overflow", func() (float64, bool) { return number.CheckedMul(maxV, 2) }, 0, false},
		{"div", func() (float64, bool) { return number.CheckedDiv(1.0, 4.0) }, 0.25, true},
		{"div by zero", func() (float64, bool) { return number.CheckedDiv(1.0, 0.0) }, 0, false},
		{"zero by zero", func() (float64, bool) { return number.CheckedDiv(0.0, 0.0) }, 0, false},
		{"div overflow", func() (float64, bool) { return number.CheckedDiv(maxV, 0.5) }, 0, false},
		{"neg", func() (float64, bool) { return number.CheckedNeg(7.0) }, -7, true},
		{"neg nan", func() (float64, bool) { return number.CheckedNeg(nan) }, 0, false},
		{"nan operand", func() (float64, bool) { return number.CheckedAdd(nan, 1) }, 0, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tc.run()
			require.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckedFloat32Overflow(t *testing.T) {
	t.Parallel()

	// finite in float64, +Inf in float32
	_, ok := number.CheckedMul(float32(math.MaxFloat32), 2)
	assert.False(t, ok)

	v, ok := number.CheckedMul(float32(1e19), 1e19)
	assert.True(t, ok)
	assert.InEpsilon(t, 1e38, float64(v), 1e-6)
}
