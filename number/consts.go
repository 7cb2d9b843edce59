// SPDX-License-Identifier: MIT

package number

import "math"

// Mathematical constants typed as N. Each value is the float64 constant
// from package math rounded once to N's precision.

// Pi returns π.
func Pi[N Float]() N { return N(math.Pi) }

// Tau returns 2π.
func Tau[N Float]() N { return N(2 * math.Pi) }

// E returns Euler's number e.
func E[N Float]() N { return N(math.E) }

// FracPi2 returns π/2.
func FracPi2[N Float]() N { return N(math.Pi / 2) }

// FracPi3 returns π/3.
func FracPi3[N Float]() N { return N(math.Pi / 3) }

// FracPi4 returns π/4.
func FracPi4[N Float]() N { return N(math.Pi / 4) }

// FracPi6 returns π/6.
func FracPi6[N Float]() N { return N(math.Pi / 6) }

// FracPi8 returns π/8.
func FracPi8[N Float]() N { return N(math.Pi / 8) }

// Frac1Pi returns 1/π.
func Frac1Pi[N Float]() N { return N(1 / math.Pi) }

// Frac2Pi returns 2/π.
func Frac2Pi[N Float]() N { return N(2 / math.Pi) }

// Frac2SqrtPi returns 2/√π.
func Frac2SqrtPi[N Float]() N { return N(2 / math.SqrtPi) }

// Sqrt2 returns √2.
func Sqrt2[N Float]() N { return N(math.Sqrt2) }

// Frac1Sqrt2 returns 1/√2.
func Frac1Sqrt2[N Float]() N { return N(1 / math.Sqrt2) }

// Ln2 returns ln 2.
func Ln2[N Float]() N { return N(math.Ln2) }

// Ln10 returns ln 10.
func Ln10[N Float]() N { return N(math.Ln10) }

// Log2E returns log₂ e.
func Log2E[N Float]() N { return N(math.Log2E) }

// Log10E returns log₁₀ e.
func Log10E[N Float]() N { return N(math.Log10E) }

// Log2Of10 returns log₂ 10.
func Log2Of10[N Float]() N { return N(math.Log2E * math.Ln10) }

// Log10Of2 returns log₁₀ 2.
func Log10Of2[N Float]() N { return N(math.Log10E * math.Ln2) }
