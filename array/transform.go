// SPDX-License-Identifier: MIT

package array

import "math"

// Round returns a copy with every element rounded to decimals digits,
// ties to even. Negative decimals round to tens, hundreds and so on.
// Shape is preserved.
func (a *Array) Round(decimals int) *Array {
	if a == nil {
		return nil
	}

	return ewUnary(a, func(v float64) float64 { return RoundEven(v, decimals) })
}

// RoundEven rounds x to prec decimal digits with ties going to the even
// neighbour. Integers with prec >= 0, ±0, ±Inf and NaN are returned as is
// (zero without its sign bit).
func RoundEven(x float64, prec int) float64 {
	if x == 0 {
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	scaled := x * pow
	if math.IsInf(scaled, 0) {
		return x
	}
	x = math.RoundToEven(scaled)
	if x == 0 {
		return 0
	}

	return x / pow
}

// Clip returns a copy where every element greater than max is replaced by
// max. There is no lower bound: smaller elements pass through unchanged.
func (a *Array) Clip(max float64) *Array {
	if a == nil {
		return nil
	}

	return ewUnary(a, func(v float64) float64 {
		if v > max {
			return max
		}
		return v
	})
}
