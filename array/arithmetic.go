// SPDX-License-Identifier: MIT

package array

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
)

// Add returns a + rhs with broadcasting (see ResolveBroadcast).
func (a *Array) Add(rhs *Array) (*Array, error) {
	return ewBinary(opAdd, a, rhs, func(x, y float64) float64 { return x + y })
}

// Sub returns a - rhs with broadcasting. Subtracting a keepdims row minimum
// shifts every row so its smallest element becomes 0.
func (a *Array) Sub(rhs *Array) (*Array, error) {
	return ewBinary(opSub, a, rhs, func(x, y float64) float64 { return x - y })
}

// Mul returns the elementwise product a * rhs with broadcasting.
func (a *Array) Mul(rhs *Array) (*Array, error) {
	return ewBinary(opMul, a, rhs, func(x, y float64) float64 { return x * y })
}

// Div returns a / rhs with broadcasting. A zero denominator yields 0 at that
// position instead of Inf or NaN.
func (a *Array) Div(rhs *Array) (*Array, error) {
	return ewBinary(opDiv, a, rhs, SafeDiv)
}

// SafeDiv returns x / y, or 0 when y == 0.
func SafeDiv(x, y float64) float64 {
	if y == 0 {
		return 0
	}

	return x / y
}

// Scale returns a copy with every element multiplied by k.
func (a *Array) Scale(k float64) *Array {
	if a == nil {
		return nil
	}

	return ewUnary(a, func(v float64) float64 { return v * k })
}

// Shift returns a copy with k added to every element.
func (a *Array) Shift(k float64) *Array {
	if a == nil {
		return nil
	}

	return ewUnary(a, func(v float64) float64 { return v + k })
}
