// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// All operations return these sentinels wrapped with an operation tag;
// callers match them with errors.Is. Division by zero has no sentinel:
// a zero denominator yields 0 for that element.

package array

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned when operand or construction shapes are incompatible
	// (jagged rows, broadcast mismatch, wrong dimensionality for the operation).
	ErrShape = errors.New("array: shape mismatch")

	// ErrUnsupportedAxis is returned when a reduction is requested along an axis
	// the operation does not implement.
	ErrUnsupportedAxis = errors.New("array: unsupported axis")

	// ErrEmptyInput is returned by reductions that have no value for zero elements.
	ErrEmptyInput = errors.New("array: empty input")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrNilArray indicates that a nil *Array or *Mask was used.
	ErrNilArray = errors.New("array: nil array")

	// ErrBadBounds indicates an empty or inverted random range (low >= high)
	// or a negative requested size.
	ErrBadBounds = errors.New("array: invalid bounds")
)

// arrayErrorf wraps an underlying error with the operation tag.
func arrayErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
