// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//  - Single source of truth for the guards shared by kernels.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Dimensionality).

package array

// validateNotNil ensures the array reference is non-nil.
func validateNotNil(a *Array) error {
	if a == nil {
		return ErrNilArray
	}

	return nil
}

// validateMatrix ensures a is a non-nil 2D array.
func validateMatrix(a *Array) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if a.ndim != 2 {
		return ErrShape
	}

	return nil
}

// validateVector ensures a is a non-nil 1D array.
func validateVector(a *Array) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if a.ndim != 1 {
		return ErrShape
	}

	return nil
}

// validateNonEmpty ensures a is non-nil and holds at least one element.
func validateNonEmpty(a *Array) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if len(a.data) == 0 {
		return ErrEmptyInput
	}

	return nil
}
