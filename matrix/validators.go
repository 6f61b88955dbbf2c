// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating dimension/nil/symmetry checks here.
//  - Return sentinel errors wrapped only with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on the success path.
//  - Symmetry check runs O(n²) on the strict upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// validDim reports whether n is a usable dimension.
func validDim(n int) bool {
	return n >= 1 && n <= MaxDim
}

// ValidateDim ensures 1 ≤ n ≤ MaxDim.
// Complexity: O(1).
func ValidateDim(n int) error {
	if !validDim(n) {
		return validatorErrorf("ValidateDim", ErrInvalidDimensions)
	}

	return nil
}

// ValidateMatrix ensures m is non-nil and was built by a constructor.
// Complexity: O(1).
func ValidateMatrix(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateMatrix", ErrNilMatrix)
	}
	if !validDim(m.n) {
		return validatorErrorf("ValidateMatrix", ErrInvalidDimensions)
	}

	return nil
}

// ValidateVector ensures v is non-nil and was built by a constructor.
// Complexity: O(1).
func ValidateVector(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVector", ErrNilMatrix)
	}
	if !validDim(v.n) {
		return validatorErrorf("ValidateVector", ErrInvalidDimensions)
	}

	return nil
}

// ValidateVecLen ensures v is valid and has exactly n entries.
// Use at every boundary where a vector meets a matrix or factorization.
// Complexity: O(1).
func ValidateVecLen(v *Vector, n int) error {
	if err := ValidateVector(v); err != nil {
		return err
	}
	if v.n != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTolerance ensures tol is finite and non-negative.
// Complexity: O(1).
func ValidateTolerance(tol float64) error {
	if isNonFinite(tol) || tol < 0 {
		return validatorErrorf("ValidateTolerance", ErrInvalidTolerance)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] − A[j,i]| ≤ eps·max(1, ‖A‖∞) for all i<j.
//
// Inputs: a valid matrix, non-negative finite eps.
// Errors: ErrNilMatrix / ErrInvalidDimensions from ValidateMatrix,
// ErrInvalidTolerance on bad eps, ErrNaNInf when an off-diagonal pair holds
// NaN or ±Inf, ErrAsymmetry on violation.
// Complexity: O(n²). Space: O(1).
func ValidateSymmetric(m *Matrix, eps float64) error {
	if err := ValidateMatrix(m); err != nil {
		return err
	}
	if isNonFinite(eps) || eps < 0 {
		return validatorErrorf("ValidateSymmetric", ErrInvalidTolerance)
	}

	bound := eps * math.Max(1, m.InfNorm())
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ { // strict upper triangle only
			if isNonFinite(m.a[i][j]) || isNonFinite(m.a[j][i]) {
				return validatorErrorf("ValidateSymmetric", ErrNaNInf)
			}
			if math.Abs(m.a[i][j]-m.a[j][i]) > bound {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
