// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lastack/matrix"
)

// TestValidateDim covers the accepted range boundaries.
func TestValidateDim(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateDim(1))
	require.NoError(t, matrix.ValidateDim(matrix.MaxDim))
	require.ErrorIs(t, matrix.ValidateDim(0), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateDim(matrix.MaxDim+1), matrix.ErrInvalidDimensions)
}

// TestValidateMatrixAndVector covers nil and zero-value inputs.
func TestValidateMatrixAndVector(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateMatrix(nil), matrix.ErrNilMatrix)
	var zm matrix.Matrix
	require.ErrorIs(t, matrix.ValidateMatrix(&zm), matrix.ErrInvalidDimensions)
	m := MustIdentity(t, 2)
	require.NoError(t, matrix.ValidateMatrix(&m))

	require.ErrorIs(t, matrix.ValidateVector(nil), matrix.ErrNilMatrix)
	var zv matrix.Vector
	require.ErrorIs(t, matrix.ValidateVector(&zv), matrix.ErrInvalidDimensions)
	v := MustVector(t, 1, 2)
	require.NoError(t, matrix.ValidateVector(&v))

	require.NoError(t, matrix.ValidateVecLen(&v, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(&v, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
}

// TestValidateTolerance accepts zero and rejects negative or non-finite values.
func TestValidateTolerance(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateTolerance(0))
	require.NoError(t, matrix.ValidateTolerance(matrix.DefaultPivotTol))
	for _, tol := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(t, matrix.ValidateTolerance(tol), matrix.ErrInvalidTolerance, "tol=%v", tol)
	}
}

// TestValidateSymmetric checks the relative bound eps·max(1, ‖A‖∞).
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := MustMatrix(t, [][]float64{{1, 2, 3}, {2, 5, 6}, {3, 6, 9}})
	require.NoError(t, matrix.ValidateSymmetric(&sym, 0))

	// ‖A‖∞ = 18, so eps = 1e-3 tolerates a skew of 0.018 but not 0.02.
	skew := MustMatrix(t, [][]float64{{1, 2, 3}, {2, 5, 6}, {3.01, 6, 9}})
	require.NoError(t, matrix.ValidateSymmetric(&skew, 1e-3))
	bad := MustMatrix(t, [][]float64{{1, 2, 3}, {2, 5, 6}, {3.02, 6, 9}})
	require.ErrorIs(t, matrix.ValidateSymmetric(&bad, 1e-3), matrix.ErrAsymmetry)

	// Non-finite off-diagonal entries never count as symmetric, whatever eps is.
	nanUpper := MustMatrix(t, [][]float64{{4, math.NaN()}, {2, 3}})
	require.ErrorIs(t, matrix.ValidateSymmetric(&nanUpper, 1e-12), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(&nanUpper, 1e6), matrix.ErrNaNInf)
	require.False(t, nanUpper.IsSymmetric(1e6))
	infPair := MustMatrix(t, [][]float64{{1, math.Inf(1)}, {math.Inf(1), 1}})
	require.ErrorIs(t, matrix.ValidateSymmetric(&infPair, 1e-12), matrix.ErrNaNInf)
	require.False(t, infPair.IsSymmetric(1e-12))

	require.ErrorIs(t, matrix.ValidateSymmetric(&sym, -1), matrix.ErrInvalidTolerance)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}
