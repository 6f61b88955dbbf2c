// Package ops provides convenience operations built on the lastack/matrix factorizations.
package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lastack/matrix"
)

// Solve solves a·x = b through a pivoted LU factorization.
// Blueprint:
//
//	Stage 1 (Decompose): P·A = L·U via matrix.FactorLU (tolerance from opts).
//	Stage 2 (Execute): permute b, forward- and back-substitute.
//
// Errors are the matrix sentinels/typed errors wrapped with "Solve".
// Complexity: O(n³) time; no heap allocation when called without opts.
func Solve(a *matrix.Matrix, b *matrix.Vector, opts ...matrix.Option) (matrix.Vector, error) {
	lu, err := a.LU(opts...)
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("Solve: %w", err)
	}
	x, err := lu.Solve(b)
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("Solve: %w", err)
	}

	return x, nil
}

// SolveSymmetric solves a·x = b for symmetric a.
// Blueprint:
//
//	Stage 1 (Decompose): try A = L·D·Lᵀ (cheaper, no pivoting).
//	Stage 2 (Fallback): if LDLT reports ErrSingular (indefinite or near-singular),
//	                    retry with pivoted LU on the same input and options.
//	Stage 3 (Execute): solve with whichever factorization succeeded.
//
// Only ErrSingular triggers the fallback; ErrAsymmetry, ErrNaNInf and shape
// errors are returned as-is.
// Complexity: O(n³) time.
func SolveSymmetric(a *matrix.Matrix, b *matrix.Vector, opts ...matrix.Option) (matrix.Vector, error) {
	ldlt, err := a.LDLT(opts...)
	if err == nil {
		x, serr := ldlt.Solve(b)
		if serr != nil {
			return matrix.Vector{}, fmt.Errorf("SolveSymmetric: %w", serr)
		}

		return x, nil
	}
	if !errors.Is(err, matrix.ErrSingular) {
		return matrix.Vector{}, fmt.Errorf("SolveSymmetric: %w", err)
	}

	x, err := Solve(a, b, opts...)
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("SolveSymmetric: %w", err)
	}

	return x, nil
}

// Det returns the determinant of a through LU.
func Det(a *matrix.Matrix, opts ...matrix.Option) (float64, error) {
	return a.Det(opts...)
}
