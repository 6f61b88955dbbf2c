// Package ops provides convenience operations built on the lastack/matrix factorizations.
// Inverse computes the inverse of a square matrix using one LU factorization
// and n forward/backward solves against the identity columns.
package ops

import (
	"fmt"

	"github.com/katalvlaran/lastack/matrix"
)

// Inverse returns A⁻¹, or an error if A is singular within tolerance.
// Blueprint:
//
//	Stage 1 (Decompose): P·A = L·U via FactorLU, once.
//	Stage 2 (Execute): for each identity column e_col, solve A·x = e_col.
//	Stage 3 (Finalize): write x into column col of the result.
//
// Complexity: O(n³) time; everything stays in fixed-size values.
func Inverse(a *matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error) {
	// Stage 1: Decompose
	lu, err := a.LU(opts...)
	if err != nil {
		return matrix.Matrix{}, fmt.Errorf("Inverse: %w", err)
	}

	// Stage 2: Prepare result container and basis vector
	n := lu.Dim()
	inv, err := matrix.Zero(n)
	if err != nil {
		return matrix.Matrix{}, fmt.Errorf("Inverse: %w", err)
	}
	e, err := matrix.ZeroVector(n)
	if err != nil {
		return matrix.Matrix{}, fmt.Errorf("Inverse: %w", err)
	}

	var (
		col, i int           // loop indices
		x      matrix.Vector // solution for e_col
		xi     float64       // x[i]
	)
	for col = 0; col < n; col++ {
		_ = e.Set(col, 1.0) // e_col
		x, err = lu.Solve(&e)
		if err != nil {
			return matrix.Matrix{}, fmt.Errorf("Inverse: column %d: %w", col, err)
		}
		_ = e.Set(col, 0.0)

		// Stage 3: write column col
		for i = 0; i < n; i++ {
			xi, _ = x.At(i)
			_ = inv.Set(i, col, xi)
		}
	}

	return inv, nil
}
