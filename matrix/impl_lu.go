// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting (P·A = L·U),
// triangular solves and the pivot-signed determinant.
//
// Purpose:
//   - Provide the pivoted LU engine over stack-resident Matrix values.
//   - Carry the singularity policy: a pivot with |pivot| ≤ tol aborts the whole factorization.
//
// Notes:
//   - The engine works on a private copy of the input; the returned LU never aliases it.
//   - No heap allocation on the factor/solve/det path.

package matrix

import (
	"math"
)

// FactorLU computes the LU factorization of a with partial (row) pivoting.
// Implementation:
//   - Stage 1: Validate a (non-nil, constructed) and tol (finite, ≥ 0). Copy a into the working storage.
//   - Stage 2: For each pivot column k, scan rows k..n−1 and pick the row with the largest |a[r][k]|.
//     Ties keep the first row met in scan order (lowest index).
//   - Stage 3: Reject |pivot| ≤ tol with *SingularError. Swap the pivot row into place,
//     record the swap in the permutation and flip the pivot sign.
//   - Stage 4: For r > k store m = a[r][k]/a[k][k] in place and update columns k+1..n−1 of row r.
//
// Behavior highlights:
//   - All-or-nothing: a failing column returns the zero LU and an error, never a partial factorization.
//   - Columns < k of the working storage already hold multipliers and are not touched again.
//
// Inputs:
//   - a: valid n×n matrix (read-only; copied).
//   - tol: absolute pivot tolerance; DefaultPivotTol is the library choice.
//
// Returns:
//   - LU: combined L/U storage, permutation, pivot sign and tol.
//
// Errors:
//   - ErrNilMatrix / ErrInvalidDimensions (invalid a), ErrInvalidTolerance (bad tol),
//     *SingularError (wraps ErrSingular) at the first sub-tolerance pivot column,
//     *NonFiniteError (wraps ErrNaNInf) when NaN/±Inf reaches a pivot column or multiplier.
//     All are wrapped with the "LU" op tag.
//
// Determinism:
//   - Fixed k→r→c loop order and a strict ">" comparison in the pivot scan.
//
// Complexity:
//   - Time O(n³), Space O(1) beyond the returned value.
//
// AI-Hints:
//   - Factor once and call Solve repeatedly for several right-hand sides.
//   - Loosen tol only when the caller knows the scale of its inputs; the threshold is absolute.
func FactorLU(a *Matrix, tol float64) (LU, error) {
	if err := ValidateMatrix(a); err != nil {
		return LU{}, matrixErrorf(opLU, err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return LU{}, matrixErrorf(opLU, err)
	}

	n := a.n
	f := LU{factors: *a, pivotSign: 1.0, tol: tol}
	for i := 0; i < n; i++ {
		f.perm[i] = i
	}

	w := &f.factors.a // working storage
	var (
		k, r, c  int     // loop iterators
		pivotRow int     // row chosen for column k
		pivotAbs float64 // |pivot| candidate
		v        float64 // |a[r][k]| during the scan
		pivot    float64 // a[k][k] after the swap
		mult     float64 // elimination multiplier
		negMult  float64 // −mult, hoisted for the FMA update
	)
	for k = 0; k < n; k++ {
		// Choose pivot row.
		pivotRow = k
		pivotAbs = math.Abs(w[k][k])
		if isNonFinite(pivotAbs) {
			return LU{}, matrixErrorf(opLU, &NonFiniteError{Op: opLU, Col: k})
		}
		for r = k + 1; r < n; r++ {
			v = math.Abs(w[r][k])
			if isNonFinite(v) {
				return LU{}, matrixErrorf(opLU, &NonFiniteError{Op: opLU, Col: k})
			}
			if v > pivotAbs { // strict: ties keep the lower row index
				pivotAbs = v
				pivotRow = r
			}
		}

		if pivotAbs <= tol {
			return LU{}, matrixErrorf(opLU, &SingularError{Op: opLU, Col: k, Magnitude: pivotAbs, Tol: tol})
		}

		if pivotRow != k {
			w[k], w[pivotRow] = w[pivotRow], w[k]
			f.perm[k], f.perm[pivotRow] = f.perm[pivotRow], f.perm[k]
			f.pivotSign = -f.pivotSign
		}

		// Eliminate below pivot.
		pivot = w[k][k]
		for r = k + 1; r < n; r++ {
			mult = w[r][k] / pivot
			if isNonFinite(mult) {
				return LU{}, matrixErrorf(opLU, &NonFiniteError{Op: opLU, Col: k})
			}
			w[r][k] = mult

			negMult = -mult
			for c = k + 1; c < n; c++ {
				w[r][c] = math.FMA(negMult, w[k][c], w[r][c])
			}
		}
	}

	return f, nil
}

// Solve solves A·x = b using the factorization.
// Implementation:
//   - Stage 1: Validate len(b) == Dim(). Gather x[i] = b[perm[i]].
//   - Stage 2: Forward substitution with unit-lower L (top-down).
//   - Stage 3: Back substitution with U (bottom-up).
//
// Returns:
//   - Vector: x with A·x ≈ b for the original, unpermuted A.
//
// Errors:
//   - ErrNilMatrix / ErrInvalidDimensions (invalid b), ErrDimensionMismatch (len(b) ≠ Dim()),
//     *NonFiniteError when an intermediate overflows to ±Inf or becomes NaN.
//
// Complexity:
//   - Time O(n²), Space O(1) beyond the returned value.
//
// Notes:
//   - U's diagonal passed |u_ii| > tol at factorization time, so the divisions are safe.
func (f *LU) Solve(b *Vector) (Vector, error) {
	n := f.factors.n
	if err := ValidateVecLen(b, n); err != nil {
		return Vector{}, matrixErrorf(opSolve, err)
	}

	x := Vector{n: n}
	var (
		i, j int
		sum  float64
	)
	for i = 0; i < n; i++ {
		x.v[i] = b.v[f.perm[i]]
	}

	w := &f.factors.a
	// Forward substitution for L (unit diagonal).
	for i = 0; i < n; i++ {
		sum = x.v[i]
		for j = 0; j < i; j++ {
			sum = math.FMA(-w[i][j], x.v[j], sum)
		}
		if isNonFinite(sum) {
			return Vector{}, matrixErrorf(opSolve, &NonFiniteError{Op: opLU, Col: i})
		}
		x.v[i] = sum
	}

	// Back substitution for U.
	for i = n - 1; i >= 0; i-- {
		sum = x.v[i]
		for j = i + 1; j < n; j++ {
			sum = math.FMA(-w[i][j], x.v[j], sum)
		}
		sum /= w[i][i]
		if isNonFinite(sum) {
			return Vector{}, matrixErrorf(opSolve, &NonFiniteError{Op: opLU, Col: i})
		}
		x.v[i] = sum
	}

	return x, nil
}

// Det returns the determinant of the factorized matrix: pivotSign · Π U[i][i].
// Complexity: O(n).
func (f *LU) Det() float64 {
	det := f.pivotSign
	for i := 0; i < f.factors.n; i++ {
		det *= f.factors.a[i][i]
	}

	return det
}

// Dim returns the dimension of the factorized matrix.
func (f *LU) Dim() int { return f.factors.n }

// Tol returns the pivot tolerance the factorization was computed with.
func (f *LU) Tol() float64 { return f.tol }

// PivotSign returns +1 or −1, the parity of the row permutation.
func (f *LU) PivotSign() float64 { return f.pivotSign }

// Permutation returns a fresh copy of the row order: row i of P·A is row Permutation()[i] of A.
func (f *LU) Permutation() []int {
	out := make([]int, f.factors.n)
	copy(out, f.perm[:f.factors.n])

	return out
}

// Factors returns a copy of the combined L/U storage.
func (f *LU) Factors() Matrix { return f.factors }

// L returns the unit lower-triangular factor as a separate matrix.
// Complexity: O(n²).
func (f *LU) L() Matrix {
	n := f.factors.n
	out := Matrix{n: n}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			out.a[i][j] = f.factors.a[i][j]
		}
		out.a[i][i] = 1.0
	}

	return out
}

// U returns the upper-triangular factor as a separate matrix.
// Complexity: O(n²).
func (f *LU) U() Matrix {
	n := f.factors.n
	out := Matrix{n: n}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.a[i][j] = f.factors.a[i][j]
		}
	}

	return out
}
