// SPDX-License-Identifier: MIT
// Package matrix: LDLᵀ factorization (A = L·D·Lᵀ) for symmetric positive
// (semi-)definite matrices, without pivoting.
//
// Purpose:
//   - Provide a cheaper alternative to LU for Gram-like matrices.
//   - Reject any diagonal pivot d ≤ tol, which covers both numerically singular and
//     indefinite inputs; callers that need robustness fall back to FactorLU.
//
// Notes:
//   - Symmetry is a precondition, not a check: only the lower triangle and the diagonal are read.
//     Use the WithSymmetryCheck facade option for a validated variant.

package matrix

import (
	"math"
)

// FactorLDLT computes A = L·D·Lᵀ for a symmetric matrix a.
// Implementation:
//   - Stage 1: Validate a and tol. Copy a into the working storage.
//   - Stage 2: For each column j: d = a[j][j] (already reduced by earlier columns).
//     Reject d ≤ tol with *SingularError.
//   - Stage 3: Scale column j below the diagonal by 1/d to obtain L[i][j].
//   - Stage 4: Rank-1 update of the trailing lower triangle: a[i][k] −= L[i][j]·d·L[k][j], j < k ≤ i.
//
// Behavior highlights:
//   - Equivalent to d[j] = a[j][j] − Σ_{p<j} L[j][p]²·d[p] and
//     L[i][j] = (a[i][j] − Σ_{p<j} L[i][p]·L[j][p]·d[p]) / d[j], evaluated column by column.
//   - The upper triangle of the working copy is never read nor written.
//
// Errors:
//   - ErrNilMatrix / ErrInvalidDimensions, ErrInvalidTolerance,
//     *SingularError (Magnitude carries the signed d[j]), *NonFiniteError.
//     All are wrapped with the "LDLT" op tag.
//
// Complexity:
//   - Time O(n³/3), Space O(1) beyond the returned value.
func FactorLDLT(a *Matrix, tol float64) (LDLT, error) {
	if err := ValidateMatrix(a); err != nil {
		return LDLT{}, matrixErrorf(opLDLT, err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return LDLT{}, matrixErrorf(opLDLT, err)
	}

	n := a.n
	f := LDLT{factors: *a, tol: tol}
	w := &f.factors.a

	var (
		i, j, k int
		d, l    float64
		negLD   float64
	)
	for j = 0; j < n; j++ {
		d = w[j][j]
		if isNonFinite(d) {
			return LDLT{}, matrixErrorf(opLDLT, &NonFiniteError{Op: opLDLT, Col: j})
		}
		if d <= tol {
			return LDLT{}, matrixErrorf(opLDLT, &SingularError{Op: opLDLT, Col: j, Magnitude: d, Tol: tol})
		}

		// L multipliers below the diagonal in column j.
		for i = j + 1; i < n; i++ {
			l = w[i][j] / d
			if isNonFinite(l) {
				return LDLT{}, matrixErrorf(opLDLT, &NonFiniteError{Op: opLDLT, Col: j})
			}
			w[i][j] = l
		}

		// Trailing lower triangle: A := A − (L_col·d)·L_colᵀ.
		for i = j + 1; i < n; i++ {
			negLD = -w[i][j] * d
			for k = j + 1; k <= i; k++ {
				w[i][k] = math.FMA(negLD, w[k][j], w[i][k])
				if isNonFinite(w[i][k]) {
					return LDLT{}, matrixErrorf(opLDLT, &NonFiniteError{Op: opLDLT, Col: j})
				}
			}
		}
	}

	return f, nil
}

// Solve solves A·x = b in three stages: L·y = b, z = y/d, Lᵀ·x = z.
// There is no permutation step.
//
// Errors:
//   - ErrDimensionMismatch (len(b) ≠ Dim()), *NonFiniteError on overflow.
//
// Complexity:
//   - Time O(n²).
func (f *LDLT) Solve(b *Vector) (Vector, error) {
	n := f.factors.n
	if err := ValidateVecLen(b, n); err != nil {
		return Vector{}, matrixErrorf(opSolve, err)
	}

	x := *b
	w := &f.factors.a
	var (
		i, j int
		sum  float64
	)

	// Forward substitution: L·y = b (unit diagonal).
	for i = 0; i < n; i++ {
		sum = x.v[i]
		for j = 0; j < i; j++ {
			sum = math.FMA(-w[i][j], x.v[j], sum)
		}
		if isNonFinite(sum) {
			return Vector{}, matrixErrorf(opSolve, &NonFiniteError{Op: opLDLT, Col: i})
		}
		x.v[i] = sum
	}

	// Diagonal solve: D·z = y.
	for i = 0; i < n; i++ {
		x.v[i] /= w[i][i]
		if isNonFinite(x.v[i]) {
			return Vector{}, matrixErrorf(opSolve, &NonFiniteError{Op: opLDLT, Col: i})
		}
	}

	// Back substitution: Lᵀ·x = z, reading L by columns.
	for i = n - 1; i >= 0; i-- {
		sum = x.v[i]
		for j = i + 1; j < n; j++ {
			sum = math.FMA(-w[j][i], x.v[j], sum)
		}
		if isNonFinite(sum) {
			return Vector{}, matrixErrorf(opSolve, &NonFiniteError{Op: opLDLT, Col: i})
		}
		x.v[i] = sum
	}

	return x, nil
}

// Det returns Π d[j]. No sign correction is needed (no permutation).
func (f *LDLT) Det() float64 {
	det := 1.0
	for i := 0; i < f.factors.n; i++ {
		det *= f.factors.a[i][i]
	}

	return det
}

// Dim returns the dimension of the factorized matrix.
func (f *LDLT) Dim() int { return f.factors.n }

// Tol returns the singularity tolerance the factorization was computed with.
func (f *LDLT) Tol() float64 { return f.tol }

// Diagonal returns D as a Vector.
func (f *LDLT) Diagonal() Vector {
	out := Vector{n: f.factors.n}
	for i := 0; i < f.factors.n; i++ {
		out.v[i] = f.factors.a[i][i]
	}

	return out
}

// Factors returns a copy of the combined storage. Only the lower triangle and
// the diagonal are meaningful; the upper triangle still holds the input values.
func (f *LDLT) Factors() Matrix { return f.factors }

// L returns the unit lower-triangular factor as a separate matrix.
func (f *LDLT) L() Matrix {
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
