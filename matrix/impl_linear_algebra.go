// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra surface over fixed-size Matrix
// and Vector values: matrix-vector product, transpose, and the factorization
// facades (LU, LDLT, Det, Solve) that resolve options and log failures.
//
// Purpose:
//   - Declare operation tags and shared constants for determinism and error reporting.
//   - Keep the engines (impl_lu.go, impl_ldlt.go) free of configuration concerns.
//
// Notes:
//   - All kernels use central validators and return sentinels wrapped via matrixErrorf.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opLU     = "LU"
	opLDLT   = "LDLT"
	opSolve  = "Solve"
	opDet    = "Det"
	opMatVec = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulVec computes y = m·x.
//
// Contract: m valid; x valid; x.Len() == m.Dim().
// Determinism: fixed i→j loop order, FMA accumulation.
// Complexity: Time O(n²), Space O(1).
func (m *Matrix) MulVec(x *Vector) (Vector, error) {
	if err := ValidateMatrix(m); err != nil {
		return Vector{}, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.n); err != nil {
		return Vector{}, matrixErrorf(opMatVec, err)
	}

	y := Vector{n: m.n}
	var i, j int
	var acc float64
	for i = 0; i < m.n; i++ {
		acc = ZeroSum
		for j = 0; j < m.n; j++ {
			acc = math.FMA(m.a[i][j], x.v[j], acc)
		}
		y.v[i] = acc
	}

	return y, nil
}

// Transpose returns mᵀ. The receiver is never mutated.
// Complexity: O(n²).
func (m *Matrix) Transpose() Matrix {
	out := Matrix{n: m.n}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			out.a[j][i] = m.a[i][j]
		}
	}

	return out
}

// LU factors m with partial pivoting.
// Tolerance: WithTolerance, else DefaultPivotTol.
// Errors: see FactorLU.
func (m *Matrix) LU(opts ...Option) (LU, error) {
	o := gatherOptions(opts...)
	f, err := FactorLU(m, o.tolOr(DefaultPivotTol))
	if err != nil {
		o.logFailure(opLU, m, err)

		return LU{}, err
	}

	return f, nil
}

// LDLT factors the symmetric matrix m as L·D·Lᵀ.
// Tolerance: WithTolerance, else DefaultSingularTol.
// With WithSymmetryCheck the input is first validated against WithEpsilon (ErrAsymmetry).
// Errors: see FactorLDLT.
func (m *Matrix) LDLT(opts ...Option) (LDLT, error) {
	o := gatherOptions(opts...)
	if o.checkSymmetry {
		if err := ValidateSymmetric(m, o.eps); err != nil {
			err = matrixErrorf(opLDLT, err)
			o.logFailure(opLDLT, m, err)

			return LDLT{}, err
		}
	}
	f, err := FactorLDLT(m, o.tolOr(DefaultSingularTol))
	if err != nil {
		o.logFailure(opLDLT, m, err)

		return LDLT{}, err
	}

	return f, nil
}

// Det returns the determinant of m computed through LU.
// Singular matrices (within tolerance) report an error rather than 0.
func (m *Matrix) Det(opts ...Option) (float64, error) {
	f, err := m.LU(opts...)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

// Solve solves m·x = b through LU.
// Factorization failures are wrapped with "Solve" like Det wraps with "Det".
func (m *Matrix) Solve(b *Vector, opts ...Option) (Vector, error) {
	f, err := m.LU(opts...)
	if err != nil {
		return Vector{}, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// logFailure emits one Debug record per failed factorization.
// Singular and non-finite failures carry their column diagnostics.
func (o *Options) logFailure(op string, m *Matrix, err error) {
	dim := 0
	if m != nil {
		dim = m.n
	}
	attrs := []any{"op", op, "dim", dim, "err", err}

	var se *SingularError
	var nf *NonFiniteError
	switch {
	case errors.As(err, &se):
		attrs = append(attrs, "col", se.Col, "magnitude", se.Magnitude, "tol", se.Tol)
	case errors.As(err, &nf):
		attrs = append(attrs, "col", nf.Col)
	}
	o.logger.Debug("factorization failed", attrs...)
}
