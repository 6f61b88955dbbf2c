// SPDX-License-Identifier: MIT

// Package matrix: value types shared by the numeric substrate and the
// factorization engines. This file contains ONLY type declarations and the
// capacity constant; behavior lives in vector.go, dense.go and impl_*.go.
package matrix

// MaxDim is the largest supported dimension. Every Vector and Matrix is backed
// by fixed-capacity arrays of this size and never touches the heap on its own.
const MaxDim = 16

// Vector is a fixed-length sequence of n float64 values, 1 ≤ n ≤ MaxDim.
// It is a plain value: assignment copies it, copies are independent.
// The zero value has n == 0 and is rejected by every operation.
type Vector struct {
	n int             // logical length, fixed at construction
	v [MaxDim]float64 // entries [0,n) are meaningful, the tail stays zero
}

// Matrix is an n×n row-major matrix of float64 values, 1 ≤ n ≤ MaxDim.
// It is a plain value: assignment copies it, copies are independent.
// The zero value has n == 0 and is rejected by every operation.
type Matrix struct {
	n int                     // dimension, fixed at construction
	a [MaxDim][MaxDim]float64 // a[r][c] for r,c in [0,n); the rest stays zero
}

// LU is a successful LU factorization with partial pivoting, P·A = L·U.
//
// Storage:
//   - factors holds U in the upper triangle (diagonal included) and the
//     multipliers of L in the strict lower triangle; diag(L) = 1 is implicit.
//   - perm[i] is the original row that ended up in position i.
//   - pivotSign is +1 for an even number of row swaps, −1 otherwise.
//
// An LU value exists only in the successful state: construction fails instead
// of producing a degraded factorization. It does not reference its input.
type LU struct {
	factors   Matrix
	perm      [MaxDim]int
	pivotSign float64
	tol       float64
}

// LDLT is a successful A = L·D·Lᵀ factorization of a symmetric positive
// (semi-)definite matrix, computed without pivoting.
//
// Storage:
//   - factors holds D on the diagonal and the multipliers of L in the strict
//     lower triangle; diag(L) = 1 is implicit. The strict upper triangle keeps
//     the input values and is never read.
type LDLT struct {
	factors Matrix
	tol     float64
}
