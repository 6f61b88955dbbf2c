// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and typed factorization errors.
// All kernels MUST return these sentinels (optionally wrapped with an op tag)
// and tests MUST check them via errors.Is / errors.As. No kernel panics on
// user-triggered error conditions; panics are reserved for programmer errors
// in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Facades wrap with fmt.Errorf("<Op>: %w", err)
// via matrixErrorf; callers still match with errors.Is / errors.As.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/shape -> tolerance -> dimension mismatch -> symmetry -> NaN/Inf -> singular.

var (
	// ErrInvalidDimensions indicates that a requested dimension is outside 1..MaxDim,
	// or that a zero-value Vector/Matrix was used.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be in 1..MaxDim")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., a right-hand side whose length differs from the factorization.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that row-major input was ragged or not square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured epsilon (only checked under WithSymmetryCheck).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered during factorization or solve.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a pivot is at or below the factorization tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidTolerance indicates a negative, NaN or infinite tolerance.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite and non-negative")

	// ErrNilMatrix indicates that a nil *Matrix or *Vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil argument")
)

// SingularError reports the pivot column at which a factorization gave up,
// together with the observed pivot and the tolerance it was compared against.
// errors.Is(err, ErrSingular) is true for every *SingularError.
type SingularError struct {
	Op        string  // "LU" or "LDLT"
	Col       int     // pivot column
	Magnitude float64 // |pivot| for LU, signed d[j] for LDLT
	Tol       float64 // tolerance used
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("matrix: singular matrix at pivot column %d (pivot %g, tol %g)", e.Col, e.Magnitude, e.Tol)
}

// Unwrap exposes ErrSingular to errors.Is.
func (e *SingularError) Unwrap() error { return ErrSingular }

// NonFiniteError reports the column being processed when NaN or ±Inf showed up.
// errors.Is(err, ErrNaNInf) is true for every *NonFiniteError.
type NonFiniteError struct {
	Op  string
	Col int
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("matrix: NaN or Inf encountered at column %d", e.Col)
}

// Unwrap exposes ErrNaNInf to errors.Is.
func (e *NonFiniteError) Unwrap() error { return ErrNaNInf }
