// Package matrix offers fixed-dimension, stack-resident linear algebra.
//
// The matrix package provides:
//
//   - Vector and Matrix: plain value types backed by fixed-capacity arrays
//     (dimension 1..MaxDim, fixed at construction, copied on assignment).
//   - LU: Gaussian elimination with partial pivoting, P·A = L·U, with
//     deterministic lowest-index tie-breaking, triangular solves and a
//     pivot-signed determinant.
//   - LDLT: unpivoted A = L·D·Lᵀ for symmetric positive (semi-)definite
//     matrices, three-stage solve and a diagonal determinant.
//   - Converters to and from gonum's mat types for callers with dynamic sizes.
//
// Factorizations are all-or-nothing: a pivot at or below the tolerance yields
// a *SingularError (errors.Is(err, ErrSingular)) carrying the column, the
// observed pivot and the tolerance, never a partially computed factorization.
// Every factor call takes its own tolerance; DefaultPivotTol and
// DefaultSingularTol are the library choices.
//
// Nothing is shared between calls, so independent values can be factored and
// solved from many goroutines without coordination.
//
// See the examples in this package and ops for usage patterns.
package matrix
