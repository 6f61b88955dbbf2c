// Package lastack is a small, allocation-free linear algebra toolkit for
// fixed, small dimensions: geometric predicates, local fits, tiny physics
// systems and anything else that solves the same 2×2..16×16 problem millions
// of times.
//
// What is inside?
//
//	A focused library built around value types that live on the stack:
//		• Vector and Matrix with a dimension fixed at construction
//		• LU with partial pivoting: solve, determinant, L/U/P accessors
//		• LDLᵀ for symmetric positive (semi-)definite systems
//		• Typed errors: *SingularError carries the failing pivot column
//		• Converters to and from gonum/mat for dynamically sized code
//
// Why choose lastack?
//
//   - Predictable – deterministic pivoting (lowest row index wins ties)
//   - Honest – singular inputs fail with a reason, never a silent det = 0
//   - Cheap – no heap traffic on the factor/solve/det path when called without options
//   - Concurrency-friendly – no shared state; factor values from any goroutine
//
// Layout:
//
//	matrix/     — Vector, Matrix, LU, LDLT, options, validators, sentinel errors
//	matrix/ops/ — Solve, SolveSymmetric (LDLT with LU fallback), Inverse, Det, Residual
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{4, 2}, {2, 3}})
//	b, _ := matrix.NewVector([]float64{1, 2})
//	x, err := a.Solve(&b) // x = [-0.125 0.75]
//
//	go get github.com/katalvlaran/lastack
package lastack
