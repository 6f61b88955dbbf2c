// Package matrix provides core linear algebra primitives for fixed-size computations.
// Matrix is a concrete, row-major square matrix stored inline in fixed-capacity
// arrays, so values live on the stack and copy by assignment.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Matrix method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Zero creates an n×n Matrix initialized to zeros.
// Stage 1 (Validate): ensure 1 ≤ n ≤ MaxDim.
// Stage 2 (Finalize): return the zero-filled value.
// Complexity: O(1); the backing array is already zeroed.
func Zero(n int) (Matrix, error) {
	if !validDim(n) {
		return Matrix{}, fmt.Errorf("Zero(%d): %w", n, ErrInvalidDimensions)
	}

	return Matrix{n: n}, nil
}

// Identity creates the n×n identity matrix.
// Complexity: O(n).
func Identity(n int) (Matrix, error) {
	m, err := Zero(n)
	if err != nil {
		return m, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.a[i][i] = 1.0
	}

	return m, nil
}

// FromRows builds a Matrix from row-major nested slices.
// Stage 1 (Validate): 1 ≤ len(rows) ≤ MaxDim and every row has len(rows) entries.
// Stage 2 (Execute): copy rows into the backing array.
// Complexity: O(n²).
func FromRows(rows [][]float64) (Matrix, error) {
	n := len(rows)
	if !validDim(n) {
		return Matrix{}, fmt.Errorf("FromRows(n=%d): %w", n, ErrInvalidDimensions)
	}
	m := Matrix{n: n}
	for r, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", r, len(row), n, ErrNonSquare)
		}
		copy(m.a[r][:n], row)
	}

	return m, nil
}

// Dim returns the dimension n of the n×n matrix.
func (m *Matrix) Dim() int {
	return m.n
}

// inBounds reports whether (row, col) addresses a live entry.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.n && col >= 0 && col < m.n
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for indices outside [0, Dim()).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return m.a[row][col], nil
}

// Set assigns value x at (row, col).
// Returns ErrOutOfRange for indices outside [0, Dim()).
// Complexity: O(1).
func (m *Matrix) Set(row, col int, x float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf("Set", row, col, ErrOutOfRange)
	}
	m.a[row][col] = x

	return nil
}

// Row returns row r as a Vector.
func (m *Matrix) Row(r int) (Vector, error) {
	if r < 0 || r >= m.n {
		return Vector{}, denseErrorf("Row", r, 0, ErrOutOfRange)
	}

	return Vector{n: m.n, v: m.a[r]}, nil
}

// Rows returns a fresh row-major copy of m.
// Complexity: O(n²) time and memory.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for r := 0; r < m.n; r++ {
		out[r] = make([]float64, m.n)
		copy(out[r], m.a[r][:m.n])
	}

	return out
}

// InfNorm returns the infinity norm (maximum absolute row sum).
// Complexity: O(n²).
func (m *Matrix) InfNorm() float64 {
	maxRowSum := NormZero
	var r, c int
	var rowSum float64
	for r = 0; r < m.n; r++ {
		rowSum = NormZero
		for c = 0; c < m.n; c++ {
			rowSum += math.Abs(m.a[r][c])
		}
		if rowSum > maxRowSum {
			maxRowSum = rowSum
		}
	}

	return maxRowSum
}

// IsSymmetric reports whether m is symmetric within eps·max(1, ‖m‖∞).
// Invalid matrices, invalid eps and non-finite off-diagonal entries report false.
func (m *Matrix) IsSymmetric(eps float64) bool {
	return ValidateSymmetric(m, eps) == nil
}

// String implements fmt.Stringer for easy debugging, on values and pointers alike.
// Only the n×n live block is printed.
// Complexity: O(n²) for string construction.
func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.n; r++ {
		sb.WriteString(fmt.Sprint(m.a[r][:m.n]))
		sb.WriteByte('\n')
	}

	return sb.String()
}
