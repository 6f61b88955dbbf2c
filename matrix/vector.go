// Package matrix provides core linear algebra primitives for fixed-size computations.
// Vector is a stack-resident, fixed-capacity vector of float64 values.
package matrix

import (
	"fmt"
	"math"
)

// vectorErrorf wraps an underlying error with Vector method context.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// NewVector creates a Vector holding a copy of data.
// Stage 1 (Validate): ensure 1 ≤ len(data) ≤ MaxDim.
// Stage 2 (Execute): copy into the fixed backing array.
// Complexity: O(n).
func NewVector(data []float64) (Vector, error) {
	var out Vector
	if !validDim(len(data)) {
		return out, fmt.Errorf("NewVector(len=%d): %w", len(data), ErrInvalidDimensions)
	}
	out.n = len(data)
	copy(out.v[:], data)

	return out, nil
}

// ZeroVector creates an all-zeros Vector of length n.
// Complexity: O(1).
func ZeroVector(n int) (Vector, error) {
	if !validDim(n) {
		return Vector{}, fmt.Errorf("ZeroVector(%d): %w", n, ErrInvalidDimensions)
	}

	return Vector{n: n}, nil
}

// Len returns the logical length of v.
func (v *Vector) Len() int {
	return v.n
}

// At retrieves v[i].
// Returns ErrOutOfRange when i is outside [0, Len()).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.n {
		return 0, vectorErrorf("At", i, ErrOutOfRange)
	}

	return v.v[i], nil
}

// Set assigns v[i] = x.
// Returns ErrOutOfRange when i is outside [0, Len()).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= v.n {
		return vectorErrorf("Set", i, ErrOutOfRange)
	}
	v.v[i] = x

	return nil
}

// Array returns a fresh slice with the n entries of v.
func (v *Vector) Array() []float64 {
	out := make([]float64, v.n)
	copy(out, v.v[:v.n])

	return out
}

// Dot returns Σ v[i]·w[i], accumulated with fused multiply-add.
// Returns ErrDimensionMismatch when the lengths differ.
// Complexity: O(n).
func (v *Vector) Dot(w *Vector) (float64, error) {
	if err := ValidateVecLen(w, v.n); err != nil {
		return 0, fmt.Errorf("Vector.Dot: %w", err)
	}

	return dot(v, w), nil
}

// dot assumes equal lengths.
func dot(v, w *Vector) float64 {
	acc := ZeroSum
	for i := 0; i < v.n; i++ {
		acc = math.FMA(v.v[i], w.v[i], acc)
	}

	return acc
}

// Norm2Sq returns the squared Euclidean norm Σ v[i]².
func (v *Vector) Norm2Sq() float64 {
	return dot(v, v)
}

// InfNorm returns max |v[i]|.
func (v *Vector) InfNorm() float64 {
	m := NormZero
	for i := 0; i < v.n; i++ {
		if a := math.Abs(v.v[i]); a > m {
			m = a
		}
	}

	return m
}

// Sub returns v − w.
// Returns ErrDimensionMismatch when the lengths differ.
func (v *Vector) Sub(w *Vector) (Vector, error) {
	if err := ValidateVecLen(w, v.n); err != nil {
		return Vector{}, fmt.Errorf("Vector.Sub: %w", err)
	}
	out := Vector{n: v.n}
	for i := 0; i < v.n; i++ {
		out.v[i] = v.v[i] - w.v[i]
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
func (v Vector) String() string {
	return fmt.Sprint(v.v[:v.n])
}
