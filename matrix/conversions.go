// Package matrix provides converters between the fixed-size Matrix/Vector
// values and gonum's dynamically sized mat types. This is the boundary where
// dimensions arrive at run time, so shape errors are reported here and never
// inside the engines.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies a square gonum matrix into a Matrix.
// Returns ErrNilMatrix for nil input, ErrNonSquare for r ≠ c and
// ErrInvalidDimensions when r is outside 1..MaxDim.
//
// Time Complexity: O(n²)
func FromGonum(src mat.Matrix) (Matrix, error) {
	if src == nil {
		return Matrix{}, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	if r != c {
		return Matrix{}, fmt.Errorf("FromGonum: %dx%d: %w", r, c, ErrNonSquare)
	}
	if !validDim(r) {
		return Matrix{}, fmt.Errorf("FromGonum: %dx%d: %w", r, c, ErrInvalidDimensions)
	}

	m := Matrix{n: r}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.a[i][j] = src.At(i, j)
		}
	}

	return m, nil
}

// ToGonum returns a freshly allocated *mat.Dense copy of m.
//
// Time Complexity: O(n²)
func (m *Matrix) ToGonum() *mat.Dense {
	data := make([]float64, 0, m.n*m.n)
	for i := 0; i < m.n; i++ {
		data = append(data, m.a[i][:m.n]...)
	}

	return mat.NewDense(m.n, m.n, data)
}

// VectorFromGonum copies a gonum vector into a Vector.
// Returns ErrNilMatrix for nil input and ErrInvalidDimensions when the length
// is outside 1..MaxDim.
func VectorFromGonum(src mat.Vector) (Vector, error) {
	if src == nil {
		return Vector{}, fmt.Errorf("VectorFromGonum: %w", ErrNilMatrix)
	}
	n := src.Len()
	if !validDim(n) {
		return Vector{}, fmt.Errorf("VectorFromGonum: len=%d: %w", n, ErrInvalidDimensions)
	}

	v := Vector{n: n}
	for i := 0; i < n; i++ {
		v.v[i] = src.AtVec(i)
	}

	return v, nil
}

// ToGonum returns a freshly allocated *mat.VecDense copy of v.
func (v *Vector) ToGonum() *mat.VecDense {
	return mat.NewVecDense(v.n, v.Array())
}
