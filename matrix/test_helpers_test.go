// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded RNG only) for the factorization tests.
//   • Provide prop* assertions shared by LU and LDLT tests.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lastack/matrix"
)

// Solve / reconstruction tolerances used across the property tests.
const (
	tightTol = 1e-12
	looseTol = 1e-9
)

// MustMatrix builds a Matrix from row-major data or fails the test.
func MustMatrix(t testing.TB, rows [][]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err, "FromRows")

	return m
}

// MustVector builds a Vector or fails the test.
func MustVector(t testing.TB, data ...float64) matrix.Vector {
	t.Helper()
	v, err := matrix.NewVector(data)
	require.NoError(t, err, "NewVector")

	return v
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) matrix.Matrix {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err, "Identity(%d)", n)

	return m
}

// jMinusI returns the n×n matrix with zeros on the diagonal and ones elsewhere.
func jMinusI(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = 1
			}
		}
	}

	return rows
}

// randomWellConditioned returns a strictly diagonally dominant matrix whose rows
// were shuffled, so LU must pivot while the condition number stays small.
func randomWellConditioned(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 2*rng.Float64() - 1
		}
		rows[i][i] += float64(n) * math.Copysign(1, rows[i][i])
	}
	rng.Shuffle(n, func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })

	return rows
}

// randomSPD returns M·Mᵀ + shift·I for a random M with entries in [-1, 1].
func randomSPD(rng *rand.Rand, n int, shift float64) [][]float64 {
	mm := make([][]float64, n)
	for i := range mm {
		mm[i] = make([]float64, n)
		for j := range mm[i] {
			mm[i][j] = 2*rng.Float64() - 1
		}
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			for k := 0; k < n; k++ {
				out[i][j] += mm[i][k] * mm[j][k]
			}
		}
		out[i][i] += shift
	}

	return out
}

// randomVec returns n values uniform in [-scale, scale].
func randomVec(rng *rand.Rand, n int, scale float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = scale * (2*rng.Float64() - 1)
	}

	return out
}

// mulRows computes rows·x on plain slices (independent of the package under test).
func mulRows(rows [][]float64, x []float64) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		for j, v := range row {
			out[i] += v * x[j]
		}
	}

	return out
}

// cofactorDet is a reference determinant by Laplace expansion along row 0.
// Intended for n ≤ 4.
func cofactorDet(rows [][]float64) float64 {
	n := len(rows)
	if n == 1 {
		return rows[0][0]
	}
	if n == 2 {
		return rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0]
	}
	det := 0.0
	sign := 1.0
	for c := 0; c < n; c++ {
		minor := make([][]float64, 0, n-1)
		for r := 1; r < n; r++ {
			row := make([]float64, 0, n-1)
			row = append(row, rows[r][:c]...)
			row = append(row, rows[r][c+1:]...)
			minor = append(minor, row)
		}
		det += sign * rows[0][c] * cofactorDet(minor)
		sign = -sign
	}

	return det
}

// propPermutation asserts p is a bijection on {0, …, n−1}.
func propPermutation(t *testing.T, p []int, n int) {
	t.Helper()
	require.Len(t, p, n)
	seen := make([]bool, n)
	for _, v := range p {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "index %d repeated in %v", v, p)
		seen[v] = true
	}
}

// propReconstructionLU asserts (P·A)[i][j] ≈ (L·U)[i][j] within delta·max(1,‖A‖∞).
func propReconstructionLU(t *testing.T, a [][]float64, lu *matrix.LU, delta float64) {
	t.Helper()
	n := len(a)
	l, u := lu.L(), lu.U()
	perm := lu.Permutation()
	bound := delta * math.Max(1, infNorm(a))
	var sum, lv, uv float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum = 0
			for k := 0; k < n; k++ {
				lv, _ = l.At(i, k)
				uv, _ = u.At(k, j)
				sum += lv * uv
			}
			require.InDelta(t, a[perm[i]][j], sum, bound, "(P·A)[%d][%d]", i, j)
		}
	}
}

// propReconstructionLDLT asserts A[i][j] ≈ (L·D·Lᵀ)[i][j] for the lower triangle.
func propReconstructionLDLT(t *testing.T, a [][]float64, f *matrix.LDLT, delta float64) {
	t.Helper()
	n := len(a)
	l := f.L()
	d := f.Diagonal()
	bound := delta * math.Max(1, infNorm(a))
	var sum, lik, ljk, dk float64
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum = 0
			for k := 0; k < n; k++ {
				lik, _ = l.At(i, k)
				ljk, _ = l.At(j, k)
				dk, _ = d.At(k)
				sum += lik * dk * ljk
			}
			require.InDelta(t, a[i][j], sum, bound, "A[%d][%d]", i, j)
		}
	}
}

// requireVecNear asserts |got[i] − want[i]| ≤ delta for every i.
func requireVecNear(t *testing.T, want []float64, got matrix.Vector, delta float64) {
	t.Helper()
	require.Equal(t, len(want), got.Len())
	require.InDeltaSlice(t, want, got.Array(), delta)
}

func infNorm(rows [][]float64) float64 {
	m := 0.0
	for _, row := range rows {
		s := 0.0
		for _, v := range row {
			s += math.Abs(v)
		}
		m = math.Max(m, s)
	}

	return m
}
