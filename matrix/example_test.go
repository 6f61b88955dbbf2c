package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lastack/matrix"
)

// ExampleMatrix_LU factors once and reuses the factorization.
func ExampleMatrix_LU() {
	a, _ := matrix.FromRows([][]float64{{4, 2}, {2, 3}})
	lu, err := a.LU()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	b, _ := matrix.NewVector([]float64{1, 2})
	x, _ := lu.Solve(&b)
	fmt.Println("x   =", x)
	fmt.Println("det =", lu.Det())
	// Output:
	// x   = [-0.125 0.75]
	// det = 8
}

// ExampleSingularError shows how to inspect a rejected pivot.
func ExampleSingularError() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {2, 4}})
	_, err := a.LU()

	var se *matrix.SingularError
	if errors.As(err, &se) {
		fmt.Println("singular:", errors.Is(err, matrix.ErrSingular))
		fmt.Println("column:", se.Col)
	}
	fmt.Println(err)
	// Output:
	// singular: true
	// column: 1
	// LU: matrix: singular matrix at pivot column 1 (pivot 0, tol 1e-12)
}

// ExampleMatrix_LDLT solves a symmetric positive definite system without pivoting.
func ExampleMatrix_LDLT() {
	a, _ := matrix.FromRows([][]float64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	})
	f, err := a.LDLT()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	b, _ := matrix.NewVector([]float64{1, 0, 1})
	x, _ := f.Solve(&b)
	d := f.Diagonal()
	fmt.Printf("x   = %.4f\n", x.Array())
	fmt.Printf("D   = %.4f\n", d.Array())
	fmt.Printf("det = %.4f\n", f.Det())
	// Output:
	// x   = [1.0000 1.0000 1.0000]
	// D   = [2.0000 1.5000 1.3333]
	// det = 4.0000
}
