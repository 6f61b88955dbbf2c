package ops

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lastack/matrix"
)

// Residual returns ‖a·x − b‖∞, the usual acceptance measure for a solve.
// Errors: ErrDimensionMismatch when x or b does not match a.
func Residual(a *matrix.Matrix, x, b *matrix.Vector) (float64, error) {
	ax, err := a.MulVec(x)
	if err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	r, err := ax.Sub(b)
	if err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}

	return floats.Norm(r.Array(), math.Inf(1)), nil
}
