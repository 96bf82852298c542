package bspline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Surface is a fitted tensor-product B-spline S(x, y).
type Surface struct {
	tx, ty []float64  // knot vectors
	kx, ky int        // degrees
	nx, ny int        // coefficients per axis (= samples per axis)
	coef   *mat.Dense // nx × ny
}

// Fit computes the interpolating surface of degrees (kx, ky) through the
// table z, where z[i][j] is the value at (x[i], y[j]).
//
// Steps:
//  1. Validate axes and table shape; build both knot vectors.
//  2. Assemble the collocation matrices Ax (nx×nx) and By (ny×ny).
//  3. W = Ax⁻¹·Z, then Cᵀ = By⁻¹·Wᵀ (two LU solves).
//
// Errors: ErrDegree, ErrTooFewPoints, ErrNotIncreasing, ErrDimensionMismatch,
// ErrSingular.
func Fit(x, y []float64, z [][]float64, kx, ky int) (*Surface, error) {
	if err := validateAxis(x, kx); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	if err := validateAxis(y, ky); err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	nx, ny := len(x), len(y)
	if len(z) != nx {
		return nil, fmt.Errorf("table has %d rows, want %d: %w", len(z), nx, ErrDimensionMismatch)
	}
	data := make([]float64, 0, nx*ny)
	for i, row := range z {
		if len(row) != ny {
			return nil, fmt.Errorf("table row %d has %d values, want %d: %w", i, len(row), ny, ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	s := &Surface{
		tx: knots(x, kx),
		ty: knots(y, ky),
		kx: kx,
		ky: ky,
		nx: nx,
		ny: ny,
	}

	var luX, luY mat.LU
	luX.Factorize(collocation(x, s.tx, kx))
	luY.Factorize(collocation(y, s.ty, ky))

	var w, ct mat.Dense
	if err := luX.SolveTo(&w, false, mat.NewDense(nx, ny, data)); err != nil {
		return nil, fmt.Errorf("x axis: %w: %v", ErrSingular, err)
	}
	if err := luY.SolveTo(&ct, false, w.T()); err != nil {
		return nil, fmt.Errorf("y axis: %w: %v", ErrSingular, err)
	}
	s.coef = mat.DenseCopyOf(ct.T())

	return s, nil
}

// collocation returns A with A[i][j] = B_j(x[i]).
func collocation(x, t []float64, k int) *mat.Dense {
	n := len(x)
	a := mat.NewDense(n, n, nil)
	var b [MaxDegree + 1]float64
	for i, xi := range x {
		span := findSpan(t, k, n, xi)
		basisFuncs(t, k, span, xi, &b)
		for r := 0; r <= k; r++ {
			a.Set(i, span-k+r, b[r])
		}
	}

	return a
}

// Eval returns S(x, y). Arguments outside the fitted rectangle are clamped to
// its boundary; NaN arguments yield NaN.
func (s *Surface) Eval(x, y float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.NaN()
	}
	x = clamp(x, s.tx[s.kx], s.tx[s.nx])
	y = clamp(y, s.ty[s.ky], s.ty[s.ny])

	var bx, by [MaxDegree + 1]float64
	sx := findSpan(s.tx, s.kx, s.nx, x)
	sy := findSpan(s.ty, s.ky, s.ny, y)
	basisFuncs(s.tx, s.kx, sx, x, &bx)
	basisFuncs(s.ty, s.ky, sy, y, &by)

	var sum float64
	for i := 0; i <= s.kx; i++ {
		ci := sx - s.kx + i
		var inner float64
		for j := 0; j <= s.ky; j++ {
			inner += by[j] * s.coef.At(ci, sy-s.ky+j)
		}
		sum += bx[i] * inner
	}

	return sum
}

// Degree returns the spline degree along x and y.
func (s *Surface) Degree() (kx, ky int) { return s.kx, s.ky }

// Domain returns the fitted rectangle [xlo, xhi] × [ylo, yhi].
func (s *Surface) Domain() (xlo, xhi, ylo, yhi float64) {
	return s.tx[s.kx], s.tx[s.nx], s.ty[s.ky], s.ty[s.ny]
}

// KnotsX returns a copy of the x knot vector.
func (s *Surface) KnotsX() []float64 { return append([]float64(nil), s.tx...) }

// KnotsY returns a copy of the y knot vector.
func (s *Surface) KnotsY() []float64 { return append([]float64(nil), s.ty...) }
