package surface

import (
	"fmt"
	"log"
	"math"

	"github.com/katalvlaran/tubecurve/bspline"
	"github.com/katalvlaran/tubecurve/grid"
	"github.com/katalvlaran/tubecurve/solve"
)

// ClampThreshold is the interpolated current (mA) below which Evaluate
// reports exactly 0.
const ClampThreshold = 1e-3

// Surface is the queryable anode-current function of one tube.
type Surface struct {
	ext    *grid.Extended
	spline *bspline.Surface

	vaMin, vaMax   float64
	magMin, magMax float64 // grid-voltage magnitude bounds of the extended axis
	iaMin, iaMax   float64

	solver solve.Options
	logger *log.Logger
}

// Construct builds the Surface for a measured table.
//
// va holds ascending anode voltages, vgMagnitude ascending grid-voltage
// magnitudes, and ia[i][j] the current in mA at va[i] and grid voltage
// −vgMagnitude[j].
//
// Errors (wrapped as "surface: construct: ..."): grid.ErrTooFewPoints,
// grid.ErrNotIncreasing, grid.ErrDimensionMismatch, grid.ErrNonRectangular,
// grid.ErrNaNInf, grid.ErrNegativeCurrent, bspline.ErrSingular.
func Construct(va, vgMagnitude []float64, ia [][]float64, opts ...Option) (*Surface, error) {
	o := gatherOptions(opts...)

	g, err := grid.New(va, vgMagnitude, ia)
	if err != nil {
		return nil, fmt.Errorf("surface: construct: %w", err)
	}
	ext, err := grid.Extend(g)
	if err != nil {
		return nil, fmt.Errorf("surface: construct: %w", err)
	}

	k := 2
	if g.Rows() > 3 {
		k = 3
	}
	axVa, axVg := ext.Va(), ext.VgMagnitude()
	spl, err := bspline.Fit(axVa, axVg, ext.Ia(), k, k)
	if err != nil {
		return nil, fmt.Errorf("surface: construct: %w", err)
	}
	iaMin, iaMax := ext.IaRange()

	return &Surface{
		ext:    ext,
		spline: spl,
		vaMin:  axVa[0],
		vaMax:  axVa[len(axVa)-1],
		magMin: axVg[0],
		magMax: axVg[len(axVg)-1],
		iaMin:  iaMin,
		iaMax:  iaMax,
		solver: o.solver,
		logger: o.logger,
	}, nil
}

// Evaluate returns the anode current (mA) at anode voltage va and
// conventional grid voltage vg. Results below ClampThreshold are 0.
func (s *Surface) Evaluate(va, vg float64) float64 {
	ia := s.spline.Eval(va, grid.Magnitude(vg))
	if ia < ClampThreshold {
		return 0
	}

	return ia
}

// SolveVa inverts Evaluate along the anode axis at fixed vg, searching
// [VaMin, VaMax].
func (s *Surface) SolveVa(vg, ia float64) (solve.Result, error) {
	r, err := solve.ForAxis(func(va float64) float64 { return s.Evaluate(va, vg) },
		s.vaMin, s.vaMax, ia, s.solver)
	if err != nil {
		return r, fmt.Errorf("surface: va from ia at vg=%g: %w", vg, err)
	}
	if !r.Converged {
		s.logger.Printf("surface: va from ia=%g at vg=%g not converged after %d iterations, using va=%g (ia=%g)",
			ia, vg, r.Iterations, r.X, r.Y)
	}

	return r, nil
}

// SolveVg inverts Evaluate along the grid axis at fixed va, searching
// [VgMin, VgMax].
func (s *Surface) SolveVg(va, ia float64) (solve.Result, error) {
	r, err := solve.ForAxis(func(vg float64) float64 { return s.Evaluate(va, vg) },
		s.VgMin(), s.VgMax(), ia, s.solver)
	if err != nil {
		return r, fmt.Errorf("surface: vg from ia at va=%g: %w", va, err)
	}
	if !r.Converged {
		s.logger.Printf("surface: vg from ia=%g at va=%g not converged after %d iterations, using vg=%g (ia=%g)",
			ia, va, r.Iterations, r.X, r.Y)
	}

	return r, nil
}

// VaFromIa returns the anode voltage at which the curve for grid voltage vg
// carries ia, saturating at the axis bounds. A non-finite ia yields NaN.
func (s *Surface) VaFromIa(vg, ia float64) float64 {
	r, err := s.SolveVa(vg, ia)
	if err != nil {
		return math.NaN()
	}

	return r.X
}

// VgFromIa returns the grid voltage at which anode voltage va carries ia,
// saturating at the axis bounds. A non-finite ia yields NaN.
func (s *Surface) VgFromIa(va, ia float64) float64 {
	r, err := s.SolveVg(va, ia)
	if err != nil {
		return math.NaN()
	}

	return r.X
}
