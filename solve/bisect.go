package solve

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ForAxis finds x in [lo, hi] with f(x) ≈ target for a monotonic f.
//
// Algorithm:
//  1. Evaluate f(lo), f(hi); ascending iff f(lo) < f(hi).
//  2. If target lies outside [min, max] of the two, return the bound that
//     produces the nearer extreme (Saturated).
//  3. Bisect: keep the half whose end values still bracket the target, until
//     f(mid) is close to target or MaxIter halvings were made.
//
// A flat f (f(lo) == f(hi)) is treated as descending, so a target above it
// saturates to lo and one below it to hi.
//
// Errors: ErrBadBounds, ErrBadTarget, ErrBadOptions. Non-convergence is not
// an error; inspect Result.Converged.
func ForAxis(f func(float64) float64, lo, hi, target float64, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return Result{}, ErrBadBounds
	}
	if !isFinite(target) {
		return Result{}, ErrBadTarget
	}

	yLo, yHi := f(lo), f(hi)
	asc := yLo < yHi
	yMin, yMax := yLo, yHi
	if !asc {
		yMin, yMax = yHi, yLo
	}

	// 1) saturation at either end of the observed range
	switch {
	case target < yMin:
		if asc {
			return Result{X: lo, Y: yLo, Converged: true, Saturated: true}, nil
		}
		return Result{X: hi, Y: yHi, Converged: true, Saturated: true}, nil
	case target > yMax:
		if asc {
			return Result{X: hi, Y: yHi, Converged: true, Saturated: true}, nil
		}
		return Result{X: lo, Y: yLo, Converged: true, Saturated: true}, nil
	}

	// 2) a bound may already be the answer
	if isClose(yLo, target, opts) {
		return Result{X: lo, Y: yLo, Converged: true}, nil
	}
	if isClose(yHi, target, opts) {
		return Result{X: hi, Y: yHi, Converged: true}, nil
	}

	// 3) bisection with best-estimate tracking
	best := Result{X: lo, Y: yLo}
	if math.Abs(yHi-target) < math.Abs(yLo-target) {
		best = Result{X: hi, Y: yHi}
	}
	a, b := lo, hi
	for iter := 1; iter <= opts.MaxIter; iter++ {
		mid := a + (b-a)/2
		y := f(mid)
		if math.Abs(y-target) <= math.Abs(best.Y-target) {
			best.X, best.Y = mid, y
		}
		best.Iterations = iter
		if isClose(y, target, opts) {
			return Result{X: mid, Y: y, Iterations: iter, Converged: true}, nil
		}
		if mid == a || mid == b {
			// interval collapsed to adjacent floats
			break
		}
		if (y > target) == asc {
			b = mid
		} else {
			a = mid
		}
	}

	return best, nil
}

// isClose reports whether y matches target within either tolerance.
func isClose(y, target float64, opts Options) bool {
	return scalar.EqualWithinAbsOrRel(y, target, opts.AbsTol, opts.RelTol)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
