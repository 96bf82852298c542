package solve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubecurve/solve"
)

// TestForAxis_Orientation solves ascending and descending functions.
func TestForAxis_Orientation(t *testing.T) {
	cases := []struct {
		name   string
		f      func(float64) float64
		lo, hi float64
		target float64
		want   float64
	}{
		{"AscendingLinear", func(x float64) float64 { return 2*x + 1 }, 0, 10, 7, 3},
		{"DescendingQuadratic", func(x float64) float64 { return 100 - x*x }, 0, 10, 36, 8},
		{"NegativeAxis", func(x float64) float64 { return math.Pow(x+10, 1.5) }, -10, 0, 8, -6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := solve.ForAxis(tc.f, tc.lo, tc.hi, tc.target, solve.DefaultOptions())
			require.NoError(t, err)
			assert.True(t, r.Converged)
			assert.False(t, r.Saturated)
			assert.InDelta(t, tc.want, r.X, 1e-5)
			assert.InDelta(t, tc.target, r.Y, 1e-5)
			assert.Equal(t, tc.f(r.X), r.Y)
		})
	}
}

// TestForAxis_Saturation returns the bound nearest to the requested value.
func TestForAxis_Saturation(t *testing.T) {
	asc := func(x float64) float64 { return x }
	desc := func(x float64) float64 { return -x }
	opts := solve.DefaultOptions()

	cases := []struct {
		name   string
		f      func(float64) float64
		target float64
		want   float64
	}{
		{"AscBelow", asc, -5, 0},
		{"AscAbove", asc, 50, 10},
		{"DescBelow", desc, -50, 10},
		{"DescAbove", desc, 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := solve.ForAxis(tc.f, 0, 10, tc.target, opts)
			require.NoError(t, err)
			assert.True(t, r.Saturated)
			assert.True(t, r.Converged)
			assert.Equal(t, tc.want, r.X)
			assert.Equal(t, 0, r.Iterations)
		})
	}
}

// TestForAxis_BoundIsSolution avoids bisection when a bound already matches.
func TestForAxis_BoundIsSolution(t *testing.T) {
	r, err := solve.ForAxis(func(x float64) float64 { return x * x }, 0, 4, 16, solve.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4.0, r.X)
	assert.False(t, r.Saturated)
	assert.Equal(t, 0, r.Iterations)
}

// TestForAxis_Tolerance stops at the first midpoint within either the
// absolute or the relative tolerance.
func TestForAxis_Tolerance(t *testing.T) {
	id := func(x float64) float64 { return x }
	cases := []struct {
		name     string
		abs, rel float64
		wantX    float64
		wantIter int
	}{
		{"Absolute", 0.5, 0, 2.5, 2},   // mids 5, 2.5
		{"Relative", 0, 0.1, 3.125, 4}, // mids 5, 2.5, 3.75, 3.125
		{"EitherOne", 0.5, 0.1, 2.5, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := solve.DefaultOptions()
			opts.AbsTol, opts.RelTol = tc.abs, tc.rel
			r, err := solve.ForAxis(id, 0, 10, 3, opts)
			require.NoError(t, err)
			assert.True(t, r.Converged)
			assert.Equal(t, tc.wantX, r.X)
			assert.Equal(t, tc.wantIter, r.Iterations)
		})
	}
}

// TestForAxis_IterationCap returns the best estimate once MaxIter is spent.
func TestForAxis_IterationCap(t *testing.T) {
	opts := solve.DefaultOptions()
	opts.MaxIter = 3
	opts.AbsTol, opts.RelTol = 0, 0

	r, err := solve.ForAxis(func(x float64) float64 { return x }, 0, 1, 0.3, opts)
	require.NoError(t, err)
	assert.False(t, r.Converged)
	assert.Equal(t, 3, r.Iterations)
	// mids visited: 0.5, 0.25, 0.375
	assert.Equal(t, 0.25, r.X)
}

// TestForAxis_Discontinuous never reaches the target of a step function and
// must still terminate with a bracketed estimate.
func TestForAxis_Discontinuous(t *testing.T) {
	step := func(x float64) float64 {
		if x < 0.5 {
			return 0
		}
		return 1
	}
	r, err := solve.ForAxis(step, 0, 1, 0.5, solve.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, r.Converged)
	assert.LessOrEqual(t, r.Iterations, solve.DefaultMaxIter)
	assert.InDelta(t, 0.5, r.X, 1e-9)
}

// TestForAxis_Errors covers argument validation.
func TestForAxis_Errors(t *testing.T) {
	id := func(x float64) float64 { return x }
	opts := solve.DefaultOptions()

	_, err := solve.ForAxis(id, 1, 1, 0.5, opts)
	assert.ErrorIs(t, err, solve.ErrBadBounds)
	_, err = solve.ForAxis(id, 2, 1, 0.5, opts)
	assert.ErrorIs(t, err, solve.ErrBadBounds)
	_, err = solve.ForAxis(id, math.NaN(), 1, 0.5, opts)
	assert.ErrorIs(t, err, solve.ErrBadBounds)
	_, err = solve.ForAxis(id, 0, 1, math.NaN(), opts)
	assert.ErrorIs(t, err, solve.ErrBadTarget)

	bad := opts
	bad.MaxIter = 0
	_, err = solve.ForAxis(id, 0, 1, 0.5, bad)
	assert.ErrorIs(t, err, solve.ErrBadOptions)
}
