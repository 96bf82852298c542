package grid_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubecurve/grid"
)

const eps = 1e-12

// TestExtrapolate_GentleSlope covers the |d2| <= 1 branch: d0 = d1·√2.
func TestExtrapolate_GentleSlope(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 0.9, 1.6} // d2 = 0.9, d1 = 0.7

	got, err := grid.Extrapolate(x, y)
	require.NoError(t, err)

	d1 := 1.6 - 0.9
	assert.InDelta(t, 1.6+1*d1*math.Sqrt2, got, eps)
}

// TestExtrapolate_SteepSlope covers the |d2| > 1 branch: d0 = d1·√(d1/d2).
func TestExtrapolate_SteepSlope(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 9, 16} // d2 = 9, d1 = 7

	got, err := grid.Extrapolate(x, y)
	require.NoError(t, err)

	d0 := 7 * math.Sqrt(7.0/9.0)
	assert.InDelta(t, 16+1*d0, got, eps)
}

// TestExtrapolate_UnevenSpacing uses the last interval as the step.
func TestExtrapolate_UnevenSpacing(t *testing.T) {
	x := []float64{0, 50, 150}
	y := []float64{0, 100, 300} // d2 = 2, d1 = 2 → d0 = 2

	got, err := grid.Extrapolate(x, y)
	require.NoError(t, err)
	assert.Equal(t, 250.0, grid.NextX(x))
	assert.InDelta(t, 300+100*2, got, eps)
}

// TestExtrapolate_DirectionChange falls back to d1 instead of NaN.
func TestExtrapolate_DirectionChange(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 5, 3} // d2 = 5, d1 = -2

	got, err := grid.Extrapolate(x, y)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(got))
	assert.InDelta(t, 1.0, got, eps)
}

// TestExtrapolate_Errors checks argument validation.
func TestExtrapolate_Errors(t *testing.T) {
	_, err := grid.Extrapolate([]float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, grid.ErrTooFewPoints)

	_, err = grid.Extrapolate([]float64{0, 1, 2}, []float64{0, 1})
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)
}

// TestExtend_ShapeAndValues verifies the (m+1)×(n+1) layout, the position of
// the synthetic row and column, and that the source grid is untouched.
func TestExtend_ShapeAndValues(t *testing.T) {
	va, vg, ia := triodeTable()
	g, err := grid.New(va, vg, ia)
	require.NoError(t, err)

	e, err := grid.Extend(g)
	require.NoError(t, err)

	require.Equal(t, 5, e.Rows())
	require.Equal(t, 4, e.Cols())
	assert.Equal(t, []float64{0, 100, 200, 300, 400}, e.Va())
	assert.Equal(t, []float64{-2, 0, 2, 4}, e.VgMagnitude())
	assert.Equal(t, va, e.OriginalVa())
	assert.Equal(t, vg, e.OriginalVgMagnitude())

	// measured block is shifted one column right
	for i := range ia {
		for j := range ia[i] {
			assert.Equal(t, ia[i][j], e.At(i, j+1), "cell [%d,%d]", i, j)
		}
	}

	// synthetic row: extrapolated along Va per Vg column
	for j := range vg {
		col := []float64{ia[0][j], ia[1][j], ia[2][j], ia[3][j]}
		want, err := grid.Extrapolate(va, col)
		require.NoError(t, err)
		assert.InDelta(t, want, e.At(4, j+1), eps, "synthetic row, column %d", j)
	}

	// synthetic column: extrapolated along reversed Vg for every row,
	// the synthetic row included
	revVg := []float64{4, 2, 0}
	for i := 0; i < e.Rows(); i++ {
		row := []float64{e.At(i, 3), e.At(i, 2), e.At(i, 1)}
		want, err := grid.Extrapolate(revVg, row)
		require.NoError(t, err)
		assert.InDelta(t, want, e.At(i, 0), eps, "synthetic column, row %d", i)
	}

	if diff := cmp.Diff(ia, g.Ia()); diff != "" {
		t.Errorf("Extend mutated the source grid (-want +got):\n%s", diff)
	}
}

// TestExtend_IaRange checks the flattened extrema over the extended table.
func TestExtend_IaRange(t *testing.T) {
	va, vg, ia := triodeTable()
	g, err := grid.New(va, vg, ia)
	require.NoError(t, err)
	e, err := grid.Extend(g)
	require.NoError(t, err)

	lo, hi := e.IaRange()
	assert.Equal(t, 0.0, lo)
	// the synthetic corner (highest Va, smallest |Vg|) dominates
	assert.Equal(t, e.At(4, 0), hi)
	assert.Greater(t, hi, 18.0)
}
