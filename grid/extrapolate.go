package grid

import (
	"fmt"
	"math"
	"slices"
)

// NextX returns the axis value one step past the last sample, using the
// spacing of the last two samples. x must hold at least two values.
func NextX(x []float64) float64 {
	n := len(x)

	return x[n-1] + (x[n-1] - x[n-2])
}

// Extrapolate returns the value of the slice y(x) one step past its last
// sample (at NextX(x)), continuing the local slope trend.
//
// Algorithm:
//  1. d2 = slope over the last-but-one interval, d1 = slope over the last.
//  2. If |d2| > 1 the trend ratio is applied once more: d0 = d1·√(d1/d2).
//     Otherwise d0 = d1·√2.
//  3. y_extra = y[-1] + (next_x − x[-1])·d0.
//
// When |d2| > 1 and d1/d2 < 0 (the slice changes direction) the square root
// is undefined and d0 = d1 is used instead.
//
// Errors: ErrTooFewPoints if len(x) < MinAxisPoints, ErrDimensionMismatch if
// len(y) != len(x).
func Extrapolate(x, y []float64) (float64, error) {
	n := len(x)
	if n < MinAxisPoints {
		return 0, ErrTooFewPoints
	}
	if len(y) != n {
		return 0, ErrDimensionMismatch
	}

	nextX := NextX(x)
	d2 := (y[n-2] - y[n-3]) / (x[n-2] - x[n-3])
	d1 := (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])

	return y[n-1] + (nextX-x[n-1])*trendSlope(d1, d2), nil
}

// trendSlope extends the slope sequence d2, d1 by one more step.
func trendSlope(d1, d2 float64) float64 {
	if math.Abs(d2) <= 1 {
		return d1 * math.Sqrt2
	}
	ratio := d1 / d2
	if ratio < 0 {
		return d1
	}

	return d1 * math.Sqrt(ratio)
}

// Extend builds the boundary-extended copy of g.
//
// Steps:
//  1. Along Va: for every Vg column, extrapolate Ia over the Va axis and
//     append the results as a new last row at NextX(va).
//  2. Along Vg: for every row of the step-1 table, extrapolate over the
//     reversed magnitude axis and prepend the result as a new first column
//     at NextX(reversed vg), i.e. one step below the smallest magnitude.
//
// The result is (m+1)×(n+1). g is not modified; every slice in the result is
// freshly allocated.
func Extend(g *Grid) (*Extended, error) {
	rows, cols := len(g.va), len(g.vg)

	// 1) extra anode-voltage row
	extraRow := make([]float64, cols)
	column := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			column[i] = g.ia[i][j]
		}
		v, err := Extrapolate(g.va, column)
		if err != nil {
			return nil, fmt.Errorf("extend va, vg column %d: %w", j, err)
		}
		extraRow[j] = v
	}
	va := make([]float64, rows+1)
	copy(va, g.va)
	va[rows] = NextX(g.va)

	// 2) extra grid-voltage column, extrapolated towards smaller magnitude
	revVg := slices.Clone(g.vg)
	slices.Reverse(revVg)
	vg := make([]float64, cols+1)
	vg[0] = NextX(revVg)
	copy(vg[1:], g.vg)

	ia := make([][]float64, rows+1)
	rev := make([]float64, cols)
	for i := 0; i <= rows; i++ {
		src := extraRow
		if i < rows {
			src = g.ia[i]
		}
		copy(rev, src)
		slices.Reverse(rev)
		v, err := Extrapolate(revVg, rev)
		if err != nil {
			return nil, fmt.Errorf("extend vg, va row %d: %w", i, err)
		}
		row := make([]float64, cols+1)
		row[0] = v
		copy(row[1:], src)
		ia[i] = row
	}

	return &Extended{
		va:     va,
		vg:     vg,
		ia:     ia,
		origVa: slices.Clone(g.va),
		origVg: slices.Clone(g.vg),
	}, nil
}
