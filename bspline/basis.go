package bspline

import (
	"fmt"
	"sort"
)

// MaxDegree is the highest supported spline degree per axis.
const MaxDegree = 5

// Knots returns the interpolation knot vector for samples x and degree k.
//
// The vector has len(x)+k+1 entries: k+1 copies of x[0], the interior knots,
// and k+1 copies of x[len(x)-1]. Interior knots are data points for odd k and
// midpoints of neighbouring data points for even k.
//
// Errors: ErrDegree, ErrTooFewPoints, ErrNotIncreasing.
func Knots(x []float64, k int) ([]float64, error) {
	if err := validateAxis(x, k); err != nil {
		return nil, err
	}

	return knots(x, k), nil
}

func validateAxis(x []float64, k int) error {
	if k < 1 || k > MaxDegree {
		return fmt.Errorf("degree %d: %w", k, ErrDegree)
	}
	if len(x) < k+1 {
		return fmt.Errorf("%d points for degree %d: %w", len(x), k, ErrTooFewPoints)
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("x[%d]=%g after %g: %w", i, x[i], x[i-1], ErrNotIncreasing)
		}
	}

	return nil
}

func knots(x []float64, k int) []float64 {
	n := len(x)
	t := make([]float64, n+k+1)
	for i := 0; i <= k; i++ {
		t[i] = x[0]
		t[n+i] = x[n-1]
	}
	half := k / 2
	for l := 0; l < n-k-1; l++ {
		if k%2 == 1 {
			t[k+1+l] = x[l+half+1]
		} else {
			t[k+1+l] = (x[l+half] + x[l+half+1]) / 2
		}
	}

	return t
}

// findSpan returns the knot span μ in [k, n-1] with t[μ] ≤ x < t[μ+1];
// x == t[n] maps to the last span. x must already lie in [t[k], t[n]].
func findSpan(t []float64, k, n int, x float64) int {
	if x >= t[n] {
		return n - 1
	}
	i := sort.Search(n-k, func(i int) bool { return t[k+i+1] > x })

	return k + i
}

// basisFuncs writes the k+1 non-zero basis values B[span-k..span](x) into
// out[0..k] (Cox–de Boor recurrence, triangular form).
func basisFuncs(t []float64, k, span int, x float64, out *[MaxDegree + 1]float64) {
	var left, right [MaxDegree + 1]float64
	out[0] = 1
	for j := 1; j <= k; j++ {
		left[j] = x - t[span+1-j]
		right[j] = t[span+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			temp := out[r] / (right[r+1] + left[j-r])
			out[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		out[j] = saved
	}
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
