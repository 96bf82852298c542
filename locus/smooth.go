package locus

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// minSmoothPoints is the smallest sweep that can be smoothed: each
// leave-one-out fit needs four points for a not-a-knot cubic.
const minSmoothPoints = 5

// smooth replaces Gm and Rp at every interior sample with the value of a
// not-a-knot cubic through all other samples, then sets Mu = Gm·Rp.
func (l *Locus) smooth() error {
	gm, err := leaveOneOut(l.Ia, l.Gm)
	if err != nil {
		return fmt.Errorf("locus: smooth gm: %w", err)
	}
	rp, err := leaveOneOut(l.Ia, l.Rp)
	if err != nil {
		return fmt.Errorf("locus: smooth rp: %w", err)
	}
	l.Gm, l.Rp = gm, rp
	for i := range l.Mu {
		l.Mu[i] = l.Gm[i] * l.Rp[i]
	}

	return nil
}

func leaveOneOut(x, y []float64) ([]float64, error) {
	n := len(x)
	out := make([]float64, n)
	out[0], out[n-1] = y[0], y[n-1]
	xs := make([]float64, n-1)
	ys := make([]float64, n-1)
	for i := 1; i < n-1; i++ {
		copy(xs, x[:i])
		copy(xs[i:], x[i+1:])
		copy(ys, y[:i])
		copy(ys[i:], y[i+1:])
		var c interp.NotAKnotCubic
		if err := c.Fit(xs, ys); err != nil {
			return nil, err
		}
		out[i] = c.Predict(x[i])
	}

	return out, nil
}
