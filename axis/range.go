package axis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultCount is the number of intervals Values aims for when neither
// Interval nor Count is set.
const DefaultCount = 6

// Range is a closed sweep from Start to End.
//
// Fields:
//   - Start, End: first value and the value the last sample must reach.
//   - Interval:   step between samples; 0 lets Values choose one.
//   - Count:      desired number of intervals; 0 means DefaultCount.
//   - Exact:      use exactly Count equal intervals instead of a 1-2-5 step.
type Range struct {
	Start    float64
	Interval float64
	End      float64
	Count    int
	Exact    bool
}

// NewRange returns the range [0, end] with an automatic interval.
func NewRange(end float64) Range { return Range{End: end} }

// Span returns the range [start, end] with an automatic interval.
func Span(start, end float64) Range { return Range{Start: start, End: end} }

// Parse reads "end", "start,end" or "start,interval,end".
func Parse(s string) (Range, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) > 3 {
		return Range{}, fmt.Errorf("%q: %w", s, ErrBadRange)
	}
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Range{}, fmt.Errorf("%q: %w", s, ErrBadRange)
		}
		vals[i] = v
	}

	switch len(vals) {
	case 1:
		return NewRange(vals[0]), nil
	case 2:
		return Span(vals[0], vals[1]), nil
	default:
		return Range{Start: vals[0], Interval: vals[1], End: vals[2]}, nil
	}
}

// Width returns End − Start.
func (r Range) Width() float64 { return r.End - r.Start }

// Step returns the interval Values will use.
func (r Range) Step() (float64, error) {
	w := r.Width()
	if !(w > 0) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("span %g: %w", w, ErrBadRange)
	}
	switch {
	case r.Interval > 0:
		return r.Interval, nil
	case r.Interval < 0:
		return 0, fmt.Errorf("interval %g: %w", r.Interval, ErrBadRange)
	case r.Exact:
		return w / float64(r.count()), nil
	default:
		return niceInterval(w, r.count()), nil
	}
}

// Values returns Start, Start+step, … up to the first value at or beyond End.
func (r Range) Values() ([]float64, error) {
	step, err := r.Step()
	if err != nil {
		return nil, err
	}
	steps := r.Width() / step
	n := int(steps)
	if steps-float64(n) > fuzz*steps {
		n++
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = r.Start + float64(i)*step
	}

	return out, nil
}

// String formats r as Parse accepts it.
func (r Range) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	if r.Interval > 0 {
		return f(r.Start) + "," + f(r.Interval) + "," + f(r.End)
	}

	return f(r.Start) + "," + f(r.End)
}

func (r Range) count() int {
	if r.Count > 0 {
		return r.Count
	}

	return DefaultCount
}

// niceInterval picks the step from {b/10, b/5, b/2, b, 2b, 5b, 10b}, b the
// decade of width, whose interval count is closest to count on a log scale.
func niceInterval(width float64, count int) float64 {
	basis := math.Pow10(decade(width, int(math.Floor(math.Log10(width)))))
	metric := func(x float64) float64 {
		return math.Abs(math.Log(width / x / float64(count)))
	}

	best := basis / 10
	bestMetric := metric(best)
	for _, x := range []float64{basis / 5, basis / 2, basis, basis * 2, basis * 5, basis * 10} {
		if m := metric(x); m < bestMetric {
			best, bestMetric = x, m
		}
	}

	return best
}
