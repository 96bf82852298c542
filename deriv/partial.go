package deriv

// Partial returns the forward-difference slope of f at x over the step
// delta. It panics if delta is zero.
func Partial(f func(float64) float64, x, delta float64) float64 {
	if delta == 0 {
		panic("deriv: Partial called with zero delta")
	}
	y := f(x)
	yd := f(x + delta)

	return (yd - y) / delta
}
