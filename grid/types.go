package grid

// MinAxisPoints is the smallest number of samples accepted on either axis.
// Extrapolate needs three points to estimate the slope trend.
const MinAxisPoints = 3

// ZeroThreshold is the magnitude at or below which a measured current is
// treated as exactly zero (mA).
const ZeroThreshold = 0.001

// Grid is an immutable measured characteristic.
//
// va holds ascending anode voltages, vg ascending grid-voltage magnitudes,
// and ia[i][j] the anode current (mA) at va[i] and grid voltage -vg[j].
type Grid struct {
	va []float64
	vg []float64
	ia [][]float64
}

// Extended is a Grid with one synthetic row and column added by Extend.
// It is freshly allocated and never mutated; the pre-extension axes are
// kept separately so callers can still sample at the measured points.
type Extended struct {
	va []float64   // len(origVa)+1, synthetic value last
	vg []float64   // len(origVg)+1, synthetic value first
	ia [][]float64 // (len(va)) × (len(vg))

	origVa []float64
	origVg []float64
}

// Magnitude converts a conventional grid voltage (negative for a biased
// grid) into the stored magnitude.
func Magnitude(vg float64) float64 { return 0 - vg }

// Conventional converts a stored grid-voltage magnitude back into the
// conventional grid voltage. A zero magnitude maps to +0, never -0.
func Conventional(mag float64) float64 { return 0 - mag }

// ConventionalAll converts a slice of magnitudes into a fresh slice of
// conventional grid voltages, preserving order.
func ConventionalAll(mags []float64) []float64 {
	out := make([]float64, len(mags))
	for i, m := range mags {
		out[i] = Conventional(m)
	}

	return out
}
