package locus

// Given names the voltage of a Point that is known; the other one is
// solved from the current.
type Given int

const (
	// GivenVg resolves Va from (Vg, Ia).
	GivenVg Given = iota
	// GivenVa resolves Vg from (Va, Ia).
	GivenVa
)

// Point is a partially specified operating point.
type Point struct {
	Va    float64
	Vg    float64
	Ia    float64
	Given Given
}

// Derivative holds the small-signal parameters at one resolved operating
// point. Vg is in conventional sign.
type Derivative struct {
	Gm float64
	Rp float64
	Mu float64
	Va float64
	Vg float64
}

// IaBounds limits the swept anode current (mA). A zero field is derived
// from the characteristic and the Config.
type IaBounds struct {
	Min float64
	Max float64
}

// Row is one sample of a Locus.
type Row struct {
	Ia, Gm, Rp, Mu, Va, Vg float64
}

// Locus is the result of a sweep: parallel slices indexed by sample.
//
// Mode is the mode actually used, with a chosen load resistance filled in;
// MinEb is the anode voltage the load line was anchored to (0 for the
// fixed modes); Bounds are the current limits that were swept.
type Locus struct {
	Mode   Mode
	MinEb  float64
	Bounds IaBounds

	Ia []float64
	Gm []float64
	Rp []float64
	Mu []float64
	Va []float64
	Vg []float64
}

// Len returns the number of samples.
func (l *Locus) Len() int { return len(l.Ia) }

// Rows returns the samples as records.
func (l *Locus) Rows() []Row {
	rows := make([]Row, l.Len())
	for i := range rows {
		rows[i] = Row{Ia: l.Ia[i], Gm: l.Gm[i], Rp: l.Rp[i], Mu: l.Mu[i], Va: l.Va[i], Vg: l.Vg[i]}
	}

	return rows
}
