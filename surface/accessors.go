package surface

import "github.com/katalvlaran/tubecurve/grid"

// Bounds below cover the extended axes, so they reach one synthetic step
// past the measured data.

// VaMin is the lowest anode voltage covered.
func (s *Surface) VaMin() float64 { return s.vaMin }

// VaMax is the highest anode voltage covered, including the synthetic row.
func (s *Surface) VaMax() float64 { return s.vaMax }

// VaSpan is VaMax − VaMin.
func (s *Surface) VaSpan() float64 { return s.vaMax - s.vaMin }

// VgMin is the most negative grid voltage covered.
func (s *Surface) VgMin() float64 { return grid.Conventional(s.magMax) }

// VgMax is the least negative grid voltage covered. The synthetic column can
// make it positive.
func (s *Surface) VgMax() float64 { return grid.Conventional(s.magMin) }

// VgSpan is VgMax − VgMin.
func (s *Surface) VgSpan() float64 { return s.magMax - s.magMin }

// IaMin is the smallest current in the extended table.
func (s *Surface) IaMin() float64 { return s.iaMin }

// IaMax is the largest current in the extended table.
func (s *Surface) IaMax() float64 { return s.iaMax }

// IaSpan is IaMax − IaMin.
func (s *Surface) IaSpan() float64 { return s.iaMax - s.iaMin }

// VaValues returns the measured anode voltages, without the synthetic one.
func (s *Surface) VaValues() []float64 { return s.ext.OriginalVa() }

// VgValues returns the measured grid voltages in conventional sign and in
// the measured order (0, −1, −2, …), without the synthetic one.
func (s *Surface) VgValues() []float64 {
	return grid.ConventionalAll(s.ext.OriginalVgMagnitude())
}

// Degree returns the spline degree used on both axes.
func (s *Surface) Degree() int {
	k, _ := s.spline.Degree()

	return k
}
