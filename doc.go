// Package tubecurve characterizes vacuum tubes from measured anode-current
// tables.
//
// 🚀 What:
//
//	A curve tracer measures Ia on a coarse grid of (Va, Vg). tubecurve turns
//	that table into a continuous function and derives the small-signal
//	parameters a designer needs along a chosen operating locus:
//		• Gm: transconductance (mA/V)
//		• Rp: plate resistance (kΩ)
//		• µ:  amplification factor
//
// Packages, leaf first:
//
//	grid/      validated measurement table, boundary extrapolation
//	bspline/   tensor-product interpolating B-spline (gonum/mat)
//	solve/     capped, saturating bisection for monotonic inverses
//	deriv/     forward-difference derivative
//	surface/   Ia(Va, Vg) with VaFromIa / VgFromIa
//	locus/     Gm, Rp, µ along a load line, fixed Va or fixed Vg
//	axis/      readable sweep ranges, significant-digit rounding
//	curves/    plate and grid curve families
//
// Quick start:
//
//	s, err := surface.Construct(va, vgMagnitude, ia)
//	eng, err := locus.New(s, locus.DefaultConfig())
//	loc, err := eng.GetDerivatives(locus.LoadLine{Eb: 300}, locus.IaBounds{})
//	loc.WriteCSV(os.Stdout)
//
// Everything is synchronous and free of global state; a constructed Surface
// is immutable and may be shared between goroutines.
package tubecurve
