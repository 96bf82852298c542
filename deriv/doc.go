// Package deriv provides the forward-difference derivative used by the
// locus engine.
//
//	Partial(f, x, δ) = (f(x+δ) − f(x)) / δ
//
// No central-difference refinement is attempted: the step is chosen per call
// site to balance truncation error against interpolation noise, and a
// one-sided step keeps both evaluations on the same side of the point.
package deriv
