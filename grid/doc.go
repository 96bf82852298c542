// Package grid holds the measured characteristic of a vacuum tube as a
// rectangular table of anode current over ascending anode-voltage and
// grid-voltage axes, and builds the boundary-extended table the
// interpolation surface is fitted on.
//
// What:
//
//   - Grid: validated, deep-copied, immutable (Va, |Vg|) → Ia table (mA).
//   - Extrapolate: one-step local-slope extrapolation of a 1-D slice.
//   - Extend: Grid → Extended with one synthetic Va row appended (high end)
//     and one synthetic Vg column prepended (smallest magnitude end).
//
// Sign convention:
//
//	Grid voltage is stored as its magnitude (the negated grid voltage), so
//	both axes ascend. Magnitude and Conventional are the only places where
//	the sign flips; every other package goes through them.
//
// Why extend:
//
//	Cubic interpolation is unreliable at and after the last measured point,
//	yet callers routinely ask for curves slightly beyond it. One synthesized
//	value per slice at each far end keeps the fitted surface well-behaved
//	across the whole measured domain.
//
// Errors:
//
//   - ErrTooFewPoints: an axis or slice has fewer than MinAxisPoints values.
//   - ErrNotIncreasing: an axis is not strictly increasing.
//   - ErrDimensionMismatch: the table row count differs from len(Va).
//   - ErrNonRectangular: a table row length differs from len(Vg).
//   - ErrNaNInf: a NaN or infinite value was supplied.
//   - ErrNegativeCurrent: a current below -ZeroThreshold was supplied.
package grid
