// Package surface turns a measured vacuum-tube characteristic into a
// continuous anode-current function Ia(Va, Vg).
//
// Construct validates the measurement table, adds one synthetic row and
// column with grid.Extend so the spline behaves at the edges of the data,
// and fits a tensor B-spline over the extended table:
//
//	cubic     if the measured Va axis has more than 3 points,
//	quadratic otherwise (on both axes).
//
// Grid voltage crosses this API in its conventional sign (0, −1, −2 V …);
// the magnitude convention of the measurement table stays inside grid.
//
// Queries:
//
//   - Evaluate(va, vg):  Ia in mA; values below 1e-3 read as exactly 0.
//   - VaFromIa(vg, ia):  anode voltage giving ia at grid voltage vg.
//   - VgFromIa(va, ia):  grid voltage giving ia at anode voltage va.
//
// The inverse queries saturate at the extended axis bounds instead of
// failing: a current above the reachable range returns the bound that comes
// closest. A bisection that exhausts its iteration cap is logged through the
// configured logger and still returns its best estimate.
//
// A Surface is immutable after Construct and safe for concurrent use.
package surface
