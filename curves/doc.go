// Package curves samples families of characteristic curves from a
// surface, ready for a plotting layer:
//
//   - Plate: Ia against Va, one curve per grid voltage.
//   - Grid:  Ia against Vg, one curve per anode voltage.
//
// Nil value slices fall back to the measured axes of the characteristic.
package curves
