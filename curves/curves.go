package curves

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// PlateSamples and GridSamples are the default number of points per curve
// along Va and Vg respectively.
const (
	PlateSamples = 20
	GridSamples  = 8
)

// Characteristic is the part of *surface.Surface the curve builders use.
type Characteristic interface {
	Evaluate(va, vg float64) float64
	VaValues() []float64
	VgValues() []float64
}

// Curve is one member of a family. Param is the voltage held constant;
// X and Y are the swept voltage and the current in mA.
type Curve struct {
	Label string
	Param float64
	X     []float64
	Y     []float64
}

// Plate returns one curve per grid voltage in vgValues, each sampled at the
// anode voltages vaValues.
//
// Defaults: nil vgValues → c.VgValues(); nil vaValues → PlateSamples evenly
// spaced points from 0 to the highest measured anode voltage.
func Plate(c Characteristic, vaValues, vgValues []float64) []Curve {
	if vgValues == nil {
		vgValues = c.VgValues()
	}
	if vaValues == nil {
		va := c.VaValues()
		vaValues = floats.Span(make([]float64, PlateSamples), 0, va[len(va)-1])
	}

	out := make([]Curve, len(vgValues))
	for i, vg := range vgValues {
		out[i] = sample(fmt.Sprintf("Vg = %.1f", vg), vg, vaValues,
			func(va float64) float64 { return c.Evaluate(va, vg) })
	}

	return out
}

// Grid returns one curve per anode voltage in vaValues, each sampled at the
// grid voltages vgValues.
//
// Defaults: nil vaValues → c.VaValues(); nil vgValues → GridSamples evenly
// spaced points from the most negative measured grid voltage to the least.
func Grid(c Characteristic, vgValues, vaValues []float64) []Curve {
	if vaValues == nil {
		vaValues = c.VaValues()
	}
	if vgValues == nil {
		vg := c.VgValues()
		vgValues = floats.Span(make([]float64, GridSamples), floats.Min(vg), floats.Max(vg))
	}

	out := make([]Curve, len(vaValues))
	for i, va := range vaValues {
		out[i] = sample(fmt.Sprintf("Va = %.0f", va), va, vgValues,
			func(vg float64) float64 { return c.Evaluate(va, vg) })
	}

	return out
}

func sample(label string, param float64, xs []float64, f func(float64) float64) Curve {
	c := Curve{
		Label: label,
		Param: param,
		X:     append([]float64(nil), xs...),
		Y:     make([]float64, len(xs)),
	}
	for i, x := range xs {
		c.Y[i] = f(x)
	}

	return c
}
