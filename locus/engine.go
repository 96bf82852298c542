package locus

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tubecurve/axis"
	"github.com/katalvlaran/tubecurve/deriv"
	"github.com/katalvlaran/tubecurve/solve"
)

// Characteristic is the anode-current function the engine differentiates.
// *surface.Surface implements it.
type Characteristic interface {
	Evaluate(va, vg float64) float64
	VaFromIa(vg, ia float64) float64
	VgFromIa(va, ia float64) float64
	VaMax() float64
	VaSpan() float64
	VgSpan() float64
}

// Engine computes derivatives over one Characteristic.
type Engine struct {
	c   Characteristic
	cfg Config
}

// New returns an Engine for c. Errors: ErrBadConfig.
func New(c Characteristic, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Engine{c: c, cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// OneDerivative resolves p and differentiates the characteristic there.
//
// Steps:
//  1. GivenVg: va = VaFromIa(Vg, Ia). GivenVa: vg = VgFromIa(Va, Ia).
//  2. va_delta = min(max(va·0.05, 1), VaSpan·DerivDelta);
//     vg_delta = min(max(vg·0.05, 0.05), VgSpan·DerivDelta).
//  3. Gm = ∂Ia/∂vg, invRp = ∂Ia/∂va (forward differences).
//  4. Mu = (VaFromIa(vg, Ia(va, vg+vg_delta)) − va) / vg_delta.
//
// Errors: ErrBadPoint for an unknown Given or a non-finite coordinate.
func (e *Engine) OneDerivative(p Point) (Derivative, error) {
	if !finite(p.Ia) {
		return Derivative{}, fmt.Errorf("ia %g: %w", p.Ia, ErrBadPoint)
	}
	va, vg := p.Va, p.Vg
	switch p.Given {
	case GivenVg:
		if !finite(vg) {
			return Derivative{}, fmt.Errorf("vg %g: %w", vg, ErrBadPoint)
		}
		va = e.c.VaFromIa(vg, p.Ia)
	case GivenVa:
		if !finite(va) {
			return Derivative{}, fmt.Errorf("va %g: %w", va, ErrBadPoint)
		}
		vg = e.c.VgFromIa(va, p.Ia)
	default:
		return Derivative{}, fmt.Errorf("given %d: %w", p.Given, ErrBadPoint)
	}

	vaDelta := math.Min(math.Max(va*0.05, 1), e.c.VaSpan()*e.cfg.DerivDelta)
	vgDelta := math.Min(math.Max(vg*0.05, 0.05), e.c.VgSpan()*e.cfg.DerivDelta)

	gm := deriv.Partial(func(g float64) float64 { return e.c.Evaluate(va, g) }, vg, vgDelta)
	invRp := deriv.Partial(func(a float64) float64 { return e.c.Evaluate(a, vg) }, va, vaDelta)
	var rp float64
	if invRp > 0 {
		rp = 1 / invRp
	}

	// anode voltage that restores the current after a small grid step
	dIa := e.c.Evaluate(va, vg+vgDelta)
	mu := (e.c.VaFromIa(vg, dIa) - va) / vgDelta

	return Derivative{Gm: gm, Rp: rp, Mu: mu, Va: va, Vg: vg}, nil
}

// GetDerivatives sweeps Config.DerivPoints evenly spaced currents and
// returns the derivatives along the locus selected by mode. A nil mode means
// LoadLine{Eb: VaMax·EbRatio}.
//
// Current bounds, when not given, follow the mode (min_vg = min(1,
// VgSpan·MinDerivVg), evaluated at grid voltage −min_vg):
//
//   - LoadLine, Rl == 0: max = Ia(Eb·MinDerivVa, −min_vg); then
//     MinEb = min(Eb, VaFromIa(−min_vg, max)·1.1) and
//     Rl = RoundSignificant((Eb − MinEb)/max, 2).
//   - LoadLine, Rl > 0:  max = where the load line meets the −min_vg curve.
//   - FixedVa:           max = Ia(Va, −min_vg).
//   - FixedVg:           max = Ia(VaMax·EbRatio, Vg).
//   - min = max·MinDerivIa.
//
// Errors: ErrBadBounds, ErrBadMode, ErrNoCurrent, ErrBadPoint, or the
// context error when Config.Ctx is done.
func (e *Engine) GetDerivatives(mode Mode, bounds IaBounds) (*Locus, error) {
	if !validBounds(bounds) {
		return nil, fmt.Errorf("%+v: %w", bounds, ErrBadBounds)
	}
	if mode == nil {
		mode = LoadLine{Eb: e.c.VaMax() * e.cfg.EbRatio}
	}
	minVg := math.Min(1, e.c.VgSpan()*e.cfg.MinDerivVg)

	loc := &Locus{Bounds: bounds}
	maxIa := bounds.Max
	switch m := mode.(type) {
	case LoadLine:
		if !(m.Eb > 0) || !(m.Rl >= 0) || math.IsInf(m.Eb, 0) || math.IsInf(m.Rl, 0) {
			return nil, fmt.Errorf("%v: %w", m, ErrBadMode)
		}
		if m.Rl == 0 {
			if maxIa == 0 {
				maxIa = e.c.Evaluate(m.Eb*e.cfg.MinDerivVa, -minVg)
			}
			if maxIa <= 0 {
				return nil, fmt.Errorf("%v: %w", m, ErrNoCurrent)
			}
			loc.MinEb = math.Min(m.Eb, e.c.VaFromIa(-minVg, maxIa)*1.1)
			m.Rl = axis.RoundSignificant((m.Eb-loc.MinEb)/maxIa, 2)
		} else if maxIa == 0 {
			ia, err := e.loadLineCurrent(m, -minVg)
			if err != nil {
				return nil, fmt.Errorf("%v: intersection with Vg = %g: %w", m, -minVg, err)
			}
			maxIa = ia
		}
		mode = m
	case FixedVa:
		if !finite(m.Va) {
			return nil, fmt.Errorf("%v: %w", m, ErrBadMode)
		}
		if maxIa == 0 {
			maxIa = e.c.Evaluate(m.Va, -minVg)
		}
	case FixedVg:
		if !finite(m.Vg) {
			return nil, fmt.Errorf("%v: %w", m, ErrBadMode)
		}
		if maxIa == 0 {
			maxIa = e.c.Evaluate(e.c.VaMax()*e.cfg.EbRatio, m.Vg)
		}
	default:
		return nil, fmt.Errorf("%T: %w", mode, ErrBadMode)
	}
	if !(maxIa > 0) {
		return nil, fmt.Errorf("%v: %w", mode, ErrNoCurrent)
	}
	minIa := bounds.Min
	if minIa == 0 {
		minIa = maxIa * e.cfg.MinDerivIa
	}
	if minIa >= maxIa {
		return nil, fmt.Errorf("min %g ≥ max %g: %w", minIa, maxIa, ErrBadBounds)
	}
	loc.Mode = mode
	loc.Bounds = IaBounds{Min: minIa, Max: maxIa}

	n := e.cfg.DerivPoints
	loc.Ia = floats.Span(make([]float64, n), minIa, maxIa)
	loc.Gm = make([]float64, n)
	loc.Rp = make([]float64, n)
	loc.Mu = make([]float64, n)
	loc.Va = make([]float64, n)
	loc.Vg = make([]float64, n)

	ctx := e.cfg.ctx()
	for i, ia := range loc.Ia {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("locus: sweep stopped at sample %d: %w", i, err)
		}
		d, err := e.OneDerivative(samplePoint(mode, ia))
		if err != nil {
			return nil, fmt.Errorf("sample %d (ia=%g): %w", i, ia, err)
		}
		loc.Gm[i], loc.Rp[i], loc.Mu[i] = d.Gm, d.Rp, d.Mu
		loc.Va[i], loc.Vg[i] = d.Va, d.Vg
	}

	if e.cfg.Smooth && n >= minSmoothPoints {
		if err := loc.smooth(); err != nil {
			return nil, err
		}
	}

	return loc, nil
}

// samplePoint places the current ia on the locus of mode.
func samplePoint(mode Mode, ia float64) Point {
	switch m := mode.(type) {
	case LoadLine:
		return Point{Va: m.Eb - m.Rl*ia, Ia: ia, Given: GivenVa}
	case FixedVa:
		return Point{Va: m.Va, Ia: ia, Given: GivenVa}
	default:
		return Point{Vg: mode.(FixedVg).Vg, Ia: ia, Given: GivenVg}
	}
}

// loadLineCurrent returns the current where the load line crosses the
// curve for grid voltage vg, i.e. the root of ia − Ia(Eb − Rl·ia, vg).
func (e *Engine) loadLineCurrent(m LoadLine, vg float64) (float64, error) {
	g := func(ia float64) float64 { return ia - e.c.Evaluate(m.Eb-m.Rl*ia, vg) }
	r, err := solve.ForAxis(g, 0, m.Eb/m.Rl, 0, e.cfg.solver())
	if err != nil {
		return 0, err
	}

	return r.X, nil
}

func validBounds(b IaBounds) bool {
	if !finite(b.Min) || !finite(b.Max) || b.Min < 0 || b.Max < 0 {
		return false
	}

	return b.Max == 0 || b.Min < b.Max
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
