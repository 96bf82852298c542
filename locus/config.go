package locus

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tubecurve/solve"
)

// Defaults for Config.
const (
	DefaultMinDerivVa  = 0.85 // lowest fraction of Eb used to anchor a load line
	DefaultMinDerivVg  = 0.3  // fraction of the grid span bounding the least negative grid
	DefaultMinDerivIa  = 0.05 // lowest current swept, as a fraction of the highest
	DefaultEbRatio     = 0.95 // fraction of the top anode voltage used as Eb
	DefaultDerivPoints = 20
	DefaultDerivDelta  = 0.01 // cap on differentiation steps, as a fraction of the axis span
)

// Config tunes an Engine.
//
// Fields:
//   - MinDerivVa:  in (0, 1]; see DefaultMinDerivVa.
//   - MinDerivVg:  > 0; the sweep stays at or below Vg = −min(1, VgSpan·MinDerivVg).
//   - MinDerivIa:  in (0, 1); lower current bound when none is given.
//   - EbRatio:     in (0, 1]; default supply voltage is VaMax·EbRatio.
//   - DerivPoints: number of samples, ≥ 2.
//   - DerivDelta:  > 0; differentiation steps never exceed span·DerivDelta.
//   - Smooth:      replace Gm and Rp by leave-one-out cubic estimates.
//   - Ctx:         checked between samples; nil means context.Background().
//   - Solver:      bisection settings for the load-line intersection; the
//     zero value means solve.DefaultOptions().
type Config struct {
	MinDerivVa  float64
	MinDerivVg  float64
	MinDerivIa  float64
	EbRatio     float64
	DerivPoints int
	DerivDelta  float64
	Smooth      bool
	Ctx         context.Context
	Solver      solve.Options
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		MinDerivVa:  DefaultMinDerivVa,
		MinDerivVg:  DefaultMinDerivVg,
		MinDerivIa:  DefaultMinDerivIa,
		EbRatio:     DefaultEbRatio,
		DerivPoints: DefaultDerivPoints,
		DerivDelta:  DefaultDerivDelta,
		Ctx:         context.Background(),
		Solver:      solve.DefaultOptions(),
	}
}

// Validate reports the first unusable field, wrapping ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case !(c.MinDerivVa > 0 && c.MinDerivVa <= 1):
		return fmt.Errorf("MinDerivVa %g: %w", c.MinDerivVa, ErrBadConfig)
	case !(c.MinDerivVg > 0):
		return fmt.Errorf("MinDerivVg %g: %w", c.MinDerivVg, ErrBadConfig)
	case !(c.MinDerivIa > 0 && c.MinDerivIa < 1):
		return fmt.Errorf("MinDerivIa %g: %w", c.MinDerivIa, ErrBadConfig)
	case !(c.EbRatio > 0 && c.EbRatio <= 1):
		return fmt.Errorf("EbRatio %g: %w", c.EbRatio, ErrBadConfig)
	case c.DerivPoints < 2:
		return fmt.Errorf("DerivPoints %d: %w", c.DerivPoints, ErrBadConfig)
	case !(c.DerivDelta > 0):
		return fmt.Errorf("DerivDelta %g: %w", c.DerivDelta, ErrBadConfig)
	}
	if c.Solver != (solve.Options{}) {
		if err := c.Solver.Validate(); err != nil {
			return fmt.Errorf("Solver %+v: %w: %w", c.Solver, ErrBadConfig, err)
		}
	}

	return nil
}

func (c Config) ctx() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}

	return c.Ctx
}

func (c Config) solver() solve.Options {
	if c.Solver == (solve.Options{}) {
		return solve.DefaultOptions()
	}

	return c.Solver
}
