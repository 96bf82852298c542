package grid

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// New validates and deep-copies a measured characteristic.
//
// va must be strictly increasing anode voltages, vgMagnitude strictly
// increasing grid-voltage magnitudes (grid voltage 0, -1, -2 is passed as
// 0, 1, 2), and ia a len(va)×len(vgMagnitude) table of currents in mA.
// Currents with magnitude at or below ZeroThreshold are stored as 0.
//
// Validation order: va axis → vg axis (length, NaN/Inf, monotonicity each)
// → table shape → table values. The first violation is returned, wrapped
// with the name of the offending axis or cell.
// Complexity: O(m×n) time and memory.
func New(va, vgMagnitude []float64, ia [][]float64) (*Grid, error) {
	if err := validateAxis("va", va); err != nil {
		return nil, err
	}
	if err := validateAxis("vg", vgMagnitude); err != nil {
		return nil, err
	}
	if len(ia) != len(va) {
		return nil, fmt.Errorf("ia has %d rows, va has %d points: %w", len(ia), len(va), ErrDimensionMismatch)
	}
	cols := len(vgMagnitude)
	for i, row := range ia {
		if len(row) != cols {
			return nil, fmt.Errorf("ia row %d has %d values, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
	}

	// Deep copy to prevent external mutation
	cells := make([][]float64, len(ia))
	for i, row := range ia {
		cells[i] = make([]float64, cols)
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("ia[%d][%d]: %w", i, j, ErrNaNInf)
			}
			if v < -ZeroThreshold {
				return nil, fmt.Errorf("ia[%d][%d] = %g: %w", i, j, v, ErrNegativeCurrent)
			}
			cells[i][j] = suppress(v)
		}
	}

	return &Grid{
		va: slices.Clone(va),
		vg: slices.Clone(vgMagnitude),
		ia: cells,
	}, nil
}

// validateAxis checks length, finiteness and strict monotonicity.
func validateAxis(name string, axis []float64) error {
	if len(axis) < MinAxisPoints {
		return fmt.Errorf("%s axis has %d points: %w", name, len(axis), ErrTooFewPoints)
	}
	for i, v := range axis {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d]: %w", name, i, ErrNaNInf)
		}
	}
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return fmt.Errorf("%s[%d]=%g after %g: %w", name, i, axis[i], axis[i-1], ErrNotIncreasing)
		}
	}

	return nil
}

// suppress zeroes currents too small to be distinguished from noise.
func suppress(v float64) float64 {
	if math.Abs(v) <= ZeroThreshold {
		return 0
	}

	return v
}

// Rows returns the number of anode-voltage samples.
func (g *Grid) Rows() int { return len(g.va) }

// Cols returns the number of grid-voltage samples.
func (g *Grid) Cols() int { return len(g.vg) }

// Va returns a copy of the anode-voltage axis.
func (g *Grid) Va() []float64 { return slices.Clone(g.va) }

// VgMagnitude returns a copy of the grid-voltage magnitude axis.
func (g *Grid) VgMagnitude() []float64 { return slices.Clone(g.vg) }

// Ia returns a deep copy of the current table.
func (g *Grid) Ia() [][]float64 { return cloneTable(g.ia) }

// At returns the current at row i (Va) and column j (Vg).
// Panics if the indices are out of range, like slice indexing.
func (g *Grid) At(i, j int) float64 { return g.ia[i][j] }

// Rows returns the number of anode-voltage samples, synthetic row included.
func (e *Extended) Rows() int { return len(e.va) }

// Cols returns the number of grid-voltage samples, synthetic column included.
func (e *Extended) Cols() int { return len(e.vg) }

// Va returns a copy of the extended anode-voltage axis.
func (e *Extended) Va() []float64 { return slices.Clone(e.va) }

// VgMagnitude returns a copy of the extended grid-voltage magnitude axis.
func (e *Extended) VgMagnitude() []float64 { return slices.Clone(e.vg) }

// Ia returns a deep copy of the extended current table.
func (e *Extended) Ia() [][]float64 { return cloneTable(e.ia) }

// At returns the extended table value at row i and column j.
func (e *Extended) At(i, j int) float64 { return e.ia[i][j] }

// OriginalVa returns a copy of the measured anode-voltage axis.
func (e *Extended) OriginalVa() []float64 { return slices.Clone(e.origVa) }

// OriginalVgMagnitude returns a copy of the measured grid-voltage magnitudes.
func (e *Extended) OriginalVgMagnitude() []float64 { return slices.Clone(e.origVg) }

// IaRange returns the smallest and largest value of the extended table.
func (e *Extended) IaRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range e.ia {
		lo = min(lo, floats.Min(row))
		hi = max(hi, floats.Max(row))
	}

	return lo, hi
}

func cloneTable(t [][]float64) [][]float64 {
	out := make([][]float64, len(t))
	for i, row := range t {
		out[i] = slices.Clone(row)
	}

	return out
}
