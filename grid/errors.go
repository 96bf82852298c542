package grid

import "errors"

// Sentinel errors for grid construction and extrapolation. All of them are
// construction failures: the input cannot describe a usable characteristic.
var (
	// ErrTooFewPoints indicates an axis or slice shorter than MinAxisPoints.
	ErrTooFewPoints = errors.New("grid: at least 3 points are required")
	// ErrNotIncreasing indicates an axis that is not strictly increasing.
	ErrNotIncreasing = errors.New("grid: axis must be strictly increasing")
	// ErrDimensionMismatch indicates len(Ia) != len(Va), or len(x) != len(y).
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
	// ErrNonRectangular indicates a table row whose length differs from len(Vg).
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNaNInf indicates a NaN or ±Inf in an axis or in the table.
	ErrNaNInf = errors.New("grid: NaN or Inf value")
	// ErrNegativeCurrent indicates an anode current below -ZeroThreshold.
	ErrNegativeCurrent = errors.New("grid: anode current must be non-negative")
)
