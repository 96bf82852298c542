package bspline

import "errors"

var (
	// ErrDegree indicates a degree outside [1, MaxDegree].
	ErrDegree = errors.New("bspline: degree out of range")
	// ErrTooFewPoints indicates an axis with fewer than degree+1 points.
	ErrTooFewPoints = errors.New("bspline: not enough points for degree")
	// ErrNotIncreasing indicates an axis that is not strictly increasing.
	ErrNotIncreasing = errors.New("bspline: axis must be strictly increasing")
	// ErrDimensionMismatch indicates a table whose shape differs from len(x)×len(y).
	ErrDimensionMismatch = errors.New("bspline: dimension mismatch")
	// ErrSingular indicates the collocation system could not be solved.
	ErrSingular = errors.New("bspline: singular collocation matrix")
)
