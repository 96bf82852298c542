package solve

import "errors"

var (
	// ErrBadBounds indicates non-finite bounds or lo >= hi.
	ErrBadBounds = errors.New("solve: bounds must be finite with lo < hi")
	// ErrBadTarget indicates a NaN or infinite target value.
	ErrBadTarget = errors.New("solve: target must be finite")
	// ErrBadOptions indicates a non-positive iteration cap or negative tolerance.
	ErrBadOptions = errors.New("solve: invalid options")
)

// Defaults mirror the usual floating-point closeness check
// (relative 1e-8, absolute 1e-5) with a cap on the number of halvings.
const (
	DefaultMaxIter = 100
	DefaultRelTol  = 1e-8
	DefaultAbsTol  = 1e-5
)

// Options configures ForAxis.
//
// Fields:
//   - MaxIter: maximum number of bisection steps (> 0).
//   - RelTol:  relative tolerance on f(x) against the target (≥ 0).
//   - AbsTol:  absolute tolerance on f(x) against the target (≥ 0).
type Options struct {
	MaxIter int
	RelTol  float64
	AbsTol  float64
}

// DefaultOptions returns Options{MaxIter: 100, RelTol: 1e-8, AbsTol: 1e-5}.
func DefaultOptions() Options {
	return Options{
		MaxIter: DefaultMaxIter,
		RelTol:  DefaultRelTol,
		AbsTol:  DefaultAbsTol,
	}
}

// Validate reports ErrBadOptions for unusable settings.
func (o Options) Validate() error {
	if o.MaxIter <= 0 || o.RelTol < 0 || o.AbsTol < 0 {
		return ErrBadOptions
	}

	return nil
}

// Result describes the outcome of ForAxis.
//
//   - X:          the solution (or best estimate).
//   - Y:          f(X).
//   - Iterations: bisection steps taken (0 when resolved at a bound).
//   - Converged:  false only when MaxIter was exhausted.
//   - Saturated:  the target lay outside the range of f and X is a bound.
type Result struct {
	X          float64
	Y          float64
	Iterations int
	Converged  bool
	Saturated  bool
}
