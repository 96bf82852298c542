package surface

import (
	"io"
	"log"

	"github.com/katalvlaran/tubecurve/solve"
)

// Option configures Construct.
type Option func(*options)

type options struct {
	logger *log.Logger
	solver solve.Options
}

func defaultOptions() options {
	return options{
		logger: log.New(io.Discard, "", 0),
		solver: solve.DefaultOptions(),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithLogger routes non-fatal diagnostics (unconverged inverse solves) to l.
// Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("surface: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithSolverOptions sets the bisection settings used by VaFromIa and
// VgFromIa. Panics if o fails solve.Options.Validate.
func WithSolverOptions(so solve.Options) Option {
	if err := so.Validate(); err != nil {
		panic("surface: WithSolverOptions: " + err.Error())
	}

	return func(o *options) { o.solver = so }
}
