package go_bscalc

import "github.com/pkg/errors"

const (
	// DefaultLowVolatility and DefaultHighVolatility bracket the bisection.
	DefaultLowVolatility  = 0.0
	DefaultHighVolatility = 20.0
	// DefaultTolerance is measured in volatility units, not price.
	DefaultTolerance = 0.0001
	// MaxIterations caps the bisection loop. The default bracket and
	// tolerance need 18 steps.
	MaxIterations = 100
)

type solverConfig struct {
	low           float64
	high          float64
	tolerance     float64
	maxIterations int
}

// SolverOption customises ImpliedVolatility.
type SolverOption func(*solverConfig)

// WithBounds sets the volatility bracket searched by the solver.
func WithBounds(low, high float64) SolverOption {
	return func(c *solverConfig) {
		c.low = low
		c.high = high
	}
}

// WithTolerance sets the bracket width at which bisection stops.
func WithTolerance(tolerance float64) SolverOption {
	return func(c *solverConfig) {
		c.tolerance = tolerance
	}
}

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) SolverOption {
	return func(c *solverConfig) {
		c.maxIterations = n
	}
}

func newSolverConfig(opts ...SolverOption) (solverConfig, error) {
	cfg := solverConfig{
		low:           DefaultLowVolatility,
		high:          DefaultHighVolatility,
		tolerance:     DefaultTolerance,
		maxIterations: MaxIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !isFinite(cfg.low) || !isFinite(cfg.high) || cfg.low < 0 || cfg.low >= cfg.high {
		return cfg, errors.Wrapf(ErrInvalidInput, "volatility bounds [%v, %v]", cfg.low, cfg.high)
	}
	if !isFinite(cfg.tolerance) || cfg.tolerance <= 0 {
		return cfg, errors.Wrapf(ErrInvalidInput, "tolerance %v must be positive", cfg.tolerance)
	}
	if cfg.maxIterations <= 0 {
		return cfg, errors.Wrapf(ErrInvalidInput, "max iterations %d must be positive", cfg.maxIterations)
	}
	return cfg, nil
}
