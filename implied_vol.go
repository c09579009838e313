package go_bscalc

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// bracket is the bisection state. low < high holds on every step.
type bracket struct {
	low  float64
	high float64
}

func (b *bracket) width() float64 {
	return b.high - b.low
}

func (b *bracket) mid() float64 {
	return (b.high + b.low) / 2
}

// narrow keeps the half that still contains the target. Price rises with
// volatility, so overshooting means mid is too high.
func (b *bracket) narrow(mid float64, overshoot bool) {
	if overshoot {
		b.high = mid
	} else {
		b.low = mid
	}
}

// ImpliedVolatility finds the volatility at which the Black-Scholes price of
// the described contract equals targetPrice.
//
// The search is a bisection over [0, 20] by default, stopping when the
// bracket is narrower than 0.0001 volatility units; the midpoint of the final
// bracket is returned. Prices that no volatility in the bracket can produce
// are reported as ErrNoSolutionFound (at or below the zero-volatility price)
// or ErrOutOfRange (at or above the price at the upper bound).
func ImpliedVolatility(
	kind OptionKind,
	spot float64,
	strike float64,
	timeToExpiry float64,
	rate float64,
	targetPrice float64,
	opts ...SolverOption) (float64, error) {
	cfg, err := newSolverConfig(opts...)
	if err != nil {
		return 0, err
	}
	if err := mustBePositive("target price", targetPrice); err != nil {
		return 0, err
	}

	upper, err := NewOptionContract(kind, spot, strike, timeToExpiry, rate, cfg.high)
	if err != nil {
		return 0, err
	}
	if ceiling := upper.Price(); targetPrice >= ceiling {
		return 0, errors.Wrapf(ErrOutOfRange,
			"target %v reaches price %v at volatility %v", targetPrice, ceiling, cfg.high)
	}
	floor := upper.DiscountedIntrinsic()
	if cfg.low > 0 {
		lower, err := upper.WithVolatility(cfg.low)
		if err != nil {
			return 0, err
		}
		floor = lower.Price()
	}
	if targetPrice <= floor {
		return 0, errors.Wrapf(ErrNoSolutionFound,
			"target %v is not above price %v at volatility %v", targetPrice, floor, cfg.low)
	}

	b := bracket{low: cfg.low, high: cfg.high}
	iterations := 0
	for b.width() > cfg.tolerance {
		if iterations >= cfg.maxIterations {
			glog.Warningf("implied vol: no convergence after %d iterations, bracket [%v, %v]",
				iterations, b.low, b.high)
			return 0, errors.Wrapf(ErrNoSolutionFound,
				"bisection did not converge within %d iterations", cfg.maxIterations)
		}
		mid := b.mid()
		priced, err := upper.WithVolatility(mid)
		if err != nil {
			return 0, err
		}
		price := priced.Price()
		glog.V(2).Infof("implied vol: iteration %d vol %v price %v target %v",
			iterations, mid, price, targetPrice)
		b.narrow(mid, price > targetPrice)
		iterations++
	}

	iv := b.mid()
	switch {
	case iv-cfg.low <= cfg.tolerance:
		glog.Warningf("implied vol: converged to lower bound %v for target %v", cfg.low, targetPrice)
		return 0, errors.Wrapf(ErrNoSolutionFound, "bisection converged to lower bound %v", cfg.low)
	case cfg.high-iv <= cfg.tolerance:
		glog.Warningf("implied vol: converged to upper bound %v for target %v", cfg.high, targetPrice)
		return 0, errors.Wrapf(ErrOutOfRange, "bisection converged to upper bound %v", cfg.high)
	}

	glog.V(1).Infof("implied vol: %s S=%v K=%v T=%v r=%v target=%v -> %v in %d iterations",
		kind, spot, strike, timeToExpiry, rate, targetPrice, iv, iterations)
	return iv, nil
}
