package go_bscalc

import (
	"math"

	"github.com/joshi-prasad/go_bscalc/normal"
)

// Theta is quoted per day on a 360 day year.
const thetaDayCount = 360.0

// Greeks collects the price and every sensitivity of a contract.
type Greeks struct {
	Price     float64
	Delta     float64
	Gamma     float64
	Vega      float64
	Theta     float64
	Rho       float64
	Moneyness float64
}

// kindFormulas holds the parts of the model that differ between calls and
// puts. d1 and d2 are passed in so Greeks can reuse them.
type kindFormulas interface {
	price(c *OptionContract, d1, d2 float64) float64
	delta(c *OptionContract, d1 float64) float64
	theta(c *OptionContract, d1, d2 float64) float64
	rho(c *OptionContract, d1 float64) float64
	intrinsic(c *OptionContract) float64
}

type callFormulas struct{}

func (callFormulas) price(c *OptionContract, d1, d2 float64) float64 {
	// price = S * N(d1) - K * exp(-r * T) * N(d2)
	return c.spot*cnd(d1) - c.strike*c.deflater()*cnd(d2)
}

func (callFormulas) delta(c *OptionContract, d1 float64) float64 {
	return cnd(d1)
}

func (callFormulas) theta(c *OptionContract, d1, d2 float64) float64 {
	return c.thetaWith(d1, cnd(d2))
}

func (callFormulas) rho(c *OptionContract, d1 float64) float64 {
	return c.rhoWith(cnd(d1))
}

func (callFormulas) intrinsic(c *OptionContract) float64 {
	return math.Max(c.spot-c.strike*c.deflater(), 0)
}

type putFormulas struct{}

func (putFormulas) price(c *OptionContract, d1, d2 float64) float64 {
	// price = K * exp(-r * T) * N(-d2) - S * N(-d1)
	return c.strike*c.deflater()*cnd(-d2) - c.spot*cnd(-d1)
}

func (putFormulas) delta(c *OptionContract, d1 float64) float64 {
	return cnd(d1) - 1.
}

func (putFormulas) theta(c *OptionContract, d1, d2 float64) float64 {
	return c.thetaWith(d1, 1.-cnd(d2))
}

func (putFormulas) rho(c *OptionContract, d1 float64) float64 {
	return c.rhoWith(1. - cnd(d1))
}

func (putFormulas) intrinsic(c *OptionContract) float64 {
	return math.Max(c.strike*c.deflater()-c.spot, 0)
}

// formulas falls back to nanFormulas for the zero value.
func (c *OptionContract) formulas() kindFormulas {
	if f := c.kind.formulas(); f != nil {
		return f
	}
	return nanFormulas{}
}

type nanFormulas struct{}

func (nanFormulas) price(*OptionContract, float64, float64) float64 { return math.NaN() }
func (nanFormulas) delta(*OptionContract, float64) float64          { return math.NaN() }
func (nanFormulas) theta(*OptionContract, float64, float64) float64 { return math.NaN() }
func (nanFormulas) rho(*OptionContract, float64) float64            { return math.NaN() }
func (nanFormulas) intrinsic(*OptionContract) float64               { return math.NaN() }

// D1 is (ln(S / K) + (r + σ² / 2) * T) / (σ * √T).
func (c OptionContract) D1() float64 {
	return (math.Log(c.spot/c.strike) +
		(c.rate+0.5*c.volatility*c.volatility)*c.timeToExpiry) /
		c.a()
}

// D2 is d1 - σ * √T.
func (c OptionContract) D2() float64 {
	return c.d2(c.D1())
}

// Price returns the Black-Scholes value of the contract.
func (c OptionContract) Price() float64 {
	d1 := c.D1()
	return c.formulas().price(&c, d1, c.d2(d1))
}

// Delta is N(d1) for a call and N(d1) - 1 for a put.
func (c OptionContract) Delta() float64 {
	return c.formulas().delta(&c, c.D1())
}

// Gamma is N(d1) / (S * σ * √T), identical for calls and puts.
//
// The numerator is the cumulative probability rather than the density used
// by the textbook formula. Kept so results match existing quotes.
func (c OptionContract) Gamma() float64 {
	return c.gammaWith(c.D1())
}

// Vega is the price change for one volatility point, 0.01 * S * √T * N(d1).
// Like Gamma it uses N(d1), not the density.
func (c OptionContract) Vega() float64 {
	return c.vegaWith(c.D1())
}

// Theta is the daily time decay on a 360 day year.
//
// The formula is not the closed form theta. It divides -(S * σ * N(d1)) by
// 2√T - r * K * exp(-rT) * N(d2), with 1 - N(d2) in place of N(d2) for puts.
// Existing quotes depend on this exact form. The denominator can cross zero,
// so theta grows without bound near that root; NewOptionContract rejects
// contracts where it is not finite.
func (c OptionContract) Theta() float64 {
	d1 := c.D1()
	return c.formulas().theta(&c, d1, c.d2(d1))
}

// Rho is 0.01 * S * T * exp(-rT) * N(d1) for a call and uses 1 - N(d1) for
// a put.
func (c OptionContract) Rho() float64 {
	return c.formulas().rho(&c, c.D1())
}

// Moneyness is (ln K - ln S) / (σ * √T). It does not depend on the kind.
func (c OptionContract) Moneyness() float64 {
	return (math.Log(c.strike) - math.Log(c.spot)) / c.a()
}

// DiscountedIntrinsic is the limit of Price as volatility goes to zero, the
// lowest price any volatility can produce.
func (c OptionContract) DiscountedIntrinsic() float64 {
	return c.formulas().intrinsic(&c)
}

// Greeks computes price and all sensitivities sharing one d1/d2 evaluation.
func (c OptionContract) Greeks() Greeks {
	d1 := c.D1()
	d2 := c.d2(d1)
	return Greeks{
		Price:     c.formulas().price(&c, d1, d2),
		Delta:     c.formulas().delta(&c, d1),
		Gamma:     c.gammaWith(d1),
		Vega:      c.vegaWith(d1),
		Theta:     c.formulas().theta(&c, d1, d2),
		Rho:       c.formulas().rho(&c, d1),
		Moneyness: c.Moneyness(),
	}
}

// a is σ * √T, the standard deviation of log returns up to expiry.
func (c *OptionContract) a() float64 {
	return c.volatility * math.Sqrt(c.timeToExpiry)
}

func (c *OptionContract) d2(d1 float64) float64 {
	return d1 - c.volatility*math.Sqrt(c.timeToExpiry)
}

// deflater discounts a payment at expiry to today.
func (c *OptionContract) deflater() float64 {
	return math.Exp(-c.rate * c.timeToExpiry)
}

func (c *OptionContract) gammaWith(d1 float64) float64 {
	return cnd(d1) / (c.spot * c.a())
}

func (c *OptionContract) vegaWith(d1 float64) float64 {
	return 0.01 * c.spot * math.Sqrt(c.timeToExpiry) * cnd(d1)
}

// thetaWith takes the kind-specific exercise probability, N(d2) for calls
// and 1 - N(d2) for puts.
func (c *OptionContract) thetaWith(d1, exercise float64) float64 {
	t := -(c.spot * c.volatility * cnd(d1)) /
		(2.*math.Sqrt(c.timeToExpiry) - c.rate*c.strike*c.deflater()*exercise)
	return t / thetaDayCount
}

func (c *OptionContract) rhoWith(weight float64) float64 {
	return 0.01 * c.spot * c.timeToExpiry * c.deflater() * weight
}

func cnd(x float64) float64 {
	return normal.StandardCDF(x)
}
