package go_bscalc

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// OptionKind selects the payoff of a European option.
type OptionKind uint8

const (
	Call = OptionKind(1)
	Put  = OptionKind(2)
)

func (k OptionKind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k OptionKind) MarshalText() ([]byte, error) {
	if k.formulas() == nil {
		return nil, errors.Wrapf(ErrInvalidInput, "option kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText accepts "call", "c", "put" and "p" in any case.
func (k *OptionKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "call", "c":
		*k = Call
	case "put", "p":
		*k = Put
	default:
		return errors.Wrapf(ErrInvalidInput, "option kind %q", string(text))
	}
	return nil
}

// formulas returns the kind-specific formula set, or nil for an unknown
// kind.
func (k OptionKind) formulas() kindFormulas {
	switch k {
	case Call:
		return callFormulas{}
	case Put:
		return putFormulas{}
	default:
		return nil
	}
}

// OptionContract holds the valuation inputs of a single European option.
// It is immutable once built by NewOptionContract. The zero value is not a
// valid contract: every output of it is NaN.
type OptionContract struct {
	kind         OptionKind
	spot         float64 /* S */
	strike       float64 /* K */
	timeToExpiry float64 /* T, years */
	rate         float64 /* r, continuously compounded */
	volatility   float64 /* sigma, annualized */
}

// NewOptionContract validates the inputs and returns a contract ready for
// pricing. Spot, strike, time to expiry and volatility must be positive and
// finite; the rate must be finite. Time is in years. Combinations that
// overflow, such as rate * T below -709, are rejected as well, so a valid
// contract never prices to NaN or ±Inf.
func NewOptionContract(
	kind OptionKind,
	spot float64,
	strike float64,
	timeToExpiry float64,
	rate float64,
	volatility float64) (OptionContract, error) {
	if kind.formulas() == nil {
		return OptionContract{}, errors.Wrapf(ErrInvalidInput, "option kind %d", uint8(kind))
	}
	for _, err := range []error{
		mustBePositive("spot", spot),
		mustBePositive("strike", strike),
		mustBePositive("time to expiry", timeToExpiry),
		mustBeFinite("rate", rate),
		mustBePositive("volatility", volatility),
	} {
		if err != nil {
			return OptionContract{}, err
		}
	}

	c := OptionContract{
		kind:         kind,
		spot:         spot,
		strike:       strike,
		timeToExpiry: timeToExpiry,
		rate:         rate,
		volatility:   volatility,
	}
	if err := c.checkFinite(); err != nil {
		return OptionContract{}, err
	}
	return c, nil
}

// WithVolatility returns a copy of c priced at a different volatility.
func (c OptionContract) WithVolatility(volatility float64) (OptionContract, error) {
	if err := mustBePositive("volatility", volatility); err != nil {
		return OptionContract{}, err
	}
	c.volatility = volatility
	if err := c.checkFinite(); err != nil {
		return OptionContract{}, err
	}
	return c, nil
}

// checkFinite rejects inputs that are finite one by one but overflow once
// combined.
func (c OptionContract) checkFinite() error {
	g := c.Greeks()
	for _, q := range []struct {
		field string
		value float64
	}{
		{"discount factor", c.deflater()},
		{"log moneyness", math.Log(c.spot / c.strike)},
		{"d1", c.D1()},
		{"d2", c.D2()},
		{"price", g.Price},
		{"delta", g.Delta},
		{"gamma", g.Gamma},
		{"vega", g.Vega},
		{"theta", g.Theta},
		{"rho", g.Rho},
		{"moneyness", g.Moneyness},
	} {
		if !isFinite(q.value) {
			return &InputError{Field: q.field, Value: q.value, Reason: "is not finite for these inputs"}
		}
	}
	return nil
}

func (c OptionContract) Kind() OptionKind      { return c.kind }
func (c OptionContract) Spot() float64         { return c.spot }
func (c OptionContract) Strike() float64       { return c.strike }
func (c OptionContract) TimeToExpiry() float64 { return c.timeToExpiry }
func (c OptionContract) Rate() float64         { return c.rate }
func (c OptionContract) Volatility() float64   { return c.volatility }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
