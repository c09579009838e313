package go_bscalc

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/smartystreets/goconvey/convey"
)

func TestNewOptionContract(t *testing.T) {
	convey.Convey("NewOptionContract", t, func() {
		convey.Convey("keeps the inputs", func() {
			c, err := NewOptionContract(Put, 101, 99, 0.25, -0.01, 0.3)
			convey.So(err, convey.ShouldBeNil)
			convey.So(c.Kind(), convey.ShouldEqual, Put)
			convey.So(c.Spot(), convey.ShouldEqual, 101.0)
			convey.So(c.Strike(), convey.ShouldEqual, 99.0)
			convey.So(c.TimeToExpiry(), convey.ShouldEqual, 0.25)
			convey.So(c.Rate(), convey.ShouldEqual, -0.01)
			convey.So(c.Volatility(), convey.ShouldEqual, 0.3)
		})

		convey.Convey("rejects invalid fields", func() {
			cases := []struct {
				field                     string
				spot, strike, tte, r, vol float64
			}{
				{"spot", 0, 100, 1, 0.01, 0.2},
				{"spot", -5, 100, 1, 0.01, 0.2},
				{"strike", 100, 0, 1, 0.01, 0.2},
				{"time to expiry", 100, 100, 0, 0.01, 0.2},
				{"time to expiry", 100, 100, -1, 0.01, 0.2},
				{"rate", 100, 100, 1, math.NaN(), 0.2},
				{"rate", 100, 100, 1, math.Inf(1), 0.2},
				{"volatility", 100, 100, 1, 0.01, 0},
				{"volatility", 100, 100, 1, 0.01, -0.2},
				{"volatility", 100, 100, 1, 0.01, math.NaN()},
				{"spot", math.Inf(1), 100, 1, 0.01, 0.2},
			}
			for _, tc := range cases {
				_, err := NewOptionContract(Call, tc.spot, tc.strike, tc.tte, tc.r, tc.vol)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, ErrInvalidInput), convey.ShouldBeTrue)

				var inputErr *InputError
				convey.So(errors.As(err, &inputErr), convey.ShouldBeTrue)
				convey.So(inputErr.Field, convey.ShouldEqual, tc.field)
			}
		})

		convey.Convey("rejects inputs that overflow together", func() {
			cases := []struct {
				field                     string
				spot, strike, tte, r, vol float64
			}{
				{"discount factor", 100, 100, 1, -800, 0.2},
				{"discount factor", 1e300, 1e-300, 1e10, -1e300, 0.2},
				{"log moneyness", 1e300, 1e-300, 1, 0.01, 0.2},
				{"d1", 100, 100, 1, 0.01, 1e200},
			}
			for _, tc := range cases {
				_, err := NewOptionContract(Call, tc.spot, tc.strike, tc.tte, tc.r, tc.vol)
				convey.So(errors.Is(err, ErrInvalidInput), convey.ShouldBeTrue)

				var inputErr *InputError
				convey.So(errors.As(err, &inputErr), convey.ShouldBeTrue)
				convey.So(inputErr.Field, convey.ShouldEqual, tc.field)
			}
		})

		convey.Convey("rejects an unknown kind", func() {
			_, err := NewOptionContract(OptionKind(0), 100, 100, 1, 0.01, 0.2)
			convey.So(errors.Is(err, ErrInvalidInput), convey.ShouldBeTrue)
			_, err = NewOptionContract(OptionKind(7), 100, 100, 1, 0.01, 0.2)
			convey.So(errors.Is(err, ErrInvalidInput), convey.ShouldBeTrue)
		})
	})
}

func TestWithVolatility(t *testing.T) {
	convey.Convey("WithVolatility", t, func() {
		c, err := NewOptionContract(Call, 100, 100, 1, 0.01, 0.2)
		convey.So(err, convey.ShouldBeNil)

		c2, err := c.WithVolatility(0.4)
		convey.So(err, convey.ShouldBeNil)
		convey.So(c2.Volatility(), convey.ShouldEqual, 0.4)
		convey.So(c.Volatility(), convey.ShouldEqual, 0.2)
		convey.So(c2.Price(), convey.ShouldBeGreaterThan, c.Price())

		_, err = c.WithVolatility(0)
		convey.So(errors.Is(err, ErrInvalidInput), convey.ShouldBeTrue)

		convey.Convey("rejects a volatility that overflows d1", func() {
			_, err := c.WithVolatility(1e200)
			convey.So(errors.Is(err, ErrInvalidInput), convey.ShouldBeTrue)
		})
	})
}

func TestZeroContract(t *testing.T) {
	convey.Convey("the zero OptionContract prices to NaN", t, func() {
		var c OptionContract
		convey.So(func() { _ = c.Greeks() }, convey.ShouldNotPanic)
		convey.So(math.IsNaN(c.Price()), convey.ShouldBeTrue)
		convey.So(math.IsNaN(c.Delta()), convey.ShouldBeTrue)
		convey.So(math.IsNaN(c.Theta()), convey.ShouldBeTrue)
		convey.So(math.IsNaN(c.Rho()), convey.ShouldBeTrue)
		convey.So(math.IsNaN(c.DiscountedIntrinsic()), convey.ShouldBeTrue)
		convey.So(math.IsNaN(c.Greeks().Price), convey.ShouldBeTrue)
	})
}

func TestOptionKindText(t *testing.T) {
	convey.Convey("OptionKind text encoding", t, func() {
		convey.So(Call.String(), convey.ShouldEqual, "call")
		convey.So(Put.String(), convey.ShouldEqual, "put")
		convey.So(OptionKind(0).String(), convey.ShouldEqual, "unknown")

		for text, want := range map[string]OptionKind{
			"call": Call, "CALL": Call, "c": Call, " Put ": Put, "p": Put,
		} {
			var k OptionKind
			convey.So(k.UnmarshalText([]byte(text)), convey.ShouldBeNil)
			convey.So(k, convey.ShouldEqual, want)
		}

		var k OptionKind
		err := k.UnmarshalText([]byte("straddle"))
		convey.So(errors.Is(err, ErrInvalidInput), convey.ShouldBeTrue)

		_, err = OptionKind(9).MarshalText()
		convey.So(errors.Is(err, ErrInvalidInput), convey.ShouldBeTrue)

		convey.Convey("round trips through JSON", func() {
			data, err := json.Marshal(map[string]OptionKind{"kind": Put})
			convey.So(err, convey.ShouldBeNil)
			convey.So(string(data), convey.ShouldEqual, `{"kind":"put"}`)

			var decoded map[string]OptionKind
			convey.So(json.Unmarshal(data, &decoded), convey.ShouldBeNil)
			convey.So(decoded["kind"], convey.ShouldEqual, Put)
		})
	})
}
