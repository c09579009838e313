// Command bscli prints Black-Scholes prices and Greeks for a call and a put,
// or solves implied volatility for an observed price.
//
//	bscli -under 100 -strike 100 -days 7 -rate 0.03 -vola 0.8
//	bscli -under 20000 -strike 20000 -days 7 -rate 0.03 -kind put -ivol 661
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	bs "github.com/joshi-prasad/go_bscalc"
)

type config struct {
	under    float64
	strike   float64
	days     float64
	rate     float64
	vola     float64
	dayCount float64
	kind     bs.OptionKind
	ivol     float64
	json     bool
}

func (c config) years() float64 {
	return c.days / c.dayCount
}

type writer interface {
	writeTable(w io.Writer) error
	writeJSON(w io.Writer) error
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	cfg := config{kind: bs.Call}
	fs.Float64Var(&cfg.under, "under", 0, "underlying price")
	fs.Float64Var(&cfg.strike, "strike", 0, "strike price")
	fs.Float64Var(&cfg.days, "days", 0, "days to expiry")
	fs.Float64Var(&cfg.rate, "rate", 0, "continuously compounded risk-free rate")
	fs.Float64Var(&cfg.vola, "vola", 0, "annualized volatility, ignored with -ivol")
	fs.Float64Var(&cfg.dayCount, "day-count", 360, "days per year used to convert -days")
	fs.TextVar(&cfg.kind, "kind", bs.Call, "option kind for -ivol: call or put")
	fs.Float64Var(&cfg.ivol, "ivol", 0, "observed option price; solve implied volatility instead of pricing")
	fs.BoolVar(&cfg.json, "json", false, "print JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.dayCount <= 0 {
		return cfg, fmt.Errorf("day-count must be positive, got %v", cfg.dayCount)
	}
	if cfg.ivol < 0 {
		return cfg, fmt.Errorf("ivol must not be negative, got %v", cfg.ivol)
	}
	return cfg, nil
}

func run(cfg config) (writer, error) {
	if cfg.ivol > 0 {
		iv, err := bs.ImpliedVolatility(cfg.kind, cfg.under, cfg.strike, cfg.years(), cfg.rate, cfg.ivol)
		if err != nil {
			return nil, err
		}
		return newIvolReport(cfg.kind, cfg.ivol, iv), nil
	}

	call, err := bs.NewOptionContract(bs.Call, cfg.under, cfg.strike, cfg.years(), cfg.rate, cfg.vola)
	if err != nil {
		return nil, err
	}
	put, err := bs.NewOptionContract(bs.Put, cfg.under, cfg.strike, cfg.years(), cfg.rate, cfg.vola)
	if err != nil {
		return nil, err
	}
	return newQuoteReport(call, put), nil
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	defer glog.Flush()
	if err != nil {
		glog.Exitf("invalid flags: %v", err)
	}
	glog.V(1).Infof("S=%v K=%v T=%v years r=%v vol=%v", cfg.under, cfg.strike, cfg.years(), cfg.rate, cfg.vola)

	out, err := run(cfg)
	if err != nil {
		glog.Exitf("%v", err)
	}

	if cfg.json {
		err = out.writeJSON(os.Stdout)
	} else {
		err = out.writeTable(os.Stdout)
	}
	if err != nil {
		glog.Exitf("write output: %v", err)
	}
}
