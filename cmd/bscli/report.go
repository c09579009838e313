package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	bs "github.com/joshi-prasad/go_bscalc"
)

const ruler = "---------------------------------------------------------------------------------------------"

// quoteRow is one printed line, rounded the way desks read it.
type quoteRow struct {
	Kind  bs.OptionKind   `json:"kind"`
	Price decimal.Decimal `json:"price"`
	Delta decimal.Decimal `json:"delta"`
	Gamma decimal.Decimal `json:"gamma"`
	Vega  decimal.Decimal `json:"vega"`
	Theta decimal.Decimal `json:"theta"`
	Rho   decimal.Decimal `json:"rho"`
}

type quoteReport struct {
	Moneyness decimal.Decimal `json:"moneyness"`
	Rows      []quoteRow      `json:"rows"`
}

func newQuoteRow(c bs.OptionContract) quoteRow {
	g := c.Greeks()
	return quoteRow{
		Kind:  c.Kind(),
		Price: decimal.NewFromFloat(g.Price).Round(2),
		Delta: decimal.NewFromFloat(g.Delta).Round(2),
		Gamma: decimal.NewFromFloat(g.Gamma).Round(6),
		Vega:  decimal.NewFromFloat(g.Vega).Round(2),
		Theta: decimal.NewFromFloat(g.Theta).Round(3),
		Rho:   decimal.NewFromFloat(g.Rho).Round(3),
	}
}

// newQuoteReport prices every contract. Moneyness does not depend on the
// kind, so the first contract supplies it.
func newQuoteReport(contracts ...bs.OptionContract) quoteReport {
	var r quoteReport
	if len(contracts) == 0 {
		return r
	}
	r.Moneyness = decimal.NewFromFloat(contracts[0].Moneyness()).Round(2)
	for _, c := range contracts {
		r.Rows = append(r.Rows, newQuoteRow(c))
	}
	return r
}

func (r quoteReport) writeTable(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintln(&b, ruler)
	fmt.Fprintf(&b, "Moneyness: %s\n", r.Moneyness.StringFixed(2))
	fmt.Fprintln(&b, ruler)
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%-4s | price: %s | delta: %s | gamma: %s | vega: %s | theta: %s | rho: %s\n",
			strings.ToUpper(row.Kind.String()),
			row.Price.StringFixed(2),
			row.Delta.StringFixed(2),
			row.Gamma.StringFixed(6),
			row.Vega.StringFixed(2),
			row.Theta.StringFixed(3),
			row.Rho.StringFixed(3))
	}
	fmt.Fprintln(&b, ruler)
	_, err := io.WriteString(w, b.String())
	return err
}

func (r quoteReport) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

type ivolReport struct {
	Kind       bs.OptionKind   `json:"kind"`
	Target     decimal.Decimal `json:"target"`
	Volatility decimal.Decimal `json:"volatility"`
}

func newIvolReport(kind bs.OptionKind, target, iv float64) ivolReport {
	return ivolReport{
		Kind:       kind,
		Target:     decimal.NewFromFloat(target),
		Volatility: decimal.NewFromFloat(iv).Round(5),
	}
}

func (r ivolReport) writeTable(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s implied volatility for price %s: %s\n",
		strings.ToUpper(r.Kind.String()), r.Target.String(), r.Volatility.StringFixed(5))
	return err
}

func (r ivolReport) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
