// Package pnl prices journal trades: pip movement, pip value per lot,
// monetary profit/loss and aggregate statistics.
//
// Every function here is pure. Missing input (an empty instrument or a zero
// price or lot size) yields 0 rather than an error, so callers can render
// open trades without guarding.
package pnl

import (
	"math"
	"regexp"
	"strings"

	"github.com/rustyeddy/fxjournal/market"
)

// Input is the part of a trade the engine needs. Exit is zero while the
// trade is still open.
type Input struct {
	Instrument string
	Side       market.Side
	Entry      float64
	Exit       float64
	Lots       float64
}

// Result is the per-trade evaluation shared by stats and history sorting.
type Result struct {
	Pips float64 `json:"pips"`
	PnL  float64 `json:"pnl"`
}

// Evaluate computes pips and P&L for a single trade.
func Evaluate(in Input) Result {
	return Result{
		Pips: Pips(in.Instrument, in.Entry, in.Exit, in.Side),
		PnL:  PnL(in.Instrument, in.Entry, in.Exit, in.Side, in.Lots),
	}
}

// Pips returns the signed pip movement of a trade, rounded to one decimal.
// Positive means the move was in the trade's favour.
func Pips(instrument string, entry, exit float64, side market.Side) float64 {
	if instrument == "" || entry == 0 || exit == 0 {
		return 0
	}
	diff := (exit - entry) * side.Sign()
	return roundTo(diff/market.PipUnit(instrument), 10)
}

var (
	usdQuoted  = regexp.MustCompile(`^(EUR|GBP|AUD|NZD)USD$`)
	usdBase    = regexp.MustCompile(`^USD(CHF|CAD)$`)
	majorCross = regexp.MustCompile(`^(EUR|GBP|AUD|NZD)(CHF|CAD|JPY)$`)
)

const defaultPipValue = 10.0

// PipValuePerLot is the account-currency value of one pip on one standard
// lot. It is a static approximation table, not a live conversion.
func PipValuePerLot(instrument string) float64 {
	if instrument == "" {
		return defaultPipValue
	}
	upper := strings.ToUpper(instrument)
	sym := market.Symbol(instrument)

	switch {
	case usdQuoted.MatchString(sym):
		return 10
	case usdBase.MatchString(sym):
		return 10
	case strings.Contains(upper, "JPY"):
		return 9.3
	case strings.Contains(upper, "XAU") || strings.Contains(upper, "GOLD"):
		return 10
	case strings.Contains(upper, "XAG") || strings.Contains(upper, "SILVER"):
		return 50
	case strings.Contains(upper, "BTC") || strings.Contains(upper, "ETH"):
		return 10
	case majorCross.MatchString(sym):
		return 10
	}
	return defaultPipValue
}

// PnL returns profit or loss in account currency, rounded to cents.
func PnL(instrument string, entry, exit float64, side market.Side, lots float64) float64 {
	if instrument == "" || entry == 0 || exit == 0 || lots == 0 {
		return 0
	}
	pips := Pips(instrument, entry, exit, side)
	return roundTo(pips*PipValuePerLot(instrument)*lots, 100)
}

// roundTo rounds half up at the given scale (10 = one decimal, 100 = two).
// Halves go towards +Inf, so -2.5 becomes -2.
func roundTo(x, scale float64) float64 {
	return math.Floor(x*scale+0.5) / scale
}
