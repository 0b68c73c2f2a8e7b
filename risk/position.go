// Package risk measures what a trade puts on the line at its stop and sizes
// new positions from an account risk percentage.
package risk

import (
	"errors"
	"math"

	"github.com/rustyeddy/fxjournal/market"
	"github.com/rustyeddy/fxjournal/pnl"
)

// MinLot is the smallest tradable size, one micro lot.
const MinLot = 0.01

type Inputs struct {
	Instrument string
	Equity     float64 // account balance in account currency
	RiskPct    float64 // percent of equity, 1 = 1%
	EntryPrice float64
	StopPrice  float64
}

type Result struct {
	Lots       float64 `json:"lots"`
	StopPips   float64 `json:"stopPips"`
	RiskAmount float64 `json:"riskAmount"` // what hitting the stop costs at Lots
	Budget     float64 `json:"budget"`     // Equity * RiskPct
}

var (
	ErrNoStopDistance = errors.New("entry and stop must differ")
	ErrBadInputs      = errors.New("instrument, equity, risk percent and prices are required")
)

// Calculate sizes a position so that hitting the stop costs at most
// RiskPct of Equity. Lots are floored to MinLot.
func Calculate(in Inputs) (Result, error) {
	if in.Instrument == "" || in.Equity <= 0 || in.RiskPct <= 0 || in.EntryPrice <= 0 || in.StopPrice <= 0 {
		return Result{}, ErrBadInputs
	}
	pip := market.PipUnit(in.Instrument)
	stopPips := math.Abs(in.EntryPrice-in.StopPrice) / pip
	if stopPips < 1e-9 {
		return Result{}, ErrNoStopDistance
	}

	budget := in.Equity * in.RiskPct / 100
	perLot := stopPips * pnl.PipValuePerLot(in.Instrument)
	lots := math.Floor(budget/perLot/MinLot+1e-9) * MinLot

	return Result{
		Lots:       lots,
		StopPips:   math.Round(stopPips*10) / 10,
		RiskAmount: math.Round(lots*perLot*100) / 100,
		Budget:     math.Round(budget*100) / 100,
	}, nil
}
