package risk

import (
	"math"

	"github.com/rustyeddy/fxjournal/pnl"
)

// Assessment is what a trade stood to lose at its stop loss.
//
// StopPips and AtRisk are positive when the stop sits on the losing side of
// the entry and negative when it already locks in profit.
type Assessment struct {
	StopPips  float64 `json:"stopPips"`
	AtRisk    float64 `json:"atRisk"`
	RMultiple float64 `json:"rMultiple"` // result pips / StopPips; 0 while open
}

// Assess evaluates in against stop. ok is false when there is no stop or
// the input is incomplete.
func Assess(in pnl.Input, stop float64) (a Assessment, ok bool) {
	if stop == 0 || in.Instrument == "" || in.Entry == 0 {
		return Assessment{}, false
	}

	a.StopPips = -pnl.Pips(in.Instrument, in.Entry, stop, in.Side)
	a.AtRisk = -pnl.PnL(in.Instrument, in.Entry, stop, in.Side, in.Lots)
	if in.Exit != 0 && a.StopPips > 0 {
		r := pnl.Pips(in.Instrument, in.Entry, in.Exit, in.Side) / a.StopPips
		a.RMultiple = math.Round(r*100) / 100
	}
	return a, true
}
