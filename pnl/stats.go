package pnl

import "math"

// Stats aggregates a set of trades. Break-even trades (PnL == 0) count as
// winners.
type Stats struct {
	TotalTrades   int     `json:"totalTrades"`
	TotalPnL      float64 `json:"totalPnL"`
	TotalPips     float64 `json:"totalPips"`
	WinRate       float64 `json:"winRate"`
	WinningTrades int     `json:"winningTrades"`
	LosingTrades  int     `json:"losingTrades"`
	AvgWin        float64 `json:"avgWin"`
	AvgLoss       float64 `json:"avgLoss"`
	BestTrade     float64 `json:"bestTrade"`
	WorstTrade    float64 `json:"worstTrade"`
	ProfitFactor  float64 `json:"profitFactor"`
	AvgPips       float64 `json:"avgPips"`
	GrossProfit   float64 `json:"grossProfit"`
	GrossLoss     float64 `json:"grossLoss"`
}

// Summary is the reduced view shown above the trade history.
type Summary struct {
	WinRate   float64 `json:"winRate"`
	TotalPnL  float64 `json:"totalPnL"`
	WinCount  int     `json:"winCount"`
	LossCount int     `json:"lossCount"`
}

// ComputeStats folds Evaluate over the inputs. An empty slice returns the
// zero Stats.
func ComputeStats(inputs []Input) Stats {
	var s Stats
	if len(inputs) == 0 {
		return s
	}

	var winSum, lossSum float64
	for _, in := range inputs {
		r := Evaluate(in)
		s.TotalPnL += r.PnL
		s.TotalPips += r.Pips

		if r.PnL >= 0 {
			s.WinningTrades++
			s.GrossProfit += r.PnL
			winSum += r.PnL
			if r.PnL > s.BestTrade {
				s.BestTrade = r.PnL
			}
		} else {
			s.LosingTrades++
			s.GrossLoss += math.Abs(r.PnL)
			lossSum += r.PnL
			if r.PnL < s.WorstTrade {
				s.WorstTrade = r.PnL
			}
		}
	}

	s.TotalTrades = len(inputs)
	n := float64(s.TotalTrades)
	s.WinRate = float64(s.WinningTrades) / n * 100
	s.AvgPips = s.TotalPips / n

	if s.WinningTrades > 0 {
		s.AvgWin = winSum / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AvgLoss = lossSum / float64(s.LosingTrades)
	}

	switch {
	case s.GrossLoss > 0:
		s.ProfitFactor = s.GrossProfit / s.GrossLoss
	case s.GrossProfit > 0:
		s.ProfitFactor = s.GrossProfit
	}
	return s
}

// Summary projects the stats onto the history header fields.
func (s Stats) Summary() Summary {
	return Summary{
		WinRate:   s.WinRate,
		TotalPnL:  s.TotalPnL,
		WinCount:  s.WinningTrades,
		LossCount: s.LosingTrades,
	}
}

// Summarize is ComputeStats(inputs).Summary().
func Summarize(inputs []Input) Summary {
	return ComputeStats(inputs).Summary()
}
