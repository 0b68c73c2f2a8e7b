package server

import (
	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/pnl"
	"github.com/rustyeddy/fxjournal/risk"
)

// TradeView is a trade card: the stored trade, its result and the strings
// a client shows without doing any math of its own.
type TradeView struct {
	journal.Trade
	Pips     float64 `json:"pips"`
	PnL      float64 `json:"pnl"`
	Open     bool    `json:"open"`
	PipsText string  `json:"pipsText"`
	PnLText  string  `json:"pnlText"`

	Risk *risk.Assessment `json:"risk,omitempty"` // nil without a stop loss
}

func NewTradeView(t journal.Trade) TradeView {
	res := t.Result()
	v := TradeView{
		Trade:    t,
		Pips:     res.Pips,
		PnL:      res.PnL,
		Open:     t.IsOpen(),
		PipsText: pnl.FormatPips(res.Pips),
		PnLText:  pnl.FormatSignedCurrency(res.PnL),
	}
	if t.StopLoss != nil {
		if a, ok := risk.Assess(t.Input(), *t.StopLoss); ok {
			v.Risk = &a
		}
	}
	return v
}

func NewTradeViews(trades []journal.Trade) []TradeView {
	out := make([]TradeView, len(trades))
	for i, t := range trades {
		out[i] = NewTradeView(t)
	}
	return out
}

// StatsText is Stats rendered for the statistics screen.
type StatsText struct {
	TotalPnL     string `json:"totalPnL"`
	TotalPips    string `json:"totalPips"`
	WinRate      string `json:"winRate"`
	AvgWin       string `json:"avgWin"`
	AvgLoss      string `json:"avgLoss"`
	BestTrade    string `json:"bestTrade"`
	WorstTrade   string `json:"worstTrade"`
	ProfitFactor string `json:"profitFactor"`
	AvgPips      string `json:"avgPips"`
}

type StatsView struct {
	pnl.Stats
	Formatted StatsText `json:"formatted"`
}

func NewStatsView(s pnl.Stats) StatsView {
	return StatsView{
		Stats: s,
		Formatted: StatsText{
			TotalPnL:     pnl.FormatCurrency(s.TotalPnL),
			TotalPips:    pnl.FormatPips(s.TotalPips),
			WinRate:      pnl.FormatPercent(s.WinRate),
			AvgWin:       pnl.FormatCurrency(s.AvgWin),
			AvgLoss:      pnl.FormatCurrency(s.AvgLoss),
			BestTrade:    pnl.FormatCurrency(s.BestTrade),
			WorstTrade:   pnl.FormatCurrency(s.WorstTrade),
			ProfitFactor: pnl.FormatRatio(s.ProfitFactor),
			AvgPips:      pnl.FormatPips(s.AvgPips),
		},
	}
}
