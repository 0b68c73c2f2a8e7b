package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/market"
	"github.com/rustyeddy/fxjournal/pnl"
)

func TestNewTradeViewRisk(t *testing.T) {
	t.Parallel()

	tr := journal.Trade{
		ID:         "T1",
		Instrument: "EUR/USD",
		TradeType:  market.Buy,
		EntryPrice: 1.1000,
		ExitPrice:  journal.Price(1.1050),
		StopLoss:   journal.Price(1.0950),
		LotSize:    1,
	}

	v := NewTradeView(tr)
	assert.Equal(t, "+50.0", v.PipsText)
	assert.Equal(t, "+$500.00", v.PnLText)
	require.NotNil(t, v.Risk)
	assert.InDelta(t, 50.0, v.Risk.StopPips, 1e-9)
	assert.InDelta(t, 500.0, v.Risk.AtRisk, 1e-9)
	assert.InDelta(t, 1.0, v.Risk.RMultiple, 1e-9)

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "EUR/USD", m["instrument"])
	assert.Contains(t, m, "risk")

	tr.StopLoss = nil
	v = NewTradeView(tr)
	assert.Nil(t, v.Risk)
	raw, err = json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"risk"`)
}

func TestNewStatsViewFormatting(t *testing.T) {
	t.Parallel()

	v := NewStatsView(pnl.Stats{TotalTrades: 2, TotalPnL: -12.5, WinRate: 50, ProfitFactor: 0.75, AvgPips: 3.25})
	assert.Equal(t, "$-12.50", v.Formatted.TotalPnL)
	assert.Equal(t, "50.0%", v.Formatted.WinRate)
	assert.Equal(t, "0.75", v.Formatted.ProfitFactor)
}
