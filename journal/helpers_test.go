package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/fxjournal/market"
)

var baseTime = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// sampleTrades returns three closed trades and one open one:
// EUR/USD +50 pips +$500, USD/JPY +50 pips +$930,
// GBP/USD sell +20 pips +$100, AUD/USD open.
func sampleTrades() []Trade {
	return []Trade{
		{
			ID: "T1", Instrument: "EUR/USD", TradeType: market.Buy,
			EntryPrice: 1.1000, ExitPrice: Price(1.1050), StopLoss: Price(1.0950), LotSize: 1,
			Timeframe: market.H1, EntryDate: "2024-05-01", EntryTime: "09:00",
			Notes: "breakout", Strategy: "trend", CreatedAt: baseTime,
		},
		{
			ID: "T2", Instrument: "USD/JPY", TradeType: market.Buy,
			EntryPrice: 110.00, ExitPrice: Price(110.50), LotSize: 2,
			Timeframe: market.H4, EntryDate: "2024-05-03", EntryTime: "14:30",
			CreatedAt: baseTime.Add(2 * time.Hour),
		},
		{
			ID: "T3", Instrument: "GBP/USD", TradeType: market.Sell,
			EntryPrice: 1.2500, ExitPrice: Price(1.2480), LotSize: 0.5,
			Timeframe: market.M15, EntryDate: "2024-05-02", EntryTime: "08:15",
			Strategy: "range", CreatedAt: baseTime.Add(1 * time.Hour),
		},
		{
			ID: "T4", Instrument: "AUD/USD", TradeType: market.Buy,
			EntryPrice: 0.6500, LotSize: 1,
			Timeframe: market.D1, EntryDate: "2024-04-30", EntryTime: "22:00",
			CreatedAt: baseTime.Add(3 * time.Hour),
		},
	}
}

func assertSameTrades(t *testing.T, want, got []Trade) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		w, g := want[i], got[i]
		assert.Equal(t, w.ID, g.ID)
		assert.Equal(t, w.Instrument, g.Instrument)
		assert.Equal(t, w.TradeType, g.TradeType)
		assert.InDelta(t, w.EntryPrice, g.EntryPrice, 1e-9)
		assert.Equal(t, w.ExitPrice == nil, g.ExitPrice == nil, "exit price presence for %s", w.ID)
		if w.ExitPrice != nil && g.ExitPrice != nil {
			assert.InDelta(t, *w.ExitPrice, *g.ExitPrice, 1e-9)
		}
		assert.Equal(t, w.StopLoss == nil, g.StopLoss == nil, "stop loss presence for %s", w.ID)
		assert.InDelta(t, w.LotSize, g.LotSize, 1e-9)
		assert.Equal(t, w.Timeframe, g.Timeframe)
		assert.Equal(t, w.EntryDate, g.EntryDate)
		assert.Equal(t, w.EntryTime, g.EntryTime)
		assert.Equal(t, w.Notes, g.Notes)
		assert.Equal(t, w.Strategy, g.Strategy)
		assert.True(t, w.CreatedAt.Equal(g.CreatedAt), "createdAt for %s: want %v got %v", w.ID, w.CreatedAt, g.CreatedAt)
	}
}

// testStoreRoundTrip checks the behavior every Store shares.
func testStoreRoundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	trades := sampleTrades()
	require.NoError(t, s.Save(ctx, trades))

	got, err = s.Load(ctx)
	require.NoError(t, err)
	assertSameTrades(t, trades, got)

	// Save replaces, it does not append.
	require.NoError(t, s.Save(ctx, trades[1:3]))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assertSameTrades(t, trades[1:3], got)

	require.NoError(t, s.Save(ctx, nil))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
