package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/fxjournal/market"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	trade := sampleTrades()[0]
	trade.ID = "01HXYZABCDEFGHJKMNPQRSTVWX"

	result := FormatTradeOrg(trade)

	// Check heading
	assert.Contains(t, result, "** Trade: EUR/USD BUY (01HXYZAB)")

	// Check properties drawer
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":TRADE_ID: 01HXYZABCDEFGHJKMNPQRSTVWX")
	assert.Contains(t, result, ":INSTRUMENT: EUR/USD")
	assert.Contains(t, result, ":TRADE_TYPE: buy")
	assert.Contains(t, result, ":TIMEFRAME: H1")
	assert.Contains(t, result, ":LOT_SIZE: 1\n")
	assert.Contains(t, result, ":ENTRY_PRICE: 1.10000")
	assert.Contains(t, result, ":EXIT_PRICE: 1.10500")
	assert.Contains(t, result, ":STOP_LOSS: 1.09500")
	assert.Contains(t, result, ":ENTRY: 2024-05-01 09:00")
	assert.Contains(t, result, ":PIPS: +50.0")
	assert.Contains(t, result, ":PNL: +$500.00")
	assert.Contains(t, result, ":STRATEGY: trend")
	assert.Contains(t, result, ":END:")

	// Check narrative sections
	assert.Contains(t, result, "*** Thesis\n- breakout")
	assert.Contains(t, result, "*** Execution")
	assert.Contains(t, result, "*** Review")
}

func TestFormatTradeOrgShortID(t *testing.T) {
	t.Parallel()

	trade := sampleTrades()[1]
	trade.ID = "short"

	result := FormatTradeOrg(trade)
	assert.Contains(t, result, "** Trade: USD/JPY BUY (short)")
}

func TestFormatTradeOrgLoss(t *testing.T) {
	t.Parallel()

	trade := Trade{
		ID:         "loss-trade",
		Instrument: "EUR/USD",
		TradeType:  market.Sell,
		EntryPrice: 1.1000,
		ExitPrice:  Price(1.1050),
		LotSize:    1,
		Timeframe:  market.H1,
		EntryDate:  "2024-05-01",
		EntryTime:  "09:00",
	}

	result := FormatTradeOrg(trade)
	assert.Contains(t, result, ":PIPS: -50.0")
	assert.Contains(t, result, ":PNL: -$500.00")
	assert.NotContains(t, result, ":STRATEGY:")
	assert.Contains(t, result, "*** Thesis\n- \n")
}

func TestFormatTradeOrgOpenTrade(t *testing.T) {
	t.Parallel()

	result := FormatTradeOrg(sampleTrades()[3])
	assert.NotContains(t, result, ":EXIT_PRICE:")
	assert.Contains(t, result, ":PIPS: 0.0")
	assert.Contains(t, result, ":PNL: +$0.00")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	trades := sampleTrades()
	result := FormatTradesOrg(trades)

	require.Equal(t, len(trades), strings.Count(result, "** Trade:"))
	assert.Equal(t, len(trades)-1, strings.Count(result, "- \n\n\n** Trade:"))
	assert.Empty(t, FormatTradesOrg(nil))
}
