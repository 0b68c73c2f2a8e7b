package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "instrument", "trade_type", "entry_price", "exit_price", "stop_loss", "lot_size",
	"timeframe", "entry_date", "entry_time", "strategy", "notes", "created_at", "pips", "pnl",
}

// WriteCSV writes trades with their computed pips and pnl. Open trades
// leave exit_price empty.
func WriteCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range trades {
		res := t.Result()
		err := cw.Write([]string{
			t.ID,
			t.Instrument,
			string(t.TradeType),
			f(t.EntryPrice),
			optF(t.ExitPrice),
			optF(t.StopLoss),
			f(t.LotSize),
			string(t.Timeframe),
			t.EntryDate,
			t.EntryTime,
			t.Strategy,
			t.Notes,
			t.CreatedAt.UTC().Format(time.RFC3339),
			f(res.Pips),
			f(res.PnL),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func optF(p *float64) string {
	if p == nil {
		return ""
	}
	return f(*p)
}
