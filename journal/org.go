package journal

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/fxjournal/pnl"
)

// FormatTradeOrg renders a Trade as an Org-mode block suitable for pasting into a journal.
// Structured facts go in a PROPERTIES drawer; the notes seed the Thesis section.
func FormatTradeOrg(t Trade) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Instrument, strings.ToUpper(string(t.TradeType)), shortID(t.ID))
	res := t.Result()

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":INSTRUMENT: %s\n", t.Instrument))
	b.WriteString(fmt.Sprintf(":TRADE_TYPE: %s\n", t.TradeType))
	b.WriteString(fmt.Sprintf(":TIMEFRAME: %s\n", t.Timeframe))
	b.WriteString(fmt.Sprintf(":LOT_SIZE: %g\n", t.LotSize))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	if t.ExitPrice != nil {
		b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.5f\n", *t.ExitPrice))
	}
	if t.StopLoss != nil {
		b.WriteString(fmt.Sprintf(":STOP_LOSS: %.5f\n", *t.StopLoss))
	}
	b.WriteString(fmt.Sprintf(":ENTRY: %s %s\n", t.EntryDate, t.EntryTime))
	b.WriteString(fmt.Sprintf(":PIPS: %s\n", pnl.FormatPips(res.Pips)))
	b.WriteString(fmt.Sprintf(":PNL: %s\n", pnl.FormatSignedCurrency(res.PnL)))
	if t.Strategy != "" {
		b.WriteString(fmt.Sprintf(":STRATEGY: %s\n", t.Strategy))
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	if t.Notes != "" {
		b.WriteString("*** Thesis\n- " + t.Notes + "\n\n")
	} else {
		b.WriteString("*** Thesis\n- \n\n")
	}
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
