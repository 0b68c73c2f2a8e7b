package journal

import (
	"strings"
	"time"

	"github.com/rustyeddy/fxjournal/market"
)

// Filter narrows a trade list. Zero fields match everything.
type Filter struct {
	Instrument string
	Side       market.Side
	Strategy   string
	Start, End time.Time // entry time within [Start, End)
	ClosedOnly bool
}

func (f Filter) Match(t Trade) bool {
	if f.Instrument != "" && market.Symbol(f.Instrument) != market.Symbol(t.Instrument) {
		return false
	}
	if f.Side != "" && f.Side != t.TradeType {
		return false
	}
	if f.Strategy != "" && !strings.EqualFold(f.Strategy, t.Strategy) {
		return false
	}
	if f.ClosedOnly && t.IsOpen() {
		return false
	}
	if !f.Start.IsZero() || !f.End.IsZero() {
		at, ok := t.EntryAt(time.UTC)
		if !ok {
			return false
		}
		if !f.Start.IsZero() && at.Before(f.Start) {
			return false
		}
		if !f.End.IsZero() && !at.Before(f.End) {
			return false
		}
	}
	return true
}

// Apply returns the trades matching f, in input order.
func (f Filter) Apply(trades []Trade) []Trade {
	var out []Trade
	for _, t := range trades {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// EnteredBetween returns trades whose entry time is within [start, end).
func EnteredBetween(trades []Trade, start, end time.Time) []Trade {
	return Filter{Start: start, End: end}.Apply(trades)
}
