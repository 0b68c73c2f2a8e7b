package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/fxjournal/market"
	"github.com/rustyeddy/fxjournal/pnl"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrTradeNotFound = errors.New("trade not found")
	ErrInvalidTrade  = errors.New("invalid trade")
)

// Trade is one journal entry. Field names match the persisted JSON blob.
type Trade struct {
	ID         string           `json:"id"`
	Instrument string           `json:"instrument"`
	TradeType  market.Side      `json:"tradeType"`
	EntryPrice float64          `json:"entryPrice"`
	ExitPrice  *float64         `json:"exitPrice"` // nil while open
	StopLoss   *float64         `json:"stopLoss"`  // feeds risk.Assess
	LotSize    float64          `json:"lotSize"`
	Timeframe  market.Timeframe `json:"timeframe"`
	EntryDate  string           `json:"entryDate"`
	EntryTime  string           `json:"entryTime"`
	Notes      string           `json:"notes"`
	Strategy   string           `json:"strategy"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// Price returns a pointer for the optional price fields.
func Price(v float64) *float64 {
	return &v
}

func (t Trade) IsOpen() bool {
	return t.ExitPrice == nil
}

// Exit is the exit price, or 0 while the trade is open.
func (t Trade) Exit() float64 {
	if t.ExitPrice == nil {
		return 0
	}
	return *t.ExitPrice
}

// Input is the engine's view of the trade.
func (t Trade) Input() pnl.Input {
	return pnl.Input{
		Instrument: t.Instrument,
		Side:       t.TradeType,
		Entry:      t.EntryPrice,
		Exit:       t.Exit(),
		Lots:       t.LotSize,
	}
}

func (t Trade) Result() pnl.Result {
	return pnl.Evaluate(t.Input())
}

// EntryAt combines EntryDate and EntryTime in loc. ok is false when the
// date does not parse; a bad or empty time falls back to midnight.
func (t Trade) EntryAt(loc *time.Location) (at time.Time, ok bool) {
	d, err := time.ParseInLocation(DateLayout, t.EntryDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	if hm, err := time.Parse(TimeLayout, t.EntryTime); err == nil {
		d = d.Add(time.Duration(hm.Hour())*time.Hour + time.Duration(hm.Minute())*time.Minute)
	}
	return d, true
}

// Validate checks the fields a trade must carry before it is stored.
func (t Trade) Validate() error {
	if strings.TrimSpace(t.Instrument) == "" {
		return fmt.Errorf("%w: instrument is required", ErrInvalidTrade)
	}
	if t.EntryPrice == 0 {
		return fmt.Errorf("%w: entryPrice is required", ErrInvalidTrade)
	}
	if t.LotSize == 0 {
		return fmt.Errorf("%w: lotSize is required", ErrInvalidTrade)
	}
	if !t.TradeType.Valid() {
		return fmt.Errorf("%w: tradeType must be buy or sell", ErrInvalidTrade)
	}
	if !t.Timeframe.Valid() {
		return fmt.Errorf("%w: unsupported timeframe %q", ErrInvalidTrade, t.Timeframe)
	}
	if _, err := time.Parse(DateLayout, t.EntryDate); err != nil {
		return fmt.Errorf("%w: entryDate must be YYYY-MM-DD", ErrInvalidTrade)
	}
	if _, err := time.Parse(TimeLayout, t.EntryTime); err != nil {
		return fmt.Errorf("%w: entryTime must be HH:MM", ErrInvalidTrade)
	}
	return nil
}

// withDefaults fills the fields the entry form pre-populates.
func (t Trade) withDefaults(now time.Time) Trade {
	t.Instrument = strings.TrimSpace(t.Instrument)
	if t.TradeType == "" {
		t.TradeType = market.Buy
	}
	if t.Timeframe == "" {
		t.Timeframe = market.DefaultTimeframe
	}
	if t.EntryDate == "" {
		t.EntryDate = now.Format(DateLayout)
	}
	if t.EntryTime == "" {
		t.EntryTime = now.Format(TimeLayout)
	}
	return t
}

// Inputs maps trades onto engine inputs.
func Inputs(trades []Trade) []pnl.Input {
	out := make([]pnl.Input, len(trades))
	for i, t := range trades {
		out[i] = t.Input()
	}
	return out
}

// Stats computes aggregate statistics for trades.
func Stats(trades []Trade) pnl.Stats {
	return pnl.ComputeStats(Inputs(trades))
}
