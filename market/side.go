package market

import (
	"fmt"
	"strings"
)

// Side is the trade direction.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Sign is +1 for buys and -1 for sells. A sell profits when price falls.
func (s Side) Sign() float64 {
	if s == Sell {
		return -1
	}
	return 1
}

func (s Side) Valid() bool {
	return s == Buy || s == Sell
}

// ParseSide accepts "buy"/"sell" in any case. Empty input defaults to Buy.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "buy", "long":
		return Buy, nil
	case "sell", "short":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown trade type: %q", s)
	}
}
