package market

import (
	"fmt"
	"strings"
	"time"
)

// Timeframe is the chart timeframe a trade was taken on.
type Timeframe string

const (
	M1  Timeframe = "M1"
	M5  Timeframe = "M5"
	M15 Timeframe = "M15"
	M30 Timeframe = "M30"
	H1  Timeframe = "H1"
	H4  Timeframe = "H4"
	D1  Timeframe = "D1"
	W1  Timeframe = "W1"

	DefaultTimeframe = H1
)

// Timeframes lists the supported values in ascending order.
var Timeframes = []Timeframe{M1, M5, M15, M30, H1, H4, D1, W1}

var timeframeSeconds = map[Timeframe]int32{
	M1:  60,
	M5:  300,
	M15: 900,
	M30: 1800,
	H1:  3600,
	H4:  14400,
	D1:  86400,
	W1:  604800,
}

func (tf Timeframe) Valid() bool {
	_, ok := timeframeSeconds[tf]
	return ok
}

// Duration of one candle on this timeframe.
func (tf Timeframe) Duration() time.Duration {
	return time.Duration(timeframeSeconds[tf]) * time.Second
}

// ParseTimeframe is case-insensitive. Empty input yields DefaultTimeframe.
func ParseTimeframe(s string) (Timeframe, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultTimeframe, nil
	}
	tf := Timeframe(s)
	if !tf.Valid() {
		return "", fmt.Errorf("unsupported timeframe string: %s", s)
	}
	return tf, nil
}

