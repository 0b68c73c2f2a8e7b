package pnl

import (
	"math"

	"github.com/shopspring/decimal"
)

func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// FormatCurrency renders "$" followed by the value to two places,
// e.g. "$500.00" or "$-12.50".
func FormatCurrency(v float64) string {
	return "$" + fixed(v, 2)
}

// FormatSignedCurrency renders "+$12.50" / "-$12.50". Zero is "+$0.00".
func FormatSignedCurrency(v float64) string {
	if v >= 0 {
		return "+$" + fixed(v, 2)
	}
	return "-$" + fixed(math.Abs(v), 2)
}

// FormatPercent renders one decimal place followed by "%".
func FormatPercent(v float64) string {
	return fixed(v, 1) + "%"
}

// FormatPips renders one decimal place with a "+" prefix for gains.
func FormatPips(v float64) string {
	if v > 0 {
		return "+" + fixed(v, 1)
	}
	return fixed(v, 1)
}

// FormatRatio renders a plain two place number, used for profit factor.
func FormatRatio(v float64) string {
	return fixed(v, 2)
}
