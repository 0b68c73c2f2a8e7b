// market/instruments.go
package market

import "strings"

// Class groups instruments that share a pip size.
type Class int

const (
	ClassStandard Class = iota // most FX pairs, pip = 0.0001
	ClassJPY                   // JPY quoted pairs, pip = 0.01
	ClassGold                  // XAU, pip = 0.1
	ClassSilver                // XAG, pip = 0.001
	ClassCrypto                // BTC/ETH, pip = 1.0
)

func (c Class) String() string {
	switch c {
	case ClassJPY:
		return "jpy"
	case ClassGold:
		return "gold"
	case ClassSilver:
		return "silver"
	case ClassCrypto:
		return "crypto"
	default:
		return "standard"
	}
}

// classRule is checked in order; the first rule with a matching token wins.
type classRule struct {
	class  Class
	tokens []string
}

var classRules = []classRule{
	{ClassJPY, []string{"JPY"}},
	{ClassGold, []string{"XAU", "GOLD"}},
	{ClassSilver, []string{"XAG", "SILVER"}},
	{ClassCrypto, []string{"BTC", "ETH"}},
}

var pipUnits = map[Class]float64{
	ClassStandard: 0.0001,
	ClassJPY:      0.01,
	ClassGold:     0.1,
	ClassSilver:   0.001,
	ClassCrypto:   1.0,
}

// Classify resolves the instrument class by case-insensitive substring match.
// Anything unrecognised is a standard FX pair.
func Classify(instrument string) Class {
	upper := strings.ToUpper(instrument)
	for _, r := range classRules {
		if containsAny(upper, r.tokens...) {
			return r.class
		}
	}
	return ClassStandard
}

// PipUnit is the price increment that counts as one pip for the instrument.
func PipUnit(instrument string) float64 {
	return pipUnits[Classify(instrument)]
}

// Symbol returns the upper cased instrument with pair separators removed,
// so "eur/usd", "EUR_USD" and "EURUSD" all become "EURUSD".
func Symbol(instrument string) string {
	r := strings.NewReplacer("/", "", "_", "", "-", "", " ", "")
	return r.Replace(strings.ToUpper(instrument))
}

func containsAny(s string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// Pairs offered when entering a trade.
var Pairs = []string{
	"EUR/USD", "GBP/USD", "USD/JPY", "USD/CHF", "AUD/USD", "USD/CAD", "NZD/USD",
	"EUR/GBP", "EUR/JPY", "GBP/JPY", "CHF/JPY", "EUR/CHF", "AUD/JPY", "GBP/CHF",
	"XAU/USD", "XAG/USD", "WTI/USD", "BTC/USD", "ETH/USD",
}
