package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		instrument string
		class      Class
		pip        float64
	}{
		{"EUR/USD", ClassStandard, 0.0001},
		{"usd/jpy", ClassJPY, 0.01},
		{"GBPJPY", ClassJPY, 0.01},
		{"XAU/USD", ClassGold, 0.1},
		{"gold", ClassGold, 0.1},
		{"XAG/USD", ClassSilver, 0.001},
		{"Silver", ClassSilver, 0.001},
		{"BTC/USD", ClassCrypto, 1.0},
		{"eth/usd", ClassCrypto, 1.0},
		{"WTI/USD", ClassStandard, 0.0001},
		{"", ClassStandard, 0.0001},
		// JPY wins over everything after it
		{"BTC/JPY", ClassJPY, 0.01},
		{"XAU/JPY", ClassJPY, 0.01},
		// gold is checked before silver and crypto
		{"XAU/XAG", ClassGold, 0.1},
		{"XAG/BTC", ClassSilver, 0.001},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.instrument, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.class, Classify(tt.instrument))
			assert.Equal(t, tt.pip, PipUnit(tt.instrument))
		})
	}
}

func TestSymbol(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"eur/usd", "EUR_USD", "EURUSD", "eur-usd", " EUR / USD "} {
		assert.Equal(t, "EURUSD", Symbol(in), in)
	}
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	s, err := ParseSide("SELL")
	require.NoError(t, err)
	assert.Equal(t, Sell, s)
	assert.Equal(t, -1.0, s.Sign())

	s, err = ParseSide("")
	require.NoError(t, err)
	assert.Equal(t, Buy, s)
	assert.Equal(t, 1.0, s.Sign())

	_, err = ParseSide("hold")
	assert.Error(t, err)
	assert.False(t, Side("hold").Valid())
}

func TestParseTimeframe(t *testing.T) {
	t.Parallel()

	tf, err := ParseTimeframe("h4")
	require.NoError(t, err)
	assert.Equal(t, H4, tf)
	assert.Equal(t, 4*time.Hour, tf.Duration())

	tf, err = ParseTimeframe("")
	require.NoError(t, err)
	assert.Equal(t, H1, tf)

	_, err = ParseTimeframe("MN1")
	assert.Error(t, err)
}

