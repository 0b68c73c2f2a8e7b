package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		log, err := New("debug", format, "")
		require.NoError(t, err, format)
		assert.True(t, log.Core().Enabled(zap.DebugLevel))
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New("loud", "console", "")
	assert.Error(t, err)
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fxjournal.log")

	log, err := New("info", "console", path)
	require.NoError(t, err)
	log.Info("trade added", zap.String("id", "T1"))
	log.Debug("hidden")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "trade added")
	assert.NotContains(t, string(data), "hidden")
}
