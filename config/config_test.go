package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "file", cfg.Storage.Type)
	assert.Equal(t, "forexTrades", cfg.Storage.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.Reminder.Days)
	assert.Equal(t, 17, cfg.Reminder.Hour)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:   "unknown storage",
			mutate: func(c *Config) { c.Storage.Type = "mongo" },
			errMsg: "storage.type must be one of",
		},
		{
			name:   "file storage without path",
			mutate: func(c *Config) { c.Storage.Path = "" },
			errMsg: "storage.path required for file storage",
		},
		{
			name:   "postgres without dsn",
			mutate: func(c *Config) { c.Storage.Type = "postgres" },
			errMsg: "storage.dsn required for postgres storage",
		},
		{
			name: "redis without addr",
			mutate: func(c *Config) {
				c.Storage.Type = "redis"
				c.Storage.Redis.Addr = ""
			},
			errMsg: "storage.redis.addr required",
		},
		{
			name:   "memory storage needs nothing",
			mutate: func(c *Config) { c.Storage = StorageConfig{Type: "memory"} },
		},
		{
			name:   "missing server addr",
			mutate: func(c *Config) { c.Server.Addr = "" },
			errMsg: "server.addr is required",
		},
		{
			name:   "bad log format",
			mutate: func(c *Config) { c.Logger.Format = "xml" },
			errMsg: "logger.format",
		},
		{
			name:   "reminder without days",
			mutate: func(c *Config) { c.Reminder.Days = nil },
			errMsg: "reminder.days must select at least one day",
		},
		{
			name: "disabled reminder without days",
			mutate: func(c *Config) {
				c.Reminder.Enabled = false
				c.Reminder.Days = nil
			},
		},
		{
			name:   "day out of range",
			mutate: func(c *Config) { c.Reminder.Days = []int{1, 7} },
			errMsg: "reminder.days entries",
		},
		{
			name:   "hour out of range",
			mutate: func(c *Config) { c.Reminder.Hour = 24 },
			errMsg: "reminder.hour must be between 0 and 23",
		},
		{
			name:   "minute out of range",
			mutate: func(c *Config) { c.Reminder.Minute = -1 },
			errMsg: "reminder.minute must be between 0 and 59",
		},
		{
			name:   "telegram without token",
			mutate: func(c *Config) { c.Reminder.Notifier = "telegram" },
			errMsg: "telegram bot_token and chat_id required",
		},
		{
			name: "telegram configured",
			mutate: func(c *Config) {
				c.Reminder.Notifier = "telegram"
				c.Telegram.BotToken = "123:abc"
				c.Telegram.ChatID = 42
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Storage.Type = "sqlite"
			cfg.Storage.Path = "./journal.sqlite"
			cfg.Reminder.Days = []int{0, 6}
			cfg.Reminder.Hour = 8
			path := filepath.Join(tmpDir, "test"+tt.ext)

			err := cfg.SaveToFile(path)
			require.NoError(t, err)

			_, err = os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg.Storage.Type, loaded.Storage.Type)
			assert.Equal(t, cfg.Storage.Path, loaded.Storage.Path)
			assert.Equal(t, cfg.Reminder.Days, loaded.Reminder.Days)
			assert.Equal(t, cfg.Reminder.Hour, loaded.Reminder.Hour)
			assert.Equal(t, cfg.Reminder.Message, loaded.Reminder.Message)
			assert.Equal(t, cfg.Server.Addr, loaded.Server.Addr)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9999\"\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "file", cfg.Storage.Type)
	assert.Equal(t, "forexTrades", cfg.Storage.Key)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FXJOURNAL_STORAGE_TYPE", "memory")
	t.Setenv("FXJOURNAL_SERVER_ADDR", ":7070")

	cfg, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  type: floppy\n"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
