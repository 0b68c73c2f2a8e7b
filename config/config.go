package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to environment overrides, e.g.
// FXJOURNAL_STORAGE_TYPE=sqlite.
const EnvPrefix = "FXJOURNAL"

// Config represents the complete application configuration
type Config struct {
	Storage  StorageConfig  `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server   ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
	Logger   LoggerConfig   `json:"logger" yaml:"logger" mapstructure:"logger"`
	Reminder ReminderConfig `json:"reminder" yaml:"reminder" mapstructure:"reminder"`
	Telegram TelegramConfig `json:"telegram" yaml:"telegram" mapstructure:"telegram"`
}

// StorageConfig selects where the trade list lives.
type StorageConfig struct {
	Type  string      `json:"type" yaml:"type" mapstructure:"type"` // memory, file, sqlite, redis, postgres, gorm-sqlite
	Path  string      `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`
	DSN   string      `json:"dsn,omitempty" yaml:"dsn,omitempty" mapstructure:"dsn"`
	Key   string      `json:"key,omitempty" yaml:"key,omitempty" mapstructure:"key"`
	Redis RedisConfig `json:"redis" yaml:"redis" mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr" mapstructure:"addr"`
	Password string `json:"password,omitempty" yaml:"password,omitempty" mapstructure:"password"`
	DB       int    `json:"db" yaml:"db" mapstructure:"db"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr      string `json:"addr" yaml:"addr" mapstructure:"addr"`
	Mode      string `json:"mode" yaml:"mode" mapstructure:"mode"` // debug, release, test
	JWTSecret string `json:"jwt_secret,omitempty" yaml:"jwt_secret,omitempty" mapstructure:"jwt_secret"`
}

// LoggerConfig configures zap
type LoggerConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" mapstructure:"format"` // console or json
	File   string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// ReminderConfig is the weekly trading reminder. Days use time.Weekday
// numbering (Sunday = 0).
type ReminderConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Days     []int  `json:"days" yaml:"days" mapstructure:"days"`
	Hour     int    `json:"hour" yaml:"hour" mapstructure:"hour"`
	Minute   int    `json:"minute" yaml:"minute" mapstructure:"minute"`
	Message  string `json:"message" yaml:"message" mapstructure:"message"`
	Notifier string `json:"notifier" yaml:"notifier" mapstructure:"notifier"` // log or telegram
}

type TelegramConfig struct {
	BotToken  string  `json:"bot_token,omitempty" yaml:"bot_token,omitempty" mapstructure:"bot_token"`
	ChatID    int64   `json:"chat_id,omitempty" yaml:"chat_id,omitempty" mapstructure:"chat_id"`
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit"` // messages per second
}

var storageTypes = map[string]bool{
	"memory":      true,
	"file":        true,
	"sqlite":      true,
	"redis":       true,
	"postgres":    true,
	"gorm-sqlite": true,
}

// LoadFromFile loads configuration from a YAML or JSON file layered over
// Default() and FXJOURNAL_* environment variables. An empty path loads
// defaults and environment only.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType(path))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("storage.type", d.Storage.Type)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.dsn", d.Storage.DSN)
	v.SetDefault("storage.key", d.Storage.Key)
	v.SetDefault("storage.redis.addr", d.Storage.Redis.Addr)
	v.SetDefault("storage.redis.password", d.Storage.Redis.Password)
	v.SetDefault("storage.redis.db", d.Storage.Redis.DB)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("server.jwt_secret", d.Server.JWTSecret)

	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.format", d.Logger.Format)
	v.SetDefault("logger.file", d.Logger.File)

	v.SetDefault("reminder.enabled", d.Reminder.Enabled)
	v.SetDefault("reminder.days", d.Reminder.Days)
	v.SetDefault("reminder.hour", d.Reminder.Hour)
	v.SetDefault("reminder.minute", d.Reminder.Minute)
	v.SetDefault("reminder.message", d.Reminder.Message)
	v.SetDefault("reminder.notifier", d.Reminder.Notifier)

	v.SetDefault("telegram.bot_token", d.Telegram.BotToken)
	v.SetDefault("telegram.chat_id", d.Telegram.ChatID)
	v.SetDefault("telegram.rate_limit", d.Telegram.RateLimit)
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if configType(path) == "yaml" {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !storageTypes[c.Storage.Type] {
		return fmt.Errorf("storage.type must be one of memory, file, sqlite, redis, postgres, gorm-sqlite")
	}
	if (c.Storage.Type == "file" || c.Storage.Type == "sqlite") && c.Storage.Path == "" {
		return fmt.Errorf("storage.path required for %s storage", c.Storage.Type)
	}
	if (c.Storage.Type == "postgres" || c.Storage.Type == "gorm-sqlite") && c.Storage.DSN == "" {
		return fmt.Errorf("storage.dsn required for %s storage", c.Storage.Type)
	}
	if c.Storage.Type == "redis" && c.Storage.Redis.Addr == "" {
		return fmt.Errorf("storage.redis.addr required for redis storage")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be 'console' or 'json'")
	}
	if c.Reminder.Enabled && len(c.Reminder.Days) == 0 {
		return fmt.Errorf("reminder.days must select at least one day")
	}
	for _, d := range c.Reminder.Days {
		if d < 0 || d > 6 {
			return fmt.Errorf("reminder.days entries must be 0 (Sunday) through 6 (Saturday)")
		}
	}
	if c.Reminder.Hour < 0 || c.Reminder.Hour > 23 {
		return fmt.Errorf("reminder.hour must be between 0 and 23")
	}
	if c.Reminder.Minute < 0 || c.Reminder.Minute > 59 {
		return fmt.Errorf("reminder.minute must be between 0 and 59")
	}
	switch c.Reminder.Notifier {
	case "log":
	case "telegram":
		if c.Telegram.BotToken == "" || c.Telegram.ChatID == 0 {
			return fmt.Errorf("telegram bot_token and chat_id required for telegram notifier")
		}
	default:
		return fmt.Errorf("reminder.notifier must be 'log' or 'telegram'")
	}
	if c.Telegram.RateLimit < 0 {
		return fmt.Errorf("telegram.rate_limit must not be negative")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Type: "file",
			Path: "./trades.json",
			Key:  "forexTrades",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "console",
		},
		Reminder: ReminderConfig{
			Enabled:  true,
			Days:     []int{1, 2, 3, 4, 5},
			Hour:     17,
			Minute:   0,
			Message:  "Time to check the markets and plan your trades! 📈",
			Notifier: "log",
		},
		Telegram: TelegramConfig{
			RateLimit: 1,
		},
	}
}
