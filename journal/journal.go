// journal/journal.go
package journal

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rustyeddy/fxjournal/config"
)

// StorageKey is the fixed key the trade list blob is stored under.
const StorageKey = "forexTrades"

// Store persists the whole trade list. Save replaces what Load returns;
// insertion order must survive a round trip.
type Store interface {
	Load(ctx context.Context) ([]Trade, error)
	Save(ctx context.Context, trades []Trade) error
	Close() error
}

// OpenStore builds the Store selected by cfg.Type.
func OpenStore(cfg config.StorageConfig) (Store, error) {
	key := cfg.Key
	if key == "" {
		key = StorageKey
	}

	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.Path, key), nil
	case "sqlite":
		return NewSQLite(cfg.Path)
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisStore(rdb, key), nil
	case "postgres", "gorm-sqlite":
		db, err := OpenGorm(cfg.Type, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db)
	default:
		return nil, fmt.Errorf("unknown storage type: %q", cfg.Type)
	}
}
