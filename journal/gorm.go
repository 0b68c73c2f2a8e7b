package journal

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rustyeddy/fxjournal/market"
)

// tradeRow is the gorm model behind GormStore.
type tradeRow struct {
	Seq        uint      `gorm:"primaryKey;autoIncrement"`
	TradeID    string    `gorm:"size:40;uniqueIndex;not null"`
	Instrument string    `gorm:"size:20;not null"`
	TradeType  string    `gorm:"size:4;not null"`
	EntryPrice float64   `gorm:"not null"`
	ExitPrice  *float64
	StopLoss   *float64
	LotSize    float64   `gorm:"not null"`
	Timeframe  string    `gorm:"size:3;not null"`
	EntryDate  string    `gorm:"size:10"`
	EntryTime  string    `gorm:"size:5"`
	Notes      string    `gorm:"type:text"`
	Strategy   string    `gorm:"size:100"`
	CreatedAt  time.Time `gorm:"index"`
}

func (tradeRow) TableName() string {
	return "journal_trades"
}

func toRow(t Trade) tradeRow {
	return tradeRow{
		TradeID:    t.ID,
		Instrument: t.Instrument,
		TradeType:  string(t.TradeType),
		EntryPrice: t.EntryPrice,
		ExitPrice:  t.ExitPrice,
		StopLoss:   t.StopLoss,
		LotSize:    t.LotSize,
		Timeframe:  string(t.Timeframe),
		EntryDate:  t.EntryDate,
		EntryTime:  t.EntryTime,
		Notes:      t.Notes,
		Strategy:   t.Strategy,
		CreatedAt:  t.CreatedAt.UTC(),
	}
}

func (r tradeRow) trade() Trade {
	return Trade{
		ID:         r.TradeID,
		Instrument: r.Instrument,
		TradeType:  market.Side(r.TradeType),
		EntryPrice: r.EntryPrice,
		ExitPrice:  r.ExitPrice,
		StopLoss:   r.StopLoss,
		LotSize:    r.LotSize,
		Timeframe:  market.Timeframe(r.Timeframe),
		EntryDate:  r.EntryDate,
		EntryTime:  r.EntryTime,
		Notes:      r.Notes,
		Strategy:   r.Strategy,
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

// OpenGorm connects with the postgres or sqlite dialector.
func OpenGorm(kind, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch kind {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "gorm-sqlite", "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported gorm dialect: %q", kind)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// GormStore stores one row per trade through gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the trades table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&tradeRow{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context) ([]Trade, error) {
	var rows []tradeRow
	if err := s.db.WithContext(ctx).Order("seq asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]Trade, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.trade())
	}
	return out, nil
}

func (s *GormStore) Save(ctx context.Context, trades []Trade) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&tradeRow{}).Error; err != nil {
			return err
		}
		if len(trades) == 0 {
			return nil
		}
		rows := make([]tradeRow, len(trades))
		for i, t := range trades {
			rows[i] = toRow(t)
		}
		return tx.Create(&rows).Error
	})
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
