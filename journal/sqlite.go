package journal

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/fxjournal/market"
)

// SQLiteStore stores one row per trade. seq preserves insertion order.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

const selectTrades = `
	SELECT trade_id, instrument, trade_type, entry_price, exit_price, stop_loss, lot_size,
	       timeframe, entry_date, entry_time, notes, strategy, created_at
	FROM trades`

func (j *SQLiteStore) Load(ctx context.Context) ([]Trade, error) {
	rows, err := j.db.QueryContext(ctx, selectTrades+` ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTrade returns a single trade by ID.
func (j *SQLiteStore) GetTrade(ctx context.Context, tradeID string) (Trade, error) {
	row := j.db.QueryRowContext(ctx, selectTrades+` WHERE trade_id = ?`, tradeID)
	rec, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, fmt.Errorf("trade %q: %w", tradeID, ErrTradeNotFound)
		}
		return Trade{}, err
	}
	return rec, nil
}

// Save replaces the table contents in one transaction.
func (j *SQLiteStore) Save(ctx context.Context, trades []Trade) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trades`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trades
		(trade_id, instrument, trade_type, entry_price, exit_price, stop_loss, lot_size,
		 timeframe, entry_date, entry_time, notes, strategy, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range trades {
		_, err := stmt.ExecContext(ctx,
			t.ID, t.Instrument, string(t.TradeType), t.EntryPrice,
			nullFloat(t.ExitPrice), nullFloat(t.StopLoss), t.LotSize,
			string(t.Timeframe), t.EntryDate, t.EntryTime, t.Notes, t.Strategy, t.CreatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("insert trade %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

func (j *SQLiteStore) Close() error {
	return j.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(r rowScanner) (Trade, error) {
	var (
		rec        Trade
		side, tf   string
		exit, stop sql.NullFloat64
	)
	err := r.Scan(
		&rec.ID,
		&rec.Instrument,
		&side,
		&rec.EntryPrice,
		&exit,
		&stop,
		&rec.LotSize,
		&tf,
		&rec.EntryDate,
		&rec.EntryTime,
		&rec.Notes,
		&rec.Strategy,
		&rec.CreatedAt,
	)
	if err != nil {
		return Trade{}, err
	}
	rec.TradeType = market.Side(side)
	rec.Timeframe = market.Timeframe(tf)
	if exit.Valid {
		rec.ExitPrice = Price(exit.Float64)
	}
	if stop.Valid {
		rec.StopLoss = Price(stop.Float64)
	}
	return rec, nil
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}
