// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	trade_id TEXT NOT NULL UNIQUE,
	instrument TEXT NOT NULL,
	trade_type TEXT NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL,
	stop_loss REAL,
	lot_size REAL NOT NULL,
	timeframe TEXT NOT NULL,
	entry_date TEXT NOT NULL,
	entry_time TEXT NOT NULL,
	notes TEXT NOT NULL,
	strategy TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_created_at ON trades(created_at);
`
