// store/schema.go
package store

const Schema = `
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	balance REAL NOT NULL,
	max_risk_pct REAL NOT NULL,
	daily_risk_pct REAL NOT NULL,
	daily_target_pct REAL NOT NULL,
	compound_pct REAL NOT NULL,
	reward_risk REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS session_trades (
	seq INTEGER PRIMARY KEY,
	trade_id TEXT NOT NULL,
	outcome TEXT NOT NULL,
	pnl REAL NOT NULL,
	risk_at_entry REAL NOT NULL,
	logged_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS days (
	seq INTEGER PRIMARY KEY,
	day_date TEXT NOT NULL,
	start_balance REAL NOT NULL,
	end_balance REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS day_trades (
	day_seq INTEGER NOT NULL,
	seq INTEGER NOT NULL,
	trade_id TEXT NOT NULL,
	outcome TEXT NOT NULL,
	pnl REAL NOT NULL,
	risk_at_entry REAL NOT NULL,
	logged_at TEXT NOT NULL,
	PRIMARY KEY (day_seq, seq)
);
`
