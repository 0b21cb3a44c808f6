package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rydwhelan/riskday/engine"
	"github.com/rydwhelan/riskday/policy"
)

// Wire formats for dates and times-of-day. These match the calculator's
// display formats exactly, so existing data keeps reading back verbatim.
const (
	DateLayout = "2 Jan 2006" // e.g. "5 Mar 2024"
	TimeLayout = "3:04pm"     // e.g. "3:45pm"
)

// SQLite persists the three records: settings, the open session, and the
// archived-day history. Days are stored newest first (seq 0 is the most
// recent rollover).
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// SaveSettings writes the single settings row.
func (s *SQLite) SaveSettings(cfg policy.Settings) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO settings
		(id, balance, max_risk_pct, daily_risk_pct, daily_target_pct, compound_pct, reward_risk)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		cfg.Balance, cfg.MaxRiskPct, cfg.DailyRiskPct,
		cfg.DailyTargetPct, cfg.CompoundPct, cfg.RewardRisk,
	)
	return err
}

// LoadSettings reads the settings row. The second return is false when no
// settings have been saved yet; callers fall back to policy.Default().
func (s *SQLite) LoadSettings() (policy.Settings, bool, error) {
	var cfg policy.Settings

	row := s.db.QueryRow(`
		SELECT balance, max_risk_pct, daily_risk_pct, daily_target_pct, compound_pct, reward_risk
		FROM settings WHERE id = 1`)

	err := row.Scan(
		&cfg.Balance,
		&cfg.MaxRiskPct,
		&cfg.DailyRiskPct,
		&cfg.DailyTargetPct,
		&cfg.CompoundPct,
		&cfg.RewardRisk,
	)
	if err == sql.ErrNoRows {
		return policy.Settings{}, false, nil
	}
	if err != nil {
		return policy.Settings{}, false, err
	}
	return cfg, true, nil
}

// SaveSession replaces the open session's trade log.
func (s *SQLite) SaveSession(session engine.Session) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := saveSessionTx(tx, session); err != nil {
		return err
	}
	return tx.Commit()
}

func saveSessionTx(tx *sql.Tx, session engine.Session) error {
	if _, err := tx.Exec(`DELETE FROM session_trades`); err != nil {
		return err
	}
	for i, t := range session.Trades {
		_, err := tx.Exec(`
			INSERT INTO session_trades (seq, trade_id, outcome, pnl, risk_at_entry, logged_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			i, t.ID, string(t.Outcome), t.PnL, t.RiskAtEntry, t.At.Format(TimeLayout),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadSession reads the open session's trade log in logged order.
func (s *SQLite) LoadSession() (engine.Session, error) {
	rows, err := s.db.Query(`
		SELECT trade_id, outcome, pnl, risk_at_entry, logged_at
		FROM session_trades ORDER BY seq ASC`)
	if err != nil {
		return engine.Session{}, err
	}
	defer rows.Close()

	trades, err := scanTrades(rows)
	if err != nil {
		return engine.Session{}, err
	}
	return engine.Session{Trades: trades}, nil
}

// SaveHistory replaces the archived-day history, newest first.
func (s *SQLite) SaveHistory(history []engine.ArchivedDay) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := saveHistoryTx(tx, history); err != nil {
		return err
	}
	return tx.Commit()
}

func saveHistoryTx(tx *sql.Tx, history []engine.ArchivedDay) error {
	if _, err := tx.Exec(`DELETE FROM days`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM day_trades`); err != nil {
		return err
	}

	for di, d := range history {
		_, err := tx.Exec(`
			INSERT INTO days (seq, day_date, start_balance, end_balance)
			VALUES (?, ?, ?, ?)`,
			di, d.Date.Format(DateLayout), d.StartBalance, d.EndBalance,
		)
		if err != nil {
			return err
		}
		for ti, t := range d.Trades {
			_, err := tx.Exec(`
				INSERT INTO day_trades (day_seq, seq, trade_id, outcome, pnl, risk_at_entry, logged_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				di, ti, t.ID, string(t.Outcome), t.PnL, t.RiskAtEntry, t.At.Format(TimeLayout),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadHistory reads the archived days, newest first, each with its frozen
// trade log.
func (s *SQLite) LoadHistory() ([]engine.ArchivedDay, error) {
	rows, err := s.db.Query(`
		SELECT seq, day_date, start_balance, end_balance
		FROM days ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []engine.ArchivedDay
	var seqs []int

	for rows.Next() {
		var (
			seq     int
			dateStr string
			d       engine.ArchivedDay
		)
		if err := rows.Scan(&seq, &dateStr, &d.StartBalance, &d.EndBalance); err != nil {
			return nil, err
		}
		d.Date, err = time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse day date %q: %w", dateStr, err)
		}
		history = append(history, d)
		seqs = append(seqs, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, seq := range seqs {
		trades, err := s.loadDayTrades(seq)
		if err != nil {
			return nil, err
		}
		history[i].Trades = trades
	}
	return history, nil
}

func (s *SQLite) loadDayTrades(daySeq int) ([]engine.Trade, error) {
	rows, err := s.db.Query(`
		SELECT trade_id, outcome, pnl, risk_at_entry, logged_at
		FROM day_trades WHERE day_seq = ? ORDER BY seq ASC`, daySeq)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrades(rows)
}

func scanTrades(rows *sql.Rows) ([]engine.Trade, error) {
	var trades []engine.Trade
	for rows.Next() {
		var (
			t       engine.Trade
			outcome string
			atStr   string
		)
		if err := rows.Scan(&t.ID, &outcome, &t.PnL, &t.RiskAtEntry, &atStr); err != nil {
			return nil, err
		}
		t.Outcome = engine.Outcome(outcome)

		at, err := time.Parse(TimeLayout, atStr)
		if err != nil {
			return nil, fmt.Errorf("parse trade time %q: %w", atStr, err)
		}
		t.At = at

		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return trades, nil
}

// SaveAll writes all three records in one transaction. Mutating commands
// call this after every engine call so the database always matches the
// in-memory records.
func (s *SQLite) SaveAll(cfg policy.Settings, session engine.Session, history []engine.ArchivedDay) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO settings
		(id, balance, max_risk_pct, daily_risk_pct, daily_target_pct, compound_pct, reward_risk)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		cfg.Balance, cfg.MaxRiskPct, cfg.DailyRiskPct,
		cfg.DailyTargetPct, cfg.CompoundPct, cfg.RewardRisk,
	)
	if err != nil {
		return err
	}
	if err := saveSessionTx(tx, session); err != nil {
		return err
	}
	if err := saveHistoryTx(tx, history); err != nil {
		return err
	}
	return tx.Commit()
}

// Reset deletes everything: settings, session, and history.
func (s *SQLite) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"settings", "session_trades", "days", "day_trades"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
