package phasedeuce

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Import SQLite driver for database/sql
)

// sqliteStore implements Store on a SQLite database, one logical daily log
// per log_date value. It follows the same append-then-validate contract as
// the CSV backend. Every row field is stored as TEXT, checksum included, so
// validation recomputes over exactly the text that was written, the same
// way the CSV backend re-reads raw fields.
type sqliteStore struct {
	db  *sql.DB
	cfg Config
}

// OpenSQLiteStore opens/creates a SQLite DB and ensures schema + PRAGMAs.
func OpenSQLiteStore(dsn string, cfg Config) (Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	for _, p := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=FULL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA wal_autocheckpoint=1000;",
	} {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", p, err)
		}
	}
	schema := `
CREATE TABLE IF NOT EXISTS daily_log (
  id            INTEGER PRIMARY KEY,
  log_date      TEXT NOT NULL,     -- ISO 8601 date the row belongs to
  unix_time     TEXT NOT NULL,
  full_name     TEXT NOT NULL,
  email_address TEXT NOT NULL,
  phone_number  TEXT NOT NULL,
  checksum      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS daily_log_date_idx ON daily_log(log_date);
`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db, cfg: cfg.withDefaults()}, nil
}

// dayLabel names one date's logical log in console messages, standing in
// for the file name the CSV backend reports.
func dayLabel(date string) string {
	return "daily log " + date
}

// Append inserts one identity row under the resolved date, then
// re-validates that date's rows in insertion order.
func (s *sqliteStore) Append(src IdentitySource) Outcome {
	date := s.cfg.logDate()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fields := EncodeRow(s.cfg.Now().Unix(), src.NextIdentity())
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_log(log_date, unix_time, full_name, email_address, phone_number, checksum)
		 VALUES(?, ?, ?, ?, ?, ?)`,
		date,
		fields[columnUnixTime],
		fields[columnFullName],
		fields[columnEmailAddress],
		fields[columnPhoneNumber],
		fields[columnChecksum])
	if err != nil {
		return failOutcome(s.cfg.Console, dayLabel(date), fmt.Errorf("insert %s: %w", dayLabel(date), err))
	}

	return s.validateDate(date)
}

// Validate re-checks every row stored under the current date.
func (s *sqliteStore) Validate() Outcome {
	return s.validateDate(s.cfg.logDate())
}

// validateDate streams the date's rows in insertion order, recomputing each
// checksum, and short-circuits on the first row that is not OK. A date with
// no rows validates vacuously.
func (s *sqliteStore) validateDate(date string) Outcome {
	target := dayLabel(date)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT unix_time, full_name, email_address, phone_number, checksum
		 FROM daily_log WHERE log_date = ? ORDER BY id ASC`, date)
	if err != nil {
		return failOutcome(s.cfg.Console, target, fmt.Errorf("query %s: %w", target, err))
	}
	defer rows.Close()

	for rows.Next() {
		fields := make([]string, fieldCount)
		if err := rows.Scan(
			&fields[columnUnixTime],
			&fields[columnFullName],
			&fields[columnEmailAddress],
			&fields[columnPhoneNumber],
			&fields[columnChecksum],
		); err != nil {
			return failOutcome(s.cfg.Console, target, fmt.Errorf("scan %s: %w", target, err))
		}
		if out := VerifyFields(fields); out != OutcomeOK {
			warnOutcome(s.cfg.Console, out, target)
			return out
		}
	}
	if err := rows.Err(); err != nil {
		return failOutcome(s.cfg.Console, target, fmt.Errorf("read %s: %w", target, err))
	}
	return OutcomeOK
}

// Close closes the backing database.
func (s *sqliteStore) Close() error { return s.db.Close() }
