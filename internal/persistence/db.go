// Package persistence provides SQLite-based entity state storage. The core
// never touches this; the daemon snapshots each orchestrator output here.
package persistence

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/ember/internal/entity"
)

// DB wraps a SQLite connection for entity state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		taken_at TEXT NOT NULL,
		growth_day INTEGER NOT NULL,
		state_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at TEXT NOT NULL,
		kind TEXT NOT NULL,
		detail TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS entity_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_taken ON snapshots(taken_at);
	CREATE INDEX IF NOT EXISTS idx_events_at ON events(at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSnapshot stores one full state snapshot.
func (db *DB) SaveSnapshot(st entity.EntityState, takenAt time.Time) error {
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	_, err = db.conn.Exec(
		"INSERT INTO snapshots (taken_at, growth_day, state_json) VALUES (?, ?, ?)",
		takenAt.UTC().Format(time.RFC3339), st.Status.GrowthDay, string(blob),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// LoadLatest returns the most recent snapshot, or false when none exists.
func (db *DB) LoadLatest() (entity.EntityState, bool, error) {
	var blob string
	err := db.conn.Get(&blob, "SELECT state_json FROM snapshots ORDER BY id DESC LIMIT 1")
	if err == sql.ErrNoRows {
		return entity.EntityState{}, false, nil
	}
	if err != nil {
		return entity.EntityState{}, false, fmt.Errorf("load snapshot: %w", err)
	}

	var st entity.EntityState
	if err := json.Unmarshal([]byte(blob), &st); err != nil {
		return entity.EntityState{}, false, fmt.Errorf("unmarshal state: %w", err)
	}
	return st, true, nil
}

// PruneSnapshots keeps the newest keep snapshots and deletes the rest.
func (db *DB) PruneSnapshots(keep int) error {
	_, err := db.conn.Exec(
		"DELETE FROM snapshots WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)",
		keep,
	)
	return err
}

// Event is one row in the daemon's event log.
type Event struct {
	At     time.Time `json:"at"`
	Kind   string    `json:"kind"` // "heartbeat", "interaction", "milestone", "reversal", "consolidation"
	Detail string    `json:"detail"`
}

// AppendEvents writes event log rows.
func (db *DB) AppendEvents(events []Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (at, kind, detail) VALUES (?, ?, ?)",
			e.At.UTC().Format(time.RFC3339), e.Kind, e.Detail,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RecentEvents returns the newest limit events, newest first.
func (db *DB) RecentEvents(limit int) ([]Event, error) {
	rows, err := db.conn.Query("SELECT at, kind, detail FROM events ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var at, kind, detail string
		if err := rows.Scan(&at, &kind, &detail); err != nil {
			return nil, err
		}
		t, _ := time.Parse(time.RFC3339, at)
		events = append(events, Event{At: t, Kind: kind, Detail: detail})
	}
	return events, rows.Err()
}

// SaveMeta stores a key-value pair in entity metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO entity_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// LoadMeta reads a metadata value; ok is false when the key is absent.
func (db *DB) LoadMeta(key string) (string, bool, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM entity_meta WHERE key = ?", key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
