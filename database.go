package main

import (
	"database/sql"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the sqlite run archive. It is strictly best-effort storage:
// the CSV highscore file stays the canonical record and every caller
// tolerates a nil *DB.
type DB struct {
	conn *sql.DB
}

// SessionRow is one finished run
type SessionRow struct {
	ID        int64
	Name      string
	Score     int
	Wave      int
	Duration  float64 // seconds
	CreatedAt time.Time
}

// OpenDB opens (or creates) the sqlite archive
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL keeps the background analytics writer out of the game's way
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		wave INTEGER NOT NULL DEFAULT 1,
		duration REAL NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS analytics_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type TEXT NOT NULL,
		player TEXT,
		data TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score);
	CREATE INDEX IF NOT EXISTS idx_events_type ON analytics_events(event_type);
	`
	_, err := db.conn.Exec(schema)
	if err != nil {
		log.Printf("db migration error: %v", err)
	}
	return err
}

// RecordSession stores a finished run and returns its ID
func (db *DB) RecordSession(name string, score, wave int, duration float64) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO sessions (name, score, wave, duration) VALUES (?, ?, ?, ?)",
		name, score, wave, duration,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// TopSessions returns the best runs, highest score first
func (db *DB) TopSessions(limit int) ([]SessionRow, error) {
	rows, err := db.conn.Query(`
		SELECT id, name, score, wave, duration, created_at
		FROM sessions ORDER BY score DESC, created_at ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SessionRow
	for rows.Next() {
		var r SessionRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Score, &r.Wave, &r.Duration, &r.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// SessionCount returns the number of archived runs
func (db *DB) SessionCount() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count)
	return count, err
}

// BestWave returns the deepest wave any archived run reached
func (db *DB) BestWave() (int, error) {
	var wave sql.NullInt64
	err := db.conn.QueryRow("SELECT MAX(wave) FROM sessions").Scan(&wave)
	return int(wave.Int64), err
}
