// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished session.
type MatchRecord struct {
	ID         int64
	Mode       string // "vs CPU" or "two-player"
	Player     string // SSH user, or "local"
	LeftScore  int
	RightScore int
	Ticks      int64
	Duration   time.Duration
	PlayedAt   time.Time
}

// Winner returns "left", "right" or "draw".
func (r MatchRecord) Winner() string {
	switch {
	case r.LeftScore > r.RightScore:
		return "left"
	case r.RightScore > r.LeftScore:
		return "right"
	default:
		return "draw"
	}
}

// Totals aggregates recorded matches.
type Totals struct {
	Matches    int
	LeftWins   int
	RightWins  int
	Draws      int
	Goals      int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			player TEXT NOT NULL,
			left_score INTEGER NOT NULL DEFAULT 0,
			right_score INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
		CREATE INDEX IF NOT EXISTS idx_matches_played_at ON matches(played_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished session and returns its ID.
// A zero PlayedAt is stored as the current time.
func (s *Store) SaveMatch(r MatchRecord) (int64, error) {
	playedAt := r.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO matches (mode, player, left_score, right_score, ticks, duration_ms, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.Player, r.LeftScore, r.RightScore, r.Ticks,
		r.Duration.Milliseconds(), playedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordMatch saves a finished session unless it never ticked.
// It is safe to call on a nil Store, which discards the record.
func (s *Store) RecordMatch(r MatchRecord) error {
	if s == nil || r.Ticks == 0 {
		return nil
	}
	_, err := s.SaveMatch(r)
	return err
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, player, left_score, right_score, ticks, duration_ms, played_at
		 FROM matches
		 ORDER BY played_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	return scanMatches(rows)
}

// PlayerMatches retrieves match history for a single player, newest first.
func (s *Store) PlayerMatches(player string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, player, left_score, right_score, ticks, duration_ms, played_at
		 FROM matches
		 WHERE player = ?
		 ORDER BY played_at DESC, id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player matches: %w", err)
	}
	return scanMatches(rows)
}

// Totals aggregates all recorded matches.
func (s *Store) Totals() (*Totals, error) {
	t := &Totals{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN left_score > right_score THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN right_score > left_score THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN left_score = right_score THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(left_score + right_score), 0),
		        MAX(played_at)
		 FROM matches`,
	).Scan(&t.Matches, &t.LeftWins, &t.RightWins, &t.Draws, &t.Goals, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	t.LastPlayed = parseTime(lastPlayed)

	return t, nil
}

// MatchByID retrieves a single match. Returns nil if it does not exist.
func (s *Store) MatchByID(id int64) (*MatchRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, player, left_score, right_score, ticks, duration_ms, played_at
		 FROM matches
		 WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	records, err := scanMatches(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

const timeLayout = "2006-01-02 15:04:05"

// scanMatches reads and closes rows.
func scanMatches(rows *sql.Rows) ([]MatchRecord, error) {
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		var durationMS int64
		var playedAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Player, &r.LeftScore, &r.RightScore,
			&r.Ticks, &durationMS, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.PlayedAt = parseTime(playedAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
