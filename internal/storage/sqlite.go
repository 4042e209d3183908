// Package storage keeps finished runs in a SQLite database, through the
// pure-Go modernc.org/sqlite driver so no cgo toolchain is needed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultLimit = 10

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	player        TEXT    NOT NULL DEFAULT '',
	score         INTEGER NOT NULL,
	level         INTEGER NOT NULL,
	bullets_fired INTEGER NOT NULL DEFAULT 0,
	enemies_hit   INTEGER NOT NULL DEFAULT 0,
	duration_secs INTEGER NOT NULL DEFAULT 0,
	seed          INTEGER NOT NULL DEFAULT 0,
	created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
`

const runColumns = `id, player, score, level, bullets_fired, enemies_hit, duration_secs, seed, created_at`

// Store is a handle on the runs database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID           int64
	Player       string
	Score        int
	Level        int // level reached
	BulletsFired int
	EnemiesHit   int
	Duration     int // seconds
	Seed         int64
	CreatedAt    time.Time
}

// Accuracy is the share of fired bullets that hit, in percent.
func (r Run) Accuracy() float64 {
	if r.BulletsFired == 0 {
		return 0
	}
	return float64(r.EnemiesHit) * 100 / float64(r.BulletsFired)
}

// Stats sums up every recorded run.
type Stats struct {
	GamesPlayed int
	HighScore   int
	AvgScore    float64
	BestLevel   int
	TotalShots  int
	TotalHits   int
}

// Open opens the database at path, creating it and its directories on
// first use. A leading ~ stands for the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun inserts r and returns its new ID. r.ID and r.CreatedAt are
// ignored.
func (s *Store) SaveRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (player, score, level, bullets_fired, enemies_hit, duration_secs, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Score, r.Level, r.BulletsFired, r.EnemiesHit, r.Duration, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save run: %w", err)
	}
	return res.LastInsertId()
}

// TopRuns returns the best runs by score. Equal scores rank the deeper
// level first, then the older run.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	return s.selectRuns(`ORDER BY score DESC, level DESC, id ASC LIMIT ?`, orDefault(limit))
}

// PlayerRuns returns the latest runs of player, newest first.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	return s.selectRuns(`WHERE player = ? ORDER BY id DESC LIMIT ?`, player, orDefault(limit))
}

func orDefault(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}

func (s *Store) selectRuns(tail string, args ...any) ([]Run, error) {
	rows, err := s.db.Query("SELECT "+runColumns+" FROM runs "+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			created any
		)
		err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Level, &r.BulletsFired, &r.EnemiesHit, &r.Duration, &r.Seed, &created)
		if err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		r.CreatedAt = toTime(created)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read runs: %w", err)
	}
	return runs, nil
}

// toTime accepts the driver's time.Time as well as SQLite's text format.
func toTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		parsed, _ := time.Parse(time.DateTime, t)
		return parsed
	}
	return time.Time{}
}

// HighScore returns the best score, 0 when nothing is recorded.
func (s *Store) HighScore() (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM runs`).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return int(best.Int64), nil
}

// Stats aggregates every run.
func (s *Store) Stats() (*Stats, error) {
	var (
		st                      Stats
		high, deep, shots, hits sql.NullInt64
		avg                     sql.NullFloat64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), AVG(score), MAX(level), SUM(bullets_fired), SUM(enemies_hit) FROM runs`,
	).Scan(&st.GamesPlayed, &high, &avg, &deep, &shots, &hits)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	st.HighScore = int(high.Int64)
	st.AvgScore = avg.Float64
	st.BestLevel = int(deep.Int64)
	st.TotalShots = int(shots.Int64)
	st.TotalHits = int(hits.Int64)
	return &st, nil
}

// ClearRuns deletes every run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec(`DELETE FROM runs`); err != nil {
		return fmt.Errorf("storage: clear runs: %w", err)
	}
	return nil
}
