// Package storage provides SQLite-based persistence for finished garden sessions.
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

// Store manages the SQLite database connection for session results.
type Store struct {
	db *sql.DB
}

// SessionResult is the outcome of one finished garden.
type SessionResult struct {
	ID             int64
	Player         string
	Money          int
	TilesOwned     int
	TilesPurchased int
	WeedsSpawned   int
	WeedsCleared   int
	ChopsLanded    int
	ToolsBought    int
	ToolsBroken    int
	EventsSeen     int
	Duration       time.Duration
	Seed           int64
	CreatedAt      time.Time
}

// Summary aggregates all stored sessions.
type Summary struct {
	Sessions     int
	BestTiles    int
	BestMoney    int
	WeedsCleared int64
	TotalPlay    time.Duration
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			money INTEGER NOT NULL DEFAULT 0,
			tiles_owned INTEGER NOT NULL DEFAULT 0,
			tiles_purchased INTEGER NOT NULL DEFAULT 0,
			weeds_spawned INTEGER NOT NULL DEFAULT 0,
			weeds_cleared INTEGER NOT NULL DEFAULT 0,
			chops_landed INTEGER NOT NULL DEFAULT 0,
			tools_bought INTEGER NOT NULL DEFAULT 0,
			tools_broken INTEGER NOT NULL DEFAULT 0,
			events_seen INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_tiles ON sessions(tiles_owned DESC, money DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(r SessionResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (player, money, tiles_owned, tiles_purchased, weeds_spawned, weeds_cleared,
		  chops_landed, tools_bought, tools_broken, events_seen, duration_ms, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Money, r.TilesOwned, r.TilesPurchased, r.WeedsSpawned, r.WeedsCleared,
		r.ChopsLanded, r.ToolsBought, r.ToolsBroken, r.EventsSeen, r.Duration.Milliseconds(), r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const sessionColumns = `id, player, money, tiles_owned, tiles_purchased, weeds_spawned, weeds_cleared,
	chops_landed, tools_bought, tools_broken, events_seen, duration_ms, seed, created_at`

// TopSessions retrieves the best N sessions, ranked by land owned then money.
// An empty player matches everyone.
func (s *Store) TopSessions(player string, limit int) ([]SessionResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE ? = '' OR player = ?
		 ORDER BY tiles_owned DESC, money DESC, id ASC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// RecentSessions retrieves the most recently finished sessions.
func (s *Store) RecentSessions(limit int) ([]SessionResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]SessionResult, error) {
	var results []SessionResult
	for rows.Next() {
		var r SessionResult
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Player, &r.Money, &r.TilesOwned, &r.TilesPurchased, &r.WeedsSpawned, &r.WeedsCleared,
			&r.ChopsLanded, &r.ToolsBought, &r.ToolsBroken, &r.EventsSeen, &durationMS, &r.Seed, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestTiles returns the largest garden a player has finished with.
// Returns 0 if no sessions exist.
func (s *Store) BestTiles(player string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(tiles_owned) FROM sessions WHERE ? = '' OR player = ?",
		player, player,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best tiles: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// Summarize aggregates every stored session.
func (s *Store) Summarize() (*Summary, error) {
	sum := &Summary{}
	var totalMS int64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(tiles_owned), 0), COALESCE(MAX(money), 0),
		        COALESCE(SUM(weeds_cleared), 0), COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM sessions`,
	).Scan(&sum.Sessions, &sum.BestTiles, &sum.BestMoney, &sum.WeedsCleared, &totalMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize sessions: %w", err)
	}

	sum.TotalPlay = time.Duration(totalMS) * time.Millisecond
	sum.LastPlayed = parseTime(lastPlayed)
	return sum, nil
}

// ClearSessions deletes stored sessions. An empty player clears everything.
func (s *Store) ClearSessions(player string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE ? = '' OR player = ?", player, player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles SQLite returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
