// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/casino/internal/match"
	"github.com/vovakirdan/casino/internal/rules"
)

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// GameRecord is one stored game. Arrays are indexed by seat.
type GameRecord struct {
	ID         string
	Variant    string
	Seed       int64
	Names      [2]string
	Strategies [2]string
	Scores     [2]int
	Winner     int // seat, -1 if the game did not finish
	EndReason  string
	Hands      int
	Turns      int
	Duration   time.Duration
	CreatedAt  time.Time
}

// WinnerName returns the winning seat's name, or "" if there is none.
func (r GameRecord) WinnerName() string {
	if r.Winner < 0 || r.Winner > 1 {
		return ""
	}
	return r.Names[r.Winner]
}

// StrategyStats aggregates the results of one strategy over every seat it
// played. A strategy playing itself counts both seats.
type StrategyStats struct {
	Strategy string
	Games    int
	Wins     int
	AvgScore float64
}

// WinRate returns wins per game, 0 when no games were played.
func (s StrategyStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
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
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			strategy1 TEXT NOT NULL,
			strategy2 TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL DEFAULT -1,
			end_reason TEXT NOT NULL,
			hands INTEGER NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_games_variant ON games(variant);

		CREATE TABLE IF NOT EXISTS hand_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL REFERENCES games(id),
			hand INTEGER NOT NULL,
			seat INTEGER NOT NULL,
			category TEXT NOT NULL,
			points INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_hand_scores_game ON hand_scores(game_id);
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

// SaveGame records a finished match and the per-hand category points of
// both players in one transaction.
func (s *Store) SaveGame(res match.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO games
		 (id, variant, seed, player1, player2, strategy1, strategy2, score1, score2,
		  winner, end_reason, hands, turns, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID.String(),
		res.Variant,
		res.Seed,
		res.Names[0],
		res.Names[1],
		res.Strategies[0],
		res.Strategies[1],
		res.Scores[0],
		res.Scores[1],
		int(res.Winner),
		res.Reason.String(),
		res.Hands,
		res.Turns,
		res.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO hand_scores (game_id, hand, seat, category, points) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare hand scores: %w", err)
	}
	defer stmt.Close()

	for _, hr := range res.HandResults {
		for seat, award := range hr.Awards {
			for cat, pts := range award.Breakdown {
				if _, err := stmt.Exec(res.ID.String(), hr.Hand, seat, string(cat), pts); err != nil {
					return fmt.Errorf("storage: cannot save hand score: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return nil
}

const gameColumns = `id, variant, seed, player1, player2, strategy1, strategy2,
	score1, score2, winner, end_reason, hands, turns, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (GameRecord, error) {
	var r GameRecord
	var durationMs int64
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.Variant,
		&r.Seed,
		&r.Names[0],
		&r.Names[1],
		&r.Strategies[0],
		&r.Strategies[1],
		&r.Scores[0],
		&r.Scores[1],
		&r.Winner,
		&r.EndReason,
		&r.Hands,
		&r.Turns,
		&durationMs,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.Duration = time.Duration(durationMs) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentGames retrieves the most recent games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+gameColumns+`
		 FROM games
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// GameByID retrieves a game by its ID. Returns nil if it does not exist.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	g, err := scanGame(s.db.QueryRow(`SELECT `+gameColumns+` FROM games WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	return &g, nil
}

// GameBreakdown sums the stored category points of a game per seat.
func (s *Store) GameBreakdown(id string) ([2]rules.Breakdown, error) {
	out := [2]rules.Breakdown{{}, {}}

	rows, err := s.db.Query(
		`SELECT seat, category, SUM(points)
		 FROM hand_scores
		 WHERE game_id = ?
		 GROUP BY seat, category`,
		id,
	)
	if err != nil {
		return out, fmt.Errorf("storage: cannot query breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var seat, pts int
		var cat string
		if err := rows.Scan(&seat, &cat, &pts); err != nil {
			return out, fmt.Errorf("storage: cannot scan breakdown row: %w", err)
		}
		if seat < 0 || seat > 1 {
			return out, fmt.Errorf("storage: bad seat %d in game %s", seat, id)
		}
		out[seat][rules.Category(cat)] = pts
	}

	if err := rows.Err(); err != nil {
		return out, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// StrategyStats aggregates wins and average score per strategy.
func (s *Store) StrategyStats() ([]StrategyStats, error) {
	rows, err := s.db.Query(
		`SELECT strategy, COUNT(*), SUM(win), AVG(score)
		 FROM (
			SELECT strategy1 AS strategy, score1 AS score, CASE WHEN winner = 0 THEN 1 ELSE 0 END AS win FROM games
			UNION ALL
			SELECT strategy2, score2, CASE WHEN winner = 1 THEN 1 ELSE 0 END FROM games
		 )
		 GROUP BY strategy
		 ORDER BY strategy`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get strategy stats: %w", err)
	}
	defer rows.Close()

	var stats []StrategyStats
	for rows.Next() {
		var st StrategyStats
		if err := rows.Scan(&st.Strategy, &st.Games, &st.Wins, &st.AvgScore); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearGames deletes every stored game.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM hand_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear hand scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}
