package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	m "github.com/mouse-blink/almanac/internal/model"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// HistoryStore records solve outcomes.
type HistoryStore interface {
	Record(ctx context.Context, entry m.HistoryEntry) (int64, error)
	List(ctx context.Context, limit int) ([]m.HistoryEntry, error)
	Close() error
}

// SQLiteHistoryStore implements HistoryStore on a SQLite database file.
type SQLiteHistoryStore struct {
	db *sql.DB
}

// NewSQLiteHistoryStore opens (and migrates) the database at dbPath.
// Use ":memory:" for a throwaway store.
func NewSQLiteHistoryStore(dbPath string) (*SQLiteHistoryStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	store := &SQLiteHistoryStore{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	return store, nil
}

func (s *SQLiteHistoryStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS solves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file TEXT NOT NULL,
		hash TEXT NOT NULL,
		mode TEXT NOT NULL,
		minimum TEXT NOT NULL,
		duration_ns INTEGER NOT NULL,
		solved_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_solves_solved_at ON solves(solved_at);
	`

	_, err := s.db.Exec(schema)

	return err
}

// Record inserts entry and returns its id.
func (s *SQLiteHistoryStore) Record(ctx context.Context, entry m.HistoryEntry) (int64, error) {
	// minimum is stored as text: SQLite integers cannot hold the upper half of uint64.
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO solves (file, hash, mode, minimum, duration_ns, solved_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		string(entry.File),
		entry.Hash,
		string(entry.Mode),
		strconv.FormatUint(entry.Minimum, 10),
		entry.Duration.Nanoseconds(),
		entry.SolvedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record solve: %w", err)
	}

	return res.LastInsertId()
}

// List returns the most recent entries first. limit <= 0 returns all.
func (s *SQLiteHistoryStore) List(ctx context.Context, limit int) ([]m.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, file, hash, mode, minimum, duration_ns, solved_at
		FROM solves
		ORDER BY solved_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []m.HistoryEntry

	for rows.Next() {
		var (
			entry            m.HistoryEntry
			file, mode, low  string
			durationNS, unix int64
		)

		if err := rows.Scan(&entry.ID, &file, &entry.Hash, &mode, &low, &durationNS, &unix); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		minimum, err := strconv.ParseUint(low, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("history row %d: bad minimum %q: %w", entry.ID, low, err)
		}

		entry.File = m.Path(file)
		entry.Mode = m.SeedMode(mode)
		entry.Minimum = minimum
		entry.Duration = time.Duration(durationNS)
		entry.SolvedAt = time.Unix(0, unix).UTC()

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Close releases the database.
func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}
