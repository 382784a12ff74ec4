package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// ErrNotFound indicates a lookup with no stored row.
var ErrNotFound = errors.New("export: not found")

// SQLiteStore keeps data packages and session summaries in one SQLite
// file, as JSON payloads keyed by game and by session id.
type SQLiteStore struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "summit.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS data_packages (
			game TEXT PRIMARY KEY,
			checksum TEXT NOT NULL,
			payload BLOB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			player INTEGER NOT NULL,
			phase TEXT NOT NULL,
			payload BLOB NOT NULL
		)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create tables: %w", err)
		}
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

// SaveDataPackage stores p, replacing any package of the same game.
func (s *SQLiteStore) SaveDataPackage(ctx context.Context, p DataPackage) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode data package: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO data_packages (game, checksum, payload) VALUES (?, ?, ?)
		ON CONFLICT(game) DO UPDATE SET checksum = excluded.checksum, payload = excluded.payload`,
		p.Game, p.Checksum, payload)
	if err != nil {
		return fmt.Errorf("save data package: %w", err)
	}

	return nil
}

// LoadDataPackage returns the stored package of game, or ErrNotFound.
func (s *SQLiteStore) LoadDataPackage(ctx context.Context, game string) (DataPackage, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM data_packages WHERE game = ?`, game).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return DataPackage{}, fmt.Errorf("%w: data package %q", ErrNotFound, game)
	}
	if err != nil {
		return DataPackage{}, fmt.Errorf("load data package: %w", err)
	}
	var p DataPackage
	if err = json.Unmarshal(payload, &p); err != nil {
		return DataPackage{}, fmt.Errorf("decode data package: %w", err)
	}

	return p, nil
}

// SaveSession stores a session summary. Summaries are write-once per id.
func (s *SQLiteStore) SaveSession(ctx context.Context, sum SessionSummary) (retErr error) {
	payload, err := json.Marshal(sum)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, player, phase, payload) VALUES (?, ?, ?, ?)`,
		sum.ID, sum.Player, sum.Phase.String(), payload); err != nil {
		return fmt.Errorf("save session %s: %w", sum.ID, err)
	}

	return tx.Commit()
}

// LoadSession returns the stored summary with id, or ErrNotFound.
func (s *SQLiteStore) LoadSession(ctx context.Context, id string) (SessionSummary, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM sessions WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionSummary{}, fmt.Errorf("%w: session %q", ErrNotFound, id)
	}
	if err != nil {
		return SessionSummary{}, fmt.Errorf("load session: %w", err)
	}
	var sum SessionSummary
	if err = json.Unmarshal(payload, &sum); err != nil {
		return SessionSummary{}, fmt.Errorf("decode session: %w", err)
	}

	return sum, nil
}

// Sessions returns the ids of stored sessions of player, oldest first.
func (s *SQLiteStore) Sessions(ctx context.Context, player int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM sessions WHERE player = ? ORDER BY rowid`, player)
	if err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
