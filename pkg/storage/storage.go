package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kerbaras/champions/pkg/config"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a string key-value cell store: GetItem reports a missing key
// with ok == false, SetItem overwrites.
type Store interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	Close() error
}

// Open builds the backend selected in cfg.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Storage {
	case config.StorageDuckDB:
		return NewDuckDB(cfg.DatabasePath())
	case config.StorageSQLite:
		return NewSQLite(cfg.DatabasePath())
	case config.StorageRedis:
		return NewRedis(cfg.Redis)
	case config.StorageMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage)
	}
}

const createCells = `CREATE TABLE IF NOT EXISTS cells (
	name TEXT PRIMARY KEY,
	content TEXT NOT NULL
)`

const upsertCell = `INSERT INTO cells (name, content) VALUES (?, ?)
	ON CONFLICT (name) DO UPDATE SET content = excluded.content`

// sqlStore keeps every cell as one row. DuckDB and SQLite share it.
type sqlStore struct {
	db *sql.DB
}

func openSQL(driver, dsn, path string) (*sqlStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if _, err := db.Exec(createCells); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", driver, err)
	}
	return &sqlStore{db: db}, nil
}

func (s *sqlStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT content FROM cells WHERE name = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *sqlStore) SetItem(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertCell, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
