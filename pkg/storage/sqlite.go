package storage

import (
	"fmt"

	_ "modernc.org/sqlite"
)

type SQLite struct {
	*sqlStore
}

// NewSQLite opens (or creates) the database file at path.
func NewSQLite(path string) (*SQLite, error) {
	dsn := fmt.Sprintf("file:%s?mode=rwc&_pragma=journal_mode(WAL)", path)
	s, err := openSQL("sqlite", dsn, path)
	if err != nil {
		return nil, err
	}
	return &SQLite{sqlStore: s}, nil
}
