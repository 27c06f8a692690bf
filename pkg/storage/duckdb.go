package storage

import (
	_ "github.com/marcboeker/go-duckdb/v2"
)

type DuckDB struct {
	*sqlStore
}

// NewDuckDB opens (or creates) the database file at path.
func NewDuckDB(path string) (*DuckDB, error) {
	s, err := openSQL("duckdb", path, path)
	if err != nil {
		return nil, err
	}
	return &DuckDB{sqlStore: s}, nil
}
