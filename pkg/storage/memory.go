package storage

import (
	"context"
	"sync"
)

// Memory keeps cells in process memory; they are gone after Close.
type Memory struct {
	mu    sync.RWMutex
	cells map[string]string
}

func NewMemory() *Memory {
	return &Memory{cells: make(map[string]string)}
}

func (m *Memory) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.cells[key]
	return value, ok, nil
}

func (m *Memory) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells[key] = value
	return nil
}

func (m *Memory) Close() error {
	return nil
}
