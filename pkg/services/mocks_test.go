package services

import (
	"context"
	"errors"
	"sync"

	"github.com/kerbaras/champions/pkg/data"
)

type mockSource struct {
	mu        sync.Mutex
	champions []data.Champion
	err       error
	calls     int
}

func (m *mockSource) Name() string {
	return "mock"
}

func (m *mockSource) ListChampions(ctx context.Context) ([]data.Champion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]data.Champion, len(m.champions))
	copy(out, m.champions)
	return out, nil
}

func (m *mockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var errStorage = errors.New("storage unavailable")

type failingStore struct {
	getErr error
	setErr error
	value  string
	ok     bool
}

func (f *failingStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.value, f.ok, nil
}

func (f *failingStore) SetItem(ctx context.Context, key, value string) error {
	return f.setErr
}

func (f *failingStore) Close() error {
	return nil
}

func testChampions() []data.Champion {
	return []data.Champion{
		{ID: 1, Name: "Aatrox", Title: "the Darkin Blade"},
		{ID: 2, Name: "Ahri", Title: "the Nine-Tailed Fox"},
		{ID: 3, Name: "Akali", Title: "the Rogue Assassin"},
	}
}
