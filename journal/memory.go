package journal

import (
	"context"
	"sync"
)

// MemoryStore keeps the trade list in process. Used for tests and
// throwaway sessions.
type MemoryStore struct {
	mu     sync.RWMutex
	trades []Trade
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) ([]Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Trade(nil), s.trades...), nil
}

func (s *MemoryStore) Save(ctx context.Context, trades []Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = append([]Trade(nil), trades...)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
