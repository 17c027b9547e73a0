package memstore

import (
	"sync"

	"sift/internal/domain"
)

// HistoryStore is an in-memory implementation of port.HistoryStore,
// used in tests and when persistent history is disabled.
type HistoryStore struct {
	mu         sync.Mutex
	entries    []domain.HistoryEntry
	maxEntries int
}

func NewHistoryStore(maxEntries int) *HistoryStore {
	return &HistoryStore{maxEntries: maxEntries}
}

func (s *HistoryStore) Append(e domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		s.entries = s.entries[len(s.entries)-s.maxEntries:]
	}
	return nil
}

func (s *HistoryStore) Recent(n int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.entries) {
		n = len(s.entries)
	}
	recent := make([]domain.HistoryEntry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		recent = append(recent, s.entries[i])
	}
	return recent, nil
}

func (s *HistoryStore) Close() error {
	return nil
}
