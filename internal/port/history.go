package port

import "sift/internal/domain"

// HistoryStore records completed searches.
type HistoryStore interface {
	Append(e domain.HistoryEntry) error

	// Recent returns up to n entries, newest first.
	Recent(n int) ([]domain.HistoryEntry, error)

	Close() error
}
