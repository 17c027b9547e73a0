package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"sift/internal/domain"
)

var bucketQueries = []byte("queries")

// HistoryStore persists completed searches in a bolt database. Entries
// are keyed by a monotonic sequence so iteration order is append order.
type HistoryStore struct {
	db         *bbolt.DB
	maxEntries int
}

// NewHistoryStore opens (or creates) the history database at path.
func NewHistoryStore(path string, maxEntries int) (*HistoryStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketQueries)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &HistoryStore{db: db, maxEntries: maxEntries}, nil
}

type entryMeta struct {
	Query                string `json:"query"`
	When                 int64  `json:"when"`
	FilesScanned         int    `json:"files_scanned"`
	FilesSkippedTooLarge int    `json:"files_skipped_too_large"`
	FilesUnreadable      int    `json:"files_unreadable"`
	TotalMatches         int    `json:"total_matches"`
}

// Append records one completed search and prunes the oldest entries
// beyond the configured maximum.
func (s *HistoryStore) Append(e domain.HistoryEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketQueries)

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		meta := entryMeta{
			Query:                e.Query,
			When:                 e.When.Unix(),
			FilesScanned:         e.Stats.FilesScanned,
			FilesSkippedTooLarge: e.Stats.FilesSkippedTooLarge,
			FilesUnreadable:      e.Stats.FilesUnreadable,
			TotalMatches:         e.TotalMatches,
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		if err := b.Put(key, data); err != nil {
			return err
		}

		return pruneOldest(b, s.maxEntries)
	})
}

// Recent returns up to n entries, newest first.
func (s *HistoryStore) Recent(n int) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketQueries).Cursor()
		for k, v := c.Last(); k != nil && len(entries) < n; k, v = c.Prev() {
			var meta entryMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			entries = append(entries, domain.HistoryEntry{
				Query: meta.Query,
				When:  time.Unix(meta.When, 0),
				Stats: domain.ScanStats{
					FilesScanned:         meta.FilesScanned,
					FilesSkippedTooLarge: meta.FilesSkippedTooLarge,
					FilesUnreadable:      meta.FilesUnreadable,
				},
				TotalMatches: meta.TotalMatches,
			})
		}
		return nil
	})
	return entries, err
}

func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// pruneOldest deletes the lowest-sequence entries until at most max remain.
func pruneOldest(b *bbolt.Bucket, max int) error {
	if max <= 0 {
		return nil
	}

	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		key := make([]byte, len(k))
		copy(key, k)
		keys = append(keys, key)
	}

	for i := 0; len(keys)-i > max; i++ {
		if err := b.Delete(keys[i]); err != nil {
			return err
		}
	}
	return nil
}
