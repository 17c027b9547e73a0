package port

import "sift/internal/domain"

// EnumStats summarizes one enumeration pass.
type EnumStats struct {
	Yielded         int
	SkippedTooLarge int
}

// Enumerator yields candidate files under a root directory in a
// deterministic traversal order. Enumeration stops when the tree is
// exhausted, the candidate cap is reached, or fn returns an error.
type Enumerator interface {
	Enumerate(root string, fn func(domain.Candidate) error) (EnumStats, error)
}

// ContentReader reads a file's text content with best-effort decoding.
type ContentReader interface {
	ReadFile(path string) (string, error)
}
