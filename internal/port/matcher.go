package port

import "sift/internal/domain"

// ContentMatcher classifies one file's content against a query.
type ContentMatcher interface {
	// Match returns the strongest tier the content satisfies and its
	// score, or ok=false when the file is not a match.
	Match(content string, q domain.Query) (tier domain.Tier, score int, ok bool)

	// Snippet extracts a bounded excerpt illustrating a match that
	// already succeeded at the given tier.
	Snippet(content string, q domain.Query, tier domain.Tier) string
}
