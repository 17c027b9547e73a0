package domain

import "time"

// Tier classifies how strongly a file matched a query. Tiers are mutually
// exclusive and checked in declaration order: a file that satisfies a higher
// tier is never evaluated for a lower one.
type Tier int

const (
	TierExact Tier = iota
	TierProximity
	TierKeyword

	TierCount
)

func (t Tier) Label() string {
	switch t {
	case TierExact:
		return "EXACT"
	case TierProximity:
		return "PHRASE"
	case TierKeyword:
		return "KEYWORD"
	}
	return "UNKNOWN"
}

// Query holds the raw query string and its derived keyword tokens.
// Tokens are lower-cased, order-preserving and duplicate-preserving;
// proximity matching anchors on the first token.
type Query struct {
	Raw    string
	Tokens []string
}

// Candidate is a file discovered during enumeration, annotated with its
// size at discovery time. Candidates live only within one scan pass.
type Candidate struct {
	Path string
	Size int64
}

// MatchRecord is the unit of a search result. It is created once per
// matching file per query and never mutated afterward.
type MatchRecord struct {
	Path        string
	DisplayName string
	SizeBytes   int64
	Tier        Tier
	Score       int
	Snippet     string
}

// ScanStats holds the counters accumulated during one scan.
type ScanStats struct {
	FilesScanned         int
	FilesSkippedTooLarge int
	FilesUnreadable      int
}

// SearchReport is the complete outcome of one search: the rendered
// plain-text report plus the raw records and counters behind it.
type SearchReport struct {
	Query      string
	Rendered   string
	Stats      ScanStats
	Records    []MatchRecord
	TierTotals [TierCount]int
	Displayed  int
	Truncated  bool
}

// TotalMatches returns the number of files that matched at any tier.
func (r SearchReport) TotalMatches() int {
	total := 0
	for _, n := range r.TierTotals {
		total += n
	}
	return total
}

// HistoryEntry records one completed search for the query history.
type HistoryEntry struct {
	Query        string
	When         time.Time
	Stats        ScanStats
	TotalMatches int
}
