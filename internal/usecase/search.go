package usecase

import (
	"path/filepath"

	"sift/internal/adapter/analyzer"
	"sift/internal/domain"
	"sift/internal/port"
)

// ProgressFunc reports scan progress to the caller. The engine itself
// never prints; delivery of progress and of the final report is the
// presentation layer's concern.
type ProgressFunc func(scanned int, path string)

// SearchUseCase runs one query as a single sequential scan over a
// directory tree: tokenize, enumerate candidates, classify each file's
// content into a tier, extract a snippet, and render a bounded report.
// A SearchUseCase holds no per-query state, but callers must not issue
// overlapping Search calls that share a mutable configuration.
type SearchUseCase struct {
	tokenizer   *analyzer.Tokenizer
	enumerator  port.Enumerator
	reader      port.ContentReader
	matcher     port.ContentMatcher
	maxResults  int
	maxResponse int
}

// NewSearchUseCase creates a new search use case.
func NewSearchUseCase(
	enumerator port.Enumerator,
	reader port.ContentReader,
	matcher port.ContentMatcher,
	maxResults int,
	maxResponse int,
) *SearchUseCase {
	return &SearchUseCase{
		tokenizer:   analyzer.NewTokenizer(),
		enumerator:  enumerator,
		reader:      reader,
		matcher:     matcher,
		maxResults:  maxResults,
		maxResponse: maxResponse,
	}
}

// Search executes one query against the tree rooted at root and returns
// the complete report. Pre-scan failures (empty query, invalid root) are
// returned as errors; per-file read failures are counted and never abort
// the scan. progress may be nil.
func (u *SearchUseCase) Search(root, rawQuery string, progress ProgressFunc) (domain.SearchReport, error) {
	q, err := u.tokenizer.ParseQuery(rawQuery)
	if err != nil {
		return domain.SearchReport{}, err
	}

	var stats domain.ScanStats
	var buckets [domain.TierCount][]domain.MatchRecord

	enumStats, err := u.enumerator.Enumerate(root, func(c domain.Candidate) error {
		stats.FilesScanned++
		if progress != nil {
			progress(stats.FilesScanned, c.Path)
		}

		content, err := u.reader.ReadFile(c.Path)
		if err != nil {
			stats.FilesUnreadable++
			return nil
		}

		tier, score, ok := u.matcher.Match(content, q)
		if !ok {
			return nil
		}

		buckets[tier] = append(buckets[tier], domain.MatchRecord{
			Path:        c.Path,
			DisplayName: filepath.Base(c.Path),
			SizeBytes:   c.Size,
			Tier:        tier,
			Score:       score,
			Snippet:     u.matcher.Snippet(content, q, tier),
		})
		return nil
	})
	if err != nil {
		return domain.SearchReport{}, err
	}
	stats.FilesSkippedTooLarge = enumStats.SkippedTooLarge

	return assembleReport(q, buckets, stats, u.maxResults, u.maxResponse), nil
}

// Check validates root and counts the files eligible for scanning under
// the current extension selection, without reading any content.
func (u *SearchUseCase) Check(root string) (int, error) {
	count := 0
	_, err := u.enumerator.Enumerate(root, func(domain.Candidate) error {
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
