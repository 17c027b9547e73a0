package usecase

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"sift/internal/domain"
)

const (
	headerRule = "============================================================"
	entryRule  = "------------------------------------------------------------"

	truncationMarker = "More results truncated to stay within the response limit...\n"
)

// assembleReport sorts the tier buckets, concatenates them in priority
// order and renders the final plain-text report. The rendered length
// never exceeds maxResponse: every append is budget-checked before it is
// committed, and the result is clamped as a final guard.
func assembleReport(q domain.Query, buckets [domain.TierCount][]domain.MatchRecord, stats domain.ScanStats, maxResults, maxResponse int) domain.SearchReport {
	report := domain.SearchReport{
		Query: q.Raw,
		Stats: stats,
	}

	// Stable sort keeps enumeration order on score ties, which makes
	// reports reproducible for a fixed filesystem state.
	for tier := range buckets {
		bucket := buckets[tier]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Score > bucket[j].Score
		})
		report.TierTotals[tier] = len(bucket)
		report.Records = append(report.Records, bucket...)
	}

	var b strings.Builder
	total := report.TotalMatches()

	b.WriteString("SEARCH RESULTS\n")
	fmt.Fprintf(&b, "Query: '%s'\n", q.Raw)
	fmt.Fprintf(&b, "Files scanned: %d", stats.FilesScanned)
	if stats.FilesSkippedTooLarge > 0 {
		fmt.Fprintf(&b, " (skipped %d large files)", stats.FilesSkippedTooLarge)
	}
	b.WriteString("\n\nMATCH SUMMARY:\n")
	fmt.Fprintf(&b, "  Exact matches: %d\n", report.TierTotals[domain.TierExact])
	fmt.Fprintf(&b, "  Phrase matches: %d\n", report.TierTotals[domain.TierProximity])
	fmt.Fprintf(&b, "  Keyword matches: %d\n", report.TierTotals[domain.TierKeyword])
	fmt.Fprintf(&b, "  Total matches: %d\n", total)
	b.WriteString(headerRule + "\n\n")

	if total == 0 {
		b.WriteString(noMatchSuggestions)
	} else {
		for i, rec := range report.Records {
			if report.Displayed >= maxResults {
				break
			}
			entry := renderEntry(i+1, rec)
			if b.Len()+len(entry)+len(truncationMarker) > maxResponse {
				if b.Len()+len(truncationMarker) <= maxResponse {
					b.WriteString(truncationMarker)
				}
				report.Truncated = true
				break
			}
			b.WriteString(entry)
			report.Displayed++
		}

		if remaining := total - report.Displayed; remaining > 0 {
			note := fmt.Sprintf("\n%d additional matches not shown.\n", remaining)
			if b.Len()+len(note) <= maxResponse {
				b.WriteString(note)
			}
		}
	}

	if stats.FilesUnreadable > 0 {
		footer := fmt.Sprintf("\n%d files couldn't be read (permissions/encoding issues)\n", stats.FilesUnreadable)
		if b.Len()+len(footer) <= maxResponse {
			b.WriteString(footer)
		}
	}

	rendered := b.String()
	if len(rendered) > maxResponse {
		cut := maxResponse
		for cut > 0 && !utf8.RuneStart(rendered[cut]) {
			cut--
		}
		rendered = rendered[:cut]
		report.Truncated = true
	}
	report.Rendered = rendered

	return report
}

func renderEntry(ordinal int, rec domain.MatchRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] [%s] %s\n", ordinal, rec.Tier.Label(), rec.DisplayName)
	fmt.Fprintf(&b, "    Path: %s\n", rec.Path)
	fmt.Fprintf(&b, "    Size: %s\n", humanSize(rec.SizeBytes))
	fmt.Fprintf(&b, "    Snippet: %s\n", rec.Snippet)
	b.WriteString(entryRule + "\n\n")
	return b.String()
}

// humanSize formats a byte count as B / KB / MB with one decimal past 1 KB.
func humanSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

const noMatchSuggestions = `No files found matching your search.

Suggestions:
  - Try different or fewer keywords
  - Check if file types are selected
  - Verify the directory path is correct
  - Check spelling of search terms
`
