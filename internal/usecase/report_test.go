package usecase

import (
	"fmt"
	"strings"
	"testing"

	"sift/internal/domain"
)

func record(name string, tier domain.Tier, score int) domain.MatchRecord {
	return domain.MatchRecord{
		Path:        "/data/" + name,
		DisplayName: name,
		SizeBytes:   2048,
		Tier:        tier,
		Score:       score,
		Snippet:     "snippet for " + name,
	}
}

func bucketsOf(records ...domain.MatchRecord) [domain.TierCount][]domain.MatchRecord {
	var buckets [domain.TierCount][]domain.MatchRecord
	for _, r := range records {
		buckets[r.Tier] = append(buckets[r.Tier], r)
	}
	return buckets
}

func testQuery(raw string) domain.Query {
	return domain.Query{Raw: raw, Tokens: strings.Fields(strings.ToLower(raw))}
}

func TestAssembleReport_TierOrderBeforeScore(t *testing.T) {
	buckets := bucketsOf(
		record("kw.txt", domain.TierKeyword, 9000),
		record("exact.txt", domain.TierExact, 1100),
		record("phrase.txt", domain.TierProximity, 520),
	)

	report := assembleReport(testQuery("quick fox"), buckets, domain.ScanStats{FilesScanned: 3}, 10, 50000)

	if len(report.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(report.Records))
	}
	if report.Records[0].Tier != domain.TierExact ||
		report.Records[1].Tier != domain.TierProximity ||
		report.Records[2].Tier != domain.TierKeyword {
		t.Errorf("tier concatenation order violated: %+v", report.Records)
	}

	exactPos := strings.Index(report.Rendered, "exact.txt")
	kwPos := strings.Index(report.Rendered, "kw.txt")
	if exactPos < 0 || kwPos < 0 || exactPos > kwPos {
		t.Errorf("exact match must render before keyword match")
	}
}

func TestAssembleReport_InTierSortStable(t *testing.T) {
	// Same tier, same score: discovery order must be preserved.
	buckets := bucketsOf(
		record("first.txt", domain.TierKeyword, 50),
		record("high.txt", domain.TierKeyword, 90),
		record("second.txt", domain.TierKeyword, 50),
	)

	report := assembleReport(testQuery("quick fox"), buckets, domain.ScanStats{}, 10, 50000)

	got := []string{report.Records[0].DisplayName, report.Records[1].DisplayName, report.Records[2].DisplayName}
	want := []string{"high.txt", "first.txt", "second.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestAssembleReport_HeaderCounts(t *testing.T) {
	buckets := bucketsOf(
		record("a.txt", domain.TierExact, 1100),
		record("b.txt", domain.TierProximity, 520),
		record("c.txt", domain.TierProximity, 510),
	)
	stats := domain.ScanStats{FilesScanned: 7, FilesSkippedTooLarge: 2}

	report := assembleReport(testQuery("quick fox"), buckets, stats, 10, 50000)

	for _, want := range []string{
		"Query: 'quick fox'",
		"Files scanned: 7 (skipped 2 large files)",
		"Exact matches: 1",
		"Phrase matches: 2",
		"Keyword matches: 0",
		"Total matches: 3",
	} {
		if !strings.Contains(report.Rendered, want) {
			t.Errorf("missing %q in report:\n%s", want, report.Rendered)
		}
	}
}

func TestAssembleReport_MaxResultsAndRemainingNote(t *testing.T) {
	var records []domain.MatchRecord
	for i := 0; i < 12; i++ {
		records = append(records, record(fmt.Sprintf("f%02d.txt", i), domain.TierKeyword, 100-i))
	}

	report := assembleReport(testQuery("quick fox"), bucketsOf(records...), domain.ScanStats{}, 8, 50000)

	if report.Displayed != 8 {
		t.Errorf("expected 8 displayed, got %d", report.Displayed)
	}
	if !strings.Contains(report.Rendered, "4 additional matches not shown.") {
		t.Errorf("missing remaining-matches note:\n%s", report.Rendered)
	}
}

func TestAssembleReport_ResponseCapNeverExceeded(t *testing.T) {
	var records []domain.MatchRecord
	for i := 0; i < 50; i++ {
		rec := record(fmt.Sprintf("file%02d.txt", i), domain.TierKeyword, 500-i)
		rec.Snippet = strings.Repeat("long snippet content ", 10)
		records = append(records, rec)
	}

	for _, cap := range []int{120, 500, 1000, 2500, 50000} {
		report := assembleReport(testQuery("quick fox"), bucketsOf(records...), domain.ScanStats{}, 50, cap)
		if len(report.Rendered) > cap {
			t.Errorf("cap %d: rendered %d chars", cap, len(report.Rendered))
		}
	}
}

func TestAssembleReport_TruncationMarker(t *testing.T) {
	var records []domain.MatchRecord
	for i := 0; i < 30; i++ {
		records = append(records, record(fmt.Sprintf("file%02d.txt", i), domain.TierKeyword, 500-i))
	}

	// Generous enough for the header and a few entries, not all 30.
	report := assembleReport(testQuery("quick fox"), bucketsOf(records...), domain.ScanStats{}, 30, 800)

	if !report.Truncated {
		t.Error("expected truncation flag")
	}
	if !strings.Contains(report.Rendered, "truncated") {
		t.Errorf("expected truncation marker in report:\n%s", report.Rendered)
	}
	if report.Displayed >= 30 {
		t.Errorf("expected fewer than 30 displayed, got %d", report.Displayed)
	}
}

func TestAssembleReport_ZeroMatchesSuggestions(t *testing.T) {
	var buckets [domain.TierCount][]domain.MatchRecord

	report := assembleReport(testQuery("quick fox"), buckets, domain.ScanStats{FilesScanned: 5}, 8, 50000)

	for _, want := range []string{
		"No files found matching your search.",
		"Try different or fewer keywords",
		"Check if file types are selected",
		"Verify the directory path is correct",
		"Check spelling of search terms",
	} {
		if !strings.Contains(report.Rendered, want) {
			t.Errorf("missing suggestion %q", want)
		}
	}
}

func TestAssembleReport_UnreadableFooter(t *testing.T) {
	buckets := bucketsOf(record("a.txt", domain.TierExact, 1100))
	stats := domain.ScanStats{FilesScanned: 4, FilesUnreadable: 3}

	report := assembleReport(testQuery("quick fox"), buckets, stats, 8, 50000)
	if !strings.Contains(report.Rendered, "3 files couldn't be read") {
		t.Errorf("missing unreadable footer:\n%s", report.Rendered)
	}
}

func TestHumanSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{1023, "1023 B"},
		{1536, "1.5 KB"},
		{2 * 1024 * 1024, "2.0 MB"},
	}
	for _, c := range cases {
		if got := humanSize(c.bytes); got != c.want {
			t.Errorf("humanSize(%d): expected %q, got %q", c.bytes, c.want, got)
		}
	}
}
