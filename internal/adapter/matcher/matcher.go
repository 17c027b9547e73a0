package matcher

import (
	"strings"
	"unicode"

	"sift/internal/domain"
)

// proximityWindow is the maximum word-index distance between the first
// token and every other token for a proximity-phrase match.
const proximityWindow = 50

// Matcher classifies file content into a match tier. Tiers are checked in
// strict priority order (exact, proximity phrase, all keywords); the first
// hit wins, so a file surfaces at its best tier only.
type Matcher struct {
	maxSnippetChars int
}

// NewMatcher creates a Matcher. maxSnippetChars bounds extracted snippets.
func NewMatcher(maxSnippetChars int) *Matcher {
	return &Matcher{maxSnippetChars: maxSnippetChars}
}

// Match returns the strongest tier the content satisfies and its score,
// or ok=false when the content matches no tier.
func (m *Matcher) Match(content string, q domain.Query) (domain.Tier, int, bool) {
	lower := strings.ToLower(content)
	phrase := strings.ToLower(q.Raw)

	// 1. Exact: the full query appears as a contiguous substring.
	if phrase != "" {
		if n := strings.Count(lower, phrase); n > 0 {
			return domain.TierExact, 1000 + 100*n, true
		}
	}

	occurrences := 0
	for _, tok := range q.Tokens {
		occurrences += strings.Count(lower, tok)
	}

	// 2. Proximity phrase: all tokens occur near the first token.
	if len(q.Tokens) >= 2 && inProximity(lower, q.Tokens) {
		return domain.TierProximity, 500 + 10*occurrences, true
	}

	// 3. All keywords: every token occurs somewhere in the content.
	for _, tok := range q.Tokens {
		if !strings.Contains(lower, tok) {
			return 0, 0, false
		}
	}
	return domain.TierKeyword, 5 * occurrences, true
}

// inProximity reports whether some occurrence of the first token has every
// other token occurring within proximityWindow whitespace-delimited words.
// Word positions use whole-word comparison after stripping non-word runes,
// which is stricter than the substring containment of the keyword tier.
func inProximity(lower string, tokens []string) bool {
	positions := make(map[string][]int, len(tokens))
	for _, tok := range tokens {
		positions[tok] = nil
	}

	for i, word := range strings.Fields(lower) {
		word = stripNonWord(word)
		if _, wanted := positions[word]; wanted {
			positions[word] = append(positions[word], i)
		}
	}

	for _, occ := range positions {
		if len(occ) == 0 {
			return false
		}
	}

	for _, anchor := range positions[tokens[0]] {
		allNear := true
		for _, tok := range tokens[1:] {
			near := false
			for _, pos := range positions[tok] {
				if abs(pos-anchor) <= proximityWindow {
					near = true
					break
				}
			}
			if !near {
				allNear = false
				break
			}
		}
		if allNear {
			return true
		}
	}
	return false
}

// stripNonWord removes every rune that is not a letter, digit or underscore.
func stripNonWord(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
