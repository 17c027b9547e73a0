package matcher

import (
	"strings"
	"unicode/utf8"

	"sift/internal/domain"
)

// contextRadius is how many characters of surrounding context a window
// snippet keeps on each side of the matched text.
const contextRadius = 50

const ellipsis = "..."

// Snippet extracts a bounded excerpt illustrating a match that already
// succeeded at the given tier.
func (m *Matcher) Snippet(content string, q domain.Query, tier domain.Tier) string {
	if tier == domain.TierExact {
		return m.phraseSnippet(content, q.Raw)
	}
	return m.keywordSnippet(content, q.Tokens)
}

// phraseSnippet windows around the first case-insensitive occurrence of
// the full query, collapsing whitespace and marking cut edges.
func (m *Matcher) phraseSnippet(content, phrase string) string {
	lower := strings.ToLower(content)
	pos := strings.Index(lower, strings.ToLower(phrase))
	if pos < 0 {
		// Guard only: the exact tier already located the phrase.
		return truncate(content, m.maxSnippetChars) + ellipsis
	}
	return m.window(content, pos, len(phrase))
}

// keywordSnippet picks the sentence-like segment containing the most
// distinct tokens, falling back to a context window around the first
// token occurrence, then to the head of the content.
func (m *Matcher) keywordSnippet(content string, tokens []string) string {
	distinct := distinctTokens(tokens)

	best := ""
	bestScore := 0
	segments := strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		segLower := strings.ToLower(segment)
		score := 0
		for _, tok := range distinct {
			if strings.Contains(segLower, tok) {
				score++
			}
		}
		// Strict comparison keeps the earliest segment on ties.
		if score > bestScore {
			bestScore = score
			best = segment
		}
	}

	if best != "" {
		if len(best) > m.maxSnippetChars {
			return truncate(best, m.maxSnippetChars-len(ellipsis)) + ellipsis
		}
		return best
	}

	lower := strings.ToLower(content)
	for _, tok := range tokens {
		if pos := strings.Index(lower, tok); pos >= 0 {
			return m.window(content, pos, len(tok))
		}
	}

	return truncate(content, m.maxSnippetChars) + ellipsis
}

// window extracts up to contextRadius characters on each side of
// content[pos:pos+length], collapses whitespace runs, and adds ellipsis
// markers when the excerpt does not touch a content boundary.
func (m *Matcher) window(content string, pos, length int) string {
	start := pos - contextRadius
	if start < 0 {
		start = 0
	}
	end := pos + length + contextRadius
	if end > len(content) {
		end = len(content)
	}
	start = runeStart(content, start)
	end = runeStart(content, end)

	snippet := strings.Join(strings.Fields(content[start:end]), " ")
	if start > 0 {
		snippet = ellipsis + snippet
	}
	if end < len(content) {
		snippet = snippet + ellipsis
	}
	return truncate(snippet, m.maxSnippetChars)
}

func distinctTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	distinct := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		distinct = append(distinct, tok)
	}
	return distinct
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return s
	}
	return s[:runeStart(s, n)]
}

// runeStart backs i off to the start of the rune it falls inside.
func runeStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
