package analyzer

import (
	"strings"
	"unicode"

	"sift/internal/domain"
)

// Tokenizer extracts normalized keyword tokens from raw query strings.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// ParseQuery derives a Query from a raw query string: tokens are split on
// non-word boundaries, lower-cased, and dropped when shorter than 2
// characters. Order and duplicates are preserved so the first token can
// serve as the proximity anchor. Returns ErrEmptyQuery when nothing
// survives filtering.
func (t *Tokenizer) ParseQuery(raw string) (domain.Query, error) {
	words := splitWords(raw)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		word = strings.ToLower(word)
		if len(word) < 2 {
			continue
		}
		tokens = append(tokens, word)
	}

	if len(tokens) == 0 {
		return domain.Query{}, domain.ErrEmptyQuery
	}

	return domain.Query{
		Raw:    strings.TrimSpace(raw),
		Tokens: tokens,
	}, nil
}

// splitWords splits text into words using unicode word boundaries.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
