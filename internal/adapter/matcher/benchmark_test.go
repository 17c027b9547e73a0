package matcher

import (
	"strings"
	"testing"

	"sift/internal/domain"
)

func benchmarkContent() string {
	var b strings.Builder
	for i := 0; i < 500; i++ {
		b.WriteString("the system recorded a calibration sample during the sweep. ")
		if i%37 == 0 {
			b.WriteString("pulse width drifted beyond tolerance near the antenna. ")
		}
	}
	return b.String()
}

func BenchmarkMatch(b *testing.B) {
	m := NewMatcher(200)
	content := benchmarkContent()
	q := domain.Query{Raw: "pulse width", Tokens: []string{"pulse", "width"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Match(content, q)
	}
}

func BenchmarkMatchNoHit(b *testing.B) {
	m := NewMatcher(200)
	content := benchmarkContent()
	q := domain.Query{Raw: "missing phrase", Tokens: []string{"missing", "phrase"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Match(content, q)
	}
}

func BenchmarkSnippet(b *testing.B) {
	m := NewMatcher(200)
	content := benchmarkContent()
	q := domain.Query{Raw: "pulse width", Tokens: []string{"pulse", "width"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Snippet(content, q, domain.TierProximity)
	}
}
