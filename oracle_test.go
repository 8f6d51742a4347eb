package gsearch

import (
	"testing"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/gsearch/internal/corpus"
)

// TestIndexBytesAgreesWithAhoCorasick checks IndexBytes against an
// independent automaton built for the single pattern.
func TestIndexBytesAgreesWithAhoCorasick(t *testing.T) {
	g := corpus.NewGen(8)
	for i := 0; i < 1000; i++ {
		var text, pattern string
		switch i % 3 {
		case 0:
			text = g.Word("abc", 100)
			pattern = g.Word("abc", 5)
		case 1:
			text = g.Fib() + g.LSys()
			lo, hi := g.Substring(text)
			pattern = text[lo:hi]
		default:
			text = g.Periodic("ab")
			pattern = g.Periodic("ab")
		}
		if pattern == "" {
			continue
		}

		builder := ahocorasick.NewBuilder()
		builder.AddPattern([]byte(pattern))
		auto, err := builder.Build()
		if err != nil {
			t.Fatalf("building automaton for %q: %v", pattern, err)
		}

		want := -1
		if m := auto.Find([]byte(text), 0); m != nil {
			want = m.Start
		}
		if got := IndexBytes([]byte(text), []byte(pattern)); got != want {
			t.Fatalf("IndexBytes(%q, %q) = %d, automaton says %d", text, pattern, got, want)
		}
		if got := Contains([]byte(text), []byte(pattern)); got != auto.IsMatch([]byte(text)) {
			t.Fatalf("Contains(%q, %q) = %v, automaton disagrees", text, pattern, got)
		}
	}
}
