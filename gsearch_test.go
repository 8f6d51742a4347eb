package gsearch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coregx/gsearch/internal/corpus"
)

func TestIndexLiteralScenarios(t *testing.T) {
	tests := []struct {
		text    string
		pattern string
		want    int
	}{
		{"abbaababx", "abab", 4},
		{"substrinstring", "string", 8},
		{"", "", 0},
		{"", "aaaaaa", -1},
		{"bbbaaaaaaaaaaaaaaaaaaa", "aaaaaa", 3},
		{"abc", "", 0},
		{"abc", "abcd", -1},
		{"abc", "abc", 0},
		{"aaaaab", "aab", 3},
		{"ananananananananan in the face", "an in", 16},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.pattern, func(t *testing.T) {
			if got := Index([]byte(tt.text), []byte(tt.pattern)); got != tt.want {
				t.Errorf("Index(%q, %q) = %d, want %d", tt.text, tt.pattern, got, tt.want)
			}
			if got := IndexBytes([]byte(tt.text), []byte(tt.pattern)); got != tt.want {
				t.Errorf("IndexBytes(%q, %q) = %d, want %d", tt.text, tt.pattern, got, tt.want)
			}
			if got := IndexString(tt.text, tt.pattern); got != tt.want {
				t.Errorf("IndexString(%q, %q) = %d, want %d", tt.text, tt.pattern, got, tt.want)
			}
			if got := Contains([]byte(tt.text), []byte(tt.pattern)); got != (tt.want >= 0) {
				t.Errorf("Contains(%q, %q) = %v", tt.text, tt.pattern, got)
			}
		})
	}
}

func TestIndexSelfMatch(t *testing.T) {
	g := corpus.NewGen(1)
	for i := 0; i < 500; i++ {
		s := []byte(g.Periodic("abc"))
		if got := Index(s, s); got != 0 {
			t.Fatalf("Index(s, s) = %d for %q", got, s)
		}
	}
}

func TestIndexEmptyPattern(t *testing.T) {
	for _, text := range [][]int{nil, {}, {1}, {1, 2, 3}} {
		if got := Index(text, nil); got != 0 {
			t.Errorf("Index(%v, nil) = %d, want 0", text, got)
		}
		if got := Index(text, []int{}); got != 0 {
			t.Errorf("Index(%v, []) = %d, want 0", text, got)
		}
	}
}

func TestIndexLengthGuard(t *testing.T) {
	g := corpus.NewGen(2)
	for i := 0; i < 200; i++ {
		pattern := []byte(g.Word("ab", 30))
		if len(pattern) == 0 {
			continue
		}
		text := pattern[:g.IntN(len(pattern))]
		if got := Index(text, pattern); got != -1 {
			t.Fatalf("Index(%q, %q) = %d, want -1", text, pattern, got)
		}
	}
}

// TestIndexKnownSubstring plants a random sub-range of the text as the
// pattern: the result must exist, lie at or before the planted offset, and
// really match.
func TestIndexKnownSubstring(t *testing.T) {
	g := corpus.NewGen(3)
	for i := 0; i < 3000; i++ {
		var text string
		switch i % 3 {
		case 0:
			text = g.Periodic("ab")
		case 1:
			text = g.Fib()
		default:
			text = g.LSys()
		}
		lo, hi := g.Substring(text)
		pattern := text[lo:hi]

		got := Index([]byte(text), []byte(pattern))
		if got < 0 || got > lo {
			t.Fatalf("Index(%q, %q) = %d, planted at %d", text, pattern, got, lo)
		}
		if text[got:got+len(pattern)] != pattern {
			t.Fatalf("Index(%q, %q) = %d is not an occurrence", text, pattern, got)
		}
	}
}

func TestIndexPeriodicStress(t *testing.T) {
	for n := 1; n <= 40; n++ {
		ab := []byte(strings.Repeat("ab", n))
		if got := Index(ab, ab); got != 0 {
			t.Fatalf("n=%d: Index(ab^n, ab^n) = %d, want 0", n, got)
		}

		text, pattern := corpus.PeriodicStress(n)
		want := corpus.BruteForce([]byte(text), []byte(pattern))
		if got := Index([]byte(text), []byte(pattern)); got != want {
			t.Fatalf("n=%d: Index = %d, want %d", n, got, want)
		}
		if got := IndexString(text, pattern); got != want {
			t.Fatalf("n=%d: IndexString = %d, want %d", n, got, want)
		}
	}
}

func TestIndexMatchesBruteForce(t *testing.T) {
	g := corpus.NewGen(4)
	for i := 0; i < 5000; i++ {
		var text, pattern string
		switch i % 4 {
		case 0:
			text, pattern = g.Word("ab", 50), g.Word("ab", 8)
		case 1:
			text, pattern = g.Fib(), g.Fib()
		case 2:
			text = g.LSys()
			pattern = g.LSys()
		default:
			text = g.Periodic("ab") + g.Periodic("ab")
			p := g.Periodic("ab")
			pattern = p[g.IntN(len(p)):]
		}
		want := corpus.BruteForce([]byte(text), []byte(pattern))
		if got := Index([]byte(text), []byte(pattern)); got != want {
			t.Fatalf("Index(%q, %q) = %d, want %d", text, pattern, got, want)
		}
		if got := IndexBytes([]byte(text), []byte(pattern)); got != want {
			t.Fatalf("IndexBytes(%q, %q) = %d, want %d", text, pattern, got, want)
		}
		if got := bytes.Index([]byte(text), []byte(pattern)); got != want {
			t.Fatalf("bytes.Index disagrees with brute force on %q, %q", text, pattern)
		}
	}
}

// TestIndexWideElements searches sequences of int16, where the elements
// are not bytes and no byte prefilter applies.
func TestIndexWideElements(t *testing.T) {
	widen := func(s string) []int16 {
		out := make([]int16, len(s))
		for i := range s {
			out[i] = int16(s[i]) * 257
		}
		return out
	}

	g := corpus.NewGen(5)
	for i := 0; i < 2000; i++ {
		s := g.Periodic("ab")
		text := widen(s)
		var pattern []int16
		if i%2 == 0 {
			lo, hi := g.Substring(s)
			pattern = text[lo:hi]
		} else {
			pattern = widen(g.Word("ab", 10))
		}
		want := corpus.BruteForce(text, pattern)
		if got := Index(text, pattern); got != want {
			t.Fatalf("Index(%v, %v) = %d, want %d", text, pattern, got, want)
		}
	}
}

func TestIndexFunc(t *testing.T) {
	fold := func(a, b byte) bool { return a|0x20 == b|0x20 }

	tests := []struct {
		text    string
		pattern string
		want    int
	}{
		{"Hello World", "WORLD", 6},
		{"AbAbAbAbAbAbAbX", "ababx", 10},
		{"xyz", "", 0},
		{"xyz", "Q", -1},
	}

	for _, tt := range tests {
		got := IndexFunc([]byte(tt.text), []byte(tt.pattern), fold)
		if got != tt.want {
			t.Errorf("IndexFunc(%q, %q, fold) = %d, want %d", tt.text, tt.pattern, got, tt.want)
		}
	}
}

func TestIndexFuncStructs(t *testing.T) {
	type event struct {
		kind string
		at   int
	}
	sameKind := func(a, b event) bool { return a.kind == b.kind }

	log := []event{{"open", 1}, {"read", 2}, {"open", 3}, {"read", 4}, {"close", 5}}
	pattern := []event{{kind: "open"}, {kind: "read"}, {kind: "close"}}
	if got := IndexFunc(log, pattern, sameKind); got != 2 {
		t.Errorf("IndexFunc = %d, want 2", got)
	}
}

func BenchmarkIndexBytes(b *testing.B) {
	text := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 1000)
	text = append(text, "Galil-Seiferas"...)
	pattern := []byte("Galil-Seiferas")

	b.Run("gsearch", func(b *testing.B) {
		b.SetBytes(int64(len(text)))
		for i := 0; i < b.N; i++ {
			_ = IndexBytes(text, pattern)
		}
	})

	b.Run("generic", func(b *testing.B) {
		b.SetBytes(int64(len(text)))
		for i := 0; i < b.N; i++ {
			_ = Index(text, pattern)
		}
	})

	b.Run("stdlib", func(b *testing.B) {
		b.SetBytes(int64(len(text)))
		for i := 0; i < b.N; i++ {
			_ = bytes.Index(text, pattern)
		}
	})
}

func BenchmarkIndexPeriodic(b *testing.B) {
	text, pattern := corpus.PeriodicStress(200)
	tb, pb := []byte(text), []byte(pattern)
	b.SetBytes(int64(len(tb)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Index(tb, pb)
	}
}
