package corpus

import (
	"fmt"
	"testing"
)

func TestBruteForce(t *testing.T) {
	tests := []struct {
		text, pattern string
		want          int
	}{
		{"abcabcd", "abc", 0},
		{"abcabcd", "abcd", 3},
		{"ab", "abc", -1},
		{"", "", 0},
		{"abc", "", 0},
		{"", "a", -1},
	}
	for _, tt := range tests {
		if got := BruteForce([]byte(tt.text), []byte(tt.pattern)); got != tt.want {
			t.Errorf("BruteForce(%q, %q) = %d, want %d", tt.text, tt.pattern, got, tt.want)
		}
	}
}

func TestBruteForceAll(t *testing.T) {
	got := BruteForceAll([]byte("aaaa"), []byte("aa"))
	if fmt.Sprint(got) != "[0 1 2]" {
		t.Errorf("BruteForceAll overlapping = %v", got)
	}
	got = BruteForceAll([]byte("ab"), []byte{})
	if fmt.Sprint(got) != "[0 1 2]" {
		t.Errorf("BruteForceAll empty pattern = %v", got)
	}
}

func TestFibWord(t *testing.T) {
	for n, want := range []string{"a", "ab", "aba", "abaab", "abaababa"} {
		if got := FibWord(n); got != want {
			t.Errorf("FibWord(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestLSystem(t *testing.T) {
	for n, want := range []string{"0", "100", "11100100"} {
		if got := LSystem(n); got != want {
			t.Errorf("LSystem(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestPeriodicStress(t *testing.T) {
	text, pattern := PeriodicStress(3)
	if text != "ababbbababbbababbb" || pattern != "ababab" {
		t.Errorf("PeriodicStress(3) = (%q, %q)", text, pattern)
	}
}

func TestSmallestPeriod(t *testing.T) {
	for s, want := range map[string]int{"": 0, "a": 1, "abab": 2, "abaab": 3, "abc": 3} {
		if got := SmallestPeriod([]byte(s)); got != want {
			t.Errorf("SmallestPeriod(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestGenDeterministic(t *testing.T) {
	a, b := NewGen(42), NewGen(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Word("ab", 20), b.Word("ab", 20); x != y {
			t.Fatalf("same seed diverged at %d: %q vs %q", i, x, y)
		}
	}

	g := NewGen(1)
	for i := 0; i < 100; i++ {
		s := g.Periodic("ab")
		lo, hi := g.Substring(s)
		if lo < 0 || lo > hi || hi > len(s) {
			t.Fatalf("Substring(%q) = [%d, %d)", s, lo, hi)
		}
	}
}
