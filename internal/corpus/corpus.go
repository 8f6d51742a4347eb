// Package corpus provides the reference search and the adversarial text
// generators used to validate the search packages.
//
// Nothing here is on the search path. The reference search is the quadratic
// scan every result is compared against, and the generators produce highly
// periodic words (Fibonacci words, L-system rewrites, repeated blocks) that
// exercise every branch of the periodicity bookkeeping.
package corpus

import (
	"math/rand/v2"
	"strings"
)

// BruteForce returns the lowest index at which pattern occurs in text, or -1.
// It is the O(n*m) reference implementation.
func BruteForce[T comparable](text, pattern []T) int {
	n, m := len(text), len(pattern)
	if m > n {
		return -1
	}
outer:
	for i := 0; i+m <= n; i++ {
		for j := 0; j < m; j++ {
			if text[i+j] != pattern[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

// BruteForceAll returns every (possibly overlapping) occurrence of pattern in
// text in ascending order. An empty pattern occurs at every index 0..len(text).
func BruteForceAll[T comparable](text, pattern []T) []int {
	var out []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if BruteForce(text[i:i+len(pattern)], pattern) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// FibWord returns the n-th Fibonacci word over {a, b}:
// S0 = "a", S1 = "ab", Sn = Sn-1 Sn-2.
func FibWord(n int) string {
	var sb strings.Builder
	writeFib(n, &sb)
	return sb.String()
}

func writeFib(n int, sb *strings.Builder) {
	switch n {
	case 0:
		sb.WriteString("a")
	case 1:
		sb.WriteString("ab")
	default:
		writeFib(n-1, sb)
		writeFib(n-2, sb)
	}
}

// LSystem returns generation n of the rewriting system with axiom "0" and
// rules 0 -> 100, 1 -> 11. Other symbols are constants.
func LSystem(n int) string {
	cur := "0"
	var next strings.Builder
	for g := 0; g < n; g++ {
		next.Reset()
		for i := 0; i < len(cur); i++ {
			switch cur[i] {
			case '0':
				next.WriteString("100")
			case '1':
				next.WriteString("11")
			default:
				next.WriteByte(cur[i])
			}
		}
		cur = next.String()
	}
	return cur
}

// PeriodicStress returns the text and pattern of the scope-boundary
// regression class: ("ab"^(n-1) + "bb")^n searched for "ab"^n.
func PeriodicStress(n int) (text, pattern string) {
	text = strings.Repeat(strings.Repeat("ab", n-1)+"bb", n)
	pattern = strings.Repeat("ab", n)
	return text, pattern
}

// Gen draws random words from a deterministic source.
type Gen struct {
	r *rand.Rand
}

// NewGen returns a generator seeded with seed.
func NewGen(seed uint64) *Gen {
	return &Gen{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform int in [0, n).
func (g *Gen) IntN(n int) int {
	return g.r.IntN(n)
}

// Word returns a word of length [0, maxLen] over the bytes of alphabet.
func (g *Gen) Word(alphabet string, maxLen int) string {
	n := g.r.IntN(maxLen + 1)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.r.IntN(len(alphabet))]
	}
	return string(b)
}

// Periodic returns a word built from a random block repeated a random number
// of times, followed by a short random tail, the whole thing repeated.
// These words have long, nested periodic prefixes.
func (g *Gen) Periodic(alphabet string) string {
	block := g.Word(alphabet, 3) + alphabet[:1]
	tail := g.Word(alphabet, 3)
	unit := strings.Repeat(block, 1+g.r.IntN(8)) + tail
	return strings.Repeat(unit, 1+g.r.IntN(4))
}

// Fib returns a Fibonacci word of generation < 12, optionally followed by a
// shorter one.
func (g *Gen) Fib() string {
	s := FibWord(g.r.IntN(12))
	if g.r.IntN(2) == 0 {
		s += FibWord(g.r.IntN(8))
	}
	return s
}

// LSys returns a concatenation of short L-system generations, each repeated
// one to five times.
func (g *Gen) LSys() string {
	var sb strings.Builder
	for n := 1 + g.r.IntN(3); n > 0; n-- {
		w := LSystem(g.r.IntN(6))
		for r := 1 + g.r.IntN(5); r > 0; r-- {
			sb.WriteString(w)
		}
	}
	return sb.String()
}

// Substring returns a random sub-range [lo, hi) of s.
func (g *Gen) Substring(s string) (lo, hi int) {
	lo = g.r.IntN(len(s) + 1)
	hi = lo + g.r.IntN(len(s)-lo+1)
	return lo, hi
}

// SmallestPeriod returns the smallest period of s, or 0 for an empty s.
func SmallestPeriod[T comparable](s []T) int {
	for p := 1; p <= len(s); p++ {
		ok := true
		for i := p; i < len(s); i++ {
			if s[i] != s[i-p] {
				ok = false
				break
			}
		}
		if ok {
			return p
		}
	}
	return 0
}
