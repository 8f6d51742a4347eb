// Package gsearch provides constant-space, linear-time substring search over
// sequences whose elements can only be compared for equality.
//
// The search is the Galil-Seiferas algorithm. A pattern is first factored
// into u ++ v, where v has at most one highly repeating prefix (HRP) and u is
// short. v is then scanned for with shifts that only need v's single HRP,
// and each candidate is confirmed by comparing u in place. Every search runs
// in O(len(text)+len(pattern)) element comparisons and keeps a handful of
// integers of state: no tables, no copies of the pattern, no requirement
// that elements be ordered or hashable.
//
// Basic usage:
//
//	// Find the first occurrence
//	i := gsearch.Index([]int{3, 1, 4, 1, 5, 9}, []int{1, 5})
//	fmt.Println(i) // 3
//
//	// Compare with a custom predicate
//	fold := func(a, b byte) bool { return a|0x20 == b|0x20 }
//	i = gsearch.IndexFunc([]byte("Hello World"), []byte("WORLD"), fold)
//	fmt.Println(i) // 6
//
// Reusing a pattern:
//
//	// Decompose once, search many texts (safe for concurrent use)
//	s := gsearch.Compile([]byte("abab"))
//	for i := range s.All([]byte("abababab")) {
//	    fmt.Println(i) // 0, 2, 4
//	}
//
// Byte searches:
//
//	// IndexBytes, IndexString and CompileBytes add a rare-byte prefilter
//	// that jumps over offsets where the pattern cannot start.
//	i = gsearch.IndexString("the quick brown fox", "fox")
//
// Performance characteristics:
//   - Worst case O(n+m) comparisons, including highly periodic inputs
//   - O(1) auxiliary memory per search
//   - Byte searches on natural text skip most offsets via memchr
package gsearch

import (
	"unsafe"

	"github.com/coregx/gsearch/factor"
	"github.com/coregx/gsearch/period"
	"github.com/coregx/gsearch/prefilter"
	"github.com/coregx/gsearch/scan"
)

// Index returns the index of the first occurrence of pattern in text, or -1
// if pattern is not present. An empty pattern occurs at index 0.
//
// Example:
//
//	i := gsearch.Index([]string{"a", "b", "c"}, []string{"b", "c"})
//	// i == 1
func Index[T comparable](text, pattern []T) int {
	return IndexFunc(text, pattern, equal[T])
}

// IndexFunc is like Index but compares elements with eq, which must be an
// equivalence relation.
func IndexFunc[T any](text, pattern []T, eq func(a, b T) bool) int {
	if i, ok := trivialIndex(text, pattern); ok {
		return i
	}
	f := factor.DecomposeFunc(period.DefaultK, pattern, eq)
	return first(text, pattern, f, period.DefaultK, eq, nil)
}

// Contains reports whether pattern occurs in text.
func Contains[T comparable](text, pattern []T) bool {
	return Index(text, pattern) >= 0
}

// IndexBytes returns the index of the first occurrence of pattern in text,
// or -1. It returns the same result as bytes.Index and uses the rare-byte
// prefilter with the default configuration.
func IndexBytes(text, pattern []byte) int {
	if i, ok := trivialIndex(text, pattern); ok {
		return i
	}
	f := factor.Decompose(period.DefaultK, pattern)
	_, v := factor.Parts(pattern, f)
	pf := prefilter.New(v)
	cfg := prefilter.DefaultTrackerConfig()
	return first(text, pattern, f, period.DefaultK, equal[byte], func(t *tally) skipper[byte] {
		return newPrefilterSkipper(pf, cfg, t)
	})
}

// IndexString is IndexBytes for strings. Neither string is copied.
//
// Example:
//
//	i := gsearch.IndexString("chicken", "ken")
//	// i == 4
func IndexString(text, pattern string) int {
	return IndexBytes(bytesOf(text), bytesOf(pattern))
}

// bytesOf returns a read-only view of s.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// trivialIndex answers the cases that need no decomposition.
func trivialIndex[T any](text, pattern []T) (int, bool) {
	switch {
	case len(pattern) == 0:
		return 0, true
	case len(pattern) > len(text):
		return -1, true
	}
	return 0, false
}

// first returns the first occurrence reported by search, or -1.
func first[T any](text, pattern []T, f factor.Factorization, k int, eq func(a, b T) bool, newSkipper func(*tally) skipper[T]) int {
	var t tally
	var sk skipper[T]
	if newSkipper != nil {
		sk = newSkipper(&t)
	}
	at := -1
	search(text, pattern, f, k, eq, sk, &t, func(i int) bool {
		at = i
		return false
	})
	return at
}

// skipper is the per-search candidate filter attached to a scan.
type skipper[T any] interface {
	// skip implements scan.SkipFunc.
	skip(text []T, pos int) int
	// confirm records that the scan found an occurrence of v.
	confirm()
}

// search calls yield with every occurrence of pattern in text, in ascending
// order, until yield returns false. f must be the factorization of pattern
// under eq with threshold k.
func search[T any](text, pattern []T, f factor.Factorization, k int, eq func(a, b T) bool, sk skipper[T], t *tally, yield func(int) bool) {
	n, m := len(text), len(pattern)
	if m == 0 {
		for i := 0; i <= n; i++ {
			t.matches++
			if !yield(i) {
				return
			}
		}
		return
	}
	if m > n {
		return
	}

	// An occurrence of pattern at i is an occurrence of v at i+len(u) in
	// text, that is at i in text[len(u):], preceded by u.
	u, v := factor.Parts(pattern, f)
	s := scan.NewFunc(text[len(u):], v, f.Hrp, k, eq)
	if sk != nil {
		s.WithSkip(sk.skip)
	}

	var c scan.Cursor
	for {
		i := s.Next(&c)
		if i < 0 {
			return
		}
		t.candidates++
		if sk != nil {
			sk.confirm()
		}
		if !hasPrefix(text[i:], u, eq) {
			t.prefixRejects++
			continue
		}
		t.matches++
		if !yield(i) {
			return
		}
	}
}

func hasPrefix[T any](s, prefix []T, eq func(a, b T) bool) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := range prefix {
		if !eq(s[i], prefix[i]) {
			return false
		}
	}
	return true
}

func equal[T comparable](a, b T) bool {
	return a == b
}

// prefilterSkipper drives a byte prefilter through an effectiveness
// tracker. Once the tracker retires the prefilter, every offset is scanned.
type prefilterSkipper struct {
	tracker *prefilter.Tracker
	t       *tally
}

func newPrefilterSkipper(pf prefilter.Prefilter, cfg prefilter.TrackerConfig, t *tally) skipper[byte] {
	tracker := prefilter.NewTrackerWithConfig(pf, cfg)
	if tracker == nil {
		return nil
	}
	return &prefilterSkipper{tracker: tracker, t: t}
}

func (p *prefilterSkipper) skip(text []byte, pos int) int {
	if !p.tracker.IsActive() {
		return pos
	}
	next := p.tracker.Find(text, pos)
	if next >= 0 {
		p.t.prefilterSkips++
	}
	if !p.tracker.IsActive() {
		p.t.prefilterAbandoned++
	}
	return next
}

func (p *prefilterSkipper) confirm() {
	p.tracker.ConfirmMatch()
}
