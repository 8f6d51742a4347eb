package gsearch

import (
	"iter"

	"github.com/coregx/gsearch/factor"
	"github.com/coregx/gsearch/period"
	"github.com/coregx/gsearch/prefilter"
)

// Searcher is a pattern decomposed once for repeated searches.
//
// A Searcher is safe to use concurrently from multiple goroutines, except
// for ResetStats. It borrows the pattern slice, which must not be modified
// while the Searcher is in use.
//
// Example:
//
//	s := gsearch.Compile([]byte("needle"))
//	for _, doc := range docs {
//	    if s.Contains(doc) {
//	        println("found")
//	    }
//	}
type Searcher[T any] struct {
	stats counters

	pattern []T
	eq      func(a, b T) bool
	f       factor.Factorization
	k       int

	// newSkipper builds the per-search prefilter state, or is nil.
	newSkipper func(t *tally) skipper[T]
}

// Compile decomposes pattern with the default configuration.
//
// Compile never fails. It does not attach a prefilter, even for byte
// patterns; use CompileBytes for that.
func Compile[T comparable](pattern []T) *Searcher[T] {
	return newSearcher(pattern, equal[T], period.DefaultK)
}

// CompileFunc is like Compile but compares elements with eq, which must be
// an equivalence relation.
func CompileFunc[T any](pattern []T, eq func(a, b T) bool) *Searcher[T] {
	return newSearcher(pattern, eq, period.DefaultK)
}

// CompileWithConfig decomposes pattern with a custom configuration.
// Returns an error if the configuration is invalid.
//
// Example:
//
//	config := gsearch.DefaultConfig()
//	config.K = 4
//	s, err := gsearch.CompileWithConfig([]int{1, 2, 1, 2}, config)
func CompileWithConfig[T comparable](pattern []T, config Config) (*Searcher[T], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newSearcher(pattern, equal[T], config.K), nil
}

// CompileBytes is CompileWithConfig for byte patterns. When
// config.EnablePrefilter is set, searches jump between offsets where the
// rarest bytes of the pattern line up.
func CompileBytes(pattern []byte, config Config) (*Searcher[byte], error) {
	s, err := CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	if !config.EnablePrefilter {
		return s, nil
	}

	_, v := factor.Parts(pattern, s.f)
	if pf := prefilter.New(v); pf != nil {
		tc := config.Tracker
		s.newSkipper = func(t *tally) skipper[byte] {
			return newPrefilterSkipper(pf, tc, t)
		}
	}
	return s, nil
}

func newSearcher[T any](pattern []T, eq func(a, b T) bool, k int) *Searcher[T] {
	return &Searcher[T]{
		pattern: pattern,
		eq:      eq,
		f:       factor.DecomposeFunc(k, pattern, eq),
		k:       k,
	}
}

// Index returns the index of the first occurrence of the pattern in text,
// or -1 if it is not present.
func (s *Searcher[T]) Index(text []T) int {
	at := -1
	s.run(text, func(i int) bool {
		at = i
		return false
	})
	return at
}

// Contains reports whether the pattern occurs in text.
func (s *Searcher[T]) Contains(text []T) bool {
	return s.Index(text) >= 0
}

// All returns an iterator over the indices of every occurrence of the
// pattern in text, overlapping ones included, in ascending order. An empty
// pattern occurs at every index from 0 to len(text).
//
// The sequence is lazy: each step resumes the scan where the previous one
// stopped. Ranging over it again starts a new search.
//
// Example:
//
//	s := gsearch.Compile([]byte("aa"))
//	for i := range s.All([]byte("aaaa")) {
//	    fmt.Println(i) // 0, 1, 2
//	}
func (s *Searcher[T]) All(text []T) iter.Seq[int] {
	return func(yield func(int) bool) {
		s.run(text, yield)
	}
}

// Count returns the number of occurrences of the pattern in text,
// overlapping ones included.
func (s *Searcher[T]) Count(text []T) int {
	n := 0
	s.run(text, func(int) bool {
		n++
		return true
	})
	return n
}

// Pattern returns the pattern the Searcher was compiled from.
func (s *Searcher[T]) Pattern() []T {
	return s.pattern
}

// Factorization returns the perfect factorization of the pattern.
func (s *Searcher[T]) Factorization() factor.Factorization {
	return s.f
}

// Stats returns execution statistics.
//
// Example:
//
//	stats := s.Stats()
//	println("searches:", stats.Searches)
//	println("prefix rejects:", stats.PrefixRejects)
func (s *Searcher[T]) Stats() Stats {
	return s.stats.snapshot()
}

// ResetStats resets execution statistics to zero.
func (s *Searcher[T]) ResetStats() {
	s.stats.reset()
}

// run performs one search and folds its statistics into s.
func (s *Searcher[T]) run(text []T, yield func(int) bool) {
	var t tally
	defer s.stats.add(&t)

	var sk skipper[T]
	if s.newSkipper != nil && len(s.pattern) <= len(text) {
		sk = s.newSkipper(&t)
	}
	search(text, s.pattern, s.f, s.k, s.eq, sk, &t, yield)
}
