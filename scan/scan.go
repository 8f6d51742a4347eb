// Package scan finds the occurrences of a k-simple pattern in a text.
//
// A k-simple pattern has at most one highly repeating prefix. Its scope is the
// only periodicity the search ever has to remember: after a mismatch with j
// elements matched, the pattern is shifted by the HRP period when j lies in the
// scope (keeping j-period elements matched), and by j/k+1 otherwise. Both
// shifts are safe, and the total work is linear in the text. The whole search
// state is two integers, kept in a Cursor so that successive calls enumerate
// successive occurrences without rescanning.
//
// Patterns that are not k-simple must first be factored with package factor.
package scan

import "github.com/coregx/gsearch/period"

// Cursor is the state of one in-progress search: the text offset Pos and the
// number J of pattern elements already verified at that offset.
//
// The zero Cursor starts at the beginning of the text. A Cursor belongs to a
// single search and must not be shared.
type Cursor struct {
	Pos int
	J   int
}

// SkipFunc returns the smallest position >= pos at which an occurrence of the
// pattern may start in text, or -1 if there is none. It must never skip an
// actual occurrence.
type SkipFunc[T any] func(text []T, pos int) int

// Scanner searches one text for one k-simple pattern.
//
// A Scanner holds only borrowed views of its text and pattern plus a few
// integers; it never allocates during the search.
type Scanner[T any] struct {
	text    []T
	pattern []T
	hrp     period.Hrp
	k       int
	eq      func(a, b T) bool
	skip    SkipFunc[T]
}

// New returns a Scanner for pattern over text. h must be the only k-HRP of
// pattern (the zero Hrp if it has none), as computed by factor.Decompose.
func New[T comparable](text, pattern []T, h period.Hrp, k int) *Scanner[T] {
	return NewFunc(text, pattern, h, k, func(a, b T) bool { return a == b })
}

// NewFunc is like New but compares elements with eq.
func NewFunc[T any](text, pattern []T, h period.Hrp, k int, eq func(a, b T) bool) *Scanner[T] {
	return &Scanner[T]{
		text:    text,
		pattern: pattern,
		hrp:     h,
		k:       k,
		eq:      eq,
	}
}

// WithSkip installs a skip hook consulted whenever no element is matched at
// the current position. It returns s for chaining.
func (s *Scanner[T]) WithSkip(skip SkipFunc[T]) *Scanner[T] {
	s.skip = skip
	return s
}

// Next returns the position of the next occurrence of the pattern at or
// after the cursor, or -1 when the text is exhausted. On a match the cursor
// is advanced past it, so calling Next again continues the enumeration;
// on exhaustion the cursor is left at its final value.
//
// An empty pattern matches nowhere; callers handle it before scanning.
func (s *Scanner[T]) Next(c *Cursor) int {
	text, pattern := s.text, s.pattern
	n, m := len(text), len(pattern)
	if m == 0 {
		return -1
	}

	pos, j := c.Pos, c.J
	for pos+m <= n {
		if j == 0 && s.skip != nil {
			next := s.skip(text, pos)
			if next < 0 {
				pos = n - m + 1
				break
			}
			pos = next
			if pos+m > n {
				break
			}
		}

		for j < m && s.eq(text[pos+j], pattern[j]) {
			j++
		}

		at := -1
		if j == m {
			at = pos
		}

		if s.hrp.InScope(j) {
			pos += s.hrp.Period
			j -= s.hrp.Period
		} else {
			pos += j/s.k + 1
			j = 0
		}

		if at >= 0 {
			c.Pos, c.J = pos, j
			return at
		}
	}

	c.Pos, c.J = pos, j
	return -1
}

// Reset rewinds c to the beginning of the text.
func (c *Cursor) Reset() {
	c.Pos, c.J = 0, 0
}
