// Package prefilter finds candidate positions for a byte pattern before the
// full search verifies them.
//
// A prefilter anchors on the rarest bytes of the pattern (see
// simd.SelectRareBytes) and reports the next offset at which those bytes line
// up with the haystack. Every real occurrence is a candidate, but not every
// candidate is an occurrence: the caller must still verify.
//
// The prefilter only ever skips offsets that cannot start an occurrence, so it
// composes with the constant-space search: the search consults it whenever it
// holds no partial match and jumps straight to the returned offset.
//
// Example usage:
//
//	pf := prefilter.New([]byte("@example.com"))
//	haystack := []byte("mail alice@example.com today")
//	pos := pf.Find(haystack, 0)
//	// pos == 10, where '@' and 'x' line up
package prefilter

import (
	"github.com/coregx/gsearch/simd"
)

// Prefilter quickly finds candidate offsets of one pattern in a haystack.
type Prefilter interface {
	// Find returns the smallest offset >= start at which the pattern may
	// occur in haystack, or -1 if it cannot occur at or after start.
	//
	// A returned offset always leaves room for the whole pattern:
	// offset+PatternLen() <= len(haystack).
	Find(haystack []byte, start int) int

	// PatternLen returns the length of the pattern the prefilter was built
	// for.
	PatternLen() int
}

// New builds a prefilter for pattern, or returns nil if pattern is empty.
//
// One-byte patterns get a memchr prefilter; longer patterns get a pair
// prefilter on their two rarest positions. The prefilter keeps no reference
// to pattern.
func New(pattern []byte) Prefilter {
	switch len(pattern) {
	case 0:
		return nil
	case 1:
		return &memchrPrefilter{b: pattern[0], n: 1}
	}
	return &pairPrefilter{rare: simd.SelectRareBytes(pattern), n: len(pattern)}
}

// memchrPrefilter anchors on a single byte.
type memchrPrefilter struct {
	b byte
	n int
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 {
		start = 0
	}
	last := len(haystack) - p.n // last offset with room for the pattern
	if start > last {
		return -1
	}
	i := simd.Memchr(haystack[start:last+1], p.b)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memchrPrefilter) PatternLen() int {
	return p.n
}

// pairPrefilter anchors on two pattern positions at a fixed distance.
type pairPrefilter struct {
	rare simd.RareByteInfo
	n    int
}

func (p *pairPrefilter) Find(haystack []byte, start int) int {
	if start < 0 {
		start = 0
	}
	last := len(haystack) - p.n
	if start > last {
		return -1
	}
	r := p.rare
	// The window holds every Byte1 position of offsets start..last and
	// every matching Byte2 position.
	window := haystack[start+r.Index1 : last+r.Index2+1]
	i := simd.MemchrPair(window, r.Byte1, r.Byte2, r.Offset())
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *pairPrefilter) PatternLen() int {
	return p.n
}
