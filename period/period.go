// Package period finds highly repeating prefixes (HRPs) of a sequence.
//
// A prefix period of x is a basic (non-power) prefix w of x whose reach is at
// least k times its length: x begins with k or more copies of w, the last one
// possibly partial. Such a prefix is a k-HRP. The finder reports the two
// shortest k-HRPs of a sequence in linear time and constant space, comparing
// elements for equality only. No ordering of the alphabet is assumed.
//
// The scope of an HRP with period p and prefix length l is the interval of
// lengths [2p, l]. Every prefix whose length lies in the scope has period
// exactly p, which is what lets the search reuse matched elements after a
// mismatch without any auxiliary table.
//
// Example:
//
//	first, second := period.Find(period.DefaultK, 1, []byte("aabaabaabaabbbb"))
//	// first == Hrp{Period: 3, Len: 12}, second is the zero Hrp
package period

import "fmt"

// DefaultK is the repetition threshold used by the search: a prefix must hold
// at least three copies of its period block to count as highly repeating.
// Smaller thresholds lose the decomposition guarantees.
const DefaultK = 3

// Hrp is a highly repeating prefix: the prefix of length Len has period Period
// and Len >= k*Period.
//
// The zero value means "no HRP".
type Hrp struct {
	Period int
	Len    int
}

// Valid reports whether h describes an HRP.
func (h Hrp) Valid() bool {
	return h.Period > 0
}

// Scope returns the interval [2*Period, Len] of prefix lengths that carry
// the period of h.
func (h Hrp) Scope() (lo, hi int) {
	return 2 * h.Period, h.Len
}

// InScope reports whether a prefix of length j lies in the scope of h.
// It is always false for the zero Hrp.
func (h Hrp) InScope(j int) bool {
	return h.Period > 0 && 2*h.Period <= j && j <= h.Len
}

// String returns a compact representation, e.g. "hrp(period=3, len=12)".
func (h Hrp) String() string {
	if !h.Valid() {
		return "hrp(none)"
	}
	return fmt.Sprintf("hrp(period=%d, len=%d)", h.Period, h.Len)
}

// Find returns the shortest k-HRP of seq whose period is at least lower, and
// the next one after it. Missing HRPs are returned as zero values.
//
// seq must not have a k-HRP with period below lower; callers that know
// nothing about seq pass lower = 1.
func Find[T comparable](k, lower int, seq []T) (first, second Hrp) {
	return FindFunc(k, lower, seq, equal[T])
}

// FindFunc is like Find but compares elements with eq.
//
// The scan keeps a candidate period p and the number j of elements for which
// seq[j'] == seq[p+j'] holds. A candidate that is not repeating enough is
// abandoned by j/k+1 positions, or by one period of the first HRP when j lies
// in its scope, so that the j elements already compared are never compared
// again more than a constant number of times.
func FindFunc[T any](k, lower int, seq []T, eq func(a, b T) bool) (first, second Hrp) {
	m := len(seq)
	p, j := lower, 0
	if p < 1 {
		p = 1
	}

	for p+j < m {
		for p+j < m && eq(seq[j], seq[p+j]) {
			j++
		}

		if p+j >= k*p {
			h := Hrp{Period: p, Len: p + j}
			if first.Valid() {
				return first, h
			}
			first = h
			// A second basic period overlapping the first by p or more would
			// make both powers of a shorter word, so it must exceed j.
			p, j = j+1, 0
			continue
		}

		if first.InScope(j) {
			p += first.Period
			j -= first.Period
		} else {
			p += j/k + 1
			j = 0
		}
	}
	return first, Hrp{}
}

// Scopes returns the scopes of every k-HRP met by an unbounded scan of seq,
// in the order they are discovered.
//
// Unlike Find it does not stop at the second HRP, and it allocates. It is
// meant for diagnostics and tests, never for the search path.
func Scopes[T comparable](k int, seq []T) []Hrp {
	var scopes []Hrp
	m := len(seq)
	p, j := 1, 0
	for p+j < m {
		for p+j < m && seq[j] == seq[p+j] {
			j++
		}
		if p+j >= k*p {
			scopes = append(scopes, Hrp{Period: p, Len: p + j})
		}

		shift := 0
		for _, s := range scopes {
			if s.InScope(j) {
				shift = s.Period
				break
			}
		}
		if shift > 0 {
			p += shift
			j -= shift
		} else {
			p += j/k + 1
			j = 0
		}
	}
	return scopes
}

func equal[T comparable](a, b T) bool {
	return a == b
}
