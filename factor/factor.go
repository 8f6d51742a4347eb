// Package factor computes the perfect factorization of a search pattern.
//
// A factorization pattern = u·v is perfect when v is k-simple (it has at most
// one k-HRP) and u is short compared to the period of v. For k >= 3 every
// pattern has one, and it can be found in linear time and constant space with
// nothing but equality tests (Crochemore and Rytter, "Squares, Cubes, and
// Time-Space Efficient String Searching", 1995). The search then only looks for
// v, whose single HRP scope replaces a failure table, and checks u literally.
package factor

import (
	"fmt"

	"github.com/coregx/gsearch/period"
)

// Factorization splits a pattern into u = pattern[:Split] and
// v = pattern[Split:]. Hrp is the only k-HRP of v, or the zero Hrp if v has
// none.
type Factorization struct {
	Split int
	Hrp   period.Hrp
}

// String returns a compact representation of f.
func (f Factorization) String() string {
	return fmt.Sprintf("factorization(split=%d, %v)", f.Split, f.Hrp)
}

// Parts returns the two halves u and v of pattern under f. Both are
// sub-slices of pattern; nothing is copied.
func Parts[T any](pattern []T, f Factorization) (u, v []T) {
	return pattern[:f.Split], pattern[f.Split:]
}

// Decompose returns the perfect factorization of pattern. k must be at least 3.
func Decompose[T comparable](k int, pattern []T) Factorization {
	return DecomposeFunc(k, pattern, equal[T])
}

// DecomposeFunc is like Decompose but compares elements with eq.
//
// While the remaining suffix x has two HRPs, whole blocks of its first HRP are
// moved from x into u: as many as keep at least two blocks of the run in x, and
// at least one. The shortest HRP period of the new x cannot be smaller than the
// one just consumed, so the next scan is seeded with it.
func DecomposeFunc[T any](k int, pattern []T, eq func(a, b T) bool) Factorization {
	j := 0
	h1, h2 := period.FindFunc(k, 1, pattern, eq)
	for h1.Valid() && h2.Valid() {
		blocks := max(1, (h1.Len-2*h1.Period)/h1.Period)
		j += blocks * h1.Period
		debugf("consumed %d block(s) of %v, split=%d, next %v", blocks, h1, j, h2)
		h1, h2 = period.FindFunc(k, h1.Period, pattern[j:], eq)
	}

	f := Factorization{Split: j, Hrp: h1}
	if DebugChecks {
		if err := CheckPerfectFunc(k, pattern, f, eq); err != nil {
			panic(err)
		}
	}
	return f
}

func equal[T comparable](a, b T) bool {
	return a == b
}
