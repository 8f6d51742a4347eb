package factor

import (
	"errors"
	"fmt"

	"github.com/coregx/gsearch/period"
)

// Invariant violations reported by CheckPerfect.
var (
	// ErrNotSimple indicates that v has a second k-HRP.
	ErrNotSimple = errors.New("suffix is not k-simple")

	// ErrHrpMismatch indicates that the recorded HRP is not the HRP of v.
	ErrHrpMismatch = errors.New("recorded HRP does not match suffix")

	// ErrBadSplit indicates a split outside the pattern.
	ErrBadSplit = errors.New("split out of range")
)

// InvariantError describes a factorization that is not perfect. It always
// points at a defect in the factorization code, never at the caller's input.
type InvariantError struct {
	Factorization Factorization
	First         period.Hrp // first HRP of v, derived independently
	Second        period.Hrp // second HRP of v, derived independently
	Err           error
}

// Error implements the error interface
func (e *InvariantError) Error() string {
	return fmt.Sprintf("imperfect %v: %v (independent scan found %v, %v)",
		e.Factorization, e.Err, e.First, e.Second)
}

// Unwrap returns the underlying error
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// CheckPerfect re-derives the HRP structure of v from scratch and reports
// whether f is a perfect factorization of pattern with the correct HRP.
func CheckPerfect[T comparable](k int, pattern []T, f Factorization) error {
	return CheckPerfectFunc(k, pattern, f, equal[T])
}

// CheckPerfectFunc is like CheckPerfect but compares elements with eq.
func CheckPerfectFunc[T any](k int, pattern []T, f Factorization, eq func(a, b T) bool) error {
	if f.Split < 0 || f.Split > len(pattern) {
		return &InvariantError{Factorization: f, Err: ErrBadSplit}
	}

	_, v := Parts(pattern, f)
	first, second := period.FindFunc(k, 1, v, eq)
	switch {
	case second.Valid():
		return &InvariantError{Factorization: f, First: first, Second: second, Err: ErrNotSimple}
	case first != f.Hrp:
		return &InvariantError{Factorization: f, First: first, Err: ErrHrpMismatch}
	}
	return nil
}
