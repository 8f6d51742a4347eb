//go:build !gsdebug

package factor

// DebugChecks enables the independent re-verification of every factorization
// and trace output on stderr. Build with -tags gsdebug to turn it on.
const DebugChecks = false

func debugf(string, ...any) {}
