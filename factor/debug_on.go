//go:build gsdebug

package factor

import (
	"fmt"
	"log"
	"os"
)

// DebugChecks enables the independent re-verification of every factorization
// and trace output on stderr. Build with -tags gsdebug to turn it on.
const DebugChecks = true

var logger = log.New(os.Stderr, "factor: ", log.Lshortfile)

func debugf(format string, args ...any) {
	_ = logger.Output(2, fmt.Sprintf(format, args...))
}
