// Package debug provides env-flag gated diagnostics for lskit.
//
// Set LSKIT_DEBUG_DECODE, LSKIT_DEBUG_ENCODE, LSKIT_DEBUG_PATCH or
// LSKIT_DEBUG_MATCH to a true value to log the corresponding subsystem
// to stderr.
package debug

import (
	"fmt"
	"os"
)

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
