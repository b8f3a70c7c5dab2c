package indexing

import (
	"sync/atomic"

	"github.com/fatih/color"
)

// naiveWarningEmitted guards the "naive indexes in use" diagnostic so it is
// printed at most once per process, even when many relations independently
// fall back to the naive path because of the environment-variable escape
// hatch. It never clears itself; ResetNaiveWarning exists only so test
// harnesses that run the analysis repeatedly in one process can observe the
// warning again.
var naiveWarningEmitted atomic.Bool

// warnNaiveOnce prints the naive-mode warning to w exactly once per process.
// Subsequent calls are no-ops.
func warnNaiveOnce(w interface{ Write([]byte) (int, error) }) {
	if naiveWarningEmitted.CompareAndSwap(false, true) {
		color.New(color.FgYellow).Fprintln(w, "WARNING: auto index selection disabled, naive indexes are utilized!!")
	}
}

// ResetNaiveWarning clears the one-shot naive-mode warning flag. Production
// code never calls this; it exists so tests can exercise the warning more
// than once within a single process.
func ResetNaiveWarning() {
	naiveWarningEmitted.Store(false)
}
