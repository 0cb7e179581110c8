package out

import "sync/atomic"

var silenced atomic.Bool

// Silence sets the process-wide suppression latch. Once set, panics recovered
// by any Unit are no longer printed. The latch goes one way only: there is no
// way to unset it. Calling Silence again has no further effect.
//
// Abort and Fatal in ModeAbort call Silence.
func Silence() {
	silenced.Store(true)
}

// Silenced reports whether the suppression latch is set.
func Silenced() bool {
	return silenced.Load()
}
