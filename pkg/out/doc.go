// Package out writes severity-tagged messages to the console and provides
// the fatal path used by package eval.
//
// Three severities are emitted: info, warn and error. Fatal additionally
// terminates execution according to the reporter's Mode:
//
//   - ModeExit (default) calls os.Exit with the given code (1 unless Exit is used).
//   - ModeAbort ends only the calling goroutine via runtime.Goexit and sets the
//     process-wide suppression latch (see Silence).
//
// Each emission is assembled in a pooled buffer and written with a single
// Write call. The package adds no locking of its own; concurrent emissions
// are only as atomic as the underlying writer.
//
// Units started with Go recover panics and print them as error diagnostics.
// Once the latch is set those diagnostics are gone for every unit, for the
// rest of the process lifetime.
package out
