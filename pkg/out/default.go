package out

import "sync/atomic"

var defaultReporter atomic.Pointer[Reporter]

func init() {
	defaultReporter.Store(New())
}

// Default returns the reporter used by the package-level functions and by
// package eval.
func Default() *Reporter {
	return defaultReporter.Load()
}

// SetDefault replaces the default reporter. A nil reporter is ignored.
func SetDefault(r *Reporter) {
	if r == nil {
		return
	}
	defaultReporter.Store(r)
}

func Info(msg any) { Default().Info(msg) }
func Infof(format string, args ...any) { Default().Infof(format, args...) }

func Warn(msg any) { Default().Warn(msg) }
func Warnf(format string, args ...any) { Default().Warnf(format, args...) }

func Error(msg any) { Default().Error(msg) }
func Errorf(format string, args ...any) { Default().Errorf(format, args...) }

// Fatal calls Default().Fatal and does not return.
func Fatal(msg any) { Default().Fatal(msg) }
func Fatalf(format string, args ...any) { Default().Fatalf(format, args...) }

func Exit(code int, msg any) { Default().Exit(code, msg) }
func Exitf(code int, format string, args ...any) { Default().Exitf(code, format, args...) }

// Abort calls Default().Abort: it ends the calling goroutine and sets the
// suppression latch for the whole process.
func Abort(msg any) { Default().Abort(msg) }
func Abortf(format string, args ...any) { Default().Abortf(format, args...) }

func Go(name string, fn func(r *Reporter)) *Unit {
	return Default().Go(name, fn)
}
