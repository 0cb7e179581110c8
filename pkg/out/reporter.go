package out

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

const unknownName = "<unknown>"

// Reporter writes tagged messages to a single writer. It is not modified
// after New and is safe for concurrent use.
type Reporter struct {
	w        io.Writer
	mode     Mode
	layout   Layout
	color    bool
	colorSet bool
	exit     func(code int)
	name     string
	styles   styles
}

// New returns a reporter writing to os.Stderr in ModeExit and LayoutLine.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		w:    os.Stderr,
		mode: ModeExit,
		exit: os.Exit,
	}

	for _, opt := range opts {
		opt(r)
	}

	if !r.colorSet {
		r.color = colorFor(r.w)
	}
	r.styles = newStyles(r.color)

	return r
}

// Named returns a copy of r that shows name as the current unit.
func (r *Reporter) Named(name string) *Reporter {
	c := *r
	c.name = name
	return &c
}

func (r *Reporter) Name() string {
	return r.name
}

func (r *Reporter) Mode() Mode {
	return r.mode
}

func (r *Reporter) Info(msg any) {
	r.emit(LevelInfo, fmt.Sprint(msg))
}

func (r *Reporter) Infof(format string, args ...any) {
	r.emit(LevelInfo, fmt.Sprintf(format, args...))
}

func (r *Reporter) Warn(msg any) {
	r.emit(LevelWarn, fmt.Sprint(msg))
}

func (r *Reporter) Warnf(format string, args ...any) {
	r.emit(LevelWarn, fmt.Sprintf(format, args...))
}

// Error writes msg with the error tag and returns.
func (r *Reporter) Error(msg any) {
	r.emit(LevelError, fmt.Sprint(msg))
}

func (r *Reporter) Errorf(format string, args ...any) {
	r.emit(LevelError, fmt.Sprintf(format, args...))
}

// Fatal writes msg with the error tag and does not return.
//
// In ModeExit the process exits with code 1. In ModeAbort only the calling
// goroutine ends, and the suppression latch is set: from then on panic
// diagnostics of every Unit are silenced for the rest of the process.
func (r *Reporter) Fatal(msg any) {
	r.fatal(1, fmt.Sprint(msg))
}

func (r *Reporter) Fatalf(format string, args ...any) {
	r.fatal(1, fmt.Sprintf(format, args...))
}

// Exit writes msg with the error tag and exits the process with code,
// whatever the reporter's Mode.
func (r *Reporter) Exit(code int, msg any) {
	r.emit(LevelError, fmt.Sprint(msg))
	r.terminate(code)
}

func (r *Reporter) Exitf(code int, format string, args ...any) {
	r.emit(LevelError, fmt.Sprintf(format, args...))
	r.terminate(code)
}

// Abort writes msg with the error tag, sets the suppression latch and ends
// the calling goroutine with runtime.Goexit. Deferred calls of that goroutine
// run; other goroutines keep going. The latch is never cleared, so after the
// first Abort no Unit prints panic diagnostics again.
//
// Calling Abort from the main goroutine ends main without exiting the
// process; the program then crashes once every other goroutine is done.
func (r *Reporter) Abort(msg any) {
	r.emit(LevelError, fmt.Sprint(msg))
	abort()
}

func (r *Reporter) Abortf(format string, args ...any) {
	r.emit(LevelError, fmt.Sprintf(format, args...))
	abort()
}

func (r *Reporter) fatal(code int, msg string) {
	r.emit(LevelError, msg)
	if r.mode == ModeAbort {
		abort()
	}
	r.terminate(code)
}

// terminate never returns, even with an exit func that does.
func (r *Reporter) terminate(code int) {
	r.exit(code)
	runtime.Goexit()
}

func abort() {
	Silence()
	runtime.Goexit()
}

func (r *Reporter) emit(level Level, msg string) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	switch r.layout {
	case LayoutBlock:
		r.renderBlock(buf, level, msg)
	default:
		r.renderLine(buf, level, msg)
	}

	_, _ = r.w.Write(buf.B)
}

func (r *Reporter) renderLine(buf *bytebufferpool.ByteBuffer, level Level, msg string) {
	width := utf8.RuneCountInString(level.String()) + 1

	_, _ = buf.WriteString(r.styles.tag(level))
	_ = buf.WriteByte(' ')
	if r.name != "" {
		_, _ = buf.WriteString(r.styles.name.Sprint("[" + r.name + "]"))
		_ = buf.WriteByte(' ')
		width += utf8.RuneCountInString(r.name) + 3
	}

	indent := strings.Repeat(" ", width)
	for i, line := range splitLines(msg) {
		if i > 0 {
			_, _ = buf.WriteString(indent)
		}
		_, _ = buf.WriteString(line)
		_ = buf.WriteByte('\n')
	}
}

func (r *Reporter) renderBlock(buf *bytebufferpool.ByteBuffer, level Level, msg string) {
	name := r.name
	if name == "" {
		name = unknownName
	}

	_, _ = buf.WriteString(r.styles.tag(level))
	_ = buf.WriteByte('\n')
	_, _ = buf.WriteString(r.styles.name.Sprint("[" + name + "]:"))
	_ = buf.WriteByte('\n')

	for _, line := range splitLines(msg) {
		_, _ = buf.WriteString("  ")
		_, _ = buf.WriteString(line)
		_ = buf.WriteByte('\n')
	}
}

func splitLines(msg string) []string {
	lines := strings.Split(strings.TrimRight(msg, "\r\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
