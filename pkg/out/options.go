package out

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Mode selects what Fatal does after writing its message.
type Mode int

const (
	// ModeExit terminates the whole process.
	ModeExit Mode = iota
	// ModeAbort terminates only the calling goroutine and sets the
	// suppression latch.
	ModeAbort
)

// Layout selects how a message is laid out on the console.
type Layout int

const (
	// LayoutLine prints "tag [unit] message" with continuation lines aligned
	// under the message column.
	LayoutLine Layout = iota
	// LayoutBlock prints the tag and the unit on their own lines followed by
	// every message line indented by two spaces.
	LayoutBlock
)

type Option func(*Reporter)

// WithOutput sets the destination. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.w = w
		}
	}
}

func WithMode(m Mode) Option {
	return func(r *Reporter) {
		r.mode = m
	}
}

func WithLayout(l Layout) Option {
	return func(r *Reporter) {
		r.layout = l
	}
}

// WithColor forces tag styling on or off. Without it styling is enabled only
// when the writer itself is a terminal, NO_COLOR is empty and TERM is not
// "dumb".
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.color = enabled
		r.colorSet = true
	}
}

// WithExitFunc replaces os.Exit for ModeExit and Exit.
func WithExitFunc(exit func(code int)) Option {
	return func(r *Reporter) {
		if exit != nil {
			r.exit = exit
		}
	}
}

func WithName(name string) Option {
	return func(r *Reporter) {
		r.name = name
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func colorFor(w io.Writer) bool {
	return colorEnabled(isTerminal(w), os.Getenv("NO_COLOR") != "", os.Getenv("TERM"))
}

// colorEnabled decides styling from the writer's own terminal status, not
// stdout's, so redirecting stdout leaves stderr styled.
func colorEnabled(terminal, noColor bool, term string) bool {
	return terminal && !noColor && term != "dumb"
}
