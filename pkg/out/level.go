package out

import "github.com/fatih/color"

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

var levelTags = map[Level]string{
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

func (l Level) String() string {
	if tag, ok := levelTags[l]; ok {
		return tag
	}
	return "unknown"
}

// styles holds the fixed color of every tag plus the unit name.
type styles struct {
	levels map[Level]*color.Color
	name   *color.Color
}

func newStyles(enabled bool) styles {
	s := styles{
		levels: map[Level]*color.Color{
			LevelInfo:  color.New(color.Bold, color.FgBlue),
			LevelWarn:  color.New(color.Bold, color.FgYellow),
			LevelError: color.New(color.Bold, color.FgRed),
		},
		name: color.New(color.FgCyan),
	}

	for _, c := range s.all() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s styles) all() []*color.Color {
	return []*color.Color{s.levels[LevelInfo], s.levels[LevelWarn], s.levels[LevelError], s.name}
}

func (s styles) tag(l Level) string {
	return s.levels[l].Sprint(l.String())
}
