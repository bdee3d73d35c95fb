package termcolor

import (
	"strconv"
	"strings"
)

// Style is an SGR attribute set. Only the richest foreground that is set is emitted.
type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FGBasic   *int
	FG256     *int
	FGTrue    *[3]uint8
}

// Basic returns a style with one of the 8 basic foreground colors.
func Basic(color int) Style {
	return Style{FGBasic: &color}
}

// Apply wraps text in the SGR sequence for s when enabled.
func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	params := s.params()
	if params == "" {
		return text
	}
	return "\x1b[" + params + "m" + text + "\x1b[0m"
}

func (s Style) params() string {
	var b strings.Builder
	add := func(parts ...int) {
		for _, p := range parts {
			if b.Len() > 0 {
				b.WriteByte(';')
			}
			b.WriteString(strconv.Itoa(p))
		}
	}
	if s.Bold {
		add(1)
	}
	if s.Dim {
		add(2)
	}
	if s.Underline {
		add(4)
	}
	switch {
	case s.FGTrue != nil:
		rgb := *s.FGTrue
		add(38, 2, int(rgb[0]), int(rgb[1]), int(rgb[2]))
	case s.FG256 != nil:
		add(38, 5, *s.FG256)
	case s.FGBasic != nil:
		add(30 + *s.FGBasic)
	}
	return b.String()
}
