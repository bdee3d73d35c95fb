// Package termcolor decides whether report output gets ANSI colors and which
// palette fits the terminal.
package termcolor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

var modeNames = map[ColorMode]string{
	ModeAuto:   "auto",
	ModeAlways: "always",
	ModeNever:  "never",
}

func (m ColorMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return modeNames[ModeAuto]
}

// ParseMode accepts auto|always|never in any case; empty means auto.
func ParseMode(v string) (ColorMode, error) {
	norm := strings.ToLower(strings.TrimSpace(v))
	if norm == "" {
		return ModeAuto, nil
	}
	for mode, name := range modeNames {
		if name == norm {
			return mode, nil
		}
	}
	return ModeAuto, fmt.Errorf("unknown color mode: %s (want auto, always or never)", v)
}

// ShouldColor resolves the final decision for output written to w.
// Writers that are not files never get colors in auto mode.
func ShouldColor(mode ColorMode, w io.Writer, env Env) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return DetectMode(f, env) == ModeAlways
}

// DetectMode resolves auto mode for f. The first matching rule wins:
//  1. TERM=dumb
//  2. NO_COLOR set
//  3. CLICOLOR=0
//  4. CLICOLOR_FORCE or FORCE_COLOR set to anything but 0
//  5. f is a terminal
func DetectMode(f *os.File, env Env) ColorMode {
	if f == nil {
		return ModeNever
	}
	if mode, ok := env.override(); ok {
		return mode
	}
	if isTerminal(f) {
		return ModeAlways
	}
	return ModeNever
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
