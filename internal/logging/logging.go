// Package logging builds the hclog logger shared by the CLI and the engine.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel keeps diagnostics out of the way unless asked for.
const DefaultLevel = "warn"

var levelNames = []string{"trace", "debug", "info", "warn", "error", "off"}

// ParseLevel accepts trace|debug|info|warn|error|off (case-insensitive).
// An empty string yields DefaultLevel.
func ParseLevel(raw string) (hclog.Level, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		s = DefaultLevel
	}
	if s == "warning" {
		s = "warn"
	}
	lvl := hclog.LevelFromString(s)
	if lvl == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("invalid log level: %s (allowed: %s)", raw, strings.Join(levelNames, "|"))
	}
	return lvl, nil
}

// NormalizeLevel validates raw and returns its canonical lower-case name.
func NormalizeLevel(raw string) (string, error) {
	lvl, err := ParseLevel(raw)
	if err != nil {
		return "", err
	}
	return strings.ToLower(lvl.String()), nil
}

// New returns a logger writing to w (stderr when nil) without timestamps.
func New(name, level string, w io.Writer) (hclog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: true,
		Output:      w,
		Level:       lvl,
	}), nil
}

// OrNull returns l, or a discarding logger when l is nil.
func OrNull(l hclog.Logger) hclog.Logger {
	if l == nil {
		return hclog.NewNullLogger()
	}
	return l
}
