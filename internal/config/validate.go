package config

import (
	"fmt"
	"strings"

	engineopts "github.com/phyten/tagaudit/internal/engine/opts"
	"github.com/phyten/tagaudit/internal/logging"
	"github.com/phyten/tagaudit/internal/termcolor"
)

// NormalizeEngine canonicalizes the presentation-level engine settings.
// Options that reach engine.Options are validated by engineopts.NormalizeAndValidate.
func NormalizeEngine(values EngineSettings) (EngineSettings, error) {
	out, err := engineopts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	values.Output = out

	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, fmt.Errorf("invalid color: %w", err)
	}
	values.Color = mode.String()

	level, err := logging.NormalizeLevel(values.LogLevel)
	if err != nil {
		return values, err
	}
	values.LogLevel = level
	return values, nil
}

func NormalizeUI(values UISettings) (UISettings, error) {
	values.Fields = strings.TrimSpace(values.Fields)
	if values.SnippetWidth < 0 {
		return values, fmt.Errorf("snippet_width must be >= 0")
	}
	return values, nil
}
