package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/phyten/tagaudit/internal/engine/opts"
)

// EnvPrefix is the common prefix of every environment variable read by FromEnv.
const EnvPrefix = "TAGAUDIT_"

// FromEnv reads one TAGAUDIT_<KEY> variable per config key (TAGAUDIT_TAG,
// TAGAUDIT_SNIPPET_WIDTH, ...). Empty variables are ignored and every invalid
// value is reported at once.
func FromEnv(getenv func(string) string) (Config, error) {
	var cfg Config
	if getenv == nil {
		return cfg, nil
	}
	var errs []error
	for _, s := range settings {
		name := s.envName()
		raw := strings.TrimSpace(getenv(name))
		if raw == "" {
			continue
		}
		v, err := envValue(s.kind, raw, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.apply(&cfg, v)
	}
	return cfg, errors.Join(errs...)
}

// envValue parses raw for kind. Integers must be >= 0; upper bounds are checked
// by engineopts.NormalizeAndValidate and NormalizeUI.
func envValue(kind valueKind, raw, name string) (any, error) {
	switch kind {
	case boolValue:
		return engineopts.ParseBool(raw, name)
	case intValue:
		return engineopts.ParseIntInRange(raw, name, 0, math.MaxInt)
	case listValue:
		list := engineopts.SplitMulti([]string{raw})
		if list == nil {
			list = []string{}
		}
		return list, nil
	default:
		return raw, nil
	}
}
