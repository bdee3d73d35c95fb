package termcolor

import (
	"strconv"
	"strings"
)

type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

func (p Profile) String() string {
	switch p {
	case ProfileANSI256:
		return "ansi256"
	case ProfileTrueColor:
		return "truecolor"
	default:
		return "basic8"
	}
}

// DetectProfile picks truecolor from COLORTERM, 256 colors from a *256color TERM
// and the 8 basic colors otherwise.
func DetectProfile(env Env) Profile {
	ct := strings.ToLower(env.get("COLORTERM"))
	for _, marker := range []string{"truecolor", "24bit", "24-bit"} {
		if strings.Contains(ct, marker) {
			return ProfileTrueColor
		}
	}
	if strings.Contains(strings.ToLower(env.get("TERM")), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeDark
	SchemeLight
)

func (s Scheme) String() string {
	switch s {
	case SchemeDark:
		return "dark"
	case SchemeLight:
		return "light"
	default:
		return "unknown"
	}
}

// DetectScheme guesses the terminal background from COLORFGBG ("fg;bg", light
// when bg >= 7) and falls back to a TERM containing "light". Default is dark.
func DetectScheme(env Env) Scheme {
	if bg, ok := colorfgbgBackground(env.get("COLORFGBG")); ok {
		if bg >= 7 {
			return SchemeLight
		}
		return SchemeDark
	}
	if strings.Contains(strings.ToLower(env.get("TERM")), "light") {
		return SchemeLight
	}
	return SchemeDark
}

func colorfgbgBackground(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	parts := strings.Split(raw, ";")
	bgRaw := strings.TrimSpace(parts[len(parts)-1])
	if bgRaw == "" && len(parts) >= 2 {
		bgRaw = strings.TrimSpace(parts[len(parts)-2])
	}
	bg, err := strconv.Atoi(bgRaw)
	if err != nil || bg < 0 {
		return 0, false
	}
	return bg, true
}
