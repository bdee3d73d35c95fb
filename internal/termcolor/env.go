package termcolor

import "strings"

// Env holds the color related environment variables.
type Env map[string]string

var envKeys = []string{"TERM", "NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE", "FORCE_COLOR", "COLORTERM", "COLORFGBG"}

// EnvFrom collects the color related variables through getenv. Unset variables are omitted.
func EnvFrom(getenv func(string) string) Env {
	env := make(Env, len(envKeys))
	if getenv == nil {
		return env
	}
	for _, key := range envKeys {
		if v := getenv(key); v != "" {
			env[key] = v
		}
	}
	return env
}

func (e Env) get(key string) string {
	return strings.TrimSpace(e[key])
}

// override reports an explicit decision made by the environment, if any.
func (e Env) override() (ColorMode, bool) {
	switch {
	case strings.EqualFold(e.get("TERM"), "dumb"):
		return ModeNever, true
	case e.get("NO_COLOR") != "":
		return ModeNever, true
	case e.get("CLICOLOR") == "0":
		return ModeNever, true
	case truthy(e.get("CLICOLOR_FORCE")), truthy(e.get("FORCE_COLOR")):
		return ModeAlways, true
	}
	return ModeAuto, false
}

func truthy(v string) bool {
	return v != "" && v != "0"
}
