package config

import (
	"strings"
)

const (
	sectionEngine = "engine"
	sectionUI     = "ui"
)

type valueKind int

const (
	stringValue valueKind = iota
	boolValue
	intValue
	listValue
)

// setting describes one configurable key. The same table drives config files
// (key and aliases) and the environment (EnvPrefix + upper-case key).
type setting struct {
	key     string
	section string
	kind    valueKind
	aliases []string
	apply   func(cfg *Config, v any)
}

func (s setting) envName() string {
	return EnvPrefix + strings.ToUpper(s.key)
}

func setString(dst func(*Config) **string) func(*Config, any) {
	return func(cfg *Config, v any) {
		s := v.(string)
		*dst(cfg) = &s
	}
}

func setBool(dst func(*Config) **bool) func(*Config, any) {
	return func(cfg *Config, v any) {
		b := v.(bool)
		*dst(cfg) = &b
	}
}

func setInt(dst func(*Config) **int) func(*Config, any) {
	return func(cfg *Config, v any) {
		n := v.(int)
		*dst(cfg) = &n
	}
}

func setList(dst func(*Config) **[]string) func(*Config, any) {
	return func(cfg *Config, v any) {
		list := v.([]string)
		*dst(cfg) = &list
	}
}

var settings = []setting{
	{key: "tag", section: sectionEngine, kind: stringValue,
		apply: setString(func(c *Config) **string { return &c.Engine.Tag })},
	{key: "ignore_case", section: sectionEngine, kind: boolValue, aliases: []string{"case_insensitive"},
		apply: setBool(func(c *Config) **bool { return &c.Engine.IgnoreCase })},
	{key: "brace_aware", section: sectionEngine, kind: boolValue,
		apply: setBool(func(c *Config) **bool { return &c.Engine.BraceAware })},
	{key: "lang", section: sectionEngine, kind: stringValue, aliases: []string{"language"},
		apply: setString(func(c *Config) **string { return &c.Engine.Lang })},
	{key: "path", section: sectionEngine, kind: listValue, aliases: []string{"paths"},
		apply: setList(func(c *Config) **[]string { return &c.Engine.Paths })},
	{key: "ext", section: sectionEngine, kind: listValue, aliases: []string{"exts", "extensions"},
		apply: setList(func(c *Config) **[]string { return &c.Engine.Extensions })},
	{key: "exclude", section: sectionEngine, kind: listValue, aliases: []string{"excludes"},
		apply: setList(func(c *Config) **[]string { return &c.Engine.Excludes })},
	{key: "no_default_excludes", section: sectionEngine, kind: boolValue,
		apply: setBool(func(c *Config) **bool { return &c.Engine.NoDefaultExcludes })},
	{key: "jobs", section: sectionEngine, kind: intValue,
		apply: setInt(func(c *Config) **int { return &c.Engine.Jobs })},
	{key: "max_file_bytes", section: sectionEngine, kind: intValue, aliases: []string{"max_bytes"},
		apply: setInt(func(c *Config) **int { return &c.Engine.MaxFileBytes })},
	{key: "output", section: sectionEngine, kind: stringValue,
		apply: setString(func(c *Config) **string { return &c.Engine.Output })},
	{key: "color", section: sectionEngine, kind: stringValue,
		apply: setString(func(c *Config) **string { return &c.Engine.Color })},
	{key: "log_level", section: sectionEngine, kind: stringValue,
		apply: setString(func(c *Config) **string { return &c.Engine.LogLevel })},

	{key: "fields", section: sectionUI, kind: stringValue,
		apply: setString(func(c *Config) **string { return &c.UI.Fields })},
	{key: "only_problems", section: sectionUI, kind: boolValue,
		apply: setBool(func(c *Config) **bool { return &c.UI.OnlyProblems })},
	{key: "snippet_width", section: sectionUI, kind: intValue,
		apply: setInt(func(c *Config) **int { return &c.UI.SnippetWidth })},
	{key: "quiet", section: sectionUI, kind: boolValue,
		apply: setBool(func(c *Config) **bool { return &c.UI.Quiet })},
}

var settingIndex = func() map[string]setting {
	idx := make(map[string]setting, len(settings)*2)
	for _, s := range settings {
		idx[s.key] = s
		for _, alias := range s.aliases {
			idx[alias] = s
		}
	}
	return idx
}()

// lookup resolves a file key; section restricts the match when not empty.
func lookup(key, section string) (setting, bool) {
	s, ok := settingIndex[normalizeKey(key)]
	if !ok || (section != "" && s.section != section) {
		return setting{}, false
	}
	return s, true
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}
