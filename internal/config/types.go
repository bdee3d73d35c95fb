package config

import (
	"github.com/phyten/tagaudit/internal/engine"
)

type EngineConfig struct {
	Tag               *string   `yaml:"tag" toml:"tag" json:"tag"`
	IgnoreCase        *bool     `yaml:"ignore_case" toml:"ignore_case" json:"ignore_case"`
	BraceAware        *bool     `yaml:"brace_aware" toml:"brace_aware" json:"brace_aware"`
	Lang              *string   `yaml:"lang" toml:"lang" json:"lang"`
	Paths             *[]string `yaml:"path" toml:"path" json:"path"`
	Extensions        *[]string `yaml:"ext" toml:"ext" json:"ext"`
	Excludes          *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	NoDefaultExcludes *bool     `yaml:"no_default_excludes" toml:"no_default_excludes" json:"no_default_excludes"`
	Jobs              *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	MaxFileBytes      *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	Output            *string   `yaml:"output" toml:"output" json:"output"`
	Color             *string   `yaml:"color" toml:"color" json:"color"`
	LogLevel          *string   `yaml:"log_level" toml:"log_level" json:"log_level"`
}

type UIConfig struct {
	Fields       *string `yaml:"fields" toml:"fields" json:"fields"`
	OnlyProblems *bool   `yaml:"only_problems" toml:"only_problems" json:"only_problems"`
	SnippetWidth *int    `yaml:"snippet_width" toml:"snippet_width" json:"snippet_width"`
	Quiet        *bool   `yaml:"quiet" toml:"quiet" json:"quiet"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

type EngineSettings struct {
	Tag               string
	IgnoreCase        bool
	BraceAware        bool
	Lang              string
	Paths             []string
	Extensions        []string
	Excludes          []string
	NoDefaultExcludes bool
	Jobs              int
	MaxFileBytes      int
	Output            string
	Color             string
	LogLevel          string
}

type UISettings struct {
	Fields       string
	OnlyProblems bool
	SnippetWidth int
	Quiet        bool
}

// DefaultSnippetWidth は table 出力のスニペット列の表示幅です。
const DefaultSnippetWidth = 60

func EngineSettingsFromOptions(opts engine.Options) EngineSettings {
	return EngineSettings{
		Tag:               opts.Tag,
		IgnoreCase:        opts.IgnoreCase,
		BraceAware:        opts.BraceAware,
		Lang:              opts.Lang,
		Paths:             cloneStrings(opts.Paths),
		Extensions:        cloneStrings(opts.Extensions),
		Excludes:          cloneStrings(opts.Excludes),
		NoDefaultExcludes: opts.NoDefaultExcludes,
		Jobs:              opts.Jobs,
		MaxFileBytes:      opts.MaxFileBytes,
		Output:            "table",
		Color:             "auto",
		LogLevel:          "warn",
	}
}

func (s EngineSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.Tag = s.Tag
	opts.IgnoreCase = s.IgnoreCase
	opts.BraceAware = s.BraceAware
	opts.Lang = s.Lang
	opts.Paths = cloneStrings(s.Paths)
	opts.Extensions = cloneStrings(s.Extensions)
	opts.Excludes = cloneStrings(s.Excludes)
	opts.NoDefaultExcludes = s.NoDefaultExcludes
	opts.Jobs = s.Jobs
	opts.MaxFileBytes = s.MaxFileBytes
}

func DefaultUISettings() UISettings {
	return UISettings{
		Fields:       "",
		OnlyProblems: false,
		SnippetWidth: DefaultSnippetWidth,
		Quiet:        false,
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
