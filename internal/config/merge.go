package config

import "strings"

// MergeEngine applies layers over base in order; a nil field leaves the value below it.
func MergeEngine(base EngineSettings, layers ...EngineConfig) EngineSettings {
	out := base
	for _, layer := range layers {
		out.Tag = ResolveAndTrim(out.Tag, layer.Tag)
		out.IgnoreCase = ResolveBool(out.IgnoreCase, layer.IgnoreCase)
		out.BraceAware = ResolveBool(out.BraceAware, layer.BraceAware)
		out.Lang = ResolveAndTrim(out.Lang, layer.Lang)
		out.Paths = ResolveStrings(out.Paths, layer.Paths)
		out.Extensions = ResolveStrings(out.Extensions, layer.Extensions)
		out.Excludes = ResolveStrings(out.Excludes, layer.Excludes)
		out.NoDefaultExcludes = ResolveBool(out.NoDefaultExcludes, layer.NoDefaultExcludes)
		out.Jobs = ResolveInt(out.Jobs, layer.Jobs)
		out.MaxFileBytes = ResolveInt(out.MaxFileBytes, layer.MaxFileBytes)
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.LogLevel = ResolveAndTrim(out.LogLevel, layer.LogLevel)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	if strings.TrimSpace(out.LogLevel) == "" {
		out.LogLevel = "warn"
	}
	return out
}

func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		out.Fields = ResolveAndTrim(out.Fields, layer.Fields)
		out.OnlyProblems = ResolveBool(out.OnlyProblems, layer.OnlyProblems)
		out.SnippetWidth = ResolveInt(out.SnippetWidth, layer.SnippetWidth)
		out.Quiet = ResolveBool(out.Quiet, layer.Quiet)
	}
	return out
}

// resolve returns the last non-nil layer value, or def when every layer is unset.
func resolve[T any](def T, values ...*T) T {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveInt(def int, values ...*int) int { return resolve(def, values...) }

func ResolveBool(def bool, values ...*bool) bool { return resolve(def, values...) }

// ResolveStrings treats an explicitly empty list as "clear the default".
func ResolveStrings(def []string, values ...*[]string) []string {
	result := cloneStrings(def)
	for _, v := range values {
		if v != nil {
			if len(*v) == 0 {
				result = []string{}
				continue
			}
			result = cloneStrings(*v)
		}
	}
	return result
}

func ResolveAndTrim(def string, values ...*string) string {
	return strings.TrimSpace(resolve(def, values...))
}
