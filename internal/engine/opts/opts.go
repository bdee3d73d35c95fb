// Package opts holds the engine option defaults and the validation shared by
// flags, environment variables and config files.
package opts

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/phyten/tagaudit/internal/detect"
	"github.com/phyten/tagaudit/internal/engine"
	"github.com/phyten/tagaudit/internal/tag"
)

// MaxJobs caps the worker pool.
const MaxJobs = 64

// Defaults returns the baseline options shared by the CLI and config layers.
func Defaults() engine.Options {
	return engine.Options{
		Tag:        engine.DefaultTag,
		Jobs:       min(max(runtime.NumCPU(), 1), MaxJobs),
		Extensions: detect.DefaultExtensions(),
	}
}

// NormalizeAndValidate canonicalizes o in place and reports every invalid
// field at once.
func NormalizeAndValidate(o *engine.Options) error {
	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	o.Tag = strings.TrimSpace(o.Tag)
	if o.Tag == "" {
		o.Tag = engine.DefaultTag
	}
	if err := tag.ValidName(o.Tag); err != nil {
		check(fmt.Errorf("invalid --tag: %w", err))
	}

	if o.Lang = strings.TrimSpace(o.Lang); o.Lang != "" {
		if detect.KnownLanguage(o.Lang) {
			o.Lang = detect.NormalizeLangName(o.Lang)
		} else {
			check(fmt.Errorf("invalid --lang: %s (known: %s)", o.Lang, strings.Join(detect.Languages(), ", ")))
		}
	}

	if o.Jobs < 1 || o.Jobs > MaxJobs {
		check(fmt.Errorf("jobs must be between 1 and %d, got %d", MaxJobs, o.Jobs))
	}
	if o.MaxFileBytes < 0 {
		check(fmt.Errorf("max_file_bytes must be >= 0, got %d", o.MaxFileBytes))
	}

	if o.Paths = compact(o.Paths); len(o.Paths) == 0 {
		o.Paths = []string{"."}
	}

	o.Excludes = compact(o.Excludes)
	for _, p := range o.Excludes {
		check(ValidateExclude(p))
	}

	exts, err := NormalizeExtensions(o.Extensions)
	check(err)
	if len(exts) == 0 {
		exts = detect.DefaultExtensions()
	}
	o.Extensions = exts

	return errors.Join(errs...)
}

// ValidateExclude rejects malformed glob patterns before the walk starts.
func ValidateExclude(pattern string) error {
	p := strings.TrimSuffix(filepath.ToSlash(strings.TrimSpace(pattern)), "/**")
	if _, err := path.Match(p, ""); err != nil {
		return fmt.Errorf("invalid --exclude %q: %w", pattern, err)
	}
	return nil
}

// NormalizeExtensions lower-cases extensions, adds the leading dot and drops
// duplicates. "*.vue", "vue" and ".VUE" all become ".vue".
func NormalizeExtensions(values []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, raw := range values {
		ext := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "*")
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		if ext == "." || strings.ContainsAny(ext, `/\ `) {
			return nil, fmt.Errorf("invalid extension: %q", raw)
		}
		if !seen[ext] {
			seen[ext] = true
			out = append(out, ext)
		}
	}
	return out, nil
}

func compact(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
