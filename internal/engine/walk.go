package engine

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// typicalExcludePatterns are skipped while walking directories unless
// NoDefaultExcludes is set.
var typicalExcludePatterns = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"vendor",
	"dist",
	"build",
	"target",
	"coverage",
	".next",
	".nuxt",
	".svelte-kit",
	"*.min.*",
}

type input struct {
	path  string // ファイルシステム上のパス（stdin の場合は空）
	name  string // レポート上の名前
	stdin bool
}

// expandPaths turns path arguments into the list of inputs to analyze.
// Files named explicitly are always kept; files found by walking must carry
// one of exts and match no exclude pattern. Relative paths are read from dir
// when it is set but keep their relative names in reports.
func expandPaths(dir string, paths, exts, excludes []string, noDefaults bool) ([]input, []FileError) {
	patterns := normalizePatterns(excludes)
	if !noDefaults {
		patterns = append(patterns, typicalExcludePatterns...)
	}
	extSet := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		extSet[strings.ToLower(ext)] = struct{}{}
	}

	var out []input
	var errs []FileError
	seen := make(map[string]struct{})
	add := func(in input) {
		key := in.name
		if in.stdin {
			key = "\x00stdin"
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, in)
	}

	for _, raw := range paths {
		if raw == StdinPath {
			add(input{name: StdinName, stdin: true})
			continue
		}
		p := filepath.Clean(raw)
		root := p
		if dir != "" && !filepath.IsAbs(p) {
			root = filepath.Join(dir, p)
		}
		info, err := os.Stat(root)
		if err != nil {
			errs = append(errs, newFileError(displayName(p), "stat", err))
			continue
		}
		if !info.IsDir() {
			add(input{path: root, name: displayName(p)})
			continue
		}
		walkErr := filepath.WalkDir(root, func(walked string, d fs.DirEntry, err error) error {
			name := displayName(walked)
			if rel, relErr := filepath.Rel(root, walked); relErr == nil {
				name = displayName(filepath.Join(p, rel))
			}
			if err != nil {
				errs = append(errs, newFileError(name, "walk", err))
				return nil
			}
			if d.IsDir() {
				if walked != root && excluded(name, patterns) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || excluded(name, patterns) {
				return nil
			}
			if _, ok := extSet[strings.ToLower(filepath.Ext(walked))]; !ok {
				return nil
			}
			add(input{path: walked, name: name})
			return nil
		})
		if walkErr != nil {
			errs = append(errs, newFileError(displayName(p), "walk", walkErr))
		}
	}
	return out, errs
}

func normalizePatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, raw := range patterns {
		trimmed := strings.TrimSpace(filepath.ToSlash(raw))
		trimmed = strings.TrimPrefix(trimmed, "./")
		trimmed = strings.TrimSuffix(trimmed, "/**")
		trimmed = strings.TrimSuffix(trimmed, "/")
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// excluded matches name against glob patterns. A pattern without '/' is
// compared with the base name, one with '/' with the whole path or a
// directory prefix of it.
func excluded(name string, patterns []string) bool {
	base := path.Base(name)
	for _, p := range patterns {
		if !strings.Contains(p, "/") {
			if ok, _ := path.Match(p, base); ok {
				return true
			}
			continue
		}
		if ok, _ := path.Match(p, name); ok {
			return true
		}
		if strings.HasPrefix(name, p+"/") {
			return true
		}
	}
	return false
}

func displayName(p string) string {
	return strings.TrimPrefix(filepath.ToSlash(p), "./")
}
