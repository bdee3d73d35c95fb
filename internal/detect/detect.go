package detect

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"
)

type Info struct {
	Name string
}

func FromPathAndContent(p string, data []byte) Info {
	if name := detectByPath(p); name != "" {
		return Info{Name: name}
	}
	if shebang := detectByShebang(data); shebang != "" {
		return Info{Name: shebang}
	}
	if looksLikeHTML(data) {
		return Info{Name: "html"}
	}
	return Info{Name: ""}
}

func detectByPath(p string) string {
	base := filepath.Base(p)
	lowerBase := strings.ToLower(base)
	ext := filepath.Ext(lowerBase)
	if ext == "" {
		return ""
	}
	// double extensions such as page.html.erb or view.blade.php
	stem := strings.TrimSuffix(lowerBase, ext)
	if inner := filepath.Ext(stem); inner != "" {
		if lang, ok := extensionLanguages[inner+ext]; ok {
			return lang
		}
	}
	return extensionLanguages[ext]
}

func detectByShebang(data []byte) string {
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	line := strings.ToLower(string(data[:end]))
	for _, entry := range shebangLanguages {
		if strings.Contains(line, entry.key) {
			return entry.lang
		}
	}
	return ""
}

// looksLikeHTML sniffs extensionless input (stdin) for a doctype or <html>.
func looksLikeHTML(data []byte) bool {
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	lower := bytes.ToLower(bytes.TrimSpace(sample))
	return bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.HasPrefix(lower, []byte("<html"))
}

func NormalizeLangName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ""
	}
	if canon, ok := langAliases[n]; ok {
		return canon
	}
	return n
}

func KnownLanguage(name string) bool {
	if name == "" {
		return false
	}
	_, ok := knownLanguages[NormalizeLangName(name)]
	return ok
}

// Languages lists every canonical language name in sorted order.
func Languages() []string {
	out := make([]string, 0, len(knownLanguages))
	for name := range knownLanguages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DefaultExtensions lists the file extensions scanned when walking directories.
func DefaultExtensions() []string {
	out := make([]string, 0, len(extensionLanguages))
	for ext := range extensionLanguages {
		if strings.Count(ext, ".") > 1 {
			continue
		}
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

var extensionLanguages = map[string]string{
	".js":        "javascript",
	".mjs":       "javascript",
	".cjs":       "javascript",
	".jsx":       "javascriptreact",
	".ts":        "typescript",
	".mts":       "typescript",
	".cts":       "typescript",
	".tsx":       "typescriptreact",
	".vue":       "vue",
	".svelte":    "svelte",
	".astro":     "astro",
	".html":      "html",
	".htm":       "html",
	".xhtml":     "html",
	".xml":       "xml",
	".svg":       "xml",
	".php":       "php",
	".phtml":     "php",
	".blade.php": "blade",
	".md":        "markdown",
	".markdown":  "markdown",
	".mdx":       "mdx",
	".tpl":       "gotemplate",
	".tmpl":      "gotemplate",
	".gohtml":    "gotemplate",
	".jinja":     "jinja",
	".jinja2":    "jinja",
	".j2":        "jinja",
	".njk":       "jinja",
	".twig":      "twig",
	".djhtml":    "django",
	".liquid":    "liquid",
	".hbs":       "handlebars",
	".mustache":  "handlebars",
	".ejs":       "ejs",
	".erb":       "erb",
	".html.erb":  "erb",
	".cshtml":    "razor",
	".razor":     "razor",
	".aspx":      "aspnet",
	".ascx":      "aspnet",
}

var langAliases = map[string]string{
	"js":     "javascript",
	"mjs":    "javascript",
	"cjs":    "javascript",
	"jsx":    "javascriptreact",
	"ts":     "typescript",
	"tsx":    "typescriptreact",
	"htm":    "html",
	"xhtml":  "html",
	"svg":    "xml",
	"md":     "markdown",
	"hbs":    "handlebars",
	"njk":    "jinja",
	"j2":     "jinja",
	"cshtml": "razor",
	"tmpl":   "gotemplate",
	"gohtml": "gotemplate",
}

// shebangLanguages is ordered so that longer interpreter names win.
var shebangLanguages = []struct {
	key  string
	lang string
}{
	{"ts-node", "typescript"},
	{"tsx", "typescript"},
	{"bun", "javascript"},
	{"deno", "typescript"},
	{"node", "javascript"},
	{"php", "php"},
}

var knownLanguages = map[string]struct{}{
	"javascript":      {},
	"javascriptreact": {},
	"typescript":      {},
	"typescriptreact": {},
	"vue":             {},
	"svelte":          {},
	"astro":           {},
	"html":            {},
	"xml":             {},
	"php":             {},
	"blade":           {},
	"markdown":        {},
	"mdx":             {},
	"gotemplate":      {},
	"jinja":           {},
	"twig":            {},
	"django":          {},
	"liquid":          {},
	"handlebars":      {},
	"ejs":             {},
	"erb":             {},
	"razor":           {},
	"aspnet":          {},
}
