package detect

import (
	"strings"
	"testing"
)

func TestNormalizeLangNameAliases(t *testing.T) {
	cases := map[string]string{
		"JS":   "javascript",
		"Tsx":  "typescriptreact",
		"htm":  "html",
		"vue":  "vue",
		" md ": "markdown",
	}
	for input, want := range cases {
		if got := NormalizeLangName(input); got != want {
			t.Fatalf("NormalizeLangName(%q)=%q want %q", input, got, want)
		}
	}
}

func TestFromPathAndContent(t *testing.T) {
	cases := []struct {
		path string
		data string
		want string
	}{
		{path: "src/App.tsx", want: "typescriptreact"},
		{path: "src/App.JSX", want: "javascriptreact"},
		{path: "views/index.html.erb", want: "erb"},
		{path: "resources/views/home.blade.php", want: "blade"},
		{path: "pages/index.php", want: "php"},
		{path: "Component.vue", want: "vue"},
		{path: "bin/render", data: "#!/usr/bin/env node\nconsole.log('<div>')\n", want: "javascript"},
		{path: "bin/render", data: "#!/usr/bin/env ts-node\n", want: "typescript"},
		{path: "<stdin>", data: "  <!DOCTYPE html>\n<html></html>", want: "html"},
		{path: "README", data: "plain text", want: ""},
	}
	for _, tc := range cases {
		if got := FromPathAndContent(tc.path, []byte(tc.data)).Name; got != tc.want {
			t.Errorf("FromPathAndContent(%q)=%q want %q", tc.path, got, tc.want)
		}
	}
}

func TestKnownLanguage(t *testing.T) {
	if !KnownLanguage("JSX") {
		t.Fatal("jsx alias should be known")
	}
	if KnownLanguage("cobol") || KnownLanguage("") {
		t.Fatal("unexpected known language")
	}
	for _, name := range Languages() {
		if !KnownLanguage(name) {
			t.Fatalf("Languages() returned unknown %q", name)
		}
	}
}

func TestDefaultExtensionsAreSingle(t *testing.T) {
	exts := DefaultExtensions()
	if len(exts) == 0 {
		t.Fatal("no default extensions")
	}
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") || strings.Count(ext, ".") != 1 {
			t.Fatalf("unexpected extension %q", ext)
		}
	}
}
