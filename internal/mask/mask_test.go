package mask

import (
	"strings"
	"testing"

	"github.com/phyten/tagaudit/internal/model"
)

var shapeInputs = []string{
	"",
	"plain text\n",
	"/* <div> */",
	"a /* multi\nline\n<div> */ b\n",
	"// <div>\n<div>\n",
	"x = \"<div></div>\";\n",
	"x = '<div>' + `\n<div>\n${y}\n`;\n",
	"s = \"escaped \\\" quote <div>\"\n",
	"unterminated \"string\n<div>\n",
	"unterminated `template\n<div>\n",
	"unterminated /* comment\n<div>\n",
	"crlf // comment\r\n<div>\r\n",
	"multi-byte \"日本語<div>\" /* コメント */\n",
	"escape at end \"\\",
	"url http://example.com <div>\n",
}

func TestDesensitizePreservesShape(t *testing.T) {
	for _, in := range shapeInputs {
		got := Desensitize(in, DefaultStyle()).Text
		assertSameShape(t, in, got)
	}
}

func FuzzDesensitizePreservesShape(f *testing.F) {
	for _, in := range shapeInputs {
		f.Add(in)
	}
	f.Fuzz(func(t *testing.T, in string) {
		got := Desensitize(in, DefaultStyle()).Text
		assertSameShape(t, in, got)
	})
}

func assertSameShape(t *testing.T, in, got string) {
	t.Helper()
	if len(got) != len(in) {
		t.Fatalf("length changed for %q: got %d want %d", in, len(got), len(in))
	}
	for i := 0; i < len(in); i++ {
		if (in[i] == '\n') != (got[i] == '\n') {
			t.Fatalf("newline moved at offset %d for %q -> %q", i, in, got)
		}
	}
}

func TestDesensitizeMasksRegions(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "block comment", in: "a /* <div> */ b", want: "a             b"},
		{name: "block comment keeps newlines", in: "/* x\n<div> */", want: "    \n        "},
		{name: "line comment", in: "a // <div>\nb", want: "a         \nb"},
		{name: "double quote interior", in: `x = "<div>";`, want: `x = "     ";`},
		{name: "single quote interior", in: `x = '<div>';`, want: `x = '     ';`},
		{name: "template literal spans lines", in: "x = `a\n<div>`;", want: "x = ` \n     `;"},
		{name: "escaped delimiter stays inside", in: `x = "a\"<div>";`, want: `x = "        ";`},
		{name: "comment marker inside string", in: `x = "/* <div>"; <div>`, want: `x = "        "; <div>`},
		{name: "string delimiter inside comment", in: "// \"<div>\n<div>", want: "         \n<div>"},
		{name: "line marker inside block", in: "/* // */ <div>", want: "         <div>"},
		{name: "url in markup text", in: "<a>http://x.io</a>", want: "<a>http://x.io</a>"},
		{name: "apostrophe in markup text", in: "<p>Don't <div></p>", want: "<p>Don't <div></p>"},
		{name: "nested block markers do not nest", in: "/* a /* b */ <div> */", want: "             <div> */"},
		{name: "crlf preserved", in: "// x\r\n<div>", want: "    \r\n<div>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Desensitize(tc.in, DefaultStyle())
			if res.Text != tc.want {
				t.Fatalf("Desensitize(%q)\n got: %q\nwant: %q", tc.in, res.Text, tc.want)
			}
		})
	}
}

func TestDesensitizeUnterminatedComment(t *testing.T) {
	in := "<div>\n/* open\n<div>\n"
	res := Desensitize(in, DefaultStyle())
	if strings.Contains(res.Text[6:], "<div>") {
		t.Fatalf("comment should be masked to end of input: %q", res.Text)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %+v", len(res.Warnings), res.Warnings)
	}
	w := res.Warnings[0]
	if w.Kind != model.WarningUnterminatedComment || w.Line != 2 || w.Col != 1 {
		t.Fatalf("unexpected warning: %+v", w)
	}
}

func TestDesensitizeUnterminatedQuoteStopsAtLineEnd(t *testing.T) {
	in := "x = \"open\n<div>\n"
	res := Desensitize(in, DefaultStyle())
	if !strings.Contains(res.Text, "\n<div>\n") {
		t.Fatalf("unterminated quote consumed the next line: %q", res.Text)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Kind != model.WarningUnterminatedLiteral {
		t.Fatalf("expected one unterminated-literal warning, got %+v", res.Warnings)
	}
	if res.Warnings[0].Line != 1 {
		t.Fatalf("warning line mismatch: %+v", res.Warnings[0])
	}
}

func TestDesensitizeUnterminatedTemplateRunsToEnd(t *testing.T) {
	in := "x = `open\n<div>\n"
	res := Desensitize(in, DefaultStyle())
	if strings.Contains(res.Text, "<div>") {
		t.Fatalf("unterminated template literal should mask to end of input: %q", res.Text)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0].Message, "end of input") {
		t.Fatalf("unexpected warnings: %+v", res.Warnings)
	}
}

func TestDesensitizeEscapeAtEndOfInput(t *testing.T) {
	in := `x = "abc\`
	res := Desensitize(in, DefaultStyle())
	if res.Text != `x = "    ` {
		t.Fatalf("unexpected mask: %q", res.Text)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected one warning, got %+v", res.Warnings)
	}
}

func TestDesensitizeCustomPlaceholder(t *testing.T) {
	style := DefaultStyle()
	style.Placeholder = '#'
	res := Desensitize(`"ab"`, style)
	if res.Text != `"##"` {
		t.Fatalf("unexpected placeholder output: %q", res.Text)
	}
}

func TestDesensitizeStyleWithoutEscape(t *testing.T) {
	style := Style{Quotes: []Quote{{Delim: '\''}}}
	res := Desensitize(`'a\' <div>`, style)
	if res.Text != `'  ' <div>` {
		t.Fatalf("backslash must not escape when Escape is unset: %q", res.Text)
	}
}
