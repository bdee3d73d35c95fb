// Package tag finds occurrences of one markup tag in masked source text and
// classifies each as an opening, closing or self-closing instance.
package tag

import (
	"fmt"
	"strings"

	"github.com/phyten/tagaudit/internal/model"
	"github.com/phyten/tagaudit/internal/source"
)

// snippetWindow bounds how much raw text is handed to model.MakeSnippet.
const snippetWindow = 4 * model.SnippetLimit

// Options tunes matching.
type Options struct {
	// IgnoreCase matches the tag name case-insensitively (<DIV> for div).
	IgnoreCase bool
	// BraceAware ignores '>' inside {...} expressions within the tag, so that
	// arrow functions in JSX attributes do not end the tag early.
	BraceAware bool
}

// ValidName reports whether name can be used as a tag name.
func ValidName(name string) error {
	if name == "" {
		return fmt.Errorf("tag name must not be empty")
	}
	if !isLetter(name[0]) {
		return fmt.Errorf("invalid tag name %q: must start with a letter", name)
	}
	for i := 1; i < len(name); i++ {
		if !isIdentByte(name[i]) {
			return fmt.Errorf("invalid tag name %q: unexpected %q", name, name[i])
		}
	}
	return nil
}

// Tokenize scans masked left to right for <name and </name occurrences.
// masked must be co-indexed with src (same length, same newline positions);
// line numbers and snippets are taken from src.
func Tokenize(masked string, src *source.Text, name string, opts Options) []model.Token {
	if name == "" || len(masked) == 0 {
		return nil
	}
	raw := masked
	if src != nil && src.Len() == len(masked) {
		raw = src.String()
	} else {
		src = source.New(masked)
	}

	var tokens []model.Token
	i := 0
	for i < len(masked) {
		idx := strings.IndexByte(masked[i:], '<')
		if idx < 0 {
			break
		}
		start := i + idx
		nameStart, closing := start+1, false
		if nameStart < len(masked) && masked[nameStart] == '/' {
			closing = true
			nameStart = skipSpace(masked, nameStart+1)
		}
		nameEnd := nameStart + len(name)
		if !matchName(masked, nameStart, name, opts.IgnoreCase) || (nameEnd < len(masked) && isIdentByte(masked[nameEnd])) {
			i = start + 1
			continue
		}

		end, terminated := findTerminator(masked, nameEnd, opts.BraceAware)
		kind := model.KindOpen
		switch {
		case closing:
			kind = model.KindClose
		case terminated && selfClosing(masked[nameEnd:end-1]):
			kind = model.KindSelfClose
		}

		line, col := src.LineCol(start)
		endLine, endCol := src.LineCol(end)
		snipEnd := end
		if snipEnd-start > snippetWindow {
			snipEnd = start + snippetWindow
		}
		tokens = append(tokens, model.Token{
			Kind:   kind,
			Line:   line,
			Col:    col,
			Offset: start,
			Span: model.Span{
				StartLine: line,
				StartCol:  col,
				EndLine:   endLine,
				EndCol:    endCol,
				ByteStart: start,
				ByteEnd:   end,
			},
			Snippet: model.MakeSnippet(raw[start:snipEnd]),
		})

		if opts.BraceAware {
			i = nameEnd
		} else {
			i = end
		}
	}
	return tokens
}

// findTerminator returns the offset just past the closing '>' and whether one
// was found. Without a '>' the tag runs to end of input.
func findTerminator(s string, from int, braceAware bool) (int, bool) {
	depth := 0
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '{':
			if braceAware {
				depth++
			}
		case '}':
			if braceAware && depth > 0 {
				depth--
			}
		case '>':
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return len(s), false
}

// selfClosing reports whether the attribute region ends with '/'.
func selfClosing(attrs string) bool {
	return strings.HasSuffix(strings.TrimRight(attrs, " \t\r\n"), "/")
}

func matchName(s string, at int, name string, ignoreCase bool) bool {
	if at+len(name) > len(s) {
		return false
	}
	candidate := s[at : at+len(name)]
	if ignoreCase {
		return strings.EqualFold(candidate, name)
	}
	return candidate == name
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\r' || s[i] == '\n') {
		i++
	}
	return i
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isIdentByte covers the bytes that may continue a tag name: letters, digits
// and the separators used by custom elements, namespaces and JSX members.
func isIdentByte(b byte) bool {
	return isLetter(b) || (b >= '0' && b <= '9') || b == '_' || b == '-' || b == '.' || b == ':' || b == '$' || b >= 0x80
}
