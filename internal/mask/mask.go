// Package mask blanks out comments and string/template literals in source text
// while keeping its exact byte length and every newline position, so that
// offsets and line numbers computed on the masked text stay valid for the
// original.
package mask

import (
	"fmt"

	"github.com/phyten/tagaudit/internal/model"
	"github.com/phyten/tagaudit/internal/source"
)

// Pair is an opening/closing marker pair for block comments.
type Pair struct {
	Open  string
	Close string
}

// Quote describes one literal delimiter. Single-line literals stop at the end
// of their line when unterminated; multi-line ones run to end of input.
type Quote struct {
	Delim     byte
	Multiline bool
	// NotAfterWord skips delimiters directly preceded by a word byte, which
	// keeps apostrophes in markup text ("Don't") from opening a literal.
	NotAfterWord bool
}

// Style configures the lexical markers for one host language.
type Style struct {
	BlockComments []Pair
	LinePrefixes  []string
	Quotes        []Quote
	// Escape makes the following byte literal inside a quote. Zero disables escapes.
	Escape byte
	// Placeholder replaces masked bytes. Zero means a space.
	Placeholder byte
	// URLSafe ignores line-comment markers directly preceded by ':' so that
	// "http://..." in markup text is not taken for a comment.
	URLSafe bool
}

// DefaultStyle is the JavaScript/JSX lexical style.
func DefaultStyle() Style {
	return Style{
		BlockComments: []Pair{{Open: "/*", Close: "*/"}},
		LinePrefixes:  []string{"//"},
		Quotes: []Quote{
			{Delim: '"', NotAfterWord: true},
			{Delim: '\'', NotAfterWord: true},
			{Delim: '`', Multiline: true},
		},
		Escape:      '\\',
		Placeholder: ' ',
		URLSafe:     true,
	}
}

// Result is the masked text plus non-fatal warnings about unterminated regions.
type Result struct {
	Text     string
	Warnings []model.Warning
}

type regionKind int

const (
	regionBlock regionKind = iota + 1
	regionLine
	regionLiteral
)

type region struct {
	kind regionKind
	// start/end bound the whole region; maskStart/maskEnd the bytes to blank.
	start      int
	end        int
	maskStart  int
	maskEnd    int
	terminated bool
	delim      byte
}

// Desensitize masks text according to style. It runs three passes over the
// output of the previous one: block comments, line comments, then literals.
// Every pass lexes with the full style so markers that sit inside another kind
// of region are skipped rather than reinterpreted.
func Desensitize(text string, style Style) Result {
	if style.Placeholder == 0 || style.Placeholder == '\n' || style.Placeholder == '\r' {
		style.Placeholder = ' '
	}
	buf := []byte(text)
	src := source.New(text)
	var warnings []model.Warning
	for _, target := range []regionKind{regionBlock, regionLine, regionLiteral} {
		warnings = maskPass(buf, style, target, src, warnings)
	}
	return Result{Text: string(buf), Warnings: warnings}
}

func maskPass(buf []byte, style Style, target regionKind, src *source.Text, warnings []model.Warning) []model.Warning {
	pos := 0
	for pos < len(buf) {
		r, ok := nextRegion(buf, pos, style)
		if !ok {
			break
		}
		if r.kind == target {
			blank(buf, r.maskStart, r.maskEnd, style.Placeholder)
			if !r.terminated {
				warnings = append(warnings, warningFor(r, src))
			}
		}
		if r.end <= pos {
			pos++
			continue
		}
		pos = r.end
	}
	return warnings
}

// nextRegion finds the first comment or literal starting at or after from.
func nextRegion(buf []byte, from int, style Style) (region, bool) {
	for i := from; i < len(buf); i++ {
		for _, pair := range style.BlockComments {
			if pair.Open == "" || !hasPrefixAt(buf, i, pair.Open) {
				continue
			}
			return blockRegion(buf, i, pair), true
		}
		for _, prefix := range style.LinePrefixes {
			if prefix == "" || !hasPrefixAt(buf, i, prefix) {
				continue
			}
			if style.URLSafe && i > 0 && buf[i-1] == ':' {
				continue
			}
			return lineRegion(buf, i), true
		}
		for _, q := range style.Quotes {
			if buf[i] != q.Delim {
				continue
			}
			if q.NotAfterWord && i > 0 && isWordByte(buf[i-1]) {
				continue
			}
			return literalRegion(buf, i, q, style.Escape), true
		}
	}
	return region{}, false
}

func blockRegion(buf []byte, start int, pair Pair) region {
	r := region{kind: regionBlock, start: start, maskStart: start}
	body := start + len(pair.Open)
	if idx := indexFrom(buf, body, pair.Close); idx >= 0 {
		r.end = idx + len(pair.Close)
		r.terminated = true
	} else {
		r.end = len(buf)
	}
	r.maskEnd = r.end
	return r
}

func lineRegion(buf []byte, start int) region {
	end := len(buf)
	for i := start; i < len(buf); i++ {
		if buf[i] == '\n' {
			end = i
			break
		}
	}
	return region{kind: regionLine, start: start, end: end, maskStart: start, maskEnd: end, terminated: true}
}

func literalRegion(buf []byte, start int, q Quote, escape byte) region {
	r := region{kind: regionLiteral, start: start, maskStart: start + 1, delim: q.Delim}
	i := start + 1
	for i < len(buf) {
		c := buf[i]
		switch {
		case escape != 0 && c == escape:
			if i+1 >= len(buf) {
				i = len(buf)
				continue
			}
			i += 2
		case c == q.Delim:
			r.maskEnd = i
			r.end = i + 1
			r.terminated = true
			return r
		case c == '\n' && !q.Multiline:
			r.maskEnd = i
			r.end = i
			return r
		default:
			i++
		}
	}
	r.maskEnd = len(buf)
	r.end = len(buf)
	return r
}

func warningFor(r region, src *source.Text) model.Warning {
	line, col := src.LineCol(r.start)
	w := model.Warning{Line: line, Col: col, Offset: r.start}
	switch r.kind {
	case regionBlock:
		w.Kind = model.WarningUnterminatedComment
		w.Message = "unterminated block comment; masked to end of input"
	default:
		w.Kind = model.WarningUnterminatedLiteral
		w.Message = fmt.Sprintf("unterminated %c literal; masked to end of line", r.delim)
		if r.end == src.Len() {
			w.Message = fmt.Sprintf("unterminated %c literal; masked to end of input", r.delim)
		}
	}
	return w
}

// blank overwrites buf[start:end] with placeholder, leaving line terminators.
func blank(buf []byte, start, end int, placeholder byte) {
	if end > len(buf) {
		end = len(buf)
	}
	for i := start; i < end; i++ {
		if buf[i] == '\n' || buf[i] == '\r' {
			continue
		}
		buf[i] = placeholder
	}
}

func hasPrefixAt(buf []byte, at int, prefix string) bool {
	if at+len(prefix) > len(buf) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if buf[at+i] != prefix[i] {
			return false
		}
	}
	return true
}

func indexFrom(buf []byte, from int, needle string) int {
	if needle == "" {
		return -1
	}
	for i := from; i+len(needle) <= len(buf); i++ {
		if hasPrefixAt(buf, i, needle) {
			return i
		}
	}
	return -1
}

// isWordByte reports ASCII letters, digits, '_' and any non-ASCII byte.
func isWordByte(b byte) bool {
	return b == '_' || b >= 0x80 ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
