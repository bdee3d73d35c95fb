// Package textutil measures and trims report cells by terminal display width.
package textutil

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks a truncated cell.
const Ellipsis = "…"

// Width returns the number of terminal cells s occupies. Grapheme clusters
// (emoji sequences, combining marks) are measured as one unit.
func Width(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// Truncate shortens s to at most w cells, ending with Ellipsis when anything
// was cut. Grapheme clusters are never split.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if Width(s) <= w {
		return s
	}
	budget := w - runewidth.StringWidth(Ellipsis)
	if budget < 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := runewidth.StringWidth(g.Str())
		if used+cw > budget {
			break
		}
		b.WriteString(g.Str())
		used += cw
	}
	return b.String() + Ellipsis
}

// PadRight appends spaces until s is w cells wide.
func PadRight(s string, w int) string {
	if pad := w - Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// Cell replaces tabs, newlines and other control characters with spaces so a
// value cannot break table alignment.
func Cell(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
