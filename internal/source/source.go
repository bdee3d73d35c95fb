// Package source holds an immutable text buffer together with the index used to
// map byte offsets back to 1-based line and column numbers.
package source

import (
	"sort"
	"strings"
)

// Text is the raw input plus its line-start offsets.
type Text struct {
	content     string
	lineOffsets []int
}

// New indexes content. The returned value is never modified.
func New(content string) *Text {
	return &Text{content: content, lineOffsets: computeLineOffsets(content)}
}

// String returns the original content.
func (t *Text) String() string { return t.content }

// Len returns the content length in bytes.
func (t *Text) Len() int { return len(t.content) }

// LineCount returns the number of lines; a trailing newline does not open a new line.
func (t *Text) LineCount() int {
	if len(t.content) == 0 {
		return 0
	}
	n := strings.Count(t.content, "\n")
	if !strings.HasSuffix(t.content, "\n") {
		n++
	}
	return n
}

// Line returns the 1-based line containing offset.
func (t *Text) Line(offset int) int {
	line, _ := t.LineCol(offset)
	return line
}

// LineCol returns the 1-based line and byte column of offset. Offsets past the
// end are clamped to the end of the buffer.
func (t *Text) LineCol(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.content) {
		offset = len(t.content)
	}
	idx := sort.Search(len(t.lineOffsets), func(i int) bool { return t.lineOffsets[i] > offset })
	if idx == 0 {
		return 1, offset + 1
	}
	return idx, offset - t.lineOffsets[idx-1] + 1
}

func computeLineOffsets(content string) []int {
	offsets := make([]int, 0, strings.Count(content, "\n")+1)
	offsets = append(offsets, 0)
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' && i+1 < len(content) {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
