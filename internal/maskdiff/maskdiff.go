// Package maskdiff shows what the desensitizer hid as a classic unified diff
// between the original and the masked text.
package maskdiff

import (
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of context lines used when context < 0.
const DefaultContext = 3

// Unified returns the unified diff original↦masked. It returns "" when masking
// changed nothing.
func Unified(name, original, masked string, context int) (string, error) {
	if original == masked {
		return "", nil
	}
	if context < 0 {
		context = DefaultContext
	}
	u := difflib.UnifiedDiff{
		A:        splitLines(original),
		B:        splitLines(masked),
		FromFile: name,
		ToFile:   name + " (masked)",
		Context:  context,
	}
	return difflib.GetUnifiedDiffString(u)
}

// splitLines keeps the newline on every line and terminates the last one,
// so hunks never run two lines together.
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] += "\n"
	}
	return lines
}
