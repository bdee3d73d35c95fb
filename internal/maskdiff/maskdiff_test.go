package maskdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedShowsMaskedLines(t *testing.T) {
	original := "a\n// <div>\nb\n"
	masked := "a\n        \nb\n"
	got, err := Unified("App.jsx", original, masked, 1)
	require.NoError(t, err)
	want := "--- App.jsx\n" +
		"+++ App.jsx (masked)\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"-// <div>\n" +
		"+        \n" +
		" b\n"
	assert.Equal(t, want, got)
}

func TestUnifiedIdenticalIsEmpty(t *testing.T) {
	got, err := Unified("App.jsx", "<div></div>\n", "<div></div>\n", 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnifiedWithoutTrailingNewline(t *testing.T) {
	got, err := Unified("x.js", "s = '<div>'", "s = '     '", -1)
	require.NoError(t, err)
	assert.Contains(t, got, "-s = '<div>'\n+s = '     '\n")
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{}, splitLines(""))
	assert.Equal(t, []string{"a\n", "b\n"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a\n", "b\n"}, splitLines("a\nb"))
}
