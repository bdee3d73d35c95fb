package termcolor

import "testing"

func TestApply(t *testing.T) {
	boldRed := Basic(1)
	boldRed.Bold = true
	if got, want := Apply(boldRed, "</div>", true), "\x1b[1;31m</div>\x1b[0m"; got != want {
		t.Fatalf("Apply produced %q, want %q", got, want)
	}
	if got := Apply(Style{}, "x", true); got != "x" {
		t.Fatalf("empty style should return original text, got %q", got)
	}
	if got := Apply(boldRed, "x", false); got != "x" {
		t.Fatalf("disabled Apply should return original text, got %q", got)
	}
}

func TestApplyPrefersRichestForeground(t *testing.T) {
	idx := 78
	rgb := [3]uint8{1, 2, 3}
	s := Style{Dim: true, Underline: true, FGBasic: new(int), FG256: &idx}
	if got, want := Apply(s, "x", true), "\x1b[2;4;38;5;78mx\x1b[0m"; got != want {
		t.Fatalf("256 color: got %q want %q", got, want)
	}
	s.FGTrue = &rgb
	if got, want := Apply(s, "x", true), "\x1b[2;4;38;2;1;2;3mx\x1b[0m"; got != want {
		t.Fatalf("truecolor: got %q want %q", got, want)
	}
}
