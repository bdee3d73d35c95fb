package colorutil

import "testing"

func TestRampEndpoints(t *testing.T) {
	cases := []struct {
		t    float64
		want RGB
	}{
		{-1, Green},
		{0, Green},
		{0.25, RGB{128, 255, 0}},
		{0.5, Yellow},
		{0.75, RGB{255, 128, 0}},
		{1, Red},
		{3, Red},
	}
	for _, tc := range cases {
		if got := Ramp(tc.t); got != tc.want {
			t.Fatalf("Ramp(%v) = %+v, want %+v", tc.t, got, tc.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{220, 38, 38}).Hex(); got != "#dc2626" {
		t.Fatalf("Hex = %q", got)
	}
}

func TestContrastRatio(t *testing.T) {
	if r := ContrastRatio(Black, White); r < 20.9 || r > 21.1 {
		t.Fatalf("black/white contrast = %.2f, want 21", r)
	}
	if r := ContrastRatio(Red, Red); r != 1 {
		t.Fatalf("identical colors should have ratio 1, got %.2f", r)
	}
}

func TestTextOnBadges(t *testing.T) {
	cases := []struct {
		name string
		bg   RGB
		want RGB
	}{
		{"green", Green, Black},
		{"yellow", Yellow, Black},
		{"problem", RGB{220, 38, 38}, White},
		{"navy", RGB{15, 23, 42}, White},
	}
	for _, tc := range cases {
		if got := TextOn(tc.bg); got != tc.want {
			t.Fatalf("%s: TextOn = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestReadableOnLightBackground(t *testing.T) {
	bg := RGB{249, 250, 251}
	for _, fg := range []RGB{{80, 200, 120}, {90, 190, 210}, Yellow} {
		got := Readable(fg, bg, MinContrast)
		if ContrastRatio(got, bg) < MinContrast {
			t.Fatalf("Readable(%+v) = %+v has contrast %.2f", fg, got, ContrastRatio(got, bg))
		}
	}
	dark := RGB{10, 10, 10}
	if got := Readable(dark, bg, MinContrast); got != dark {
		t.Fatalf("already readable colors must be kept, got %+v", got)
	}
}
