// Package colorutil holds the small amount of sRGB math used to pick readable
// colors for depth badges and tag kinds.
package colorutil

import (
	"fmt"
	"math"
)

type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black  = RGB{0, 0, 0}
	White  = RGB{255, 255, 255}
	Green  = RGB{0, 255, 0}
	Yellow = RGB{255, 255, 0}
	Red    = RGB{255, 0, 0}
)

// MinContrast is the WCAG AA ratio for normal text.
const MinContrast = 4.5

// Hex renders c as a CSS color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Array returns c in the layout used by termcolor.Style.FGTrue.
func (c RGB) Array() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Scale multiplies every channel by f (clamped to 0..1).
func (c RGB) Scale(f float64) RGB {
	f = clamp01(f)
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Lerp interpolates from a to b; t is clamped to 0..1.
func Lerp(a, b RGB, t float64) RGB {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// Ramp maps t in 0..1 onto green, yellow, red.
func Ramp(t float64) RGB {
	t = clamp01(t)
	if t < 0.5 {
		return Lerp(Green, Yellow, t/0.5)
	}
	return Lerp(Yellow, Red, (t-0.5)/0.5)
}

func linear(channel uint8) float64 {
	c := float64(channel) / 255.0
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func luminance(c RGB) float64 {
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// ContrastRatio is the WCAG contrast ratio between two colors, 1..21.
func ContrastRatio(a, b RGB) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// TextOn picks black or white text for a badge background.
func TextOn(bg RGB) RGB {
	onBlack := ContrastRatio(Black, bg)
	if onBlack >= MinContrast || onBlack >= ContrastRatio(White, bg) {
		return Black
	}
	return White
}

// Readable darkens fg step by step until it reaches minRatio against bg and
// falls back to TextOn(bg) when darkening alone is not enough.
func Readable(fg, bg RGB, minRatio float64) RGB {
	if minRatio <= 0 {
		minRatio = MinContrast
	}
	cur := fg
	for i := 0; i < 20 && ContrastRatio(cur, bg) < minRatio; i++ {
		cur = cur.Scale(0.85)
	}
	if ContrastRatio(cur, bg) >= minRatio {
		return cur
	}
	return TextOn(bg)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
