package termcolor

import (
	"github.com/phyten/tagaudit/internal/colorutil"
	"github.com/phyten/tagaudit/internal/model"
)

// DefaultMaxDepth is the nesting depth rendered with the hottest gradient color.
const DefaultMaxDepth = 8

// lightBackground approximates a typical light terminal background.
var lightBackground = colorutil.RGB{R: 249, G: 250, B: 251}

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// ProblemStyle highlights excess closes, unclosed opens and the final depth
// when it is not zero.
func ProblemStyle() Style {
	s := Basic(1)
	s.Bold = true
	return s
}

// OKStyle marks the balanced summary line.
func OKStyle() Style {
	return Basic(2)
}

type kindColor struct {
	basic    int
	dark256  int
	light256 int
	rgb      colorutil.RGB
}

var kindColors = map[model.Kind]kindColor{
	model.KindOpen:  {basic: 2, dark256: 78, light256: 28, rgb: colorutil.RGB{R: 80, G: 200, B: 120}},
	model.KindClose: {basic: 6, dark256: 80, light256: 30, rgb: colorutil.RGB{R: 90, G: 190, B: 210}},
}

// KindStyle colors a tag kind. Self-closing tags do not move the depth and are dimmed.
func KindStyle(kind model.Kind, scheme Scheme, profile Profile) Style {
	if kind == model.KindSelfClose {
		return Style{Dim: true}
	}
	c, ok := kindColors[kind]
	if !ok {
		return Style{}
	}
	switch profile {
	case ProfileTrueColor:
		fg := c.rgb
		if scheme == SchemeLight {
			fg = colorutil.Readable(fg, lightBackground, colorutil.MinContrast)
		}
		rgb := fg.Array()
		return Style{FGTrue: &rgb}
	case ProfileANSI256:
		idx := c.dark256
		if scheme == SchemeLight {
			idx = c.light256
		}
		return Style{FG256: &idx}
	default:
		s := Basic(c.basic)
		s.Bold = scheme != SchemeLight
		return s
	}
}

// DepthStyle maps a nesting depth onto a green to red gradient.
// Negative depths are always problems.
func DepthStyle(depth int, profile Profile, maxDepth float64) Style {
	if depth < 0 {
		return ProblemStyle()
	}
	switch profile {
	case ProfileTrueColor:
		rgb := DepthRGB(depth, maxDepth).Array()
		return Style{FGTrue: &rgb}
	case ProfileANSI256:
		c := DepthRGB(depth, maxDepth)
		idx := rgbToANSI256(c.R, c.G, c.B)
		return Style{FG256: &idx}
	default:
		return Basic(depthBucketColor(depth))
	}
}

// DepthRGB returns the gradient color for depth, from green at 0 to red at maxDepth.
func DepthRGB(depth int, maxDepth float64) colorutil.RGB {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return colorutil.Ramp(float64(depth) / maxDepth)
}

func depthBucketColor(depth int) int {
	switch {
	case depth <= 1:
		return 2
	case depth <= 3:
		return 3
	case depth <= 6:
		return 5
	default:
		return 1
	}
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
