// Package colour provides the colour maths and WCAG contrast policy used to
// build and audit a theme. Every function takes and returns hex strings and
// is total: malformed input degrades to black rather than failing.
package colour

import (
	"math"
)

const (
	// darkLuminanceThreshold is calibrated so the mid-tone brand colours
	// classify as dark backgrounds.
	darkLuminanceThreshold = 0.179

	// TextLight is used on dark backgrounds.
	TextLight = "#FFFFFF"

	// TextDark is the charcoal used on light backgrounds.
	TextDark = "#404041"
)

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.x.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance.
func RelativeLuminance(hex string) float64 {
	rgb := HexToRGB(hex)

	r := linearise(float64(rgb.R) / 255.0)
	g := linearise(float64(rgb.G) / 255.0)
	b := linearise(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearise removes the sRGB gamma from a channel in [0,1].
func linearise(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
func ContrastRatio(a, b string) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// IsDarkBackground reports whether text on hex should be light.
func IsDarkBackground(hex string) bool {
	return RelativeLuminance(hex) < darkLuminanceThreshold
}

// AutoTextColour picks a readable text colour for the background bg.
func AutoTextColour(bg string) string {
	if IsDarkBackground(bg) {
		return TextLight
	}
	return TextDark
}

// Darken scales each channel of hex by (1 - percent/100), rounding and
// flooring at zero.
func Darken(hex string, percent float64) string {
	rgb := HexToRGB(hex)
	f := 1 - percent/100

	scale := func(c uint8) int {
		return int(math.Max(0, math.Round(float64(c)*f)))
	}
	return RGBToHex(scale(rgb.R), scale(rgb.G), scale(rgb.B))
}

// HexToHSL converts hex to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func HexToHSL(hex string) (h, s, l float64) {
	rgb := HexToRGB(hex)
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return 0, 0, l
	}

	// Saturation.
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	return h * 60, s, l
}

// HSLToHex converts HSL to an uppercase hex colour.
// h is hue in degrees, s is saturation (0-1), l is lightness (0-1).
func HSLToHex(h, s, l float64) string {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueToRGB(p, q, h+120)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-120)
	}

	return RGBToHex(
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)),
	)
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	// Normalise t to 0-360 range.
	t = math.Mod(t, 360)
	if t < 0 {
		t += 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
