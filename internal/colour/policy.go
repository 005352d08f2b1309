package colour

import (
	"math"
)

// WCAG contrast thresholds.
const (
	RatioAA      = 4.5
	RatioAAA     = 7.0
	RatioAALarge = 3.0
)

// fixSteps bounds the darkening search in SuggestFix. Each step removes
// fixStep of HSL lightness.
const (
	fixSteps = 50
	fixStep  = 0.02
)

// MeetsAA reports whether ratio passes WCAG AA for normal text.
func MeetsAA(ratio float64) bool {
	return ratio >= RatioAA
}

// MeetsAAA reports whether ratio passes WCAG AAA for normal text.
func MeetsAAA(ratio float64) bool {
	return ratio >= RatioAAA
}

// MeetsAALarge reports whether ratio passes WCAG AA for large text.
func MeetsAALarge(ratio float64) bool {
	return ratio >= RatioAALarge
}

// TargetRatio returns the AA ratio that applies to normal or large text.
func TargetRatio(largeText bool) float64 {
	if largeText {
		return RatioAALarge
	}
	return RatioAA
}

// SuggestFix proposes a replacement for fg that reaches AA contrast on bg.
//
// The brand palette is searched first and the passing swatch nearest to fg
// wins. Failing that, fg is darkened in HSL lightness until it passes. The
// boolean is false when neither finds a compliant colour.
func SuggestFix(fg, bg string, largeText bool) (string, bool) {
	target := TargetRatio(largeText)

	from := HexToRGB(fg)
	best := ""
	bestDistance := math.Inf(1)
	for _, swatch := range BrandPalette {
		if ContrastRatio(swatch.Hex, bg) < target {
			continue
		}
		// Strict comparison keeps the earlier swatch on ties.
		if d := from.distance(HexToRGB(swatch.Hex)); d < bestDistance {
			bestDistance = d
			best = swatch.Hex
		}
	}
	if best != "" {
		return best, true
	}

	h, s, l := HexToHSL(fg)
	for step := 1; step <= fixSteps; step++ {
		darker := HSLToHex(h, s, math.Max(0, l-float64(step)*fixStep))
		if ContrastRatio(darker, bg) >= target {
			return darker, true
		}
	}
	return "", false
}

// Preference orders for logo accents. The two lists are curated
// independently.
var (
	accentOrderDark  = []string{"#BAF73C", "#F27927", "#00BFFF", "#F64747", "#B500B5", "#336E7B"}
	accentOrderLight = []string{"#F64747", "#336E7B", "#B500B5", "#F27927", "#BAF73C", "#00BFFF"}
)

// BestAccentColour picks the logo accent for the background bg. It returns
// the first accent in the background's preference order reaching large-text
// contrast, or the highest-contrast accent when none does.
func BestAccentColour(bg string) string {
	if bg == "" {
		return LogoAccents[0].Hex
	}

	order := accentOrderLight
	if IsDarkBackground(bg) {
		order = accentOrderDark
	}

	for _, hex := range order {
		if ContrastRatio(hex, bg) >= RatioAALarge {
			return hex
		}
	}

	best := order[0]
	bestRatio := 0.0
	for _, hex := range order {
		if r := ContrastRatio(hex, bg); r > bestRatio {
			bestRatio = r
			best = hex
		}
	}
	return best
}
