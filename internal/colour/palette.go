package colour

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// distance returns the euclidean distance between two colours in RGB space.
func (rgb RGB) distance(other RGB) float64 {
	return rgb.colorful().DistanceRgb(other.colorful())
}

func (rgb RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// ParseHex parses a 3 or 6 digit hex colour with or without a leading '#'.
// The second return value reports whether the input was well formed.
func ParseHex(hex string) (RGB, bool) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return RGB{}, false
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// HexToRGB returns the channels of hex. Malformed input yields black.
func HexToRGB(hex string) RGB {
	rgb, _ := ParseHex(hex)
	return rgb
}

// RGBToHex encodes channel values as "#RRGGBB". Values are clamped to [0,255].
func RGBToHex(r, g, b int) string {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}.Hex()
}

// NormaliseHex returns hex as uppercase "#RRGGBB", expanding the 3 digit
// shorthand. It reports false when hex is not a valid colour.
func NormaliseHex(hex string) (string, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return "", false
	}
	return rgb.Hex(), true
}

// IsHex reports whether s is a 3 or 6 digit hex colour.
func IsHex(s string) bool {
	_, ok := ParseHex(s)
	return ok
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Swatch is a named colour from one of the curated brand sets.
type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// BrandPalette is the curated set searched when suggesting a compliant
// replacement colour.
var BrandPalette = []Swatch{
	{Name: "Charcoal", Hex: "#404041"},
	{Name: "Light Grey", Hex: "#F0EEEE"},
	{Name: "Orange", Hex: "#F27927"},
	{Name: "Purple", Hex: "#B500B5"},
	{Name: "Sky Blue", Hex: "#00BFFF"},
	{Name: "Teal", Hex: "#336E7B"},
	{Name: "Lime Green", Hex: "#BAF73C"},
	{Name: "Red", Hex: "#F64747"},
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Near Black", Hex: "#1D2125"},
}

// LogoAccents are the six colours allowed for the logo accent text.
var LogoAccents = []Swatch{
	{Name: "Red", Hex: "#F64747"},
	{Name: "Orange", Hex: "#F27927"},
	{Name: "Purple", Hex: "#B500B5"},
	{Name: "Sky Blue", Hex: "#00BFFF"},
	{Name: "Teal", Hex: "#336E7B"},
	{Name: "Lime Green", Hex: "#BAF73C"},
}

// BlockedColours fail contrast as link or body text on white and should not
// be offered for those roles.
var BlockedColours = []string{"#F27927", "#00BFFF"}

// IsBlockedColour reports whether hex is one of BlockedColours.
func IsBlockedColour(hex string) bool {
	if hex == "" {
		return false
	}
	for _, b := range BlockedColours {
		if strings.EqualFold(b, hex) {
			return true
		}
	}
	return false
}

// SwatchName returns the curated name for hex, or "" if it is not in any set.
func SwatchName(hex string) string {
	for _, s := range BrandPalette {
		if strings.EqualFold(s.Hex, hex) {
			return s.Name
		}
	}
	return ""
}
