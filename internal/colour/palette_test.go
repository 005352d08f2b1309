package colour

import (
	"fmt"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGB
	}{
		{name: "six digit with hash", hex: "#0F6CBF", want: RGB{R: 15, G: 108, B: 191}},
		{name: "six digit lowercase", hex: "0f6cbf", want: RGB{R: 15, G: 108, B: 191}},
		{name: "three digit", hex: "#abc", want: RGB{R: 0xAA, G: 0xBB, B: 0xCC}},
		{name: "empty", hex: "", want: RGB{}},
		{name: "five digit", hex: "#12345", want: RGB{}},
		{name: "eight digit", hex: "#11223344", want: RGB{}},
		{name: "not hex", hex: "#GGGGGG", want: RGB{}},
		{name: "keyword", hex: "auto", want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexToRGB(tt.hex); got != tt.want {
				t.Errorf("HexToRGB(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{15, 108, 191, "#0F6CBF"},
		{0, 0, 0, "#000000"},
		{255, 255, 255, "#FFFFFF"},
		{-4, 300, 16, "#00FF10"},
	}

	for _, tt := range tests {
		if got := RGBToHex(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("RGBToHex(%d, %d, %d) = %s, want %s", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 51 {
				hex := fmt.Sprintf("#%02X%02X%02X", r, g, b)

				rgb := HexToRGB(hex)
				if got := RGBToHex(int(rgb.R), int(rgb.G), int(rgb.B)); got != hex {
					t.Fatalf("RGB round trip of %s gave %s", hex, got)
				}

				h, s, l := HexToHSL(hex)
				back := HexToRGB(HSLToHex(h, s, l))
				if !within(back.R, rgb.R, 1) || !within(back.G, rgb.G, 1) || !within(back.B, rgb.B, 1) {
					t.Fatalf("HSL round trip of %s gave %s", hex, back.Hex())
				}
			}
		}
	}
}

func within(a, b uint8, tolerance int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

func TestNormaliseHex(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"#0f6cbf", "#0F6CBF", true},
		{"fff", "#FFFFFF", true},
		{"  #336e7b ", "#336E7B", true},
		{"none", "", false},
		{"rgba(0,0,0,0.2)", "", false},
	}

	for _, tt := range tests {
		got, ok := NormaliseHex(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormaliseHex(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsBlockedColour(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{"#F27927", true},
		{"#f27927", true},
		{"#00BFFF", true},
		{"#336E7B", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsBlockedColour(tt.hex); got != tt.want {
			t.Errorf("IsBlockedColour(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestSwatchName(t *testing.T) {
	if got := SwatchName("#1d2125"); got != "Near Black" {
		t.Errorf("SwatchName(#1d2125) = %q, want Near Black", got)
	}
	if got := SwatchName("#123456"); got != "" {
		t.Errorf("SwatchName(#123456) = %q, want empty", got)
	}
}
