package colour

import (
	"testing"
)

func TestThresholds(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(float64) bool
		ratio float64
		want  bool
	}{
		{"AA just below", MeetsAA, 4.49999, false},
		{"AA boundary", MeetsAA, 4.5, true},
		{"AAA just below", MeetsAAA, 6.99999, false},
		{"AAA boundary", MeetsAAA, 7.0, true},
		{"AA large just below", MeetsAALarge, 2.99999, false},
		{"AA large boundary", MeetsAALarge, 3.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.ratio); got != tt.want {
				t.Errorf("ratio %v = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestSuggestFix(t *testing.T) {
	t.Run("orange on white picks nearest passing swatch", func(t *testing.T) {
		fix, ok := SuggestFix("#F27927", "#FFFFFF", false)
		if !ok {
			t.Fatal("expected a fix")
		}
		if fix != "#404041" {
			t.Errorf("fix = %s, want #404041", fix)
		}
		if r := ContrastRatio(fix, "#FFFFFF"); r < RatioAA {
			t.Errorf("fix %s has ratio %.2f, want >= %.1f", fix, r, RatioAA)
		}
	})

	t.Run("large text uses the lower target", func(t *testing.T) {
		fix, ok := SuggestFix("#00BFFF", "#FFFFFF", true)
		if !ok {
			t.Fatal("expected a fix")
		}
		if r := ContrastRatio(fix, "#FFFFFF"); r < RatioAALarge {
			t.Errorf("fix %s has ratio %.2f, want >= %.1f", fix, r, RatioAALarge)
		}
	})

	t.Run("mid grey background falls back to darkening", func(t *testing.T) {
		fix, ok := SuggestFix("#808080", "#808080", false)
		if !ok {
			t.Fatal("expected a fix")
		}
		if SwatchName(fix) != "" {
			t.Errorf("fix %s came from the palette, want a darkened colour", fix)
		}
		if r := ContrastRatio(fix, "#808080"); r < RatioAA {
			t.Errorf("fix %s has ratio %.2f, want >= %.1f", fix, r, RatioAA)
		}
	})
}

func TestBestAccentColour(t *testing.T) {
	tests := []struct {
		name string
		bg   string
		want string
	}{
		{"empty background", "", "#F64747"},
		{"white prefers red", "#FFFFFF", "#F64747"},
		{"near black prefers lime", "#1D2125", "#BAF73C"},
		{"mid grey skips failing light preferences", "#808080", "#BAF73C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestAccentColour(tt.bg); got != tt.want {
				t.Errorf("BestAccentColour(%q) = %s, want %s", tt.bg, got, tt.want)
			}
		})
	}
}

func TestBestAccentColourIsTotal(t *testing.T) {
	accents := make(map[string]bool, len(LogoAccents))
	for _, a := range LogoAccents {
		accents[a.Hex] = true
	}

	for _, bg := range []string{"#000000", "#FFFFFF", "#F27927", "#BAF73C", "#00BFFF", "#777777", "bogus"} {
		if got := BestAccentColour(bg); !accents[got] {
			t.Errorf("BestAccentColour(%s) = %s, not a logo accent", bg, got)
		}
	}
}
