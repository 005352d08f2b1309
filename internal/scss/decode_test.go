package scss

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jmylchreest/boostkit/internal/tokens"
)

func TestDecodeRoundTripRules(t *testing.T) {
	tok := tokens.Defaults()
	tok.NavbarBg = "#1D2125"
	tok.NavbarText = "#F0EEEE"
	tok.BtnPrimaryBg = "#336E7B"
	tok.BtnPrimaryText = "#FFFFFF"
	tok.FooterBg = "#404041"
	tok.FooterText = "#F0EEEE"
	tok.LoginBg = "#336E7B"

	got := DecodeRules(Encode(tok).Rules)

	want := map[tokens.Role]string{
		tokens.NavbarBg:       "#1D2125",
		tokens.NavbarText:     "#F0EEEE",
		tokens.BtnPrimaryBg:   "#336E7B",
		tokens.BtnPrimaryText: "#FFFFFF",
		tokens.FooterBg:       "#404041",
		tokens.FooterText:     "#F0EEEE",
		tokens.LoginBg:        "#336E7B",
	}
	for role, v := range want {
		if got[role] != v {
			t.Errorf("%s = %v, want %s", role, got[role], v)
		}
	}
}

func TestDecodeRoundTripBundle(t *testing.T) {
	presets := []string{"cfa-teal-pro", "cfa-teal-orange", "cfa-purple", "cfa-high-contrast", "cfa-burnt-orange"}

	roles := []tokens.Role{
		tokens.BrandPrimary, tokens.NavbarBg, tokens.NavbarText, tokens.NavHoverBg,
		tokens.EditModeOnColour, tokens.EditModeThumbColour,
		tokens.BtnPrimaryBg, tokens.BtnPrimaryText, tokens.BtnPrimaryHover,
		tokens.LinkColour, tokens.LinkHover, tokens.FooterBg, tokens.FooterText, tokens.FooterLink,
		tokens.LoginBg, tokens.LoginHeading, tokens.SecondaryNavActive,
		tokens.FocusRing, tokens.FocusRingWidth, tokens.Info, tokens.BodyFontSize,
	}

	for _, id := range presets {
		t.Run(id, func(t *testing.T) {
			tok, err := tokens.ApplyPreset(id)
			if err != nil {
				t.Fatal(err)
			}

			decoded := Decode(Bundle(Encode(tok)))
			got, err := tokens.Merge(tokens.Defaults(), decoded)
			if err != nil {
				t.Fatalf("decoded values rejected: %v", err)
			}

			for _, role := range roles {
				a, _ := tok.Get(role)
				b, _ := got.Get(role)
				if a != b {
					t.Errorf("%s = %v after round trip, want %v", role, b, a)
				}
			}
		})
	}
}

func TestDecodeIsStableUnderReencode(t *testing.T) {
	tok, err := tokens.ApplyPreset("cfa-high-contrast")
	if err != nil {
		t.Fatal(err)
	}
	first := Encode(tok)

	again, err := tokens.Merge(tokens.Defaults(), Decode(Bundle(first)))
	if err != nil {
		t.Fatal(err)
	}
	if second := Encode(again); second != first {
		t.Errorf("re-encoding decoded tokens changed the output\nfirst:\n%s\nsecond:\n%s", first.Rules, second.Rules)
	}
}

func TestDecodeGradient(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want tokens.Partial
	}{
		{
			name: "two stops",
			css:  "body#page-login-index {\n  background: linear-gradient(135deg, #336e7b, #1D2125) !important;\n}",
			want: tokens.Partial{
				tokens.LoginBg:              "#336E7B",
				tokens.LoginGradientEnd:     "#1D2125",
				tokens.LoginGradientEnabled: true,
			},
		},
		{
			name: "three stops are ignored",
			css:  "body#page-login-index { background: linear-gradient(135deg, #336E7B, #F27927, #1D2125); }",
			want: tokens.Partial{},
		},
		{
			name: "solid colour",
			css:  "body#page-login-index { background-color: #404041 !important; }",
			want: tokens.Partial{tokens.LoginBg: "#404041"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeRules(tt.css); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeRules() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeGradientRoundTrip(t *testing.T) {
	tok := tokens.Defaults()
	tok.LoginBg = "#336E7B"
	tok.LoginGradientEnabled = true
	tok.LoginGradientEnd = "#1D2125"

	got := DecodeRules(Encode(tok).Rules)
	if got[tokens.LoginGradientEnabled] != true || got[tokens.LoginGradientEnd] != "#1D2125" || got[tokens.LoginBg] != "#336E7B" {
		t.Errorf("gradient not recovered: %v", got)
	}
}

func TestDecodeVariables(t *testing.T) {
	tok := tokens.Defaults()
	tok.BrandPrimary = "#336E7B"
	tok.PageBg = "#F0EEEE"
	tok.BodyText = "#1D2125"
	tok.BodyFontSize = 1.0625
	tok.LineHeight = 1.6
	tok.BtnRadius = 8
	tok.LoginInputRadius = 0
	tok.FontFamily = tokens.FontOptions[1].Value
	tok.FontWeight = 500
	tok.HeadingScale = 1.333
	tok.Error = "#F64747"
	tok.ActIconAssessment = "#B500B5"

	got := DecodeVariables(Encode(tok).Variables)

	want := tokens.Partial{
		tokens.BrandPrimary:          "#336E7B",
		tokens.PageBg:                "#F0EEEE",
		tokens.BodyText:              "#1D2125",
		tokens.BodyFontSize:          1.0625,
		tokens.LineHeight:            1.6,
		tokens.BtnRadius:             8.0,
		tokens.LoginInputRadius:      0.0,
		tokens.FontFamily:            tokens.FontOptions[1].Value,
		tokens.FontWeight:            500.0,
		tokens.HeadingScale:          1.333,
		tokens.Error:                 "#F64747",
		tokens.ActIconAdministration: "#5D63F6",
		tokens.ActIconAssessment:     "#B500B5",
		tokens.ActIconCollaboration:  "#F7634D",
		tokens.ActIconCommunication:  "#11A676",
		tokens.ActIconContent:        "#399BE2",
		tokens.ActIconInterface:      "#A378FF",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeVariables() =\n%v\nwant\n%v", got, want)
	}
}

func TestDecodeHandEdited(t *testing.T) {
	css := `
/* tweaked by hand { */
.btn-primary:focus,
   .btn-primary:hover {
  background-color:#123abc;
}
.navbar.fixed-top{background-color:#1d2125}
// a line comment with a { brace
#page-footer {
  color: #eee ! important;
  a { color: #F27927; }
}
.navbar {
  color: #FFFFFF;
  .navbar-brand { color: #000000; }
}
@media (min-width: 768px) {
  .card { border-color: #DEE2E6; }
}
`
	got := DecodeRules(css)
	want := tokens.Partial{
		tokens.BtnPrimaryHover: "#123ABC",
		tokens.NavbarBg:        "#1D2125",
		tokens.FooterText:      "#EEEEEE",
		tokens.FooterLink:      "#F27927",
		tokens.NavbarText:      "#FFFFFF",
		tokens.CardBorder:      "#DEE2E6",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeRules() = %v, want %v", got, want)
	}
}

func TestDecodeFirstDeclarationWins(t *testing.T) {
	css := "#page-footer { color: #111111; }\n#page-footer { color: #222222; }"
	if got := DecodeRules(css)[tokens.FooterText]; got != "#111111" {
		t.Errorf("FooterText = %v, want #111111", got)
	}
}

func TestDecodeIgnoresInvalidHex(t *testing.T) {
	got := DecodeRules(".navbar.fixed-top { background-color: #1D2125AA; }\n.navbar { color: rgb(0,0,0); }")
	if len(got) != 0 {
		t.Errorf("expected nothing decoded, got %v", got)
	}
}

func TestDecodeNothing(t *testing.T) {
	for _, in := range []string{"", "   \n", "hello world", "p { margin: 0; }", "$unknown: 1;"} {
		if got := Decode(in); len(got) != 0 {
			t.Errorf("Decode(%q) = %v, want empty", in, got)
		}
	}
}

func TestDecodeFocusRing(t *testing.T) {
	got := DecodeRules("*:focus { outline: 3px solid #b500b5 !important; outline-offset: 2px; }")
	if got[tokens.FocusRingWidth] != 3.0 || got[tokens.FocusRing] != "#B500B5" {
		t.Errorf("focus ring = %v", got)
	}

	got = DecodeRules("*:focus { outline: #b500b5 dotted thick; }")
	if _, ok := got[tokens.FocusRingWidth]; ok || got[tokens.FocusRing] != "#B500B5" {
		t.Errorf("colour-only focus ring = %v", got)
	}
}

func TestBundle(t *testing.T) {
	out := Encode(tokens.Defaults())
	bundle := Bundle(out)

	if !strings.HasPrefix(bundle, BundleTitle+"\n") {
		t.Errorf("bundle does not start with the title:\n%s", bundle)
	}

	split, ok := SplitBundle(bundle)
	if !ok {
		t.Fatal("SplitBundle did not recognise the bundle")
	}
	if split.BrandColour != out.BrandColour {
		t.Errorf("BrandColour = %q, want %q", split.BrandColour, out.BrandColour)
	}
	if split.Variables != strings.TrimSpace(out.Variables) {
		t.Errorf("Variables = %q", split.Variables)
	}
	if split.Rules != strings.TrimSpace(out.Rules) {
		t.Errorf("Rules = %q", split.Rules)
	}
}

func TestSplitBundleForeignHeader(t *testing.T) {
	text := "=== CFA Moodle Theme Configuration ===\n\n--- Brand Colour ---\n#336e7b\n\n--- Raw SCSS ---\n.btn-primary { color: #FFFFFF; }\n"

	split, ok := SplitBundle(text)
	if !ok {
		t.Fatal("header not recognised")
	}
	if split.Variables != "" {
		t.Errorf("missing section should be empty, got %q", split.Variables)
	}

	got := Decode(text)
	if got[tokens.BrandPrimary] != "#336E7B" || got[tokens.BtnPrimaryText] != "#FFFFFF" {
		t.Errorf("Decode() = %v", got)
	}

	if _, ok := SplitBundle(".btn-primary { color: #FFFFFF; }"); ok {
		t.Error("plain SCSS should not be treated as a bundle")
	}
}

func TestDecodeDarkModeBreadcrumb(t *testing.T) {
	tests := []struct {
		name       string
		breadcrumb string
	}{
		{name: "transparent stays transparent", breadcrumb: tokens.Transparent},
		{name: "explicit colour survives", breadcrumb: "#2A2F35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tokens.Defaults()
			tok.PageBg = "#1D2125"
			tok.BreadcrumbBg = tt.breadcrumb

			encoded := Bundle(Encode(tok))
			got, err := tokens.Merge(tok, Decode(encoded))
			if err != nil {
				t.Fatalf("Merge() error = %v", err)
			}
			if got.BreadcrumbBg != tt.breadcrumb {
				t.Errorf("BreadcrumbBg = %q, want %q", got.BreadcrumbBg, tt.breadcrumb)
			}
			if got.PageBg != "#1D2125" {
				t.Errorf("PageBg = %q, want #1D2125", got.PageBg)
			}
			if again := Bundle(Encode(got)); again != encoded {
				t.Error("re-encoding the decoded theme changed the output")
			}
		})
	}
}

func TestVariablePatterns(t *testing.T) {
	for _, v := range variables {
		if _, ok := variablePatterns[v.name]; !ok {
			t.Errorf("no pattern for $%s", v.name)
		}
	}

	text := "$h4-font-size: 1.2000rem;\n  $primary: #336E7B !default;\n"
	if got, ok := variableValue(text, headingSizeVariable); !ok || got != "1.2000rem" {
		t.Errorf("variableValue(h4-font-size) = %q, %v", got, ok)
	}
	if got, ok := variableValue(text, "primary"); !ok || got != "#336E7B !default" {
		t.Errorf("variableValue(primary) = %q, %v", got, ok)
	}
	if _, ok := variableValue(text, "not-decoded"); ok {
		t.Error("unknown variable should not match")
	}
}

func BenchmarkDecode(b *testing.B) {
	tok := tokens.Defaults()
	tok.PageBg = "#1D2125"
	tok.NavbarBg = "#336E7B"
	text := Bundle(Encode(tok))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decode(text)
	}
}
