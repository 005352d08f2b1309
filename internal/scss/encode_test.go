package scss

import (
	"strings"
	"testing"

	"github.com/jmylchreest/boostkit/internal/tokens"
)

func TestEncodeDefaults(t *testing.T) {
	out := Encode(tokens.Defaults())

	if strings.TrimSpace(out.Variables) != variablesHeader {
		t.Errorf("default variables block should hold only the header, got:\n%s", out.Variables)
	}

	if got := strings.Count(out.Rules, "// ──"); got != 2 {
		t.Errorf("default rules block has %d sections, want 2:\n%s", got, out.Rules)
	}
	for _, want := range []string{"// ── Links ──", "a { text-decoration: underline; }", "// ── Focus Ring ──", "outline: 2px solid #0F6CBF !important;"} {
		if !strings.Contains(out.Rules, want) {
			t.Errorf("default rules missing %q", want)
		}
	}
	if strings.Contains(out.Rules, "Navbar") {
		t.Error("default rules should not mention the navbar")
	}
	if out.BrandColour != "#0F6CBF" {
		t.Errorf("BrandColour = %s", out.BrandColour)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	tok, err := tokens.ApplyPreset("cfa-dark-mode")
	if err != nil {
		t.Fatal(err)
	}
	tok.PageBg = "#1D2125"
	tok.ActIconContent = "#FFFFFF"

	first := Encode(tok)
	for i := 0; i < 5; i++ {
		if Encode(tok) != first {
			t.Fatal("Encode is not deterministic")
		}
	}
}

func TestEncodeSectionGates(t *testing.T) {
	tests := []struct {
		name     string
		edit     func(*tokens.Tokens)
		want     []string
		dontWant []string
	}{
		{
			name:     "navbar border alone does not open the navbar section",
			edit:     func(t *tokens.Tokens) { t.NavbarBorder = "#F27927" },
			dontWant: []string{"// ── Navbar ──"},
		},
		{
			name: "navbar background",
			edit: func(t *tokens.Tokens) {
				t.NavbarBg = "#1D2125"
				t.NavbarBorder = "#F27927"
			},
			want: []string{
				".navbar.fixed-top { background-color: #1D2125 !important; }",
				".navbar.fixed-top { border-bottom: 3px solid #F27927 !important; }",
				"// Dropdowns on white background",
			},
			dontWant: []string{"nav-link.active"},
		},
		{
			name: "nav hover text with default navbar",
			edit: func(t *tokens.Tokens) { t.NavHoverText = "#BAF73C" },
			want: []string{"// ── Nav Hover Text ──", "  color: #BAF73C !important;"},
		},
		{
			name: "footer accent",
			edit: func(t *tokens.Tokens) {
				t.FooterBg = "#404041"
				t.FooterText = "#F0EEEE"
				t.FooterAccent = "#F27927"
			},
			want: []string{"#page-footer { border-top: 4px solid #F27927 !important; }"},
		},
		{
			name:     "footer accent alone",
			edit:     func(t *tokens.Tokens) { t.FooterAccent = "#F27927" },
			dontWant: []string{"#page-footer"},
		},
		{
			name: "section accent",
			edit: func(t *tokens.Tokens) { t.SectionAccent = "#336E7B" },
			want: []string{".course-section h3 { border-bottom: 2px solid #336E7B; padding-bottom: 4px; }"},
		},
		{
			name:     "drawer text only",
			edit:     func(t *tokens.Tokens) { t.DrawerText = "#1D2125" },
			want:     []string{"  color: #1D2125 !important;", ".drawer .icon, .drawer .fa"},
			dontWant: []string{"border-color: #DEE2E6"},
		},
		{
			name: "body text adds icon fixes",
			edit: func(t *tokens.Tokens) { t.BodyText = "#1D2125" },
			want: []string{"body { color: #1D2125 !important; }", "// ── Icon Visibility Fix ──", ".icon, .fa { color: #404041 !important; }"},
		},
		{
			name:     "images",
			edit:     func(t *tokens.Tokens) { t.BackgroundImage = "data:image/png;base64,AAAA" },
			want:     []string{"// ── Background Image ──"},
			dontWant: []string{"base64", "Login Background Image"},
		},
		{
			name: "content width",
			edit: func(t *tokens.Tokens) { t.ContentMaxWidth = 1200 },
			want: []string{"#region-main { max-width: 1200px; margin-left: auto; margin-right: auto; }"},
		},
		{
			name:     "login with dark background and light card",
			edit:     func(t *tokens.Tokens) { t.LoginBg = "#1D2125" },
			want:     []string{"  background-color: #1D2125 !important;", "body#page-login-index .login-signup a {\n  color: #404041 !important;"},
			dontWant: []string{"#loginbtn"},
		},
		{
			name: "secondary nav text",
			edit: func(t *tokens.Tokens) { t.SecondaryNavText = "#336E7B" },
			want: []string{"// ── Secondary Navigation Text ──"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tokens.Defaults()
			tt.edit(&tok)
			rules := Encode(tok).Rules
			for _, w := range tt.want {
				if !strings.Contains(rules, w) {
					t.Errorf("rules missing %q:\n%s", w, rules)
				}
			}
			for _, w := range tt.dontWant {
				if strings.Contains(rules, w) {
					t.Errorf("rules should not contain %q", w)
				}
			}
		})
	}
}

func TestEncodeVariables(t *testing.T) {
	tok := tokens.Defaults()
	tok.BrandPrimary = "#336E7B"
	tok.BodyFontSize = 1
	tok.BtnRadius = 8
	tok.FontWeight = 500
	tok.HeadingScale = 1.2
	tok.ActIconContent = "#336E7B"

	vars := Encode(tok).Variables
	for _, want := range []string{
		"$primary: #336E7B;",
		"$font-size-base: 1rem;",
		"$btn-border-radius: 8px;",
		"$font-weight-base: 500;",
		"$h1-font-size: 2.0736rem;",
		"$h4-font-size: 1.2000rem;",
		"$activity-icon-colors: (\n    \"administration\": #5D63F6,",
		"    \"interface\": #A378FF\n);",
		"    \"content\": #336E7B,",
	} {
		if !strings.Contains(vars, want) {
			t.Errorf("variables missing %q:\n%s", want, vars)
		}
	}
	if strings.Contains(vars, "$link-color") {
		t.Error("unchanged link colour should not be emitted")
	}
	if strings.Contains(vars, "$input-bg") {
		t.Error("light page should not emit dark form variables")
	}
}

func TestEncodeDarkMode(t *testing.T) {
	tok := tokens.Defaults()
	tok.PageBg = "#1D2125"
	tok.CardBg = "#2A2F35"
	tok.CardBorder = "#404041"
	tok.BodyText = "#F0EEEE"
	tok.SecondaryNavText = "#F0EEEE"

	out := Encode(tok)
	for _, want := range []string{"$input-bg: #2A2F35;", "$dropdown-border-color: #404041;"} {
		if !strings.Contains(out.Variables, want) {
			t.Errorf("variables missing %q", want)
		}
	}
	for _, want := range []string{
		"// ── Dark Theme Overrides ──",
		".breadcrumb { background-color: #1D2125 !important; }",
		"table, th, td { color: #F0EEEE !important; }",
		"  color: #FFFFFF !important;\n  font-weight: 700;",
		".secondary-navigation .nav-tabs .nav-link {\n  color: #F0EEEE !important;\n}",
	} {
		if !strings.Contains(out.Rules, want) {
			t.Errorf("rules missing %q", want)
		}
	}
	if strings.Contains(out.Rules, "Secondary Navigation Text") {
		t.Error("dark mode writes secondary nav text inside the dark battery")
	}
}

func TestEncodeSection(t *testing.T) {
	out, err := EncodeSection(tokens.Defaults(), "buttons")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "// ── Buttons ──\n.btn-primary {") {
		t.Errorf("unexpected section:\n%s", out)
	}
	if _, err := EncodeSection(tokens.Defaults(), "nope"); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestSectionsHaveTemplates(t *testing.T) {
	for _, name := range Sections() {
		if sectionTemplates.Lookup(name) == nil {
			t.Errorf("section %s has no template", name)
		}
	}
}

func TestCustomProperties(t *testing.T) {
	tok := tokens.Defaults()
	tok.BackgroundImage = "data:image/png;base64,AAAA"

	css := CustomProperties(tok)
	if !strings.HasPrefix(css, ":root {\n") || !strings.HasSuffix(css, "}\n") {
		t.Fatalf("not a :root block:\n%s", css)
	}

	for _, want := range []string{
		"  --theme-brand-primary: #0F6CBF;\n",
		"  --theme-body-font-size: 0.9375rem;\n",
		"  --theme-login-input-radius: 4px;\n",
		"  --theme-section-accent: none;\n",
		"  --theme-logo-accent-colour: " + tok.Colour(tokens.LogoAccentColour, tok.NavbarBg) + ";\n",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("missing %q", want)
		}
	}
	for _, unwanted := range []string{"background-image", "login-bg-image", "base64"} {
		if strings.Contains(css, unwanted) {
			t.Errorf("blob role leaked into custom properties: %q", unwanted)
		}
	}
}
