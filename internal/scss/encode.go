// Package scss converts a token set to the two SCSS blocks pasted into the
// Moodle Boost theme settings, and parses such text back into a partial token
// set.
//
// The variables block holds "$name: value;" declarations for Raw initial
// SCSS. The rules block holds selector overrides for Raw SCSS. Both are
// emitted from fixed tables so the decoder can invert them.
package scss

import (
	"bytes"
	"embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/jmylchreest/boostkit/internal/colour"
	"github.com/jmylchreest/boostkit/internal/tokens"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var sectionTemplates = template.Must(
	template.New("scss").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.tmpl"),
)

// Block headers.
const (
	variablesHeader = "// Moodle Boost theme: Raw initial SCSS\n" +
		"// Paste into: Site administration > Appearance > Themes > Boost > Raw initial SCSS"
	rulesHeader = "// Moodle Boost theme: Raw SCSS\n" +
		"// Paste into: Site administration > Appearance > Themes > Boost > Raw SCSS"
)

// Output is the result of Encode.
type Output struct {
	// BrandColour is pasted into the Boost "Brand colour" setting.
	BrandColour string
	// Variables is the Raw initial SCSS block.
	Variables string
	// Rules is the Raw SCSS block.
	Rules string
}

// variable binds a Bootstrap SCSS variable to a role. The value is written
// with the role's unit.
type variable struct {
	name string
	role tokens.Role
}

var variables = []variable{
	{"primary", tokens.BrandPrimary},
	{"link-color", tokens.LinkColour},
	{"body-bg", tokens.PageBg},
	{"body-color", tokens.BodyText},
	{"card-bg", tokens.CardBg},
	{"font-size-base", tokens.BodyFontSize},
	{"line-height-base", tokens.LineHeight},
	{"success", tokens.Success},
	{"warning", tokens.Warning},
	{"danger", tokens.Error},
	{"info", tokens.Info},
	{"btn-border-radius", tokens.BtnRadius},
	{"input-border-radius", tokens.LoginInputRadius},
	{"font-family-sans-serif", tokens.FontFamily},
	{"font-weight-base", tokens.FontWeight},
}

// activityIconKeys are the $activity-icon-colors map keys, aligned with
// tokens.ActivityIcons.
var activityIconKeys = []string{
	"administration",
	"assessment",
	"collaboration",
	"communication",
	"content",
	"interface",
}

// view is the data passed to section templates.
type view struct {
	T    tokens.Tokens
	D    tokens.Tokens
	Dark bool
}

// gate reports whether a section is emitted.
type gate func(v view) bool

// section is one named block of the rules output. Roles lists the roles the
// section writes; sections with a nil gate are always emitted.
type section struct {
	name  string
	roles []tokens.Role
	gate  gate
}

func differs(roles ...tokens.Role) gate {
	return func(v view) bool { return v.T.Differs(v.D, roles...) }
}

var sections = []section{
	{
		name:  "navbar",
		roles: []tokens.Role{tokens.NavbarBg, tokens.NavbarText, tokens.NavbarBorder, tokens.NavHoverBg, tokens.NavHoverText, tokens.NavActiveUnderline, tokens.EditModeOnColour, tokens.EditModeThumbColour},
		gate:  differs(tokens.NavbarBg, tokens.NavbarText),
	},
	{name: "links"},
	{name: "focus", roles: []tokens.Role{tokens.FocusRing, tokens.FocusRingWidth}},
	{
		name:  "buttons",
		roles: []tokens.Role{tokens.BtnPrimaryBg, tokens.BtnPrimaryText, tokens.BtnPrimaryHover},
		gate:  differs(tokens.BtnPrimaryBg, tokens.BtnPrimaryText),
	},
	{
		name:  "footer",
		roles: []tokens.Role{tokens.FooterBg, tokens.FooterText, tokens.FooterLink, tokens.FooterAccent},
		gate:  differs(tokens.FooterBg, tokens.FooterText),
	},
	{
		name:  "login",
		roles: []tokens.Role{tokens.LoginBg, tokens.LoginGradientEnabled, tokens.LoginGradientEnd, tokens.LoginCardBg, tokens.LoginBtnBg, tokens.LoginBtnText, tokens.LoginHeading},
		gate:  differs(tokens.LoginBg),
	},
	{
		name:  "breadcrumb",
		roles: []tokens.Role{tokens.BreadcrumbBg},
		gate: func(v view) bool {
			return v.T.BreadcrumbBg != tokens.Transparent && v.T.Differs(v.D, tokens.BreadcrumbBg)
		},
	},
	{
		name:  "section-accent",
		roles: []tokens.Role{tokens.SectionAccent},
		gate:  func(v view) bool { return v.T.SectionAccent != tokens.None },
	},
	{
		name:  "secondary-nav",
		roles: []tokens.Role{tokens.SecondaryNavActive},
		gate:  differs(tokens.SecondaryNavActive),
	},
	{
		name:  "drawers",
		roles: []tokens.Role{tokens.DrawerBg, tokens.DrawerText, tokens.DrawerBorder},
		gate:  differs(tokens.DrawerBg, tokens.DrawerText),
	},
	{
		name:  "headings",
		roles: []tokens.Role{tokens.HeadingText},
		gate:  differs(tokens.HeadingText),
	},
	{
		name:  "body-text",
		roles: []tokens.Role{tokens.BodyText, tokens.LinkColour},
		gate:  differs(tokens.BodyText),
	},
	{
		name:  "background-image",
		roles: []tokens.Role{tokens.BackgroundImage},
		gate:  func(v view) bool { return v.T.BackgroundImage != "" },
	},
	{
		name:  "login-image",
		roles: []tokens.Role{tokens.LoginBgImage},
		gate:  func(v view) bool { return v.T.LoginBgImage != "" },
	},
	{
		name:  "cards",
		roles: []tokens.Role{tokens.CardBg, tokens.CardBorder},
		gate:  differs(tokens.CardBg, tokens.CardBorder),
	},
	{
		name:  "content-width",
		roles: []tokens.Role{tokens.ContentMaxWidth},
		gate:  differs(tokens.ContentMaxWidth),
	},
	{
		name:  "signup",
		roles: []tokens.Role{tokens.SignupBtnBg},
		gate:  differs(tokens.SignupBtnBg),
	},
	{
		name:  "link-hover",
		roles: []tokens.Role{tokens.LinkHover},
		gate:  differs(tokens.LinkHover),
	},
	{
		name:  "secondary-nav-text",
		roles: []tokens.Role{tokens.SecondaryNavText},
		gate:  func(v view) bool { return !v.Dark && v.T.Differs(v.D, tokens.SecondaryNavText) },
	},
	{
		// Hover text is otherwise written by the navbar section.
		name:  "nav-hover-text",
		roles: []tokens.Role{tokens.NavHoverText},
		gate: func(v view) bool {
			return v.T.Differs(v.D, tokens.NavHoverText) && !v.T.Differs(v.D, tokens.NavbarBg, tokens.NavbarText)
		},
	},
	{
		name: "dark",
		gate: func(v view) bool { return v.Dark },
	},
}

// Sections returns the rule section names in emission order.
func Sections() []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.name
	}
	return names
}

// Encode renders t. Output is a pure function of t: equal token sets give
// byte-identical output.
func Encode(t tokens.Tokens) Output {
	v := view{
		T:    t,
		D:    tokens.Defaults(),
		Dark: colour.IsDarkBackground(t.PageBg),
	}
	return Output{
		BrandColour: t.BrandPrimary,
		Variables:   encodeVariables(v),
		Rules:       encodeRules(v),
	}
}

// EncodeSection renders one named section regardless of its gate.
func EncodeSection(t tokens.Tokens, name string) (string, error) {
	v := view{T: t, D: tokens.Defaults(), Dark: colour.IsDarkBackground(t.PageBg)}
	for _, s := range sections {
		if s.name == name {
			return renderSection(s, v)
		}
	}
	return "", fmt.Errorf("unknown section %q", name)
}

func encodeVariables(v view) string {
	lines := []string{variablesHeader, ""}

	for _, vr := range variables {
		if !v.T.Differs(v.D, vr.role) {
			continue
		}
		lines = append(lines, fmt.Sprintf("$%s: %s;", vr.name, formatValue(v.T, vr.role)))
	}

	if v.T.Differs(v.D, tokens.HeadingScale) {
		base := v.T.BodyFontSize
		if base == 0 {
			base = v.D.BodyFontSize
		}
		for level := 1; level <= 4; level++ {
			size := base * math.Pow(v.T.HeadingScale, float64(5-level))
			lines = append(lines, fmt.Sprintf("$h%d-font-size: %.4frem;", level, size))
		}
	}

	if v.T.Differs(v.D, tokens.ActivityIcons...) {
		lines = append(lines, "$activity-icon-colors: (")
		for i, role := range tokens.ActivityIcons {
			sep := ","
			if i == len(tokens.ActivityIcons)-1 {
				sep = ""
			}
			lines = append(lines, fmt.Sprintf("    %q: %s%s", activityIconKeys[i], v.T.Format(role), sep))
		}
		lines = append(lines, ");")
	}

	if v.Dark {
		lines = append(lines,
			"$input-color: "+v.T.BodyText+";",
			"$input-bg: "+v.T.CardBg+";",
			"$input-border-color: "+v.T.CardBorder+";",
			"$table-color: "+v.T.BodyText+";",
			"$dropdown-bg: "+v.T.CardBg+";",
			"$dropdown-color: "+v.T.BodyText+";",
			"$dropdown-link-color: "+v.T.BodyText+";",
			"$dropdown-border-color: "+v.T.CardBorder+";",
		)
	}

	return strings.Join(lines, "\n")
}

func encodeRules(v view) string {
	lines := []string{rulesHeader, ""}
	for _, s := range sections {
		if s.gate != nil && !s.gate(v) {
			continue
		}
		out, err := renderSection(s, v)
		if err != nil {
			// Templates are embedded and fixed; failure is a programming error.
			panic(err)
		}
		lines = append(lines, out, "")
	}
	return strings.Join(lines, "\n")
}

func renderSection(s section, v view) (string, error) {
	var buf bytes.Buffer
	if err := sectionTemplates.ExecuteTemplate(&buf, s.name, v); err != nil {
		return "", fmt.Errorf("failed to render section %s: %w", s.name, err)
	}
	return strings.Trim(buf.String(), "\n"), nil
}

// formatValue writes role with its unit suffix.
func formatValue(t tokens.Tokens, role tokens.Role) string {
	f, _ := tokens.Lookup(role)
	return t.Format(role) + string(f.Unit)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"autoText":  colour.AutoTextColour,
		"isDark":    colour.IsDarkBackground,
		"stripHash": func(hex string) string { return strings.TrimPrefix(hex, "#") },
		"num":       func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
	}
}
