package scss

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmylchreest/boostkit/internal/colour"
	"github.com/jmylchreest/boostkit/internal/tokens"
)

var (
	hexPattern      = regexp.MustCompile(`#[0-9a-fA-F]{3,8}`)
	importantFlag   = regexp.MustCompile(`(?i)!\s*(important|default)`)
	gradientPattern = regexp.MustCompile(`(?i)linear-gradient\s*\([^,]*,\s*(#[0-9a-fA-F]{3,8})\s*,\s*(#[0-9a-fA-F]{3,8})\s*\)`)
	outlinePattern  = regexp.MustCompile(`(?i)([\d.]+)\s*px\s+solid\s+(#[0-9a-fA-F]{3,8})`)
	thumbPattern    = regexp.MustCompile(`(?i)fill='%23([0-9a-f]{3,6})'`)
	pxPattern       = regexp.MustCompile(`([\d.]+)\s*px`)
	iconMapPattern  = regexp.MustCompile(`(?s)\$activity-icon-colors\s*:\s*\((.*?)\)\s*;`)
	iconPattern     = regexp.MustCompile(`["']?([a-z]+)["']?\s*:\s*(#[0-9a-fA-F]{3,8})`)
)

// Selectors shared by several bindings.
const (
	navHoverSelector  = ".navbar .primary-navigation .nav-link:hover, .navbar .primary-navigation .nav-link:focus"
	editModeSelector  = ".navbar .editmode-switch-form .form-check-input:checked"
	loginPageSelector = "body#page-login-index"
	drawerSelector    = `[data-region="right-hand-drawer"], .drawer`
)

// binding reads one property of one rule into the partial result.
type binding struct {
	selector string
	property string
	apply    func(value string, p tokens.Partial)
}

// bindings invert the rule sections. Earlier bindings win when two set the
// same role.
var bindings = []binding{
	{".navbar.fixed-top", "background-color", hexInto(tokens.NavbarBg)},
	{".navbar.fixed-top", "border-bottom", hexInto(tokens.NavbarBorder)},
	{".navbar", "color", hexInto(tokens.NavbarText)},
	{navHoverSelector, "background-color", textInto(tokens.NavHoverBg)},
	{navHoverSelector, "color", hexInto(tokens.NavHoverText)},
	{".navbar .primary-navigation .nav-link.active", "border-bottom", hexInto(tokens.NavActiveUnderline)},
	{".navbar .primary-navigation .nav-link.active", "border-bottom-color", hexInto(tokens.NavActiveUnderline)},
	{editModeSelector, "background-color", hexInto(tokens.EditModeOnColour)},
	{editModeSelector, "background-image", editModeThumb},

	{"*:focus", "outline", focusOutline},

	{".btn-primary", "background-color", hexInto(tokens.BtnPrimaryBg)},
	{".btn-primary", "color", hexInto(tokens.BtnPrimaryText)},
	{".btn-primary:hover, .btn-primary:focus", "background-color", hexInto(tokens.BtnPrimaryHover)},

	{"#page-footer", "background-color", hexInto(tokens.FooterBg)},
	{"#page-footer", "color", hexInto(tokens.FooterText)},
	{"#page-footer", "border-top", hexInto(tokens.FooterAccent)},
	{"#page-footer a", "color", hexInto(tokens.FooterLink)},

	{loginPageSelector, "background", loginGradient},
	{loginPageSelector, "background-color", hexInto(tokens.LoginBg)},
	{"body#page-login-index .card, body#page-login-index .login-container", "background-color", hexInto(tokens.LoginCardBg)},
	{"#loginbtn", "background-color", hexInto(tokens.LoginBtnBg)},
	{"#loginbtn", "color", hexInto(tokens.LoginBtnText)},
	{"body#page-login-index .login-heading", "color", hexInto(tokens.LoginHeading)},
	{"body#page-login-index .login-signup .btn, body#page-login-index .btn-secondary", "background-color", hexInto(tokens.SignupBtnBg)},

	{".breadcrumb", "background-color", hexInto(tokens.BreadcrumbBg)},
	{".course-section h3", "border-bottom", hexInto(tokens.SectionAccent)},
	{".secondary-navigation .nav-tabs .nav-link.active", "border-bottom-color", hexInto(tokens.SecondaryNavActive)},
	{".secondary-navigation .nav-tabs .nav-link.active", "color", hexInto(tokens.SecondaryNavActive)},
	{".secondary-navigation .nav-tabs .nav-link", "color", hexInto(tokens.SecondaryNavText)},

	{drawerSelector, "background-color", hexInto(tokens.DrawerBg)},
	{drawerSelector, "color", hexInto(tokens.DrawerText)},
	{drawerSelector, "border-color", hexInto(tokens.DrawerBorder)},

	{"h1, h2, h3, h4, h5, h6", "color", hexInto(tokens.HeadingText)},
	{"body", "color", hexInto(tokens.BodyText)},

	{".card", "background-color", hexInto(tokens.CardBg)},
	{".card", "border-color", hexInto(tokens.CardBorder)},
	{"#region-main", "max-width", pxInto(tokens.ContentMaxWidth)},
	{"a:hover, a:focus", "color", hexInto(tokens.LinkHover)},
	{".progress-bar", "background-color", hexInto(tokens.ProgressFill)},
}

// Decode parses text produced by Encode, or by Bundle, into the roles it
// recognises. Unrecognised content is ignored; text with nothing
// recognisable yields an empty result. Decode never fails.
func Decode(text string) tokens.Partial {
	p := make(tokens.Partial)
	if strings.TrimSpace(text) == "" {
		return p
	}

	if out, ok := SplitBundle(text); ok {
		if hex, ok := colour.NormaliseHex(out.BrandColour); ok {
			p[tokens.BrandPrimary] = hex
		}
		decodeVariables(out.Variables, p)
		decodeRules(out.Rules, p)
	} else {
		decodeVariables(text, p)
		decodeRules(text, p)
	}
	dropDarkBreadcrumb(p)
	return p
}

// dropDarkBreadcrumb removes a breadcrumb background that only repeats the
// page background. The dark overrides paint a transparent breadcrumb with
// the page colour, so that value does not belong to breadcrumbBg.
func dropDarkBreadcrumb(p tokens.Partial) {
	bc, ok := p[tokens.BreadcrumbBg].(string)
	if !ok {
		return
	}
	if page, ok := p[tokens.PageBg].(string); ok && strings.EqualFold(bc, page) {
		delete(p, tokens.BreadcrumbBg)
	}
}

// DecodeVariables parses only "$name: value;" declarations.
func DecodeVariables(text string) tokens.Partial {
	p := make(tokens.Partial)
	decodeVariables(text, p)
	return p
}

// DecodeRules parses only selector rules.
func DecodeRules(text string) tokens.Partial {
	p := make(tokens.Partial)
	decodeRules(text, p)
	return p
}

func decodeVariables(text string, p tokens.Partial) {
	for _, v := range variables {
		raw, ok := variableValue(text, v.name)
		if !ok {
			continue
		}
		if _, set := p[v.role]; set {
			continue
		}
		f, _ := tokens.Lookup(v.role)
		if f.Kind == tokens.KindColour {
			hexInto(v.role)(raw, p)
			continue
		}
		if val, err := tokens.ParseValue(v.role, clean(raw)); err == nil {
			p[v.role] = val
		}
	}

	if raw, ok := variableValue(text, headingSizeVariable); ok {
		base := tokens.Defaults().BodyFontSize
		if b, ok := p[tokens.BodyFontSize].(float64); ok && b > 0 {
			base = b
		}
		if h4, err := strconv.ParseFloat(strings.TrimSuffix(clean(raw), "rem"), 64); err == nil && h4 > 0 {
			p[tokens.HeadingScale] = math.Round(h4/base*1e4) / 1e4
		}
	}

	if m := iconMapPattern.FindStringSubmatch(text); m != nil {
		for _, entry := range iconPattern.FindAllStringSubmatch(m[1], -1) {
			for i, key := range activityIconKeys {
				if key != entry[1] {
					continue
				}
				if hex, ok := colour.NormaliseHex(entry[2]); ok {
					p[tokens.ActivityIcons[i]] = hex
				}
			}
		}
	}
}

// headingSizeVariable carries the heading scale as an h4 size in rem.
const headingSizeVariable = "h4-font-size"

// variablePatterns match "$name: value;" lines for every decoded variable.
var variablePatterns = compileVariablePatterns()

func compileVariablePatterns() map[string]*regexp.Regexp {
	names := []string{headingSizeVariable}
	for _, v := range variables {
		names = append(names, v.name)
	}
	out := make(map[string]*regexp.Regexp, len(names))
	for _, name := range names {
		out[name] = regexp.MustCompile(`(?m)^\s*\$` + regexp.QuoteMeta(name) + `\s*:\s*(.+?)\s*;`)
	}
	return out
}

// variableValue returns the value of the first "$name: value;" line.
func variableValue(text, name string) (string, bool) {
	re, ok := variablePatterns[name]
	if !ok {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func decodeRules(text string, p tokens.Partial) {
	sheet := parse(text)
	if len(sheet) == 0 {
		return
	}
	for _, b := range bindings {
		if v, ok := sheet.lookup(b.selector, b.property); ok {
			b.apply(clean(v), p)
		}
	}
}

// clean removes priority annotations and surrounding space from a value.
func clean(v string) string {
	return strings.TrimSpace(importantFlag.ReplaceAllString(v, ""))
}

// hexInto stores the first hex colour in the value under role, unless role is
// already decoded. Values without a valid hex colour are ignored.
func hexInto(role tokens.Role) func(string, tokens.Partial) {
	return func(v string, p tokens.Partial) {
		if _, set := p[role]; set {
			return
		}
		if hex, ok := colour.NormaliseHex(hexPattern.FindString(v)); ok {
			p[role] = hex
		}
	}
}

// textInto stores the value verbatim.
func textInto(role tokens.Role) func(string, tokens.Partial) {
	return func(v string, p tokens.Partial) {
		if _, set := p[role]; set || v == "" {
			return
		}
		p[role] = v
	}
}

// pxInto stores the first pixel length in the value.
func pxInto(role tokens.Role) func(string, tokens.Partial) {
	return func(v string, p tokens.Partial) {
		if _, set := p[role]; set {
			return
		}
		m := pxPattern.FindStringSubmatch(v)
		if m == nil {
			return
		}
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			p[role] = n
		}
	}
}

// focusOutline reads "<width>px solid <colour>", falling back to the colour
// alone.
func focusOutline(v string, p tokens.Partial) {
	if m := outlinePattern.FindStringSubmatch(v); m != nil {
		if w, err := strconv.ParseFloat(m[1], 64); err == nil {
			p[tokens.FocusRingWidth] = w
		}
		hexInto(tokens.FocusRing)(m[2], p)
		return
	}
	hexInto(tokens.FocusRing)(v, p)
}

// loginGradient reads a two stop linear-gradient into the login background,
// the gradient end and the gradient flag. Anything else is left undecoded.
func loginGradient(v string, p tokens.Partial) {
	m := gradientPattern.FindStringSubmatch(v)
	if m == nil {
		return
	}
	start, ok1 := colour.NormaliseHex(m[1])
	end, ok2 := colour.NormaliseHex(m[2])
	if !ok1 || !ok2 {
		return
	}
	p[tokens.LoginBg] = start
	p[tokens.LoginGradientEnd] = end
	p[tokens.LoginGradientEnabled] = true
}

// editModeThumb reads the thumb colour from the inline SVG fill.
func editModeThumb(v string, p tokens.Partial) {
	m := thumbPattern.FindStringSubmatch(v)
	if m == nil {
		return
	}
	if hex, ok := colour.NormaliseHex(m[1]); ok {
		p[tokens.EditModeThumbColour] = hex
	}
}
