// Package audit runs the WCAG contrast checks over a token set.
//
// Every check pairs a foreground role with the background it is drawn on.
// Run measures each pair, grades it against the WCAG 2.2 thresholds and
// proposes a compliant replacement for failing foregrounds.
package audit

import (
	"math"
	"strconv"

	"github.com/jmylchreest/boostkit/internal/colour"
	"github.com/jmylchreest/boostkit/internal/tokens"
)

// ExportGateRatio is the contrast below which export is refused.
const ExportGateRatio = colour.RatioAALarge

// Status grades a contrast ratio.
type Status string

const (
	StatusAAA     Status = "AAA PASS"
	StatusAA      Status = "AA PASS"
	StatusAALarge Status = "AA PASS (large text)"
	StatusFail    Status = "FAIL"
)

// WCAG success criteria reported with each result.
const (
	CriterionEnhanced = "WCAG 1.4.6 Enhanced Contrast"
	CriterionMinimum  = "WCAG 1.4.3 Minimum Contrast"
	CriterionBelow    = "Below WCAG 1.4.3"
)

// Check is one foreground/background pairing.
type Check struct {
	ID          string
	Label       string
	Description string
	FgRole      tokens.Role
	BgRole      tokens.Role
	LargeText   bool
}

// Checks are the pairings audited by Run, in report order.
var Checks = []Check{
	{ID: "link-page", Label: "Link on Page", Description: "Link colour on page background", FgRole: tokens.LinkColour, BgRole: tokens.PageBg},
	{ID: "body-page", Label: "Body Text on Page", Description: "Body text on page background", FgRole: tokens.BodyText, BgRole: tokens.PageBg},
	{ID: "nav-navbar", Label: "Nav Text on Navbar", Description: "Navigation text on navbar background", FgRole: tokens.NavbarText, BgRole: tokens.NavbarBg},
	{ID: "footer-text", Label: "Footer Text", Description: "Footer text on footer background", FgRole: tokens.FooterText, BgRole: tokens.FooterBg},
	{ID: "btn-primary", Label: "Button Text", Description: "Button text on primary button background", FgRole: tokens.BtnPrimaryText, BgRole: tokens.BtnPrimaryBg},
	{ID: "footer-link", Label: "Footer Link", Description: "Footer link on footer background", FgRole: tokens.FooterLink, BgRole: tokens.FooterBg},
	{ID: "heading-page", Label: "Heading on Page", Description: "Heading text on page background", FgRole: tokens.HeadingText, BgRole: tokens.PageBg, LargeText: true},
	{ID: "muted-page", Label: "Muted Text on Page", Description: "Muted text on page background", FgRole: tokens.MutedText, BgRole: tokens.PageBg},
	{ID: "link-card", Label: "Link on Card", Description: "Link colour on card background", FgRole: tokens.LinkColour, BgRole: tokens.CardBg},
	{ID: "muted-card", Label: "Muted Text on Card", Description: "Muted text on card background", FgRole: tokens.MutedText, BgRole: tokens.CardBg},
	{ID: "login-heading", Label: "Login Heading", Description: "Login heading on login card background", FgRole: tokens.LoginHeading, BgRole: tokens.LoginCardBg},
	{ID: "login-btn", Label: "Login Button", Description: "Login button text on login button background", FgRole: tokens.LoginBtnText, BgRole: tokens.LoginBtnBg},
	{ID: "logo-accent", Label: "Logo Accent on Navbar", Description: "Logo accent text on navbar background", FgRole: tokens.LogoAccentColour, BgRole: tokens.NavbarBg, LargeText: true},
	{ID: "drawer-text", Label: "Drawer Text", Description: "Drawer item text on drawer background", FgRole: tokens.DrawerText, BgRole: tokens.DrawerBg},
}

// Result is the outcome of one check.
type Result struct {
	Check
	Foreground string
	Background string
	Ratio      float64
	Status     Status
	Criterion  string
	Pass       bool
	// Suggestion is a compliant replacement for Foreground. It is empty when
	// the check passes or no replacement was found.
	Suggestion string
}

// Additional is a non-contrast accessibility check.
type Additional struct {
	Label   string
	Pass    bool
	Current string
}

// Report is the full audit of a token set.
type Report struct {
	Results    []Result
	Passing    int
	Score      int
	Additional []Additional
}

// Total returns the number of contrast checks.
func (r Report) Total() int {
	return len(r.Results)
}

// Failing returns the results that do not meet their AA threshold.
func (r Report) Failing() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Pass {
			out = append(out, res)
		}
	}
	return out
}

// Blocking returns the results whose ratio is below ExportGateRatio.
func (r Report) Blocking() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Ratio < ExportGateRatio {
			out = append(out, res)
		}
	}
	return out
}

// Run audits t.
func Run(t tokens.Tokens) Report {
	var r Report
	for _, c := range Checks {
		res := evaluate(t, c)
		if res.Pass {
			r.Passing++
		}
		r.Results = append(r.Results, res)
	}
	if n := len(r.Results); n > 0 {
		r.Score = int(math.Round(float64(r.Passing) / float64(n) * 100))
	}

	r.Additional = []Additional{
		{
			Label:   "Body text at least 16px (1rem)",
			Pass:    t.BodyFontSize >= 1,
			Current: formatFloat(t.BodyFontSize) + "rem",
		},
		{
			Label:   "Line height at least 1.5",
			Pass:    t.LineHeight >= 1.5,
			Current: formatFloat(t.LineHeight),
		},
		{
			Label:   "Focus indicators visible (at least 2px)",
			Pass:    t.FocusRingWidth >= 2,
			Current: formatFloat(t.FocusRingWidth) + "px",
		},
	}
	return r
}

func evaluate(t tokens.Tokens, c Check) Result {
	bg := t.Colour(c.BgRole, "")
	fg := t.Colour(c.FgRole, bg)
	ratio := colour.ContrastRatio(fg, bg)

	res := Result{
		Check:      c,
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
	}
	if c.LargeText {
		res.Pass = colour.MeetsAALarge(ratio)
	} else {
		res.Pass = colour.MeetsAA(ratio)
	}

	switch {
	case colour.MeetsAAA(ratio):
		res.Status = StatusAAA
		res.Criterion = CriterionEnhanced
	case res.Pass && c.LargeText:
		res.Status = StatusAALarge
		res.Criterion = CriterionMinimum
	case res.Pass:
		res.Status = StatusAA
		res.Criterion = CriterionMinimum
	default:
		res.Status = StatusFail
		res.Criterion = CriterionBelow
		if fix, ok := colour.SuggestFix(fg, bg, c.LargeText); ok {
			res.Suggestion = fix
		}
	}
	return res
}

// Change records one foreground replaced by Fix.
type Change struct {
	Check string
	Role  tokens.Role
	From  string
	To    string
}

// Fix replaces the foreground of every failing check with its suggestion.
// Checks are re-evaluated in order against the partly fixed set, so a role
// shared by two checks is changed at most once per failing pairing. Checks
// without a suggestion are left failing.
func Fix(t tokens.Tokens) (tokens.Tokens, []Change) {
	var changes []Change
	for _, c := range Checks {
		res := evaluate(t, c)
		if res.Pass || res.Suggestion == "" {
			continue
		}
		if err := t.Set(c.FgRole, res.Suggestion); err != nil {
			continue
		}
		changes = append(changes, Change{Check: c.ID, Role: c.FgRole, From: res.Foreground, To: res.Suggestion})
	}
	return t, changes
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
