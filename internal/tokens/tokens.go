// Package tokens defines the theme token schema: every role a theme can set,
// its kind and serialisation unit, the default values and the roles linked to
// the brand colour.
package tokens

import "strings"

// Role identifies one theme token. Role values are the camelCase keys used in
// JSON state files and share strings.
type Role string

// Brand and navbar roles.
const (
	BrandPrimary        Role = "brandPrimary"
	NavbarBg            Role = "navbarBg"
	NavbarText          Role = "navbarText"
	NavbarBorder        Role = "navbarBorder"
	NavActiveUnderline  Role = "navActiveUnderline"
	NavHoverBg          Role = "navHoverBg"
	NavHoverText        Role = "navHoverText"
	EditModeOnColour    Role = "editModeOnColour"
	EditModeThumbColour Role = "editModeThumbColour"
	LogoAccentColour    Role = "logoAccentColour"
)

// Content, button and link roles.
const (
	BreadcrumbBg    Role = "breadcrumbBg"
	BtnPrimaryBg    Role = "btnPrimaryBg"
	BtnPrimaryText  Role = "btnPrimaryText"
	BtnPrimaryHover Role = "btnPrimaryHover"
	BtnRadius       Role = "btnRadius"
	LinkColour      Role = "linkColour"
	LinkHover       Role = "linkHover"
	PageBg          Role = "pageBg"
	CardBg          Role = "cardBg"
	CardBorder      Role = "cardBorder"
	ContentMaxWidth Role = "contentMaxWidth"
	SectionAccent   Role = "sectionAccent"
)

// Login page roles.
const (
	LoginBg              Role = "loginBg"
	LoginCardBg          Role = "loginCardBg"
	LoginHeading         Role = "loginHeading"
	LoginBtnBg           Role = "loginBtnBg"
	LoginBtnText         Role = "loginBtnText"
	LoginInputRadius     Role = "loginInputRadius"
	LoginGradientEnabled Role = "loginGradientEnabled"
	LoginGradientEnd     Role = "loginGradientEnd"
	SignupBtnBg          Role = "signupBtnBg"
	BackgroundImage      Role = "backgroundImage"
	LoginBgImage         Role = "loginBgImage"
)

// Footer and drawer roles.
const (
	FooterBg     Role = "footerBg"
	FooterText   Role = "footerText"
	FooterLink   Role = "footerLink"
	FooterAccent Role = "footerAccent"
	DrawerBg     Role = "drawerBg"
	DrawerText   Role = "drawerText"
	DrawerBorder Role = "drawerBorder"
)

// Typography roles.
const (
	BodyFontSize Role = "bodyFontSize"
	HeadingScale Role = "headingScale"
	LineHeight   Role = "lineHeight"
	FontFamily   Role = "fontFamily"
	FontWeight   Role = "fontWeight"
	HeadingText  Role = "headingText"
	BodyText     Role = "bodyText"
	MutedText    Role = "mutedText"
)

// Navigation, feedback and accessibility roles.
const (
	SecondaryNavActive Role = "secondaryNavActive"
	SecondaryNavText   Role = "secondaryNavText"
	Success            Role = "success"
	Warning            Role = "warning"
	Error              Role = "error"
	Info               Role = "info"
	ProgressFill       Role = "progressFill"
	FocusRing          Role = "focusRing"
	FocusRingWidth     Role = "focusRingWidth"
)

// Activity icon roles, one per Moodle activity purpose.
const (
	ActIconAdministration Role = "actIconAdministration"
	ActIconAssessment     Role = "actIconAssessment"
	ActIconCollaboration  Role = "actIconCollaboration"
	ActIconCommunication  Role = "actIconCommunication"
	ActIconContent        Role = "actIconContent"
	ActIconInterface      Role = "actIconInterface"
)

// Keyword values accepted by text roles that otherwise hold a colour.
const (
	None        = "none"
	Transparent = "transparent"
)

// Tokens is a complete theme. Colour fields always hold uppercase "#RRGGBB".
// Field json tags must match the Role constants; the schema table is checked
// against them at start-up.
type Tokens struct {
	BrandPrimary        string       `json:"brandPrimary"`
	NavbarBg            string       `json:"navbarBg"`
	NavbarText          string       `json:"navbarText"`
	NavbarBorder        string       `json:"navbarBorder"`
	NavActiveUnderline  string       `json:"navActiveUnderline"`
	NavHoverBg          string       `json:"navHoverBg"`
	NavHoverText        string       `json:"navHoverText"`
	EditModeOnColour    string       `json:"editModeOnColour"`
	EditModeThumbColour string       `json:"editModeThumbColour"`
	LogoAccentColour    AccentColour `json:"logoAccentColour"`

	BreadcrumbBg    string  `json:"breadcrumbBg"`
	BtnPrimaryBg    string  `json:"btnPrimaryBg"`
	BtnPrimaryText  string  `json:"btnPrimaryText"`
	BtnPrimaryHover string  `json:"btnPrimaryHover"`
	BtnRadius       float64 `json:"btnRadius"`
	LinkColour      string  `json:"linkColour"`
	LinkHover       string  `json:"linkHover"`
	PageBg          string  `json:"pageBg"`
	CardBg          string  `json:"cardBg"`
	CardBorder      string  `json:"cardBorder"`
	ContentMaxWidth float64 `json:"contentMaxWidth"`
	SectionAccent   string  `json:"sectionAccent"`

	LoginBg              string  `json:"loginBg"`
	LoginCardBg          string  `json:"loginCardBg"`
	LoginHeading         string  `json:"loginHeading"`
	LoginBtnBg           string  `json:"loginBtnBg"`
	LoginBtnText         string  `json:"loginBtnText"`
	LoginInputRadius     float64 `json:"loginInputRadius"`
	LoginGradientEnabled bool    `json:"loginGradientEnabled"`
	LoginGradientEnd     string  `json:"loginGradientEnd"`
	SignupBtnBg          string  `json:"signupBtnBg"`
	BackgroundImage      string  `json:"backgroundImage"`
	LoginBgImage         string  `json:"loginBgImage"`

	FooterBg     string `json:"footerBg"`
	FooterText   string `json:"footerText"`
	FooterLink   string `json:"footerLink"`
	FooterAccent string `json:"footerAccent"`
	DrawerBg     string `json:"drawerBg"`
	DrawerText   string `json:"drawerText"`
	DrawerBorder string `json:"drawerBorder"`

	BodyFontSize float64 `json:"bodyFontSize"`
	HeadingScale float64 `json:"headingScale"`
	LineHeight   float64 `json:"lineHeight"`
	FontFamily   string  `json:"fontFamily"`
	FontWeight   float64 `json:"fontWeight"`
	HeadingText  string  `json:"headingText"`
	BodyText     string  `json:"bodyText"`
	MutedText    string  `json:"mutedText"`

	SecondaryNavActive string  `json:"secondaryNavActive"`
	SecondaryNavText   string  `json:"secondaryNavText"`
	Success            string  `json:"success"`
	Warning            string  `json:"warning"`
	Error              string  `json:"error"`
	Info               string  `json:"info"`
	ProgressFill       string  `json:"progressFill"`
	FocusRing          string  `json:"focusRing"`
	FocusRingWidth     float64 `json:"focusRingWidth"`

	ActIconAdministration string `json:"actIconAdministration"`
	ActIconAssessment     string `json:"actIconAssessment"`
	ActIconCollaboration  string `json:"actIconCollaboration"`
	ActIconCommunication  string `json:"actIconCommunication"`
	ActIconContent        string `json:"actIconContent"`
	ActIconInterface      string `json:"actIconInterface"`
}

// DefaultFontFamily is the Moodle Boost font stack.
const DefaultFontFamily = `"Source Sans Pro", "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`

// Defaults returns the Moodle Boost baseline. The encoder emits nothing for
// a role holding its default value.
func Defaults() Tokens {
	return Tokens{
		BrandPrimary:        "#0F6CBF",
		NavbarBg:            "#0F6CBF",
		NavbarText:          "#FFFFFF",
		NavbarBorder:        None,
		NavActiveUnderline:  "#0F6CBF",
		NavHoverBg:          "rgba(0,0,0,0.2)",
		NavHoverText:        "#FFFFFF",
		EditModeOnColour:    "#0F6CBF",
		EditModeThumbColour: "#FFFFFF",
		LogoAccentColour:    Auto(),

		BreadcrumbBg:    Transparent,
		BtnPrimaryBg:    "#0F6CBF",
		BtnPrimaryText:  "#FFFFFF",
		BtnPrimaryHover: "#0C5AA0",
		BtnRadius:       4,
		LinkColour:      "#0F6CBF",
		LinkHover:       "#0A4A82",
		PageBg:          "#FFFFFF",
		CardBg:          "#FFFFFF",
		CardBorder:      "#DEE2E6",
		ContentMaxWidth: 830,
		SectionAccent:   None,

		LoginBg:              "#0F6CBF",
		LoginCardBg:          "#FFFFFF",
		LoginHeading:         "#404041",
		LoginBtnBg:           "#0F6CBF",
		LoginBtnText:         "#FFFFFF",
		LoginInputRadius:     4,
		LoginGradientEnabled: false,
		LoginGradientEnd:     "#0F6CBF",
		SignupBtnBg:          "#6C757D",
		BackgroundImage:      "",
		LoginBgImage:         "",

		FooterBg:     "#FFFFFF",
		FooterText:   "#404041",
		FooterLink:   "#0F6CBF",
		FooterAccent: None,
		DrawerBg:     "#FFFFFF",
		DrawerText:   "#404041",
		DrawerBorder: "#DEE2E6",

		BodyFontSize: 0.9375,
		HeadingScale: 1.25,
		LineHeight:   1.5,
		FontFamily:   DefaultFontFamily,
		FontWeight:   400,
		HeadingText:  "#404041",
		BodyText:     "#404041",
		MutedText:    "#6A737B",

		SecondaryNavActive: "#0F6CBF",
		SecondaryNavText:   "#404041",
		Success:            "#357A32",
		Warning:            "#F0AD4E",
		Error:              "#CA3120",
		Info:               "#0F6CBF",
		ProgressFill:       "#0F6CBF",
		FocusRing:          "#0F6CBF",
		FocusRingWidth:     2,

		ActIconAdministration: "#5D63F6",
		ActIconAssessment:     "#EB66A2",
		ActIconCollaboration:  "#F7634D",
		ActIconCommunication:  "#11A676",
		ActIconContent:        "#399BE2",
		ActIconInterface:      "#A378FF",
	}
}

// BrandLinked lists the roles that follow brandPrimary while they still hold
// the previous brand value.
var BrandLinked = []Role{
	BtnPrimaryBg,
	LinkColour,
	NavActiveUnderline,
	SecondaryNavActive,
	ProgressFill,
	FocusRing,
	LoginBtnBg,
	LoginBg,
	Info,
	FooterLink,
}

// ActivityIcons lists the activity icon roles in serialisation order.
var ActivityIcons = []Role{
	ActIconAdministration,
	ActIconAssessment,
	ActIconCollaboration,
	ActIconCommunication,
	ActIconContent,
	ActIconInterface,
}

// FontOption is a selectable font stack.
type FontOption struct {
	Label string
	Value string
}

// FontOptions are the font stacks offered for fontFamily.
var FontOptions = []FontOption{
	{Label: "Source Sans Pro", Value: DefaultFontFamily},
	{Label: "Inter", Value: `"Inter", "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`},
	{Label: "System Default", Value: `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`},
}

// LookupFont returns the stack for a FontOptions label, case-insensitively.
func LookupFont(label string) (string, bool) {
	for _, f := range FontOptions {
		if strings.EqualFold(f.Label, label) {
			return f.Value, true
		}
	}
	return "", false
}
