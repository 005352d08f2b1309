package tokens

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned by ApplyPreset for an id not in Presets.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named set of overrides applied on top of Defaults.
type Preset struct {
	ID          string
	Name        string
	Description string
	Recommended bool
	Overrides   Partial
}

// Presets returns the built-in presets in display order.
func Presets() []Preset {
	return []Preset{
		{
			ID:          "cfa-teal-pro",
			Name:        "CFA Teal Professional",
			Description: "Clean, conservative monochrome teal theme",
			Overrides: Partial{
				BrandPrimary:         "#336E7B",
				NavbarBg:             "#336E7B",
				NavbarText:           "#FFFFFF",
				NavbarBorder:         None,
				NavActiveUnderline:   "#336E7B",
				NavHoverBg:           "rgba(0,0,0,0.2)",
				NavHoverText:         "#F0EEEE",
				EditModeOnColour:     "#FFFFFF",
				EditModeThumbColour:  "#336E7B",
				BreadcrumbBg:         "#F0EEEE",
				BtnPrimaryBg:         "#336E7B",
				BtnPrimaryText:       "#FFFFFF",
				BtnPrimaryHover:      "#245058",
				LinkColour:           "#336E7B",
				LinkHover:            "#245058",
				FooterBg:             "#404041",
				FooterText:           "#F0EEEE",
				FooterLink:           "#F0EEEE",
				FooterAccent:         None,
				LoginBg:              "#404041",
				LoginBtnBg:           "#336E7B",
				LoginHeading:         "#336E7B",
				LoginGradientEnabled: false,
				SecondaryNavActive:   "#336E7B",
				ProgressFill:         "#336E7B",
				FocusRing:            "#336E7B",
				FocusRingWidth:       2.0,
				Info:                 "#336E7B",
				SectionAccent:        None,
				SignupBtnBg:          "#6C757D",
			},
		},
		{
			ID:          "cfa-teal-orange",
			Name:        "CFA Teal & Orange",
			Description: "Energetic teal with orange accents on dark surfaces",
			Overrides: Partial{
				BrandPrimary:         "#336E7B",
				NavbarBg:             "#404041",
				NavbarText:           "#F0EEEE",
				NavbarBorder:         None,
				NavActiveUnderline:   "#F27927",
				NavHoverBg:           "rgba(0,0,0,0.2)",
				NavHoverText:         "#F27927",
				EditModeOnColour:     "#F27927",
				EditModeThumbColour:  "#FFFFFF",
				BreadcrumbBg:         "#F0EEEE",
				BtnPrimaryBg:         "#336E7B",
				BtnPrimaryText:       "#FFFFFF",
				BtnPrimaryHover:      "#F27927",
				LinkColour:           "#336E7B",
				LinkHover:            "#245058",
				FooterBg:             "#404041",
				FooterText:           "#F0EEEE",
				FooterLink:           "#F27927",
				FooterAccent:         "#F27927",
				LoginBg:              "#404041",
				LoginBtnBg:           "#F27927",
				LoginHeading:         "#336E7B",
				LoginGradientEnabled: false,
				SecondaryNavActive:   "#336E7B",
				ProgressFill:         "#336E7B",
				FocusRing:            "#F27927",
				FocusRingWidth:       2.0,
				Info:                 "#336E7B",
				SectionAccent:        "#F27927",
				SignupBtnBg:          "#6C757D",
			},
		},
		{
			ID:          "cfa-dark-mode",
			Name:        "CFA Dark Mode",
			Description: "Bold, modern with lime accents and dark drawer",
			Overrides: Partial{
				BrandPrimary:         "#336E7B",
				NavbarBg:             "#1D2125",
				NavbarText:           "#F0EEEE",
				NavbarBorder:         "#F27927",
				NavActiveUnderline:   "#BAF73C",
				NavHoverBg:           "rgba(255,255,255,0.08)",
				NavHoverText:         "#BAF73C",
				EditModeOnColour:     "#BAF73C",
				EditModeThumbColour:  "#1D2125",
				BreadcrumbBg:         "#F0EEEE",
				BtnPrimaryBg:         "#336E7B",
				BtnPrimaryText:       "#FFFFFF",
				BtnPrimaryHover:      "#1D2125",
				LinkColour:           "#336E7B",
				LinkHover:            "#245058",
				FooterBg:             "#1D2125",
				FooterText:           "#F0EEEE",
				FooterLink:           "#00BFFF",
				FooterAccent:         None,
				DrawerBg:             "#1D2125",
				DrawerText:           "#F0EEEE",
				DrawerBorder:         "#404041",
				LoginBg:              "#1D2125",
				LoginBtnBg:           "#336E7B",
				LoginHeading:         "#336E7B",
				LoginGradientEnabled: false,
				SecondaryNavActive:   "#336E7B",
				ProgressFill:         "#336E7B",
				FocusRing:            "#336E7B",
				FocusRingWidth:       2.0,
				Info:                 "#336E7B",
				SectionAccent:        None,
				SignupBtnBg:          "#6C757D",
			},
		},
		{
			ID:          "cfa-purple",
			Name:        "CFA Purple Spotlight",
			Description: "Creative, distinctive with purple accents",
			Overrides: Partial{
				BrandPrimary:         "#B500B5",
				NavbarBg:             "#B500B5",
				NavbarText:           "#FFFFFF",
				NavbarBorder:         None,
				NavActiveUnderline:   "#FFFFFF",
				NavHoverBg:           "rgba(0,0,0,0.2)",
				NavHoverText:         "#F0EEEE",
				EditModeOnColour:     "#FFFFFF",
				EditModeThumbColour:  "#B500B5",
				BreadcrumbBg:         "#F5F0F5",
				BtnPrimaryBg:         "#B500B5",
				BtnPrimaryText:       "#FFFFFF",
				BtnPrimaryHover:      "#8A008A",
				LinkColour:           "#8A008A",
				LinkHover:            "#5E005E",
				FooterBg:             "#404041",
				FooterText:           "#F0EEEE",
				FooterLink:           "#F0EEEE",
				FooterAccent:         None,
				LoginBg:              "#404041",
				LoginBtnBg:           "#B500B5",
				LoginHeading:         "#B500B5",
				LoginGradientEnabled: false,
				SecondaryNavActive:   "#336E7B",
				ProgressFill:         "#B500B5",
				FocusRing:            "#B500B5",
				FocusRingWidth:       2.0,
				Info:                 "#B500B5",
				SectionAccent:        "#B500B5",
				SignupBtnBg:          "#336E7B",
			},
		},
		{
			ID:          "cfa-warm-cream",
			Name:        "CFA Warm Cream",
			Description: "Warm, approachable with cream tones and gradient login",
			Overrides: Partial{
				BrandPrimary:         "#336E7B",
				NavbarBg:             "#404041",
				NavbarText:           "#F0EEEE",
				NavbarBorder:         None,
				NavActiveUnderline:   "#F27927",
				NavHoverBg:           "rgba(0,0,0,0.2)",
				NavHoverText:         "#F27927",
				EditModeOnColour:     "#F27927",
				EditModeThumbColour:  "#FFFFFF",
				BreadcrumbBg:         "#F8F5F0",
				BtnPrimaryBg:         "#336E7B",
				BtnPrimaryText:       "#FFFFFF",
				BtnPrimaryHover:      "#245058",
				LinkColour:           "#336E7B",
				LinkHover:            "#245058",
				CardBorder:           "#E8E2D9",
				HeadingText:          "#2A2A2B",
				FooterBg:             "#2A2A2B",
				FooterText:           "#F0EEEE",
				FooterLink:           "#F0EEEE",
				FooterAccent:         None,
				LoginBg:              "#404041",
				LoginBtnBg:           "#336E7B",
				LoginHeading:         "#336E7B",
				LoginGradientEnabled: true,
				LoginGradientEnd:     "#336E7B",
				SecondaryNavActive:   "#336E7B",
				ProgressFill:         "#336E7B",
				FocusRing:            "#336E7B",
				FocusRingWidth:       2.0,
				Info:                 "#336E7B",
				SectionAccent:        None,
				SignupBtnBg:          "#6C757D",
			},
		},
		{
			ID:          "cfa-high-contrast",
			Name:        "CFA High Contrast AAA",
			Description: "Maximum accessibility with AAA contrast and 3px focus rings",
			Recommended: true,
			Overrides: Partial{
				BrandPrimary:         "#245058",
				NavbarBg:             "#1D2125",
				NavbarText:           "#FFFFFF",
				NavbarBorder:         None,
				NavActiveUnderline:   "#FFFFFF",
				NavHoverBg:           "rgba(255,255,255,0.1)",
				NavHoverText:         "#F0EEEE",
				EditModeOnColour:     "#FFFFFF",
				EditModeThumbColour:  "#1D2125",
				BreadcrumbBg:         "#F0EEEE",
				BtnPrimaryBg:         "#245058",
				BtnPrimaryText:       "#FFFFFF",
				BtnPrimaryHover:      "#1D2125",
				LinkColour:           "#245058",
				LinkHover:            "#1D2125",
				BodyText:             "#1D2125",
				HeadingText:          "#1D2125",
				CardBorder:           "#404041",
				FooterBg:             "#1D2125",
				FooterText:           "#FFFFFF",
				FooterLink:           "#FFFFFF",
				FooterAccent:         None,
				LoginBg:              "#1D2125",
				LoginBtnBg:           "#245058",
				LoginHeading:         "#245058",
				LoginGradientEnabled: false,
				SecondaryNavActive:   "#245058",
				ProgressFill:         "#245058",
				FocusRing:            "#1D2125",
				FocusRingWidth:       3.0,
				BodyFontSize:         1.0625,
				Info:                 "#245058",
				SectionAccent:        None,
				SignupBtnBg:          "#6C757D",
			},
		},
		{
			ID:          "cfa-burnt-orange",
			Name:        "CFA Burnt Orange",
			Description: "Warm, bold burnt orange with teal secondary accents",
			Overrides: Partial{
				BrandPrimary:         "#9E4E12",
				NavbarBg:             "#9E4E12",
				NavbarText:           "#FFFFFF",
				NavbarBorder:         None,
				NavActiveUnderline:   "#FFFFFF",
				NavHoverBg:           "rgba(0,0,0,0.2)",
				NavHoverText:         "#F0EEEE",
				EditModeOnColour:     "#FFFFFF",
				EditModeThumbColour:  "#9E4E12",
				BreadcrumbBg:         "#FDF5EE",
				BtnPrimaryBg:         "#9E4E12",
				BtnPrimaryText:       "#FFFFFF",
				BtnPrimaryHover:      "#7A3D0E",
				LinkColour:           "#9E4E12",
				LinkHover:            "#7A3D0E",
				FooterBg:             "#404041",
				FooterText:           "#F0EEEE",
				FooterLink:           "#F27927",
				FooterAccent:         "#9E4E12",
				LoginBg:              "#9E4E12",
				LoginBtnBg:           "#9E4E12",
				LoginHeading:         "#9E4E12",
				LoginGradientEnabled: true,
				LoginGradientEnd:     "#7A3D0E",
				SecondaryNavActive:   "#336E7B",
				ProgressFill:         "#9E4E12",
				FocusRing:            "#9E4E12",
				FocusRingWidth:       2.0,
				Info:                 "#9E4E12",
				SectionAccent:        "#336E7B",
				SignupBtnBg:          "#336E7B",
			},
		},
		{
			ID:          "moodle-default",
			Name:        "Moodle Default",
			Description: "Reset to Moodle Boost defaults",
			Overrides:   Partial{},
		},
	}
}

// LookupPreset returns the preset with the given id.
func LookupPreset(id string) (Preset, bool) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// ApplyPreset returns Defaults with the preset's overrides applied.
func ApplyPreset(id string) (Tokens, error) {
	p, ok := LookupPreset(id)
	if !ok {
		return Tokens{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}
	t, err := Merge(Defaults(), p.Overrides)
	if err != nil {
		return Tokens{}, fmt.Errorf("failed to apply preset %s: %w", id, err)
	}
	return t, nil
}
