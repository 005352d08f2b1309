// Package batch imports a list of colours, assigns each to a role and
// applies the assignment to a token set.
//
// Colours come from free text (hex lists), CSS text, or a remote stylesheet.
package batch

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/boostkit/internal/colour"
	"github.com/jmylchreest/boostkit/internal/propagate"
	"github.com/jmylchreest/boostkit/internal/security"
	"github.com/jmylchreest/boostkit/internal/tokens"
	httputil "github.com/jmylchreest/boostkit/internal/util/http"
)

var (
	hexListPattern = regexp.MustCompile(`(?:#|0[xX])?([0-9A-Fa-f]{6})`)

	customPropPattern = regexp.MustCompile(`--[\w-]+\s*:\s*([^;}]+)`)
	colourPropPattern = regexp.MustCompile(`(?i)(?:^|[\s;{])(?:color|background-color|background|border-color|border|fill|stroke|outline)\s*:\s*([^;}]+)`)
	cssHexPattern     = regexp.MustCompile(`#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	rgbPattern        = regexp.MustCompile(`(?i)rgba?\s*\(\s*([0-9.]+)\s*,?\s*([0-9.]+)\s*,?\s*([0-9.]+)`)
	hslPattern        = regexp.MustCompile(`(?i)hsla?\s*\(\s*([0-9.]+)(?:deg)?\s*,?\s*([0-9.]+)%?\s*,?\s*([0-9.]+)%?`)
)

// ParseHexList extracts six digit colours written as #RRGGBB, RRGGBB or
// 0xRRGGBB. Results are uppercase with a leading '#', de-duplicated in order
// of first appearance.
func ParseHexList(input string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range hexListPattern.FindAllStringSubmatch(input, -1) {
		hex := "#" + strings.ToUpper(m[1])
		if !seen[hex] {
			seen[hex] = true
			out = append(out, hex)
		}
	}
	return out
}

// ExtractCSS returns the colours used by custom properties and colour
// properties in CSS text. Hex, rgb() and hsl() values are understood.
func ExtractCSS(content string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(value string) {
		hex := extractColour(value)
		if hex == "" || seen[hex] {
			return
		}
		seen[hex] = true
		out = append(out, hex)
	}

	for _, m := range customPropPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	for _, m := range colourPropPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	return out
}

// extractColour converts the first colour in a CSS value to uppercase hex.
func extractColour(value string) string {
	value = strings.TrimSpace(value)

	if m := cssHexPattern.FindString(value); m != "" {
		hex, _ := colour.NormaliseHex(m)
		return hex
	}

	if m := rgbPattern.FindStringSubmatch(value); m != nil {
		// The pattern guarantees valid floats.
		r, _ := strconv.ParseFloat(m[1], 64)
		g, _ := strconv.ParseFloat(m[2], 64)
		b, _ := strconv.ParseFloat(m[3], 64)
		return colour.RGBToHex(int(r), int(g), int(b))
	}

	if m := hslPattern.FindStringSubmatch(value); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		s, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		if s > 1 {
			s /= 100
		}
		if l > 1 {
			l /= 100
		}
		return colour.HSLToHex(h, math.Min(s, 1), math.Min(l, 1))
	}

	return ""
}

// FetchOptions configures Fetch.
type FetchOptions struct {
	Timeout time.Duration
	Policy  security.URLPolicy
	Logger  hclog.Logger
	// HTTP overrides the underlying fetch options, mainly for tests.
	HTTP httputil.FetchOptions
}

// Fetch downloads a stylesheet and returns the colours ExtractCSS finds in it.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if err := security.ValidateRemoteURL(url, opts.Policy); err != nil {
		return nil, fmt.Errorf("refusing to fetch stylesheet: %w", err)
	}

	httpOpts := opts.HTTP
	if opts.Timeout > 0 {
		httpOpts.Timeout = opts.Timeout
	}
	if httpOpts.Headers == nil {
		httpOpts.Headers = map[string]string{"Accept": "text/css,*/*;q=0.1"}
	}

	logger.Debug("fetching stylesheet", "url", url, "timeout", httpOpts.Timeout)
	data, err := httputil.Fetch(ctx, url, httpOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stylesheet: %w", err)
	}

	colours := ExtractCSS(string(data))
	logger.Debug("extracted colours", "url", url, "bytes", len(data), "count", len(colours))
	if len(colours) == 0 {
		return nil, fmt.Errorf("no colours found in %s", url)
	}
	return colours, nil
}

// Assignment pairs an imported colour with the role it will set. Role is
// empty when the colour is left unassigned.
type Assignment struct {
	Hex        string
	Role       tokens.Role
	Luminance  float64
	Saturation float64
}

// Roles filled by AutoAssign once the darkest, lightest and most saturated
// colours have been placed.
var fallbackRoles = []tokens.Role{
	tokens.LinkColour,
	tokens.LoginBg,
	tokens.BodyText,
	tokens.HeadingText,
}

// AutoAssign proposes a role for each colour, in input order.
//
// The darkest colour goes to navbarBg and the next darkest to footerBg. The
// lightest unassigned colours go to loginCardBg then cardBg. The most
// saturated unassigned colour becomes brandPrimary and the next becomes
// sectionAccent. Remaining colours fill linkColour, loginBg, bodyText and
// headingText in input order; anything beyond that is left unassigned.
func AutoAssign(hexes []string) []Assignment {
	out := make([]Assignment, 0, len(hexes))
	for _, hex := range hexes {
		_, s, _ := colour.HexToHSL(hex)
		out = append(out, Assignment{
			Hex:        hex,
			Luminance:  colour.RelativeLuminance(hex),
			Saturation: s,
		})
	}

	byLuminance := indexes(len(out))
	sort.SliceStable(byLuminance, func(i, j int) bool {
		return out[byLuminance[i]].Luminance < out[byLuminance[j]].Luminance
	})
	bySaturation := indexes(len(out))
	sort.SliceStable(bySaturation, func(i, j int) bool {
		return out[bySaturation[i]].Saturation > out[bySaturation[j]].Saturation
	})

	assigned := make(map[string]bool)
	assign := func(i int, role tokens.Role) bool {
		if assigned[out[i].Hex] {
			return false
		}
		out[i].Role = role
		assigned[out[i].Hex] = true
		return true
	}

	if len(byLuminance) > 0 {
		assign(byLuminance[0], tokens.NavbarBg)
	}
	if len(byLuminance) > 1 {
		assign(byLuminance[1], tokens.FooterBg)
	}

	n := len(byLuminance)
	if n > 0 {
		assign(byLuminance[n-1], tokens.LoginCardBg)
	}
	if n > 1 {
		assign(byLuminance[n-2], tokens.CardBg)
	}

	for _, role := range []tokens.Role{tokens.BrandPrimary, tokens.SectionAccent} {
		for _, i := range bySaturation {
			if assign(i, role) {
				break
			}
		}
	}

	next := 0
	for i := range out {
		if next >= len(fallbackRoles) {
			break
		}
		if assign(i, fallbackRoles[next]) {
			next++
		}
	}

	return out
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Apply sets each assigned colour on t. A brandPrimary assignment is applied
// first through brand propagation, then the remaining roles are merged as
// given. When a role is assigned more than once the last assignment wins.
func Apply(t tokens.Tokens, assignments []Assignment) (tokens.Tokens, error) {
	p := make(tokens.Partial)
	brand := ""
	for _, a := range assignments {
		switch a.Role {
		case "":
			continue
		case tokens.BrandPrimary:
			brand = a.Hex
		default:
			p[a.Role] = a.Hex
		}
	}

	if brand != "" {
		t = propagate.BrandColour(t, brand)
	}
	return tokens.Merge(t, p)
}
