// Package propagate computes the next token set for a user edit. Every
// function takes a complete token set by value and returns a complete token
// set; none of them retain state.
package propagate

import (
	"strings"

	"github.com/jmylchreest/boostkit/internal/colour"
	"github.com/jmylchreest/boostkit/internal/tokens"
)

// Hover derivation percentages.
const (
	ButtonHoverDarken = 15
	LinkHoverDarken   = 20
)

// BrandColour sets brandPrimary to brand and moves every role still following
// the previous brand along with it. A linked role follows the brand while its
// value equals the old brand, compared case-insensitively.
//
// Malformed brand input leaves t unchanged.
func BrandColour(t tokens.Tokens, brand string) tokens.Tokens {
	brand, ok := colour.NormaliseHex(brand)
	if !ok {
		return t
	}

	old := t.BrandPrimary
	next := t
	next.BrandPrimary = brand

	for _, role := range tokens.BrandLinked {
		if follows(t, role, old) {
			// Linked roles are colour kinds, so Set cannot fail.
			_ = next.Set(role, brand)
		}
	}

	if strings.EqualFold(t.NavbarBg, old) {
		next.NavbarBg = brand
		next.NavbarText = colour.AutoTextColour(brand)
	}

	next.BtnPrimaryHover = colour.Darken(next.BtnPrimaryBg, ButtonHoverDarken)
	next.LinkHover = colour.Darken(next.LinkColour, LinkHoverDarken)

	if strings.EqualFold(t.EditModeOnColour, old) {
		next.EditModeOnColour = brand
	}

	return next
}

func follows(t tokens.Tokens, role tokens.Role, old string) bool {
	v, ok := t.Get(role)
	if !ok {
		return false
	}
	s, ok := v.(string)
	return ok && strings.EqualFold(s, old)
}

// SetRole assigns a single role. brandPrimary is routed through BrandColour,
// and the navbar and footer backgrounds pick a readable text colour. The
// returned error wraps tokens.ErrUnknownRole or tokens.ErrInvalidValue, in
// which case t is returned unchanged.
func SetRole(t tokens.Tokens, role tokens.Role, v any) (tokens.Tokens, error) {
	next := t
	if err := next.Set(role, v); err != nil {
		return t, err
	}

	switch role {
	case tokens.BrandPrimary:
		return BrandColour(t, next.BrandPrimary), nil
	case tokens.NavbarBg:
		next.NavbarText = colour.AutoTextColour(next.NavbarBg)
	case tokens.FooterBg:
		next.FooterText = colour.AutoTextColour(next.FooterBg)
	}
	return next, nil
}

// Import applies a decoded partial token set. A decoded brand colour is
// applied first through BrandColour so linked roles follow it, then the
// remaining entries overwrite their roles as decoded. Invalid entries are
// skipped and reported in the returned error.
func Import(t tokens.Tokens, p tokens.Partial) (tokens.Tokens, error) {
	next := t
	if v, ok := p[tokens.BrandPrimary]; ok {
		if s, isString := v.(string); isString && colour.IsHex(s) {
			next = BrandColour(next, s)
		}
	}
	return tokens.Merge(next, p)
}

// Preset replaces the whole token set with the preset applied over defaults.
func Preset(id string) (tokens.Tokens, error) {
	return tokens.ApplyPreset(id)
}

// Reset returns the default token set.
func Reset() tokens.Tokens {
	return tokens.Defaults()
}
