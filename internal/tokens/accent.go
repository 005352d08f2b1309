package tokens

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/boostkit/internal/colour"
)

const autoKeyword = "auto"

// AccentColour is either Auto, resolved against a background when rendered,
// or an explicit hex colour. The zero value is Auto.
type AccentColour struct {
	hex string
}

// Auto returns an accent resolved by colour.BestAccentColour at render time.
func Auto() AccentColour {
	return AccentColour{}
}

// Explicit returns a fixed accent. Malformed hex falls back to Auto.
func Explicit(hex string) AccentColour {
	n, ok := colour.NormaliseHex(hex)
	if !ok {
		return Auto()
	}
	return AccentColour{hex: n}
}

// ParseAccentColour parses "auto" or a hex colour.
func ParseAccentColour(s string) (AccentColour, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, autoKeyword) || s == "" {
		return Auto(), nil
	}
	n, ok := colour.NormaliseHex(s)
	if !ok {
		return Auto(), fmt.Errorf("%w: accent colour %q is neither auto nor a hex colour", ErrInvalidValue, s)
	}
	return AccentColour{hex: n}, nil
}

// IsAuto reports whether the accent is resolved at render time.
func (a AccentColour) IsAuto() bool {
	return a.hex == ""
}

// Hex returns the explicit colour, or "" for Auto.
func (a AccentColour) Hex() string {
	return a.hex
}

// Resolve returns the concrete colour to draw on the background bg.
func (a AccentColour) Resolve(bg string) string {
	if a.IsAuto() {
		return colour.BestAccentColour(bg)
	}
	return a.hex
}

// String returns "auto" or the hex colour.
func (a AccentColour) String() string {
	if a.IsAuto() {
		return autoKeyword
	}
	return a.hex
}

// MarshalText implements encoding.TextMarshaler.
func (a AccentColour) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AccentColour) UnmarshalText(text []byte) error {
	parsed, err := ParseAccentColour(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
