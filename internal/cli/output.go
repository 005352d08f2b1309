package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/jmylchreest/boostkit/internal/colour"
	"github.com/jmylchreest/boostkit/internal/image"
	"github.com/jmylchreest/boostkit/internal/tokens"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatch renders hex with a colour block in front of it when w is a
// terminal. Non-hex values are returned as is.
func swatch(w io.Writer, hex string) string {
	if !colour.IsHex(hex) || !isTerminal(w) {
		return hex
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(colour.AutoTextColour(hex))).
		Render("  ")
	return block + " " + hex
}

// sample renders text in fg on bg when w is a terminal.
func sample(w io.Writer, fg, bg, text string) string {
	if !isTerminal(w) || !colour.IsHex(fg) || !colour.IsHex(bg) {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(text)
}

// pass renders a check mark or cross.
func pass(w io.Writer, ok bool) string {
	mark, c := "✗", "#D9534F"
	if ok {
		mark, c = "✓", "#5CB85C"
	}
	if !isTerminal(w) {
		return mark
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(mark)
}

// displayValue formats a role value for tables.
func displayValue(w io.Writer, t tokens.Tokens, role tokens.Role) string {
	f, _ := tokens.Lookup(role)
	v := t.Format(role)

	switch f.Kind {
	case tokens.KindBlob:
		if v == "" {
			return "(none)"
		}
		if img, err := image.Inspect(v); err == nil {
			return fmt.Sprintf("%s %dx%d, %s", img.Format, img.Width, img.Height, humanize.Bytes(uint64(img.Size)))
		}
		return humanize.Bytes(uint64(len(v)))
	case tokens.KindScale:
		return v + string(f.Unit)
	case tokens.KindAccent:
		if v == tokens.Auto().String() {
			return "auto (" + swatch(w, t.Colour(role, t.NavbarBg)) + ")"
		}
	}

	if name := colour.SwatchName(v); name != "" {
		return swatch(w, v) + " " + name
	}
	return swatch(w, v)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
