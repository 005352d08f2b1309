package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/boostkit/internal/batch"
	"github.com/jmylchreest/boostkit/internal/security"
)

var (
	// Colours command flags
	coloursCSS          string
	coloursURL          string
	coloursApply        bool
	coloursAllowHTTP    bool
	coloursAllowPrivate bool
)

// coloursCmd represents the colours command
var coloursCmd = &cobra.Command{
	Use:     "colours [hex...]",
	Aliases: []string{"colors"},
	Short:   "Assign a list of colours to theme roles",
	Long: `Read a list of colours and propose a role for each one.

Colours are taken from the arguments, a CSS file, a stylesheet URL or
standard input. Hex values may be written #RRGGBB, RRGGBB or 0xRRGGBB; CSS
input also understands rgb() and hsl().

The darkest colours go to the navbar and footer, the lightest to the login
and content cards, and the most saturated become the brand and section
accent. The rest fill link, login background, body and heading colours.

Examples:
  boostkit colours '#336E7B' '#F27927' '#1D2125' '#FFFFFF'
  boostkit colours --css brand.css --apply
  boostkit colours --url https://example.org/theme.css
  pbpaste | boostkit colours`,
	RunE: runColours,
}

func init() {
	coloursCmd.Flags().StringVar(&coloursCSS, "css", "", "read colours from a CSS file")
	coloursCmd.Flags().StringVar(&coloursURL, "url", "", "fetch colours from a remote stylesheet")
	coloursCmd.Flags().BoolVar(&coloursApply, "apply", false, "apply the proposed assignment to the theme")
	coloursCmd.Flags().BoolVar(&coloursAllowHTTP, "allow-http", false, "allow plain http stylesheet URLs")
	coloursCmd.Flags().BoolVar(&coloursAllowPrivate, "allow-private", false, "allow stylesheet URLs on loopback or private networks")

	rootCmd.AddCommand(coloursCmd)
}

func runColours(cmd *cobra.Command, args []string) error {
	hexes, err := collectColours(cmd, args)
	if err != nil {
		return err
	}
	if len(hexes) == 0 {
		return fmt.Errorf("no colours found in input")
	}
	logger.Debug("collected colours", "count", len(hexes))

	assignments := batch.AutoAssign(hexes)
	out := cmd.OutOrStdout()
	table := NewTable([]string{"COLOUR", "LUMINANCE", "SATURATION", "ROLE"})
	for _, a := range assignments {
		role := string(a.Role)
		if role == "" {
			role = "(unassigned)"
		}
		table.AddRow(swatch(out, a.Hex), fmt.Sprintf("%.3f", a.Luminance), fmt.Sprintf("%.0f%%", a.Saturation*100), role)
	}
	fmt.Fprint(out, table.Render())

	if !coloursApply {
		return nil
	}

	ws, state, err := loadState()
	if err != nil {
		return err
	}
	next, err := batch.Apply(state.Tokens, assignments)
	if err != nil {
		return err
	}
	state.Replace(next)
	if err := ws.Save(state); err != nil {
		return err
	}
	info(cmd, "\nApplied %s.", plural(countAssigned(assignments), "colour"))
	return nil
}

// collectColours gathers colours from every input given, in order: arguments,
// CSS file, URL, then stdin when nothing else was given and input is piped.
func collectColours(cmd *cobra.Command, args []string) ([]string, error) {
	var all []string

	if len(args) > 0 {
		all = append(all, batch.ParseHexList(strings.Join(args, " "))...)
	}

	if coloursCSS != "" {
		data, err := os.ReadFile(coloursCSS) // #nosec G304 - User-specified stylesheet path
		if err != nil {
			return nil, fmt.Errorf("failed to read CSS file: %w", err)
		}
		all = append(all, batch.ExtractCSS(string(data))...)
	}

	if coloursURL != "" {
		fetched, err := batch.Fetch(cmd.Context(), coloursURL, batch.FetchOptions{
			Timeout: appConfig.FetchTimeout,
			Policy: security.URLPolicy{
				AllowHTTP:    coloursAllowHTTP,
				AllowPrivate: coloursAllowPrivate,
			},
			Logger: logger.Named("fetch"),
		})
		if err != nil {
			return nil, err
		}
		all = append(all, fetched...)
	}

	if len(args) == 0 && coloursCSS == "" && coloursURL == "" {
		if !stdinIsPipe() && cmd.InOrStdin() == os.Stdin {
			return nil, fmt.Errorf("give colours as arguments, --css, --url or on standard input")
		}
		data, err := io.ReadAll(security.NewLimitedReader(cmd.InOrStdin(), 1<<20))
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		text := string(data)
		if strings.Contains(text, "{") {
			all = append(all, batch.ExtractCSS(text)...)
		} else {
			all = append(all, batch.ParseHexList(text)...)
		}
	}

	return dedupe(all), nil
}

func dedupe(hexes []string) []string {
	seen := make(map[string]bool, len(hexes))
	out := hexes[:0]
	for _, h := range hexes {
		if !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	return out
}

func countAssigned(assignments []batch.Assignment) int {
	n := 0
	for _, a := range assignments {
		if a.Role != "" {
			n++
		}
	}
	return n
}
