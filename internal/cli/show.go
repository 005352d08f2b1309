package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/boostkit/internal/scss"
	"github.com/jmylchreest/boostkit/internal/tokens"
	"github.com/jmylchreest/boostkit/internal/workspace"
)

var (
	// Show command flags
	showCSS     bool
	showChanged bool
	showGroup   string
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the theme being edited",
	Long: `Show every role of the current theme with its value.

Examples:
  # Show all roles
  boostkit show

  # Show only roles that differ from the Moodle defaults
  boostkit show --changed

  # Show the navbar group
  boostkit show --group navbar

  # Print the theme as CSS custom properties
  boostkit show --css`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showCSS, "css", false, "print a :root block of CSS custom properties")
	showCmd.Flags().BoolVar(&showChanged, "changed", false, "only show roles that differ from the defaults")
	showCmd.Flags().StringVar(&showGroup, "group", "", "only show roles in this group")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	_, state, err := loadState()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if showCSS {
		fmt.Fprint(out, scss.CustomProperties(state.Tokens))
		return nil
	}

	defaults := tokens.Defaults()
	table := NewTable([]string{"GROUP", "ROLE", "VALUE"})
	for _, f := range tokens.Schema() {
		if showGroup != "" && !strings.EqualFold(string(f.Group), showGroup) {
			continue
		}
		if showChanged && !state.Tokens.Differs(defaults, f.Role) {
			continue
		}
		table.AddRow(string(f.Group), string(f.Role), displayValue(out, state.Tokens, f.Role))
	}

	info(cmd, "%s\n", describeState(state))
	if table.Len() == 0 {
		info(cmd, "No roles to show.")
		return nil
	}
	fmt.Fprint(out, table.Render())
	return nil
}

// describeState names where the current tokens came from.
func describeState(s workspace.State) string {
	if s.ActivePresetID != "" {
		if p, ok := tokens.LookupPreset(s.ActivePresetID); ok {
			return "Preset: " + p.Name
		}
	}
	if s.CustomMode {
		return "Custom theme"
	}
	return "Default theme"
}
