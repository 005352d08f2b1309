package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/boostkit/internal/tokens"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <role> <value> [<role> <value>...]",
	Short: "Set one or more roles",
	Long: `Set roles of the current theme.

Colours are #RRGGBB or #RGB. Sizes are plain numbers in the role's unit.
Setting brandPrimary moves every role still following the old brand colour.
Setting navbarBg or footerBg also picks a readable text colour for it.

Examples:
  boostkit set linkColour '#336E7B'
  boostkit set navbarBg '#1D2125' footerBg '#1D2125'
  boostkit set bodyFontSize 1 lineHeight 1.6
  boostkit set logoAccentColour auto`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("expected role and value pairs, got %d arguments", len(args))
		}
		return nil
	},
	RunE: runSet,
}

// brandCmd represents the brand command
var brandCmd = &cobra.Command{
	Use:   "brand <hex>",
	Short: "Change the brand colour",
	Long: `Change brandPrimary. Every role whose value still equals the old brand
colour moves with it, and the button and link hover shades are recomputed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrand,
}

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return to the Moodle Boost defaults",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

// presetCmd represents the preset command
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "List and apply preset themes",
}

var presetListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List preset themes",
	Args:    cobra.NoArgs,
	RunE:    runPresetList,
}

var presetApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Replace the theme with a preset",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var ids []string
		for _, p := range tokens.Presets() {
			ids = append(ids, p.ID)
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runPresetApply,
}

func init() {
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetApplyCmd)

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(brandCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(presetCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	ws, state, err := loadState()
	if err != nil {
		return err
	}

	for i := 0; i < len(args); i += 2 {
		role, err := tokens.ParseRole(args[i])
		if err != nil {
			return err
		}
		value, err := tokens.ParseValue(role, args[i+1])
		if err != nil {
			return err
		}
		if err := state.SetRole(role, value); err != nil {
			return err
		}
		logger.Debug("set role", "role", role, "value", state.Tokens.Format(role))
		info(cmd, "%s = %s", role, displayValue(cmd.OutOrStdout(), state.Tokens, role))
	}

	return ws.Save(state)
}

func runBrand(cmd *cobra.Command, args []string) error {
	ws, state, err := loadState()
	if err != nil {
		return err
	}

	value, err := tokens.ParseValue(tokens.BrandPrimary, args[0])
	if err != nil {
		return err
	}

	before := state.Tokens
	state.SetBrand(value.(string))

	moved := tokens.Diff(before, state.Tokens).Roles()
	logger.Debug("brand propagated", "from", before.BrandPrimary, "to", state.Tokens.BrandPrimary, "roles", moved)
	info(cmd, "Brand colour %s -> %s (%s updated)", before.BrandPrimary,
		swatch(cmd.OutOrStdout(), state.Tokens.BrandPrimary), plural(len(moved), "role"))

	return ws.Save(state)
}

func runReset(cmd *cobra.Command, args []string) error {
	ws, state, err := loadState()
	if err != nil {
		return err
	}
	state.Reset()
	info(cmd, "Theme reset to the Moodle Boost defaults.")
	return ws.Save(state)
}

func runPresetList(cmd *cobra.Command, args []string) error {
	_, state, err := loadState()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	table := NewTable([]string{"", "ID", "NAME", "BRAND", "DESCRIPTION"})
	table.SetColumnMaxWidth(4, 50)
	for _, p := range tokens.Presets() {
		t, err := tokens.ApplyPreset(p.ID)
		if err != nil {
			return err
		}
		marker := ""
		if p.ID == state.ActivePresetID {
			marker = "*"
		}
		name := p.Name
		if p.Recommended {
			name += " (recommended)"
		}
		table.AddRow(marker, p.ID, name, swatch(out, t.BrandPrimary), p.Description)
	}
	fmt.Fprint(out, table.Render())
	return nil
}

func runPresetApply(cmd *cobra.Command, args []string) error {
	ws, state, err := loadState()
	if err != nil {
		return err
	}
	if err := state.ApplyPreset(args[0]); err != nil {
		return err
	}
	info(cmd, "Applied preset %s.", args[0])
	return ws.Save(state)
}
