package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/boostkit/internal/audit"
	"github.com/jmylchreest/boostkit/internal/compression"
	"github.com/jmylchreest/boostkit/internal/propagate"
	"github.com/jmylchreest/boostkit/internal/scss"
	"github.com/jmylchreest/boostkit/internal/tokens"
)

var (
	// Export command flags
	exportOutput string
	exportFormat string
	exportForce  bool

	// Import command flags
	importReplace bool
	importDryRun  bool
)

// Export formats.
const (
	formatBundle    = "bundle"
	formatBrand     = "brand"
	formatVariables = "variables"
	formatRules     = "rules"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the theme as Moodle Boost SCSS",
	Long: `Export the current theme for Moodle's Boost settings.

The default bundle format holds the Brand colour, Raw initial SCSS and Raw
SCSS settings in one text file. The other formats print a single setting.

Export is refused while any contrast check is below 3:1. Run 'boostkit fix'
or pass --force to export anyway.

An output file ending in .xz or .gz is compressed.

Examples:
  boostkit export
  boostkit export -o theme.txt
  boostkit export --format rules > raw.scss
  boostkit export -o theme.txt.xz --force`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Import SCSS produced by export",
	Long: `Import a bundle or raw SCSS written by 'boostkit export', including copies
that were edited by hand. Recognised settings are applied to the current theme;
anything else is ignored. Compressed files are detected automatically.

Use - to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", formatBundle, "output format (bundle, brand, variables, rules)")
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "export even when contrast checks fail")

	importCmd.Flags().BoolVar(&importReplace, "replace", false, "apply onto the defaults instead of the current theme")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "show what would change without saving")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	_, state, err := loadState()
	if err != nil {
		return err
	}

	report := audit.Run(state.Tokens)
	if blocking := report.Blocking(); len(blocking) > 0 {
		ids := make([]string, len(blocking))
		for i, r := range blocking {
			ids[i] = fmt.Sprintf("%s (%.2f:1)", r.ID, r.Ratio)
		}
		if !exportForce {
			return fmt.Errorf("export blocked: %s below %.0f:1: %s; run 'boostkit fix' or pass --force",
				plural(len(blocking), "contrast check"), audit.ExportGateRatio, strings.Join(ids, ", "))
		}
		logger.Warn("exporting with failing contrast checks", "checks", ids)
	}

	out := scss.Encode(state.Tokens)
	var content string
	switch exportFormat {
	case formatBundle:
		content = scss.Bundle(out)
	case formatBrand:
		content = out.BrandColour + "\n"
	case formatVariables:
		content = out.Variables + "\n"
	case formatRules:
		content = out.Rules + "\n"
	default:
		return fmt.Errorf("unsupported format: %s (supported: bundle, brand, variables, rules)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	f, err := compression.WriteFile(exportOutput, []byte(content))
	if err != nil {
		return err
	}
	logger.Debug("wrote export", "path", exportOutput, "format", exportFormat, "compression", f)
	info(cmd, "Wrote %s to %s", humanize.Bytes(uint64(len(content))), exportOutput)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	ws, state, err := loadState()
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	decoded := scss.Decode(text)
	if len(decoded) == 0 {
		return errors.New("no recognisable Boost settings found")
	}
	logger.Debug("decoded settings", "roles", decoded.Roles())

	base := state.Tokens
	if importReplace {
		base = propagate.Reset()
	}
	next, err := propagate.Import(base, decoded)
	if err != nil {
		logger.Warn("skipped invalid imported values", "error", err)
	}

	changed := tokens.Diff(state.Tokens, next)
	if importDryRun {
		printChanges(cmd, state.Tokens, next, changed.Roles())
		return nil
	}

	state.Replace(next)
	if err := ws.Save(state); err != nil {
		return err
	}
	info(cmd, "Imported %s, %s changed.", plural(len(decoded), "setting"), plural(len(changed), "role"))
	return nil
}

// readInput reads a possibly compressed file, or stdin for "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path != "-" {
		data, f, err := compression.ReadFile(path)
		if err != nil {
			return "", err
		}
		logger.Debug("read input", "path", path, "compression", f, "bytes", len(data))
		return string(data), nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	data, _, err := compression.Decompress(raw, 0)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// printChanges lists role values before and after an edit.
func printChanges(cmd *cobra.Command, before, after tokens.Tokens, roles []tokens.Role) {
	out := cmd.OutOrStdout()
	if len(roles) == 0 {
		fmt.Fprintln(out, "No changes.")
		return
	}
	table := NewTable([]string{"ROLE", "FROM", "TO"})
	for _, role := range roles {
		table.AddRow(string(role), displayValue(out, before, role), displayValue(out, after, role))
	}
	fmt.Fprint(out, table.Render())
}

// stdinIsPipe reports whether input is being piped in.
func stdinIsPipe() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice == 0
}
