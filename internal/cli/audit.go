package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/boostkit/internal/audit"
	"github.com/jmylchreest/boostkit/internal/colour"
)

var (
	// Audit command flags
	auditReport string
	auditStrict bool

	// Fix command flags
	fixDryRun bool

	// Contrast command flags
	contrastLarge bool
)

// errAuditFailed is returned by audit --strict when a check fails.
var errAuditFailed = errors.New("accessibility audit failed")

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check the theme against WCAG contrast requirements",
	Long: `Measure the contrast of every text/background pairing in the theme.

Normal text needs 4.5:1 (WCAG AA) and large text 3:1. Failing pairs come with
a suggested replacement from the brand palette.

Examples:
  boostkit audit
  boostkit audit --report audit.txt
  boostkit audit --strict   # exit non-zero when any check fails`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

// fixCmd represents the fix command
var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Apply the suggested fix for every failing contrast check",
	Args:  cobra.NoArgs,
	RunE:  runFix,
}

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Measure the contrast between two colours",
	Args:  cobra.ExactArgs(2),
	RunE:  runContrast,
}

func init() {
	auditCmd.Flags().StringVar(&auditReport, "report", "", "also write a plain text report to this file")
	auditCmd.Flags().BoolVar(&auditStrict, "strict", false, "return an error when any check fails")

	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "show the changes without saving them")

	contrastCmd.Flags().BoolVar(&contrastLarge, "large", false, "grade for large text (18pt, or 14pt bold)")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(contrastCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	_, state, err := loadState()
	if err != nil {
		return err
	}

	report := audit.Run(state.Tokens)
	out := cmd.OutOrStdout()

	table := NewTable([]string{"CHECK", "SAMPLE", "RATIO", "STATUS", "SUGGESTION"})
	for _, r := range report.Results {
		suggestion := ""
		if r.Suggestion != "" {
			suggestion = swatch(out, r.Suggestion)
			if name := colour.SwatchName(r.Suggestion); name != "" {
				suggestion += " " + name
			}
		}
		sampleText := sample(out, r.Foreground, r.Background, "Aa")
		if sampleText == "" {
			sampleText = r.Foreground + " on " + r.Background
		}
		table.AddRow(
			pass(out, r.Pass)+" "+r.Label,
			sampleText,
			fmt.Sprintf("%.2f:1", r.Ratio),
			string(r.Status),
			suggestion,
		)
	}
	fmt.Fprint(out, table.Render())
	fmt.Fprintf(out, "\nContrast Score: %d/%d pairs pass (%d%%)\n", report.Passing, report.Total(), report.Score)

	fmt.Fprintln(out)
	for _, a := range report.Additional {
		fmt.Fprintf(out, "%s %s (current: %s)\n", pass(out, a.Pass), a.Label, a.Current)
	}

	if blocking := report.Blocking(); len(blocking) > 0 {
		fmt.Fprintf(out, "\nExport is blocked: %s below %.0f:1.\n", plural(len(blocking), "check"), audit.ExportGateRatio)
	}

	if auditReport != "" {
		if err := writeReport(auditReport, report); err != nil {
			return err
		}
		info(cmd, "\nReport written to %s", auditReport)
	}

	if auditStrict && len(report.Failing()) > 0 {
		return fmt.Errorf("%w: %s", errAuditFailed, plural(len(report.Failing()), "failing check"))
	}
	return nil
}

func writeReport(path string, report audit.Report) error {
	f, err := os.Create(path) // #nosec G304 - User-specified report path
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	writeErr := audit.WriteText(f, report, time.Now())
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write report: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close report: %w", closeErr)
	}
	return nil
}

func runFix(cmd *cobra.Command, args []string) error {
	ws, state, err := loadState()
	if err != nil {
		return err
	}

	fixed, changes := audit.Fix(state.Tokens)
	out := cmd.OutOrStdout()
	if len(changes) == 0 {
		info(cmd, "Nothing to fix.")
		return nil
	}

	table := NewTable([]string{"CHECK", "ROLE", "FROM", "TO"})
	for _, c := range changes {
		table.AddRow(c.Check, string(c.Role), swatch(out, c.From), swatch(out, c.To))
	}
	fmt.Fprint(out, table.Render())

	after := audit.Run(fixed)
	fmt.Fprintf(out, "\nContrast Score after fix: %d/%d pairs pass (%d%%)\n", after.Passing, after.Total(), after.Score)

	if fixDryRun {
		return nil
	}
	state.Replace(fixed)
	return ws.Save(state)
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg, ok := colour.NormaliseHex(args[0])
	if !ok {
		return fmt.Errorf("invalid foreground colour %q", args[0])
	}
	bg, ok := colour.NormaliseHex(args[1])
	if !ok {
		return fmt.Errorf("invalid background colour %q", args[1])
	}

	out := cmd.OutOrStdout()
	ratio := colour.ContrastRatio(fg, bg)
	fmt.Fprintf(out, "%s on %s: %.2f:1 %s\n", swatch(out, fg), swatch(out, bg), ratio, sample(out, fg, bg, "Sample"))
	fmt.Fprintf(out, "%s AA normal text (%.1f:1)\n", pass(out, colour.MeetsAA(ratio)), colour.RatioAA)
	fmt.Fprintf(out, "%s AA large text (%.1f:1)\n", pass(out, colour.MeetsAALarge(ratio)), colour.RatioAALarge)
	fmt.Fprintf(out, "%s AAA normal text (%.1f:1)\n", pass(out, colour.MeetsAAA(ratio)), colour.RatioAAA)

	if ratio < colour.TargetRatio(contrastLarge) {
		if fix, ok := colour.SuggestFix(fg, bg, contrastLarge); ok {
			name := colour.SwatchName(fix)
			fmt.Fprintf(out, "Suggested foreground: %s %s (%.2f:1)\n", swatch(out, fix), name, colour.ContrastRatio(fix, bg))
		}
	}
	return nil
}
