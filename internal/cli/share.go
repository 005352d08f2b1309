package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/boostkit/internal/share"
	"github.com/jmylchreest/boostkit/internal/tokens"
)

var (
	// Share command flags
	shareRaw   bool
	shareBase  string
	shareApply bool
)

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode the theme as a shareable string",
	Long: `Share strings hold only the roles that differ from the Moodle defaults.
Background images are never included.`,
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print a share URL for the current theme",
	Args:  cobra.NoArgs,
	RunE:  runShareEncode,
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <url|string>",
	Short: "Show or apply the theme in a share URL or string",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareDecode,
}

func init() {
	shareEncodeCmd.Flags().BoolVar(&shareRaw, "raw", false, "print only the encoded string")
	shareEncodeCmd.Flags().StringVar(&shareBase, "base", "", "base URL (default: share_base_url setting)")

	shareDecodeCmd.Flags().BoolVar(&shareApply, "apply", false, "replace the current theme with the shared one")

	shareCmd.AddCommand(shareEncodeCmd)
	shareCmd.AddCommand(shareDecodeCmd)
	rootCmd.AddCommand(shareCmd)
}

func runShareEncode(cmd *cobra.Command, args []string) error {
	_, state, err := loadState()
	if err != nil {
		return err
	}

	if shareRaw {
		fmt.Fprintln(cmd.OutOrStdout(), share.Encode(state.Tokens))
		return nil
	}

	base := shareBase
	if base == "" {
		base = appConfig.ShareBaseURL
	}
	url, err := share.URL(base, state.Tokens)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

func runShareDecode(cmd *cobra.Command, args []string) error {
	p, err := share.FromURL(args[0])
	if err != nil {
		return err
	}

	if !shareApply {
		out := cmd.OutOrStdout()
		if len(p) == 0 {
			fmt.Fprintln(out, "The shared theme is the Moodle default.")
			return nil
		}
		shared, mergeErr := tokens.Merge(tokens.Defaults(), p)
		table := NewTable([]string{"ROLE", "VALUE"})
		for _, role := range p.Roles() {
			table.AddRow(string(role), displayValue(out, shared, role))
		}
		fmt.Fprint(out, table.Render())
		if unknown := unknownRoles(p); len(unknown) > 0 {
			logger.Warn("shared theme has unknown roles", "roles", unknown)
		}
		if mergeErr != nil {
			logger.Warn("shared theme has invalid values", "error", mergeErr)
		}
		return nil
	}

	ws, state, err := loadState()
	if err != nil {
		return err
	}
	shared, err := tokens.Merge(tokens.Defaults(), p)
	if err != nil {
		logger.Warn("skipped invalid shared values", "error", err)
	}
	state.Replace(shared)
	if err := ws.Save(state); err != nil {
		return err
	}
	info(cmd, "Applied shared theme (%s).", plural(len(p.Roles()), "role"))
	return nil
}

// unknownRoles lists keys of p that are not schema roles.
func unknownRoles(p tokens.Partial) []string {
	var out []string
	for role := range p {
		if _, ok := tokens.Lookup(role); !ok {
			out = append(out, string(role))
		}
	}
	sort.Strings(out)
	return out
}
