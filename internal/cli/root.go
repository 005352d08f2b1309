// Package cli provides the command-line interface for boostkit.
package cli

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/boostkit/internal/config"
	"github.com/jmylchreest/boostkit/internal/library"
	"github.com/jmylchreest/boostkit/internal/version"
	"github.com/jmylchreest/boostkit/internal/workspace"
)

var (
	// Global flags
	globalConfigFile string
	globalVerbose    bool
	globalQuiet      bool

	// Resolved per invocation in setup.
	appConfig config.Config
	logger    hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "boostkit",
		Short: "Design and export Moodle Boost themes",
		Long: `boostkit edits a set of named theme colours and sizes, checks them against
WCAG contrast requirements and exports the SCSS that Moodle's Boost theme
expects in its Brand colour, Raw initial SCSS and Raw SCSS settings.

The theme being edited is kept in a state file between invocations. Exported
SCSS can be imported again, including a hand-edited copy.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// NewRootCmd returns the root command with every flag back at its default,
// so that one process can execute several command lines.
func NewRootCmd() *cobra.Command {
	resetFlags(rootCmd)
	return rootCmd
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&globalConfigFile, "config", "", "config file (default: $XDG_CONFIG_HOME/boostkit/config.yaml)")
	rootCmd.PersistentFlags().String("state", "", "theme state file; a .xz or .gz suffix stores it compressed")
	rootCmd.PersistentFlags().String("library", "", "saved configuration database")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// setup resolves configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	v := config.New()
	for flag, key := range map[string]string{
		"state":   config.KeyState,
		"library": config.KeyLibrary,
	} {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind --%s: %w", flag, err)
			}
		}
	}

	cfg, err := config.Load(v, globalConfigFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	level := hclog.Info
	switch {
	case cfg.LogLevel != "":
		level = hclog.LevelFromString(cfg.LogLevel)
	case globalVerbose:
		level = hclog.Debug
	case globalQuiet:
		level = hclog.Error
	}

	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "boostkit",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
	if cfg.File != "" {
		logger.Debug("loaded config", "file", cfg.File)
	}
	return nil
}

// loadState opens the workspace named by the configuration and reads it.
func loadState() (*workspace.Workspace, workspace.State, error) {
	ws := workspace.New(appConfig.StatePath, workspace.WithLogger(logger.Named("workspace")))
	state, err := ws.Load()
	if err != nil {
		return nil, workspace.State{}, err
	}
	return ws, state, nil
}

// openLibrary opens the saved configuration database.
func openLibrary(ctx context.Context) (*library.Store, error) {
	return library.Open(ctx, appConfig.LibraryPath, library.WithLogger(logger.Named("library")))
}

// info prints a status line unless --quiet is set.
func info(cmd *cobra.Command, format string, args ...any) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
