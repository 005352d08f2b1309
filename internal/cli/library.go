package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/boostkit/internal/audit"
)

// libraryCmd represents the library command
var libraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"lib"},
	Short:   "Save and restore named themes",
	Long: `The library keeps named snapshots of the theme in a local database.
Snapshots are referenced by name, full id or a unique id prefix. Background
images are not stored in the library.`,
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibrarySave,
}

var libraryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved themes, newest first",
	Args:    cobra.NoArgs,
	RunE:    runLibraryList,
}

var libraryLoadCmd = &cobra.Command{
	Use:   "load <name|id>",
	Short: "Replace the current theme with a saved one",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryLoad,
}

var libraryDeleteCmd = &cobra.Command{
	Use:     "delete <name|id>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved theme",
	Args:    cobra.ExactArgs(1),
	RunE:    runLibraryDelete,
}

func init() {
	libraryCmd.AddCommand(librarySaveCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryLoadCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibrarySave(cmd *cobra.Command, args []string) error {
	_, state, err := loadState()
	if err != nil {
		return err
	}

	store, err := openLibrary(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	score := audit.Run(state.Tokens).Score
	cfg, err := store.Save(cmd.Context(), args[0], state.Tokens, score)
	if err != nil {
		return err
	}
	info(cmd, "Saved %q as %s (score %d%%).", cfg.Name, shortID(cfg.ID), cfg.Score)
	return nil
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	store, err := openLibrary(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	configs, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		info(cmd, "No saved themes.")
		return nil
	}

	out := cmd.OutOrStdout()
	table := NewTable([]string{"ID", "NAME", "BRAND", "SCORE", "SAVED"})
	for _, c := range configs {
		table.AddRow(
			shortID(c.ID),
			c.Name,
			swatch(out, c.Tokens.BrandPrimary),
			fmt.Sprintf("%d%%", c.Score),
			humanize.Time(c.CreatedAt),
		)
	}
	fmt.Fprint(out, table.Render())
	return nil
}

func runLibraryLoad(cmd *cobra.Command, args []string) error {
	ws, state, err := loadState()
	if err != nil {
		return err
	}

	store, err := openLibrary(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	cfg, err := store.Find(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	// Images live only in the workspace, so keep the current ones.
	t := cfg.Tokens
	t.BackgroundImage = state.Tokens.BackgroundImage
	t.LoginBgImage = state.Tokens.LoginBgImage

	state.Replace(t)
	if err := ws.Save(state); err != nil {
		return err
	}
	info(cmd, "Loaded %q (saved %s).", cfg.Name, humanize.Time(cfg.CreatedAt))
	return nil
}

func runLibraryDelete(cmd *cobra.Command, args []string) error {
	store, err := openLibrary(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	cfg, err := store.Find(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := store.Delete(cmd.Context(), cfg.ID); err != nil {
		return err
	}
	info(cmd, "Deleted %q.", cfg.Name)
	return nil
}

// shortID abbreviates a saved configuration id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
