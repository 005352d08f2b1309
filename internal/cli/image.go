package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/boostkit/internal/image"
	"github.com/jmylchreest/boostkit/internal/tokens"
)

var (
	// Image command flags
	imageMaxBytes int64
)

// imageCmd represents the image command
var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Set or clear background images",
	Long: `Background images are stored in the theme as data URLs. They are never
written into the generated SCSS; export adds a reminder to upload them in
Moodle's theme settings instead.

Image roles: backgroundImage, loginBgImage.
Supported image formats: JPEG, PNG, GIF, WebP`,
}

var imageSetCmd = &cobra.Command{
	Use:   "set <role> <file>",
	Short: "Store an image in an image role",
	Args:  cobra.ExactArgs(2),
	RunE:  runImageSet,
}

var imageClearCmd = &cobra.Command{
	Use:   "clear <role>",
	Short: "Remove the image from an image role",
	Args:  cobra.ExactArgs(1),
	RunE:  runImageClear,
}

func init() {
	imageSetCmd.Flags().Int64Var(&imageMaxBytes, "max-size", image.DefaultMaxBytes, "largest accepted image in bytes")

	imageCmd.AddCommand(imageSetCmd)
	imageCmd.AddCommand(imageClearCmd)
	rootCmd.AddCommand(imageCmd)
}

// parseImageRole resolves name to a role that holds an image.
func parseImageRole(name string) (tokens.Role, error) {
	role, err := tokens.ParseRole(name)
	if err != nil {
		return "", err
	}
	if f, _ := tokens.Lookup(role); f.Kind != tokens.KindBlob {
		return "", fmt.Errorf("%s does not hold an image", role)
	}
	return role, nil
}

func runImageSet(cmd *cobra.Command, args []string) error {
	role, err := parseImageRole(args[0])
	if err != nil {
		return err
	}

	url, img, err := image.LoadFile(args[1], imageMaxBytes)
	if err != nil {
		return err
	}

	ws, state, err := loadState()
	if err != nil {
		return err
	}
	if err := state.SetRole(role, url); err != nil {
		return err
	}
	if err := ws.Save(state); err != nil {
		return err
	}

	info(cmd, "Set %s to %s %dx%d (%s).", role, img.Format, img.Width, img.Height, humanize.Bytes(uint64(img.Size)))
	return nil
}

func runImageClear(cmd *cobra.Command, args []string) error {
	role, err := parseImageRole(args[0])
	if err != nil {
		return err
	}

	ws, state, err := loadState()
	if err != nil {
		return err
	}
	if err := state.SetRole(role, ""); err != nil {
		return err
	}
	if err := ws.Save(state); err != nil {
		return err
	}
	info(cmd, "Cleared %s.", role)
	return nil
}
