// Package image validates background images and converts them to data URLs
// for storage in blob token roles.
package image

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/boostkit/internal/security"
)

// DefaultMaxBytes caps an image stored in a token set.
const DefaultMaxBytes = 2 << 20

// ErrNotDataURL is returned by Inspect for values that are not base64 image
// data URLs.
var ErrNotDataURL = errors.New("not an image data URL")

// Info describes a decoded image.
type Info struct {
	Format string
	Width  int
	Height int
	Size   int64
}

// MediaType returns the MIME type for the image format.
func (i Info) MediaType() string {
	return "image/" + i.Format
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// LoadFile reads an image file and returns it as a data URL. maxBytes <= 0
// selects DefaultMaxBytes.
func LoadFile(path string, maxBytes int64) (string, Info, error) {
	if path == "" {
		return "", Info{}, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", Info{}, fmt.Errorf("image file not found: %s", path)
		}
		return "", Info{}, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return "", Info{}, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !isImageFile(path) {
		return "", Info{}, fmt.Errorf("unsupported image extension %q (supported: %s)",
			filepath.Ext(path), strings.Join(SupportedImageExtensions(), ", "))
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return "", Info{}, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return DataURL(file, maxBytes)
}

// DataURL reads an image from r, checks that it decodes as a supported format
// and returns a base64 data URL.
func DataURL(r io.Reader, maxBytes int64) (string, Info, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	data, err := io.ReadAll(security.NewLimitedReader(r, maxBytes))
	if err != nil {
		return "", Info{}, fmt.Errorf("failed to read image: %w", err)
	}

	info, err := inspect(data)
	if err != nil {
		return "", Info{}, err
	}

	return "data:" + info.MediaType() + ";base64," + base64.StdEncoding.EncodeToString(data), info, nil
}

// Inspect decodes the header of an image data URL.
func Inspect(dataURL string) (Info, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:image/")
	if !ok {
		return Info{}, ErrNotDataURL
	}
	_, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return Info{}, ErrNotDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrNotDataURL, err)
	}
	return inspect(data)
}

func inspect(data []byte) (Info, error) {
	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("unsupported or invalid image format: %w", err)
	}
	return Info{
		Format: format,
		Width:  config.Width,
		Height: config.Height,
		Size:   int64(len(data)),
	}, nil
}
