// Package compression reads and writes optionally compressed bundle files.
// The format is chosen from the file extension on write and sniffed from the
// content on read.
package compression

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/boostkit/internal/security"
)

// DefaultMaxBytes caps the decompressed size of a bundle.
const DefaultMaxBytes = 50 << 20

// Format identifies a compression format.
type Format int

const (
	None Format = iota
	XZ
	Gzip
)

func (f Format) String() string {
	switch f {
	case XZ:
		return "xz"
	case Gzip:
		return "gzip"
	default:
		return "none"
	}
}

var (
	xzMagic   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	gzipMagic = []byte{0x1F, 0x8B}
)

// Detect sniffs the compression format from the leading bytes of data.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, xzMagic):
		return XZ
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	default:
		return None
	}
}

// FormatForPath selects a format from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return XZ
	case ".gz":
		return Gzip
	default:
		return None
	}
}

// Compress encodes data in format f.
func Compress(data []byte, f Format) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser

	switch f {
	case None:
		return data, nil
	case XZ:
		xzw, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		w = xzw
	case Gzip:
		w = gzip.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("unknown compression format %d", f)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress %s: %w", f, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish %s stream: %w", f, err)
	}
	return buf.Bytes(), nil
}

// Decompress sniffs the format of data and returns its decoded contents,
// refusing output larger than maxBytes. Uncompressed input is returned as is.
// maxBytes <= 0 selects DefaultMaxBytes.
func Decompress(data []byte, maxBytes int64) ([]byte, Format, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	f := Detect(data)
	var r io.Reader
	switch f {
	case None:
		return data, None, nil
	case XZ:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, f, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	case Gzip:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, f, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	}

	out, err := io.ReadAll(security.NewLimitedReader(r, maxBytes))
	if err != nil {
		return nil, f, fmt.Errorf("failed to decompress %s: %w", f, err)
	}
	return out, f, nil
}

// ReadFile reads path and decompresses it when it carries an xz or gzip
// header, whatever its extension.
func ReadFile(path string) ([]byte, Format, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified bundle path, intended to be read
	if err != nil {
		return nil, None, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decompress(data, 0)
}

// WriteFile writes data to path, compressing it when the extension is .xz or
// .gz.
func WriteFile(path string, data []byte) (Format, error) {
	f := FormatForPath(path)
	out, err := Compress(data, f)
	if err != nil {
		return f, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Output directory needs to be readable
			return f, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil { // #nosec G306 - Bundle is not sensitive
		return f, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f, nil
}
