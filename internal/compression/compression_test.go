package compression

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/boostkit/internal/security"
)

const bundle = "=== Moodle Theme Configuration ===\n\n--- Brand Colour ---\n#336E7B\n"

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{None, XZ, Gzip} {
		t.Run(f.String(), func(t *testing.T) {
			packed, err := Compress([]byte(bundle), f)
			if err != nil {
				t.Fatalf("Compress() error = %v", err)
			}
			if got := Detect(packed); got != f {
				t.Errorf("Detect() = %v, want %v", got, f)
			}

			out, got, err := Decompress(packed, 0)
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if got != f {
				t.Errorf("Decompress() format = %v, want %v", got, f)
			}
			if string(out) != bundle {
				t.Errorf("Decompress() = %q", out)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"theme.txt", None},
		{"theme.scss", None},
		{"theme.txt.xz", XZ},
		{"THEME.XZ", XZ},
		{"theme.txt.gz", Gzip},
		{"theme", None},
	}
	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDecompressLimit(t *testing.T) {
	large := strings.Repeat("#336E7B\n", 1024)
	packed, err := Compress([]byte(large), XZ)
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = Decompress(packed, 100)
	if !errors.Is(err, security.ErrSizeLimit) {
		t.Errorf("error = %v, want ErrSizeLimit", err)
	}
}

func TestDecompressCorrupt(t *testing.T) {
	corrupt := append(bytes.Clone(xzMagic), []byte("not really xz")...)
	if _, _, err := Decompress(corrupt, 0); err == nil {
		t.Error("expected error for corrupt xz stream")
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out", "theme.txt.xz")
	f, err := WriteFile(path, []byte(bundle))
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if f != XZ {
		t.Errorf("WriteFile() format = %v", f)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(raw, xzMagic) {
		t.Error("file should start with the xz header")
	}

	// Content is sniffed, so a renamed file still reads.
	renamed := filepath.Join(dir, "theme.txt")
	if err := os.Rename(path, renamed); err != nil {
		t.Fatal(err)
	}
	data, got, err := ReadFile(renamed)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != XZ || string(data) != bundle {
		t.Errorf("ReadFile() = %q, %v", data, got)
	}

	if _, _, err := ReadFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
