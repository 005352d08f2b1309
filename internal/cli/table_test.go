package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Role", "Value"})
	table.AddRow("brandPrimary", "#0F6CBF")
	table.AddRow("bodyFontSize", "0.9375rem")

	want := "" +
		"Role          Value\n" +
		"------------  ---------\n" +
		"brandPrimary  #0F6CBF\n" +
		"bodyFontSize  0.9375rem\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d", table.Len())
	}
}

func TestTableAddRowFits(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	table.AddRow("only")
	table.AddRow("one", "two", "three")

	if len(table.rows[0]) != 2 || table.rows[0][1] != "" {
		t.Errorf("short row not padded: %q", table.rows[0])
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("long row not truncated: %q", table.rows[1])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() with no headers = %q", got)
	}

	out := NewTable([]string{"Column1", "Column2"}).Render()
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 2 {
		t.Errorf("expected header and separator only, got %q", out)
	}
}

func TestTableStyledCells(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("#336E7B")

	table := NewTable([]string{"Swatch", "Name"})
	table.AddRow(styled, "Teal")
	table.AddRow("#BAF73C", "Lime")

	lines := strings.Split(table.Render(), "\n")
	// Columns line up by display width even when a cell has escape codes.
	if lipgloss.Width(lines[2]) != lipgloss.Width(lines[3]) {
		t.Errorf("misaligned rows:\n%s\n%s", lines[2], lines[3])
	}
}

func TestTableWrap(t *testing.T) {
	table := NewTable([]string{"Check", "Suggestion"})
	table.SetColumnMaxWidth(1, 12)
	table.AddRow("muted-page", "use Charcoal for muted text")

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected three wrapped lines, got:\n%s", strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[2], "muted-page") || strings.TrimSpace(lines[3]) == "" {
		t.Errorf("unexpected wrap:\n%s", strings.Join(lines, "\n"))
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"✓", 3, "✓  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"no limit at all", 0, []string{"no limit at all"}},
		{"use Charcoal for muted text", 12, []string{"use Charcoal", "for muted", "text"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		got := wrapText(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
