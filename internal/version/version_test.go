package version

import (
	"strings"
	"testing"
)

func setBuild(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })
	Version, Commit, Date = version, commit, date
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		commit  string
		date    string
		want    string
		notWant string
	}{
		{
			name:    "development build",
			commit:  "unknown",
			date:    "unknown",
			want:    "boostkit version 1.2.3 (go",
			notWant: "commit:",
		},
		{
			name:   "release build shortens the commit",
			commit: "0123456789abcdef0123456789abcdef01234567",
			date:   "2026-10-19T00:00:00Z",
			want:   "boostkit version 1.2.3 (commit: 01234567, built: 2026-10-19T00:00:00Z,",
		},
		{
			name:   "short commit kept",
			commit: "abc123",
			date:   "2026-10-19T00:00:00Z",
			want:   "(commit: abc123, built:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuild(t, "1.2.3", tt.commit, tt.date)
			got := String()
			if !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("String() = %q, should not contain %q", got, tt.notWant)
			}
		})
	}
}

func TestShort(t *testing.T) {
	setBuild(t, "1.2.3", "unknown", "unknown")
	if got := Short(); got != "1.2.3" {
		t.Errorf("Short() = %q, want 1.2.3", got)
	}
}
