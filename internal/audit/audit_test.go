package audit

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jmylchreest/boostkit/internal/colour"
	"github.com/jmylchreest/boostkit/internal/tokens"
)

func result(t *testing.T, r Report, id string) Result {
	t.Helper()
	for _, res := range r.Results {
		if res.ID == id {
			return res
		}
	}
	t.Fatalf("no result for check %s", id)
	return Result{}
}

func TestRunDefaults(t *testing.T) {
	r := Run(tokens.Defaults())

	if r.Total() != 14 {
		t.Fatalf("Total() = %d, want 14", r.Total())
	}
	if r.Passing != 14 || r.Score != 100 {
		t.Errorf("Passing = %d, Score = %d, want 14 and 100", r.Passing, r.Score)
	}
	if len(r.Failing()) != 0 || len(r.Blocking()) != 0 {
		t.Errorf("defaults should not fail: %v", r.Failing())
	}

	tests := []struct {
		id        string
		status    Status
		criterion string
	}{
		{"body-page", StatusAAA, CriterionEnhanced},
		{"link-page", StatusAA, CriterionMinimum},
		{"muted-page", StatusAA, CriterionMinimum},
		{"logo-accent", StatusAALarge, CriterionMinimum},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			res := result(t, r, tt.id)
			if res.Status != tt.status || res.Criterion != tt.criterion {
				t.Errorf("got %s / %s, want %s / %s", res.Status, res.Criterion, tt.status, tt.criterion)
			}
		})
	}
}

func TestRunResolvesAutoAccent(t *testing.T) {
	res := result(t, Run(tokens.Defaults()), "logo-accent")
	if res.Foreground != colour.BestAccentColour("#0F6CBF") {
		t.Errorf("Foreground = %s, want the best accent for the navbar", res.Foreground)
	}

	tok := tokens.Defaults()
	tok.LogoAccentColour = tokens.Explicit("#336E7B")
	res = result(t, Run(tok), "logo-accent")
	if res.Foreground != "#336E7B" {
		t.Errorf("explicit accent Foreground = %s", res.Foreground)
	}
}

func TestRunFailing(t *testing.T) {
	tok := tokens.Defaults()
	tok.LinkColour = "#F27927"

	r := Run(tok)
	if r.Passing != 12 || r.Score != 86 {
		t.Errorf("Passing = %d, Score = %d, want 12 and 86", r.Passing, r.Score)
	}

	failing := r.Failing()
	if len(failing) != 2 {
		t.Fatalf("Failing() = %d results, want 2", len(failing))
	}
	for _, res := range failing {
		if res.Status != StatusFail || res.Criterion != CriterionBelow {
			t.Errorf("%s: status %s / %s", res.ID, res.Status, res.Criterion)
		}
		if res.Suggestion == "" {
			t.Errorf("%s: no suggestion", res.ID)
			continue
		}
		if ratio := colour.ContrastRatio(res.Suggestion, res.Background); ratio < colour.RatioAA {
			t.Errorf("%s: suggestion %s only reaches %.2f", res.ID, res.Suggestion, ratio)
		}
	}

	if got := len(r.Blocking()); got != 2 {
		t.Errorf("Blocking() = %d results, want 2", got)
	}
}

func TestBlockingThreshold(t *testing.T) {
	tok := tokens.Defaults()
	// Fails AA but clears the export gate.
	tok.MutedText = "#8A8F94"

	r := Run(tok)
	if len(r.Failing()) == 0 {
		t.Fatal("expected muted text to fail AA")
	}
	for _, res := range r.Failing() {
		if res.Ratio < ExportGateRatio {
			t.Fatalf("%s ratio %.2f is below the gate", res.ID, res.Ratio)
		}
	}
	if len(r.Blocking()) != 0 {
		t.Errorf("Blocking() = %v, want none", r.Blocking())
	}
}

func TestAdditional(t *testing.T) {
	tests := []struct {
		name string
		edit func(*tokens.Tokens)
		want []bool
	}{
		{"defaults", func(*tokens.Tokens) {}, []bool{false, true, true}},
		{"large body", func(t *tokens.Tokens) { t.BodyFontSize = 1 }, []bool{true, true, true}},
		{"tight lines", func(t *tokens.Tokens) { t.LineHeight = 1.2 }, []bool{false, false, true}},
		{"thin focus", func(t *tokens.Tokens) { t.FocusRingWidth = 1 }, []bool{false, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tokens.Defaults()
			tt.edit(&tok)
			add := Run(tok).Additional
			if len(add) != len(tt.want) {
				t.Fatalf("got %d additional checks", len(add))
			}
			for i, a := range add {
				if a.Pass != tt.want[i] {
					t.Errorf("%s: Pass = %v, want %v", a.Label, a.Pass, tt.want[i])
				}
			}
		})
	}
}

func TestFix(t *testing.T) {
	tok := tokens.Defaults()
	tok.LinkColour = "#F27927"
	tok.FooterLink = "#00BFFF"

	fixed, changes := Fix(tok)
	if len(changes) == 0 {
		t.Fatal("expected changes")
	}
	if got := Run(fixed).Failing(); len(got) != 0 {
		t.Errorf("still failing after Fix: %v", got)
	}
	if fixed.LinkColour == tok.LinkColour || fixed.FooterLink == tok.FooterLink {
		t.Error("failing foregrounds were not replaced")
	}
	for _, c := range changes {
		if c.From == c.To {
			t.Errorf("%s: no-op change", c.Check)
		}
	}

	if _, changes := Fix(tokens.Defaults()); len(changes) != 0 {
		t.Errorf("Fix on defaults changed %v", changes)
	}
}

func TestWriteText(t *testing.T) {
	tok := tokens.Defaults()
	tok.LinkColour = "#F27927"

	var buf bytes.Buffer
	when := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	if err := WriteText(&buf, Run(tok), when); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		reportTitle + "\n" + doubleRule + "\n",
		"Generated: 2025-03-14 09:30:00 UTC",
		"Link on Page\n  Link colour on page background\n  Foreground: #F27927 | Background: #FFFFFF\n",
		"| FAIL\n  Criterion: Below WCAG 1.4.3\n  Suggested fix: #",
		"Heading on Page [Large Text]",
		"Contrast Score: 12/14 pairs pass (86%)",
		"✗ Body text at least 16px (1rem) (current: 0.9375rem)",
		"✓ Line height at least 1.5 (current: 1.5)",
		"✓ Focus indicators visible (at least 2px) (current: 2px)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
