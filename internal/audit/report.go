package audit

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	reportTitle = "Moodle Theme Accessibility Audit Report"
	reportNote  = "Note: WCAG 2.2 Level AA requires 4.5:1 for normal text and\n" +
		"3.0:1 for large text 18px and over (WCAG 1.4.3). Level AAA requires 7.0:1 (WCAG 1.4.6)."
)

var (
	doubleRule = strings.Repeat("=", 50)
	singleRule = strings.Repeat("-", 50)
)

// WriteText writes r as a plain text report stamped with generated.
func WriteText(w io.Writer, r Report, generated time.Time) error {
	var b strings.Builder

	fmt.Fprintln(&b, reportTitle)
	fmt.Fprintln(&b, doubleRule)
	fmt.Fprintf(&b, "Generated: %s\n\n", generated.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintln(&b, "CONTRAST CHECKS")
	fmt.Fprintln(&b, singleRule)
	fmt.Fprintln(&b)

	for _, res := range r.Results {
		label := res.Label
		if res.LargeText {
			label += " [Large Text]"
		}
		fmt.Fprintln(&b, label)
		fmt.Fprintf(&b, "  %s\n", res.Description)
		fmt.Fprintf(&b, "  Foreground: %s | Background: %s\n", res.Foreground, res.Background)
		fmt.Fprintf(&b, "  Ratio: %.2f:1 | %s\n", res.Ratio, res.Status)
		fmt.Fprintf(&b, "  Criterion: %s\n", res.Criterion)
		if res.Suggestion != "" {
			fmt.Fprintf(&b, "  Suggested fix: %s\n", res.Suggestion)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, singleRule)
	fmt.Fprintf(&b, "Contrast Score: %d/%d pairs pass (%d%%)\n\n", r.Passing, r.Total(), r.Score)

	fmt.Fprintln(&b, "ADDITIONAL CHECKS")
	fmt.Fprintln(&b, singleRule)
	for _, a := range r.Additional {
		mark := "✗"
		if a.Pass {
			mark = "✓"
		}
		fmt.Fprintf(&b, "%s %s (current: %s)\n", mark, a.Label, a.Current)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, singleRule)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, reportNote)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write audit report: %w", err)
	}
	return nil
}
