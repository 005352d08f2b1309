package scss

import (
	"bufio"
	"regexp"
	"strings"
)

// BundleTitle is the header line written by Bundle.
const BundleTitle = "=== Moodle Theme Configuration ==="

// Bundle section names.
const (
	sectionBrand     = "Brand Colour"
	sectionVariables = "Raw Initial SCSS"
	sectionRules     = "Raw SCSS"
)

var (
	bundleHeader  = regexp.MustCompile(`===.*Configuration\s*===`)
	sectionMarker = regexp.MustCompile(`^\s*---\s*(.+?)\s*---\s*$`)
)

// Bundle writes o as a single text file with one section per Boost setting.
func Bundle(o Output) string {
	var b strings.Builder
	b.WriteString(BundleTitle + "\n\n")
	b.WriteString("--- " + sectionBrand + " ---\n")
	b.WriteString(o.BrandColour + "\n\n")
	b.WriteString("--- " + sectionVariables + " ---\n")
	b.WriteString(o.Variables + "\n\n")
	b.WriteString("--- " + sectionRules + " ---\n")
	b.WriteString(o.Rules + "\n")
	return b.String()
}

// SplitBundle recovers the sections written by Bundle. It reports false when
// text has no "=== ... Configuration ===" header. Missing sections are empty.
func SplitBundle(text string) (Output, bool) {
	if !bundleHeader.MatchString(text) {
		return Output{}, false
	}

	sections := make(map[string]*strings.Builder)
	var current *strings.Builder

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for scanner.Scan() {
		line := scanner.Text()
		if m := sectionMarker.FindStringSubmatch(line); m != nil {
			name := strings.ToLower(m[1])
			switch name {
			case strings.ToLower(sectionBrand), strings.ToLower(sectionVariables), strings.ToLower(sectionRules):
				current = &strings.Builder{}
				sections[name] = current
				continue
			}
		}
		if current != nil {
			current.WriteString(line)
			current.WriteByte('\n')
		}
	}

	get := func(name string) string {
		if b, ok := sections[strings.ToLower(name)]; ok {
			return strings.TrimSpace(b.String())
		}
		return ""
	}

	out := Output{
		Variables: get(sectionVariables),
		Rules:     get(sectionRules),
	}
	if hex := hexPattern.FindString(get(sectionBrand)); hex != "" {
		out.BrandColour = hex
	}
	return out, true
}
