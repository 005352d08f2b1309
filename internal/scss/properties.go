package scss

import (
	"strings"

	"github.com/jmylchreest/boostkit/internal/tokens"
)

// CustomProperties renders every non-blob role as a CSS custom property in
// a :root block, in schema order. The logo accent is written resolved against
// the navbar background. Roles holding an empty value are skipped.
func CustomProperties(t tokens.Tokens) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, f := range tokens.Schema() {
		var value string
		switch f.Kind {
		case tokens.KindBlob:
			continue
		case tokens.KindAccent:
			value = t.Colour(f.Role, t.NavbarBg)
		default:
			value = formatValue(t, f.Role)
		}
		if value == "" || value == string(f.Unit) {
			continue
		}
		b.WriteString("  " + tokens.CSSVar(f.Role) + ": " + value + ";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
