package scss

import (
	"slices"
	"strings"
)

// declaration is one "property: value" pair. Property is lower case.
type declaration struct {
	property string
	value    string
}

// rule is a style rule with its selectors resolved against enclosing rules.
type rule struct {
	selectors []string
	decls     []declaration
}

// key returns the rule's selector set in canonical form.
func (r *rule) key() string {
	return selectorKey(r.selectors)
}

// value returns the first declaration of property.
func (r *rule) value(property string) (string, bool) {
	for _, d := range r.decls {
		if d.property == property {
			return d.value, true
		}
	}
	return "", false
}

// stylesheet is a flat list of rules in document order. A nested rule follows
// the rule that encloses it.
type stylesheet []*rule

// lookup returns the first value of property among rules whose selector set
// equals selectors.
func (s stylesheet) lookup(selectors, property string) (string, bool) {
	want := selectorKey(splitSelectors(selectors))
	for _, r := range s {
		if r.key() != want {
			continue
		}
		if v, ok := r.value(property); ok {
			return v, true
		}
	}
	return "", false
}

type frame struct {
	rule *rule
	// selectors rules nested in this frame resolve against. For at-rules this
	// is the enclosing rule's list.
	selectors []string
}

// parse scans SCSS text into rules. It tracks brace depth outside strings and
// parentheses, so quoted braces or semicolons inside url(...) do not split
// blocks. Unbalanced input yields whatever rules were opened.
func parse(text string) stylesheet {
	text = stripComments(text)

	var (
		out   stylesheet
		stack []frame
		buf   strings.Builder
		quote byte
		paren int
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			buf.WriteByte(c)
			switch c {
			case '\\':
				if i+1 < len(text) {
					i++
					buf.WriteByte(text[i])
				}
			case quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '"', '\'':
			quote = c
			buf.WriteByte(c)
		case '(':
			paren++
			buf.WriteByte(c)
		case ')':
			if paren > 0 {
				paren--
			}
			buf.WriteByte(c)
		case '{':
			if paren > 0 {
				buf.WriteByte(c)
				continue
			}
			prelude := strings.TrimSpace(buf.String())
			buf.Reset()

			var parent []string
			if len(stack) > 0 {
				parent = stack[len(stack)-1].selectors
			}

			if strings.HasPrefix(prelude, "@") {
				stack = append(stack, frame{selectors: parent})
				continue
			}

			r := &rule{selectors: resolveSelectors(parent, splitSelectors(prelude))}
			out = append(out, r)
			stack = append(stack, frame{rule: r, selectors: r.selectors})
		case ';':
			if paren > 0 {
				buf.WriteByte(c)
				continue
			}
			addDeclaration(stack, buf.String())
			buf.Reset()
		case '}':
			if paren > 0 {
				buf.WriteByte(c)
				continue
			}
			addDeclaration(stack, buf.String())
			buf.Reset()
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			buf.WriteByte(c)
		}
	}
	addDeclaration(stack, buf.String())

	return out
}

// addDeclaration attaches "property: value" to the innermost open rule.
// Statements outside any rule, such as variable declarations, are dropped.
func addDeclaration(stack []frame, text string) {
	if len(stack) == 0 {
		return
	}
	top := stack[len(stack)-1].rule
	if top == nil {
		return
	}
	prop, val, ok := strings.Cut(text, ":")
	if !ok {
		return
	}
	prop = strings.ToLower(strings.TrimSpace(prop))
	val = strings.TrimSpace(val)
	if prop == "" || val == "" {
		return
	}
	top.decls = append(top.decls, declaration{property: prop, value: val})
}

// stripComments removes block comments and line comments. A "//" inside a
// string or inside parentheses, as in url(http://...), is kept.
func stripComments(text string) string {
	var (
		b     strings.Builder
		quote byte
		paren int
	)
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			b.WriteByte(c)
			if c == '\\' && i+1 < len(text) {
				i++
				b.WriteByte(text[i])
			} else if c == quote {
				quote = 0
			}
			continue
		}

		switch {
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				return b.String()
			}
			i += end + 3
		case c == '/' && i+1 < len(text) && text[i+1] == '/' && paren == 0:
			end := strings.IndexByte(text[i:], '\n')
			if end < 0 {
				return b.String()
			}
			i += end - 1
		case c == '"' || c == '\'':
			quote = c
			b.WriteByte(c)
		case c == '(':
			paren++
			b.WriteByte(c)
		case c == ')':
			if paren > 0 {
				paren--
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// splitSelectors splits a selector list on commas outside brackets, strings
// and parentheses, collapsing whitespace in each selector.
func splitSelectors(list string) []string {
	var (
		out   []string
		start int
		depth int
		quote byte
	)
	for i := 0; i < len(list); i++ {
		c := list[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = appendSelector(out, list[start:i])
				start = i + 1
			}
		}
	}
	return appendSelector(out, list[start:])
}

func appendSelector(out []string, sel string) []string {
	sel = strings.Join(strings.Fields(sel), " ")
	if sel == "" {
		return out
	}
	return append(out, sel)
}

// resolveSelectors combines nested selectors with their parents the way SCSS
// does: "&" is replaced by the parent, otherwise the parent is a descendant
// prefix.
func resolveSelectors(parents, children []string) []string {
	if len(parents) == 0 {
		return children
	}
	out := make([]string, 0, len(parents)*len(children))
	for _, p := range parents {
		for _, c := range children {
			if strings.Contains(c, "&") {
				out = append(out, strings.ReplaceAll(c, "&", p))
			} else {
				out = append(out, p+" "+c)
			}
		}
	}
	return out
}

// selectorKey returns an order-independent key for a selector list.
func selectorKey(selectors []string) string {
	sorted := slices.Clone(selectors)
	slices.Sort(sorted)
	return strings.Join(sorted, ",")
}
