package tokens

import (
	"errors"
	"fmt"
	"sort"
)

// Partial holds values for a subset of roles, such as the output of the
// SCSS decoder or a preset's overrides.
type Partial map[Role]any

// Roles returns the roles present in p in schema order.
func (p Partial) Roles() []Role {
	out := make([]Role, 0, len(p))
	for _, f := range schema {
		if _, ok := p[f.Role]; ok {
			out = append(out, f.Role)
		}
	}
	return out
}

// Without returns a copy of p with the given roles removed.
func (p Partial) Without(roles ...Role) Partial {
	skip := make(map[Role]bool, len(roles))
	for _, r := range roles {
		skip[r] = true
	}
	out := make(Partial, len(p))
	for r, v := range p {
		if !skip[r] {
			out[r] = v
		}
	}
	return out
}

// OmitKind returns a copy of p without roles of kind k.
func (p Partial) OmitKind(k Kind) Partial {
	out := make(Partial, len(p))
	for r, v := range p {
		if f, ok := byRole[r]; ok && f.Kind == k {
			continue
		}
		out[r] = v
	}
	return out
}

// Merge returns base with every valid entry of p applied. Invalid entries
// are skipped and reported together in the returned error; the result is
// always a complete token set.
func Merge(base Tokens, p Partial) (Tokens, error) {
	var errs []error
	for _, role := range p.keys() {
		if err := base.Set(role, p[role]); err != nil {
			errs = append(errs, err)
		}
	}
	return base, errors.Join(errs...)
}

// keys returns schema roles first, in order, then unknown roles so that Merge
// can report them.
func (p Partial) keys() []Role {
	known := p.Roles()
	if len(known) == len(p) {
		return known
	}
	var unknown []Role
	for r := range p {
		if _, ok := byRole[r]; !ok {
			unknown = append(unknown, r)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return append(known, unknown...)
}

// Diff returns the roles whose value in t differs from base.
func Diff(base, t Tokens) Partial {
	out := make(Partial)
	for _, f := range schema {
		a, _ := base.Get(f.Role)
		b, _ := t.Get(f.Role)
		if a != b {
			out[f.Role] = b
		}
	}
	return out
}

// Differs reports whether any of roles holds a different value in t and d.
func (t Tokens) Differs(d Tokens, roles ...Role) bool {
	for _, r := range roles {
		a, ok := t.Get(r)
		if !ok {
			panic(fmt.Sprintf("tokens: unknown role %q", r))
		}
		b, _ := d.Get(r)
		if a != b {
			return true
		}
	}
	return false
}
