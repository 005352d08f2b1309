package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// DecodeJSON reads a JSON object of role values onto Defaults. Roles missing
// from data keep their default. Keys that are not roles are returned sorted
// and otherwise ignored. Invalid values are skipped and reported in the
// error, as with Merge.
func DecodeJSON(data []byte) (Tokens, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return Defaults(), nil, fmt.Errorf("failed to parse token JSON: %w", err)
	}

	p := make(Partial, len(raw))
	var unknown []string
	for k, v := range raw {
		if _, ok := byRole[Role(k)]; !ok {
			unknown = append(unknown, k)
			continue
		}
		p[Role(k)] = v
	}
	sort.Strings(unknown)

	t, err := Merge(Defaults(), p)
	return t, unknown, err
}
