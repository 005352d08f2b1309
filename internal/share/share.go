// Package share packs a token set into a short string that can travel in a
// URL query parameter.
//
// The string is base64 encoded JSON holding only the roles that differ from
// the defaults. Image roles are never shared.
package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmylchreest/boostkit/internal/tokens"
)

// QueryParam is the query parameter URL writes the encoded set to.
const QueryParam = "config"

// ErrMalformed is returned when a share string cannot be decoded.
var ErrMalformed = errors.New("malformed share string")

// Encode returns the share string for t.
func Encode(t tokens.Tokens) string {
	diff := tokens.Diff(tokens.Defaults(), t).OmitKind(tokens.KindBlob)

	// Map keys marshal in sorted order, so equal sets encode identically.
	data, err := json.Marshal(diff)
	if err != nil {
		// Partial values are strings, numbers, bools and text marshalers.
		panic(fmt.Sprintf("share: failed to marshal token diff: %v", err))
	}
	return base64.StdEncoding.EncodeToString(data)
}

// Decode parses a share string into a partial token set. Values are not
// validated; apply the result with tokens.Merge or propagate.Import.
func Decode(s string) (tokens.Partial, error) {
	data, err := decodeBase64(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrMalformed)
	}

	p := make(tokens.Partial, len(raw))
	for k, v := range raw {
		p[tokens.Role(k)] = v
	}
	return p.OmitKind(tokens.KindBlob), nil
}

// decodeBase64 accepts standard and URL-safe alphabets, padded or not.
func decodeBase64(s string) ([]byte, error) {
	var lastErr error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	} {
		data, err := enc.DecodeString(s)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// URL returns base with the share string for t in the config parameter.
// Existing query parameters are kept.
func URL(base string, t tokens.Tokens) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse share base URL: %w", err)
	}
	q := u.Query()
	q.Set(QueryParam, Encode(t))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FromURL decodes the config parameter of a share URL. Input that is not a
// URL with the parameter is tried as a bare share string.
func FromURL(raw string) (tokens.Partial, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err == nil && u.RawQuery != "" {
		if v := u.Query().Get(QueryParam); v != "" {
			return Decode(v)
		}
		return nil, fmt.Errorf("%w: no %s parameter in URL", ErrMalformed, QueryParam)
	}
	return Decode(raw)
}
