package model

import (
	"encoding/json"
	"net/url"
	"sort"
	"strings"
)

// Query is a mapping from parameter name to an ordered list of values,
// where a nil element represents a bare key with no `=` (distinct from an
// explicit empty string). Order within a key is significant; order across
// keys is not (spec.md §3).
//
// Grounded on
// original_source/rust/pact_models/src/query_strings.rs's
// HashMap<String, Vec<Option<String>>> representation and its
// percent-decoding rule (`+` decodes to a space, `%XX` decodes as hex,
// malformed escapes pass through unchanged).
type Query map[string][]*string

// ParseQueryString parses a raw query string (without the leading `?`)
// into a Query. An empty input returns a nil Query, mirroring
// parse_query_string's `Option::None` for "".
func ParseQueryString(raw string) Query {
	if raw == "" {
		return nil
	}
	out := Query{}
	for _, kv := range strings.Split(raw, "&") {
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		name := decodeQueryComponent(parts[0])
		var value *string
		if len(parts) > 1 {
			v := decodeQueryComponent(parts[1])
			value = &v
		}
		out[name] = append(out[name], value)
	}
	return out
}

// decodeQueryComponent applies the `+`-as-space, percent-decode rule.
// Malformed escapes are left as-is rather than rejecting the whole string,
// matching the original's fallback-to-raw-bytes behaviour.
func decodeQueryComponent(s string) string {
	replaced := strings.ReplaceAll(s, "+", " ")
	if decoded, err := url.QueryUnescape(replaced); err == nil {
		return decoded
	}
	return replaced
}

// String renders q back into a `k=v&k2=v2` query string, sorted by key
// (across keys only — values within a key keep their original order).
func (q Query) String() string {
	names := make([]string, 0, len(q))
	for name := range q {
		names = append(names, name)
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		for _, v := range q[name] {
			if v == nil {
				parts = append(parts, name)
			} else {
				parts = append(parts, name+"="+encodeQueryComponent(*v))
			}
		}
	}
	return strings.Join(parts, "&")
}

func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%20", "+")
}

// MarshalJSON renders the V3/V4 object-of-arrays shape:
// `{"name": ["v1", null]}`.
func (q Query) MarshalJSON() ([]byte, error) {
	out := make(map[string][]*string, len(q))
	for k, v := range q {
		out[k] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts either the V3/V4 object-of-arrays shape or a plain
// V1/V2 query string, per
// original_source/rust/pact_models/src/query_strings.rs's
// query_from_json/v3_query_from_json dual handling.
func (q *Query) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*q = ParseQueryString(asString)
		return nil
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(data, &asObject); err != nil {
		return err
	}
	out := Query{}
	for name, raw := range asObject {
		var asStr string
		if err := json.Unmarshal(raw, &asStr); err == nil {
			v := asStr
			out[name] = []*string{&v}
			continue
		}
		var asArray []*string
		if err := json.Unmarshal(raw, &asArray); err == nil {
			out[name] = asArray
			continue
		}
	}
	*q = out
	return nil
}
