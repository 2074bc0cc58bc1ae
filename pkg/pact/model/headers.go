package model

import (
	"encoding/json"
	"sort"
	"strings"
)

// singleValueHeaders is the closed set of headers whose value is never
// comma-split into multiple values, even though the raw header line may
// itself contain commas (date formats, user-agent strings).
//
// Grounded on original_source/rust/pact_models/src/headers.rs's
// SINGLE_VALUE_HEADERS table, carried verbatim per spec.md §5's
// supplemented-features note.
var singleValueHeaders = map[string]bool{
	"date":                 true,
	"accept-datetime":      true,
	"if-modified-since":    true,
	"if-unmodified-since":  true,
	"expires":              true,
	"retry-after":          true,
	"last-modified":        true,
	"set-cookie":           true,
	"user-agent":           true,
}

// parameterisedHeaders carries `;k=v` parameters alongside a main token,
// per original_source/headers.rs's PARAMETERISED_HEADERS.
var parameterisedHeaders = map[string]bool{
	"accept":       true,
	"content-type": true,
}

// ParseHeaderValue splits a raw header line into its logical values: a
// single element for names in singleValueHeaders, else a comma-split,
// trimmed list.
func ParseHeaderValue(name, value string) []string {
	if singleValueHeaders[strings.ToLower(name)] {
		return []string{strings.TrimSpace(value)}
	}
	parts := strings.Split(value, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// IsParameterised reports whether name carries `;k=v` parameters that
// should be compared separately from its main token (spec.md §4.7).
func IsParameterised(name string) bool {
	return parameterisedHeaders[strings.ToLower(name)]
}

// ParsedHeaderValue is one parameterised header element split into its main
// token and parameter set.
type ParsedHeaderValue struct {
	Value  string
	Params map[string]string
}

// ParseParameters splits a single header element ("text/html;charset=utf-8")
// into its main value and `;k=v` parameters. Parameter names are
// lower-cased; values are not.
func ParseParameters(element string) ParsedHeaderValue {
	parts := strings.Split(element, ";")
	out := ParsedHeaderValue{Value: strings.TrimSpace(parts[0])}
	for _, p := range parts[1:] {
		kv := strings.SplitN(strings.TrimSpace(p), "=", 2)
		if len(kv) != 2 {
			continue
		}
		if out.Params == nil {
			out.Params = map[string]string{}
		}
		out.Params[strings.ToLower(strings.TrimSpace(kv[0]))] = strings.TrimSpace(kv[1])
	}
	return out
}

// Headers is a case-insensitive mapping from header name to ordered value
// list. The name under which a header was first set is preserved for
// rendering/JSON output.
type Headers struct {
	names  map[string]string   // lower(name) -> original-case name
	values map[string][]string // lower(name) -> values
}

// NewHeaders returns an empty Headers map.
func NewHeaders() *Headers {
	return &Headers{names: map[string]string{}, values: map[string][]string{}}
}

// Set replaces name's value list.
func (h *Headers) Set(name string, values []string) {
	key := strings.ToLower(name)
	if _, ok := h.names[key]; !ok {
		h.names[key] = name
	}
	h.values[key] = values
}

// Add appends a raw header line, splitting it per ParseHeaderValue.
func (h *Headers) Add(name, rawValue string) {
	key := strings.ToLower(name)
	if _, ok := h.names[key]; !ok {
		h.names[key] = name
	}
	h.values[key] = append(h.values[key], ParseHeaderValue(name, rawValue)...)
}

// Get returns name's values (nil, false if absent), looked up
// case-insensitively.
func (h *Headers) Get(name string) ([]string, bool) {
	v, ok := h.values[strings.ToLower(name)]
	return v, ok
}

// Names returns every header name (original casing), sorted by lower-cased name.
func (h *Headers) Names() []string {
	keys := make([]string, 0, len(h.names))
	for k := range h.names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = h.names[k]
	}
	return out
}

// Len reports the number of distinct header names.
func (h *Headers) Len() int { return len(h.values) }

// MarshalJSON renders headers as `{"Name": "v1, v2"}`, the flat pact-file
// wire shape (single-value headers with multiple raw commas are rendered
// back as one string; multi-value headers are comma-joined).
func (h *Headers) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(h.values))
	for key, name := range h.names {
		out[name] = strings.Join(h.values[key], ", ")
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the flat `{"Name": "v1, v2"}` wire shape.
func (h *Headers) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	h.names = map[string]string{}
	h.values = map[string][]string{}
	for name, value := range raw {
		h.Add(name, value)
	}
	return nil
}
