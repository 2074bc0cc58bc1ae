package matchers

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/woodsbury/decimal128"
)

func jsonKindName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return "unknown"
	}
}

// JSONKind exposes jsonKindName's classification to callers outside this
// package (bodymatch's cascaded scalar comparison needs the same kind
// table when a Type rule relaxes a leaf from equality to type-only).
func JSONKind(v any) string {
	return jsonKindName(v)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func matchEquality(expected, actual any) error {
	ef, eok := asFloat(expected)
	af, aok := asFloat(actual)
	if eok && aok {
		if ef == af {
			return nil
		}
		return mismatch(Equality, "expected %v to equal %v", actual, expected)
	}
	if reflect.DeepEqual(expected, actual) {
		return nil
	}
	return mismatch(Equality, "expected %v (%s) to equal %v (%s)",
		actual, jsonKindName(actual), expected, jsonKindName(expected))
}

func matchType(expected, actual any) error {
	ek, ak := jsonKindName(expected), jsonKindName(actual)
	// Numbers and their string-encoded twin are not interchangeable under
	// Type: a declared number must stay a number, same for every other kind.
	if ek != ak {
		return mismatch(Type, "expected %s (%v) to be the same type as %s (%v)", ak, actual, ek, expected)
	}
	return nil
}

func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

func matchMinType(min *int, actual any) error {
	a, ok := asArray(actual)
	if !ok {
		return mismatch(MinType, "expected an array, got %s", jsonKindName(actual))
	}
	n := 0
	if min != nil {
		n = *min
	}
	if len(a) < n {
		return mismatch(MinType, "expected array with at least %d element(s), got %d", n, len(a))
	}
	return nil
}

func matchMaxType(max *int, actual any) error {
	a, ok := asArray(actual)
	if !ok {
		return mismatch(MaxType, "expected an array, got %s", jsonKindName(actual))
	}
	n := len(a)
	if max != nil && n > *max {
		return mismatch(MaxType, "expected array with at most %d element(s), got %d", *max, n)
	}
	return nil
}

func matchMinMaxType(min, max *int, actual any) error {
	if err := matchMinType(min, actual); err != nil {
		return err
	}
	return matchMaxType(max, actual)
}

func matchInclude(substring string, actual any) error {
	s := toDisplayString(actual)
	if strings.Contains(s, substring) {
		return nil
	}
	return mismatch(Include, "expected %q to include %q", s, substring)
}

func matchNumber(actual any) error {
	if _, ok := asFloat(actual); ok {
		return nil
	}
	if s, ok := actual.(string); ok {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return nil
		}
	}
	return mismatch(Number, "expected %v to be a number", actual)
}

func matchInteger(actual any) error {
	f, ok := asFloat(actual)
	if !ok {
		if s, isStr := actual.(string); isStr {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				f = float64(i)
				ok = true
			}
		}
	}
	if !ok {
		return mismatch(Integer, "expected %v to be an integer", actual)
	}
	if f != float64(int64(f)) {
		return mismatch(Integer, "expected %v to have no fractional part", actual)
	}
	return nil
}

var decimalFractionPattern = regexp.MustCompile(`^-?\d+\.\d+$`)

func matchDecimal(actual any) error {
	s := ""
	switch v := actual.(type) {
	case string:
		s = v
	case float64, float32:
		return mismatch(Decimal, "a bare JSON number has no guaranteed fractional representation; configure Decimal against a string-encoded value")
	default:
		return mismatch(Decimal, "expected %v to be a decimal", actual)
	}
	if !decimalFractionPattern.MatchString(s) {
		return mismatch(Decimal, "expected %q to have at least one significant fractional digit", s)
	}
	if _, err := decimal128.Parse(s); err != nil {
		return mismatch(Decimal, "expected %q to be a valid decimal: %v", s, err)
	}
	return nil
}

func matchBoolean(actual any) error {
	switch v := actual.(type) {
	case bool:
		return nil
	case string:
		if v == "true" || v == "false" {
			return nil
		}
	}
	return mismatch(Boolean, "expected %v to be a boolean", actual)
}

func matchNull(actual any) error {
	if actual == nil {
		return nil
	}
	return mismatch(Null, "expected %v to be null", actual)
}

// matchValues implements spec.md §4.2's Values rule: children of a map must
// each match by Type against the matching expected child. Keys present only
// on one side are left for the enclosing diff config to judge (the same way
// Type's own structural cascade defers missing/unexpected keys), so this
// only walks keys common to both sides.
func matchValues(expected, actual any) error {
	eo, eok := expected.(map[string]any)
	ao, aok := actual.(map[string]any)
	if !eok || !aok {
		return mismatch(Values, "expected both sides to be objects")
	}
	for key, ev := range eo {
		av, present := ao[key]
		if !present {
			continue
		}
		if err := matchType(ev, av); err != nil {
			return mismatch(Values, "key %q: %v", key, err)
		}
	}
	return nil
}

// matchEachShape implements EachKey/EachValue: first confirms actual is a
// map, then applies each's rule list to every key (or every value), with
// both "expected" and "actual" set to that same key/value — there is no
// paired expected counterpart to compare against, only a shape every
// key/value must independently satisfy. A nil each means the rule carried
// no nested definition, so only the map-shape check applies.
func matchEachShape(actual any, keys bool, each *RuleList) error {
	m, ok := actual.(map[string]any)
	if !ok {
		if keys {
			return mismatch(EachKey, "expected an object to apply a key rule to, got %s", jsonKindName(actual))
		}
		return mismatch(EachValue, "expected an object to apply a value rule to, got %s", jsonKindName(actual))
	}
	if each == nil {
		return nil
	}
	kind := EachValue
	if keys {
		kind = EachKey
	}
	for k, v := range m {
		target := any(v)
		if keys {
			target = k
		}
		if errs := each.ApplyAll(target, target, false); len(errs) > 0 {
			return mismatch(kind, "key %q: %v", k, errs[0])
		}
	}
	return nil
}

func matchArrayContainsShape(actual any) error {
	if _, ok := actual.([]any); ok {
		return nil
	}
	return mismatch(ArrayContains, "expected an array, got %s", jsonKindName(actual))
}

func matchNotEmpty(actual any) error {
	switch v := actual.(type) {
	case nil:
		return mismatch(NotEmpty, "expected a non-empty value, got null")
	case string:
		if len(v) == 0 {
			return mismatch(NotEmpty, "expected a non-empty string")
		}
	case []any:
		if len(v) == 0 {
			return mismatch(NotEmpty, "expected a non-empty array")
		}
	case map[string]any:
		if len(v) == 0 {
			return mismatch(NotEmpty, "expected a non-empty object")
		}
	case []byte:
		if len(v) == 0 {
			return mismatch(NotEmpty, "expected non-empty bytes")
		}
	}
	return nil
}

var regexCache sync.Map // pattern string -> *regexp.Regexp

func compileRegex(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	actual, _ := regexCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

func matchRegex(pattern string, actual any) error {
	re, err := compileRegex(anchorFull(pattern))
	if err != nil {
		return mismatch(Regex, "invalid regular expression %q: %v", pattern, err)
	}
	s := toDisplayString(actual)
	if re.MatchString(s) {
		return nil
	}
	return mismatch(Regex, "expected %q to match pattern %q", s, pattern)
}

// toDisplayString stringifies a scalar actual value the way rules that
// "fully match against the stringified actual" (Regex, Date, Time,
// Timestamp) expect.
func toDisplayString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		if f, ok := asFloat(v); ok {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return ""
	}
}

// anchorFull wraps pattern so that it must match the whole string, per
// spec.md §4.2: "actual stringifies and must fully match p".
func anchorFull(pattern string) string {
	if strings.HasPrefix(pattern, "^") && strings.HasSuffix(pattern, "$") {
		return pattern
	}
	return "^(?:" + pattern + ")$"
}
