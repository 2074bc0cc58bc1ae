package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestEqualityNumericCoercion(t *testing.T) {
	r := Rule{Kind: Equality}
	assert.NoError(t, r.Match(1.0, 1, false))
	assert.NoError(t, r.Match(1, 1.0, false))
	assert.Error(t, r.Match(1, 2, false))
}

func TestEqualityStringCaseSensitive(t *testing.T) {
	r := Rule{Kind: Equality}
	assert.NoError(t, r.Match("Foo", "Foo", false))
	assert.Error(t, r.Match("Foo", "foo", false))
}

func TestTypeMatchesSameKind(t *testing.T) {
	r := Rule{Kind: Type}
	assert.NoError(t, r.Match("x", "y", false))
	assert.NoError(t, r.Match(1.0, 2.0, false))
	assert.Error(t, r.Match("x", 1.0, false))
}

func TestMinMaxType(t *testing.T) {
	min := Rule{Kind: MinType, Min: intPtr(2)}
	assert.NoError(t, min.Match(nil, []any{1, 2, 3}, false))
	assert.Error(t, min.Match(nil, []any{1}, false))

	max := Rule{Kind: MaxType, Max: intPtr(2)}
	assert.NoError(t, max.Match(nil, []any{1, 2}, false))
	assert.Error(t, max.Match(nil, []any{1, 2, 3}, false))

	minmax := Rule{Kind: MinMaxType, Min: intPtr(1), Max: intPtr(2)}
	assert.NoError(t, minmax.Match(nil, []any{1}, false))
	assert.Error(t, minmax.Match(nil, []any{}, false))
	assert.Error(t, minmax.Match(nil, []any{1, 2, 3}, false))
}

func TestRegexFullMatch(t *testing.T) {
	r := Rule{Kind: Regex, Pattern: `\d{3}-\d{4}`}
	assert.NoError(t, r.Match(nil, "123-4567", false))
	assert.Error(t, r.Match(nil, "x123-4567", false))
}

func TestNumberIntegerDecimal(t *testing.T) {
	num := Rule{Kind: Number}
	assert.NoError(t, num.Match(nil, 3.14, false))
	assert.Error(t, num.Match(nil, "abc", false))

	integer := Rule{Kind: Integer}
	assert.NoError(t, integer.Match(nil, 4.0, false))
	assert.Error(t, integer.Match(nil, 4.5, false))

	dec := Rule{Kind: Decimal}
	assert.NoError(t, dec.Match(nil, "4.50", false))
	assert.Error(t, dec.Match(nil, "4", false))
}

func TestBooleanAndNull(t *testing.T) {
	b := Rule{Kind: Boolean}
	assert.NoError(t, b.Match(nil, true, false))
	assert.NoError(t, b.Match(nil, "true", false))
	assert.Error(t, b.Match(nil, "yes", false))

	n := Rule{Kind: Null}
	assert.NoError(t, n.Match(nil, nil, false))
	assert.Error(t, n.Match(nil, false, false))
}

func TestDateTimeFormats(t *testing.T) {
	d := Rule{Kind: Date, Format: "yyyy-MM-dd"}
	assert.NoError(t, d.Match(nil, "2023-11-05", false))
	assert.Error(t, d.Match(nil, "2023/11/05", false))

	ts := Rule{Kind: Timestamp, Format: "yyyy-MM-dd'T'HH:mm:ss.SSSZZZZZ"}
	assert.NoError(t, ts.Match(nil, "2023-11-05T10:15:30.000Z", false))
}

func TestContentTypeDetection(t *testing.T) {
	r := Rule{Kind: ContentType, ContentType: "text/plain"}
	require.NoError(t, r.Match(nil, []byte("hello world"), false))

	r2 := Rule{Kind: ContentType, ContentType: "image/png"}
	assert.Error(t, r2.Match(nil, []byte("hello world"), false))
}

func TestSemver(t *testing.T) {
	r := Rule{Kind: Semver}
	assert.NoError(t, r.Match(nil, "1.2.3-alpha.1+build.5", false))
	assert.Error(t, r.Match(nil, "1.2", false))
}

func TestStatusCodeClasses(t *testing.T) {
	ok := Rule{Kind: StatusCode, StatusClass: StatusSuccess}
	assert.NoError(t, ok.Match(nil, 200.0, false))
	assert.Error(t, ok.Match(nil, 404.0, false))

	explicit := Rule{Kind: StatusCode, StatusClass: StatusExplicit, StatusCodes: []int{201, 202}}
	assert.NoError(t, explicit.Match(nil, 202.0, false))
	assert.Error(t, explicit.Match(nil, 200.0, false))
}

func TestNotEmpty(t *testing.T) {
	r := Rule{Kind: NotEmpty}
	assert.Error(t, r.Match(nil, "", false))
	assert.Error(t, r.Match(nil, []any{}, false))
	assert.NoError(t, r.Match(nil, "x", false))
	assert.NoError(t, r.Match(nil, []any{1}, false))
}

func TestRuleListAndLogic(t *testing.T) {
	rl := RuleList{
		Logic: And,
		Rules: []Rule{
			{Kind: Type},
			{Kind: Regex, Pattern: `[a-z]+`},
		},
	}
	assert.NoError(t, rl.Apply("x", "abc", false))
	assert.Error(t, rl.Apply("x", "ABC", false))
}

func TestRuleListOrLogic(t *testing.T) {
	rl := RuleList{
		Logic: Or,
		Rules: []Rule{
			{Kind: Regex, Pattern: `\d+`},
			{Kind: Regex, Pattern: `[a-z]+`},
		},
	}
	assert.NoError(t, rl.Apply(nil, "abc", false))
	assert.NoError(t, rl.Apply(nil, "123", false))
	assert.Error(t, rl.Apply(nil, "!!!", false))
}

func TestIsStructural(t *testing.T) {
	assert.True(t, Type.IsStructural())
	assert.True(t, ArrayContains.IsStructural())
	assert.False(t, Regex.IsStructural())
	assert.False(t, Equality.IsStructural())
}

func TestValuesChecksEachChildByType(t *testing.T) {
	r := Rule{Kind: Values}
	assert.NoError(t, r.Match(
		map[string]any{"a": 1.0, "b": "x"},
		map[string]any{"a": 9.0, "b": "y"},
		false,
	))
	assert.Error(t, r.Match(
		map[string]any{"a": 1.0},
		map[string]any{"a": "not a number"},
		false,
	))
	assert.Error(t, r.Match("not an object", map[string]any{}, false))
}

func TestEachKeyAppliesNestedRuleToEveryKey(t *testing.T) {
	r := Rule{
		Kind: EachKey,
		Each: &RuleList{Rules: []Rule{{Kind: Regex, Pattern: `^[a-z]+$`}}, Logic: And},
	}
	assert.NoError(t, r.Match(nil, map[string]any{"abc": 1, "def": 2}, false))
	assert.Error(t, r.Match(nil, map[string]any{"ABC": 1}, false))
	assert.Error(t, r.Match(nil, "not an object", false))
}

func TestEachValueAppliesNestedRuleToEveryValue(t *testing.T) {
	r := Rule{
		Kind: EachValue,
		Each: &RuleList{Rules: []Rule{{Kind: Number}}, Logic: And},
	}
	assert.NoError(t, r.Match(nil, map[string]any{"a": 1.0, "b": 2.0}, false))
	assert.Error(t, r.Match(nil, map[string]any{"a": "not a number"}, false))
}

func TestEachKeyWithNoNestedRuleOnlyChecksShape(t *testing.T) {
	r := Rule{Kind: EachKey}
	assert.NoError(t, r.Match(nil, map[string]any{"anything": 1}, false))
	assert.Error(t, r.Match(nil, "not an object", false))
}
