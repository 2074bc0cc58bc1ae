package generators

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIntBounds(t *testing.T) {
	g := Generator{Kind: RandomInt, Min: 5, Max: 5}
	v, applied, err := g.Generate(Consumer, nil)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 5, v)
}

func TestRandomDecimalDigits(t *testing.T) {
	g := Generator{Kind: RandomDecimal, Digits: 4}
	v, applied, err := g.Generate(Consumer, nil)
	require.NoError(t, err)
	assert.True(t, applied)
	s, ok := v.(string)
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^\d\.\d{4}$`), s)
}

func TestRandomHexadecimalDigits(t *testing.T) {
	g := Generator{Kind: RandomHexadecimal, Digits: 6}
	v, _, err := g.Generate(Consumer, nil)
	require.NoError(t, err)
	s := v.(string)
	assert.Len(t, s, 6)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{6}$`), s)
}

func TestRandomStringLength(t *testing.T) {
	g := Generator{Kind: RandomString, Digits: 10}
	v, _, err := g.Generate(Consumer, nil)
	require.NoError(t, err)
	assert.Len(t, v.(string), 10)
}

func TestUuidFormats(t *testing.T) {
	simple := Generator{Kind: Uuid, UUIDFormat: UUIDSimple}
	v, _, err := simple.Generate(Consumer, nil)
	require.NoError(t, err)
	assert.Len(t, v.(string), 32)

	urn := Generator{Kind: Uuid, UUIDFormat: UUIDURN}
	v, _, err = urn.Generate(Consumer, nil)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^urn:uuid:`), v.(string))

	upper := Generator{Kind: Uuid, UUIDFormat: UUIDUpperCaseHyphenated}
	v, _, err = upper.Generate(Consumer, nil)
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(v.(string)), v.(string))
}

func TestRandomBooleanApplies(t *testing.T) {
	g := Generator{Kind: RandomBoolean}
	v, applied, err := g.Generate(Provider, nil)
	require.NoError(t, err)
	assert.True(t, applied)
	_, ok := v.(bool)
	assert.True(t, ok)
}

func TestRegexGeneratorProducesMatchingString(t *testing.T) {
	g := Generator{Kind: Regex, Pattern: `[A-Z]{3}-\d{2,4}`}
	v, applied, err := g.Generate(Consumer, nil)
	require.NoError(t, err)
	assert.True(t, applied)
	re := regexp.MustCompile(`^[A-Z]{3}-\d{2,4}$`)
	assert.Regexp(t, re, v.(string))
}

func TestProviderStateGeneratorOnlyAppliesToProvider(t *testing.T) {
	g := Generator{Kind: ProviderStateGenerator, PSExpression: "$id"}
	_, applied, err := g.Generate(Consumer, Context{"id": "42"})
	require.NoError(t, err)
	assert.False(t, applied)

	v, applied, err := g.Generate(Provider, Context{"id": "42"})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "42", v)
}

func TestMockServerURLOnlyAppliesToConsumer(t *testing.T) {
	g := Generator{Kind: MockServerURL, Example: "http://localhost:8080/path", URLRegex: `(http://localhost:\d+)`}
	_, applied, err := g.Generate(Provider, nil)
	require.NoError(t, err)
	assert.False(t, applied)

	v, applied, err := g.Generate(Consumer, Context{"mockServerURL": "http://example.test"})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "http://example.test/path", v)
}

func TestDateGeneratorUsesContextNow(t *testing.T) {
	base := time.Date(2020, 6, 15, 10, 0, 0, 0, time.UTC)
	g := Generator{Kind: Date, Format: "yyyy-MM-dd", Expression: "+1 day"}
	v, applied, err := g.Generate(Consumer, Context{"now": base})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "2020-06-16", v)
}

func TestArrayContainsGeneratorIsStructuralOnly(t *testing.T) {
	g := Generator{Kind: ArrayContainsGenerator}
	_, applied, err := g.Generate(Consumer, nil)
	assert.False(t, applied)
	assert.Error(t, err)
}
