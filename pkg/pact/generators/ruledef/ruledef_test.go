package ruledef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pactcore/pact/pkg/pact/matchers"
)

func TestParseEqualTo(t *testing.T) {
	def, err := Parse("matching(equalTo,'foo')")
	require.NoError(t, err)
	require.Len(t, def.Rules.Rules, 1)
	assert.Equal(t, matchers.Equality, def.Rules.Rules[0].Kind)
	assert.Equal(t, "foo", def.Value)
	assert.True(t, def.HasValue)
	assert.Equal(t, String, def.ValueType)
}

func TestParseType(t *testing.T) {
	def, err := Parse("matching(type,'foo')")
	require.NoError(t, err)
	assert.Equal(t, matchers.Type, def.Rules.Rules[0].Kind)
	assert.Equal(t, "foo", def.Value)
}

func TestParseNumberVariants(t *testing.T) {
	def, err := Parse("matching(integer,42)")
	require.NoError(t, err)
	assert.Equal(t, matchers.Integer, def.Rules.Rules[0].Kind)
	assert.Equal(t, Integer, def.ValueType)
	assert.Equal(t, float64(42), def.Value)

	def, err = Parse("matching(decimal,12.5)")
	require.NoError(t, err)
	assert.Equal(t, matchers.Decimal, def.Rules.Rules[0].Kind)
	assert.Equal(t, Decimal, def.ValueType)
}

func TestParseDateTimeWithFormat(t *testing.T) {
	def, err := Parse("matching(datetime,'yyyy-MM-dd','2020-01-01')")
	require.NoError(t, err)
	require.Len(t, def.Rules.Rules, 1)
	assert.Equal(t, matchers.Timestamp, def.Rules.Rules[0].Kind)
	assert.Equal(t, "yyyy-MM-dd", def.Rules.Rules[0].Format)
	assert.Equal(t, "2020-01-01", def.Value)
}

func TestParseRegex(t *testing.T) {
	def, err := Parse("matching(regex,'[A-Z]+','AB')")
	require.NoError(t, err)
	assert.Equal(t, matchers.Regex, def.Rules.Rules[0].Kind)
	assert.Equal(t, "[A-Z]+", def.Rules.Rules[0].Pattern)
	assert.Equal(t, "AB", def.Value)
}

func TestParseInclude(t *testing.T) {
	def, err := Parse("matching(include,'needle')")
	require.NoError(t, err)
	assert.Equal(t, matchers.Include, def.Rules.Rules[0].Kind)
	assert.Equal(t, "needle", def.Rules.Rules[0].Substring)
}

func TestParseBoolean(t *testing.T) {
	def, err := Parse("matching(boolean,true)")
	require.NoError(t, err)
	assert.Equal(t, matchers.Boolean, def.Rules.Rules[0].Kind)
	assert.Equal(t, true, def.Value)
}

func TestParseSemver(t *testing.T) {
	def, err := Parse("matching(semver,'1.2.3')")
	require.NoError(t, err)
	assert.Equal(t, matchers.Semver, def.Rules.Rules[0].Kind)
}

func TestParseContentType(t *testing.T) {
	def, err := Parse("matching(contentType,'application/json','{}')")
	require.NoError(t, err)
	assert.Equal(t, matchers.ContentType, def.Rules.Rules[0].Kind)
	assert.Equal(t, "application/json", def.Rules.Rules[0].ContentType)
}

func TestParseNotEmpty(t *testing.T) {
	def, err := Parse("notEmpty('foo')")
	require.NoError(t, err)
	assert.Equal(t, matchers.NotEmpty, def.Rules.Rules[0].Kind)
	assert.Equal(t, "foo", def.Value)
}

func TestParseEachKeyAndEachValue(t *testing.T) {
	def, err := Parse("eachKey(matching(regex,'[A-Z]+','AB'))")
	require.NoError(t, err)
	require.Len(t, def.Rules.Rules, 1)
	assert.Equal(t, matchers.EachKey, def.Rules.Rules[0].Kind)
	require.NotNil(t, def.Rules.Rules[0].Each)
	assert.Equal(t, matchers.Regex, def.Rules.Rules[0].Each.Rules[0].Kind)

	def, err = Parse("eachValue(matching(type,'x'))")
	require.NoError(t, err)
	assert.Equal(t, matchers.EachValue, def.Rules.Rules[0].Kind)
}

func TestParseAtLeastAtMost(t *testing.T) {
	def, err := Parse("atLeast(2)")
	require.NoError(t, err)
	require.NotNil(t, def.Rules.Rules[0].Min)
	assert.Equal(t, 2, *def.Rules.Rules[0].Min)

	def, err = Parse("atMost(5)")
	require.NoError(t, err)
	require.NotNil(t, def.Rules.Rules[0].Max)
	assert.Equal(t, 5, *def.Rules.Rules[0].Max)
}

func TestParseFromProviderState(t *testing.T) {
	def, err := Parse("matching(integer,fromProviderState('${id}','1'))")
	require.NoError(t, err)
	require.NotNil(t, def.Generator)
	assert.Equal(t, "${id}", def.Generator.PSExpression)
}

func TestParseCommaMergeAppendsRules(t *testing.T) {
	def, err := Parse("matching(type,'foo'),atLeast(1)")
	require.NoError(t, err)
	require.Len(t, def.Rules.Rules, 2)
	assert.Equal(t, matchers.Type, def.Rules.Rules[0].Kind)
	assert.Equal(t, matchers.MinType, def.Rules.Rules[1].Kind)
	assert.Equal(t, "foo", def.Value)
}

func TestParseCommaMergeConflictingValueWarns(t *testing.T) {
	def, err := Parse("matching(equalTo,'foo'),matching(equalTo,'bar')")
	require.NoError(t, err)
	assert.Equal(t, "foo", def.Value)
	require.Len(t, def.Warnings, 1)
}

func TestParseEscapes(t *testing.T) {
	def, err := Parse(`matching(equalTo,'a\'b\nc')`)
	require.NoError(t, err)
	assert.Equal(t, "a'b\nc", def.Value)
}

func TestParseUnicodeEscape(t *testing.T) {
	def, err := Parse(`matching(equalTo,'A\u{1F600}')`)
	require.NoError(t, err)
	assert.Equal(t, "A😀", def.Value)
}

func TestParseUnknownKeywordReturnsDefinitionError(t *testing.T) {
	_, err := Parse("bogus(1)")
	require.Error(t, err)
	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
}

func TestParseUnterminatedString(t *testing.T) {
	_, err := Parse("matching(equalTo,'unterminated)")
	require.Error(t, err)
}
