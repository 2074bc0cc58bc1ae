package bodymatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/matchers"
	"github.com/pactcore/pact/pkg/pact/model"
)

func newCtx(t *testing.T, diff matchcontext.DiffConfig, rules map[string]matchers.RuleList) *matchcontext.Context {
	t.Helper()
	cat := model.NewMatchingRuleCategory(model.CategoryBody)
	for path, rl := range rules {
		cat.AddRule(path, rl)
	}
	return matchcontext.New(cat, diff, nil)
}

func TestMatchJSONIdenticalObjectsMatch(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	result := MatchJSON(ctx, []byte(`{"id":1,"name":"Alice"}`), []byte(`{"id":1,"name":"Alice","extra":true}`))
	assert.True(t, result.OK())
}

func TestMatchJSONReportsMissingKey(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	result := MatchJSON(ctx, []byte(`{"id":1,"name":"Alice"}`), []byte(`{"id":1}`))
	require.False(t, result.OK())
	require.Equal(t, ResultBodyMismatches, result.Kind)
	assert.Contains(t, result.Mismatches, "$.name")
}

func TestMatchJSONNoUnexpectedKeysRejectsExtraField(t *testing.T) {
	ctx := newCtx(t, matchcontext.NoUnexpectedKeys, nil)
	result := MatchJSON(ctx, []byte(`{"id":1}`), []byte(`{"id":1,"extra":true}`))
	require.False(t, result.OK())
	assert.Contains(t, result.Mismatches, "$.extra")
}

func TestMatchJSONTypeRuleCascadesIntoArrayElements(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, map[string]matchers.RuleList{
		"$.items": {Rules: []matchers.Rule{{Kind: matchers.Type}}, Logic: matchers.And},
	})
	result := MatchJSON(ctx, []byte(`{"items":[1,2,3]}`), []byte(`{"items":[9,8]}`))
	assert.True(t, result.OK())
}

func TestMatchJSONArrayContainsMatchesEachVariantAnywhere(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, map[string]matchers.RuleList{
		"$.items": {Rules: []matchers.Rule{{
			Kind: matchers.ArrayContains,
			Variants: []matchers.ArrayContainsVariant{
				{TemplateIndex: 0, Rules: matchers.RuleMap{
					"$.status": {Rules: []matchers.Rule{{Kind: matchers.Equality}}, Logic: matchers.And},
				}},
				{TemplateIndex: 1, Rules: matchers.RuleMap{
					"$.id": {Rules: []matchers.Rule{{Kind: matchers.Type}}, Logic: matchers.And},
				}},
			},
		}}, Logic: matchers.And},
	})

	expected := `{"items":[{"status":"open","id":1},{"status":"closed","id":2}]}`
	// Actual order is reversed from expected and ids differ where a variant's
	// rules allow it, but each variant still finds a match somewhere in the array.
	actual := `{"items":[{"status":"closed","id":99},{"status":"open","id":1}]}`
	result := MatchJSON(ctx, []byte(expected), []byte(actual))
	assert.True(t, result.OK())
}

func TestMatchJSONArrayContainsReportsUnmatchedVariant(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, map[string]matchers.RuleList{
		"$.items": {Rules: []matchers.Rule{{
			Kind: matchers.ArrayContains,
			Variants: []matchers.ArrayContainsVariant{
				{TemplateIndex: 0, Rules: matchers.RuleMap{
					"$.status": {Rules: []matchers.Rule{{Kind: matchers.Equality}}, Logic: matchers.And},
				}},
			},
		}}, Logic: matchers.And},
	})

	expected := `{"items":[{"status":"open","id":1}]}`
	actual := `{"items":[{"status":"closed","id":5}]}`
	result := MatchJSON(ctx, []byte(expected), []byte(actual))
	require.False(t, result.OK())
	assert.Contains(t, result.Mismatches, "$.items")
}

func TestMatchJSONRegexRuleOnScalar(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, map[string]matchers.RuleList{
		"$.id": {Rules: []matchers.Rule{{Kind: matchers.Regex, Pattern: `^\d+$`}}, Logic: matchers.And},
	})
	ok := MatchJSON(ctx, []byte(`{"id":"123"}`), []byte(`{"id":"999"}`))
	assert.True(t, ok.OK())

	bad := MatchJSON(ctx, []byte(`{"id":"123"}`), []byte(`{"id":"abc"}`))
	assert.False(t, bad.OK())
}

func TestMatchJSONInvalidBodyReportsParseFailure(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	result := MatchJSON(ctx, []byte(`{"id":1}`), []byte(`not json`))
	require.False(t, result.OK())
	assert.Contains(t, result.Mismatches, "$")
}

func TestMatchXMLNamespaceAwareMatch(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	expected := `<root xmlns:a="urn:a"><a:item id="1">hi</a:item></root>`
	actual := `<root xmlns:b="urn:a"><b:item id="1">hi</b:item></root>`
	result := MatchXML(ctx, []byte(expected), []byte(actual))
	assert.True(t, result.OK())
}

func TestMatchXMLDifferentNamespaceMismatches(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	expected := `<root xmlns:a="urn:a"><a:item>hi</a:item></root>`
	actual := `<root xmlns:b="urn:b"><b:item>hi</b:item></root>`
	result := MatchXML(ctx, []byte(expected), []byte(actual))
	assert.False(t, result.OK())
}

func TestMatchXMLAttributeAndTextMismatch(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	expected := `<root id="1">hello</root>`
	actual := `<root id="2">goodbye</root>`
	result := MatchXML(ctx, []byte(expected), []byte(actual))
	require.False(t, result.OK())
	assert.Contains(t, result.Mismatches, "$.@id")
	assert.Contains(t, result.Mismatches, "$.#text")
}

func TestMatchFormURLEncodedMatchesIgnoringExtraParams(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	result := MatchFormURLEncoded(ctx, []byte("a=1&b=2"), []byte("a=1&b=2&c=3"))
	assert.True(t, result.OK())
}

func TestMatchFormURLEncodedMissingParam(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	result := MatchFormURLEncoded(ctx, []byte("a=1&b=2"), []byte("a=1"))
	require.False(t, result.OK())
	assert.Contains(t, result.Mismatches, "$.b")
}

func TestMatchTextUsesRegexWhenConfigured(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, map[string]matchers.RuleList{
		"$": {Rules: []matchers.Rule{{Kind: matchers.Regex, Pattern: `^hello.*$`}}, Logic: matchers.And},
	})
	result := MatchText(ctx, []byte("hello world"), []byte("hello there"))
	assert.True(t, result.OK())
}

func TestMatchBinaryByteEquality(t *testing.T) {
	assert.True(t, MatchBinary([]byte{1, 2, 3}, []byte{1, 2, 3}).OK())
	assert.False(t, MatchBinary([]byte{1, 2, 3}, []byte{1, 2, 4}).OK())
}

func TestDispatchSelectsJSON(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	expected := model.PresentBody([]byte(`{"id":1}`), "application/json", model.HintDefault)
	actual := model.PresentBody([]byte(`{"id":1}`), "application/json", model.HintDefault)
	result := Dispatch(ctx, "application/json", expected, actual)
	assert.True(t, result.OK())
}

func TestDispatchMissingExpectedAlwaysOK(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	result := Dispatch(ctx, "", model.MissingBody(), model.PresentBody([]byte("anything"), "text/plain", model.HintText))
	assert.True(t, result.OK())
}

func TestDispatchActualMissingWhenExpectedPresentIsTypeMismatch(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	expected := model.PresentBody([]byte(`{"id":1}`), "application/json", model.HintDefault)
	result := Dispatch(ctx, "application/json", expected, model.MissingBody())
	assert.Equal(t, ResultBodyTypeMismatch, result.Kind)
}

func TestMatchMultipartMatchesNamedParts(t *testing.T) {
	ctx := newCtx(t, matchcontext.AllowUnexpectedKeys, nil)
	boundary := "boundary123"
	contentType := `multipart/form-data; boundary="` + boundary + `"`
	body := "--" + boundary + "\r\n" +
		"Content-Disposition: form-data; name=\"field\"\r\n" +
		"Content-Type: text/plain\r\n\r\n" +
		"value\r\n" +
		"--" + boundary + "--\r\n"
	result := MatchMultipart(ctx, contentType, []byte(body), []byte(body))
	assert.True(t, result.OK())
}
