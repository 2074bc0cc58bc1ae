package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPactSpecificationOrdering(t *testing.T) {
	assert.True(t, V1.Before(V2))
	assert.True(t, V4.AtLeast(V3))
	assert.False(t, V2.Before(V1))
}

func TestParsePactSpecificationDefaultsToV3(t *testing.T) {
	assert.Equal(t, V1, ParsePactSpecification("1.0.0"))
	assert.Equal(t, V4, ParsePactSpecification("4.0"))
	assert.Equal(t, V3, ParsePactSpecification("nonsense"))
	assert.Equal(t, V3, ParsePactSpecification(""))
}

func TestBodyVariants(t *testing.T) {
	assert.True(t, MissingBody().IsMissing())
	assert.True(t, NullBody().IsNull())
	assert.True(t, EmptyBody().IsEmpty())

	b := PresentBody([]byte("hi"), "text/plain", HintText)
	assert.True(t, b.Present())
	assert.Equal(t, []byte("hi"), b.Bytes())
	assert.Equal(t, "text/plain", b.ContentType())

	// Present with zero bytes degrades to Empty, per the OptionalBody
	// invariant that Present always carries at least one byte.
	assert.True(t, PresentBody(nil, "text/plain", HintDefault).IsEmpty())
}

func TestBodyWithBytesPreservesContentType(t *testing.T) {
	b := PresentBody([]byte("a"), "application/json", HintDefault)
	b2 := b.WithBytes([]byte(`{"x":1}`))
	assert.Equal(t, "application/json", b2.ContentType())
	assert.Equal(t, []byte(`{"x":1}`), b2.Bytes())
}

func TestHeadersSingleValueNotSplit(t *testing.T) {
	h := NewHeaders()
	h.Add("User-Agent", "Mozilla/5.0 (X11; Linux x86_64), like Gecko")
	v, ok := h.Get("user-agent")
	require.True(t, ok)
	assert.Equal(t, []string{"Mozilla/5.0 (X11; Linux x86_64), like Gecko"}, v)
}

func TestHeadersMultiValueSplitOnComma(t *testing.T) {
	h := NewHeaders()
	h.Add("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
	v, ok := h.Get("access-control-allow-methods")
	require.True(t, ok)
	assert.Equal(t, []string{"POST", "GET", "OPTIONS"}, v)
}

func TestHeadersCaseInsensitiveLookup(t *testing.T) {
	h := NewHeaders()
	h.Add("Content-Type", "application/json")
	_, ok := h.Get("CONTENT-TYPE")
	assert.True(t, ok)
}

func TestParseParameters(t *testing.T) {
	p := ParseParameters("text/html;charset=utf-8")
	assert.Equal(t, "text/html", p.Value)
	assert.Equal(t, "utf-8", p.Params["charset"])
}

func TestIsParameterised(t *testing.T) {
	assert.True(t, IsParameterised("Content-Type"))
	assert.True(t, IsParameterised("accept"))
	assert.False(t, IsParameterised("x-custom"))
}

func TestParseQueryStringBasic(t *testing.T) {
	q := ParseQueryString("a=1&b=2&a=3")
	require.Len(t, q["a"], 2)
	assert.Equal(t, "1", *q["a"][0])
	assert.Equal(t, "3", *q["a"][1])
}

func TestParseQueryStringBareKeyIsNil(t *testing.T) {
	q := ParseQueryString("flag&x=1")
	require.Len(t, q["flag"], 1)
	assert.Nil(t, q["flag"][0])
}

func TestParseQueryStringEmpty(t *testing.T) {
	assert.Nil(t, ParseQueryString(""))
}

func TestParseQueryStringPlusDecodesToSpace(t *testing.T) {
	q := ParseQueryString("name=John+Doe")
	require.Len(t, q["name"], 1)
	assert.Equal(t, "John Doe", *q["name"][0])
}

func TestQueryJSONRoundTripObjectShape(t *testing.T) {
	q := Query{"a": {strPtr("1"), nil}}
	data, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded Query
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded["a"], 2)
	assert.Equal(t, "1", *decoded["a"][0])
	assert.Nil(t, decoded["a"][1])
}

func TestQueryUnmarshalFromPlainString(t *testing.T) {
	var q Query
	require.NoError(t, json.Unmarshal([]byte(`"a=1&b=2"`), &q))
	require.Len(t, q["a"], 1)
	assert.Equal(t, "1", *q["a"][0])
}

func strPtr(s string) *string { return &s }

func TestMatchingRulesCategoryInvariant(t *testing.T) {
	mr := NewMatchingRules()
	body := mr.Category(CategoryBody)
	assert.Equal(t, CategoryBody, body.Name)
	assert.True(t, mr.Empty())
}

func TestInteractionIdentityFromDescriptionAndStates(t *testing.T) {
	i := Interaction{
		Kind: KindRequestResponse,
		RequestResponse: &RequestResponseInteraction{
			Description:    "a request",
			ProviderStates: []ProviderState{{Name: "state A"}, {Name: "state B"}},
		},
	}
	desc, states := i.Identity()
	assert.Equal(t, "a request", desc)
	assert.Equal(t, []string{"state A", "state B"}, states)
	_, ok := i.Key()
	assert.False(t, ok)
}

func TestInteractionV4KeySupersedesIdentity(t *testing.T) {
	i := Interaction{
		Kind:     KindSyncHTTP,
		SyncHTTP: &SyncHTTP{Key: "abc123", Description: "a request"},
	}
	key, ok := i.Key()
	require.True(t, ok)
	assert.Equal(t, "abc123", key)
}

func newTestPact(desc string) *Pact {
	return &Pact{
		Consumer: Consumer{Name: "C"},
		Provider: Provider{Name: "P"},
		Spec:     V3,
		Interactions: []Interaction{
			{
				Kind: KindRequestResponse,
				RequestResponse: &RequestResponseInteraction{
					Description: desc,
					Request:     NewRequest("GET", "/x"),
					Response:    NewResponse(200),
				},
			},
		},
	}
}

func TestMergeDistinctInteractionsUnion(t *testing.T) {
	a := newTestPact("one")
	b := newTestPact("two")
	merged, err := Merge(a, b, MergeOptions{})
	require.NoError(t, err)
	assert.Len(t, merged.Interactions, 2)
}

func TestMergeIdenticalInteractionCollapses(t *testing.T) {
	a := newTestPact("one")
	b := newTestPact("one")
	merged, err := Merge(a, b, MergeOptions{})
	require.NoError(t, err)
	assert.Len(t, merged.Interactions, 1)
}

func TestMergeConflictWithoutOverrideFails(t *testing.T) {
	a := newTestPact("one")
	b := newTestPact("one")
	b.Interactions[0].RequestResponse.Response.Status = 404

	_, err := Merge(a, b, MergeOptions{})
	require.Error(t, err)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestMergeConflictWithOverrideTakesIncoming(t *testing.T) {
	a := newTestPact("one")
	b := newTestPact("one")
	b.Interactions[0].RequestResponse.Response.Status = 404

	merged, err := Merge(a, b, MergeOptions{Override: true})
	require.NoError(t, err)
	require.Len(t, merged.Interactions, 1)
	assert.Equal(t, 404, merged.Interactions[0].RequestResponse.Response.Status)
}
