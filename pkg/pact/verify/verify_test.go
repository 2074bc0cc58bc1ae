package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/matchers"
	"github.com/pactcore/pact/pkg/pact/model"
)

func TestMatchRequestAllFieldsMatch(t *testing.T) {
	expected := model.NewRequest("GET", "/orders/1")
	expected.Query = model.ParseQueryString("status=open")
	expected.Headers.Add("Accept", "application/json")
	expected.Body = model.PresentBody([]byte(`{"id":1}`), "application/json", model.HintDefault)

	actual := model.NewRequest("get", "/orders/1")
	actual.Query = model.ParseQueryString("status=open")
	actual.Headers.Add("accept", "application/json")
	actual.Body = model.PresentBody([]byte(`{"id":1,"extra":true}`), "application/json", model.HintDefault)

	result := MatchRequest(expected, actual, matchcontext.AllowUnexpectedKeys, nil)
	assert.True(t, result.OK())
}

func TestMatchRequestCollectsEveryFieldInOrder(t *testing.T) {
	expected := model.NewRequest("POST", "/orders/1")
	expected.Headers.Add("X-Trace-Id", "abc")
	expected.Body = model.PresentBody([]byte(`{"id":1}`), "application/json", model.HintDefault)

	actual := model.NewRequest("GET", "/orders/2")
	actual.Body = model.PresentBody([]byte(`{"id":2}`), "application/json", model.HintDefault)

	result := MatchRequest(expected, actual, matchcontext.AllowUnexpectedKeys, nil)
	require.Len(t, result.Mismatches, 4)
	assert.Equal(t, MethodMismatchKind, result.Mismatches[0].Kind)
	assert.Equal(t, PathMismatchKind, result.Mismatches[1].Kind)
	assert.Equal(t, HeaderMismatchKind, result.Mismatches[2].Kind)
	assert.Equal(t, BodyMismatchKind, result.Mismatches[3].Kind)
}

func TestMatchRequestUsesBodyMatchingRules(t *testing.T) {
	expected := model.NewRequest("GET", "/orders/1")
	expected.Body = model.PresentBody([]byte(`{"id":1}`), "application/json", model.HintDefault)
	expected.MatchingRules.Category(model.CategoryBody).AddRule("$.id", matchers.RuleList{
		Rules: []matchers.Rule{{Kind: matchers.Type}}, Logic: matchers.And,
	})

	actual := model.NewRequest("GET", "/orders/1")
	actual.Body = model.PresentBody([]byte(`{"id":999}`), "application/json", model.HintDefault)

	result := MatchRequest(expected, actual, matchcontext.AllowUnexpectedKeys, nil)
	assert.True(t, result.OK())
}

func TestMatchResponseStatusHeaderBodyOrder(t *testing.T) {
	expected := model.NewResponse(200)
	expected.Headers.Add("Content-Type", "application/json")
	expected.Body = model.PresentBody([]byte(`{"ok":true}`), "application/json", model.HintDefault)

	actual := model.NewResponse(500)
	actual.Body = model.PresentBody([]byte(`{"ok":false}`), "application/json", model.HintDefault)

	result := MatchResponse(expected, actual, matchcontext.AllowUnexpectedKeys, nil)
	require.Len(t, result.Mismatches, 3)
	assert.Equal(t, StatusMismatchKind, result.Mismatches[0].Kind)
	assert.Equal(t, HeaderMismatchKind, result.Mismatches[1].Kind)
	assert.Equal(t, BodyMismatchKind, result.Mismatches[2].Kind)
}

func TestMatchMessageMetadataAndBody(t *testing.T) {
	expected := model.NewMessageContents()
	expected.Metadata = map[string]any{"eventType": "OrderPlaced"}
	expected.Body = model.PresentBody([]byte(`{"orderId":1}`), "application/json", model.HintDefault)

	actual := model.NewMessageContents()
	actual.Metadata = map[string]any{}
	actual.Body = model.PresentBody([]byte(`{"orderId":1}`), "application/json", model.HintDefault)

	result := MatchMessage(expected, actual, matchcontext.AllowUnexpectedKeys, nil)
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, MetadataMismatchKind, result.Mismatches[0].Kind)
	assert.Equal(t, "eventType", result.Mismatches[0].Key)
}

func TestMatchInteractionRequiresMatchingKind(t *testing.T) {
	reqResp := model.Interaction{Kind: model.KindRequestResponse, RequestResponse: &model.RequestResponseInteraction{
		Request: model.NewRequest("GET", "/"), Response: model.NewResponse(200),
	}}
	message := model.Interaction{Kind: model.KindAsyncMessage, AsyncMessage: &model.AsyncMessage{
		Contents: model.NewMessageContents(),
	}}

	_, err := MatchInteraction(reqResp, message, matchcontext.AllowUnexpectedKeys, nil)
	assert.Error(t, err)
}

func TestMatchInteractionRequestResponse(t *testing.T) {
	expected := model.Interaction{Kind: model.KindRequestResponse, RequestResponse: &model.RequestResponseInteraction{
		Request:  model.NewRequest("GET", "/orders/1"),
		Response: model.NewResponse(200),
	}}
	actual := model.Interaction{Kind: model.KindRequestResponse, RequestResponse: &model.RequestResponseInteraction{
		Request:  model.NewRequest("GET", "/orders/1"),
		Response: model.NewResponse(200),
	}}

	result, err := MatchInteraction(expected, actual, matchcontext.AllowUnexpectedKeys, nil)
	require.NoError(t, err)
	assert.True(t, result.OK())
}

func TestMatchInteractionSyncMessageResponseCountMismatch(t *testing.T) {
	expected := model.Interaction{Kind: model.KindSyncMessage, SyncMessage: &model.SyncMessage{
		Request:  model.NewMessageContents(),
		Response: []*model.MessageContents{model.NewMessageContents(), model.NewMessageContents()},
	}}
	actual := model.Interaction{Kind: model.KindSyncMessage, SyncMessage: &model.SyncMessage{
		Request:  model.NewMessageContents(),
		Response: []*model.MessageContents{model.NewMessageContents()},
	}}

	result, err := MatchInteraction(expected, actual, matchcontext.AllowUnexpectedKeys, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Mismatches)
	assert.Equal(t, MetadataMismatchKind, result.Mismatches[0].Kind)
	assert.Equal(t, "response", result.Mismatches[0].Key)
}
