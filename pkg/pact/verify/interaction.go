package verify

import (
	"fmt"

	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/model"
)

// MatchInteraction dispatches across model.Interaction's four shapes
// (spec.md §3/§4.8), combining whichever field matchers apply to that
// shape into one MatchResult. Request fields (method/path/query/headers/
// body) come first, then response/message fields, matching the source
// order a reader would scan the interaction in.
//
// expected and actual must share the same Kind — mismatched kinds are a
// configuration error (comparing a pact fixture against the wrong
// interaction), not a match outcome, and are reported via the error
// return rather than folded into MatchResult.
func MatchInteraction(expected, actual model.Interaction, diff matchcontext.DiffConfig, plugin map[string]any) (MatchResult, error) {
	if expected.Kind != actual.Kind {
		return MatchResult{}, fmt.Errorf("verify: interaction kind mismatch: expected %v, actual %v", expected.Kind, actual.Kind)
	}

	switch expected.Kind {
	case model.KindRequestResponse:
		return matchRequestResponse(expected.RequestResponse.Request, expected.RequestResponse.Response,
			actual.RequestResponse.Request, actual.RequestResponse.Response, diff, plugin), nil

	case model.KindSyncHTTP:
		return matchRequestResponse(expected.SyncHTTP.Request, expected.SyncHTTP.Response,
			actual.SyncHTTP.Request, actual.SyncHTTP.Response, diff, plugin), nil

	case model.KindAsyncMessage:
		return MatchMessage(expected.AsyncMessage.Contents, actual.AsyncMessage.Contents, diff, plugin), nil

	case model.KindSyncMessage:
		return matchSyncMessage(expected.SyncMessage, actual.SyncMessage, diff, plugin), nil

	default:
		return MatchResult{}, fmt.Errorf("verify: unknown interaction kind %v", expected.Kind)
	}
}

func matchRequestResponse(expectedReq *model.Request, expectedResp *model.Response, actualReq *model.Request, actualResp *model.Response, diff matchcontext.DiffConfig, plugin map[string]any) MatchResult {
	var result MatchResult
	result.addAll(MatchRequest(expectedReq, actualReq, diff, plugin).Mismatches)
	result.addAll(MatchResponse(expectedResp, actualResp, diff, plugin).Mismatches)
	return result
}

// matchSyncMessage matches the single request message, then each
// response message positionally. A response-count mismatch is reported
// as a single metadata-shaped diagnostic; the messages both sides have
// (the first min(expected, actual) of them) are still compared by
// position, and the surplus messages on the longer side are not compared.
func matchSyncMessage(expected, actual *model.SyncMessage, diff matchcontext.DiffConfig, plugin map[string]any) MatchResult {
	var result MatchResult
	result.addAll(MatchMessage(expected.Request, actual.Request, diff, plugin).Mismatches)

	if len(expected.Response) != len(actual.Response) {
		result.add(Mismatch{
			Kind:    MetadataMismatchKind,
			Key:     "response",
			Message: fmt.Sprintf("expected %d response message(s), got %d", len(expected.Response), len(actual.Response)),
		})
		n := len(expected.Response)
		if len(actual.Response) < n {
			n = len(actual.Response)
		}
		for i := 0; i < n; i++ {
			result.addAll(MatchMessage(expected.Response[i], actual.Response[i], diff, plugin).Mismatches)
		}
		return result
	}

	for i := range expected.Response {
		result.addAll(MatchMessage(expected.Response[i], actual.Response[i], diff, plugin).Mismatches)
	}
	return result
}
