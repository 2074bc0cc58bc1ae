package verify

import (
	"github.com/pactcore/pact/pkg/pact/bodymatch"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/model"
	"github.com/pactcore/pact/pkg/pact/partmatch"
)

// MatchResponse compares an actual response against an expected one per
// spec.md §4.8: status, headers, body, in that order.
func MatchResponse(expected, actual *model.Response, diff matchcontext.DiffConfig, plugin map[string]any) MatchResult {
	var result MatchResult

	statusCtx := matchcontext.New(expected.MatchingRules.Category(model.CategoryStatus), diff, plugin)
	result.addAll(convertStatus(partmatch.MatchStatus(statusCtx, expected.Status, actual.Status)))

	headerCtx := matchcontext.New(expected.MatchingRules.Category(model.CategoryHeader), diff, plugin)
	result.addAll(convertHeaders(partmatch.MatchHeaders(headerCtx, expected.Headers, actual.Headers)))

	bodyCtx := matchcontext.New(expected.MatchingRules.Category(model.CategoryBody), diff, plugin)
	bodyResult := bodymatch.Dispatch(bodyCtx, expected.Body.ContentType(), expected.Body, actual.Body)
	result.addAll(convertBody(bodyResult))

	return result
}
