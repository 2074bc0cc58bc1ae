package verify

import (
	"github.com/pactcore/pact/pkg/pact/bodymatch"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/model"
	"github.com/pactcore/pact/pkg/pact/partmatch"
)

// MatchRequest compares an actual request against an expected one per
// spec.md §4.8: method, path, query, headers, body, in that order. diff
// governs every category's unexpected-key tolerance; plugin is passed
// through to every Context unexamined (pkg/pact/plugin's ContentMatcher
// implementations are the only readers).
func MatchRequest(expected, actual *model.Request, diff matchcontext.DiffConfig, plugin map[string]any) MatchResult {
	var result MatchResult

	result.addAll(convertMethod(partmatch.MatchMethod(expected.Method, actual.Method)))

	pathCtx := matchcontext.New(expected.MatchingRules.Category(model.CategoryPath), diff, plugin)
	result.addAll(convertPath(partmatch.MatchPath(pathCtx, expected.Path, actual.Path)))

	queryCtx := matchcontext.New(expected.MatchingRules.Category(model.CategoryQuery), diff, plugin)
	result.addAll(convertQuery(partmatch.MatchQuery(queryCtx, expected.Query, actual.Query)))

	headerCtx := matchcontext.New(expected.MatchingRules.Category(model.CategoryHeader), diff, plugin)
	result.addAll(convertHeaders(partmatch.MatchHeaders(headerCtx, expected.Headers, actual.Headers)))

	bodyCtx := matchcontext.New(expected.MatchingRules.Category(model.CategoryBody), diff, plugin)
	bodyResult := bodymatch.Dispatch(bodyCtx, expected.Body.ContentType(), expected.Body, actual.Body)
	result.addAll(convertBody(bodyResult))

	return result
}
