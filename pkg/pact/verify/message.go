package verify

import (
	"github.com/pactcore/pact/pkg/pact/bodymatch"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/model"
	"github.com/pactcore/pact/pkg/pact/partmatch"
)

// MatchMessage compares actual message contents against expected ones per
// spec.md §4.8: metadata, body, in that order.
func MatchMessage(expected, actual *model.MessageContents, diff matchcontext.DiffConfig, plugin map[string]any) MatchResult {
	var result MatchResult

	metadataCtx := matchcontext.New(expected.MatchingRules.Category(model.CategoryMetadata), diff, plugin)
	result.addAll(convertMetadata(partmatch.MatchMetadata(metadataCtx, expected.Metadata, actual.Metadata)))

	bodyCtx := matchcontext.New(expected.MatchingRules.Category(model.CategoryBody), diff, plugin)
	bodyResult := bodymatch.Dispatch(bodyCtx, expected.Body.ContentType(), expected.Body, actual.Body)
	result.addAll(convertBody(bodyResult))

	return result
}
