package partmatch

import (
	"fmt"
	"reflect"

	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
)

// MatchMetadata compares message metadata per spec.md §4.7: like headers,
// but values are opaque (never comma-split or `;k=v`-parameterised) and
// every expected key must be present on the actual side.
func MatchMetadata(ctx *matchcontext.Context, expected, actual map[string]any) []MetadataMismatch {
	var out []MetadataMismatch
	for key, expVal := range expected {
		path := docpath.Path{docpath.RootToken, docpath.FieldToken(key)}
		actVal, present := actual[key]
		if !present {
			out = append(out, MetadataMismatch{Key: key, Message: fmt.Sprintf("expected metadata key %q was missing", key)})
			continue
		}
		if ctx != nil && ctx.MatcherIsDefined(path) {
			if rl, ok := ctx.SelectBestMatcher(path); ok {
				for _, err := range rl.ApplyAll(expVal, actVal, false) {
					out = append(out, MetadataMismatch{Key: key, Expected: expVal, Actual: actVal, Message: err.Error()})
				}
				continue
			}
		}
		if !reflect.DeepEqual(expVal, actVal) {
			out = append(out, MetadataMismatch{Key: key, Expected: expVal, Actual: actVal, Message: fmt.Sprintf("expected %v, got %v", expVal, actVal)})
		}
	}
	if ctx != nil && ctx.Diff == matchcontext.NoUnexpectedKeys {
		for key := range actual {
			if _, present := expected[key]; !present {
				out = append(out, MetadataMismatch{Key: key, Actual: actual[key], Message: fmt.Sprintf("unexpected metadata key %q", key)})
			}
		}
	}
	return out
}
