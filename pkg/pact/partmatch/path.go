package partmatch

import (
	"fmt"

	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
)

var rootPath = docpath.Path{docpath.RootToken}

// MatchPath compares a request path. A matcher configured at the category's
// root path (a Regex or Equality rule — the only two that are meaningful
// against a bare string) is applied if present; otherwise the comparison
// is exact-string equality.
func MatchPath(ctx *matchcontext.Context, expected, actual string) *PathMismatch {
	if ctx != nil && ctx.MatcherIsDefined(rootPath) {
		if rl, ok := ctx.SelectBestMatcher(rootPath); ok {
			for _, err := range rl.ApplyAll(expected, actual, false) {
				return &PathMismatch{Expected: expected, Actual: actual, Message: err.Error()}
			}
			return nil
		}
	}
	if expected != actual {
		return &PathMismatch{Expected: expected, Actual: actual, Message: fmt.Sprintf("expected path %q, got %q", expected, actual)}
	}
	return nil
}
