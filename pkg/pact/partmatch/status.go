package partmatch

import (
	"fmt"

	"github.com/pactcore/pact/pkg/pact/matchcontext"
)

// MatchStatus compares a response status code: integer equality, unless a
// StatusCode rule is configured at the category's root path, in which case
// the rule's class/explicit-list check governs instead (spec.md §4.7).
func MatchStatus(ctx *matchcontext.Context, expected, actual int) *StatusMismatch {
	if ctx != nil && ctx.MatcherIsDefined(rootPath) {
		if rl, ok := ctx.SelectBestMatcher(rootPath); ok {
			for _, err := range rl.ApplyAll(expected, actual, false) {
				return &StatusMismatch{Expected: expected, Actual: actual, Message: err.Error()}
			}
			return nil
		}
	}
	if expected != actual {
		return &StatusMismatch{Expected: expected, Actual: actual, Message: fmt.Sprintf("expected status %d, got %d", expected, actual)}
	}
	return nil
}
