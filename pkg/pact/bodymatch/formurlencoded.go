package bodymatch

import (
	"fmt"

	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/model"
)

// MatchFormURLEncoded treats an application/x-www-form-urlencoded body the
// same way an HTTP query string is matched: parse to name -> values, compare
// per parameter name, order among values for the same name significant,
// extra/missing names governed by ctx.Diff.
func MatchFormURLEncoded(ctx *matchcontext.Context, expectedBytes, actualBytes []byte) BodyMatchResult {
	expected := model.ParseQueryString(string(expectedBytes))
	actual := model.ParseQueryString(string(actualBytes))

	var out map[string][]Mismatch
	seen := map[string]bool{}
	for name, expVals := range expected {
		seen[name] = true
		path := docpath.Path{docpath.RootToken, docpath.FieldToken(name)}
		actVals, present := actual[name]
		if !present {
			out = addMismatch(out, Mismatch{Path: path.String(), Message: fmt.Sprintf("expected parameter %q was missing", name)})
			continue
		}
		out = matchQueryValues(ctx, path, name, expVals, actVals, out)
	}
	if ctx != nil && ctx.Diff == matchcontext.NoUnexpectedKeys {
		for name := range actual {
			if !seen[name] {
				path := docpath.Path{docpath.RootToken, docpath.FieldToken(name)}
				out = addMismatch(out, Mismatch{Path: path.String(), Message: fmt.Sprintf("unexpected parameter %q", name)})
			}
		}
	}
	return fromMismatches(out)
}

func matchQueryValues(ctx *matchcontext.Context, path docpath.Path, name string, expected, actual []*string, out map[string][]Mismatch) map[string][]Mismatch {
	if len(expected) != len(actual) {
		out = addMismatch(out, Mismatch{Path: path.String(), Message: fmt.Sprintf("parameter %q: expected %d value(s), got %d", name, len(expected), len(actual))})
	}
	n := len(expected)
	if len(actual) < n {
		n = len(actual)
	}
	for i := 0; i < n; i++ {
		elemPath := appendToken(path, docpath.IndexToken(i))
		out = matchStringValue(ctx, elemPath, derefString(expected[i]), derefString(actual[i]), out)
	}
	return out
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func matchStringValue(ctx *matchcontext.Context, path docpath.Path, expected, actual string, out map[string][]Mismatch) map[string][]Mismatch {
	if ctx != nil && ctx.MatcherIsDefined(path) {
		if rl, found := ctx.SelectBestMatcher(path); found {
			for _, err := range rl.ApplyAll(expected, actual, false) {
				out = addMismatch(out, toMismatch(path, err))
			}
			return out
		}
	}
	if expected != actual {
		out = addMismatch(out, Mismatch{Path: path.String(), Message: fmt.Sprintf("expected %q, got %q", expected, actual), Expected: expected, Actual: actual})
	}
	return out
}
