package partmatch

import (
	"fmt"

	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/model"
)

// MatchQuery compares expected against actual per spec.md §4.7: per
// parameter name, values compared in order; a missing expected name is
// always a mismatch, an extra actual name is a mismatch only under
// NoUnexpectedKeys. A nil (bare-key) value is distinct from an empty
// string, consistent with model.Query's representation.
func MatchQuery(ctx *matchcontext.Context, expected, actual model.Query) []QueryMismatch {
	var out []QueryMismatch
	for name, expVals := range expected {
		path := docpath.Path{docpath.RootToken, docpath.FieldToken(name)}
		actVals, present := actual[name]
		if !present {
			out = append(out, QueryMismatch{Parameter: name, Message: fmt.Sprintf("expected parameter %q was missing", name)})
			continue
		}
		out = append(out, matchQueryValues(ctx, path, name, expVals, actVals)...)
	}
	if ctx != nil && ctx.Diff == matchcontext.NoUnexpectedKeys {
		for name := range actual {
			if _, present := expected[name]; !present {
				out = append(out, QueryMismatch{Parameter: name, Message: fmt.Sprintf("unexpected parameter %q", name)})
			}
		}
	}
	return out
}

func matchQueryValues(ctx *matchcontext.Context, path docpath.Path, name string, expected, actual []*string) []QueryMismatch {
	var out []QueryMismatch
	if len(expected) != len(actual) {
		out = append(out, QueryMismatch{Parameter: name, Message: fmt.Sprintf("parameter %q: expected %d value(s), got %d", name, len(expected), len(actual))})
	}
	n := len(expected)
	if len(actual) < n {
		n = len(actual)
	}
	for i := 0; i < n; i++ {
		elemPath := appendToken(path, docpath.IndexToken(i))
		out = append(out, matchQueryValue(ctx, elemPath, name, expected[i], actual[i])...)
	}
	return out
}

func matchQueryValue(ctx *matchcontext.Context, path docpath.Path, name string, expected, actual *string) []QueryMismatch {
	if (expected == nil) != (actual == nil) {
		return []QueryMismatch{{Parameter: name, Message: fmt.Sprintf("parameter %q: bare-key/empty-value mismatch", name), Expected: derefOrNil(expected), Actual: derefOrNil(actual)}}
	}
	if expected == nil {
		return nil
	}
	if ctx != nil && ctx.MatcherIsDefined(path) {
		if rl, ok := ctx.SelectBestMatcher(path); ok {
			var out []QueryMismatch
			for _, err := range rl.ApplyAll(*expected, *actual, false) {
				out = append(out, QueryMismatch{Parameter: name, Expected: *expected, Actual: *actual, Message: err.Error()})
			}
			return out
		}
	}
	if *expected != *actual {
		return []QueryMismatch{{Parameter: name, Expected: *expected, Actual: *actual, Message: fmt.Sprintf("expected %q, got %q", *expected, *actual)}}
	}
	return nil
}

func derefOrNil(s *string) string {
	if s == nil {
		return "<bare key>"
	}
	return *s
}
