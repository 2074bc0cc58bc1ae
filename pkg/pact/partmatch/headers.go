package partmatch

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/model"
)

var foldCase = cases.Fold()

// MatchHeaders compares expected against actual per spec.md §4.7: names
// compared case-insensitively, every expected name must be present on the
// actual side, multi-value headers compared element-wise in order,
// parameterised headers (Accept/Content-Type) split into a main token plus
// `;k=v` parameters where the actual parameter set only needs to be a
// superset of the expected one, and `charset` parameter values compared
// with Unicode case folding rather than ordinal equality.
func MatchHeaders(ctx *matchcontext.Context, expected, actual *model.Headers) []HeaderMismatch {
	if expected == nil {
		return nil
	}
	var out []HeaderMismatch
	for _, name := range expected.Names() {
		expVals, _ := expected.Get(name)
		var actVals []string
		present := false
		if actual != nil {
			actVals, present = actual.Get(name)
		}
		if !present {
			out = append(out, HeaderMismatch{Key: name, Message: fmt.Sprintf("expected header %q was missing", name)})
			continue
		}
		out = append(out, matchHeaderValues(ctx, name, expVals, actVals)...)
	}
	return out
}

func matchHeaderValues(ctx *matchcontext.Context, name string, expected, actual []string) []HeaderMismatch {
	var out []HeaderMismatch
	if len(expected) != len(actual) {
		out = append(out, HeaderMismatch{Key: name, Message: fmt.Sprintf("header %q: expected %d value(s), got %d", name, len(expected), len(actual))})
	}
	n := len(expected)
	if len(actual) < n {
		n = len(actual)
	}
	headerPath := docpath.Path{docpath.RootToken, docpath.FieldToken(strings.ToLower(name))}
	for i := 0; i < n; i++ {
		elemPath := appendToken(headerPath, docpath.IndexToken(i))
		if model.IsParameterised(name) {
			out = append(out, matchParameterisedHeader(ctx, elemPath, name, expected[i], actual[i])...)
			continue
		}
		out = append(out, matchHeaderValue(ctx, elemPath, name, expected[i], actual[i])...)
	}
	return out
}

func matchHeaderValue(ctx *matchcontext.Context, path docpath.Path, name, expected, actual string) []HeaderMismatch {
	if ctx != nil && ctx.MatcherIsDefined(path) {
		if rl, ok := ctx.SelectBestMatcher(path); ok {
			var out []HeaderMismatch
			for _, err := range rl.ApplyAll(expected, actual, false) {
				out = append(out, HeaderMismatch{Key: name, Expected: expected, Actual: actual, Message: err.Error()})
			}
			return out
		}
	}
	if expected != actual {
		return []HeaderMismatch{{Key: name, Expected: expected, Actual: actual, Message: fmt.Sprintf("expected %q, got %q", expected, actual)}}
	}
	return nil
}

func matchParameterisedHeader(ctx *matchcontext.Context, path docpath.Path, name, expected, actual string) []HeaderMismatch {
	expParsed := model.ParseParameters(expected)
	actParsed := model.ParseParameters(actual)

	out := matchHeaderValue(ctx, path, name, expParsed.Value, actParsed.Value)

	for key, expVal := range expParsed.Params {
		actVal, present := actParsed.Params[key]
		if !present {
			out = append(out, HeaderMismatch{Key: name, Message: fmt.Sprintf("header %q: expected parameter %q was missing", name, key)})
			continue
		}
		if key == "charset" {
			if foldCase.String(expVal) != foldCase.String(actVal) {
				out = append(out, HeaderMismatch{Key: name, Expected: expVal, Actual: actVal, Message: fmt.Sprintf("header %q: charset parameter mismatch", name)})
			}
			continue
		}
		if expVal != actVal {
			out = append(out, HeaderMismatch{Key: name, Expected: expVal, Actual: actVal, Message: fmt.Sprintf("header %q: parameter %q mismatch", name, key)})
		}
	}
	return out
}
