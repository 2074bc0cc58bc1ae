package bodymatch

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/matchers"
	"github.com/pactcore/pact/pkg/pact/model"
)

// decodeJSON parses raw JSON into the generic any-shape docpath.Resolve
// expects (map[string]any / []any / scalars). ojg's oj.Parse decodes to the
// same shape as encoding/json.Unmarshal — used here instead, since this
// package's recursive matcher is squarely ojg's home turf in the pack and
// stdlib adds nothing oj.Parse doesn't already give.
func decodeJSON(data []byte) (any, error) {
	return oj.Parse(data)
}

// MatchJSON implements the recursive, cascading JSON body match (spec.md
// §4.6). Both sides must already be known to carry a JSON content type;
// callers that aren't sure should go through Dispatch instead.
func MatchJSON(ctx *matchcontext.Context, expectedBytes, actualBytes []byte) BodyMatchResult {
	expected, expErr := decodeJSON(expectedBytes)
	actual, actErr := decodeJSON(actualBytes)
	if expErr != nil || actErr != nil {
		return fromMismatches(map[string][]Mismatch{
			"$": {{Path: "$", Message: fmt.Sprintf("invalid JSON body: expected parse error=%v, actual parse error=%v", expErr, actErr)}},
		})
	}

	root := docpath.Path{docpath.RootToken}
	var out map[string][]Mismatch
	out = matchJSONNode(ctx, root, expected, actual, false, out)
	return fromMismatches(out)
}

func matchJSONNode(ctx *matchcontext.Context, path docpath.Path, expected, actual any, cascaded bool, out map[string][]Mismatch) map[string][]Mismatch {
	if ctx != nil && ctx.MatcherIsDefined(path) {
		rl, ok := ctx.SelectBestMatcher(path)
		if ok {
			if acRule, isAC := ruleListArrayContains(rl); isAC {
				return matchArrayContainsNode(ctx, path, expected, actual, acRule, out)
			}
			errs := rl.ApplyAll(expected, actual, cascaded)
			for _, err := range errs {
				out = addMismatch(out, toMismatch(path, err))
			}
			if len(errs) > 0 {
				return out
			}
			if ruleListIsStructural(rl) {
				return descendStructurally(ctx, path, expected, actual, true, out)
			}
			return out
		}
	}
	return descendStructurally(ctx, path, expected, actual, cascaded, out)
}

// ruleListArrayContains returns the list's ArrayContains rule, if any.
// Spec.md §4.2 scopes at most one ArrayContains rule per path, so the
// first one found is authoritative.
func ruleListArrayContains(rl matchers.RuleList) (matchers.Rule, bool) {
	for _, r := range rl.Rules {
		if r.Kind == matchers.ArrayContains {
			return r, true
		}
	}
	return matchers.Rule{}, false
}

// matchArrayContainsNode implements spec.md §4.2's ArrayContains: the
// actual array must contain, in any order, one element matching each
// variant under that variant's own nested rules. expected must be an
// array too, since each variant's TemplateIndex addresses one of its
// elements as the shape to match candidates against; rule.Variants and
// each variant's TemplateIndex drive the match directly rather than falling back to
// the generic shape-only check matchers.Rule.Match performs on its own
// (that package has no access to this package's recursive tree-walker, so
// the real element-wise comparison has to live here).
func matchArrayContainsNode(ctx *matchcontext.Context, path docpath.Path, expected, actual any, rule matchers.Rule, out map[string][]Mismatch) map[string][]Mismatch {
	expArr, eok := expected.([]any)
	actArr, aok := actual.([]any)
	if !eok || !aok {
		return addMismatch(out, Mismatch{Path: path.String(), Rule: string(matchers.ArrayContains), Message: fmt.Sprintf("expected both sides to be arrays, got %T and %T", expected, actual)})
	}
	diff := matchcontext.AllowUnexpectedKeys
	var plugin map[string]any
	if ctx != nil {
		diff = ctx.Diff
		plugin = ctx.Plugin
	}
	for i, variant := range rule.Variants {
		if variant.TemplateIndex < 0 || variant.TemplateIndex >= len(expArr) {
			out = addMismatch(out, Mismatch{Path: path.String(), Rule: string(matchers.ArrayContains), Message: fmt.Sprintf("variant %d: template index %d out of range for a %d-element expected array", i, variant.TemplateIndex, len(expArr))})
			continue
		}
		template := expArr[variant.TemplateIndex]
		variantCtx := matchcontext.New(ruleMapToCategory(variant.Rules), diff, plugin)
		matched := false
		for _, candidate := range actArr {
			if matchesArrayContainsVariant(variantCtx, template, candidate) {
				matched = true
				break
			}
		}
		if !matched {
			out = addMismatch(out, Mismatch{Path: path.String(), Rule: string(matchers.ArrayContains), Message: fmt.Sprintf("no element matched variant %d (template index %d)", i, variant.TemplateIndex)})
		}
	}
	return out
}

func matchesArrayContainsVariant(ctx *matchcontext.Context, template, candidate any) bool {
	var sub map[string][]Mismatch
	sub = matchJSONNode(ctx, docpath.Path{docpath.RootToken}, template, candidate, false, sub)
	return len(sub) == 0
}

// ruleMapToCategory adapts an ArrayContains variant's RuleMap (scoped to
// the variant's own element, per rule.go's RuleMap doc) into the
// model.MatchingRuleCategory shape matchcontext.Context expects.
func ruleMapToCategory(rm matchers.RuleMap) *model.MatchingRuleCategory {
	cat := model.NewMatchingRuleCategory(model.CategoryBody)
	for path, rl := range rm {
		cat.AddRule(path, rl)
	}
	return cat
}

func descendStructurally(ctx *matchcontext.Context, path docpath.Path, expected, actual any, cascaded bool, out map[string][]Mismatch) map[string][]Mismatch {
	switch exp := expected.(type) {
	case map[string]any:
		act, ok := actual.(map[string]any)
		if !ok {
			return addMismatch(out, Mismatch{Path: path.String(), Message: fmt.Sprintf("type mismatch: expected an object, got %T", actual), Expected: expected, Actual: actual})
		}
		for key, expChild := range exp {
			childPath := appendToken(path, docpath.FieldToken(key))
			actChild, present := act[key]
			if !present {
				out = addMismatch(out, Mismatch{Path: childPath.String(), Message: fmt.Sprintf("expected key %q was missing", key), Expected: expChild})
				continue
			}
			out = matchJSONNode(ctx, childPath, expChild, actChild, cascaded, out)
		}
		if ctx != nil && ctx.Diff == matchcontext.NoUnexpectedKeys {
			for key := range act {
				if _, present := exp[key]; !present {
					childPath := appendToken(path, docpath.FieldToken(key))
					out = addMismatch(out, Mismatch{Path: childPath.String(), Message: fmt.Sprintf("unexpected key %q", key), Actual: act[key]})
				}
			}
		}
		return out

	case []any:
		act, ok := actual.([]any)
		if !ok {
			return addMismatch(out, Mismatch{Path: path.String(), Message: fmt.Sprintf("type mismatch: expected an array, got %T", actual), Expected: expected, Actual: actual})
		}
		// A structural rule (Type, MinType, ...) cascading onto this array
		// only asserts element-wise shape, not length — length bounds are
		// MinType/MaxType's own job, checked before cascading ever starts.
		if !cascaded && len(exp) != len(act) {
			out = addMismatch(out, Mismatch{Path: path.String(), Message: fmt.Sprintf("array length mismatch: expected %d, got %d", len(exp), len(act))})
		}
		n := len(exp)
		if len(act) < n {
			n = len(act)
		}
		for i := 0; i < n; i++ {
			childPath := appendToken(path, docpath.IndexToken(i))
			out = matchJSONNode(ctx, childPath, exp[i], act[i], cascaded, out)
		}
		return out

	default:
		if cascaded {
			if ek, ak := matchers.JSONKind(expected), matchers.JSONKind(actual); ek != ak {
				out = addMismatch(out, Mismatch{Path: path.String(), Rule: string(matchers.Type), Message: fmt.Sprintf("expected %s (%v) to be the same type as %s (%v)", ak, actual, ek, expected), Expected: expected, Actual: actual})
			}
			return out
		}
		if !scalarEqual(expected, actual) {
			out = addMismatch(out, Mismatch{Path: path.String(), Message: fmt.Sprintf("expected %v, got %v", expected, actual), Expected: expected, Actual: actual})
		}
		return out
	}
}

// ruleListIsStructural reports whether any rule in the list is one of the
// composite-cascading kinds (Type/MinType/MaxType/MinMaxType/EachKey/
// EachValue/ArrayContains/...): matching such a rule at an object or array
// node means its children still need comparing, just no longer for shape.
func ruleListIsStructural(rl matchers.RuleList) bool {
	for _, r := range rl.Rules {
		if r.Kind.IsStructural() {
			return true
		}
	}
	return false
}

func appendToken(path docpath.Path, t docpath.Token) docpath.Path {
	out := make(docpath.Path, len(path)+1)
	copy(out, path)
	out[len(path)] = t
	return out
}

func scalarEqual(expected, actual any) bool {
	ef, eok := asFloat(expected)
	af, aok := asFloat(actual)
	if eok && aok {
		return ef == af
	}
	if expected == nil || actual == nil {
		return expected == actual
	}
	eb, ebok := json.Marshal(expected)
	ab, abok := json.Marshal(actual)
	if ebok != nil || abok != nil {
		return false
	}
	return string(eb) == string(ab)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func toMismatch(path docpath.Path, err error) Mismatch {
	if me, ok := err.(*matchers.MatchError); ok {
		return Mismatch{Path: path.String(), Rule: string(me.Rule), Message: me.Message}
	}
	return Mismatch{Path: path.String(), Message: err.Error()}
}
