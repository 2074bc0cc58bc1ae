package matchcontext

import (
	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchers"
	"github.com/pactcore/pact/pkg/pact/model"
)

// DiffConfig governs how object keys absent from the expected side are
// treated when no rule overrides the comparison.
type DiffConfig int

const (
	// AllowUnexpectedKeys ignores actual-side object keys the expected
	// side never mentioned (the default for consumer-driven contracts:
	// a provider may return extra fields safely).
	AllowUnexpectedKeys DiffConfig = iota
	// NoUnexpectedKeys fails the match if the actual side carries any key
	// the expected side did not.
	NoUnexpectedKeys
)

// Context is the per-matching-pass configuration and rule lookup surface
// threaded through every body/part matcher call (spec.md §4.5).
type Context struct {
	Diff DiffConfig

	// Rules is the current category's matching rules, addressed by
	// rendered path-expression string (model.MatchingRuleCategory's
	// native key type).
	Rules *model.MatchingRuleCategory

	// Plugin is an opaque, collaborator-owned context map passed through
	// unexamined — pkg/pact/plugin's ContentMatcher implementations read
	// it, the core never does.
	Plugin map[string]any
}

// New returns a Context scoped to category's rule set.
func New(category *model.MatchingRuleCategory, diff DiffConfig, plugin map[string]any) *Context {
	return &Context{Diff: diff, Rules: category, Plugin: plugin}
}

// candidates parses every rule path in scope once, paired with its
// RuleList. Parse failures are skipped: a malformed stored path expression
// cannot match anything, which is the same outcome as if it were absent.
func (c *Context) candidates() []ruleCandidate {
	if c.Rules == nil {
		return nil
	}
	out := make([]ruleCandidate, 0, len(c.Rules.Rules))
	for raw, rl := range c.Rules.Rules {
		path, err := docpath.Parse(raw)
		if err != nil {
			continue
		}
		out = append(out, ruleCandidate{raw: raw, path: path, rules: rl})
	}
	return out
}

type ruleCandidate struct {
	raw   string
	path  docpath.Path
	rules matchers.RuleList
}

// MatcherIsDefined reports whether any rule in scope covers concrete,
// i.e. has weight > 0 against it.
func (c *Context) MatcherIsDefined(concrete docpath.Path) bool {
	for _, cand := range c.candidates() {
		if w, ok := cand.path.Weight(concrete); ok && w > 0 {
			return true
		}
	}
	return false
}

// DirectMatcherDefined reports whether the best-matching rule at concrete
// is exactly one of allowedKinds. An empty allowedKinds matches any
// defined rule.
func (c *Context) DirectMatcherDefined(concrete docpath.Path, allowedKinds ...matchers.Kind) bool {
	rl, ok := c.SelectBestMatcher(concrete)
	if !ok {
		return false
	}
	if len(allowedKinds) == 0 {
		return len(rl.Rules) > 0
	}
	for _, r := range rl.Rules {
		for _, k := range allowedKinds {
			if r.Kind == k {
				return true
			}
		}
	}
	return false
}

// TypeMatcherDefined reports whether the best-matching rule at concrete
// includes a structural (cascading) rule kind.
func (c *Context) TypeMatcherDefined(concrete docpath.Path) bool {
	rl, ok := c.SelectBestMatcher(concrete)
	if !ok {
		return false
	}
	for _, r := range rl.Rules {
		if r.Kind.IsStructural() {
			return true
		}
	}
	return false
}

// SelectBestMatcher returns the rule list whose path expression covers
// concrete with the highest weight, tie-broken by path length (more
// specific wins). Among weight-and-length ties, Go's map iteration order
// decides — the container this context reads from (model.MatchingRuleCategory)
// keys rules by rendered path string rather than insertion-ordered slice,
// so a further insertion-order tie-break is not representable here; exact
// ties at both weight and length are vanishingly rare in practice since
// they require two distinct path expressions of identical specificity.
func (c *Context) SelectBestMatcher(concrete docpath.Path) (matchers.RuleList, bool) {
	cands := c.candidates()
	if len(cands) == 0 {
		return matchers.RuleList{}, false
	}
	paths := make([]docpath.Path, len(cands))
	for i, cand := range cands {
		paths[i] = cand.path
	}
	idx := docpath.BestMatch(paths, concrete)
	if idx < 0 {
		return matchers.RuleList{}, false
	}
	return cands[idx].rules, true
}

// WithCategory returns a Context scoped to a different rule category,
// preserving Diff and Plugin.
func (c *Context) WithCategory(category *model.MatchingRuleCategory) *Context {
	return &Context{Diff: c.Diff, Rules: category, Plugin: c.Plugin}
}
