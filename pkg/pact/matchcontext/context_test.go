package matchcontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchers"
	"github.com/pactcore/pact/pkg/pact/model"
)

func concrete(t *testing.T, expr string) docpath.Path {
	t.Helper()
	p, err := docpath.Parse(expr)
	require.NoError(t, err)
	return p
}

func newCategory(t *testing.T, rules map[string]matchers.RuleList) *model.MatchingRuleCategory {
	t.Helper()
	cat := model.NewMatchingRuleCategory(model.CategoryBody)
	for path, rl := range rules {
		cat.AddRule(path, rl)
	}
	return cat
}

func TestMatcherIsDefinedTrueForCoveredPath(t *testing.T) {
	cat := newCategory(t, map[string]matchers.RuleList{
		"$.id": {Rules: []matchers.Rule{{Kind: matchers.Type}}, Logic: matchers.And},
	})
	ctx := New(cat, AllowUnexpectedKeys, nil)
	assert.True(t, ctx.MatcherIsDefined(concrete(t, "$.id")))
	assert.False(t, ctx.MatcherIsDefined(concrete(t, "$.other")))
}

func TestSelectBestMatcherPrefersMoreSpecificPath(t *testing.T) {
	cat := newCategory(t, map[string]matchers.RuleList{
		"$.*":   {Rules: []matchers.Rule{{Kind: matchers.Type}}, Logic: matchers.And},
		"$.id":  {Rules: []matchers.Rule{{Kind: matchers.Equality}}, Logic: matchers.And},
	})
	ctx := New(cat, AllowUnexpectedKeys, nil)
	rl, ok := ctx.SelectBestMatcher(concrete(t, "$.id"))
	require.True(t, ok)
	require.Len(t, rl.Rules, 1)
	assert.Equal(t, matchers.Equality, rl.Rules[0].Kind)
}

func TestDirectMatcherDefinedFiltersByKind(t *testing.T) {
	cat := newCategory(t, map[string]matchers.RuleList{
		"$.id": {Rules: []matchers.Rule{{Kind: matchers.Regex, Pattern: "[0-9]+"}}, Logic: matchers.And},
	})
	ctx := New(cat, AllowUnexpectedKeys, nil)
	assert.True(t, ctx.DirectMatcherDefined(concrete(t, "$.id"), matchers.Regex, matchers.Equality))
	assert.False(t, ctx.DirectMatcherDefined(concrete(t, "$.id"), matchers.Type))
}

func TestTypeMatcherDefinedOnlyForStructuralKinds(t *testing.T) {
	structural := newCategory(t, map[string]matchers.RuleList{
		"$.items": {Rules: []matchers.Rule{{Kind: matchers.EachValue}}, Logic: matchers.And},
	})
	scalar := newCategory(t, map[string]matchers.RuleList{
		"$.id": {Rules: []matchers.Rule{{Kind: matchers.Equality}}, Logic: matchers.And},
	})

	assert.True(t, New(structural, AllowUnexpectedKeys, nil).TypeMatcherDefined(concrete(t, "$.items")))
	assert.False(t, New(scalar, AllowUnexpectedKeys, nil).TypeMatcherDefined(concrete(t, "$.id")))
}

func TestWithCategoryPreservesDiffAndPlugin(t *testing.T) {
	bodyCat := newCategory(t, nil)
	headerCat := newCategory(t, nil)
	ctx := New(bodyCat, NoUnexpectedKeys, map[string]any{"k": "v"})

	delegated := ctx.WithCategory(headerCat)
	assert.Equal(t, NoUnexpectedKeys, delegated.Diff)
	assert.Equal(t, map[string]any{"k": "v"}, delegated.Plugin)
	assert.Same(t, headerCat, delegated.Rules)
}

func TestMatcherIsDefinedFalseWithNilRules(t *testing.T) {
	ctx := New(nil, AllowUnexpectedKeys, nil)
	assert.False(t, ctx.MatcherIsDefined(concrete(t, "$.id")))
}
