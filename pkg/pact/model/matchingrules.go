package model

import "github.com/pactcore/pact/pkg/pact/matchers"

// Category is the closed set of matching-rule/generator category names
// (spec.md §3).
type Category string

const (
	CategoryBody     Category = "body"
	CategoryHeader   Category = "header"
	CategoryQuery    Category = "query"
	CategoryPath     Category = "path"
	CategoryMethod   Category = "method"
	CategoryStatus   Category = "status"
	CategoryMetadata Category = "metadata"
	CategoryContent  Category = "content"
)

// MatchingRuleCategory is a named set of rule lists addressed by rendered
// path-expression string (the map key is the canonical Path.String() form,
// not a docpath.Path value, so it round-trips through JSON without a
// custom codec).
type MatchingRuleCategory struct {
	Name  Category
	Rules map[string]matchers.RuleList
}

// NewMatchingRuleCategory returns an empty category.
func NewMatchingRuleCategory(name Category) *MatchingRuleCategory {
	return &MatchingRuleCategory{Name: name, Rules: map[string]matchers.RuleList{}}
}

// AddRule registers rl at path, replacing whatever was there.
func (c *MatchingRuleCategory) AddRule(path string, rl matchers.RuleList) {
	c.Rules[path] = rl
}

// MatchingRules is the full set of rule categories attached to an
// interaction part. Invariant (spec.md §3): the path, method, and status
// categories contain at most one rule, always at the empty path "$".
type MatchingRules struct {
	Categories map[Category]*MatchingRuleCategory
}

// NewMatchingRules returns an empty container.
func NewMatchingRules() *MatchingRules {
	return &MatchingRules{Categories: map[Category]*MatchingRuleCategory{}}
}

// Category returns the named category, creating it empty if absent.
func (m *MatchingRules) Category(name Category) *MatchingRuleCategory {
	if c, ok := m.Categories[name]; ok {
		return c
	}
	c := NewMatchingRuleCategory(name)
	m.Categories[name] = c
	return c
}

// Empty reports whether no category carries any rule.
func (m *MatchingRules) Empty() bool {
	for _, c := range m.Categories {
		if len(c.Rules) > 0 {
			return false
		}
	}
	return true
}
