package model

import "github.com/pactcore/pact/pkg/pact/generators"

// Generators is the per-category, per-path generator container attached to
// an interaction part, mirroring MatchingRules' shape (spec.md §3: "map
// from category to map<docpath, generator>"). The inner map is keyed by
// rendered path string for the same JSON-round-trip reason as
// MatchingRuleCategory.
type Generators struct {
	Categories map[Category]map[string]generators.Generator
}

// NewGenerators returns an empty container.
func NewGenerators() *Generators {
	return &Generators{Categories: map[Category]map[string]generators.Generator{}}
}

// Add registers a generator at path within category.
func (g *Generators) Add(category Category, path string, gen generators.Generator) {
	m, ok := g.Categories[category]
	if !ok {
		m = map[string]generators.Generator{}
		g.Categories[category] = m
	}
	m[path] = gen
}

// Empty reports whether no category carries any generator.
func (g *Generators) Empty() bool {
	for _, m := range g.Categories {
		if len(m) > 0 {
			return false
		}
	}
	return true
}
