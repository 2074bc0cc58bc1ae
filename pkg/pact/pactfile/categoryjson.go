package pactfile

import (
	"encoding/json"
	"strings"

	"github.com/pactcore/pact/pkg/pact/matchers"
	"github.com/pactcore/pact/pkg/pact/model"
)

func matchersListOf(r matchers.Rule) matchers.RuleList {
	return matchers.RuleList{Rules: []matchers.Rule{r}, Logic: matchers.And}
}

// encodeMatchingRules renders a MatchingRules container for pact spec.
// V3/V4 use the nested {category: {path: {matchers: [...], combine}}}
// shape; V1/V2 use a flattened {"category.path": rule} shape carrying at
// most one rule per path (the pre-V3 format had no rule-list concept).
func encodeMatchingRules(mr *model.MatchingRules, spec model.PactSpecification) (json.RawMessage, error) {
	if mr == nil || mr.Empty() {
		return nil, nil
	}
	if spec.AtLeast(model.V3) {
		out := make(map[string]map[string]ruleListJSON, len(mr.Categories))
		for cat, category := range mr.Categories {
			if len(category.Rules) == 0 {
				continue
			}
			paths := make(map[string]ruleListJSON, len(category.Rules))
			for path, rl := range category.Rules {
				encoded, err := encodeRuleList(rl)
				if err != nil {
					return nil, err
				}
				paths[path] = encoded
			}
			out[string(cat)] = paths
		}
		return json.Marshal(out)
	}

	out := make(map[string]ruleJSON)
	for cat, category := range mr.Categories {
		for path, rl := range category.Rules {
			if len(rl.Rules) == 0 {
				continue
			}
			encoded, err := encodeRule(rl.Rules[0])
			if err != nil {
				return nil, err
			}
			out[string(cat)+"."+path] = encoded
		}
	}
	return json.Marshal(out)
}

func decodeMatchingRules(raw json.RawMessage, spec model.PactSpecification) (*model.MatchingRules, error) {
	mr := model.NewMatchingRules()
	if len(raw) == 0 {
		return mr, nil
	}

	if spec.AtLeast(model.V3) {
		var nested map[string]map[string]ruleListJSON
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, err
		}
		for cat, paths := range nested {
			category := mr.Category(model.Category(cat))
			for path, rlj := range paths {
				rl, err := decodeRuleList(rlj)
				if err != nil {
					return nil, err
				}
				category.AddRule(path, rl)
			}
		}
		return mr, nil
	}

	var flat map[string]ruleJSON
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}
	for key, rj := range flat {
		cat, path, ok := strings.Cut(key, ".")
		if !ok {
			cat, path = key, "$"
		}
		r, err := decodeRule(rj)
		if err != nil {
			return nil, err
		}
		category := mr.Category(model.Category(cat))
		category.AddRule(path, matchersListOf(r))
	}
	return mr, nil
}

// encodeGenerators renders a Generators container in its nested
// {category: {path: generator}} wire shape.
func encodeGenerators(g *model.Generators) (json.RawMessage, error) {
	if g == nil || g.Empty() {
		return nil, nil
	}
	out := make(map[string]map[string]generatorJSON, len(g.Categories))
	for cat, paths := range g.Categories {
		if len(paths) == 0 {
			continue
		}
		encodedPaths := make(map[string]generatorJSON, len(paths))
		for path, gen := range paths {
			encoded, err := encodeGenerator(gen)
			if err != nil {
				return nil, err
			}
			encodedPaths[path] = encoded
		}
		out[string(cat)] = encodedPaths
	}
	return json.Marshal(out)
}

func decodeGenerators(raw json.RawMessage) (*model.Generators, error) {
	gens := model.NewGenerators()
	if len(raw) == 0 {
		return gens, nil
	}
	var nested map[string]map[string]generatorJSON
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil, err
	}
	for cat, paths := range nested {
		for path, gj := range paths {
			gen, err := decodeGenerator(gj)
			if err != nil {
				return nil, err
			}
			gens.Add(model.Category(cat), path, gen)
		}
	}
	return gens, nil
}
