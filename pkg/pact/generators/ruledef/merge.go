package ruledef

import "github.com/pactcore/pact/pkg/pact/matchers"

// merge combines two expr results from the same comma-separated definition
// per spec.md §4.3: rule lists append (both sets of rules must hold);
// a second, conflicting example value or generator is discarded and a
// warning recorded rather than rejecting the whole definition; ValueType is
// promoted to whichever side ranks higher (String dominates; among numeric
// kinds Decimal > Integer > Number > Boolean > Unknown).
func merge(a, b Definition) Definition {
	out := Definition{
		Rules: matchers.RuleList{
			Rules: append(append([]matchers.Rule{}, a.Rules.Rules...), b.Rules.Rules...),
			Logic: matchers.And,
		},
		Value:     a.Value,
		HasValue:  a.HasValue,
		Generator: a.Generator,
		ValueType: a.ValueType,
		Warnings:  append(append([]string{}, a.Warnings...), b.Warnings...),
	}

	if b.HasValue {
		if !out.HasValue {
			out.Value = b.Value
			out.HasValue = true
		} else {
			out.Warnings = append(out.Warnings, "conflicting example value in matching-rule definition: later value discarded")
		}
	}

	if b.Generator != nil {
		if out.Generator == nil {
			out.Generator = b.Generator
		} else {
			out.Warnings = append(out.Warnings, "conflicting generator in matching-rule definition: later generator discarded")
		}
	}

	if b.ValueType > out.ValueType {
		out.ValueType = b.ValueType
	}

	return out
}
