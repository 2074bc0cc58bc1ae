package pactfile

import (
	"fmt"

	"github.com/pactcore/pact/pkg/pact/matchers"
)

// ruleJSON is the wire shape of one matching-rule object inside a
// "matchers" array (V3/V4) or, with the wrapper stripped, a V1/V2 flat
// rule-attribute object. Only the fields relevant to Match are populated on
// encode; unrecognised fields are ignored on decode per spec.md §4.4's
// back-compat rule.
type ruleJSON struct {
	Match       string          `json:"match"`
	Regex       string          `json:"regex,omitempty"`
	Min         *int            `json:"min,omitempty"`
	Max         *int            `json:"max,omitempty"`
	Format      string          `json:"format,omitempty"`
	Value       string          `json:"value,omitempty"`
	ContentType string          `json:"contentType,omitempty"`
	Status      string          `json:"status,omitempty"`
	StatusCodes []int           `json:"statusCodes,omitempty"`
	Each        *ruleListJSON   `json:"each,omitempty"`
	Variants    []variantJSON   `json:"variants,omitempty"`
}

type variantJSON struct {
	Index   int                        `json:"index"`
	Rules   map[string]ruleListJSON    `json:"rules,omitempty"`
}

type ruleListJSON struct {
	Matchers []ruleJSON `json:"matchers"`
	Combine  string     `json:"combine,omitempty"`
}

// kindToMatch and matchToKind translate between matchers.Kind and the wire
// "match" discriminator string. Grounded on the real Pact matching-rule
// wire vocabulary, adapted where this module's Kind names differ.
var kindToMatch = map[matchers.Kind]string{
	matchers.Equality:      "equality",
	matchers.Regex:         "regex",
	matchers.Type:          "type",
	matchers.MinType:       "minType",
	matchers.MaxType:       "maxType",
	matchers.MinMaxType:    "minMaxType",
	matchers.Include:       "include",
	matchers.Number:        "number",
	matchers.Integer:       "integer",
	matchers.Decimal:       "decimal",
	matchers.Boolean:       "boolean",
	matchers.Null:          "null",
	matchers.Date:          "date",
	matchers.Time:          "time",
	matchers.Timestamp:     "timestamp",
	matchers.ContentType:   "contentType",
	matchers.Values:        "values",
	matchers.ArrayContains: "arrayContains",
	matchers.Semver:        "semver",
	matchers.EachKey:       "eachKey",
	matchers.EachValue:     "eachValue",
	matchers.NotEmpty:      "notEmpty",
	matchers.StatusCode:    "statusCode",
}

var matchToKind map[string]matchers.Kind

func init() {
	matchToKind = make(map[string]matchers.Kind, len(kindToMatch))
	for k, v := range kindToMatch {
		matchToKind[v] = k
	}
}

func encodeRule(r matchers.Rule) (ruleJSON, error) {
	match, ok := kindToMatch[r.Kind]
	if !ok {
		return ruleJSON{}, fmt.Errorf("unknown matching-rule kind %q", r.Kind)
	}
	out := ruleJSON{Match: match}
	out.Regex = r.Pattern
	out.Min = r.Min
	out.Max = r.Max
	out.Format = r.Format
	out.Value = r.Substring
	out.ContentType = r.ContentType
	out.Status = string(r.StatusClass)
	out.StatusCodes = r.StatusCodes

	if r.Each != nil {
		each, err := encodeRuleList(*r.Each)
		if err != nil {
			return ruleJSON{}, err
		}
		out.Each = &each
	}
	if len(r.Variants) > 0 {
		out.Variants = make([]variantJSON, len(r.Variants))
		for i, v := range r.Variants {
			rules := make(map[string]ruleListJSON, len(v.Rules))
			for path, rl := range v.Rules {
				encoded, err := encodeRuleList(rl)
				if err != nil {
					return ruleJSON{}, err
				}
				rules[path] = encoded
			}
			out.Variants[i] = variantJSON{Index: v.TemplateIndex, Rules: rules}
		}
	}
	return out, nil
}

func decodeRule(rj ruleJSON) (matchers.Rule, error) {
	kind, ok := matchToKind[rj.Match]
	if !ok {
		return matchers.Rule{}, fmt.Errorf("unknown matching rule kind %q", rj.Match)
	}
	r := matchers.Rule{
		Kind:        kind,
		Pattern:     rj.Regex,
		Min:         rj.Min,
		Max:         rj.Max,
		Format:      rj.Format,
		Substring:   rj.Value,
		ContentType: rj.ContentType,
		StatusClass: matchers.StatusClass(rj.Status),
		StatusCodes: rj.StatusCodes,
	}
	if rj.Each != nil {
		each, err := decodeRuleList(*rj.Each)
		if err != nil {
			return matchers.Rule{}, err
		}
		r.Each = &each
	}
	if len(rj.Variants) > 0 {
		r.Variants = make([]matchers.ArrayContainsVariant, len(rj.Variants))
		for i, v := range rj.Variants {
			rules := make(matchers.RuleMap, len(v.Rules))
			for path, rl := range v.Rules {
				decoded, err := decodeRuleList(rl)
				if err != nil {
					return matchers.Rule{}, err
				}
				rules[path] = decoded
			}
			r.Variants[i] = matchers.ArrayContainsVariant{TemplateIndex: v.Index, Rules: rules}
		}
	}
	return r, nil
}

func encodeRuleList(rl matchers.RuleList) (ruleListJSON, error) {
	out := ruleListJSON{Matchers: make([]ruleJSON, len(rl.Rules)), Combine: string(rl.Logic)}
	for i, r := range rl.Rules {
		encoded, err := encodeRule(r)
		if err != nil {
			return ruleListJSON{}, err
		}
		out.Matchers[i] = encoded
	}
	if out.Combine == "" {
		out.Combine = string(matchers.And)
	}
	return out, nil
}

func decodeRuleList(rlj ruleListJSON) (matchers.RuleList, error) {
	out := matchers.RuleList{Rules: make([]matchers.Rule, len(rlj.Matchers)), Logic: matchers.Logic(rlj.Combine)}
	if out.Logic == "" {
		out.Logic = matchers.And
	}
	for i, rj := range rlj.Matchers {
		r, err := decodeRule(rj)
		if err != nil {
			return matchers.RuleList{}, err
		}
		out.Rules[i] = r
	}
	return out, nil
}
