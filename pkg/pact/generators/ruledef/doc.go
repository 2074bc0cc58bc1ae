// Package ruledef implements the inline matching-rule-definition DSL used
// inside example values, e.g. `matching(type,'foo')`,
// `eachKey(matching(regex,'[A-Z]+','AB'))`, `atLeast(1)`.
//
// Grounded on
// original_source/rust/pact_models/src/matchingrules/expressions.rs for the
// grammar and the comma-merge semantics; implemented with a hand-rolled
// recursive-descent parser since no example repo in the retrieval pack
// parses this literal-call-syntax grammar and a general-purpose expression
// evaluator (e.g. an expr-lang library) would not enforce this DSL's fixed,
// closed set of six keywords and per-matcher argument shapes.
package ruledef
