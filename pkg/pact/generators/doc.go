// Package generators implements the closed catalog of value generators
// Pact interactions may configure: RandomInt, RandomDecimal,
// RandomHexadecimal, RandomString, Uuid, RandomBoolean, Date, Time,
// DateTime, Regex, ProviderStateGenerator, MockServerURL and
// ArrayContainsGenerator.
//
// Generators run in one of two modes — Consumer (the mock server producing
// an example to send) or Provider (the verifier producing a value to send
// to the real provider) — and some variants apply to only one mode.
// Generation mutates a copy of the expected interaction; the original is
// never touched (spec.md §3, "Lifecycle").
//
// Sub-package dateexpr implements the relative date/time expression
// language ("tomorrow+ 4 years @ 3 o'clock"); sub-package ruledef
// implements the inline matching-rule-definition DSL
// ("matching(type,'foo')") used inside example values.
package generators
