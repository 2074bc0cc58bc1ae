// Package model holds the pact data model: consumers, providers, the
// spec-version enum, the OptionalBody tagged union, Headers/Query, provider
// states, matching-rule/generator containers, and the four-variant
// Interaction union aggregated into a Pact.
//
// Values constructed here are immutable for the purposes of matching —
// generation produces a mutated copy, it never writes back into a Pact
// loaded from disk (see pkg/pact/generators and pkg/pact/verify).
package model
