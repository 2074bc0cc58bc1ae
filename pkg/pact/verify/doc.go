// Package verify is the top-level interaction matcher (spec.md §4.8): it
// aggregates pkg/pact/partmatch and pkg/pact/bodymatch across the fields
// of a request, response, or message into a single ordered list of
// Mismatch values, one MatchRequest/MatchResponse/MatchMessage call per
// interaction half.
//
// Grounded on the teacher's internal/matching package (mockd-mockd), which
// plays the analogous "combine every field matcher into one pass" role via
// MatchBreakdown in nearmiss.go — that aggregator accumulates per-field
// FieldResults in source order and never short-circuits; MatchRequest and
// friends here follow the same left-to-right, no-short-circuit shape, but
// collect typed Mismatch variants instead of a scored FieldResult since
// there is no near-miss ranking requirement in this domain.
package verify
