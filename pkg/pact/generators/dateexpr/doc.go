// Package dateexpr implements the relative date/time expression language
// used to configure Date, Time and DateTime generators — expressions like
// "tomorrow+ 4 years" or "@ 3 o'clock + 40 milliseconds" evaluated against
// a base instant.
//
// Grounded on original_source/rust/pact_models/src/generators/datetime_expressions.rs
// for the grammar and the worked examples in its doc comment; this package
// implements the same grammar with a hand-rolled recursive-descent parser,
// since no expression-parsing library in the retrieval pack models this
// specific date-arithmetic grammar, and renders parse errors as
// carets-under-source diagnostics per spec.md §4.3 rather than pulling in
// an `ariadne`-equivalent crate (none was retrieved).
package dateexpr
