// Package matchers implements the closed catalog of matching-rule variants
// that Pact interactions may configure at a path: Equality, Regex, Type,
// the Min/Max/MinMax type-size rules, Include, the scalar-kind rules
// (Number, Integer, Decimal, Boolean, Null), Date/Time/Timestamp,
// ContentType, Values, ArrayContains, Semver, EachKey, EachValue, NotEmpty
// and StatusCode.
//
// Every variant is a pure predicate over an (expected, actual, cascaded)
// triple: it never mutates its inputs and never performs I/O. Rules that
// apply to composite values check at most one level here: Type and
// ArrayContains check the composite's own shape, Values checks each direct
// child by type, and EachKey/EachValue apply their nested rules to each
// direct key or value. Deeper recursion with the cascaded flag set is the
// body matcher's (pkg/pact/bodymatch) job, since only it walks the document tree.
package matchers
