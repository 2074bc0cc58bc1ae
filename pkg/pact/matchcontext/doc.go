// Package matchcontext carries the configuration and matching-rule lookup
// surface body and part matchers need to decide, at a given path, whether
// a rule applies and which one wins when several do.
//
// Grounded on spec.md §4.5 and the teacher's scattered "does a rule apply
// here" checks in its body/path matching helpers, generalized into one
// explicit context object threaded through every matcher call instead of
// being re-derived ad hoc at each call site.
package matchcontext
