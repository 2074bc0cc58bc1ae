// Package partmatch implements the individual request/response/message
// part comparators — method, path, status, headers, query, metadata —
// that sit alongside bodymatch inside the top-level interaction matcher
// (spec.md §4.7).
//
// Grounded on the teacher's internal/matching/header.go, query.go and
// matcher.go (method/header/query boolean comparators, generalized here
// from pass/fail booleans into mismatch-collecting comparators) and
// golang.org/x/text/cases for Unicode-correct case folding of the
// `charset` parameter (header names arrive already lower-cased by
// model.Headers).
package partmatch
