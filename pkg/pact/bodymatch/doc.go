// Package bodymatch implements per-content-type body matching: JSON
// (recursive, cascading), XML (namespace-aware), form-urlencoded, MIME
// multipart, plain text, and binary, dispatched by content type with a
// magic-detection fallback (spec.md §4.6).
//
// Grounded on the teacher's internal/matching/jsonpath.go (JSON path
// evaluation shape), pkg/soap/xpath.go and pkg/soap/handler.go (namespace-
// aware XML element comparison), and pkg/validation/formats.go (content
// sniffing style).
package bodymatch
