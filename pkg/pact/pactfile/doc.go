// Package pactfile reads and writes pact JSON files across specification
// versions V1, V1.1, V2, V3 and V4, and implements the identity-keyed
// merge-on-write behaviour pact consumers rely on when multiple test runs
// append to the same file.
//
// Grounded on the teacher's pkg/config/loader.go (Read/Write/atomic-rename
// shape). Matching-rule configuration values are decoded strictly by
// type: a numeric field such as "min" given as a string is a decode error,
// not coerced.
package pactfile
