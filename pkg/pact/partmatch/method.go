package partmatch

import "strings"

// MatchMethod compares two HTTP method tokens ASCII case-insensitively
// (methods are never subject to a matching rule — spec.md §4.7).
func MatchMethod(expected, actual string) *MethodMismatch {
	if strings.EqualFold(expected, actual) {
		return nil
	}
	return &MethodMismatch{Expected: expected, Actual: actual}
}
