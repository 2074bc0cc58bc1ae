package bodymatch

import (
	"fmt"

	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
)

// MatchText compares a plain-text body as a single leaf value at "$",
// honoring a matcher configured at the root path (e.g. a Regex rule)
// before falling back to byte-for-byte equality.
func MatchText(ctx *matchcontext.Context, expectedBytes, actualBytes []byte) BodyMatchResult {
	path := docpath.Path{docpath.RootToken}
	var out map[string][]Mismatch
	out = matchStringValue(ctx, path, string(expectedBytes), string(actualBytes), out)
	return fromMismatches(out)
}

// MatchBinary compares a binary body by byte equality; no matching rule
// can meaningfully apply beneath a single opaque blob.
func MatchBinary(expectedBytes, actualBytes []byte) BodyMatchResult {
	if len(expectedBytes) == len(actualBytes) {
		equal := true
		for i := range expectedBytes {
			if expectedBytes[i] != actualBytes[i] {
				equal = false
				break
			}
		}
		if equal {
			return ok()
		}
	}
	return fromMismatches(map[string][]Mismatch{
		"$": {{Path: "$", Message: fmt.Sprintf("binary body mismatch: expected %d byte(s), got %d byte(s)", len(expectedBytes), len(actualBytes))}},
	})
}
