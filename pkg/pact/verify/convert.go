package verify

import (
	"sort"

	"github.com/pactcore/pact/pkg/pact/bodymatch"
	"github.com/pactcore/pact/pkg/pact/partmatch"
)

// convertBody flattens a BodyMatchResult into the verify package's own
// Mismatch variants. ResultBodyMismatches is keyed by path with no
// ordering guarantee (it's a Go map); paths are sorted for a
// deterministic, reproducible Mismatches slice, then each path's
// mismatches are appended in the recursive order the body matcher
// produced them.
func convertBody(result bodymatch.BodyMatchResult) []Mismatch {
	switch result.Kind {
	case bodymatch.ResultOK:
		return nil
	case bodymatch.ResultBodyTypeMismatch:
		return []Mismatch{{
			Kind:         BodyTypeMismatchKind,
			Expected:     result.ExpectedContentType,
			Actual:       result.ActualContentType,
			Message:      result.Message,
			ExpectedBody: result.ExpectedBytes,
			ActualBody:   result.ActualBytes,
		}}
	case bodymatch.ResultBodyMismatches:
		paths := make([]string, 0, len(result.Mismatches))
		for p := range result.Mismatches {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		out := make([]Mismatch, 0, len(result.Mismatches))
		for _, p := range paths {
			for _, m := range result.Mismatches[p] {
				out = append(out, Mismatch{
					Kind:     BodyMismatchKind,
					Path:     m.Path,
					Expected: m.Expected,
					Actual:   m.Actual,
					Message:  m.String(),
				})
			}
		}
		return out
	default:
		return nil
	}
}

func convertMethod(m *partmatch.MethodMismatch) []Mismatch {
	if m == nil {
		return nil
	}
	return []Mismatch{{Kind: MethodMismatchKind, Expected: m.Expected, Actual: m.Actual}}
}

func convertPath(m *partmatch.PathMismatch) []Mismatch {
	if m == nil {
		return nil
	}
	return []Mismatch{{Kind: PathMismatchKind, Expected: m.Expected, Actual: m.Actual, Message: m.Message}}
}

func convertStatus(m *partmatch.StatusMismatch) []Mismatch {
	if m == nil {
		return nil
	}
	return []Mismatch{{Kind: StatusMismatchKind, Expected: m.Expected, Actual: m.Actual, Message: m.Message}}
}

func convertQuery(ms []partmatch.QueryMismatch) []Mismatch {
	out := make([]Mismatch, len(ms))
	for i, m := range ms {
		out[i] = Mismatch{Kind: QueryMismatchKind, Parameter: m.Parameter, Expected: m.Expected, Actual: m.Actual, Message: m.Message}
	}
	return out
}

func convertHeaders(ms []partmatch.HeaderMismatch) []Mismatch {
	out := make([]Mismatch, len(ms))
	for i, m := range ms {
		out[i] = Mismatch{Kind: HeaderMismatchKind, Key: m.Key, Expected: m.Expected, Actual: m.Actual, Message: m.Message}
	}
	return out
}

func convertMetadata(ms []partmatch.MetadataMismatch) []Mismatch {
	out := make([]Mismatch, len(ms))
	for i, m := range ms {
		out[i] = Mismatch{Kind: MetadataMismatchKind, Key: m.Key, Expected: m.Expected, Actual: m.Actual, Message: m.Message}
	}
	return out
}
