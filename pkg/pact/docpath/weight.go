package docpath

// Weight values for a single token-pair comparison. Star/StarIndex match
// anything but contribute less specificity than an exact Field/Index/Root
// match, so a more specific rule outranks a wildcard rule addressing the
// same concrete position.
const (
	weightExact    = 2
	weightWildcard = 1
	weightNone     = 0
)

// Weight compares this Path (a matching-rule path expression, which may
// contain Star/StarIndex wildcards) against a concrete path (no wildcards,
// as resolved from an actual document) and returns the total weight and
// whether every token paired and the rule path "covers" the concrete path.
//
// A concrete path shorter than the rule path can never match: Weight
// returns (0, false) in that case. A concrete path longer than the rule
// path is allowed — the rule path is treated as addressing a prefix, which
// lets object/array rules cascade onto their descendants.
func (p Path) Weight(concrete Path) (weight int, matched bool) {
	if len(concrete) < len(p) {
		return 0, false
	}

	total := 0
	for i, rt := range p {
		ct := concrete[i]
		w, ok := tokenWeight(rt, ct)
		if !ok {
			return 0, false
		}
		total += w
	}
	return total, true
}

func tokenWeight(rule, actual Token) (int, bool) {
	switch rule.Kind {
	case Root:
		if actual.Kind == Root {
			return weightExact, true
		}
		return 0, false
	case Field:
		if actual.Kind == Field && actual.Name == rule.Name {
			return weightExact, true
		}
		return 0, false
	case Index:
		if actual.Kind == Index && actual.Idx == rule.Idx {
			return weightExact, true
		}
		return 0, false
	case Star:
		if actual.Kind == Field || actual.Kind == Index {
			return weightWildcard, true
		}
		return 0, false
	case StarIndex:
		if actual.Kind == Index || actual.Kind == StarIndex {
			return weightWildcard, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// BestMatch chooses the higher-weighted, then longer (more specific),
// candidate path expression for a concrete path. It returns the index of
// the winner in candidates, or -1 if none of them cover the concrete path.
//
// This implements the tie-break described in spec.md §4.2: among rules
// whose path expression covers a given concrete position, the rule with
// the higher weight wins; if weights tie, the rule with the longer (more
// specific) path wins.
func BestMatch(candidates []Path, concrete Path) int {
	best := -1
	bestWeight := -1
	bestLen := -1
	for i, cand := range candidates {
		w, ok := cand.Weight(concrete)
		if !ok {
			continue
		}
		if w > bestWeight || (w == bestWeight && len(cand) > bestLen) {
			best = i
			bestWeight = w
			bestLen = len(cand)
		}
	}
	return best
}
