package model

import (
	"fmt"
	"reflect"
	"strings"
)

// Pact is the top-level aggregate: a consumer/provider pair, its recorded
// interactions, free-form metadata and the spec version it targets.
// Invariant (spec.md §3): interactions have unique identities within a
// pact, enforced by Merge on write.
type Pact struct {
	Consumer     Consumer
	Provider     Provider
	Interactions []Interaction
	Metadata     map[string]any
	Spec         PactSpecification
}

func interactionIdentityKey(i Interaction) string {
	if key, ok := i.Key(); ok {
		return "key:" + key
	}
	desc, states := i.Identity()
	return "id:" + desc + "|" + strings.Join(states, "\x1f")
}

func interactionsEqual(a, b Interaction) bool {
	return reflect.DeepEqual(a, b)
}

// MergeOptions configures Pact.Merge's conflict handling.
type MergeOptions struct {
	// Override: when two pacts carry an interaction with the same identity
	// but different content, the incoming (b) interaction wins instead of
	// the merge failing.
	Override bool
}

// ConflictError reports an identity collision between two non-identical
// interactions during Merge, with Override not set.
type ConflictError struct {
	Description    string
	ProviderStates []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting interaction %q (states: %v): existing and incoming content differ", e.Description, e.ProviderStates)
}

// Merge combines a (the pact already on disk) and b (the pact just
// recorded), matching interactions by identity (spec.md §4.4: description +
// ordered provider-state names, or the V4 key when present). Interactions
// present in only one side are kept as-is. Interactions present in both
// with identical content collapse to one copy. Interactions present in
// both with different content are a fatal ConflictError unless
// opts.Override is set, in which case b's copy wins.
func Merge(a, b *Pact, opts MergeOptions) (*Pact, error) {
	merged := &Pact{
		Consumer: a.Consumer,
		Provider: a.Provider,
		Metadata: a.Metadata,
		Spec:     a.Spec,
	}
	if b.Spec > merged.Spec {
		merged.Spec = b.Spec
	}

	byIdentity := make(map[string]Interaction, len(a.Interactions))
	order := make([]string, 0, len(a.Interactions))
	for _, ia := range a.Interactions {
		key := interactionIdentityKey(ia)
		byIdentity[key] = ia
		order = append(order, key)
	}

	for _, ib := range b.Interactions {
		key := interactionIdentityKey(ib)
		existing, ok := byIdentity[key]
		switch {
		case !ok:
			order = append(order, key)
			byIdentity[key] = ib
		case interactionsEqual(existing, ib):
			// identical: nothing to do
		case opts.Override:
			byIdentity[key] = ib
		default:
			desc, states := ib.Identity()
			return nil, &ConflictError{Description: desc, ProviderStates: states}
		}
	}

	merged.Interactions = make([]Interaction, 0, len(order))
	for _, key := range order {
		merged.Interactions = append(merged.Interactions, byIdentity[key])
	}
	return merged, nil
}
