// Package-level Decode/Encode implement the top-level pact file shape:
// consumer, provider, an interactions (or messages) array, metadata
// carrying the spec version, and the V1-V4 dispatch rules of spec.md §4.4.
package pactfile

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pactcore/pact/pkg/pact/model"
)

// ErrInvalidYAML is returned by ParseYAML when data isn't well-formed YAML.
var ErrInvalidYAML = errors.New("invalid YAML syntax")

type pactWire struct {
	Consumer     model.Consumer    `json:"consumer"`
	Provider     model.Provider    `json:"provider"`
	Interactions []json.RawMessage `json:"interactions,omitempty"`
	Messages     []json.RawMessage `json:"messages,omitempty"`
	Metadata     map[string]any    `json:"metadata,omitempty"`
}

func specFromMetadata(meta map[string]any) model.PactSpecification {
	section, ok := meta["pactSpecification"]
	if !ok {
		return model.V3
	}
	obj, ok := section.(map[string]any)
	if !ok {
		return model.V3
	}
	version, _ := obj["version"].(string)
	return model.ParsePactSpecification(version)
}

func metadataWithSpec(existing map[string]any, spec model.PactSpecification) map[string]any {
	out := make(map[string]any, len(existing)+1)
	for k, v := range existing {
		out[k] = v
	}
	out["pactSpecification"] = map[string]any{"version": spec.String()}
	return out
}

// Decode parses a pact file's JSON bytes into a Pact.
func Decode(data []byte) (*model.Pact, error) {
	var w pactWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding pact file: %w", err)
	}
	spec := specFromMetadata(w.Metadata)
	isMessagePact := len(w.Messages) > 0

	rawInteractions := w.Interactions
	if isMessagePact {
		rawInteractions = w.Messages
	}

	interactions := make([]model.Interaction, 0, len(rawInteractions))
	for idx, raw := range rawInteractions {
		var iw interactionWire
		if err := json.Unmarshal(raw, &iw); err != nil {
			return nil, fmt.Errorf("decoding interaction %d: %w", idx, err)
		}
		interaction, err := decodeInteraction(&iw, spec, isMessagePact)
		if err != nil {
			return nil, fmt.Errorf("decoding interaction %d: %w", idx, err)
		}
		interactions = append(interactions, interaction)
	}

	return &model.Pact{
		Consumer:     w.Consumer,
		Provider:     w.Provider,
		Interactions: interactions,
		Metadata:     w.Metadata,
		Spec:         spec,
	}, nil
}

// Encode renders a Pact to its JSON file bytes for p.Spec.
func Encode(p *model.Pact) ([]byte, error) {
	isMessagePact := p.Spec == model.V3 && allAsyncMessages(p.Interactions)

	rawInteractions := make([]json.RawMessage, len(p.Interactions))
	for idx, i := range p.Interactions {
		iw, err := encodeInteraction(i, p.Spec)
		if err != nil {
			return nil, fmt.Errorf("encoding interaction %d: %w", idx, err)
		}
		raw, err := json.Marshal(iw)
		if err != nil {
			return nil, fmt.Errorf("encoding interaction %d: %w", idx, err)
		}
		rawInteractions[idx] = raw
	}

	w := pactWire{
		Consumer: p.Consumer,
		Provider: p.Provider,
		Metadata: metadataWithSpec(p.Metadata, p.Spec),
	}
	if isMessagePact {
		w.Messages = rawInteractions
	} else {
		w.Interactions = rawInteractions
	}

	out, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding pact file: %w", err)
	}
	return out, nil
}

// ParseYAML parses a pact file authored as YAML (an auxiliary format for
// hand-written test fixtures — canonical pact files on disk stay JSON per
// spec.md §6). It decodes through the same JSON wire shape Decode uses,
// mirroring the teacher's config.ParseYAML/ParseJSON split in
// pkg/config/loader.go.
func ParseYAML(data []byte) (*model.Pact, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("converting YAML pact file to JSON: %w", err)
	}
	return Decode(jsonBytes)
}

// ToYAML renders p as YAML, for the same auxiliary-format use case as
// ParseYAML.
func ToYAML(p *model.Pact) ([]byte, error) {
	jsonBytes, err := Encode(p)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(jsonBytes, &v); err != nil {
		return nil, fmt.Errorf("converting pact JSON to YAML: %w", err)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding pact file as YAML: %w", err)
	}
	return out, nil
}

func allAsyncMessages(interactions []model.Interaction) bool {
	if len(interactions) == 0 {
		return false
	}
	for _, i := range interactions {
		if i.Kind != model.KindAsyncMessage || i.AsyncMessage.Key != "" {
			return false
		}
	}
	return true
}
