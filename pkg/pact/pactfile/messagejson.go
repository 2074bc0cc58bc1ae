package pactfile

import (
	"encoding/json"

	"github.com/pactcore/pact/pkg/pact/model"
)

// messageWire is the wire shape shared by V3 messages and V4 message
// contents: a body (under "contents"), free-form metadata, and the usual
// rule/generator containers — no method/path/status at all.
type messageWire struct {
	Contents      json.RawMessage `json:"contents,omitempty"`
	ContentType   string          `json:"contentType,omitempty"`
	Metadata      map[string]any  `json:"metadata,omitempty"`
	MatchingRules json.RawMessage `json:"matchingRules,omitempty"`
	Generators    json.RawMessage `json:"generators,omitempty"`
}

func encodeMessageContents(mc *model.MessageContents, spec model.PactSpecification) (*messageWire, error) {
	w := &messageWire{Metadata: mc.Metadata, ContentType: mc.Body.ContentType()}
	bodyRaw, present, err := encodeBody(mc.Body)
	if err != nil {
		return nil, err
	}
	if present {
		w.Contents = bodyRaw
	}
	if mr, err := encodeMatchingRules(mc.MatchingRules, spec); err != nil {
		return nil, err
	} else {
		w.MatchingRules = mr
	}
	if gens, err := encodeGenerators(mc.Generators); err != nil {
		return nil, err
	} else {
		w.Generators = gens
	}
	return w, nil
}

func decodeMessageContents(w *messageWire, spec model.PactSpecification) (*model.MessageContents, error) {
	mc := model.NewMessageContents()
	mc.Metadata = w.Metadata
	body, err := decodeBody(w.Contents, w.Contents != nil, w.ContentType, model.HintDefault)
	if err != nil {
		return nil, err
	}
	mc.Body = body

	mr, err := decodeMatchingRules(w.MatchingRules, spec)
	if err != nil {
		return nil, err
	}
	mc.MatchingRules = mr

	gens, err := decodeGenerators(w.Generators)
	if err != nil {
		return nil, err
	}
	mc.Generators = gens
	return mc, nil
}
