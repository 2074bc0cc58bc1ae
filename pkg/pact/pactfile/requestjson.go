package pactfile

import (
	"encoding/json"

	"github.com/pactcore/pact/pkg/pact/model"
)

// requestWire and responseWire are the V1-V4 HTTP request/response wire
// shapes. Query and Headers delegate to model.Query/model.Headers' own
// MarshalJSON/UnmarshalJSON; body and the rule/generator containers need
// spec-version-aware handling so they are carried as raw JSON and
// converted by encode/decodeRequest.
type requestWire struct {
	Method        string          `json:"method,omitempty"`
	Path          string          `json:"path,omitempty"`
	Query         model.Query     `json:"query,omitempty"`
	Headers       *model.Headers  `json:"headers,omitempty"`
	Body          json.RawMessage `json:"body,omitempty"`
	MatchingRules json.RawMessage `json:"matchingRules,omitempty"`
	Generators    json.RawMessage `json:"generators,omitempty"`
}

type responseWire struct {
	Status        int             `json:"status,omitempty"`
	Headers       *model.Headers  `json:"headers,omitempty"`
	Body          json.RawMessage `json:"body,omitempty"`
	MatchingRules json.RawMessage `json:"matchingRules,omitempty"`
	Generators    json.RawMessage `json:"generators,omitempty"`
}

func contentTypeOf(h *model.Headers) string {
	if h == nil {
		return ""
	}
	if v, ok := h.Get("content-type"); ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

func encodeRequest(r *model.Request, spec model.PactSpecification) (*requestWire, error) {
	w := &requestWire{Method: r.Method, Path: r.Path, Query: r.Query, Headers: r.Headers}
	bodyRaw, present, err := encodeBody(r.Body)
	if err != nil {
		return nil, err
	}
	if present {
		w.Body = bodyRaw
	}
	if mr, err := encodeMatchingRules(r.MatchingRules, spec); err != nil {
		return nil, err
	} else {
		w.MatchingRules = mr
	}
	if gens, err := encodeGenerators(r.Generators); err != nil {
		return nil, err
	} else {
		w.Generators = gens
	}
	return w, nil
}

func decodeRequest(w *requestWire, spec model.PactSpecification) (*model.Request, error) {
	req := model.NewRequest(w.Method, w.Path)
	req.Query = w.Query
	if w.Headers != nil {
		req.Headers = w.Headers
	}
	body, err := decodeBody(w.Body, w.Body != nil, contentTypeOf(req.Headers), model.HintDefault)
	if err != nil {
		return nil, err
	}
	req.Body = body

	mr, err := decodeMatchingRules(w.MatchingRules, spec)
	if err != nil {
		return nil, err
	}
	req.MatchingRules = mr

	gens, err := decodeGenerators(w.Generators)
	if err != nil {
		return nil, err
	}
	req.Generators = gens
	return req, nil
}

func encodeResponse(r *model.Response, spec model.PactSpecification) (*responseWire, error) {
	w := &responseWire{Status: r.Status, Headers: r.Headers}
	bodyRaw, present, err := encodeBody(r.Body)
	if err != nil {
		return nil, err
	}
	if present {
		w.Body = bodyRaw
	}
	if mr, err := encodeMatchingRules(r.MatchingRules, spec); err != nil {
		return nil, err
	} else {
		w.MatchingRules = mr
	}
	if gens, err := encodeGenerators(r.Generators); err != nil {
		return nil, err
	} else {
		w.Generators = gens
	}
	return w, nil
}

func decodeResponse(w *responseWire, spec model.PactSpecification) (*model.Response, error) {
	resp := model.NewResponse(w.Status)
	if w.Headers != nil {
		resp.Headers = w.Headers
	}
	body, err := decodeBody(w.Body, w.Body != nil, contentTypeOf(resp.Headers), model.HintDefault)
	if err != nil {
		return nil, err
	}
	resp.Body = body

	mr, err := decodeMatchingRules(w.MatchingRules, spec)
	if err != nil {
		return nil, err
	}
	resp.MatchingRules = mr

	gens, err := decodeGenerators(w.Generators)
	if err != nil {
		return nil, err
	}
	resp.Generators = gens
	return resp, nil
}
