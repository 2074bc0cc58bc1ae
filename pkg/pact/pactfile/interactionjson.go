package pactfile

import (
	"encoding/json"
	"fmt"

	"github.com/pactcore/pact/pkg/pact/model"
)

const (
	typeSyncHTTP     = "Synchronous/HTTP"
	typeAsyncMessage = "Asynchronous/Messages"
	typeSyncMessage  = "Synchronous/Messages"
)

type providerStateWire struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

func encodeProviderStates(ps []model.ProviderState) []providerStateWire {
	if len(ps) == 0 {
		return nil
	}
	out := make([]providerStateWire, len(ps))
	for i, s := range ps {
		out[i] = providerStateWire{Name: s.Name, Params: s.Params}
	}
	return out
}

func decodeProviderStates(ps []providerStateWire) []model.ProviderState {
	if len(ps) == 0 {
		return nil
	}
	out := make([]model.ProviderState, len(ps))
	for i, s := range ps {
		out[i] = model.ProviderState{Name: s.Name, Params: s.Params}
	}
	return out
}

// interactionWire is the union wire shape for all four interaction kinds.
// Type is set only for V4 interactions; its absence plus the presence of
// request/response fields identifies a V1-V3 RequestResponseInteraction,
// and a message pact (§4.5) identifies a V3 message via its "contents"
// field sitting at the top level instead of nested under request/response.
type interactionWire struct {
	Type                string              `json:"type,omitempty"`
	Key                 string              `json:"key,omitempty"`
	Pending             bool                `json:"pending,omitempty"`
	Comments            map[string]any      `json:"comments,omitempty"`
	Transport           string              `json:"transport,omitempty"`
	PluginConfiguration map[string]any      `json:"pluginConfiguration,omitempty"`
	InteractionMarkup   string              `json:"interactionMarkup,omitempty"`
	Description         string              `json:"description"`
	ProviderState       string              `json:"providerState,omitempty"`
	ProviderStates      []providerStateWire `json:"providerStates,omitempty"`
	Request             json.RawMessage     `json:"request,omitempty"`
	Response            json.RawMessage     `json:"response,omitempty"`
	Contents            json.RawMessage     `json:"contents,omitempty"`
	ContentType         string              `json:"contentType,omitempty"`
	Metadata            map[string]any      `json:"metadata,omitempty"`
	MatchingRules       json.RawMessage     `json:"matchingRules,omitempty"`
	Generators          json.RawMessage     `json:"generators,omitempty"`
}

func providerStatesOf(w *interactionWire) []model.ProviderState {
	if len(w.ProviderStates) > 0 {
		return decodeProviderStates(w.ProviderStates)
	}
	if w.ProviderState != "" {
		return []model.ProviderState{{Name: w.ProviderState}}
	}
	return nil
}

func encodeInteraction(i model.Interaction, spec model.PactSpecification) (*interactionWire, error) {
	switch i.Kind {
	case model.KindRequestResponse:
		ri := i.RequestResponse
		reqWire, err := encodeRequest(ri.Request, spec)
		if err != nil {
			return nil, err
		}
		respWire, err := encodeResponse(ri.Response, spec)
		if err != nil {
			return nil, err
		}
		reqRaw, err := json.Marshal(reqWire)
		if err != nil {
			return nil, err
		}
		respRaw, err := json.Marshal(respWire)
		if err != nil {
			return nil, err
		}
		return &interactionWire{
			Description:    ri.Description,
			ProviderStates: encodeProviderStates(ri.ProviderStates),
			Request:        reqRaw,
			Response:       respRaw,
		}, nil

	case model.KindSyncHTTP:
		si := i.SyncHTTP
		reqWire, err := encodeRequest(si.Request, spec)
		if err != nil {
			return nil, err
		}
		respWire, err := encodeResponse(si.Response, spec)
		if err != nil {
			return nil, err
		}
		reqRaw, err := json.Marshal(reqWire)
		if err != nil {
			return nil, err
		}
		respRaw, err := json.Marshal(respWire)
		if err != nil {
			return nil, err
		}
		return &interactionWire{
			Type:                typeSyncHTTP,
			Key:                 si.Key,
			Pending:             si.Pending,
			Comments:            si.Comments,
			Transport:           si.Transport,
			PluginConfiguration: si.PluginConfig,
			InteractionMarkup:   si.InteractionMarkup,
			Description:         si.Description,
			ProviderStates:      encodeProviderStates(si.ProviderStates),
			Request:             reqRaw,
			Response:            respRaw,
		}, nil

	case model.KindAsyncMessage:
		ai := i.AsyncMessage
		mw, err := encodeMessageContents(ai.Contents, spec)
		if err != nil {
			return nil, err
		}
		w := &interactionWire{
			Type:           typeAsyncMessage,
			Key:            ai.Key,
			Pending:        ai.Pending,
			Comments:       ai.Comments,
			Description:    ai.Description,
			ProviderStates: encodeProviderStates(ai.ProviderStates),
			Contents:       mw.Contents,
			ContentType:    mw.ContentType,
			Metadata:       mw.Metadata,
			MatchingRules:  mw.MatchingRules,
			Generators:     mw.Generators,
		}
		return w, nil

	case model.KindSyncMessage:
		si := i.SyncMessage
		reqWire, err := encodeMessageContents(si.Request, spec)
		if err != nil {
			return nil, err
		}
		reqRaw, err := json.Marshal(reqWire)
		if err != nil {
			return nil, err
		}
		respWires := make([]*messageWire, len(si.Response))
		for idx, r := range si.Response {
			rw, err := encodeMessageContents(r, spec)
			if err != nil {
				return nil, err
			}
			respWires[idx] = rw
		}
		respRaw, err := json.Marshal(respWires)
		if err != nil {
			return nil, err
		}
		return &interactionWire{
			Type:           typeSyncMessage,
			Key:            si.Key,
			Pending:        si.Pending,
			Comments:       si.Comments,
			Description:    si.Description,
			ProviderStates: encodeProviderStates(si.ProviderStates),
			Request:        reqRaw,
			Response:       respRaw,
		}, nil

	default:
		return nil, fmt.Errorf("unknown interaction kind %d", i.Kind)
	}
}

func decodeInteraction(w *interactionWire, spec model.PactSpecification, isMessagePact bool) (model.Interaction, error) {
	switch w.Type {
	case typeSyncHTTP:
		return decodeSyncHTTP(w, spec)
	case typeAsyncMessage:
		return decodeAsyncMessage(w, spec)
	case typeSyncMessage:
		return decodeSyncMessage(w, spec)
	case "":
		if isMessagePact || (w.Request == nil && w.Response == nil) {
			return decodeV3Message(w, spec)
		}
		return decodeRequestResponse(w, spec)
	default:
		return model.Interaction{}, fmt.Errorf("unknown interaction type %q", w.Type)
	}
}

func decodeRequestResponse(w *interactionWire, spec model.PactSpecification) (model.Interaction, error) {
	var reqW requestWire
	if err := json.Unmarshal(w.Request, &reqW); err != nil {
		return model.Interaction{}, fmt.Errorf("decoding request: %w", err)
	}
	var respW responseWire
	if err := json.Unmarshal(w.Response, &respW); err != nil {
		return model.Interaction{}, fmt.Errorf("decoding response: %w", err)
	}
	req, err := decodeRequest(&reqW, spec)
	if err != nil {
		return model.Interaction{}, err
	}
	resp, err := decodeResponse(&respW, spec)
	if err != nil {
		return model.Interaction{}, err
	}
	return model.Interaction{
		Kind: model.KindRequestResponse,
		RequestResponse: &model.RequestResponseInteraction{
			Description:    w.Description,
			ProviderStates: providerStatesOf(w),
			Request:        req,
			Response:       resp,
		},
	}, nil
}

func decodeSyncHTTP(w *interactionWire, spec model.PactSpecification) (model.Interaction, error) {
	var reqW requestWire
	if err := json.Unmarshal(w.Request, &reqW); err != nil {
		return model.Interaction{}, fmt.Errorf("decoding request: %w", err)
	}
	var respW responseWire
	if err := json.Unmarshal(w.Response, &respW); err != nil {
		return model.Interaction{}, fmt.Errorf("decoding response: %w", err)
	}
	req, err := decodeRequest(&reqW, spec)
	if err != nil {
		return model.Interaction{}, err
	}
	resp, err := decodeResponse(&respW, spec)
	if err != nil {
		return model.Interaction{}, err
	}
	return model.Interaction{
		Kind: model.KindSyncHTTP,
		SyncHTTP: &model.SyncHTTP{
			Key:               w.Key,
			Pending:           w.Pending,
			Comments:          w.Comments,
			Transport:         w.Transport,
			PluginConfig:      w.PluginConfiguration,
			InteractionMarkup: w.InteractionMarkup,
			Description:       w.Description,
			ProviderStates:    providerStatesOf(w),
			Request:           req,
			Response:          resp,
		},
	}, nil
}

func decodeAsyncMessage(w *interactionWire, spec model.PactSpecification) (model.Interaction, error) {
	mw := &messageWire{Contents: w.Contents, ContentType: w.ContentType, Metadata: w.Metadata, MatchingRules: w.MatchingRules, Generators: w.Generators}
	contents, err := decodeMessageContents(mw, spec)
	if err != nil {
		return model.Interaction{}, err
	}
	return model.Interaction{
		Kind: model.KindAsyncMessage,
		AsyncMessage: &model.AsyncMessage{
			Key:            w.Key,
			Pending:        w.Pending,
			Comments:       w.Comments,
			Description:    w.Description,
			ProviderStates: providerStatesOf(w),
			Contents:       contents,
		},
	}, nil
}

func decodeV3Message(w *interactionWire, spec model.PactSpecification) (model.Interaction, error) {
	mw := &messageWire{Contents: w.Contents, ContentType: w.ContentType, Metadata: w.Metadata, MatchingRules: w.MatchingRules, Generators: w.Generators}
	contents, err := decodeMessageContents(mw, spec)
	if err != nil {
		return model.Interaction{}, err
	}
	return model.Interaction{
		Kind: model.KindAsyncMessage,
		AsyncMessage: &model.AsyncMessage{
			Description:    w.Description,
			ProviderStates: providerStatesOf(w),
			Contents:       contents,
		},
	}, nil
}

func decodeSyncMessage(w *interactionWire, spec model.PactSpecification) (model.Interaction, error) {
	var reqW messageWire
	if err := json.Unmarshal(w.Request, &reqW); err != nil {
		return model.Interaction{}, fmt.Errorf("decoding message request: %w", err)
	}
	req, err := decodeMessageContents(&reqW, spec)
	if err != nil {
		return model.Interaction{}, err
	}
	var respWs []messageWire
	if len(w.Response) > 0 {
		if err := json.Unmarshal(w.Response, &respWs); err != nil {
			return model.Interaction{}, fmt.Errorf("decoding message responses: %w", err)
		}
	}
	resp := make([]*model.MessageContents, len(respWs))
	for i := range respWs {
		mc, err := decodeMessageContents(&respWs[i], spec)
		if err != nil {
			return model.Interaction{}, err
		}
		resp[i] = mc
	}
	return model.Interaction{
		Kind: model.KindSyncMessage,
		SyncMessage: &model.SyncMessage{
			Key:            w.Key,
			Pending:        w.Pending,
			Comments:       w.Comments,
			Description:    w.Description,
			ProviderStates: providerStatesOf(w),
			Request:        req,
			Response:       resp,
		},
	}, nil
}
