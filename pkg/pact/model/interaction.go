package model

// InteractionKind discriminates Interaction's four payload variants
// (spec.md §3).
type InteractionKind int

const (
	KindRequestResponse InteractionKind = iota
	KindSyncHTTP
	KindAsyncMessage
	KindSyncMessage
)

// RequestResponseInteraction is the V1-V3 HTTP request/response pact
// interaction shape.
type RequestResponseInteraction struct {
	Description    string
	ProviderStates []ProviderState
	Request        *Request
	Response       *Response
}

// SyncHTTP is the V4 HTTP interaction shape: adds a stable key, a pending
// flag (ignored in matching, informative only), free-form comments, a
// transport label, opaque plugin configuration, and rendered interaction
// markup (e.g. Markdown for a provider-facing UI — not interpreted by this
// module).
type SyncHTTP struct {
	Key                string
	Pending            bool
	Comments           map[string]any
	Transport          string
	PluginConfig       map[string]any
	InteractionMarkup  string
	Description        string
	ProviderStates     []ProviderState
	Request            *Request
	Response           *Response
}

// AsyncMessage is the V4 asynchronous (message-queue style) interaction
// shape: one side only, no request/response pairing.
type AsyncMessage struct {
	Key            string
	Pending        bool
	Comments       map[string]any
	Description    string
	ProviderStates []ProviderState
	Contents       *MessageContents
}

// SyncMessage is the V4 synchronous message interaction shape (e.g.
// gRPC-style request/stream-of-responses over a message transport rather
// than HTTP): one request message and one or more response messages.
type SyncMessage struct {
	Key            string
	Pending        bool
	Comments       map[string]any
	Description    string
	ProviderStates []ProviderState
	Request        *MessageContents
	Response       []*MessageContents
}

// Interaction is the tagged union over the four interaction shapes.
// Exactly one of the payload pointers matching Kind is populated.
type Interaction struct {
	Kind            InteractionKind
	RequestResponse *RequestResponseInteraction
	SyncHTTP        *SyncHTTP
	AsyncMessage    *AsyncMessage
	SyncMessage     *SyncMessage
}

// description and providerStates extract the common fields every variant
// carries, regardless of which payload is populated.
func (i Interaction) description() string {
	switch i.Kind {
	case KindRequestResponse:
		return i.RequestResponse.Description
	case KindSyncHTTP:
		return i.SyncHTTP.Description
	case KindAsyncMessage:
		return i.AsyncMessage.Description
	case KindSyncMessage:
		return i.SyncMessage.Description
	default:
		return ""
	}
}

func (i Interaction) providerStates() []ProviderState {
	switch i.Kind {
	case KindRequestResponse:
		return i.RequestResponse.ProviderStates
	case KindSyncHTTP:
		return i.SyncHTTP.ProviderStates
	case KindAsyncMessage:
		return i.AsyncMessage.ProviderStates
	case KindSyncMessage:
		return i.SyncMessage.ProviderStates
	default:
		return nil
	}
}

// Identity returns the (description, ordered provider-state names) tuple
// used to match interactions across pact files for merge-on-write, when no
// V4 key is present (spec.md §3/§4.4).
func (i Interaction) Identity() (description string, states []string) {
	ps := i.providerStates()
	names := make([]string, len(ps))
	for idx, s := range ps {
		names[idx] = s.Name
	}
	return i.description(), names
}

// Key returns the V4 stable key, if this interaction is a V4 variant with
// a non-empty key. Non-V4 interactions, and V4 interactions without an
// explicit key, return ("", false) and callers fall back to Identity.
func (i Interaction) Key() (string, bool) {
	switch i.Kind {
	case KindSyncHTTP:
		if i.SyncHTTP.Key != "" {
			return i.SyncHTTP.Key, true
		}
	case KindAsyncMessage:
		if i.AsyncMessage.Key != "" {
			return i.AsyncMessage.Key, true
		}
	case KindSyncMessage:
		if i.SyncMessage.Key != "" {
			return i.SyncMessage.Key, true
		}
	}
	return "", false
}
