package model

// MessageContents is the transport-independent payload shape shared by V4
// asynchronous and synchronous messages: a body plus metadata, matching
// rules and generators, with no HTTP method/path/status/headers at all.
//
// Grounded on
// original_source/rust/pact_models/src/message.rs's Message struct and
// v4/message_parts.rs's MessageContents, collapsed into one Go type since
// this module has no separate V3-message-vs-V4-message-contents split (V3
// Message is represented here as an AsyncMessage with Key == "").
type MessageContents struct {
	Body          Body
	Metadata      map[string]any
	MatchingRules *MatchingRules
	Generators    *Generators
}

// NewMessageContents returns a MessageContents with initialized
// MatchingRules/Generators containers and a Missing body.
func NewMessageContents() *MessageContents {
	return &MessageContents{
		Body:          MissingBody(),
		MatchingRules: NewMatchingRules(),
		Generators:    NewGenerators(),
	}
}
