// Package plugin declares the downward interfaces spec.md §6 lists as
// implemented by collaborators, not by this module: a provider-state
// setup/teardown hook, a request rewrite hook, and a content-matcher
// plugin hook. The core never implements these; pkg/pact/matchcontext's
// Context.Plugin map is the opaque channel a ContentMatcher implementation
// reads, untouched by anything in this module.
package plugin

import "context"

// ProviderStateExecutor runs a named provider state's setup or teardown
// before/after an interaction is verified. setup is true for the
// "establish this state" call and false for teardown. The returned map
// feeds generator context values keyed by provider-state parameter name.
type ProviderStateExecutor interface {
	Call(ctx context.Context, interactionID, state string, setup bool, httpClient any) (map[string]any, error)
}

// RequestFilterExecutor lets a verifying test rewrite an actual request
// before it is compared against the expected one — e.g. to inject an
// auth header the pact fixture can't know in advance.
type RequestFilterExecutor interface {
	Call(ctx context.Context, request any) (any, error)
}

// ContentMatcher lets a plugin own both the decoding and comparison of a
// content type the core doesn't understand natively. ConfigureInteraction
// receives the declared content type and the interaction's raw plugin
// configuration, and returns the decoded contents plus whatever opaque
// state the plugin wants threaded through matchcontext.Context.Plugin for
// the subsequent match call.
type ContentMatcher interface {
	ConfigureInteraction(ctx context.Context, contentType string, config map[string]any) (contents any, pluginConfig map[string]any, err error)
}
