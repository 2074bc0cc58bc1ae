package model

import "fmt"

// PactSpecification is the ordered set of pact file format versions this
// module can read and write.
type PactSpecification int

const (
	V1 PactSpecification = iota
	V1_1
	V2
	V3
	V4
)

func (s PactSpecification) String() string {
	switch s {
	case V1:
		return "1.0.0"
	case V1_1:
		return "1.1.0"
	case V2:
		return "2.0.0"
	case V3:
		return "3.0.0"
	case V4:
		return "4.0"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Before reports whether s is strictly older than other.
func (s PactSpecification) Before(other PactSpecification) bool { return s < other }

// AtLeast reports whether s is other or newer.
func (s PactSpecification) AtLeast(other PactSpecification) bool { return s >= other }

// ParsePactSpecification maps a `pactSpecification.version` metadata string
// to its enum value. Unrecognized strings default to V3, matching spec.md
// §4.4's "V3 if absent" fallback for any value this parser cannot place.
func ParsePactSpecification(version string) PactSpecification {
	switch version {
	case "1.0.0", "1.0", "1":
		return V1
	case "1.1.0", "1.1":
		return V1_1
	case "2.0.0", "2.0", "2":
		return V2
	case "3.0.0", "3.0", "3":
		return V3
	case "4.0", "4.0.0", "4":
		return V4
	default:
		return V3
	}
}

// Consumer identifies the consuming party in a pact.
type Consumer struct {
	Name string `json:"name"`
}

// Provider identifies the providing party in a pact.
type Provider struct {
	Name string `json:"name"`
}

// ProviderState is a named fixture precondition with optional parameters,
// set up by the collaborator-owned ProviderStateExecutor (pkg/pact/plugin)
// before an interaction is replayed.
type ProviderState struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}
