package ruledef

import (
	"fmt"

	"github.com/pactcore/pact/pkg/pact/generators"
	"github.com/pactcore/pact/pkg/pact/matchers"
)

// ValueType classifies the primitive an expr produced, for the promotion
// merge rule applied when multiple comma-separated expressions configure
// the same example value.
type ValueType int

const (
	Unknown ValueType = iota
	Boolean
	Number
	Integer
	Decimal
	String
)

// Definition is the parsed result of one matching-rule-definition
// expression (or a comma-separated sequence of them, already merged).
type Definition struct {
	Rules     matchers.RuleList
	Value     any
	HasValue  bool
	Generator *generators.Generator
	ValueType ValueType

	// Warnings collects non-fatal merge conflicts (spec.md §4.3: "the later
	// one is discarded with a warning") and the warning for notEmpty(null),
	// which can never match.
	Warnings []string
}

// DefinitionError reports a malformed matching-rule-definition expression,
// carrying the offending span per spec.md §7's configuration-error
// requirement.
type DefinitionError struct {
	Expr string
	Pos  int
	Note string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("invalid matching-rule definition %q at position %d: %s", e.Expr, e.Pos, e.Note)
}

// Diagnostic renders a carets-under-source presentation.
func (e *DefinitionError) Diagnostic() string {
	caret := make([]byte, e.Pos)
	for i := range caret {
		caret[i] = ' '
	}
	return fmt.Sprintf("%s\n%s^\nnote: %s", e.Expr, string(caret), e.Note)
}
