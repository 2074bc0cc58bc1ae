package matchers

import "fmt"

// Kind identifies a matching-rule variant. The set is closed: no caller may
// introduce a new Kind without changing this package.
type Kind string

const (
	Equality    Kind = "equality"
	Regex       Kind = "regex"
	Type        Kind = "type"
	MinType     Kind = "minType"
	MaxType     Kind = "maxType"
	MinMaxType  Kind = "minMaxType"
	Include     Kind = "include"
	Number      Kind = "number"
	Integer     Kind = "integer"
	Decimal     Kind = "decimal"
	Boolean     Kind = "boolean"
	Null        Kind = "null"
	Date        Kind = "date"
	Time        Kind = "time"
	Timestamp   Kind = "timestamp"
	ContentType Kind = "contentType"
	Values      Kind = "values"
	ArrayContains Kind = "arrayContains"
	Semver      Kind = "semver"
	EachKey     Kind = "eachKey"
	EachValue   Kind = "eachValue"
	NotEmpty    Kind = "notEmpty"
	StatusCode  Kind = "statusCode"
)

// Logic is the combination strategy for a RuleList with more than one rule.
type Logic string

const (
	And Logic = "AND"
	Or  Logic = "OR"
)

// StatusClass is the closed set of HTTP status classifications accepted by
// the StatusCode rule.
type StatusClass string

const (
	StatusInformation StatusClass = "information"
	StatusSuccess     StatusClass = "success"
	StatusRedirect    StatusClass = "redirect"
	StatusClientError StatusClass = "clientError"
	StatusServerError StatusClass = "serverError"
	StatusNonError    StatusClass = "nonError"
	StatusError       StatusClass = "error"
	StatusExplicit    StatusClass = "statusCodes"
)

// ArrayContainsVariant describes one element template accepted by an
// ArrayContains rule: the index into the interaction's example array this
// variant was derived from, and the matching rules scoped to it. Generator
// configuration for the variant is opaque here — pkg/pact/generators owns
// interpreting it when producing a consumer-side example.
type ArrayContainsVariant struct {
	TemplateIndex int
	Rules         RuleMap
	Generators    map[string]any
}

// RuleMap is a path-expression-string-keyed set of rule lists, used inside
// ArrayContains variants and nowhere else: unlike MatchingRuleCategory (C4),
// it has no category dimension because a variant is always scoped to body.
type RuleMap map[string]RuleList

// Rule is one configured matching-rule variant together with its
// configuration. Only the fields relevant to Kind are populated; the zero
// value of the others is ignored.
type Rule struct {
	Kind Kind

	// Regex, ContentType, Semver-adjacent configuration.
	Pattern     string
	ContentType string

	// MinType / MaxType / MinMaxType.
	Min *int
	Max *int

	// Include.
	Substring string

	// Date / Time / Timestamp. Java-SimpleDateFormat-compatible dialect.
	Format string

	// StatusCode.
	StatusClass StatusClass
	StatusCodes []int

	// ArrayContains.
	Variants []ArrayContainsVariant

	// EachKey / EachValue: the nested matching-rule definition applied to
	// every key or every value of the actual map.
	Each *RuleList
}

// RuleList is a configured set of rules at a single path, combined under
// And (all must pass) or Or (any must pass; on success collected errors are
// dropped).
type RuleList struct {
	Rules    []Rule
	Logic    Logic
	Cascaded bool
}

// MatchError is the error type returned by a failed Rule predicate. It
// never carries a stack trace or wraps an unrelated cause: rule mismatches
// are expected, routine outcomes, not exceptional ones.
type MatchError struct {
	Rule    Kind
	Message string
}

func (e *MatchError) Error() string {
	if e.Rule == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Rule, e.Message)
}

func mismatch(kind Kind, format string, args ...any) *MatchError {
	return &MatchError{Rule: kind, Message: fmt.Sprintf(format, args...)}
}

// Apply runs every rule in the list against (expected, actual) and combines
// their results per Logic. Under And, the first failure is returned (later
// rules still run so every message can be surfaced by the caller via
// ApplyAll). Under Or, success of any one rule discards every collected
// error.
func (rl RuleList) Apply(expected, actual any, cascaded bool) error {
	errs := rl.ApplyAll(expected, actual, cascaded || rl.Cascaded)
	if len(errs) == 0 {
		return nil
	}
	if rl.Logic == Or {
		// ApplyAll only returns a non-empty slice here when every rule
		// failed (success short-circuits inside ApplyAll for Or), so this
		// is reachable only when all rules failed.
		return errs[0]
	}
	return errs[0]
}

// ApplyAll runs every rule and returns every failure (nil for success). For
// Or logic, it returns an empty slice as soon as one rule succeeds.
func (rl RuleList) ApplyAll(expected, actual any, cascaded bool) []error {
	var errs []error
	for _, r := range rl.Rules {
		if err := r.Match(expected, actual, cascaded); err != nil {
			errs = append(errs, err)
			continue
		}
		if rl.Logic == Or {
			return nil
		}
	}
	return errs
}
