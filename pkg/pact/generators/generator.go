package generators

import "fmt"

// Kind identifies a generator variant. The set is closed.
type Kind string

const (
	RandomInt             Kind = "randomInt"
	RandomDecimal         Kind = "randomDecimal"
	RandomHexadecimal     Kind = "randomHexadecimal"
	RandomString          Kind = "randomString"
	Uuid                  Kind = "uuid"
	RandomBoolean         Kind = "randomBoolean"
	Date                  Kind = "date"
	Time                  Kind = "time"
	DateTime              Kind = "dateTime"
	Regex                 Kind = "regex"
	ProviderStateGenerator Kind = "providerState"
	MockServerURL         Kind = "mockServerURL"
	ArrayContainsGenerator Kind = "arrayContains"
)

// Mode is the evaluation context a generator runs under.
type Mode string

const (
	Consumer Mode = "consumer"
	Provider Mode = "provider"
)

// UUIDFormat selects the rendering of the Uuid generator's output.
type UUIDFormat string

const (
	UUIDSimple        UUIDFormat = "simple"
	UUIDLowerCaseHyphenated UUIDFormat = "lower-case-hyphenated"
	UUIDUpperCaseHyphenated UUIDFormat = "upper-case-hyphenated"
	UUIDURN           UUIDFormat = "URN"
)

// ArrayContainsGeneratorVariant pairs a template array index with the
// generators that produce its example value.
type ArrayContainsGeneratorVariant struct {
	TemplateIndex int
	Generators    map[string]Generator
}

// Generator is one configured generator variant together with its
// configuration. Only fields relevant to Kind are populated.
type Generator struct {
	Kind Kind

	// RandomInt.
	Min, Max int

	// RandomDecimal / RandomHexadecimal / RandomString: digit/char count.
	Digits int

	// Uuid.
	UUIDFormat UUIDFormat

	// Date / Time / DateTime.
	Format     string
	Expression string

	// Regex.
	Pattern string

	// ProviderStateGenerator.
	PSExpression string
	PSType       string

	// MockServerURL.
	Example string
	URLRegex string

	// ArrayContainsGenerator.
	Variants []ArrayContainsGeneratorVariant
}

// Modes reports which evaluation modes this generator variant applies to.
func (g Generator) Modes() []Mode {
	switch g.Kind {
	case ProviderStateGenerator:
		return []Mode{Provider}
	case MockServerURL:
		return []Mode{Consumer}
	default:
		return []Mode{Consumer, Provider}
	}
}

// AppliesTo reports whether this generator runs under mode.
func (g Generator) AppliesTo(mode Mode) bool {
	for _, m := range g.Modes() {
		if m == mode {
			return true
		}
	}
	return false
}

// Context is the evaluation context available to a generator: provider
// state parameters merged with ambient values such as the mock server's
// base URL. It is read-only during generation (spec.md §5).
type Context map[string]any

// GenerationError reports a failure to produce a value — an invalid
// configuration, an unmet precondition (e.g. ProviderStateGenerator run in
// Consumer mode), or an expression-language parse failure.
type GenerationError struct {
	Kind    Kind
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generator %s: %s", e.Kind, e.Message)
}

func genErr(kind Kind, format string, args ...any) error {
	return &GenerationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Generate produces a value for this generator under mode and ctx. If the
// generator does not apply to mode, it returns (nil, false, nil) so callers
// can leave the original value untouched.
func (g Generator) Generate(mode Mode, ctx Context) (value any, applied bool, err error) {
	if !g.AppliesTo(mode) {
		return nil, false, nil
	}

	switch g.Kind {
	case RandomInt:
		v, e := randomInt(g.Min, g.Max)
		return v, e == nil, e
	case RandomDecimal:
		v, e := randomDecimal(g.Digits)
		return v, e == nil, e
	case RandomHexadecimal:
		v, e := randomHexadecimal(g.Digits)
		return v, e == nil, e
	case RandomString:
		v, e := randomString(g.Digits)
		return v, e == nil, e
	case Uuid:
		v, e := generateUUID(g.UUIDFormat)
		return v, e == nil, e
	case RandomBoolean:
		return randomBoolean(), true, nil
	case Date, Time, DateTime:
		v, e := generateDateTime(g.Kind, g.Format, g.Expression, ctx)
		return v, e == nil, e
	case Regex:
		v, e := generateFromRegex(g.Pattern)
		return v, e == nil, e
	case ProviderStateGenerator:
		v, e := evalProviderState(g.PSExpression, ctx)
		return v, e == nil, e
	case MockServerURL:
		v, e := evalMockServerURL(g.Example, g.URLRegex, ctx)
		return v, e == nil, e
	case ArrayContainsGenerator:
		return nil, false, genErr(g.Kind, "structural: expand each Variants entry against its own array element, not via Generate")
	default:
		return nil, false, genErr(g.Kind, "unknown generator kind")
	}
}
