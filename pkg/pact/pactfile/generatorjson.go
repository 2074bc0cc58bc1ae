package pactfile

import (
	"fmt"

	"github.com/pactcore/pact/pkg/pact/generators"
)

// generatorJSON is the wire shape of one configured generator.
type generatorJSON struct {
	Type         string `json:"type"`
	Min          *int   `json:"min,omitempty"`
	Max          *int   `json:"max,omitempty"`
	Digits       *int   `json:"digits,omitempty"`
	Format       string `json:"format,omitempty"`
	Expression   string `json:"expression,omitempty"`
	Regex        string `json:"regex,omitempty"`
	UUIDFormat   string `json:"uuidFormat,omitempty"`
	Expr         string `json:"expr,omitempty"`
	DataType     string `json:"dataType,omitempty"`
	Example      string `json:"example,omitempty"`
	URLRegex     string `json:"urlRegex,omitempty"`
}

var genKindToType = map[generators.Kind]string{
	generators.RandomInt:             "RandomInt",
	generators.RandomDecimal:         "RandomDecimal",
	generators.RandomHexadecimal:     "RandomHexadecimal",
	generators.RandomString:          "RandomString",
	generators.Uuid:                  "Uuid",
	generators.RandomBoolean:         "RandomBoolean",
	generators.Date:                  "Date",
	generators.Time:                  "Time",
	generators.DateTime:              "DateTime",
	generators.Regex:                 "Regex",
	generators.ProviderStateGenerator: "ProviderState",
	generators.MockServerURL:         "MockServerURL",
	generators.ArrayContainsGenerator: "ArrayContains",
}

var genTypeToKind map[string]generators.Kind

func init() {
	genTypeToKind = make(map[string]generators.Kind, len(genKindToType))
	for k, v := range genKindToType {
		genTypeToKind[v] = k
	}
}

func encodeGenerator(g generators.Generator) (generatorJSON, error) {
	typ, ok := genKindToType[g.Kind]
	if !ok {
		return generatorJSON{}, fmt.Errorf("unknown generator kind %q", g.Kind)
	}
	out := generatorJSON{Type: typ}
	switch g.Kind {
	case generators.RandomInt:
		out.Min, out.Max = &g.Min, &g.Max
	case generators.RandomDecimal, generators.RandomHexadecimal, generators.RandomString:
		out.Digits = &g.Digits
	case generators.Uuid:
		out.UUIDFormat = string(g.UUIDFormat)
	case generators.Date, generators.Time, generators.DateTime:
		out.Format = g.Format
		out.Expression = g.Expression
	case generators.Regex:
		out.Regex = g.Pattern
	case generators.ProviderStateGenerator:
		out.Expr = g.PSExpression
		out.DataType = g.PSType
	case generators.MockServerURL:
		out.Example = g.Example
		out.URLRegex = g.URLRegex
	}
	return out, nil
}

func decodeGenerator(gj generatorJSON) (generators.Generator, error) {
	kind, ok := genTypeToKind[gj.Type]
	if !ok {
		return generators.Generator{}, fmt.Errorf("unknown generator type %q", gj.Type)
	}
	g := generators.Generator{Kind: kind}
	if gj.Min != nil {
		g.Min = *gj.Min
	}
	if gj.Max != nil {
		g.Max = *gj.Max
	}
	if gj.Digits != nil {
		g.Digits = *gj.Digits
	}
	g.UUIDFormat = generators.UUIDFormat(gj.UUIDFormat)
	g.Format = gj.Format
	g.Expression = gj.Expression
	g.Pattern = gj.Regex
	g.PSExpression = gj.Expr
	g.PSType = gj.DataType
	g.Example = gj.Example
	g.URLRegex = gj.URLRegex
	return g, nil
}
