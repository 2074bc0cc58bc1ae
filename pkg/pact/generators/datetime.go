package generators

import (
	"strings"
	"time"

	"github.com/pactcore/pact/internal/javadate"
	"github.com/pactcore/pact/pkg/pact/generators/dateexpr"
)

// baseInstant resolves the evaluation base for a date/time expression: the
// ctx["now"] value if the caller supplied one (tests, and provider-state
// bound generation, want this to be deterministic), otherwise wall-clock
// time in UTC.
func baseInstant(ctx Context) time.Time {
	if ctx != nil {
		if v, ok := ctx["now"]; ok {
			if t, ok := v.(time.Time); ok {
				return t
			}
		}
	}
	return time.Now().UTC()
}

func generateDateTime(kind Kind, format, expr string, ctx Context) (string, error) {
	base := baseInstant(ctx)
	result := base
	if expr != "" {
		evaluated, err := dateexpr.Eval(expr, base)
		if err != nil {
			return "", genErr(kind, "%v", err)
		}
		result = evaluated
	}

	if format == "" {
		format = javadate.DefaultFormat(strings.ToLower(string(kind)))
	}
	layout := javadate.ToGoLayout(format)
	return result.Format(layout), nil
}
