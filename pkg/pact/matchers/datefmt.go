package matchers

import (
	"time"

	"github.com/pactcore/pact/internal/javadate"
)

func matchDateTime(kind Kind, format string, actual any) error {
	if format == "" {
		format = javadate.DefaultFormat(string(kind))
	}
	s := toDisplayString(actual)
	layout := javadate.ToGoLayout(format)
	if _, err := time.Parse(layout, s); err != nil {
		return mismatch(kind, "expected %q to match format %q: %v", s, format, err)
	}
	return nil
}
