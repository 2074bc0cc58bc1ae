package generators

import (
	"fmt"
	"strconv"
	"strings"
)

// evalProviderState resolves a ProviderStateGenerator expression against
// ctx (the provider-state parameters supplied by ProviderStateExecutor).
// The expression language is a minimal "${name}" / "$name" interpolation
// over ctx, matching the shape consumed by fromProviderState(...) in the
// matching-rule-definition DSL (pkg/pact/generators/ruledef).
func evalProviderState(expression string, ctx Context) (any, error) {
	if expression == "" {
		return nil, genErr(ProviderStateGenerator, "empty expression")
	}

	trimmed := strings.TrimSpace(expression)
	if strings.HasPrefix(trimmed, "$") && !strings.ContainsAny(trimmed, " {}") {
		name := strings.TrimPrefix(trimmed, "$")
		v, ok := ctx[name]
		if !ok {
			return nil, genErr(ProviderStateGenerator, "no provider state parameter named %q", name)
		}
		return v, nil
	}

	// General case: interpolate every "${name}" occurrence into its string
	// form and return the resulting string.
	var sb strings.Builder
	i := 0
	for i < len(trimmed) {
		if trimmed[i] == '$' && i+1 < len(trimmed) && trimmed[i+1] == '{' {
			end := strings.IndexByte(trimmed[i+2:], '}')
			if end == -1 {
				return nil, genErr(ProviderStateGenerator, "unterminated ${...} in expression %q", expression)
			}
			name := trimmed[i+2 : i+2+end]
			v, ok := ctx[name]
			if !ok {
				return nil, genErr(ProviderStateGenerator, "no provider state parameter named %q", name)
			}
			sb.WriteString(stringifyContextValue(v))
			i += 2 + end + 1
			continue
		}
		sb.WriteByte(trimmed[i])
		i++
	}
	return sb.String(), nil
}

func stringifyContextValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
