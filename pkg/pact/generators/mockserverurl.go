package generators

import "regexp"

// evalMockServerURL substitutes the first capture group of regex (matched
// against example) with ctx["mockServerURL"], replicating the Consumer-mode
// behaviour of rewriting a recorded example URL's host/port to wherever the
// mock server actually bound this run.
func evalMockServerURL(example, pattern string, ctx Context) (string, error) {
	base, ok := ctx["mockServerURL"]
	if !ok {
		return "", genErr(MockServerURL, "no mockServerURL in generation context")
	}
	baseStr, ok := base.(string)
	if !ok {
		return "", genErr(MockServerURL, "mockServerURL in context is not a string")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", genErr(MockServerURL, "invalid regular expression %q: %v", pattern, err)
	}

	loc := re.FindStringSubmatchIndex(example)
	if loc == nil || len(loc) < 4 {
		return "", genErr(MockServerURL, "pattern %q did not match example %q with a capture group", pattern, example)
	}
	return example[:loc[2]] + baseStr + example[loc[3]:], nil
}
