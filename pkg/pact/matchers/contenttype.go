package matchers

import (
	"mime"
	"net/http"
)

// matchContentType runs magic detection over actual's bytes and compares
// the base media type (parameters stripped) against the configured one.
func matchContentType(want string, actual any) error {
	var data []byte
	switch v := actual.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return mismatch(ContentType, "expected bytes or a string to sniff, got %T", actual)
	}

	detected := http.DetectContentType(data)
	detectedBase, _, err := mime.ParseMediaType(detected)
	if err != nil {
		detectedBase = detected
	}

	wantBase, _, err := mime.ParseMediaType(want)
	if err != nil {
		wantBase = want
	}

	if detectedBase == wantBase {
		return nil
	}
	return mismatch(ContentType, "expected content detected as %q, got %q", wantBase, detectedBase)
}
