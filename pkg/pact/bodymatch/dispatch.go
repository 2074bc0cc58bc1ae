package bodymatch

import (
	"net/http"
	"strings"

	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/model"
)

// Dispatch picks the matcher for a body pair by content type, falling back
// to magic detection (net/http.DetectContentType) when the declared type
// is ambiguous or absent. expectedContentType is the Content-Type the
// interaction was recorded with; it governs dispatch even when the actual
// side's own header differs — a differing actual Content-Type is itself
// reported as a body type mismatch rather than silently re-dispatched.
func Dispatch(ctx *matchcontext.Context, expectedContentType string, expected, actual model.Body) BodyMatchResult {
	switch {
	case expected.IsMissing() && actual.IsMissing():
		return ok()
	case expected.IsMissing():
		return ok()
	case expected.IsNull():
		if actual.IsNull() || actual.IsMissing() {
			return ok()
		}
		return typeMismatch(expectedContentType, actual.ContentType(), "expected a null body", nil, actual.Bytes())
	case expected.IsEmpty():
		if actual.IsEmpty() || actual.IsMissing() {
			return ok()
		}
		return typeMismatch(expectedContentType, actual.ContentType(), "expected an empty body", nil, actual.Bytes())
	case actual.IsMissing() || actual.IsNull():
		return typeMismatch(expectedContentType, actual.ContentType(), "actual body was missing or null", expected.Bytes(), nil)
	}

	expBase, _, _ := strings.Cut(strings.ToLower(expectedContentType), ";")
	actBase, _, _ := strings.Cut(strings.ToLower(actual.ContentType()), ";")
	expBase, actBase = strings.TrimSpace(expBase), strings.TrimSpace(actBase)
	if expBase != "" && actBase != "" && expBase != actBase {
		return typeMismatch(expectedContentType, actual.ContentType(), "expected body content type "+expBase+", got "+actBase, expected.Bytes(), actual.Bytes())
	}

	category := classify(expectedContentType, expected.ContentTypeHint(), expected.Bytes())
	switch category {
	case categoryJSON:
		return MatchJSON(ctx, expected.Bytes(), actual.Bytes())
	case categoryXML:
		return MatchXML(ctx, expected.Bytes(), actual.Bytes())
	case categoryFormURLEncoded:
		return MatchFormURLEncoded(ctx, expected.Bytes(), actual.Bytes())
	case categoryMultipart:
		return MatchMultipart(ctx, expectedContentType, expected.Bytes(), actual.Bytes())
	case categoryText:
		return MatchText(ctx, expected.Bytes(), actual.Bytes())
	default:
		return MatchBinary(expected.Bytes(), actual.Bytes())
	}
}

type contentCategory int

const (
	categoryBinary contentCategory = iota
	categoryJSON
	categoryXML
	categoryFormURLEncoded
	categoryMultipart
	categoryText
)

func classify(contentType string, hint model.ContentTypeHint, sample []byte) contentCategory {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if semi := strings.IndexByte(ct, ';'); semi >= 0 {
		ct = ct[:semi]
	}
	switch {
	case ct == "application/json" || strings.HasSuffix(ct, "+json"):
		return categoryJSON
	case ct == "application/xml" || strings.HasSuffix(ct, "+xml") || ct == "text/xml":
		return categoryXML
	case ct == "application/x-www-form-urlencoded":
		return categoryFormURLEncoded
	case strings.HasPrefix(ct, "multipart/"):
		return categoryMultipart
	case hint == model.HintText || strings.HasPrefix(ct, "text/"):
		return categoryText
	case hint == model.HintBinary:
		return categoryBinary
	case ct != "":
		return categoryBinary
	default:
		// No usable declared type: sniff it the way net/http would for an
		// undeclared response body.
		sniffed := http.DetectContentType(sample)
		if strings.HasPrefix(sniffed, "text/") {
			return categoryText
		}
		return categoryBinary
	}
}
