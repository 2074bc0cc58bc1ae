package pactfile

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pactcore/pact/pkg/pact/model"
)

// classifyContentType decides how a body's bytes should ride on the wire,
// per spec.md §4.4: application/json (and +json suffixes) embed natively,
// other text/* and known textual types ride as a JSON string, everything
// else rides as base64. hint overrides an ambiguous content type.
func classifyContentType(contentType string, hint model.ContentTypeHint) string {
	if hint == model.HintText {
		return "text"
	}
	if hint == model.HintBinary {
		return "binary"
	}
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if semi := strings.IndexByte(ct, ';'); semi >= 0 {
		ct = ct[:semi]
	}
	switch {
	case ct == "":
		return "text"
	case ct == "application/json" || strings.HasSuffix(ct, "+json"):
		return "json"
	case strings.HasPrefix(ct, "text/"):
		return "text"
	case ct == "application/xml" || strings.HasSuffix(ct, "+xml"):
		return "text"
	case ct == "application/x-www-form-urlencoded":
		return "text"
	default:
		return "binary"
	}
}

// encodeBody renders b as the JSON value for a pact file's "body" field,
// reporting present=false when the field should be omitted entirely
// (the Missing variant).
func encodeBody(b model.Body) (value json.RawMessage, present bool, err error) {
	switch {
	case b.IsMissing():
		return nil, false, nil
	case b.IsNull():
		return json.RawMessage("null"), true, nil
	case b.IsEmpty():
		return json.RawMessage(`""`), true, nil
	}

	bytes := b.Bytes()
	switch classifyContentType(b.ContentType(), b.ContentTypeHint()) {
	case "json":
		if json.Valid(bytes) {
			return json.RawMessage(bytes), true, nil
		}
		// Malformed JSON body: fall through to carrying it as a string
		// rather than producing a corrupt pact file.
		encoded, err := json.Marshal(string(bytes))
		if err != nil {
			return nil, false, err
		}
		return json.RawMessage(encoded), true, nil
	case "text":
		encoded, err := json.Marshal(string(bytes))
		if err != nil {
			return nil, false, err
		}
		return json.RawMessage(encoded), true, nil
	default:
		encoded, err := json.Marshal(base64.StdEncoding.EncodeToString(bytes))
		if err != nil {
			return nil, false, err
		}
		return json.RawMessage(encoded), true, nil
	}
}

// decodeBody reconstructs a model.Body from a pact file's "body" field.
// present must report whether the field was in the source object at all;
// raw is its raw JSON value when present.
func decodeBody(raw json.RawMessage, present bool, contentType string, hint model.ContentTypeHint) (model.Body, error) {
	if !present || raw == nil {
		return model.MissingBody(), nil
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" {
		return model.NullBody(), nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return model.EmptyBody(), nil
		}
		if classifyContentType(contentType, hint) == "binary" {
			decoded, err := base64.StdEncoding.DecodeString(asString)
			if err != nil {
				return model.Body{}, fmt.Errorf("decoding base64 body: %w", err)
			}
			return model.PresentBody(decoded, contentType, hint), nil
		}
		return model.PresentBody([]byte(asString), contentType, hint), nil
	}

	// Not a JSON string: a native JSON structure (object, array, number,
	// bool) embedded directly, i.e. an application/json body.
	if trimmed == "" {
		return model.EmptyBody(), nil
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(trimmed)); err != nil {
		return model.Body{}, fmt.Errorf("decoding JSON body: %w", err)
	}
	return model.PresentBody(compact.Bytes(), contentType, hint), nil
}
