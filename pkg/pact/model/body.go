package model

// ContentTypeHint disambiguates TEXT from BINARY when the content type
// alone is ambiguous (e.g. an unrecognised application/* type).
type ContentTypeHint int

const (
	HintDefault ContentTypeHint = iota
	HintText
	HintBinary
)

type bodyKind int

const (
	bodyMissing bodyKind = iota
	bodyEmpty
	bodyNull
	bodyPresent
)

// Body is the OptionalBody tagged union from spec.md §3: Missing means no
// body attribute existed in the source at all; Null is an explicit JSON
// null; Empty is present but zero-length; Present carries the raw bytes
// plus an optional authoritative content type and hint.
//
// Grounded on the teacher's pkg/mock/types.go style of a single struct with
// an internal discriminant and accessor methods, rather than the Go
// interface-per-variant idiom: Body values are copied frequently during
// matching and generation, so a plain value type is cheaper than a boxed
// interface here.
type Body struct {
	kind            bodyKind
	bytes           []byte
	contentType     string
	contentTypeHint ContentTypeHint
}

// MissingBody is the canonical "no body attribute present" value.
func MissingBody() Body { return Body{kind: bodyMissing} }

// NullBody is the canonical "explicit JSON null" value.
func NullBody() Body { return Body{kind: bodyNull} }

// EmptyBody is the canonical "present, zero bytes" value.
func EmptyBody() Body { return Body{kind: bodyEmpty} }

// PresentBody wraps raw bytes with an optional authoritative content type.
func PresentBody(b []byte, contentType string, hint ContentTypeHint) Body {
	if len(b) == 0 {
		return Body{kind: bodyEmpty, contentType: contentType, contentTypeHint: hint}
	}
	return Body{kind: bodyPresent, bytes: b, contentType: contentType, contentTypeHint: hint}
}

func (b Body) IsMissing() bool { return b.kind == bodyMissing }
func (b Body) IsNull() bool    { return b.kind == bodyNull }
func (b Body) IsEmpty() bool   { return b.kind == bodyEmpty }
func (b Body) Present() bool   { return b.kind == bodyPresent }

// Bytes returns the body's raw bytes. Missing and Null bodies return nil;
// Empty returns a non-nil zero-length slice.
func (b Body) Bytes() []byte {
	switch b.kind {
	case bodyEmpty:
		return []byte{}
	case bodyPresent:
		return b.bytes
	default:
		return nil
	}
}

// ContentType returns the authoritative content type, if one was recorded.
func (b Body) ContentType() string { return b.contentType }

// ContentTypeHint returns the TEXT/BINARY disambiguation hint.
func (b Body) ContentTypeHint() ContentTypeHint { return b.contentTypeHint }

// WithBytes returns a copy of b with different bytes, preserving its
// content-type metadata — used by generators to produce a mutated copy of
// an expected body without touching the original (spec.md §3's lifecycle
// invariant).
func (b Body) WithBytes(bytes []byte) Body {
	if len(bytes) == 0 {
		return Body{kind: bodyEmpty, contentType: b.contentType, contentTypeHint: b.contentTypeHint}
	}
	return Body{kind: bodyPresent, bytes: bytes, contentType: b.contentType, contentTypeHint: b.contentTypeHint}
}
