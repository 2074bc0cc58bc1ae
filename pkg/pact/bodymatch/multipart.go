package bodymatch

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
	"github.com/pactcore/pact/pkg/pact/model"
)

// MatchMultipart walks both multipart bodies part-by-part with the stdlib
// streaming reader — no goroutine needed, mime/multipart.Reader.NextPart
// already gives the single-threaded cooperative iteration the matcher
// wants. Parts are identified by their Content-Disposition "name", falling
// back to positional index when a part carries none; headers on a part are
// matched value by value under "$.<part>.<header>[i]" with the body rules
// of ctx, the part's own body is matched recursively by self-dispatch on its own
// content type. Content-Type/Content-Disposition/Content-Transfer-Encoding
// values on the actual side are never required to equal the expected
// side's verbatim.
func MatchMultipart(ctx *matchcontext.Context, expectedContentType string, expectedBytes, actualBytes []byte) BodyMatchResult {
	expBoundary, err := boundaryOf(expectedContentType)
	if err != nil {
		return typeMismatch(expectedContentType, "", fmt.Sprintf("reading multipart boundary: %v", err), expectedBytes, actualBytes)
	}

	expParts, err := readParts(expectedBytes, expBoundary)
	if err != nil {
		return fromMismatches(addMismatch(nil, Mismatch{Path: "$", Message: fmt.Sprintf("invalid expected multipart body: %v", err)}))
	}
	// The actual body is read with the boundary from the expected
	// Content-Type; the actual side's own Content-Type is not consulted, so
	// an actual body written with a different boundary fails to parse.
	actBoundary, err := boundaryOf(expectedContentType)
	if err != nil {
		actBoundary = expBoundary
	}
	actParts, err := readParts(actualBytes, actBoundary)
	if err != nil {
		return fromMismatches(addMismatch(nil, Mismatch{Path: "$", Message: fmt.Sprintf("invalid actual multipart body: %v", err)}))
	}

	actByName := make(map[string]*multipartPart, len(actParts))
	for _, p := range actParts {
		actByName[p.name] = p
	}

	var out map[string][]Mismatch
	for i, exp := range expParts {
		name := exp.name
		if name == "" {
			name = fmt.Sprintf("%d", i)
		}
		var act *multipartPart
		present := false
		if exp.name != "" {
			act, present = actByName[exp.name]
		} else if i < len(actParts) {
			act = actParts[i]
			present = true
		}
		partPath := docpath.Path{docpath.RootToken, docpath.FieldToken(name)}
		if !present {
			out = addMismatch(out, Mismatch{Path: partPath.String(), Message: fmt.Sprintf("expected part %q was missing", name)})
			continue
		}
		out = mergeMismatches(out, matchMultipartPart(ctx, partPath, exp, act).Mismatches)
	}
	return fromMismatches(out)
}

type multipartPart struct {
	name        string
	contentType string
	headers     map[string][]string
	body        []byte
}

func boundaryOf(contentType string) (string, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", err
	}
	boundary, ok := params["boundary"]
	if !ok {
		return "", fmt.Errorf("content type %q has no boundary parameter", contentType)
	}
	return boundary, nil
}

func readParts(data []byte, boundary string) ([]*multipartPart, error) {
	if boundary == "" {
		return nil, fmt.Errorf("empty multipart boundary")
	}
	r := multipart.NewReader(bytes.NewReader(data), boundary)
	var parts []*multipartPart
	for {
		p, err := r.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		body, err := io.ReadAll(p)
		if err != nil {
			return nil, err
		}
		_, params, _ := mime.ParseMediaType(p.Header.Get("Content-Disposition"))
		parts = append(parts, &multipartPart{
			name:        params["name"],
			contentType: p.Header.Get("Content-Type"),
			headers:     map[string][]string(p.Header),
			body:        body,
		})
	}
	return parts, nil
}

func matchMultipartPart(ctx *matchcontext.Context, path docpath.Path, expected, actual *multipartPart) BodyMatchResult {
	var out map[string][]Mismatch
	for key, vals := range expected.headers {
		if strings.EqualFold(key, "Content-Type") || strings.EqualFold(key, "Content-Disposition") || strings.EqualFold(key, "Content-Transfer-Encoding") {
			continue
		}
		headerPath := appendToken(path, docpath.FieldToken(key))
		actVals, present := actual.headers[key]
		if !present {
			out = addMismatch(out, Mismatch{Path: headerPath.String(), Message: fmt.Sprintf("expected header %q was missing on part", key)})
			continue
		}
		n := len(vals)
		if len(actVals) < n {
			n = len(actVals)
		}
		for i := 0; i < n; i++ {
			elemPath := appendToken(headerPath, docpath.IndexToken(i))
			out = matchStringValue(ctx, elemPath, vals[i], actVals[i], out)
		}
	}

	ct := expected.contentType
	if ct == "" {
		ct = "text/plain"
	}
	expBody := model.PresentBody(expected.body, ct, model.HintDefault)
	actBody := model.PresentBody(actual.body, ct, model.HintDefault)
	bodyResult := Dispatch(ctx, ct, expBody, actBody)
	out = mergeMismatches(out, reparent(path, bodyResult.Mismatches))
	if bodyResult.Kind == ResultBodyTypeMismatch {
		out = addMismatch(out, Mismatch{Path: path.String(), Message: bodyResult.Message})
	}
	return fromMismatches(out)
}

// reparent rewrites mismatch paths produced against a part's own body (each
// rooted at "$") so they read as positions under partPath instead, e.g.
// "$.id" under part "field" becomes "$.field.id".
func reparent(partPath docpath.Path, mismatches map[string][]Mismatch) map[string][]Mismatch {
	if len(mismatches) == 0 {
		return nil
	}
	prefix := partPath.String()
	out := make(map[string][]Mismatch, len(mismatches))
	for key, ms := range mismatches {
		newKey := prefix + strings.TrimPrefix(key, "$")
		rewritten := make([]Mismatch, len(ms))
		for i, m := range ms {
			m.Path = newKey
			rewritten[i] = m
		}
		out[newKey] = rewritten
	}
	return out
}
