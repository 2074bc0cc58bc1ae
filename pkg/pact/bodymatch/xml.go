package bodymatch

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/pactcore/pact/pkg/pact/docpath"
	"github.com/pactcore/pact/pkg/pact/matchcontext"
)

func decodeXML(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	return doc, nil
}

// MatchXML implements the namespace-aware XML body match (spec.md §4.6).
// Element identity is local-name plus resolved namespace URI; attribute
// order never matters. Child elements are always compared by position: no
// matching rule makes their order irrelevant.
func MatchXML(ctx *matchcontext.Context, expectedBytes, actualBytes []byte) BodyMatchResult {
	expDoc, expErr := decodeXML(expectedBytes)
	actDoc, actErr := decodeXML(actualBytes)
	if expErr != nil || actErr != nil {
		return fromMismatches(map[string][]Mismatch{
			"$": {{Path: "$", Message: fmt.Sprintf("invalid XML body: expected parse error=%v, actual parse error=%v", expErr, actErr)}},
		})
	}

	expRoot, actRoot := expDoc.Root(), actDoc.Root()
	root := docpath.Path{docpath.RootToken}
	var out map[string][]Mismatch
	switch {
	case expRoot == nil && actRoot == nil:
		return ok()
	case expRoot == nil || actRoot == nil:
		return fromMismatches(addMismatch(nil, Mismatch{Path: "$", Message: "one body has no root element"}))
	}
	out = matchXMLElement(ctx, root, expRoot, actRoot, out)
	return fromMismatches(out)
}

func elementIdentity(e *etree.Element) (local, ns string) {
	return e.Tag, e.NamespaceURI()
}

func matchXMLElement(ctx *matchcontext.Context, path docpath.Path, expected, actual *etree.Element, out map[string][]Mismatch) map[string][]Mismatch {
	expLocal, expNS := elementIdentity(expected)
	actLocal, actNS := elementIdentity(actual)
	if expLocal != actLocal || expNS != actNS {
		out = addMismatch(out, Mismatch{
			Path:     path.String(),
			Message:  fmt.Sprintf("element mismatch: expected {%s}%s, got {%s}%s", expNS, expLocal, actNS, actLocal),
			Expected: expNS + ":" + expLocal,
			Actual:   actNS + ":" + actLocal,
		})
		return out
	}

	out = matchXMLAttributes(ctx, path, expected, actual, out)
	out = matchXMLText(ctx, path, expected, actual, out)
	out = matchXMLChildren(ctx, path, expected, actual, out)
	return out
}

// attrKey renders an attribute's qualified name the way it appeared in the
// source: etree splits a qualified name into Attr.Space (the prefix) and
// Attr.Key (the local part), so the two are re-joined as "prefix:local".
// Attributes are identified by that prefixed name, not by the namespace URI
// the prefix resolves to.
func attrKey(a etree.Attr) string {
	if a.Space != "" {
		return a.Space + ":" + a.Key
	}
	return a.Key
}

func matchXMLAttributes(ctx *matchcontext.Context, path docpath.Path, expected, actual *etree.Element, out map[string][]Mismatch) map[string][]Mismatch {
	// Namespace declarations (xmlns, xmlns:prefix) are not compared as
	// attributes; namespaces are already part of element identity.
	isNSDecl := func(a etree.Attr) bool {
		return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
	}
	actAttrs := make(map[string]string, len(actual.Attr))
	for _, a := range actual.Attr {
		if !isNSDecl(a) {
			actAttrs[attrKey(a)] = a.Value
		}
	}
	for _, a := range expected.Attr {
		if isNSDecl(a) {
			continue
		}
		key := attrKey(a)
		attrPath := appendToken(path, docpath.FieldToken("@"+key))
		actVal, present := actAttrs[key]
		if !present {
			out = addMismatch(out, Mismatch{Path: attrPath.String(), Message: fmt.Sprintf("expected attribute %q was missing", key), Expected: a.Value})
			continue
		}
		out = matchStringValue(ctx, attrPath, a.Value, actVal, out)
		delete(actAttrs, key)
	}
	if ctx != nil && ctx.Diff == matchcontext.NoUnexpectedKeys {
		for key, val := range actAttrs {
			attrPath := appendToken(path, docpath.FieldToken("@"+key))
			out = addMismatch(out, Mismatch{Path: attrPath.String(), Message: fmt.Sprintf("unexpected attribute %q", key), Actual: val})
		}
	}
	return out
}

func matchXMLText(ctx *matchcontext.Context, path docpath.Path, expected, actual *etree.Element, out map[string][]Mismatch) map[string][]Mismatch {
	if len(expected.ChildElements()) > 0 {
		// An element carrying child elements is addressed structurally;
		// whitespace-only text between them isn't a meaningful leaf value.
		return out
	}
	expText := strings.TrimSpace(expected.Text())
	actText := strings.TrimSpace(actual.Text())
	if expText == "" && actText == "" {
		return out
	}
	textPath := appendToken(path, docpath.FieldToken("#text"))
	return matchStringValue(ctx, textPath, expText, actText, out)
}

func matchXMLChildren(ctx *matchcontext.Context, path docpath.Path, expected, actual *etree.Element, out map[string][]Mismatch) map[string][]Mismatch {
	expChildren := expected.ChildElements()
	actChildren := actual.ChildElements()
	if len(expChildren) != len(actChildren) {
		out = addMismatch(out, Mismatch{Path: path.String(), Message: fmt.Sprintf("child element count mismatch: expected %d, got %d", len(expChildren), len(actChildren))})
	}
	n := len(expChildren)
	if len(actChildren) < n {
		n = len(actChildren)
	}
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		local, ns := elementIdentity(expChildren[i])
		key := ns + ":" + local
		idx := counts[key]
		counts[key] = idx + 1
		childPath := appendToken(path, docpath.FieldToken(local))
		childPath = appendToken(childPath, docpath.IndexToken(idx))
		out = matchXMLElement(ctx, childPath, expChildren[i], actChildren[i], out)
	}
	return out
}
