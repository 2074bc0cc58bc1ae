package docpath

import "github.com/beevik/etree"

// ResolveXML walks an XML element tree (github.com/beevik/etree) and
// enumerates every concrete Path this path expression reaches.
//
// XML addressing follows the same Root/Field/Index/Star/StarIndex grammar
// as JSON, with two XML-specific conventions: a Field token named "#text"
// addresses an element's character data rather than a child element, and a
// Field token beginning with "@" (e.g. "@id", "@ns:lang") addresses an
// attribute by its qualified name rather than a child element.
func (p Path) ResolveXML(root *etree.Element) []Path {
	if len(p) == 0 || p[0].Kind != Root {
		return nil
	}
	return resolveXMLFrom(p[1:], Path{RootToken}, root)
}

func resolveXMLFrom(rest Path, prefix Path, el *etree.Element) []Path {
	if el == nil {
		return nil
	}
	if len(rest) == 0 {
		out := make(Path, len(prefix))
		copy(out, prefix)
		return []Path{out}
	}

	tok := rest[0]
	remainder := rest[1:]

	switch tok.Kind {
	case Field:
		if tok.Name == "#text" {
			if len(remainder) != 0 {
				return nil
			}
			return []Path{append(append(Path{}, prefix...), tok)}
		}
		if len(tok.Name) > 0 && tok.Name[0] == '@' {
			if el.SelectAttr(tok.Name[1:]) == nil {
				return nil
			}
			if len(remainder) != 0 {
				return nil
			}
			return []Path{append(append(Path{}, prefix...), tok)}
		}
		children := el.SelectElements(tok.Name)
		if len(children) == 0 {
			return nil
		}
		return resolveXMLFrom(remainder, append(append(Path{}, prefix...), tok), children[0])

	case Index:
		children := el.ChildElements()
		if tok.Idx < 0 || tok.Idx >= len(children) {
			return nil
		}
		return resolveXMLFrom(remainder, append(append(Path{}, prefix...), tok), children[tok.Idx])

	case Star:
		var results []Path
		for _, child := range el.ChildElements() {
			results = append(results, resolveXMLFrom(remainder, append(append(Path{}, prefix...), FieldToken(child.Tag)), child)...)
		}
		for _, attr := range el.Attr {
			if len(remainder) != 0 {
				continue
			}
			qname := attr.Key
			if attr.Space != "" {
				qname = attr.Space + ":" + attr.Key
			}
			results = append(results, append(append(Path{}, prefix...), FieldToken("@"+qname)))
		}
		return results

	case StarIndex:
		children := el.ChildElements()
		var results []Path
		for i, child := range children {
			results = append(results, resolveXMLFrom(remainder, append(append(Path{}, prefix...), IndexToken(i)), child)...)
		}
		return results

	default:
		return nil
	}
}
