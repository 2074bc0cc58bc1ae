package docpath

// Resolve walks a decoded JSON document (the generic `any` shape produced by
// encoding/json.Unmarshal or github.com/ohler55/ojg/oj.Parse — both decode
// objects to map[string]interface{} and arrays to []interface{}) and
// enumerates every concrete Path that this path expression reaches. A path
// with no Star/StarIndex tokens resolves to at most one concrete path; a
// path with wildcards can resolve to many, including zero if the wildcard
// has no children at that position.
func (p Path) Resolve(doc any) []Path {
	if len(p) == 0 {
		return nil
	}
	if p[0].Kind != Root {
		return nil
	}
	return resolveFrom(p[1:], Path{RootToken}, doc)
}

func resolveFrom(rest Path, prefix Path, node any) []Path {
	if len(rest) == 0 {
		out := make(Path, len(prefix))
		copy(out, prefix)
		return []Path{out}
	}

	tok := rest[0]
	remainder := rest[1:]

	switch tok.Kind {
	case Field:
		obj, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		child, present := obj[tok.Name]
		if !present {
			return nil
		}
		return resolveFrom(remainder, append(prefix, tok), child)

	case Index:
		arr, ok := node.([]any)
		if !ok || tok.Idx < 0 || tok.Idx >= len(arr) {
			return nil
		}
		return resolveFrom(remainder, append(prefix, tok), arr[tok.Idx])

	case Star:
		var results []Path
		switch v := node.(type) {
		case map[string]any:
			for k, child := range v {
				results = append(results, resolveFrom(remainder, append(append(Path{}, prefix...), FieldToken(k)), child)...)
			}
		case []any:
			for i, child := range v {
				results = append(results, resolveFrom(remainder, append(append(Path{}, prefix...), IndexToken(i)), child)...)
			}
		}
		return results

	case StarIndex:
		arr, ok := node.([]any)
		if !ok {
			return nil
		}
		var results []Path
		for i, child := range arr {
			results = append(results, resolveFrom(remainder, append(append(Path{}, prefix...), IndexToken(i)), child)...)
		}
		return results

	default:
		return nil
	}
}
