package partmatch

import "github.com/pactcore/pact/pkg/pact/docpath"

func appendToken(path docpath.Path, t docpath.Token) docpath.Path {
	out := make(docpath.Path, len(path)+1)
	copy(out, path)
	out[len(path)] = t
	return out
}
