package docpath

import "fmt"

// Kind identifies the variant of a single path token.
type Kind int

const (
	// Root marks the leading "$" of a path expression.
	Root Kind = iota
	// Field addresses an object member by exact name.
	Field
	// Index addresses an array element by position.
	Index
	// Star addresses any object member or array element.
	Star
	// StarIndex addresses any array element, or the literal "[*]" fragment.
	StarIndex
)

func (k Kind) String() string {
	switch k {
	case Root:
		return "Root"
	case Field:
		return "Field"
	case Index:
		return "Index"
	case Star:
		return "Star"
	case StarIndex:
		return "StarIndex"
	default:
		return "Unknown"
	}
}

// Token is a single element of a parsed path expression.
type Token struct {
	Kind Kind

	// Name holds the field name for Field tokens.
	Name string

	// Idx holds the array index for Index tokens.
	Idx int
}

// FieldToken builds a Field token.
func FieldToken(name string) Token { return Token{Kind: Field, Name: name} }

// IndexToken builds an Index token.
func IndexToken(i int) Token { return Token{Kind: Index, Idx: i} }

// RootToken is the canonical Root token.
var RootToken = Token{Kind: Root}

// StarToken is the canonical Star token.
var StarToken = Token{Kind: Star}

// StarIndexToken is the canonical StarIndex token.
var StarIndexToken = Token{Kind: StarIndex}

func (t Token) String() string {
	switch t.Kind {
	case Root:
		return "$"
	case Field:
		return t.Name
	case Index:
		return fmt.Sprintf("%d", t.Idx)
	case Star:
		return "*"
	case StarIndex:
		return "*"
	default:
		return "?"
	}
}
