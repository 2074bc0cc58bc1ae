package docpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed path expression: a sequence of tokens addressing a
// position inside a JSON/XML/header/query structure.
type Path []Token

// ParseError reports a tokenization failure. It carries enough context to
// render a "carets under source" diagnostic: the original expression and
// the 0-based byte offset of the offending character.
type ParseError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid path expression %q at position %d: %s", e.Expr, e.Pos, e.Msg)
}

// Diagnostic renders a carets-under-source presentation of the error.
func (e *ParseError) Diagnostic() string {
	caret := strings.Repeat(" ", e.Pos) + "^"
	return fmt.Sprintf("%s\n%s\n%s\nnote: %s", e.Expr, caret, "", e.Msg)
}

func isIdentChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c == ':' || c == '#' || c == '@'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

type parser struct {
	src string
	pos int
}

func (p *parser) errf(pos int, format string, args ...any) error {
	return &ParseError{Expr: p.src, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) readIdent() (string, error) {
	start := p.pos
	for !p.eof() && isIdentChar(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errf(start, "expected an identifier")
	}
	return p.src[start:p.pos], nil
}

func (p *parser) readIndex() (int, error) {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errf(start, "expected a numeric index")
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, p.errf(start, "invalid numeric index: %v", err)
	}
	return n, nil
}

// readQuoted reads a "'...'"-delimited string, handling \\ and \' escapes.
func (p *parser) readQuoted() (string, error) {
	if p.peek() != '\'' {
		return "", p.errf(p.pos, "expected opening quote")
	}
	p.pos++
	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errf(p.pos, "unterminated quoted field name")
		}
		c := p.src[p.pos]
		if c == '\\' {
			if p.pos+1 >= len(p.src) {
				return "", p.errf(p.pos, "dangling escape character")
			}
			next := p.src[p.pos+1]
			if next == '\\' || next == '\'' {
				sb.WriteByte(next)
				p.pos += 2
				continue
			}
			return "", p.errf(p.pos, "invalid escape sequence \\%c", next)
		}
		if c == '\'' {
			p.pos++
			return sb.String(), nil
		}
		sb.WriteByte(c)
		p.pos++
	}
}

// Parse tokenizes a path expression. An empty string parses to an empty
// Path, distinct from "$" which parses to Path{Root}.
func Parse(expr string) (Path, error) {
	if expr == "" {
		return Path{}, nil
	}

	p := &parser{src: expr}
	var tokens Path

	if p.peek() == '$' {
		p.pos++
		tokens = append(tokens, RootToken)
	} else {
		// Leading "$" is optional: the first identifier is the root and is
		// also recorded as the first Field.
		ident, err := p.readIdent()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, RootToken, FieldToken(ident))
	}

	for !p.eof() {
		switch p.peek() {
		case '.':
			p.pos++
			if p.peek() == '*' {
				p.pos++
				tokens = append(tokens, StarToken)
				continue
			}
			ident, err := p.readIdent()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, FieldToken(ident))
		case '[':
			p.pos++
			switch {
			case p.peek() == '\'':
				name, err := p.readQuoted()
				if err != nil {
					return nil, err
				}
				if p.peek() != ']' {
					return nil, p.errf(p.pos, "expected closing ']'")
				}
				p.pos++
				tokens = append(tokens, FieldToken(name))
			case p.peek() == '*':
				p.pos++
				if p.peek() != ']' {
					return nil, p.errf(p.pos, "expected closing ']'")
				}
				p.pos++
				tokens = append(tokens, StarIndexToken)
			case isDigit(p.peek()):
				idx, err := p.readIndex()
				if err != nil {
					return nil, err
				}
				if p.peek() != ']' {
					return nil, p.errf(p.pos, "expected closing ']'")
				}
				p.pos++
				tokens = append(tokens, IndexToken(idx))
			default:
				return nil, p.errf(p.pos, "expected index, quoted field name, or '*'")
			}
		default:
			return nil, p.errf(p.pos, "unexpected character %q", p.peek())
		}
	}

	return tokens, nil
}

// isPlainIdent reports whether name can be rendered as a bare ".name"
// fragment instead of the escaped "['name']" form.
func isPlainIdent(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isIdentChar(name[i]) {
			return false
		}
	}
	return true
}

func escapeFieldName(name string) string {
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '\\' || c == '\'' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// String renders the canonical form of the path. parse(p.String()) == p for
// any legal Path produced by Parse.
func (p Path) String() string {
	var sb strings.Builder
	for i, t := range p {
		switch t.Kind {
		case Root:
			sb.WriteByte('$')
		case Field:
			if isPlainIdent(t.Name) {
				sb.WriteByte('.')
				sb.WriteString(t.Name)
			} else {
				sb.WriteString("['")
				sb.WriteString(escapeFieldName(t.Name))
				sb.WriteString("']")
			}
		case Index:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(t.Idx))
			sb.WriteByte(']')
		case Star:
			sb.WriteString(".*")
		case StarIndex:
			sb.WriteString("[*]")
		default:
			sb.WriteString("?")
		}
		_ = i
	}
	return sb.String()
}
