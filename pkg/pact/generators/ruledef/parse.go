package ruledef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pactcore/pact/pkg/pact/generators"
	"github.com/pactcore/pact/pkg/pact/matchers"
)

type parser struct {
	src  string
	runes []rune
	pos  int
}

func (p *parser) errf(pos int, format string, args ...any) error {
	return &DefinitionError{Expr: p.src, Pos: pos, Note: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool { return p.pos >= len(p.runes) }

func (p *parser) skipSpace() {
	for !p.eof() && (p.runes[p.pos] == ' ' || p.runes[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.runes[p.pos]
}

func (p *parser) expect(c rune) error {
	p.skipSpace()
	if p.peek() != c {
		return p.errf(p.pos, "expected %q", c)
	}
	p.pos++
	return nil
}

func (p *parser) readIdent() (string, error) {
	p.skipSpace()
	start := p.pos
	for !p.eof() && isIdentChar(p.runes[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errf(start, "expected an identifier")
	}
	return string(p.runes[start:p.pos]), nil
}

func isIdentChar(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Parse parses a full matching-rule-definition string (one or more
// comma-separated expressions) and merges them per spec.md §4.3.
func Parse(src string) (Definition, error) {
	p := &parser{src: src, runes: []rune(src)}
	def, err := p.parseExpr()
	if err != nil {
		return Definition{}, err
	}
	p.skipSpace()
	for p.peek() == ',' {
		p.pos++
		next, err := p.parseExpr()
		if err != nil {
			return Definition{}, err
		}
		def = merge(def, next)
		p.skipSpace()
	}
	if !p.eof() {
		return Definition{}, p.errf(p.pos, "unexpected trailing content")
	}
	return def, nil
}

func (p *parser) parseExpr() (Definition, error) {
	kw, err := p.readIdent()
	if err != nil {
		return Definition{}, err
	}
	if err := p.expect('('); err != nil {
		return Definition{}, err
	}

	var def Definition
	switch kw {
	case "matching":
		def, err = p.parseMatching()
	case "notEmpty":
		v, vt, err2 := p.parsePrimitive()
		if err2 != nil {
			return Definition{}, err2
		}
		def = Definition{
			Rules:     matchers.RuleList{Rules: []matchers.Rule{{Kind: matchers.NotEmpty}}, Logic: matchers.And},
			Value:     v,
			HasValue:  true,
			ValueType: vt,
		}
		if v == nil && vt == Unknown {
			def.Warnings = []string{"notEmpty(null) can never match: a null value is always empty"}
		}
	case "eachKey":
		inner, err2 := p.parseExpr()
		if err2 != nil {
			return Definition{}, err2
		}
		rl := inner.Rules
		def = Definition{Rules: matchers.RuleList{
			Rules: []matchers.Rule{{Kind: matchers.EachKey, Each: &rl}},
			Logic: matchers.And,
		}}
	case "eachValue":
		inner, err2 := p.parseExpr()
		if err2 != nil {
			return Definition{}, err2
		}
		rl := inner.Rules
		def = Definition{Rules: matchers.RuleList{
			Rules: []matchers.Rule{{Kind: matchers.EachValue, Each: &rl}},
			Logic: matchers.And,
		}}
	case "atLeast":
		n, err2 := p.parseUint()
		if err2 != nil {
			return Definition{}, err2
		}
		def = Definition{Rules: matchers.RuleList{
			Rules: []matchers.Rule{{Kind: matchers.MinType, Min: &n}},
			Logic: matchers.And,
		}}
	case "atMost":
		n, err2 := p.parseUint()
		if err2 != nil {
			return Definition{}, err2
		}
		def = Definition{Rules: matchers.RuleList{
			Rules: []matchers.Rule{{Kind: matchers.MaxType, Max: &n}},
			Logic: matchers.And,
		}}
	default:
		return Definition{}, p.errf(p.pos, "unknown matching-rule-definition keyword %q", kw)
	}
	if err != nil {
		return Definition{}, err
	}

	if err := p.expect(')'); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func (p *parser) parseMatching() (Definition, error) {
	p.skipSpace()
	if p.peek() == '$' {
		p.pos++
		s, err := p.parseString()
		if err != nil {
			return Definition{}, err
		}
		// matching($'ruleKind') references a rule registered elsewhere by
		// name; not resolvable purely syntactically, so it is carried as an
		// Equality rule whose Pattern holds the referenced name. Nothing in
		// this module resolves that name any further.
		return Definition{Rules: matchers.RuleList{
			Rules: []matchers.Rule{{Kind: matchers.Equality, Pattern: s}},
			Logic: matchers.And,
		}}, nil
	}

	matcherKind, err := p.readIdent()
	if err != nil {
		return Definition{}, err
	}
	if err := p.expect(','); err != nil {
		return Definition{}, err
	}

	switch matcherKind {
	case "equalTo":
		v, vt, err := p.parsePrimitive()
		if err != nil {
			return Definition{}, err
		}
		return Definition{
			Rules:     matchers.RuleList{Rules: []matchers.Rule{{Kind: matchers.Equality}}, Logic: matchers.And},
			Value:     v, HasValue: true, ValueType: vt,
		}, nil
	case "type":
		v, vt, err := p.parsePrimitive()
		if err != nil {
			return Definition{}, err
		}
		return Definition{
			Rules:     matchers.RuleList{Rules: []matchers.Rule{{Kind: matchers.Type}}, Logic: matchers.And},
			Value:     v, HasValue: true, ValueType: vt,
		}, nil
	case "number", "integer", "decimal":
		v, gen, err := p.parseNumericOrPS()
		if err != nil {
			return Definition{}, err
		}
		kind := map[string]matchers.Kind{"number": matchers.Number, "integer": matchers.Integer, "decimal": matchers.Decimal}[matcherKind]
		vt := map[string]ValueType{"number": Number, "integer": Integer, "decimal": Decimal}[matcherKind]
		return Definition{
			Rules:     matchers.RuleList{Rules: []matchers.Rule{{Kind: kind}}, Logic: matchers.And},
			Value:     v, HasValue: v != nil, ValueType: vt, Generator: gen,
		}, nil
	case "datetime", "date", "time":
		p.skipSpace()
		format, err := p.parseString()
		if err != nil {
			return Definition{}, err
		}
		if err := p.expect(','); err != nil {
			return Definition{}, err
		}
		v, gen, err := p.parseStringOrPS()
		if err != nil {
			return Definition{}, err
		}
		kind := map[string]matchers.Kind{"datetime": matchers.Timestamp, "date": matchers.Date, "time": matchers.Time}[matcherKind]
		return Definition{
			Rules:     matchers.RuleList{Rules: []matchers.Rule{{Kind: kind, Format: format}}, Logic: matchers.And},
			Value:     v, HasValue: v != "", ValueType: String, Generator: gen,
		}, nil
	case "regex":
		pattern, err := p.parseString()
		if err != nil {
			return Definition{}, err
		}
		if err := p.expect(','); err != nil {
			return Definition{}, err
		}
		example, err := p.parseString()
		if err != nil {
			return Definition{}, err
		}
		return Definition{
			Rules:     matchers.RuleList{Rules: []matchers.Rule{{Kind: matchers.Regex, Pattern: pattern}}, Logic: matchers.And},
			Value:     example, HasValue: true, ValueType: String,
		}, nil
	case "include":
		s, err := p.parseString()
		if err != nil {
			return Definition{}, err
		}
		return Definition{
			Rules:     matchers.RuleList{Rules: []matchers.Rule{{Kind: matchers.Include, Substring: s}}, Logic: matchers.And},
			Value:     s, HasValue: true, ValueType: String,
		}, nil
	case "boolean":
		b, err := p.parseBool()
		if err != nil {
			return Definition{}, err
		}
		return Definition{
			Rules:     matchers.RuleList{Rules: []matchers.Rule{{Kind: matchers.Boolean}}, Logic: matchers.And},
			Value:     b, HasValue: true, ValueType: Boolean,
		}, nil
	case "semver":
		s, err := p.parseString()
		if err != nil {
			return Definition{}, err
		}
		return Definition{
			Rules:     matchers.RuleList{Rules: []matchers.Rule{{Kind: matchers.Semver}}, Logic: matchers.And},
			Value:     s, HasValue: true, ValueType: String,
		}, nil
	case "contentType":
		ct, err := p.parseString()
		if err != nil {
			return Definition{}, err
		}
		if err := p.expect(','); err != nil {
			return Definition{}, err
		}
		example, err := p.parseString()
		if err != nil {
			return Definition{}, err
		}
		return Definition{
			Rules:     matchers.RuleList{Rules: []matchers.Rule{{Kind: matchers.ContentType, ContentType: ct}}, Logic: matchers.And},
			Value:     example, HasValue: true, ValueType: String,
		}, nil
	default:
		return Definition{}, p.errf(p.pos, "unknown matcher %q", matcherKind)
	}
}

func (p *parser) parseUint() (int, error) {
	p.skipSpace()
	start := p.pos
	for !p.eof() && p.runes[p.pos] >= '0' && p.runes[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errf(start, "expected an unsigned integer")
	}
	return strconv.Atoi(string(p.runes[start:p.pos]))
}

func (p *parser) parseBool() (bool, error) {
	kw, err := p.readIdent()
	if err != nil {
		return false, err
	}
	switch kw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, p.errf(p.pos, "expected true or false, got %q", kw)
	}
}

// parsePrimitive parses string | number | boolean | null | fromProviderState.
func (p *parser) parsePrimitive() (any, ValueType, error) {
	p.skipSpace()
	switch {
	case p.peek() == '\'':
		s, err := p.parseString()
		return s, String, err
	case p.peek() == '-' || p.peek() >= '0' && p.peek() <= '9':
		return p.parseNumber()
	default:
		kw, err := p.readIdent()
		if err != nil {
			return nil, Unknown, err
		}
		switch kw {
		case "null":
			return nil, Unknown, nil
		case "true":
			return true, Boolean, nil
		case "false":
			return false, Boolean, nil
		case "fromProviderState":
			v, _, err := p.parseFromProviderState()
			return v, String, err
		default:
			return nil, Unknown, p.errf(p.pos, "unexpected primitive %q", kw)
		}
	}
}

func (p *parser) parseNumber() (any, ValueType, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for !p.eof() && p.runes[p.pos] >= '0' && p.runes[p.pos] <= '9' {
		p.pos++
	}
	isDecimal := false
	if p.peek() == '.' {
		isDecimal = true
		p.pos++
		for !p.eof() && p.runes[p.pos] >= '0' && p.runes[p.pos] <= '9' {
			p.pos++
		}
	}
	s := string(p.runes[start:p.pos])
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, Unknown, p.errf(start, "invalid number %q", s)
	}
	if isDecimal {
		return f, Decimal, nil
	}
	return f, Integer, nil
}

// parseNumericOrPS parses (numeric | fromProviderState) for number/integer/decimal.
func (p *parser) parseNumericOrPS() (any, *generators.Generator, error) {
	p.skipSpace()
	if p.peek() == '-' || p.peek() >= '0' && p.peek() <= '9' {
		v, _, err := p.parseNumber()
		return v, nil, err
	}
	kw, err := p.readIdent()
	if err != nil {
		return nil, nil, err
	}
	if kw != "fromProviderState" {
		return nil, nil, p.errf(p.pos, "expected a number or fromProviderState, got %q", kw)
	}
	_, gen, err := p.parseFromProviderStateBody()
	return nil, gen, err
}

// parseStringOrPS parses (string | fromProviderState) for date/time/datetime.
func (p *parser) parseStringOrPS() (string, *generators.Generator, error) {
	p.skipSpace()
	if p.peek() == '\'' {
		s, err := p.parseString()
		return s, nil, err
	}
	kw, err := p.readIdent()
	if err != nil {
		return "", nil, err
	}
	if kw != "fromProviderState" {
		return "", nil, p.errf(p.pos, "expected a string or fromProviderState, got %q", kw)
	}
	_, gen, err := p.parseFromProviderStateBody()
	return "", gen, err
}

func (p *parser) parseFromProviderState() (any, *generators.Generator, error) {
	return p.parseFromProviderStateBody()
}

// parseFromProviderStateBody parses the "(" string "," primitive ")" tail of
// fromProviderState, having already consumed the keyword.
func (p *parser) parseFromProviderStateBody() (any, *generators.Generator, error) {
	if err := p.expect('('); err != nil {
		return nil, nil, err
	}
	expr, err := p.parseString()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect(','); err != nil {
		return nil, nil, err
	}
	fallback, _, err := p.parsePrimitive()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, nil, err
	}
	return fallback, &generators.Generator{Kind: generators.ProviderStateGenerator, PSExpression: expr}, nil
}

func (p *parser) parseString() (string, error) {
	if err := p.expect('\''); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errf(p.pos, "unterminated string literal")
		}
		c := p.runes[p.pos]
		if c == '\'' {
			p.pos++
			return sb.String(), nil
		}
		if c == '\\' {
			p.pos++
			if p.eof() {
				return "", p.errf(p.pos, "dangling escape")
			}
			esc := p.runes[p.pos]
			switch esc {
			case '\\', '\'':
				sb.WriteRune(esc)
				p.pos++
			case 'b':
				sb.WriteRune('\b')
				p.pos++
			case 'f':
				sb.WriteRune('\f')
				p.pos++
			case 'n':
				sb.WriteRune('\n')
				p.pos++
			case 'r':
				sb.WriteRune('\r')
				p.pos++
			case 't':
				sb.WriteRune('\t')
				p.pos++
			case 'u':
				p.pos++
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				sb.WriteRune(r)
			default:
				return "", p.errf(p.pos, "invalid escape sequence \\%c", esc)
			}
			continue
		}
		sb.WriteRune(c)
		p.pos++
	}
}

func (p *parser) parseUnicodeEscape() (rune, error) {
	if p.peek() == '{' {
		p.pos++
		start := p.pos
		for !p.eof() && p.runes[p.pos] != '}' {
			p.pos++
		}
		if p.eof() {
			return 0, p.errf(p.pos, "unterminated \\u{...} escape")
		}
		hexStr := string(p.runes[start:p.pos])
		p.pos++ // consume '}'
		v, err := strconv.ParseInt(hexStr, 16, 32)
		if err != nil {
			return 0, p.errf(start, "invalid hex escape %q", hexStr)
		}
		return rune(v), nil
	}
	if p.pos+4 > len(p.runes) {
		return 0, p.errf(p.pos, "expected 4 hex digits after \\u")
	}
	hexStr := string(p.runes[p.pos : p.pos+4])
	v, err := strconv.ParseInt(hexStr, 16, 32)
	if err != nil {
		return 0, p.errf(p.pos, "invalid hex escape %q", hexStr)
	}
	p.pos += 4
	return rune(v), nil
}
