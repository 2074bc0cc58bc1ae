package dateexpr

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokSign tokenKind = iota
	tokNum
	tokWord
	tokEOF
)

type token struct {
	kind tokenKind
	pos  int
	text string
	num  int
}

// ExpressionError is a carets-under-source diagnostic for a malformed
// date/time expression.
type ExpressionError struct {
	Expr string
	Pos  int
	Note string
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("invalid date/time expression %q at position %d: %s", e.Expr, e.Pos, e.Note)
}

// Diagnostic renders a carets-under-source presentation.
func (e *ExpressionError) Diagnostic() string {
	return fmt.Sprintf("%s\n%s^\nnote: %s", e.Expr, strings.Repeat(" ", e.Pos), e.Note)
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	runes := []rune(expr)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '+' || c == '-':
			tokens = append(tokens, token{kind: tokSign, pos: i, text: string(c)})
			i++
		case c == '@':
			tokens = append(tokens, token{kind: tokWord, pos: i, text: "@"})
			i++
		case c >= '0' && c <= '9':
			start := i
			for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
				i++
			}
			n, err := strconv.Atoi(string(runes[start:i]))
			if err != nil {
				return nil, &ExpressionError{Expr: expr, Pos: start, Note: "invalid number"}
			}
			tokens = append(tokens, token{kind: tokNum, pos: start, num: n})
		case isWordChar(c):
			start := i
			for i < len(runes) && (isWordChar(runes[i]) || runes[i] == '\'') {
				i++
			}
			tokens = append(tokens, token{kind: tokWord, pos: start, text: strings.ToLower(string(runes[start:i]))})
		default:
			return nil, &ExpressionError{Expr: expr, Pos: i, Note: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(runes)})
	return tokens, nil
}

func isWordChar(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
