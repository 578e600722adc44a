package calc

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/calc/lexer"
)

// errNoMatch is returned by an alternative that does not start at the current token.
//
// Nothing has been consumed when it is returned, so the next alternative may be tried.
var errNoMatch = errors.New("no match")

// Context for a single parse.
type parseContext struct {
	*lexer.PeekingLexer
	input    string
	trace    io.Writer
	indent   int
	depth    int
	maxDepth int
}

func newParseContext(lex *lexer.PeekingLexer, input string, p *Parser) *parseContext {
	return &parseContext{
		PeekingLexer: lex,
		input:        input,
		trace:        p.trace,
		maxDepth:     p.maxDepth,
	}
}

// remaining input from the start of tok.
func (c *parseContext) remaining(tok lexer.Token) string {
	return c.input[tok.Pos.Offset:]
}

// accept consumes the next token if it has the given type and value.
func (c *parseContext) accept(typ rune, value string) bool {
	tok := c.Peek()
	if tok.Type != typ || tok.Value != value {
		return false
	}
	_, _ = c.Next()
	return true
}

// unexpected reports the next token as unexpected by production.
//
// If the lexer stopped at this point, its error is reported instead.
func (c *parseContext) unexpected(production, expected string) error {
	tok := c.Peek()
	if tok.EOF() && c.Err() != nil {
		return c.lexFailure(production)
	}
	return &UnexpectedTokenError{
		Unexpected: tok,
		Expected:   expected,
		Rule:       production,
		Input:      c.remaining(tok),
	}
}

func (c *parseContext) lexFailure(production string) error {
	err := c.Err()
	pos := c.Peek().Pos
	msg := err.Error()
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		pos = lerr.Pos
		msg = lerr.Msg
	}
	return &ParseError{
		Msg:   msg,
		Pos:   pos,
		Rule:  production,
		Input: c.input[pos.Offset:],
		Err:   err,
	}
}

// errorf creates a *ParseError at tok.
func (c *parseContext) errorf(tok lexer.Token, production string, cause error, format string, args ...interface{}) error {
	return &ParseError{
		Msg:   fmt.Sprintf(format, args...),
		Pos:   tok.Pos,
		Rule:  production,
		Input: c.remaining(tok),
		Err:   cause,
	}
}
