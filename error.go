package calc

import (
	"fmt"

	"github.com/alecthomas/calc/lexer"
)

// Error represents an error while parsing.
//
// The error will contain positional information and the production that
// failed. Error() renders it as "[<filename>:]<line>:<column>: <message>".
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
	// Production is the name of the grammar rule that failed, eg. "parens".
	Production() string
	// Remaining is the unconsumed input starting at Position.
	Remaining() string
}

var (
	_ Error = &UnexpectedTokenError{}
	_ Error = &ParseError{}
	_ Error = &TrailingInputError{}
)

// UnexpectedTokenError is returned by Parse when an unexpected token is encountered.
type UnexpectedTokenError struct {
	Unexpected lexer.Token
	// Expected describes what the production would have accepted.
	Expected string
	Rule     string
	Input    string
}

func (u *UnexpectedTokenError) Error() string {
	return lexer.FormatError(u.Unexpected.Pos, u.Message())
}

func (u *UnexpectedTokenError) Message() string { // nolint: golint
	var expected string
	if u.Expected != "" {
		expected = fmt.Sprintf(" (expected %s)", u.Expected)
	}
	if u.Unexpected.EOF() {
		return "unexpected end of input" + expected
	}
	return fmt.Sprintf("unexpected token %q%s", u.Unexpected.Value, expected)
}
func (u *UnexpectedTokenError) Position() lexer.Position { return u.Unexpected.Pos } // nolint: golint
func (u *UnexpectedTokenError) Production() string       { return u.Rule }
func (u *UnexpectedTokenError) Remaining() string        { return u.Input }

// ParseError is a parse failure that is not an unexpected token: a malformed
// number, an unknown function, a nesting limit or a lexing failure.
type ParseError struct {
	Msg   string
	Pos   lexer.Position
	Rule  string
	Input string
	// Err is the underlying error, if any.
	Err error
}

func (p *ParseError) Error() string { return lexer.FormatError(p.Pos, p.Msg) }

func (p *ParseError) Message() string          { return p.Msg } // nolint: golint
func (p *ParseError) Position() lexer.Position { return p.Pos } // nolint: golint
func (p *ParseError) Production() string       { return p.Rule }
func (p *ParseError) Remaining() string        { return p.Input }
func (p *ParseError) Unwrap() error            { return p.Err }

// TrailingInputError is returned by Calculate when an expression parsed
// successfully but did not consume the whole line.
type TrailingInputError struct {
	Pos   lexer.Position
	Input string
}

func (t *TrailingInputError) Error() string { return lexer.FormatError(t.Pos, t.Message()) }

func (t *TrailingInputError) Message() string { // nolint: golint
	return fmt.Sprintf("unexpected trailing input %q", t.Input)
}
func (t *TrailingInputError) Position() lexer.Position { return t.Pos } // nolint: golint
func (t *TrailingInputError) Production() string       { return "expr" }
func (t *TrailingInputError) Remaining() string        { return t.Input }
