package calc

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/calc/lexer"
)

// Lexer for calculator expressions.
//
// Number is deliberately looser than the grammar's number production so that
// malformed literals such as "1.2.3" reach the parser as a single token and
// are reported as invalid numbers.
var Lexer = lexer.MustRegexp(`(?P<Number>[0-9.]+(?:[eE][-+]?[0-9]*)?)` +
	`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)` +
	`|(?P<Operator>[-+*/^])` +
	`|(?P<Punct>[()])` +
	`|(?P<Whitespace>\s+)`)

var (
	numberToken     = Lexer.Symbols()["Number"]
	identToken      = Lexer.Symbols()["Ident"]
	operatorToken   = Lexer.Symbols()["Operator"]
	punctToken      = Lexer.Symbols()["Punct"]
	whitespaceToken = Lexer.Symbols()["Whitespace"]
)

// DefaultMaxDepth is the nesting limit of the package-level Parse and Calculate.
const DefaultMaxDepth = 1000

// A Parser for calculator expressions.
//
// A Parser only holds configuration and may be used concurrently.
type Parser struct {
	trace    io.Writer
	maxDepth int
}

// New creates a Parser.
func New(options ...Option) (*Parser, error) {
	p := &Parser{}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics if it fails.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the EBNF for the grammar.
func (p *Parser) String() string {
	return Grammar
}

// ParseString parses a single expression from input.
//
// On success the remaining, unparsed, input is returned alongside the
// expression. Whitespace before the remainder is consumed. Any error
// returned will implement Error.
//
// "filename" is used in error positions and may be empty.
func (p *Parser) ParseString(filename, input string) (Expr, string, error) {
	expr, next, err := p.parse(filename, input)
	if err != nil {
		return nil, "", err
	}
	return expr, input[next.Pos.Offset:], nil
}

// parse input, returning the expression and the first token after it.
func (p *Parser) parse(filename, input string) (Expr, lexer.Token, error) {
	lex, err := Lexer.LexString(filename, input)
	if err != nil {
		return nil, lexer.Token{}, err
	}
	// A lexing error only matters if the parser needs a token past it, so it
	// is retrieved from the context when that happens.
	plex, _ := lexer.Upgrade(lex, whitespaceToken)
	ctx := newParseContext(plex, input, p)
	expr, err := ctx.expr()
	if err != nil {
		return nil, lexer.Token{}, err
	}
	return expr, ctx.Peek(), nil
}

// pair is a binary operator and its right operand.
type pair struct {
	op      Operator
	operand Expr
}

// expr := term (("+" | "-") term)*
func (c *parseContext) expr() (Expr, error) {
	defer c.enter("expr")()
	left, err := c.term()
	if err != nil {
		return nil, err
	}
	pairs, err := c.pairs("+-", c.term)
	if err != nil {
		return nil, err
	}
	return fold(left, pairs), nil
}

// term := factor (("*" | "/") factor)*
func (c *parseContext) term() (Expr, error) {
	defer c.enter("term")()
	left, err := c.factor()
	if err != nil {
		return nil, err
	}
	pairs, err := c.pairs("*/", c.factor)
	if err != nil {
		return nil, err
	}
	return fold(left, pairs), nil
}

// pairs parses zero or more operators from ops, each followed by a unit.
//
// An operator commits the parse: a missing operand after it is an error.
func (c *parseContext) pairs(ops string, unit func() (Expr, error)) ([]pair, error) {
	var out []pair
	for {
		tok := c.Peek()
		if tok.Type != operatorToken || !strings.Contains(ops, tok.Value) {
			return out, nil
		}
		_, _ = c.Next()
		operand, err := unit()
		if err != nil {
			return nil, err
		}
		out = append(out, pair{op: operatorMap[tok.Value], operand: operand})
	}
}

// fold pairs into a left-leaning tree rooted at the last pair.
func fold(left Expr, pairs []pair) Expr {
	for _, p := range pairs {
		left = &Binary{Op: p.op, Left: left, Right: p.operand}
	}
	return left
}

// factor := operation ("^" factor)?
//
// The exponent recurses, making "^" right-associative.
func (c *parseContext) factor() (Expr, error) {
	defer c.enter("factor")()
	c.depth++
	defer func() { c.depth-- }()
	if c.maxDepth > 0 && c.depth > c.maxDepth {
		return nil, c.errorf(c.Peek(), "factor", nil, "expression nested more than %d deep", c.maxDepth)
	}
	base, err := c.operation()
	if err != nil {
		return nil, err
	}
	if !c.accept(operatorToken, "^") {
		return base, nil
	}
	exponent, err := c.factor()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: OpPow, Left: base, Right: exponent}, nil
}

// operation := parens | number | function
//
// Alternatives are tried in order. The first one to match its leading token
// is committed to.
func (c *parseContext) operation() (Expr, error) {
	defer c.enter("operation")()
	for _, alternative := range []func() (Expr, error){c.parens, c.number, c.function} {
		expr, err := alternative()
		if err == errNoMatch {
			continue
		}
		return expr, err
	}
	return nil, c.unexpected("operation", `number, "(" or function`)
}

// parens := "(" expr ")"
func (c *parseContext) parens() (Expr, error) {
	defer c.enter("parens")()
	if !c.accept(punctToken, "(") {
		return nil, errNoMatch
	}
	expr, err := c.expr()
	if err != nil {
		return nil, err
	}
	if !c.accept(punctToken, ")") {
		return nil, c.unexpected("parens", `")"`)
	}
	return expr, nil
}

// number := <float>
func (c *parseContext) number() (Expr, error) {
	defer c.enter("number")()
	tok := c.Peek()
	if tok.Type != numberToken {
		return nil, errNoMatch
	}
	_, _ = c.Next()
	value, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return nil, c.errorf(tok, "number", err, "invalid number %q", tok.Value)
	}
	return &Number{Value: value}, nil
}

// function := ("sin" | "cos") "(" expr ")"
func (c *parseContext) function() (Expr, error) {
	defer c.enter("function")()
	tok := c.Peek()
	if tok.Type != identToken {
		return nil, errNoMatch
	}
	fn, ok := functionMap[tok.Value]
	if !ok {
		return nil, c.errorf(tok, "function", nil, "unknown function %q", tok.Value)
	}
	_, _ = c.Next()
	if !c.accept(punctToken, "(") {
		return nil, c.unexpected("function", `"("`)
	}
	arg, err := c.expr()
	if err != nil {
		return nil, err
	}
	if !c.accept(punctToken, ")") {
		return nil, c.unexpected("function", `")"`)
	}
	return &Call{Func: fn, Arg: arg}, nil
}
