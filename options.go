package calc

import (
	"fmt"
	"io"
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Trace the parse to "w".
//
// One line is written for every production the parser enters, indented by
// nesting, holding the next token and the production name.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

// MaxDepth limits how deeply factors may nest, through parentheses, function
// arguments or chained exponents. Deeper input fails to parse.
//
// Zero, the default for New, means unlimited. Unlimited parsers recurse once
// per level and can exhaust the stack on hostile input.
func MaxDepth(depth int) Option {
	return func(p *Parser) error {
		if depth < 0 {
			return fmt.Errorf("max depth must be >= 0 but is %d", depth)
		}
		p.maxDepth = depth
		return nil
	}
}
