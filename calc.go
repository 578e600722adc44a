package calc

var defaultParser = MustNew(MaxDepth(DefaultMaxDepth))

// Parse an expression with the default Parser.
//
// The default Parser rejects expressions nested deeper than DefaultMaxDepth.
//
// See Parser.ParseString.
func Parse(input string) (Expr, string, error) {
	return defaultParser.ParseString("", input)
}

// Calculate a single line with the default Parser.
//
// See Parser.Calculate.
func Calculate(line string) (float64, error) {
	return defaultParser.Calculate("", line)
}

// ParseLine parses a single line which must hold exactly one expression.
//
// Unlike ParseString, any remainder is reported as a *TrailingInputError.
func (p *Parser) ParseLine(filename, line string) (Expr, error) {
	expr, next, err := p.parse(filename, line)
	if err != nil {
		return nil, err
	}
	if rest := line[next.Pos.Offset:]; rest != "" {
		return nil, &TrailingInputError{Pos: next.Pos, Input: rest}
	}
	return expr, nil
}

// Calculate parses and evaluates a single line.
//
// See ParseLine.
func (p *Parser) Calculate(filename, line string) (float64, error) {
	expr, err := p.ParseLine(filename, line)
	if err != nil {
		return 0, err
	}
	return Evaluate(expr), nil
}
