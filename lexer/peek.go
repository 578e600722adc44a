package lexer

import "errors"

// PeekingLexer supports arbitrary lookahead and the elision of tokens.
//
// If the underlying Lexer failed, the tokens read up to the failure remain
// available and the EOF token is positioned where the failure occurred.
type PeekingLexer struct {
	cursor int
	eof    Token
	tokens []Token
	elide  map[rune]bool
	err    error
}

var _ Lexer = &PeekingLexer{}

// Upgrade a Lexer to a PeekingLexer with arbitrary lookahead.
//
// "elide" is a slice of token types to elide from processing.
//
// The returned PeekingLexer is usable even when an error is returned.
func Upgrade(lex Lexer, elide ...rune) (*PeekingLexer, error) {
	r := &PeekingLexer{
		elide: make(map[rune]bool, len(elide)),
	}
	for _, rn := range elide {
		r.elide[rn] = true
	}
	tokens, err := ConsumeAll(lex)
	if err == nil {
		r.tokens = tokens[:len(tokens)-1]
		r.eof = tokens[len(tokens)-1]
		return r, nil
	}
	r.tokens = tokens
	r.err = err
	r.eof = EOFToken(Position{Line: 1, Column: 1})
	var lerr *Error
	if errors.As(err, &lerr) {
		r.eof = EOFToken(lerr.Pos)
	} else if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		pos := last.Pos
		pos.Offset += len(last.Value)
		r.eof = EOFToken(pos)
	}
	return r, err
}

// Err returns the error, if any, that stopped the underlying Lexer.
func (p *PeekingLexer) Err() error {
	return p.err
}

// Next consumes and returns the next non-elided token.
func (p *PeekingLexer) Next() (Token, error) {
	for p.cursor < len(p.tokens) {
		t := p.tokens[p.cursor]
		p.cursor++
		if p.elide[t.Type] {
			continue
		}
		return t, nil
	}
	return p.eof, nil
}

// Peek ahead at the next non-elided token.
func (p *PeekingLexer) Peek() Token {
	for i := p.cursor; i < len(p.tokens); i++ {
		t := p.tokens[i]
		if p.elide[t.Type] {
			continue
		}
		return t
	}
	return p.eof
}
