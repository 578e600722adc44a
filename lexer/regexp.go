package lexer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// RegexpDefinition is a lexer Definition built from a single regular expression.
type RegexpDefinition struct {
	re      *regexp.Regexp
	symbols map[string]rune
}

var _ Definition = &RegexpDefinition{}

// Regexp creates a lexer definition from a regular expression.
//
// Each named sub-expression in the regular expression matches a token.
// Sub-expressions must otherwise be non-capturing, eg. "(?:...)".
//
// Anonymous sub-expressions will cause the matching text to be skipped.
//
// eg.
//
//	def, err := Regexp(`(?P<Ident>[a-z]+)|(\s+)|(?P<Number>\d+)`)
func Regexp(pattern string) (*RegexpDefinition, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	symbols := map[string]rune{
		"EOF": EOF,
	}
	for i, sym := range re.SubexpNames()[1:] {
		if sym != "" {
			symbols[sym] = EOF - 1 - rune(i)
		}
	}
	return &RegexpDefinition{re: re, symbols: symbols}, nil
}

// MustRegexp is Regexp but panics on error.
func MustRegexp(pattern string) *RegexpDefinition {
	def, err := Regexp(pattern)
	if err != nil {
		panic(err)
	}
	return def
}

func (d *RegexpDefinition) Symbols() map[string]rune {
	return d.symbols
}

// LexString implements Definition.
func (d *RegexpDefinition) LexString(filename string, input string) (Lexer, error) {
	return &regexpLexer{
		pos: Position{
			Filename: filename,
			Line:     1,
			Column:   1,
		},
		s:     input,
		re:    d.re,
		names: d.re.SubexpNames(),
	}, nil
}

type regexpLexer struct {
	pos   Position
	s     string
	re    *regexp.Regexp
	names []string
}

func (r *regexpLexer) Next() (Token, error) {
nextToken:
	for len(r.s) != 0 {
		matches := r.re.FindStringSubmatchIndex(r.s)
		if matches == nil || matches[0] != 0 || matches[1] == 0 {
			rn, _ := utf8.DecodeRuneInString(r.s)
			return Token{}, Errorf(r.pos, "invalid input text %q", string(rn))
		}
		match := r.s[:matches[1]]
		token := Token{
			Pos:   r.pos,
			Value: match,
		}

		// Update lexer state.
		r.pos.Offset += matches[1]
		lines := strings.Count(match, "\n")
		r.pos.Line += lines
		if lines == 0 {
			r.pos.Column += utf8.RuneCountInString(match)
		} else {
			r.pos.Column = utf8.RuneCountInString(match[strings.LastIndex(match, "\n"):])
		}
		r.s = r.s[matches[1]:]

		// Finally, assign token type. If it is not a named group, we continue to the next token.
		for i := 2; i < len(matches); i += 2 {
			if matches[i] != -1 {
				if r.names[i/2] == "" {
					continue nextToken
				}
				token.Type = EOF - rune(i/2)
				break
			}
		}
		return token, nil
	}
	return EOFToken(r.pos), nil
}
