package calc_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/ebnf"

	"github.com/alecthomas/calc"
)

func TestGrammarIsValidEBNF(t *testing.T) {
	grammar, err := ebnf.Parse("calc.ebnf", strings.NewReader(calc.Grammar))
	require.NoError(t, err)
	require.NoError(t, ebnf.Verify(grammar, "Expr"))

	names := []string{}
	for name := range grammar {
		names = append(names, name)
	}
	sort.Strings(names)
	require.Equal(t, []string{
		"Expr", "Factor", "Function", "Operation", "Parens", "Term",
		"digit", "digits", "exponent", "number",
	}, names)
}

func TestGrammarNumbersAreLexedAsNumbers(t *testing.T) {
	symbols := calc.Lexer.Symbols()
	for _, literal := range []string{"7", "7.", "7.25", ".25", "7e10", "7.5E-3", "7e+2"} {
		lex, err := calc.Lexer.LexString("", literal)
		require.NoError(t, err)
		tok, err := lex.Next()
		require.NoError(t, err)
		require.Equal(t, symbols["Number"], tok.Type, literal)
		require.Equal(t, literal, tok.Value)
	}
}
