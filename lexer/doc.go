// Package lexer defines the tokens, positions and lexer used by the calculator's parser.
//
// The primary interfaces are Definition and Lexer. There is one concrete implementation included,
// a lexer driven by a single regular expression with one named group per token type.
package lexer
