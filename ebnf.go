package calc

// Grammar is the grammar accepted by Parser, in the EBNF notation of
// golang.org/x/exp/ebnf.
//
// Productions are upper case. Lexical productions are lower case.
const Grammar = `Expr = Term { ( "+" | "-" ) Term } .
Term = Factor { ( "*" | "/" ) Factor } .
Factor = Operation [ "^" Factor ] .
Operation = Parens | number | Function .
Parens = "(" Expr ")" .
Function = ( "sin" | "cos" ) "(" Expr ")" .
number = digits [ "." [ digits ] ] [ exponent ] | "." digits [ exponent ] .
exponent = ( "e" | "E" ) [ "+" | "-" ] digits .
digits = digit { digit } .
digit = "0" … "9" .
`
