// Package calc parses and evaluates arithmetic expressions.
//
// The grammar supports floating-point literals, the binary operators
// "+ - * / ^", the functions "sin" and "cos", and parentheses:
//
//	Expr      = Term { ( "+" | "-" ) Term } .
//	Term      = Factor { ( "*" | "/" ) Factor } .
//	Factor    = Operation [ "^" Factor ] .
//	Operation = Parens | number | Function .
//	Parens    = "(" Expr ")" .
//	Function  = ( "sin" | "cos" ) "(" Expr ")" .
//
// Precedence is encoded by the layering of the productions. "+", "-", "*"
// and "/" are left-associative, so "12 - 34 + 15" is "(12 - 34) + 15", while
// "^" is right-associative, so "2^3^2" is "2^(3^2)".
//
// Parsing produces a tree of Expr nodes:
//
//	expr, rest, err := calc.Parse("1 * 2 + 3 / 4 ^ 6")
//	fmt.Println(expr)                // ((1 * 2) + (3 / (4 ^ 6)))
//	fmt.Println(calc.Evaluate(expr)) // 2.000732421875
//
// Evaluation follows IEEE-754 semantics: "1 / 0" is +Inf rather than an error.
package calc
