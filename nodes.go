package calc

import (
	"fmt"
	"strconv"
)

// Expr is a node in the abstract syntax tree of an expression.
//
// The set of node types is closed: *Number, *Binary and *Call. Trees are
// built by the parser and are never modified afterwards.
type Expr interface {
	fmt.Stringer
	// Eval computes the value of the expression.
	Eval() float64
	expr()
}

// Operator is a binary operator.
type Operator int

// Binary operators.
const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

var operatorMap = map[string]Operator{"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv, "^": OpPow}

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return "Operator(" + strconv.Itoa(int(o)) + ")"
}

func (o Operator) GoString() string {
	switch o {
	case OpAdd:
		return "calc.OpAdd"
	case OpSub:
		return "calc.OpSub"
	case OpMul:
		return "calc.OpMul"
	case OpDiv:
		return "calc.OpDiv"
	case OpPow:
		return "calc.OpPow"
	}
	return "calc.Operator(" + strconv.Itoa(int(o)) + ")"
}

// Function is a unary function callable from an expression.
type Function int

// Functions.
const (
	FuncSin Function = iota
	FuncCos
)

var functionMap = map[string]Function{"sin": FuncSin, "cos": FuncCos}

func (f Function) String() string {
	switch f {
	case FuncSin:
		return "sin"
	case FuncCos:
		return "cos"
	}
	return "Function(" + strconv.Itoa(int(f)) + ")"
}

func (f Function) GoString() string {
	switch f {
	case FuncSin:
		return "calc.FuncSin"
	case FuncCos:
		return "calc.FuncCos"
	}
	return "calc.Function(" + strconv.Itoa(int(f)) + ")"
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

func (n *Number) expr() {}

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// Binary is an operator applied to two operands.
type Binary struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (b *Binary) expr() {}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Call is a function applied to a single argument.
type Call struct {
	Func Function
	Arg  Expr
}

func (c *Call) expr() {}

func (c *Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Func, c.Arg)
}

// Num returns a *Number.
func Num(v float64) Expr { return &Number{Value: v} }

// Add returns l + r.
func Add(l, r Expr) Expr { return &Binary{Op: OpAdd, Left: l, Right: r} }

// Sub returns l - r.
func Sub(l, r Expr) Expr { return &Binary{Op: OpSub, Left: l, Right: r} }

// Mul returns l * r.
func Mul(l, r Expr) Expr { return &Binary{Op: OpMul, Left: l, Right: r} }

// Div returns l / r.
func Div(l, r Expr) Expr { return &Binary{Op: OpDiv, Left: l, Right: r} }

// Pow returns l ^ r.
func Pow(l, r Expr) Expr { return &Binary{Op: OpPow, Left: l, Right: r} }

// Sin returns sin(x).
func Sin(x Expr) Expr { return &Call{Func: FuncSin, Arg: x} }

// Cos returns cos(x).
func Cos(x Expr) Expr { return &Call{Func: FuncCos, Arg: x} }
