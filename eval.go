package calc

import "math"

// Evaluate computes the value of an expression.
//
// Evaluation never fails: division by zero, zero raised to a negative power
// and similar cases produce IEEE-754 infinities or NaN.
func Evaluate(e Expr) float64 {
	return e.Eval()
}

func (n *Number) Eval() float64 { return n.Value }

func (b *Binary) Eval() float64 {
	return b.Op.Eval(b.Left.Eval(), b.Right.Eval())
}

func (c *Call) Eval() float64 {
	return c.Func.Eval(c.Arg.Eval())
}

// Eval applies the operator to its operands.
func (o Operator) Eval(l, r float64) float64 {
	switch o {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	case OpPow:
		return math.Pow(l, r)
	}
	panic("unsupported operator")
}

// Eval applies the function to its argument, in radians.
func (f Function) Eval(x float64) float64 {
	switch f {
	case FuncSin:
		return math.Sin(x)
	case FuncCos:
		return math.Cos(x)
	}
	panic("unsupported function")
}

