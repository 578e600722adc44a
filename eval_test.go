package calc_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/alecthomas/calc"
)

var floatOpts = cmp.Options{cmpopts.EquateNaNs(), cmpopts.EquateApprox(0, 1e-12)}

func TestEvaluate(t *testing.T) {
	minusOne := calc.Sub(calc.Num(0), calc.Num(1))
	tests := []struct {
		name     string
		expr     calc.Expr
		expected float64
	}{
		{"Number", calc.Num(1234), 1234},
		{"Add", calc.Add(calc.Num(12), calc.Num(34)), 46},
		{"Sub", calc.Sub(calc.Num(12), calc.Num(34)), -22},
		{"Mul", calc.Mul(calc.Num(1.5), calc.Num(4)), 6},
		{"Div", calc.Div(calc.Num(3), calc.Num(4)), 0.75},
		{"Nested", calc.Add(
			calc.Mul(calc.Num(1), calc.Num(2)),
			calc.Div(calc.Pow(calc.Num(6), calc.Num(2)), calc.Num(5))), 9.2},
		{"FractionalPow", calc.Pow(calc.Num(16), calc.Num(0.5)), 4},
		{"NegativePow", calc.Pow(calc.Num(2), calc.Sub(calc.Num(0), calc.Num(2))), 0.25},
		{"Sin", calc.Sin(calc.Num(0)), 0},
		{"Cos", calc.Cos(calc.Num(0)), 1},
		{"SinRadians", calc.Sin(calc.Num(math.Pi / 2)), 1},
		{"CosRadians", calc.Cos(calc.Num(math.Pi)), -1},
		{"DivideByZero", calc.Div(calc.Num(1), calc.Num(0)), math.Inf(1)},
		{"NegativeDivideByZero", calc.Div(minusOne, calc.Num(0)), math.Inf(-1)},
		{"ZeroNegativePow", calc.Pow(calc.Num(0), minusOne), math.Inf(1)},
		{"ZeroByZero", calc.Div(calc.Num(0), calc.Num(0)), math.NaN()},
		{"InfMinusInf", calc.Sub(
			calc.Div(calc.Num(1), calc.Num(0)),
			calc.Div(calc.Num(1), calc.Num(0))), math.NaN()},
		{"NegativeBaseFractionalPow", calc.Pow(minusOne, calc.Num(0.5)), math.NaN()},
	}
	for _, test := range tests {
		// nolint: scopelint
		t.Run(test.name, func(t *testing.T) {
			actual := calc.Evaluate(test.expr)
			if diff := cmp.Diff(test.expected, actual, floatOpts); diff != "" {
				t.Errorf("Evaluate(%s) mismatch (-want +got):\n%s", test.expr, diff)
			}
		})
	}
}

func TestEvaluateIsRepeatable(t *testing.T) {
	for _, input := range []string{"sin(1) ^ cos(2) / 3", "0 / 0", "2 ^ 0.5 * 7 - 1"} {
		expr, _, err := calc.Parse(input)
		require.NoError(t, err)
		before := expr.String()
		first := calc.Evaluate(expr)
		second := calc.Evaluate(expr)
		require.True(t, cmp.Equal(first, second, cmpopts.EquateNaNs()), input)
		require.Equal(t, before, expr.String(), "evaluation must not modify the tree")
	}
}

func TestOperatorEval(t *testing.T) {
	require.Equal(t, 8.0, calc.OpPow.Eval(2, 3))
	require.Equal(t, -1.0, calc.OpSub.Eval(2, 3))
	require.Panics(t, func() { calc.Operator(99).Eval(1, 2) })
	require.Panics(t, func() { calc.Function(99).Eval(1) })
}
