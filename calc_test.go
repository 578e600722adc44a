package calc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/calc"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"12 - 34 + 15 - 9", -16},
		{"2^3^2", 512},
		{"1 * 2 + 3 / 4 ^ 6", 2 + 3.0/4096},
		{"(1 + 2) * 3", 9},
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"  12   +   34  ", 46},
		{"12+34", 46},
		{"1 / 0", math.Inf(1)},
	}
	for _, test := range tests {
		actual, err := calc.Calculate(test.input)
		require.NoError(t, err, test.input)
		require.Equal(t, test.expected, actual, test.input)
	}
}

func TestCalculateWithFilename(t *testing.T) {
	parser := calc.MustNew()
	_, err := parser.Calculate("session", "(2")
	require.EqualError(t, err, `session:1:3: unexpected end of input (expected ")")`)
	_, err = parser.Calculate("session", "2 $")
	require.EqualError(t, err, `session:1:3: unexpected trailing input "$"`)
}

func TestCalculateHasNoUnaryMinus(t *testing.T) {
	_, err := calc.Calculate("2 ^ -1")
	require.EqualError(t, err, `1:5: unexpected token "-" (expected number, "(" or function)`)
	result, err := calc.Calculate("2 ^ (0 - 1)")
	require.NoError(t, err)
	require.Equal(t, 0.5, result)
}
