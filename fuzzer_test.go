package calc_test

import (
	"math/rand"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/alecthomas/calc"
)

// randomExpr builds a random tree no deeper than depth.
func randomExpr(r *rand.Rand, depth int) calc.Expr {
	if depth == 0 || r.Intn(4) == 0 {
		switch r.Intn(3) {
		case 0:
			return calc.Num(float64(r.Intn(1000)))
		case 1:
			return calc.Num(float64(r.Intn(1000)) / 64)
		default:
			return calc.Num(r.Float64() * 1e25)
		}
	}
	switch r.Intn(7) {
	case 0:
		return calc.Add(randomExpr(r, depth-1), randomExpr(r, depth-1))
	case 1:
		return calc.Sub(randomExpr(r, depth-1), randomExpr(r, depth-1))
	case 2:
		return calc.Mul(randomExpr(r, depth-1), randomExpr(r, depth-1))
	case 3:
		return calc.Div(randomExpr(r, depth-1), randomExpr(r, depth-1))
	case 4:
		return calc.Pow(randomExpr(r, depth-1), randomExpr(r, depth-1))
	case 5:
		return calc.Sin(randomExpr(r, depth-1))
	default:
		return calc.Cos(randomExpr(r, depth-1))
	}
}

func TestFuzzPrintParseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 500; i++ {
		expected := randomExpr(r, 6)
		source := expected.String()
		actual, rest, err := calc.Parse(source)
		require.NoError(t, err, source)
		require.Equal(t, "", rest, source)
		require.Equal(t, expected, actual, "%s\n%s", source, repr.String(actual, repr.Indent("  ")))
	}
}
