package expr

import (
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/cunkin375/rootfind/roots"
)

// functions bound into every compiled expression.
var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"sqrt": unary(math.Sqrt),
	"abs":  unary(math.Abs),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("expr: pow expects 2 arguments, got %d", len(args))
		}

		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

// unary adapts a math.Func-style helper into a govaluate function.
func unary(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expr: expected 1 argument, got %d", len(args))
		}

		return fn(toFloat(args[0])), nil
	}
}

// Compile parses src into a scalar function handle of x.
//
// The handle is pure and reentrant: each evaluation builds its own
// parameter map, so compiled handles are safe for parallel runs.
func Compile(src string) (roots.Func, error) {
	src = normalize(src)

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(src, functions)
	if err != nil {
		return nil, fmt.Errorf("expr: parse %q: %w", src, err)
	}

	return func(x float64) float64 {
		v, err := parsed.Evaluate(map[string]interface{}{
			"x":  x,
			"pi": math.Pi,
			"e":  math.E,
		})
		if err != nil {
			return math.NaN()
		}

		return toFloat(v)
	}, nil
}

// normalize rewrites the caret exponent ("x^2" → "x**2") and decimal
// commas ("0,5" → "0.5") into govaluate syntax. Only a comma between
// two digits is treated as decimal, so argument separators in calls
// like pow(x, 2) survive untouched.
func normalize(src string) string {
	src = strings.ReplaceAll(src, "^", "**")

	b := []byte(src)
	for i := 1; i < len(b)-1; i++ {
		if b[i] == ',' && isDigit(b[i-1]) && isDigit(b[i+1]) {
			b[i] = '.'
		}
	}

	return string(b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// MustCompile is Compile for trusted, literal formulas; it panics on a
// parse error.
func MustCompile(src string) roots.Func {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}

	return f
}

// toFloat coerces govaluate's loosely typed values to float64, NaN when
// the value is not numeric.
func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return math.NaN()
	}
}
