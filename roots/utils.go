package roots

import "math"

// Bracket auto-adjustment bounds. The inward walk moves each endpoint by
// bracketStep per probe and gives up after bracketProbes attempts or once
// the endpoints meet.
const (
	bracketStep   = 0.5
	bracketProbes = 64
)

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// opposite reports whether fa and fb have strictly opposite signs, i.e.
// [a,b] brackets a sign change. An exact zero at either endpoint counts
// as not bracketing, matching the f(a)*f(b) < 0 test.
func opposite(fa, fb float64) bool {
	return fa*fb < 0
}

// adjustBracket walks a and b symmetrically inward until f shows a sign
// change between them, up to the probe budget. Returns the adjusted
// endpoints and whether a sign-change bracket was found.
func adjustBracket(f Func, a, b float64) (float64, float64, bool) {
	for probe := 0; probe < bracketProbes; probe++ {
		if opposite(f(a), f(b)) {
			return a, b, true
		}
		a += bracketStep
		b -= bracketStep
		if a >= b {
			return a, b, false
		}
	}

	return a, b, opposite(f(a), f(b))
}
