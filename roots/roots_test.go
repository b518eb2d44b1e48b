package roots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cunkin375/rootfind/trace"
)

// cubic is the worked example used across methods: three simple real
// roots, near 0.054, 0.900 and 2.048.
func cubic(x float64) float64 { return x*x*x - 3*x*x + 2*x - 0.1 }

// cubicPrime is the cubic's derivative.
func cubicPrime(x float64) float64 { return 3*x*x - 6*x + 2 }

// expDecay has a single root at ln(5) ≈ 1.6094.
func expDecay(x float64) float64 { return math.Exp(-x) - 0.2 }

// requireContiguousIndices asserts trace[n].Index == n for the whole
// history: strictly increasing by one, no gaps, no duplicates.
func requireContiguousIndices(t *testing.T, res *trace.Result) {
	t.Helper()
	for i, rec := range res.Records {
		require.Equal(t, i, rec.Index, "record %d carries wrong index", i)
	}
}
