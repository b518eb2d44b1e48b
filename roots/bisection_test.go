package roots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cunkin375/rootfind/roots"
	"github.com/cunkin375/rootfind/trace"
)

// TestBisect_CubicWithAutoAdjustment runs the cubic on [0, 2], where both
// endpoint values are negative: the engine must walk the interval inward
// to [0.5, 1.5] before iterating, then converge to the middle root.
func TestBisect_CubicWithAutoAdjustment(t *testing.T) {
	opts := roots.DefaultOptions()
	opts.Tolerance = 1e-3

	res, err := roots.Bisect(cubic, 0, 2, opts)
	require.NoError(t, err)
	require.True(t, res.Converged(), "cubic must converge on the adjusted bracket")

	// Bracket width starts at 1.0 after adjustment, so the error bound is
	// 0.5/2^n and drops below 1e-3 at n=9: exactly ten records.
	assert.Len(t, res.Records, 10)
	assert.InDelta(t, 0.8995, res.Root, 5e-3, "middle root of the cubic")
	assert.Less(t, math.Abs(cubic(res.Root)), 1e-2)
	requireContiguousIndices(t, res)
}

// TestBisect_BracketInvariants checks a ≤ p ≤ b on every record and the
// halving of the error bound between consecutive iterations.
func TestBisect_BracketInvariants(t *testing.T) {
	opts := roots.DefaultOptions()
	opts.Tolerance = 1e-3

	res, err := roots.Bisect(cubic, 0.5, 1.5, opts)
	require.NoError(t, err)
	require.True(t, res.Converged())

	for i, rec := range res.Records {
		a, okA := rec.Aux[trace.AuxLow]
		b, okB := rec.Aux[trace.AuxHigh]
		require.True(t, okA && okB, "record %d must carry its bracket", i)
		assert.LessOrEqual(t, a, rec.Estimate, "record %d: estimate below bracket", i)
		assert.LessOrEqual(t, rec.Estimate, b, "record %d: estimate above bracket", i)
		if i > 0 {
			assert.InDelta(t, res.Records[i-1].Error/2, rec.Error, 1e-4,
				"record %d: error bound must halve", i)
		}
	}
}

// TestBisect_ExactZeroShortCircuit verifies that landing on the root
// exactly stops the run immediately, whatever the error bound says.
func TestBisect_ExactZeroShortCircuit(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }
	opts := roots.DefaultOptions()
	opts.Tolerance = 1e-3
	opts.MaxIterations = 1

	res, err := roots.Bisect(f, 0, 2, opts)
	require.NoError(t, err)
	assert.True(t, res.Converged(), "f(midpoint) == 0 must convert even with error 1.0")
	assert.Equal(t, 1.0, res.Root)
	assert.Len(t, res.Records, 1)
}

// TestBisect_NoBracket verifies the bounded adjustment gives up on a
// function with no sign change anywhere.
func TestBisect_NoBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	res, err := roots.Bisect(f, -1, 1, roots.DefaultOptions())
	require.NoError(t, err, "a hopeless bracket is a Result, not a Go error")
	assert.True(t, res.Failed())
	assert.Equal(t, trace.FailNoBracket, res.Failure)
	assert.Empty(t, res.Records, "no iterations happen without a bracket")
	assert.True(t, math.IsNaN(res.Root))
}

// TestBisect_MaxIterationsExceeded verifies the hard cap with the last
// midpoint as best estimate.
func TestBisect_MaxIterationsExceeded(t *testing.T) {
	opts := roots.DefaultOptions()
	opts.Tolerance = 1e-3
	opts.MaxIterations = 1

	res, err := roots.Bisect(cubic, 0.5, 1.5, opts)
	require.NoError(t, err)
	assert.Equal(t, trace.StatusMaxIterations, res.Status)
	assert.Len(t, res.Records, 1)
	assert.Equal(t, 1.0, res.Root, "best estimate is the only midpoint computed")
}

// TestBisect_InputValidation covers the caller-mistake sentinels.
func TestBisect_InputValidation(t *testing.T) {
	opts := roots.DefaultOptions()

	_, err := roots.Bisect(nil, 0, 1, opts)
	assert.ErrorIs(t, err, roots.ErrNilFunc)

	bad := opts
	bad.Tolerance = 0
	_, err = roots.Bisect(cubic, 0, 1, bad)
	assert.ErrorIs(t, err, roots.ErrBadTolerance)

	bad = opts
	bad.MaxIterations = 0
	_, err = roots.Bisect(cubic, 0, 1, bad)
	assert.ErrorIs(t, err, roots.ErrBadMaxIterations)

	_, err = roots.Bisect(cubic, math.NaN(), 1, opts)
	assert.ErrorIs(t, err, roots.ErrBadSeed)
}
