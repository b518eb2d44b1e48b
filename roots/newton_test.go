package roots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cunkin375/rootfind/roots"
	"github.com/cunkin375/rootfind/trace"
)

// TestNewton_Cubic runs the worked cubic from x0 = 1.5 with tol = 1e-3:
// the first tangent step overshoots to -0.4, then the iteration walks
// back and settles on the smallest root near 0.0543 within ten steps.
func TestNewton_Cubic(t *testing.T) {
	opts := roots.DefaultOptions()
	opts.Tolerance = 1e-3

	res, err := roots.Newton(cubic, cubicPrime, 1.5, opts)
	require.NoError(t, err)
	require.True(t, res.Converged())
	assert.LessOrEqual(t, len(res.Records), 10, "must converge within ten iterations")
	assert.Less(t, math.Abs(cubic(res.Root)), 1e-3, "the estimate is a genuine root")
	requireContiguousIndices(t, res)
}

// TestNewton_ErrorLagsOneStep verifies the reporting convention: record n
// carries the step size computed at iteration n-1, and record 0 carries
// none.
func TestNewton_ErrorLagsOneStep(t *testing.T) {
	opts := roots.DefaultOptions()
	opts.Tolerance = 1e-3

	res, err := roots.Newton(cubic, cubicPrime, 1.5, opts)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Records), 2)

	assert.False(t, res.Records[0].HasError, "record 0 precedes any step")
	require.True(t, res.Records[1].HasError)
	// x0 = 1.5, f = -0.475, f' = -0.25 → x1 = -0.4, so the first step is 1.9.
	assert.InDelta(t, 1.9, res.Records[1].Error, 1e-9)
	assert.InDelta(t, -0.4, res.Records[1].Estimate, 1e-9)
}

// TestNewton_RecordsCarryDerivative verifies f'(x_n) lands in the aux map.
func TestNewton_RecordsCarryDerivative(t *testing.T) {
	opts := roots.DefaultOptions()
	opts.Tolerance = 1e-3

	res, err := roots.Newton(cubic, cubicPrime, 1.5, opts)
	require.NoError(t, err)
	require.NotEmpty(t, res.Records)
	d, ok := res.Records[0].Aux[trace.AuxDerivative]
	require.True(t, ok)
	assert.InDelta(t, -0.25, d, 1e-9, "f'(1.5) = 3·2.25 - 9 + 2")
}

// TestNewton_ZeroDerivative verifies the fatal guard: f'(x0) == 0 exactly
// seals immediately, with the offending point recorded.
func TestNewton_ZeroDerivative(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2*x }
	df := func(x float64) float64 { return 2*x - 2 }

	res, err := roots.Newton(f, df, 1, roots.DefaultOptions())
	require.NoError(t, err, "a flat tangent is a Result, not a Go error")
	assert.True(t, res.Failed())
	assert.Equal(t, trace.FailZeroDerivative, res.Failure)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 0.0, res.Records[0].Aux[trace.AuxDerivative])
	assert.Equal(t, 1.0, res.Root)
}

// TestNewton_RerunFromRootIsIdempotent verifies feeding a converged root
// back as the initial guess converges within one additional iteration.
func TestNewton_RerunFromRootIsIdempotent(t *testing.T) {
	opts := roots.DefaultOptions()
	opts.Tolerance = 1e-3

	first, err := roots.Newton(cubic, cubicPrime, 1.5, opts)
	require.NoError(t, err)
	require.True(t, first.Converged())

	second, err := roots.Newton(cubic, cubicPrime, first.Root, opts)
	require.NoError(t, err)
	assert.True(t, second.Converged())
	assert.Len(t, second.Records, 1, "the step from a root is already below tolerance")
}

// TestNewton_MaxIterationsExceeded verifies the hard cap with the newest
// tangent estimate as best guess.
func TestNewton_MaxIterationsExceeded(t *testing.T) {
	opts := roots.DefaultOptions()
	opts.Tolerance = 1e-15
	opts.MaxIterations = 1

	res, err := roots.Newton(cubic, cubicPrime, 1.5, opts)
	require.NoError(t, err)
	assert.Equal(t, trace.StatusMaxIterations, res.Status)
	assert.Len(t, res.Records, 1)
	assert.InDelta(t, -0.4, res.Root, 1e-9, "best estimate is x1")
}

// TestNewton_InputValidation covers the sentinels, including a nil
// derivative handle.
func TestNewton_InputValidation(t *testing.T) {
	_, err := roots.Newton(cubic, nil, 1.5, roots.DefaultOptions())
	assert.ErrorIs(t, err, roots.ErrNilFunc)

	_, err = roots.Newton(nil, cubicPrime, 1.5, roots.DefaultOptions())
	assert.ErrorIs(t, err, roots.ErrNilFunc)

	_, err = roots.Newton(cubic, cubicPrime, math.Inf(-1), roots.DefaultOptions())
	assert.ErrorIs(t, err, roots.ErrBadSeed)
}
