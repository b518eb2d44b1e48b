package roots

import (
	"math"

	"github.com/cunkin375/rootfind/trace"
)

// Newton locates a zero of f by Newton–Raphson tangent steps, using the
// caller-supplied derivative df.
//
// The recorded error runs one step behind the estimate it was computed
// from: record n carries the step size computed at iteration n-1, so
// record 0 has no error. The convergence check itself always uses the
// current step |x_next - x_n|.
//
// Steps:
//  1. Validate inputs (both handles are required).
//  2. Each iteration at x: evaluate f(x) and f'(x).
//     f'(x) == 0 exactly is fatal — the step is undefined; the offending
//     point is still recorded, then the run seals FailZeroDerivative.
//  3. x_next = x - f(x)/f'(x); record (n, x, f(x), f'(x), prior step).
//  4. Converged when |x_next - x| < ε; the converged Root is x_next,
//     one tangent step past the last recorded estimate.
//  5. Exhausting MaxIterations seals StatusMaxIterations with the newest
//     x as the best estimate.
//
// Complexity: O(MaxIterations) iterations, one f and one df evaluation each.
func Newton(f, df Func, x0 float64, opts Options) (*trace.Result, error) {
	// 1) Validate handles, options and the starting point.
	if f == nil || df == nil {
		return nil, ErrNilFunc
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !isFinite(x0) {
		return nil, ErrBadSeed
	}

	pol := newPolicy(opts)
	rec := trace.NewRecorder(opts.Tolerance)

	x := x0
	prevStep := math.NaN()
	hasPrevStep := false
	for n := 0; n < pol.maxIter; n++ {
		fx := f(x)
		dfx := df(x)

		// 2) Fatal: the tangent is horizontal, no step exists.
		if dfx == 0 {
			rec.Append(trace.Record{
				Index:     n,
				Estimate:  x,
				FValue:    fx,
				HasFValue: true,
				Error:     prevStep,
				HasError:  hasPrevStep,
				Aux:       map[string]float64{trace.AuxDerivative: 0},
			})

			return rec.Seal(trace.MethodNewton, trace.StatusFailed, trace.FailZeroDerivative, x), nil
		}

		// 3) Tangent step; the record's error is the previous step size.
		xNext := x - fx/dfx
		rec.Append(trace.Record{
			Index:     n,
			Estimate:  x,
			FValue:    fx,
			HasFValue: true,
			Error:     prevStep,
			HasError:  hasPrevStep,
			Aux:       map[string]float64{trace.AuxDerivative: dfx},
		})

		// 4) Converge on the current step size.
		step := math.Abs(xNext - x)
		if pol.converged(step) {
			return rec.Seal(trace.MethodNewton, trace.StatusConverged, trace.FailNone, xNext), nil
		}

		prevStep = step
		hasPrevStep = true
		x = xNext
	}

	// 5) Cap reached.
	return rec.Seal(trace.MethodNewton, trace.StatusMaxIterations, trace.FailNone, x), nil
}
