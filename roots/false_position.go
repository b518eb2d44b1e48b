package roots

import (
	"math"

	"github.com/cunkin375/rootfind/trace"
)

// warnNoBracket is attached to a false-position run whose seeds do not
// show a sign change; the run proceeds regardless.
const warnNoBracket = "initial estimates do not bracket a sign change; the method may fail to converge"

// FalsePosition locates a zero of f by the Regula Falsi method: the
// secant-style interpolation formula applied to a maintained bracket.
//
// p0 and p1 are expected, but not required, to bracket a sign change. A
// violation is recorded as a warning on the Result, never a failure —
// the method simply loses its bracketing guarantee.
//
// Steps:
//  1. Validate inputs; warn if f(p0)·f(p1) ≥ 0.
//  2. Seed records 0 and 1 with the two initial points (record 1 carries
//     |p1 - p0| as its error), mirroring the secant trace shape.
//  3. Each iteration on bracket [a, b]:
//     p = a - f(a)·(b-a)/(f(b)-f(a)), error = |p - p_prev|.
//     A zero denominator seals FailDivisionByZero.
//  4. Converged when error < ε.
//  5. Retain one endpoint by sign: f(a)·f(p) < 0 keeps a (sets b = p),
//     otherwise keeps b (sets a = p). This retention is what separates
//     Regula Falsi from the plain secant method, which always shifts to
//     the two newest points.
//  6. Exhausting MaxIterations seals StatusMaxIterations with the newest
//     interpolant as the best estimate.
//
// Complexity: O(MaxIterations) iterations, three f evaluations each.
func FalsePosition(f Func, p0, p1 float64, opts Options) (*trace.Result, error) {
	// 1) Validate handle, options and seeds.
	if f == nil {
		return nil, ErrNilFunc
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !isFinite(p0) || !isFinite(p1) {
		return nil, ErrBadSeed
	}

	pol := newPolicy(opts)
	rec := trace.NewRecorder(opts.Tolerance)

	if !opposite(f(p0), f(p1)) {
		rec.Warn(warnNoBracket)
	}

	// 2) Seed the trace with the two starting points.
	rec.Append(trace.Record{Index: 0, Estimate: p0})
	rec.Append(trace.Record{
		Index:    1,
		Estimate: p1,
		Error:    math.Abs(p1 - p0),
		HasError: true,
	})

	a, b := p0, p1
	pPrev := p1
	pNext := math.NaN()
	index := 2
	for n := 0; n < pol.maxIter; n++ {
		fa, fb := f(a), f(b)

		// 3) Interpolate; guard the denominator first.
		if fb-fa == 0 {
			return rec.Seal(trace.MethodFalsePosition, trace.StatusFailed, trace.FailDivisionByZero, pPrev), nil
		}
		pNext = a - fa*(b-a)/(fb-fa)
		errEst := math.Abs(pNext - pPrev)

		rec.Append(trace.Record{
			Index:    index,
			Estimate: pNext,
			Error:    errEst,
			HasError: true,
			Aux:      map[string]float64{trace.AuxLow: a, trace.AuxHigh: b},
		})
		index++

		// 4) Converged on the step size.
		if pol.converged(errEst) {
			return rec.Seal(trace.MethodFalsePosition, trace.StatusConverged, trace.FailNone, pNext), nil
		}

		// 5) Sign-based endpoint retention.
		if opposite(fa, f(pNext)) {
			b = pNext
		} else {
			a = pNext
		}
		pPrev = pNext
	}

	// 6) Cap reached.
	return rec.Seal(trace.MethodFalsePosition, trace.StatusMaxIterations, trace.FailNone, pNext), nil
}
