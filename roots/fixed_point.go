package roots

import (
	"math"

	"github.com/cunkin375/rootfind/trace"
)

// FixedPoint iterates p = g(p) from p0 until successive estimates agree
// to within tolerance. g must be supplied by the caller and should be a
// contraction near the sought fixed point; no bracket, derivative or
// sign analysis is involved.
//
// A non-finite estimate (NaN or ±Inf) seals FailDiverged immediately —
// an unbounded sequence would otherwise burn the whole iteration cap
// producing garbage records. Bounded non-convergent sequences still run
// to StatusMaxIterations.
//
// Steps:
//  1. Validate inputs.
//  2. Seed record 0 with p0 (no error exists yet).
//  3. Each iteration: p = g(p_prev), error = |p - p_prev|; record it.
//     Non-finite p seals FailDiverged with p_prev as the last good
//     estimate.
//  4. Converged when error < ε.
//  5. Exhausting MaxIterations seals StatusMaxIterations with the newest
//     estimate.
//
// Complexity: O(MaxIterations) iterations, one g evaluation each.
func FixedPoint(g Func, p0 float64, opts Options) (*trace.Result, error) {
	// 1) Validate handle, options and the starting point.
	if g == nil {
		return nil, ErrNilFunc
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !isFinite(p0) {
		return nil, ErrBadSeed
	}

	pol := newPolicy(opts)
	rec := trace.NewRecorder(opts.Tolerance)

	// 2) Seed record 0: no previous estimate, no error.
	rec.Append(trace.Record{Index: 0, Estimate: p0})

	pPrev := p0
	for n := 1; n <= pol.maxIter; n++ {
		// 3) One application of the iteration function.
		pCurr := g(pPrev)
		errEst := math.Abs(pCurr - pPrev)

		rec.Append(trace.Record{
			Index:    n,
			Estimate: pCurr,
			Error:    errEst,
			HasError: isFinite(errEst),
		})

		if !isFinite(pCurr) {
			return rec.Seal(trace.MethodFixedPoint, trace.StatusFailed, trace.FailDiverged, pPrev), nil
		}

		// 4) Converged on the step size.
		if pol.converged(errEst) {
			return rec.Seal(trace.MethodFixedPoint, trace.StatusConverged, trace.FailNone, pCurr), nil
		}
		pPrev = pCurr
	}

	// 5) Cap reached.
	return rec.Seal(trace.MethodFixedPoint, trace.StatusMaxIterations, trace.FailNone, pPrev), nil
}
