package roots

import (
	"math"

	"github.com/cunkin375/rootfind/trace"
)

// Bisect locates a zero of f inside [a, b] by repeated interval halving.
//
// It returns:
//   - res : the sealed run outcome with the full iteration trace
//   - err : ErrNilFunc, ErrBadTolerance, ErrBadMaxIterations or ErrBadSeed
//     for invalid inputs; numerical outcomes never surface as Go errors
//
// Steps:
//  1. Validate inputs (O(1)).
//  2. If f(a) and f(b) do not have strictly opposite signs, walk both
//     endpoints symmetrically inward until they do; a bounded probe
//     budget guards the walk. Exhausting it seals FailNoBracket.
//  3. Each iteration: p = (a+b)/2, error = (b-a)/2; record
//     (n, a, b, p, f(p), error).
//  4. Stop with StatusConverged when error < ε, or immediately when
//     f(p) == 0 exactly (the short circuit ignores the threshold).
//  5. Otherwise replace the endpoint whose sign matches f(p): root in
//     [p, b] keeps b, root in [a, p] keeps a. Exactly one endpoint moves.
//  6. Exhausting MaxIterations seals StatusMaxIterations with the last
//     midpoint as the best estimate.
//
// The sign-opposition invariant f(a)·f(b) < 0 holds before every
// midpoint computation once step 2 succeeds, so each recorded estimate
// satisfies a ≤ p ≤ b and the error bound halves every step.
//
// Complexity: O(MaxIterations) iterations, three f evaluations each.
func Bisect(f Func, a, b float64, opts Options) (*trace.Result, error) {
	// 1) Validate handle, options and interval bounds.
	if f == nil {
		return nil, ErrNilFunc
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !isFinite(a) || !isFinite(b) {
		return nil, ErrBadSeed
	}

	pol := newPolicy(opts)
	rec := trace.NewRecorder(opts.Tolerance)

	// 2) Ensure a sign-change bracket, adjusting inward if needed.
	a, b, ok := adjustBracket(f, a, b)
	if !ok {
		return rec.Seal(trace.MethodBisection, trace.StatusFailed, trace.FailNoBracket, math.NaN()), nil
	}

	var p, fp, errEst float64
	for n := 0; n < pol.maxIter; n++ {
		// 3) Midpoint and the guaranteed error bound.
		p = (a + b) / 2
		fp = f(p)
		errEst = (b - a) / 2

		rec.Append(trace.Record{
			Index:     n,
			Estimate:  p,
			FValue:    fp,
			HasFValue: true,
			Error:     errEst,
			HasError:  true,
			Aux:       map[string]float64{trace.AuxLow: a, trace.AuxHigh: b},
		})

		// 4) Converged, or landed on the root exactly.
		if pol.converged(errEst) || fp == 0 {
			return rec.Seal(trace.MethodBisection, trace.StatusConverged, trace.FailNone, p), nil
		}

		// 5) Keep the half that still brackets the sign change.
		if opposite(f(a), fp) {
			b = p
		} else {
			a = p
		}
	}

	// 6) Cap reached without meeting the stop condition.
	return rec.Seal(trace.MethodBisection, trace.StatusMaxIterations, trace.FailNone, p), nil
}
