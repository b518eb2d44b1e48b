package roots

import (
	"math"

	"github.com/cunkin375/rootfind/trace"
)

// Secant locates a zero of f by secant-line interpolation over the two
// most recent estimates. No bracket is maintained and no sign analysis
// is performed — after each step the window simply shifts to the two
// newest points, which is what distinguishes it from FalsePosition.
//
// Steps:
//  1. Validate inputs.
//  2. Seed records 0 and 1 with p0 and p1 and their f-values (record 1
//     carries |p1 - p0| as its error).
//  3. Each iteration: p = p1 - f(p1)·(p1-p0)/(f(p1)-f(p0)),
//     error = |p - p1|. A zero denominator seals FailDivisionByZero.
//  4. Converged when error < ε; otherwise shift p0 ← p1, p1 ← p.
//  5. Exhausting MaxIterations seals StatusMaxIterations with the newest
//     interpolant as the best estimate.
//
// Complexity: O(MaxIterations) iterations, three f evaluations each.
func Secant(f Func, p0, p1 float64, opts Options) (*trace.Result, error) {
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

	// 2) Seed the trace with the two starting points.
	rec.Append(trace.Record{Index: 0, Estimate: p0, FValue: f(p0), HasFValue: true})
	rec.Append(trace.Record{
		Index:     1,
		Estimate:  p1,
		FValue:    f(p1),
		HasFValue: true,
		Error:     math.Abs(p1 - p0),
		HasError:  true,
	})

	prev, curr := p0, p1
	pNext := math.NaN()
	index := 2
	for n := 0; n < pol.maxIter; n++ {
		fPrev, fCurr := f(prev), f(curr)

		// 3) Interpolate; guard the denominator first.
		if fCurr-fPrev == 0 {
			return rec.Seal(trace.MethodSecant, trace.StatusFailed, trace.FailDivisionByZero, curr), nil
		}
		pNext = curr - fCurr*(curr-prev)/(fCurr-fPrev)
		errEst := math.Abs(pNext - curr)

		rec.Append(trace.Record{
			Index:     index,
			Estimate:  pNext,
			FValue:    f(pNext),
			HasFValue: true,
			Error:     errEst,
			HasError:  true,
		})
		index++

		// 4) Converged, or slide the two-point window forward.
		if pol.converged(errEst) {
			return rec.Seal(trace.MethodSecant, trace.StatusConverged, trace.FailNone, pNext), nil
		}
		prev, curr = curr, pNext
	}

	// 5) Cap reached.
	return rec.Seal(trace.MethodSecant, trace.StatusMaxIterations, trace.FailNone, pNext), nil
}
