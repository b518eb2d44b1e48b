// Package roots implements five classic iterative methods for locating
// a zero of a scalar function, all sharing one Options surface and one
// convergence contract.
//
// Methods:
//
//	Bisect        — bracketing; halves a sign-change interval each step.
//	                Guaranteed error bound (b-a)/2, linear convergence.
//	FalsePosition — bracketing; secant-style interpolation, but one
//	                endpoint is retained by sign each step.
//	Secant        — open; secant-style interpolation over the two most
//	                recent estimates, superlinear convergence.
//	Newton        — open; tangent-line steps, needs f', quadratic
//	                convergence near a simple root.
//	FixedPoint    — open; iterates p = g(p), converges when g is a
//	                contraction near the fixed point.
//
// Shared contract:
//   - Convergence means the method's error metric falls below
//     Options.Tolerance (bisection also stops on f(p) == 0 exactly).
//   - Options.MaxIterations is a hard cap — no engine can loop forever,
//     even on a mathematically non-terminating input.
//   - Every run returns a *trace.Result carrying the full iteration
//     history. Numerical trouble (lost bracket, zero denominator, zero
//     derivative, divergence) is a Result status, not a Go error; Go
//     errors are reserved for invalid inputs (nil handle, bad tolerance,
//     non-finite seeds).
//
// Errors (sentinel):
//
//	– ErrNilFunc          if a required function handle is nil.
//	– ErrBadTolerance     if Tolerance is not a positive finite number.
//	– ErrBadMaxIterations if MaxIterations < 1.
//	– ErrBadSeed          if an initial estimate or bound is NaN/Inf.
//
// Example usage:
//
//	f := func(x float64) float64 { return math.Exp(-x) - 0.2 }
//	opts := roots.DefaultOptions()
//	opts.Tolerance = 1e-3
//	res, err := roots.FalsePosition(f, 0, 2, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	switch res.Status {
//	case trace.StatusConverged:
//	    fmt.Println("root:", res.Root)
//	case trace.StatusMaxIterations:
//	    fmt.Println("best estimate:", res.Root)
//	case trace.StatusFailed:
//	    fmt.Println("failed:", res.Failure)
//	}
package roots
