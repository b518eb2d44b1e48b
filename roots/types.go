package roots

// Func is an opaque scalar function handle x ↦ f(x).
//
// Engines may evaluate it several times per iteration (bisection
// re-evaluates f(a) when re-bracketing) and never cache results across
// calls, so handles must be pure: no call-count-sensitive side effects.
// Handles must be reentrant if runs execute in parallel.
type Func func(x float64) float64

// Options configures every engine.
//
// Fields:
//   - Tolerance     — positive convergence threshold ε; a run converges
//     when its error metric drops below ε.
//   - MaxIterations — hard cap on formula iterations (seed records do
//     not count against it).
//
// The zero value is not valid; start from DefaultOptions.
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns the baseline configuration: ε = 1e-6 and a cap
// of 50 iterations.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-6,
		MaxIterations: 50,
	}
}

// validate rejects configurations no engine can run with.
func (o Options) validate() error {
	if !isFinite(o.Tolerance) || o.Tolerance <= 0 {
		return ErrBadTolerance
	}
	if o.MaxIterations < 1 {
		return ErrBadMaxIterations
	}

	return nil
}
