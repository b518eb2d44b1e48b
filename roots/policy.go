package roots

// policy is the convergence policy shared by all engines: one tolerance
// comparison plus the iteration cap, immutable for the lifetime of a run.
type policy struct {
	tol     float64
	maxIter int
}

func newPolicy(o Options) policy {
	return policy{tol: o.Tolerance, maxIter: o.MaxIterations}
}

// converged reports whether the error metric has fallen below tolerance.
// Strictly below — an error exactly equal to ε keeps iterating.
func (p policy) converged(errEst float64) bool {
	return errEst < p.tol
}
