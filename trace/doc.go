// Package trace defines the per-iteration history shared by every
// root-finding engine: the immutable Record, the per-run Recorder that
// accumulates records in append order, and the sealed Result a run
// terminates into.
//
// A Recorder belongs to exactly one run. The engine appends one Record
// per iteration (plus any seed records its method defines), then seals
// the Recorder into a Result; sealing moves the record slice, so the
// Result is the sole owner of the history afterwards.
//
// Numeric fields are rounded at append time to a display precision
// derived from the run's tolerance (DecimalPlaces). Engines always keep
// unrounded locals for convergence and sign checks — the rounded values
// exist purely for reporting.
package trace
