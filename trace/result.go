package trace

import "github.com/google/uuid"

// Method identifies which engine produced a Result.
type Method string

const (
	MethodBisection     Method = "bisection"
	MethodFalsePosition Method = "false-position"
	MethodSecant        Method = "secant"
	MethodNewton        Method = "newton"
	MethodFixedPoint    Method = "fixed-point"
)

// Status is the terminal state of a run.
type Status int

const (
	// StatusConverged: the error metric fell below the tolerance (or an
	// exact zero of f was hit).
	StatusConverged Status = iota

	// StatusMaxIterations: the iteration cap was reached first. Root
	// still carries the best estimate so far.
	StatusMaxIterations

	// StatusFailed: the method's update became undefined; see Failure.
	StatusFailed
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max-iterations"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailureKind classifies a StatusFailed outcome.
type FailureKind int

const (
	// FailNone: the run did not fail.
	FailNone FailureKind = iota

	// FailNoBracket: bisection could not adjust the initial interval into
	// a sign-change bracket within its probe budget.
	FailNoBracket

	// FailDivisionByZero: two successive function values were identical,
	// leaving the secant-style update undefined.
	FailDivisionByZero

	// FailZeroDerivative: Newton's step hit f'(x) == 0 exactly.
	FailZeroDerivative

	// FailDiverged: a fixed-point estimate became NaN or infinite.
	FailDiverged
)

// String returns the lowercase name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailNone:
		return "none"
	case FailNoBracket:
		return "no-bracket"
	case FailDivisionByZero:
		return "division-by-zero"
	case FailZeroDerivative:
		return "zero-derivative"
	case FailDiverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Result is the sealed outcome of one engine run.
//
// Exactly one of three shapes, tagged by Status:
//   - StatusConverged     — Root is the converged root.
//   - StatusMaxIterations — Root is the best estimate produced so far.
//   - StatusFailed        — Failure names the reason; Root is the last
//     estimate before the failure (NaN when none exists).
//
// Records is the full ordered history accumulated before termination,
// whatever the outcome. A Result is owned by the run that produced it
// and is never shared across runs.
type Result struct {
	Method   Method
	RunID    uuid.UUID
	Status   Status
	Failure  FailureKind
	Root     float64
	Records  []Record
	Warnings []string
}

// Converged reports whether the run met its convergence predicate.
func (r *Result) Converged() bool { return r.Status == StatusConverged }

// Failed reports whether the run ended in a numerical failure.
func (r *Result) Failed() bool { return r.Status == StatusFailed }
