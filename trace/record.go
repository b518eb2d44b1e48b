package trace

// Auxiliary field keys used by the engines.
const (
	// AuxLow and AuxHigh carry the bracket endpoints a_n and b_n as they
	// stood when the record's estimate was computed.
	AuxLow  = "a"
	AuxHigh = "b"

	// AuxDerivative carries f'(p_n) for Newton's method.
	AuxDerivative = "dfdx"
)

// Record is one row of a run's convergence history.
//
// FValue and Error are optional: seed records have no error because no
// previous estimate exists yet, and some methods do not evaluate f at
// their seed points. Absence is explicit (HasFValue / HasError), never a
// zero stand-in, so sinks can render an "N/A" marker.
//
// Records are immutable once appended; their position in the trace
// always equals Index.
type Record struct {
	// Index is the iteration number, starting at 0.
	Index int

	// Estimate is the method's current approximation p_n.
	Estimate float64

	// FValue is f(Estimate), when the method evaluated it.
	FValue    float64
	HasFValue bool

	// Error is the method's error metric for this step (|p_n - p_{n-1}|,
	// or half the bracket width for bisection).
	Error    float64
	HasError bool

	// Aux holds named per-method extras (bracket endpoints, derivative).
	// Nil when the method has none.
	Aux map[string]float64
}
