// Package report renders a run's iteration trace for humans: CSV rows
// for files and spreadsheets, or an aligned text table for terminals.
//
// Sinks are the external collaborators of the engines — an engine never
// owns one. Callers run a method, then hand the *trace.Result to a Sink:
//
//	res, _ := roots.Secant(f, 0.5, 1.5, opts)
//	_ = report.NewCSVSink(file).Emit(res)
//
// The column set follows the method (bisection shows its bracket, Newton
// its derivative); absent values — a seed record's missing error, say —
// render as "N/A", never as a default number. Record order is trace
// order, and partial traces from failed runs render the same way.
package report
