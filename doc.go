// Package rootfind is a toolkit for locating zeros of scalar functions —
// five classic iterative methods, one shared convergence contract, and a
// full per-iteration trace of how each run behaved.
//
// 🚀 What is rootfind?
//
//	A small, focused library that brings together:
//		• Bracketing methods: Bisection, False Position (Regula Falsi)
//		• Open methods: Secant, Newton–Raphson, Fixed-Point iteration
//		• A uniform Result type: converged root, exhausted cap, or typed
//		  numerical failure — never a panic, never a silent infinite loop
//		• An ordered iteration trace per run, ready for rendering
//
// ✨ Why choose rootfind?
//
//   - Predictable – every run is bounded by MaxIterations, full stop
//   - Inspectable – each step records estimate, f-value, bracket, error
//   - Composable – function handles are plain closures; expression
//     strings compile via the expr subpackage
//   - Pure Go loops – no cgo, no global state, safe for parallel runs
//
// Everything is organized under four subpackages:
//
//	roots/  — the five engines and their shared Options
//	trace/  — iteration records, the per-run Recorder, Result variants
//	expr/   — compile "x**3 - 3*x**2 + 2*x - 0.1" into a function handle
//	report/ — Trace Sinks: CSV files and aligned text tables
//
// Quick example:
//
//	f := func(x float64) float64 { return x*x*x - 3*x*x + 2*x - 0.1 }
//	res, err := roots.Bisect(f, 0, 2, roots.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Converged() {
//	    fmt.Println("root:", res.Root, "in", len(res.Records), "iterations")
//	}
//
// See each subpackage's doc.go for method-by-method detail.
package rootfind
