// Package expr compiles textual formulas like
//
//	x**3 - 3*x**2 + 2*x - 0.1
//
// into roots.Func handles, so callers (and the rootfind CLI) can specify
// f, f' and g without writing Go.
//
// The single free variable is x. Exponentiation is the ** operator;
// x^2 and pow(x, 2) are accepted spellings of the same thing. The
// helper functions sin, cos, tan, exp, log, sqrt, abs and pow are
// bound, along with the constants pi and e. A comma between two digits
// is read as a decimal point ("0,5" → 0.5); separate numeric call
// arguments with a space after the comma to keep them apart.
//
// Compilation errors surface from Compile; evaluation errors inside the
// returned handle (a domain error from log, say) yield NaN, keeping the
// handle's pure x ↦ y signature.
package expr
