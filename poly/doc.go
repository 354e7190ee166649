/*
Package poly implements sparse, recursively-nested multivariate
polynomials with 64-bit integer coefficients.

# BSD License

Please refer to the license file at the module root for more
information.

A Poly is either a constant or a non-empty, strictly exponent-ordered
sequence of monomials whose coefficients are themselves polynomials
over the next variable. FromMonomials is the canonicalizing
constructor; Add and scalarMul finish through the same collapse step
it uses rather than through FromMonomials itself, and Neg and Clone
copy an already canonical value. Every result is in canonical form,
which keeps IsEq a pure structural comparison.
*/
package poly

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'poly'
func tracer() tracing.Trace {
	return tracing.Select("poly")
}
