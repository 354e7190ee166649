/*
Package polytext implements the textual form of poly.Poly values: a
canonical printer and a single-pass recursive-descent parser for the
polynomial-literal grammar

	Poly  = Coeff | Mono { "+" Mono } ;
	Mono  = "(" Poly "," Exp ")" ;
	Coeff = [ "-" ] digit { digit } ;
	Exp   =         digit { digit } ;

No whitespace is permitted anywhere inside a literal.

# BSD License

Please refer to the license file at the module root for more
information.
*/
package polytext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polytext'
func tracer() tracing.Trace {
	return tracing.Select("polytext")
}
