/*
Package calc implements the polynomial calculator's command layer: the
operand-stack dispatcher that reads classified input lines, executes
stack/arithmetic commands against a poly.Poly stack, and reports
diagnostics. It sits directly above the stack and polytext packages.

# BSD License

Please refer to the license file at the module root for more
information.
*/
package calc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'calc'
func tracer() tracing.Trace {
	return tracing.Select("calc")
}
