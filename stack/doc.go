/*
Package stack implements the growable LIFO operand stack the command
dispatcher pushes and pops poly.Poly values on. It grows geometrically
when full and shrinks geometrically once under half full, never below
its initial capacity.

# BSD License

Please refer to the license file at the module root for more
information.
*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stack'
func tracer() tracing.Trace {
	return tracing.Select("stack")
}
