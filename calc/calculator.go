package calc

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/polycalc/poly"
	"github.com/npillmayer/polycalc/polytext"
	"github.com/npillmayer/polycalc/stack"
	"github.com/npillmayer/schuko/gconf"
)

// Verbose, when true, makes ProcessLine trace every line it receives.
// The command-line entrypoint sets this from its --trace flag; it
// defaults to off like the rest of the tracing the schuko ecosystem
// wires up.
var Verbose bool

// Calculator owns the operand stack and the two output streams and
// drives one line at a time through classification, parsing, and
// command dispatch.
type Calculator struct {
	stack *stack.Stack
	out   io.Writer
	errw  io.Writer
}

// New returns a Calculator with an empty stack, writing values to out
// and diagnostics to errw.
func New(out, errw io.Writer) *Calculator {
	return &Calculator{stack: stack.New(), out: out, errw: errw}
}

// ProcessLine classifies and executes a single input line. lineNo is
// the 1-based line number used in any diagnostic this line produces;
// line must already have its trailing newline stripped.
func (c *Calculator) ProcessLine(lineNo int, line string) {
	if Verbose || gconf.IsSet("polycalc.verbosetrace") {
		tracer().Infof("line %d: %q", lineNo, line)
	}
	switch classifyLine(line) {
	case lineBlank, lineComment:
		return
	case lineCommand:
		c.runCommand(lineNo, line)
	default:
		c.runLiteral(lineNo, line)
	}
}

func (c *Calculator) runLiteral(lineNo int, line string) {
	p, err := polytext.Parse(line)
	if err != nil {
		c.reportError(lineNo, msgWrongPoly)
		return
	}
	c.stack.Push(p)
}

// runCommand splits line on the first space, so "DEG_BY 3" yields
// name="DEG_BY", rest="3", hasArg=true, while a bare "DEG_BY" yields
// hasArg=false. A name that doesn't match any known command falls
// through to WRONG COMMAND.
func (c *Calculator) runCommand(lineNo int, line string) {
	name, rest, hasArg := strings.Cut(line, " ")
	h, ok := dispatch[name]
	if !ok {
		c.reportError(lineNo, msgWrongCommand)
		return
	}
	h(c, lineNo, rest, hasArg)
}

func (c *Calculator) reportError(lineNo int, msg string) {
	fmt.Fprintf(c.errw, "ERROR %d %s\n", lineNo, msg)
}

func (c *Calculator) printBool(b bool) {
	if b {
		fmt.Fprintln(c.out, "1")
	} else {
		fmt.Fprintln(c.out, "0")
	}
}

func (c *Calculator) cmdZero(int) {
	c.stack.Push(poly.Zero())
}

func (c *Calculator) cmdIsCoeff(lineNo int) {
	top, err := c.stack.Top()
	if err != nil {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	c.printBool(poly.IsCoeff(top))
}

func (c *Calculator) cmdIsZero(lineNo int) {
	top, err := c.stack.Top()
	if err != nil {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	c.printBool(poly.IsZero(top))
}

func (c *Calculator) cmdClone(lineNo int) {
	top, err := c.stack.Top()
	if err != nil {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	c.stack.Push(poly.Clone(top))
}

// twoArg implements ADD/SUB/MUL: pop the top as a, pop the new top as
// b, push op(a, b). This ordering matters for SUB, whose result is
// (what was on top) minus (what was below it).
func (c *Calculator) twoArg(lineNo int, op func(a, b poly.Poly) poly.Poly) {
	if c.stack.Len() < 2 {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	a, _ := c.stack.PopValue()
	b, _ := c.stack.PopValue()
	c.stack.Push(op(a, b))
}

func (c *Calculator) cmdAdd(lineNo int) { c.twoArg(lineNo, poly.Add) }
func (c *Calculator) cmdMul(lineNo int) { c.twoArg(lineNo, poly.Mul) }
func (c *Calculator) cmdSub(lineNo int) { c.twoArg(lineNo, poly.Sub) }

func (c *Calculator) cmdNeg(lineNo int) {
	top, err := c.stack.Top()
	if err != nil {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	_ = c.stack.Pop()
	c.stack.Push(poly.Neg(top))
}

func (c *Calculator) cmdIsEq(lineNo int) {
	if c.stack.Len() < 2 {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	a, _ := c.stack.Top()
	b, _ := c.stack.SecondFromTop()
	c.printBool(poly.IsEq(a, b))
}

func (c *Calculator) cmdDeg(lineNo int) {
	top, err := c.stack.Top()
	if err != nil {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	fmt.Fprintln(c.out, poly.Deg(top))
}

func (c *Calculator) cmdPop(lineNo int) {
	if err := c.stack.Pop(); err != nil {
		c.reportError(lineNo, msgStackUnderflow)
	}
}

func (c *Calculator) cmdPrint(lineNo int) {
	top, err := c.stack.Top()
	if err != nil {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	fmt.Fprintln(c.out, polytext.Print(top))
}

func (c *Calculator) cmdDegBy(lineNo int, idx uint64) {
	top, err := c.stack.Top()
	if err != nil {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	fmt.Fprintln(c.out, poly.DegBy(top, idx))
}

func (c *Calculator) cmdAt(lineNo int, x int64) {
	top, err := c.stack.Top()
	if err != nil {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	_ = c.stack.Pop()
	c.stack.Push(poly.At(top, x))
}

// cmdCompose implements COMPOSE k. The stack top is the receiver p,
// and the k polynomials beneath it become the substitution array, with
// the deepest one at index 0, bound to the outermost variable.
func (c *Calculator) cmdCompose(lineNo int, k uint64) {
	p, err := c.stack.Top()
	if err != nil {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	if uint64(c.stack.Len()-1) < k {
		c.reportError(lineNo, msgStackUnderflow)
		return
	}
	_ = c.stack.Pop()
	qs := make([]poly.Poly, k)
	for i := uint64(0); i < k; i++ {
		v, _ := c.stack.PopValue()
		qs[k-1-i] = v
	}
	c.stack.Push(poly.Compose(p, qs))
}
