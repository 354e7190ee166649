package calc

// cmdFunc is the uniform shape every dispatch table entry has: given
// the calculator, the line number, and whatever followed the first
// space on the line (rest, hasArg), decide whether the argument is
// well-formed and run the command, or report a diagnostic.
type cmdFunc func(c *Calculator, lineNo int, rest string, hasArg bool)

// dispatch is the flat command-name-to-handler table the design notes
// prefer over chained string comparisons.
var dispatch = map[string]cmdFunc{
	"ZERO":     noArg((*Calculator).cmdZero),
	"IS_COEFF": noArg((*Calculator).cmdIsCoeff),
	"IS_ZERO":  noArg((*Calculator).cmdIsZero),
	"CLONE":    noArg((*Calculator).cmdClone),
	"ADD":      noArg((*Calculator).cmdAdd),
	"MUL":      noArg((*Calculator).cmdMul),
	"NEG":      noArg((*Calculator).cmdNeg),
	"SUB":      noArg((*Calculator).cmdSub),
	"IS_EQ":    noArg((*Calculator).cmdIsEq),
	"DEG":      noArg((*Calculator).cmdDeg),
	"POP":      noArg((*Calculator).cmdPop),
	"PRINT":    noArg((*Calculator).cmdPrint),
	"DEG_BY":   degByArg,
	"AT":       atArg,
	"COMPOSE":  composeArg,
}

// noArg adapts a zero-argument command method to cmdFunc, rejecting
// the call with WRONG COMMAND if an argument was present. A no-arg
// command followed by a space is not one of DEG_BY/AT/COMPOSE, so it
// is simply unrecognized.
func noArg(f func(*Calculator, int)) cmdFunc {
	return func(c *Calculator, lineNo int, rest string, hasArg bool) {
		if hasArg {
			c.reportError(lineNo, msgWrongCommand)
			return
		}
		f(c, lineNo)
	}
}

func degByArg(c *Calculator, lineNo int, rest string, hasArg bool) {
	if !hasArg {
		c.reportError(lineNo, msgDegByWrongVariable)
		return
	}
	idx, ok := parseUintArg(rest)
	if !ok {
		c.reportError(lineNo, msgDegByWrongVariable)
		return
	}
	c.cmdDegBy(lineNo, idx)
}

func atArg(c *Calculator, lineNo int, rest string, hasArg bool) {
	if !hasArg {
		c.reportError(lineNo, msgAtWrongValue)
		return
	}
	x, ok := parseIntArg(rest)
	if !ok {
		c.reportError(lineNo, msgAtWrongValue)
		return
	}
	c.cmdAt(lineNo, x)
}

func composeArg(c *Calculator, lineNo int, rest string, hasArg bool) {
	if !hasArg {
		c.reportError(lineNo, msgComposeWrongParameter)
		return
	}
	k, ok := parseUintArg(rest)
	if !ok {
		c.reportError(lineNo, msgComposeWrongParameter)
		return
	}
	c.cmdCompose(lineNo, k)
}
