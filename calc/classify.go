package calc

// lineKind is the result of classifying a raw input line by its first
// character, before deciding whether to hand a line to the command
// dispatcher or the polynomial parser.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineCommand
	linePoly
)

// classifyLine inspects the first character of line (already stripped
// of its trailing newline) and reports what kind of line it is. An
// empty line is blank; a line starting with '#' is a comment; a line
// starting with an ASCII letter is a command; anything else is taken
// to be a polynomial literal (the parser is the final arbiter of its
// validity).
func classifyLine(line string) lineKind {
	if len(line) == 0 {
		return lineBlank
	}
	switch c := line[0]; {
	case c == '#':
		return lineComment
	case isASCIILetter(c):
		return lineCommand
	default:
		return linePoly
	}
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
