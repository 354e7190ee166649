package polytext

import (
	"strconv"
	"strings"

	"github.com/npillmayer/polycalc/poly"
)

// Print renders p in its canonical textual form: a Constant becomes a
// signed decimal, a Nested value becomes its monomials joined by "+",
// each monomial written "(<inner>,<exp>)" with no extraneous
// parentheses or whitespace. Printing a canonical Poly always yields a
// literal that Parse accepts and that reconstructs an equal Poly.
func Print(p poly.Poly) string {
	var b strings.Builder
	writePoly(&b, p)
	return b.String()
}

func writePoly(b *strings.Builder, p poly.Poly) {
	if c, ok := poly.AsCoeff(p); ok {
		b.WriteString(strconv.FormatInt(c, 10))
		return
	}
	for i, mono := range poly.Monomials(p) {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteByte('(')
		writePoly(b, mono.Coeff)
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(int64(mono.Exp), 10))
		b.WriteByte(')')
	}
}
