package polytext

import (
	"errors"
	"strconv"

	"github.com/npillmayer/polycalc/poly"
)

// ErrWrongPoly is returned for any syntactic, structural, or
// range violation in a polynomial literal. The command layer reports
// it to the user as "WRONG POLY".
var ErrWrongPoly = errors.New("wrong poly")

// Parse parses a single polynomial literal (no surrounding whitespace,
// no trailing newline) into a canonical poly.Poly, per the grammar
//
//	Poly  = Coeff | Mono { "+" Mono } ;
//	Mono  = "(" Poly "," Exp ")" ;
//	Coeff = [ "-" ] digit { digit } ;
//	Exp   =         digit { digit } ;
//
// Any violation (unbalanced parens, a misplaced operator, a Coeff or
// Exp literal out of range, trailing garbage) yields ErrWrongPoly.
func Parse(line string) (poly.Poly, error) {
	c := &cursor{s: line}
	p, err := c.parsePoly()
	if err != nil {
		return poly.Poly{}, err
	}
	if c.pos != len(c.s) {
		return poly.Poly{}, ErrWrongPoly
	}
	return p, nil
}

type cursor struct {
	s   string
	pos int
}

func (c *cursor) peek() (byte, bool) {
	if c.pos >= len(c.s) {
		return 0, false
	}
	return c.s[c.pos], true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parsePoly parses Poly = Coeff | Mono { "+" Mono }.
func (c *cursor) parsePoly() (poly.Poly, error) {
	if b, ok := c.peek(); ok && b == '(' {
		tracer().Debugf("parsing monomial sequence at pos %d", c.pos)
		var monos []poly.Mono
		for {
			mono, err := c.parseMono()
			if err != nil {
				return poly.Poly{}, err
			}
			monos = append(monos, mono)
			if b, ok := c.peek(); ok && b == '+' {
				c.pos++
				continue
			}
			break
		}
		return poly.FromMonomials(monos), nil
	}
	tracer().Debugf("parsing bare coefficient at pos %d", c.pos)
	coeff, err := c.parseCoeff()
	if err != nil {
		return poly.Poly{}, err
	}
	return poly.FromCoeff(coeff), nil
}

// parseMono parses Mono = "(" Poly "," Exp ")".
func (c *cursor) parseMono() (poly.Mono, error) {
	if b, ok := c.peek(); !ok || b != '(' {
		return poly.Mono{}, ErrWrongPoly
	}
	c.pos++
	inner, err := c.parsePoly()
	if err != nil {
		return poly.Mono{}, err
	}
	if b, ok := c.peek(); !ok || b != ',' {
		return poly.Mono{}, ErrWrongPoly
	}
	c.pos++
	exp, err := c.parseExp()
	if err != nil {
		return poly.Mono{}, err
	}
	if b, ok := c.peek(); !ok || b != ')' {
		return poly.Mono{}, ErrWrongPoly
	}
	c.pos++
	return poly.Mono{Exp: exp, Coeff: inner}, nil
}

// parseCoeff parses Coeff = [ "-" ] digit { digit }, fitting int64.
func (c *cursor) parseCoeff() (poly.Coeff, error) {
	start := c.pos
	if b, ok := c.peek(); ok && b == '-' {
		c.pos++
	}
	digitsStart := c.pos
	for {
		b, ok := c.peek()
		if !ok || !isDigit(b) {
			break
		}
		c.pos++
	}
	if c.pos == digitsStart {
		c.pos = start
		return 0, ErrWrongPoly
	}
	v, err := strconv.ParseInt(c.s[start:c.pos], 10, 64)
	if err != nil {
		return 0, ErrWrongPoly
	}
	return v, nil
}

// parseExp parses Exp = digit { digit }, fitting int32 and always >= 0.
func (c *cursor) parseExp() (poly.Exp, error) {
	start := c.pos
	for {
		b, ok := c.peek()
		if !ok || !isDigit(b) {
			break
		}
		c.pos++
	}
	if c.pos == start {
		return 0, ErrWrongPoly
	}
	v, err := strconv.ParseInt(c.s[start:c.pos], 10, 32)
	if err != nil {
		return 0, ErrWrongPoly
	}
	return poly.Exp(v), nil
}
