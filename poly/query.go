package poly

// IsEq reports structural equality. Canonical form is unique, so this
// is the same thing as algebraic equality.
func IsEq(p, q Poly) bool {
	if IsCoeff(p) != IsCoeff(q) {
		return false
	}
	if IsCoeff(p) {
		return p.coeff == q.coeff
	}
	if len(p.nested) != len(q.nested) {
		return false
	}
	for i := range p.nested {
		if p.nested[i].Exp != q.nested[i].Exp {
			return false
		}
		if !IsEq(p.nested[i].Coeff, q.nested[i].Coeff) {
			return false
		}
	}
	return true
}

// Deg returns -1 for the zero polynomial, else the maximum, over every
// root-to-leaf path of p's tree, of the sum of exponents encountered.
func Deg(p Poly) Exp {
	if IsZero(p) {
		return -1
	}
	return degSum(p)
}

func degSum(p Poly) Exp {
	if IsCoeff(p) {
		return 0
	}
	max := p.nested[0].Exp + degSum(p.nested[0].Coeff)
	for _, m := range p.nested[1:] {
		if total := m.Exp + degSum(m.Coeff); total > max {
			max = total
		}
	}
	return max
}

// DegBy returns -1 for the zero polynomial, else the maximum exponent
// appearing at nesting depth exactly varIdx (0-indexed, depth 0 is the
// outermost variable). A varIdx beyond every branch's nesting depth
// yields 0, since every branch bottoms out at a Constant before then
// and a Constant contributes 0 at any depth at or past its own.
func DegBy(p Poly, varIdx uint64) Exp {
	if IsZero(p) {
		return -1
	}
	return degByAt(p, varIdx, 0)
}

func degByAt(p Poly, varIdx, depth uint64) Exp {
	if depth == varIdx {
		if IsCoeff(p) {
			return 0
		}
		max := p.nested[0].Exp
		for _, m := range p.nested[1:] {
			if m.Exp > max {
				max = m.Exp
			}
		}
		return max
	}
	if IsCoeff(p) {
		return 0
	}
	max := degByAt(p.nested[0].Coeff, varIdx, depth+1)
	for _, m := range p.nested[1:] {
		if sub := degByAt(m.Coeff, varIdx, depth+1); sub > max {
			max = sub
		}
	}
	return max
}

// ipow raises base to exp via binary squaring; exp is always >= 0.
// Adopts the 0**0 == 1 convention.
func ipow(base Coeff, exp Exp) Coeff {
	var result Coeff = 1
	b, e := base, exp
	for e > 0 {
		if e&1 == 1 {
			result *= b
		}
		b *= b
		e >>= 1
	}
	return result
}

// At substitutes x into p's outermost variable. For p(x0, x1, ...) this
// returns p(x, x0, x1, ...): what was x1 becomes x0, and so on, because
// substituting the outermost variable peels one layer of nesting.
func At(p Poly, x Coeff) Poly {
	if IsCoeff(p) {
		return Clone(p)
	}
	sum := Zero()
	for _, m := range p.nested {
		sum = Add(sum, scalarMul(m.Coeff, ipow(x, m.Exp)))
	}
	return sum
}

// polyPow raises base to exp via binary squaring over Mul. base**0 is
// Constant(1), even for base == Zero().
func polyPow(base Poly, exp Exp) Poly {
	result := FromCoeff(1)
	b, e := base, exp
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, b)
		}
		b = Mul(b, b)
		e >>= 1
	}
	return result
}

// Compose substitutes qs[i] for variable x_i (i in [0, len(qs))) in p,
// and the zero polynomial for any x_j with j >= len(qs) that appears in
// p. The deepest-popped operand on the command stack becomes qs[0],
// the substitution for the outermost variable.
func Compose(p Poly, qs []Poly) Poly {
	return compose(p, qs, 0)
}

func compose(p Poly, qs []Poly, depth int) Poly {
	if IsCoeff(p) {
		return Clone(p)
	}
	var subD Poly
	if depth < len(qs) {
		subD = qs[depth]
	} else {
		subD = Zero()
	}
	sum := Zero()
	for _, m := range p.nested {
		inner := compose(m.Coeff, qs, depth+1)
		sum = Add(sum, Mul(inner, polyPow(subD, m.Exp)))
	}
	return sum
}
