package poly

// asMonos reinterprets p uniformly as a (possibly empty) monomial
// list: a zero Constant is the empty list, a nonzero Constant c is the
// single-term list [{0, FromCoeff(c)}], and a Nested value is just its
// own monomial slice. This lets Add (and through it Sub) treat the
// Const/Nested and Nested/Nested cases of spec.md §4.2 as one
// linear-merge problem; Add handles Const/Const on its own.
func asMonos(p Poly) []Mono {
	if IsCoeff(p) {
		if p.coeff == 0 {
			return nil
		}
		return []Mono{{Exp: 0, Coeff: FromCoeff(p.coeff)}}
	}
	return p.nested
}

// mergeMonos linearly merges two exponent-ascending monomial slices,
// recursively adding coefficients at matching exponents and dropping
// any merged term that becomes (recursively) zero.
func mergeMonos(a, b []Mono) []Mono {
	out := make([]Mono, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Exp < b[j].Exp:
			out = append(out, a[i])
			i++
		case a[i].Exp > b[j].Exp:
			out = append(out, b[j])
			j++
		default:
			sum := Add(a[i].Coeff, b[j].Coeff)
			if !IsZero(sum) {
				out = append(out, Mono{Exp: a[i].Exp, Coeff: sum})
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Add returns p + q. Coefficient overflow wraps two's-complement style,
// matching native int64 arithmetic.
func Add(p, q Poly) Poly {
	if IsCoeff(p) && IsCoeff(q) {
		return FromCoeff(p.coeff + q.coeff)
	}
	return collapse(mergeMonos(asMonos(p), asMonos(q)))
}

// Neg returns -p.
func Neg(p Poly) Poly {
	if IsCoeff(p) {
		return FromCoeff(-p.coeff)
	}
	out := make([]Mono, len(p.nested))
	for i, m := range p.nested {
		out[i] = Mono{Exp: m.Exp, Coeff: Neg(m.Coeff)}
	}
	return Poly{nested: out}
}

// Sub returns p - q, defined as Add(p, Neg(q)).
func Sub(p, q Poly) Poly {
	return Add(p, Neg(q))
}

// scalarMul returns p*c for a bare Coeff c, used internally by Mul's
// Const*Nested case.
func scalarMul(p Poly, c Coeff) Poly {
	if c == 0 {
		return Zero()
	}
	if IsCoeff(p) {
		return FromCoeff(p.coeff * c)
	}
	survivors := make([]Mono, 0, len(p.nested))
	for _, m := range p.nested {
		prod := scalarMul(m.Coeff, c)
		if IsZero(prod) {
			continue
		}
		survivors = append(survivors, Mono{Exp: m.Exp, Coeff: prod})
	}
	return collapse(survivors)
}

// Mul returns p * q.
func Mul(p, q Poly) Poly {
	switch {
	case IsCoeff(p) && IsCoeff(q):
		return FromCoeff(p.coeff * q.coeff)
	case IsCoeff(p):
		return scalarMul(q, p.coeff)
	case IsCoeff(q):
		return scalarMul(p, q.coeff)
	default:
		sum := Zero()
		for _, mp := range p.nested {
			for _, mq := range q.nested {
				term := Mono{Exp: mp.Exp + mq.Exp, Coeff: Mul(mp.Coeff, mq.Coeff)}
				sum = Add(sum, FromMonomials([]Mono{term}))
			}
		}
		return sum
	}
}
