package poly

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Coeff is the scalar type carried by a Constant Poly or at the leaf
// of a Nested one. Arithmetic on Coeff wraps two's-complement style,
// matching host int64 overflow behaviour; this is intentional, not a bug.
type Coeff = int64

// Exp is a monomial's exponent. It is always >= 0 in any value stored
// inside a Poly; -1 is reserved for the "zero polynomial has degree -1"
// sentinel returned by Deg and DegBy, and is never stored in a Mono.
type Exp = int32

// Mono is a single term exp*coeff nested inside a Poly: the exponent of
// the Poly's own variable, paired with a coefficient that is itself a
// Poly over the next variable.
type Mono struct {
	Exp   Exp
	Coeff Poly
}

// Poly is a sparse multivariate polynomial. The zero value is the
// constant 0, the same value Zero returns; use Zero, FromCoeff, or
// FromMonomials to construct one.
//
// A Poly is either a Constant (nested == nil) or Nested: a non-empty,
// strictly exponent-ascending slice of Mono, none of whose coefficients
// is (recursively) zero.
type Poly struct {
	coeff  Coeff
	nested []Mono
}

// Zero returns the polynomial identically equal to 0.
func Zero() Poly {
	return Poly{coeff: 0}
}

// FromCoeff returns the constant polynomial c.
func FromCoeff(c Coeff) Poly {
	return Poly{coeff: c}
}

// IsCoeff reports whether p is the Constant variant.
func IsCoeff(p Poly) bool {
	return p.nested == nil
}

// IsZero reports whether p is identically the zero polynomial. By the
// canonical-form invariants a Nested value is never zero-equivalent,
// so this reduces to comparing against Constant(0).
func IsZero(p Poly) bool {
	return IsCoeff(p) && p.coeff == 0
}

// AsCoeff returns p's constant value and true if p IsCoeff, else
// (0, false).
func AsCoeff(p Poly) (Coeff, bool) {
	if !IsCoeff(p) {
		return 0, false
	}
	return p.coeff, true
}

// Monomials returns the canonical monomial sequence of a Nested p, or
// nil if p IsCoeff. The returned slice must not be mutated by the
// caller; it aliases p's internal storage.
func Monomials(p Poly) []Mono {
	return p.nested
}

// Clone returns a deep, independently-mutable copy of p.
func Clone(p Poly) Poly {
	if IsCoeff(p) {
		return FromCoeff(p.coeff)
	}
	out := make([]Mono, len(p.nested))
	for i, m := range p.nested {
		out[i] = Mono{Exp: m.Exp, Coeff: Clone(m.Coeff)}
	}
	return Poly{nested: out}
}

// FromMonomials builds a canonical Poly from a (possibly unsorted,
// possibly duplicated, possibly zero-laden) slice of monomials. It is
// the canonicalizing constructor that parsing and Mul use. Add and
// scalarMul do not route through it: they build an already sorted,
// zero-free slice and finish with collapse directly. Neg and Clone do
// not route through it either; they copy an already canonical value.
//
// The algorithm: accumulate monomials into an exponent-keyed ordered
// map, merging same-exponent terms with Add as they arrive, then walk
// the map in ascending key order, dropping any entry whose merged
// coefficient is recursively zero, and apply the collapse rule: zero
// survivors yields Constant(0); exactly one survivor at exponent 0 with
// a constant coefficient flattens to that constant; otherwise the
// result is Nested(survivors).
func FromMonomials(monos []Mono) Poly {
	if len(monos) == 0 {
		return Zero()
	}
	acc := treemap.NewWithIntComparator()
	for _, m := range monos {
		key := int(m.Exp)
		if existing, found := acc.Get(key); found {
			tracer().Debugf("merging duplicate exponent %d", key)
			acc.Put(key, Add(existing.(Poly), m.Coeff))
		} else {
			acc.Put(key, m.Coeff)
		}
	}
	survivors := make([]Mono, 0, acc.Size())
	it := acc.Iterator()
	for it.Next() {
		exp := it.Key().(int)
		coeff := it.Value().(Poly)
		if IsZero(coeff) {
			continue
		}
		survivors = append(survivors, Mono{Exp: Exp(exp), Coeff: coeff})
	}
	return collapse(survivors)
}

// collapse applies the Nested/Constant collapse rule to an already
// exponent-sorted, zero-free, deduplicated slice of survivor monomials.
func collapse(survivors []Mono) Poly {
	if len(survivors) == 0 {
		return Zero()
	}
	if len(survivors) == 1 && survivors[0].Exp == 0 {
		if c, ok := AsCoeff(survivors[0].Coeff); ok {
			return FromCoeff(c)
		}
	}
	return Poly{nested: survivors}
}
