package poly

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func m(exp Exp, c Coeff) Mono {
	return Mono{Exp: exp, Coeff: FromCoeff(c)}
}

func TestZeroIsConstantZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, IsZero(Zero()))
	assert.True(t, IsCoeff(Zero()))
}

func TestFromMonomialsDropsZeroCoeffs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(3, 0), m(1, 5)})
	assert.True(t, IsEq(p, FromMonomials([]Mono{m(1, 5)})))
}

func TestFromMonomialsMergesDuplicateExponents(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 3), m(2, 4), m(1, 1)})
	assert.True(t, IsEq(p, FromMonomials([]Mono{m(2, 7), m(1, 1)})))
}

func TestFromMonomialsCollapsesToConstant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(0, 5)})
	assert.True(t, IsCoeff(p))
	c, ok := AsCoeff(p)
	assert.True(t, ok)
	assert.Equal(t, Coeff(5), c)
}

func TestFromMonomialsUnorderedInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(5, 1), m(1, 1), m(3, 1)})
	q := FromMonomials([]Mono{m(1, 1), m(3, 1), m(5, 1)})
	assert.True(t, IsEq(p, q))
	assert.Equal(t, []Exp{1, 3, 5}, []Exp{p.nested[0].Exp, p.nested[1].Exp, p.nested[2].Exp})
}

func TestCloneProducesNoAliasing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(1, 1), m(2, 9)})
	clone := Clone(p)
	assert.True(t, IsEq(clone, p))
	// mutate the clone's backing array directly; p must be unaffected
	clone.nested[0].Exp = 99
	assert.NotEqual(t, clone.nested[0].Exp, p.nested[0].Exp)
}

func TestAddCommutative(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 3), m(0, 1)})
	q := FromMonomials([]Mono{m(1, 5)})
	assert.True(t, IsEq(Add(p, q), Add(q, p)))
}

func TestAddZeroIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 3), m(0, 1)})
	assert.True(t, IsEq(Add(p, Zero()), p))
}

func TestMulCommutative(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 3), m(1, 1)})
	q := FromMonomials([]Mono{m(1, 5), m(0, 2)})
	assert.True(t, IsEq(Mul(p, q), Mul(q, p)))
}

func TestMulByZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 3), m(1, 1)})
	assert.True(t, IsZero(Mul(p, Zero())))
}

func TestMulByOne(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 3), m(1, 1)})
	assert.True(t, IsEq(Mul(p, FromCoeff(1)), p))
}

func TestSubSelfIsZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 3), m(1, 1)})
	assert.True(t, IsZero(Sub(p, p)))
}

func TestNegNegIsIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 3), m(1, 1)})
	assert.True(t, IsEq(Neg(Neg(p)), p))
}

func TestDegOfZeroIsMinusOne(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, Exp(-1), Deg(Zero()))
}

func TestDegSumsAlongDeepestPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// p = x0^2 + x0*x1^3  -> deepest path sums to 1+3=4
	inner := FromMonomials([]Mono{m(3, 1)}) // x1^3
	p := FromMonomials([]Mono{m(2, 1), {Exp: 1, Coeff: inner}})
	assert.Equal(t, Exp(4), Deg(p))
}

func TestDegByOutermost(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// p = (1,2) + (2,1) : x0^2 + 2 x0^1, DegBy(0) should be 2, Deg should be 2
	p := Add(FromMonomials([]Mono{m(2, 1)}), FromMonomials([]Mono{m(1, 2)}))
	assert.Equal(t, Exp(2), DegBy(p, 0))
	assert.Equal(t, Exp(2), Deg(p))
}

func TestDegByBeyondNestingIsZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(1, 1)})
	assert.Equal(t, Exp(0), DegBy(p, 50))
}

func TestAtOnConstant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, IsEq(At(FromCoeff(7), 3), FromCoeff(7)))
}

func TestAtEvaluatesPolynomial(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 1)}) // x0^2
	assert.True(t, IsEq(At(p, 2), FromCoeff(4)))
}

func TestComposeWithSingleConstantMatchesAt(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 1), m(1, 3)}) // x0^2 + 3x0
	const c Coeff = 5
	assert.True(t, IsEq(Compose(p, []Poly{FromCoeff(c)}), At(p, c)))
}

func TestComposeWithNoArgumentsSubstitutesZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := FromMonomials([]Mono{m(2, 1), m(1, 3)}) // x0^2 + 3x0, evaluated at 0 is 0
	assert.True(t, IsEq(Compose(p, nil), Zero()))
}

func TestComposeSubstitutesNestedVariables(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// p = x0 (i.e. (1,1)); composing with q0 = x0 (also (1,1)) should yield x0 back.
	p := FromMonomials([]Mono{m(1, 1)})
	q0 := FromMonomials([]Mono{m(1, 1)})
	assert.True(t, IsEq(Compose(p, []Poly{q0}), p))
}
