package kzg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Han-16/kzgist/internal/field"
)

func TestEval(t *testing.T) {
	p := PolyFromUint64s(3, 2, 1, 0)
	assert.Equal(t, 3, p.Degree())

	zero := field.Zero()
	y := p.Eval(&zero)
	want := field.FromUint64(3)
	assert.True(t, y.Equal(&want))

	var empty Polynomial
	y = empty.Eval(&want)
	assert.True(t, y.IsZero())
}

func TestDivideByLinear(t *testing.T) {
	// X^2 + 2X + 3 = (X + 7)(X - 5) + 38
	p := PolyFromUint64s(3, 2, 1)
	x := field.FromUint64(5)
	q, r := p.DivideByLinear(&x)
	require.Equal(t, 2, q.Len())

	want := PolyFromUint64s(7, 1)
	for i := range want.Coeffs {
		assert.True(t, q.Coeffs[i].Equal(&want.Coeffs[i]), "coefficient %d", i)
	}
	y := p.Eval(&x)
	assert.True(t, r.Equal(&y))

	c := PolyFromUint64s(7)
	q, r = c.DivideByLinear(&x)
	assert.Equal(t, 0, q.Len())
	seven := field.FromUint64(7)
	assert.True(t, r.Equal(&seven))
}

func TestDivideByLinearIdentity(t *testing.T) {
	p := randomPoly(t, 9)
	var x, z field.Element
	x.SetRandom()
	z.SetRandom()

	// p(z) == q(z) * (z - x) + r
	q, r := p.DivideByLinear(&x)
	pz := p.Eval(&z)
	qz := q.Eval(&z)
	var zx, rhs field.Element
	zx.Sub(&z, &x)
	rhs.Mul(&qz, &zx)
	rhs.Add(&rhs, &r)
	assert.True(t, pz.Equal(&rhs))
}

func TestAddAndScale(t *testing.T) {
	p := PolyFromUint64s(1, 2, 3)
	q := PolyFromUint64s(10, 20)
	s := p.Add(q)
	want := PolyFromUint64s(11, 22, 3)
	require.Equal(t, 3, s.Len())
	for i := range want.Coeffs {
		assert.True(t, s.Coeffs[i].Equal(&want.Coeffs[i]))
	}
	// operands unchanged
	one := field.FromUint64(1)
	assert.True(t, p.Coeffs[0].Equal(&one))

	k := field.FromUint64(4)
	sc := p.Scale(&k)
	wantSc := PolyFromUint64s(4, 8, 12)
	for i := range wantSc.Coeffs {
		assert.True(t, sc.Coeffs[i].Equal(&wantSc.Coeffs[i]))
	}
}
