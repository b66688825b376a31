package kzg

import (
	"github.com/cockroachdb/errors"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/field"
)

// Verify checks that proof opens commitment to y at x:
//
//	e(C - y*G1, G2) == e(proof, [s]G2 - x*G2)
//
// A false result is a normal outcome and comes with a nil error. Points that
// are off the curve or outside the subgroup fail with curve.ErrInvalidPoint.
func (ks *Settings) Verify(commitment *Commitment, proof *Proof, x, y *field.Element) (bool, error) {
	if err := curve.ValidateG1(commitment); err != nil {
		return false, errors.Wrap(err, "commitment")
	}
	if err := curve.ValidateG1(proof); err != nil {
		return false, errors.Wrap(err, "proof")
	}

	g1 := curve.G1Generator()
	g2 := curve.G2Generator()

	yG1 := curve.ScalarMulG1(&g1, y)
	commitmentMinusY := curve.SubG1(commitment, &yG1)

	xG2 := curve.ScalarMulG2(&g2, x)
	sMinusX := curve.SubG2(&ks.g2[1], &xG2)

	return curve.PairingCheck(&commitmentMinusY, &g2, proof, &sMinusX)
}
