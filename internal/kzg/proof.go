package kzg

import (
	"github.com/cockroachdb/errors"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/field"
)

// Proof is the commitment to the quotient (p(X) - p(x)) / (X - x).
type Proof = curve.G1

// ComputeProofSingle opens p at x. For constant polynomials the quotient is
// zero and the proof is the identity.
func (ks *Settings) ComputeProofSingle(p Polynomial, x *field.Element) (Proof, error) {
	if len(p.Coeffs) > len(ks.g1) {
		return Proof{}, errors.Wrapf(ErrPolyTooLong, "%d coefficients, %d powers", len(p.Coeffs), len(ks.g1))
	}
	// p(X) - y and p(X) share the quotient; only the remainder differs
	q, _ := p.DivideByLinear(x)
	return ks.commitCoeffs(q.Coeffs)
}

// Prove commits to p, evaluates it at x and opens it there.
func (ks *Settings) Prove(p Polynomial, x *field.Element) (Commitment, Proof, field.Element, error) {
	c, err := ks.Commit(p)
	if err != nil {
		return Commitment{}, Proof{}, field.Element{}, err
	}
	proof, err := ks.ComputeProofSingle(p, x)
	if err != nil {
		return Commitment{}, Proof{}, field.Element{}, err
	}
	return c, proof, p.Eval(x), nil
}
