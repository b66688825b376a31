package kzg

import (
	"github.com/cockroachdb/errors"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/fft"
	"github.com/Han-16/kzgist/internal/field"
	"github.com/Han-16/kzgist/internal/msm"
)

// Commitment is p(s) * G1 for the setup secret s.
type Commitment = curve.G1

// Commit computes sum_i p.Coeffs[i] * g1[i]. Commitments are additively
// homomorphic: Commit(p+q) = Commit(p) + Commit(q).
func (ks *Settings) Commit(p Polynomial) (Commitment, error) {
	return ks.commitCoeffs(p.Coeffs)
}

func (ks *Settings) commitCoeffs(coeffs []field.Element) (Commitment, error) {
	if len(coeffs) > len(ks.g1) {
		return Commitment{}, errors.Wrapf(ErrPolyTooLong, "%d coefficients, %d powers", len(coeffs), len(ks.g1))
	}
	c, err := msm.MultiExpMSMWorkers(ks.g1[:len(coeffs)], coeffs, ks.fs.Workers)
	if err != nil {
		return Commitment{}, errors.Wrap(err, "commit")
	}
	return c, nil
}

// CommitEvaluations commits to the polynomial whose values over the MaxWidth
// roots of unity are evals, without interpolating it first.
func (ks *Settings) CommitEvaluations(evals []field.Element) (Commitment, error) {
	if uint64(len(evals)) != ks.MaxWidth() {
		return Commitment{}, errors.Wrapf(fft.ErrLength, "got %d evaluations, need %d", len(evals), ks.MaxWidth())
	}
	lagrange, err := ks.lagrangeG1()
	if err != nil {
		return Commitment{}, errors.Wrap(err, "lagrange srs")
	}
	c, err := msm.MultiExpMSMWorkers(lagrange, evals, ks.fs.Workers)
	if err != nil {
		return Commitment{}, errors.Wrap(err, "commit evaluations")
	}
	return c, nil
}
