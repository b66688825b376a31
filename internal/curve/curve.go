// Package curve is the narrow group and pairing layer the commitment scheme is
// written against. It is backed by gnark-crypto's BN254 implementation.
package curve

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/Han-16/kzgist/internal/parallel"
)

type (
	G1    = bn254.G1Affine
	G2    = bn254.G2Affine
	G1Jac = bn254.G1Jac
	G2Jac = bn254.G2Jac
	GT    = bn254.GT
)

const (
	G1Size = bn254.SizeOfG1AffineCompressed
	G2Size = bn254.SizeOfG2AffineCompressed
)

// ErrInvalidPoint is returned for points off the curve or outside the prime-order subgroup.
var ErrInvalidPoint = errors.New("invalid group element")

var g1Gen, g2Gen = func() (G1, G2) {
	_, _, g1, g2 := bn254.Generators()
	return g1, g2
}()

func G1Generator() G1 { return g1Gen }
func G2Generator() G2 { return g2Gen }

// G1Identity returns the point at infinity (the zero value of G1).
func G1Identity() G1 { return G1{} }

func G2Identity() G2 { return G2{} }

func ScalarMulG1(p *G1, s *fr.Element) G1 {
	var out G1
	out.ScalarMultiplication(p, s.BigInt(new(big.Int)))
	return out
}

func ScalarMulG2(p *G2, s *fr.Element) G2 {
	var out G2
	out.ScalarMultiplication(p, s.BigInt(new(big.Int)))
	return out
}

func AddG1(a, b *G1) G1 {
	var aj, bj G1Jac
	aj.FromAffine(a)
	bj.FromAffine(b)
	aj.AddAssign(&bj)
	var out G1
	out.FromJacobian(&aj)
	return out
}

func SubG1(a, b *G1) G1 {
	var aj, bj G1Jac
	aj.FromAffine(a)
	bj.FromAffine(b)
	aj.SubAssign(&bj)
	var out G1
	out.FromJacobian(&aj)
	return out
}

func NegG1(a *G1) G1 {
	var out G1
	out.Neg(a)
	return out
}

func SubG2(a, b *G2) G2 {
	var aj, bj G2Jac
	aj.FromAffine(a)
	bj.FromAffine(b)
	aj.SubAssign(&bj)
	var out G2
	out.FromJacobian(&aj)
	return out
}

// MultiExpG1 computes sum_i scalars[i] * points[i] with Pippenger's method.
// workers <= 0 lets gnark-crypto pick the task count.
func MultiExpG1(points []G1, scalars []fr.Element, workers int) (G1, error) {
	if len(points) != len(scalars) {
		return G1{}, errors.Newf("multiexp: %d points, %d scalars", len(points), len(scalars))
	}
	if len(points) == 0 {
		return G1{}, nil
	}
	cfg := ecc.MultiExpConfig{}
	if workers > 0 {
		cfg.NbTasks = workers
	}
	var acc G1Jac
	if _, err := acc.MultiExp(points, scalars, cfg); err != nil {
		return G1{}, errors.Wrap(err, "multiexp")
	}
	var out G1
	out.FromJacobian(&acc)
	return out, nil
}

// Pair computes e(p, q).
func Pair(p *G1, q *G2) (GT, error) {
	return bn254.Pair([]G1{*p}, []G2{*q})
}

// PairingCheck reports whether e(a1, b1) == e(a2, b2), evaluated as a single
// multi-pairing e(a1, b1) * e(-a2, b2) == 1.
func PairingCheck(a1 *G1, b1 *G2, a2 *G1, b2 *G2) (bool, error) {
	var negA2 G1
	negA2.Neg(a2)
	ok, err := bn254.PairingCheck([]G1{*a1, negA2}, []G2{*b1, *b2})
	if err != nil {
		return false, errors.Wrap(err, "pairing check")
	}
	return ok, nil
}

func ValidateG1(p *G1) error {
	if !p.IsOnCurve() {
		return errors.Wrap(ErrInvalidPoint, "g1 point not on curve")
	}
	if !p.IsInSubGroup() {
		return errors.Wrap(ErrInvalidPoint, "g1 point not in subgroup")
	}
	return nil
}

func ValidateG2(p *G2) error {
	if !p.IsOnCurve() {
		return errors.Wrap(ErrInvalidPoint, "g2 point not on curve")
	}
	if !p.IsInSubGroup() {
		return errors.Wrap(ErrInvalidPoint, "g2 point not in subgroup")
	}
	return nil
}

// BatchJacobianToAffineG1 converts Jacobian points to affine with one batched
// field inversion, then fixes up coordinates in parallel.
// Points at infinity map to the zero-value affine point.
func BatchJacobianToAffineG1(in []G1Jac, workers int) []G1 {
	n := len(in)
	out := make([]G1, n)
	if n == 0 {
		return out
	}
	zs := make([]fp.Element, n)
	for i := range in {
		zs[i] = in[i].Z
	}
	// zero entries stay zero
	zInv := fp.BatchInvert(zs)

	parallel.Range(n, workers, func(i0, i1 int) {
		var a, b fp.Element
		for i := i0; i < i1; i++ {
			if zInv[i].IsZero() {
				out[i] = G1{}
				continue
			}
			a.Square(&zInv[i])
			b.Mul(&a, &zInv[i])
			out[i].X.Mul(&in[i].X, &a)
			out[i].Y.Mul(&in[i].Y, &b)
		}
	})
	return out
}
