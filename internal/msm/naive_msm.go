package msm

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/parallel"
)

var ErrLenMismatch = errors.New("points and scalars must have same length")

// NaiveMSM computes sum_i scalars[i] * points[i] in the simplest way.
func NaiveMSM(points []curve.G1, scalars []fr.Element) (curve.G1, error) {
	if len(points) != len(scalars) {
		return curve.G1{}, errors.Wrapf(ErrLenMismatch, "%d points, %d scalars", len(points), len(scalars))
	}
	if len(points) == 0 {
		return curve.G1{}, nil
	}

	var accJ curve.G1Jac
	accumulate(&accJ, points, scalars, 0, len(points))

	var out curve.G1
	out.FromJacobian(&accJ)
	return out, nil
}

// NaiveMSMPar splits the term products across workers and sums the partial
// results sequentially. workers <= 0 => use GOMAXPROCS(0).
func NaiveMSMPar(points []curve.G1, scalars []fr.Element, workers int) (curve.G1, error) {
	if len(points) != len(scalars) {
		return curve.G1{}, errors.Wrapf(ErrLenMismatch, "%d points, %d scalars", len(points), len(scalars))
	}
	n := len(points)
	if n == 0 {
		return curve.G1{}, nil
	}
	workers = parallel.Workers(workers)
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	partial := make([]curve.G1Jac, workers)
	parallel.Range(workers, workers, func(w0, w1 int) {
		for w := w0; w < w1; w++ {
			i0 := w * chunk
			if i0 >= n {
				continue
			}
			i1 := i0 + chunk
			if i1 > n {
				i1 = n
			}
			accumulate(&partial[w], points, scalars, i0, i1)
		}
	})

	// reduction
	var accJ curve.G1Jac
	for w := range partial {
		accJ.AddAssign(&partial[w])
	}
	var out curve.G1
	out.FromJacobian(&accJ)
	return out, nil
}

func accumulate(acc *curve.G1Jac, points []curve.G1, scalars []fr.Element, i0, i1 int) {
	var s big.Int
	for i := i0; i < i1; i++ {
		if scalars[i].IsZero() || points[i].IsInfinity() {
			continue
		}
		var termJ curve.G1Jac
		termJ.FromAffine(&points[i])
		termJ.ScalarMultiplication(&termJ, scalars[i].BigInt(&s))
		acc.AddAssign(&termJ)
	}
}
