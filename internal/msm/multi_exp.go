package msm

import (
	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/Han-16/kzgist/internal/curve"
)

// MultiExpMSM computes sum_i scalars[i] * points[i] using gnark-crypto MultiExp (fast MSM).
func MultiExpMSM(points []curve.G1, scalars []fr.Element) (curve.G1, error) {
	return MultiExpMSMWorkers(points, scalars, 0)
}

// MultiExpMSMWorkers is MultiExpMSM with an explicit task count (<= 0 => library default).
func MultiExpMSMWorkers(points []curve.G1, scalars []fr.Element, workers int) (curve.G1, error) {
	if len(points) != len(scalars) {
		return curve.G1{}, errors.Wrapf(ErrLenMismatch, "%d points, %d scalars", len(points), len(scalars))
	}
	return curve.MultiExpG1(points, scalars, workers)
}
