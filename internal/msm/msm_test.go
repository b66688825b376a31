package msm

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Han-16/kzgist/internal/curve"
)

func inputs(n int) ([]curve.G1, []fr.Element) {
	g := curve.G1Generator()
	points := make([]curve.G1, n)
	scalars := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		k := fr.NewElement(uint64(2*i + 1))
		points[i] = curve.ScalarMulG1(&g, &k)
		scalars[i].SetRandom()
	}
	// exercise the skipped-term paths
	if n > 2 {
		scalars[1].SetZero()
		points[2] = curve.G1Identity()
	}
	return points, scalars
}

func TestMSMImplementationsAgree(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 33} {
		points, scalars := inputs(n)

		naive, err := NaiveMSM(points, scalars)
		require.NoError(t, err)
		par, err := NaiveMSMPar(points, scalars, 4)
		require.NoError(t, err)
		fast, err := MultiExpMSM(points, scalars)
		require.NoError(t, err)

		assert.True(t, naive.Equal(&par), "n=%d naive vs par", n)
		assert.True(t, naive.Equal(&fast), "n=%d naive vs multiexp", n)
	}
}

func TestMSMConstant(t *testing.T) {
	// [s, ..., s] against [g, ..., g] is (n*s) * g
	const n = 8
	g := curve.G1Generator()
	var s fr.Element
	s.SetRandom()
	points := make([]curve.G1, n)
	scalars := make([]fr.Element, n)
	for i := range points {
		points[i] = g
		scalars[i] = s
	}
	var ns fr.Element
	ns.SetUint64(n)
	ns.Mul(&ns, &s)
	want := curve.ScalarMulG1(&g, &ns)

	got, err := MultiExpMSMWorkers(points, scalars, 2)
	require.NoError(t, err)
	assert.True(t, got.Equal(&want))
}

func TestMSMErrors(t *testing.T) {
	points, scalars := inputs(3)
	_, err := NaiveMSM(points, scalars[:2])
	assert.True(t, errors.Is(err, ErrLenMismatch))
	_, err = NaiveMSMPar(points[:1], scalars, 2)
	assert.True(t, errors.Is(err, ErrLenMismatch))
	_, err = MultiExpMSM(points, scalars[:1])
	assert.True(t, errors.Is(err, ErrLenMismatch))

	empty, err := NaiveMSMPar(nil, nil, 2)
	require.NoError(t, err)
	assert.True(t, empty.IsInfinity())
}
