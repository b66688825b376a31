package field

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUint64sReducesFullRange(t *testing.T) {
	limbs := [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
	e := FromUint64s(limbs)

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	want := FromBigInt(max)
	assert.True(t, e.Equal(&want))

	small := FromUint64s([4]uint64{1234, 0, 0, 0})
	exp := FromUint64(1234)
	assert.True(t, small.Equal(&exp))

	hi := FromUint64s([4]uint64{0, 1, 0, 0})
	expHi := FromBigInt(new(big.Int).Lsh(big.NewInt(1), 64))
	assert.True(t, hi.Equal(&expHi))
}

func TestInverse(t *testing.T) {
	zero := Zero()
	_, err := Inverse(&zero)
	require.True(t, errors.Is(err, ErrZeroInverse))

	a := FromUint64(7)
	inv, err := Inverse(&a)
	require.NoError(t, err)
	var prod Element
	prod.Mul(&a, &inv)
	assert.True(t, prod.IsOne())
}

func TestBatchInvert(t *testing.T) {
	in := []Element{FromUint64(2), FromUint64(3), FromUint64(1 << 40)}
	out, err := BatchInvert(in)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		var prod Element
		prod.Mul(&in[i], &out[i])
		assert.True(t, prod.IsOne(), "index %d", i)
	}

	_, err = BatchInvert([]Element{FromUint64(1), Zero()})
	require.True(t, errors.Is(err, ErrZeroInverse))
}

func TestCanonicalBytesRoundTrip(t *testing.T) {
	a := FromUint64(0xdeadbeef)
	b := ToBytes(&a)
	got, err := FromCanonicalBytes(b[:])
	require.NoError(t, err)
	assert.True(t, got.Equal(&a))

	var tooBig [Bytes]byte
	for i := range tooBig {
		tooBig[i] = 0xff
	}
	_, err = FromCanonicalBytes(tooBig[:])
	require.True(t, errors.Is(err, ErrNonCanonical))
}

func TestPowersOfTwo(t *testing.T) {
	assert.False(t, IsPowerOfTwo(0))
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(64))
	assert.False(t, IsPowerOfTwo(96))

	assert.Equal(t, uint64(1), NextPowerOfTwo(0))
	assert.Equal(t, uint64(8), NextPowerOfTwo(5))
	assert.Equal(t, uint64(8), NextPowerOfTwo(8))
	assert.Equal(t, uint8(5), Log2(32))
}

func TestPow(t *testing.T) {
	a := FromUint64(3)
	got := Pow(&a, 5)
	want := FromUint64(243)
	assert.True(t, got.Equal(&want))

	one := Pow(&a, 0)
	assert.True(t, one.IsOne())
}

func TestTwoAdicity(t *testing.T) {
	rm1 := new(big.Int).Sub(Modulus(), big.NewInt(1))
	assert.Equal(t, uint(TwoAdicity), rm1.TrailingZeroBits())
}
