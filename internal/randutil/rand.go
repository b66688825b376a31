package randutil

import (
	"crypto/rand"

	"github.com/cockroachdb/errors"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/field"
)

// RandomScalars draws n uniform 256-bit values and reduces them into Fr.
func RandomScalars(n int) ([]field.Element, error) {
	return RandomScalarsPar(n, 1, false)
}

// randomScalar reads 32 random bytes as a big-endian integer. With
// maskTopByte the most significant byte is cleared, giving a 31-byte value.
func randomScalar(maskTopByte bool) (field.Element, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return field.Element{}, errors.Wrap(err, "read random scalar")
	}
	if maskTopByte {
		buf[0] = 0
	}
	return field.FromBytes(buf[:]), nil
}

func RandomPointsG1(n int) ([]curve.G1, error) {
	return RandomPointsG1Par(n, 1)
}
