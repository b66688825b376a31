// Package field wraps the BN254 scalar field used for polynomial coefficients
// and evaluation points.
package field

import (
	"math/big"
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a scalar field element in canonical (Montgomery-internal) form.
type Element = fr.Element

const (
	// Bytes is the size of a serialized element.
	Bytes = fr.Bytes
	// TwoAdicity is the largest s such that 2^s divides r-1.
	TwoAdicity = 28
	// MultiplicativeGenerator generates the full multiplicative group of Fr.
	MultiplicativeGenerator = 5
)

var (
	ErrZeroInverse  = errors.New("inverse of zero")
	ErrNonCanonical = errors.New("non-canonical field element encoding")
)

// Modulus returns a fresh copy of the scalar field order r.
func Modulus() *big.Int {
	return fr.Modulus()
}

func Zero() Element {
	return Element{}
}

func One() Element {
	var e Element
	e.SetOne()
	return e
}

func FromUint64(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// FromUint64s builds an element from four little-endian 64-bit limbs.
// The full 256-bit value is accepted and reduced mod r.
func FromUint64s(limbs [4]uint64) Element {
	var buf [32]byte
	for i := 0; i < 4; i++ {
		v := limbs[i]
		for j := 0; j < 8; j++ {
			buf[31-(i*8+j)] = byte(v >> (8 * j))
		}
	}
	return FromBytes(buf[:])
}

// FromBigInt reduces v mod r. Negative values wrap around.
func FromBigInt(v *big.Int) Element {
	var e Element
	e.SetBigInt(v)
	return e
}

// FromBytes interprets b as a big-endian integer and reduces it mod r.
func FromBytes(b []byte) Element {
	var e Element
	e.SetBytes(b)
	return e
}

// FromCanonicalBytes decodes exactly Bytes big-endian bytes and rejects values >= r.
func FromCanonicalBytes(b []byte) (Element, error) {
	var e Element
	if err := e.SetBytesCanonical(b); err != nil {
		return Element{}, errors.Mark(errors.Wrap(err, "decode scalar"), ErrNonCanonical)
	}
	return e, nil
}

// ToBytes returns the canonical big-endian encoding of a.
func ToBytes(a *Element) [Bytes]byte {
	return a.Bytes()
}

func ToBigInt(a *Element) *big.Int {
	return a.BigInt(new(big.Int))
}

func Inverse(a *Element) (Element, error) {
	if a.IsZero() {
		return Element{}, ErrZeroInverse
	}
	var inv Element
	inv.Inverse(a)
	return inv, nil
}

// BatchInvert inverts every element with a single field inversion.
func BatchInvert(a []Element) ([]Element, error) {
	for i := range a {
		if a[i].IsZero() {
			return nil, errors.Wrapf(ErrZeroInverse, "batch invert: element %d", i)
		}
	}
	return fr.BatchInvert(a), nil
}

// Pow returns a^k.
func Pow(a *Element, k uint64) Element {
	var out Element
	out.Exp(*a, new(big.Int).SetUint64(k))
	return out
}

func IsPowerOfTwo(n uint64) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n == 0).
func NextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return uint64(1) << bits.Len64(n-1)
}

// Log2 returns floor(log2(n)) for n > 0.
func Log2(n uint64) uint8 {
	return uint8(bits.Len64(n) - 1)
}
