package curve

import (
	"github.com/cockroachdb/errors"
)

// EncodeG1 returns the compressed canonical encoding of p.
func EncodeG1(p *G1) [G1Size]byte {
	return p.Bytes()
}

func EncodeG2(p *G2) [G2Size]byte {
	return p.Bytes()
}

// DecodeG1 parses a compressed or uncompressed G1 encoding and rejects
// anything that is not a valid subgroup element.
func DecodeG1(b []byte) (G1, error) {
	var p G1
	if _, err := p.SetBytes(b); err != nil {
		return G1{}, errors.Mark(errors.Wrap(err, "decode g1"), ErrInvalidPoint)
	}
	if err := ValidateG1(&p); err != nil {
		return G1{}, err
	}
	return p, nil
}

func DecodeG2(b []byte) (G2, error) {
	var p G2
	if _, err := p.SetBytes(b); err != nil {
		return G2{}, errors.Mark(errors.Wrap(err, "decode g2"), ErrInvalidPoint)
	}
	if err := ValidateG2(&p); err != nil {
		return G2{}, err
	}
	return p, nil
}
