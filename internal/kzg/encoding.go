package kzg

import (
	"github.com/Han-16/kzgist/internal/curve"
)

// MarshalCommitment returns the compressed G1 encoding.
func MarshalCommitment(c *Commitment) []byte {
	b := curve.EncodeG1(c)
	return b[:]
}

// ParseCommitment decodes and validates a commitment.
func ParseCommitment(b []byte) (Commitment, error) {
	return curve.DecodeG1(b)
}

func MarshalProof(p *Proof) []byte {
	b := curve.EncodeG1(p)
	return b[:]
}

func ParseProof(b []byte) (Proof, error) {
	return curve.DecodeG1(b)
}
