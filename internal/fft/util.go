package fft

import (
	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/field"
)

// PadToPowerOfTwo zero-pads values to the next power-of-two length.
func PadToPowerOfTwo(values []field.Element) []field.Element {
	n := uint64(len(values))
	if n == 0 || field.IsPowerOfTwo(n) {
		return values
	}
	out := make([]field.Element, field.NextPowerOfTwo(n))
	copy(out, values)
	return out
}

// PadPointsToPow2 pads an affine point slice to power-of-two length
// using the group identity (zero-value Affine == infinity).
func PadPointsToPow2(in []curve.G1) []curve.G1 {
	n := uint64(len(in))
	if n == 0 || field.IsPowerOfTwo(n) {
		return in
	}
	out := make([]curve.G1, field.NextPowerOfTwo(n))
	copy(out, in)
	return out
}
