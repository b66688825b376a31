// Package fft holds precomputed roots of unity and the radix-2 transforms over
// scalars and G1 points built on them.
package fft

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark/logger"

	"github.com/Han-16/kzgist/internal/field"
	"github.com/Han-16/kzgist/internal/parallel"
)

var (
	// ErrDomain is returned when the requested scale exceeds the field's 2-adicity.
	ErrDomain = errors.New("fft scale exceeds field 2-adicity")
	// ErrLength is returned for inputs that are empty, not a power of two or wider than the settings.
	ErrLength = errors.New("invalid fft input length")
)

// Settings is immutable after New and safe to share between goroutines.
type Settings struct {
	Scale    uint8
	MaxWidth uint64
	// RootOfUnity is a primitive MaxWidth-th root of unity.
	RootOfUnity field.Element
	// ExpandedRoots[i] = RootOfUnity^i, len == MaxWidth.
	ExpandedRoots []field.Element
	// ReverseRoots[i] = RootOfUnity^-i, len == MaxWidth.
	ReverseRoots []field.Element
	// Workers bounds the goroutines used per transform.
	Workers int
}

type Option func(*Settings)

// WithWorkers sets the worker count; <= 0 means GOMAXPROCS(0).
func WithWorkers(workers int) Option {
	return func(fs *Settings) {
		fs.Workers = workers
	}
}

// New derives a primitive 2^scale-th root of unity from the multiplicative
// generator and expands it into the forward and inverse root tables.
func New(scale uint8, opts ...Option) (*Settings, error) {
	if scale > field.TwoAdicity {
		return nil, errors.Wrapf(ErrDomain, "scale %d > %d", scale, field.TwoAdicity)
	}
	fs := &Settings{
		Scale:    scale,
		MaxWidth: uint64(1) << scale,
	}
	for _, opt := range opts {
		opt(fs)
	}
	fs.Workers = parallel.Workers(fs.Workers)

	fs.RootOfUnity = rootOfUnity(scale)
	fs.ExpandedRoots = expandRootOfUnity(&fs.RootOfUnity, fs.MaxWidth)
	if err := checkPrimitive(fs.ExpandedRoots, &fs.RootOfUnity); err != nil {
		return nil, err
	}

	n := fs.MaxWidth
	fs.ReverseRoots = make([]field.Element, n)
	fs.ReverseRoots[0].SetOne()
	for i := uint64(1); i < n; i++ {
		fs.ReverseRoots[i] = fs.ExpandedRoots[n-i]
	}

	log := logger.Logger()
	log.Debug().
		Uint8("scale", scale).
		Uint64("maxWidth", fs.MaxWidth).
		Int("workers", fs.Workers).
		Msg("fft settings ready")
	return fs, nil
}

// rootOfUnity returns g^((r-1) / 2^scale) for the multiplicative generator g.
func rootOfUnity(scale uint8) field.Element {
	exp := field.Modulus()
	exp.Sub(exp, big.NewInt(1))
	exp.Rsh(exp, uint(scale))

	g := field.FromUint64(field.MultiplicativeGenerator)
	var root field.Element
	root.Exp(g, exp)
	return root
}

func expandRootOfUnity(root *field.Element, n uint64) []field.Element {
	roots := make([]field.Element, n)
	roots[0].SetOne()
	for i := uint64(1); i < n; i++ {
		roots[i].Mul(&roots[i-1], root)
	}
	return roots
}

// checkPrimitive verifies root^n == 1 and root^(n/2) == -1.
func checkPrimitive(roots []field.Element, root *field.Element) error {
	n := len(roots)
	var wrap field.Element
	wrap.Mul(&roots[n-1], root)
	if !wrap.IsOne() {
		return errors.AssertionFailedf("root of unity has wrong order for width %d", n)
	}
	if n > 1 {
		var minusOne field.Element
		minusOne.SetOne()
		minusOne.Neg(&minusOne)
		if !roots[n/2].Equal(&minusOne) {
			return errors.AssertionFailedf("root of unity is not primitive for width %d", n)
		}
	}
	return nil
}

// checkLength accepts power-of-two lengths up to MaxWidth, i.e. exactly the
// lengths that divide MaxWidth.
func (fs *Settings) checkLength(n uint64) error {
	if n == 0 {
		return errors.Wrap(ErrLength, "empty input")
	}
	if !field.IsPowerOfTwo(n) {
		return errors.Wrapf(ErrLength, "length %d is not a power of two", n)
	}
	if n > fs.MaxWidth {
		return errors.Wrapf(ErrLength, "got %d values but only have %d roots of unity", n, fs.MaxWidth)
	}
	return nil
}
