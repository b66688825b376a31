// Package setup simulates a single-party trusted setup: it turns a secret
// scalar into the structured reference string of G1 and G2 powers.
//
// Whoever knows the secret can forge opening proofs. Generate zeroes the
// caller's secret before returning; callers must not keep other copies.
package setup

import (
	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark/logger"
	"golang.org/x/sync/errgroup"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/field"
	"github.com/Han-16/kzgist/internal/parallel"
)

const defaultChunk = 1024

var (
	ErrWidth      = errors.New("setup width must be positive")
	ErrZeroSecret = errors.New("setup secret must be non-zero")
)

type options struct {
	workers  int
	chunk    int
	progress func(delta int)
}

type Option func(*options)

// WithWorkers bounds the number of concurrent chunk jobs (<= 0 => GOMAXPROCS(0)).
func WithWorkers(workers int) Option {
	return func(o *options) { o.workers = workers }
}

// WithChunkSize sets how many powers each job multiplies.
func WithChunkSize(chunk int) Option {
	return func(o *options) {
		if chunk > 0 {
			o.chunk = chunk
		}
	}
}

// WithProgress registers a callback invoked with the number of points produced
// by each finished job (2*width in total). It is called from several goroutines.
func WithProgress(fn func(delta int)) Option {
	return func(o *options) { o.progress = fn }
}

// Generate returns g1[i] = secret^i * G1 and g2[i] = secret^i * G2 for i in [0, width).
// The secret and the intermediate scalar powers are zeroed before return.
func Generate(secret *field.Element, width uint64, opts ...Option) ([]curve.G1, []curve.G2, error) {
	defer secret.SetZero()

	o := options{chunk: defaultChunk}
	for _, opt := range opts {
		opt(&o)
	}
	o.workers = parallel.Workers(o.workers)

	if width == 0 {
		return nil, nil, ErrWidth
	}
	if secret.IsZero() {
		return nil, nil, ErrZeroSecret
	}

	pows := make([]field.Element, width)
	defer func() {
		for i := range pows {
			pows[i].SetZero()
		}
	}()
	pows[0].SetOne()
	for i := uint64(1); i < width; i++ {
		pows[i].Mul(&pows[i-1], secret)
	}

	g1Gen := curve.G1Generator()
	g2Gen := curve.G2Generator()
	g1 := make([]curve.G1, width)
	g2 := make([]curve.G2, width)

	var eg errgroup.Group
	eg.SetLimit(o.workers)
	for start := 0; start < int(width); start += o.chunk {
		start := start
		end := start + o.chunk
		if end > int(width) {
			end = int(width)
		}
		eg.Go(func() error {
			copy(g1[start:end], bn254.BatchScalarMultiplicationG1(&g1Gen, pows[start:end]))
			if o.progress != nil {
				o.progress(end - start)
			}
			return nil
		})
		eg.Go(func() error {
			copy(g2[start:end], bn254.BatchScalarMultiplicationG2(&g2Gen, pows[start:end]))
			if o.progress != nil {
				o.progress(end - start)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, errors.Wrap(err, "generate setup")
	}

	log := logger.Logger()
	log.Debug().
		Uint64("width", width).
		Int("workers", o.workers).
		Msg("trusted setup generated")
	return g1, g2, nil
}
