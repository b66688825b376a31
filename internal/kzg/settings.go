// Package kzg implements KZG10 polynomial commitments: committing to a
// polynomial in coefficient form, opening it at a point and verifying the
// opening with a pairing check.
package kzg

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark/logger"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/fft"
)

var (
	// ErrSizeMismatch is returned when the SRS does not match the FFT settings width.
	ErrSizeMismatch = errors.New("srs size mismatch")
	// ErrPolyTooLong is returned when a polynomial has more coefficients than the SRS has powers.
	ErrPolyTooLong = errors.Wrap(fft.ErrLength, "polynomial longer than srs")
)

// Settings holds the public parameters. It never sees the setup secret, is
// immutable after NewSettings and may be shared by concurrent callers.
type Settings struct {
	fs *fft.Settings
	g1 []curve.G1
	g2 []curve.G2

	lagrangeOnce sync.Once
	lagrange     []curve.G1
	lagrangeErr  error
}

// NewSettings takes ownership of copies of the SRS powers. width must equal
// fs.MaxWidth and both power slices must have exactly width entries.
func NewSettings(g1 []curve.G1, g2 []curve.G2, width uint64, fs *fft.Settings) (*Settings, error) {
	if fs == nil {
		return nil, errors.Wrap(ErrSizeMismatch, "nil fft settings")
	}
	if width != fs.MaxWidth {
		return nil, errors.Wrapf(ErrSizeMismatch, "width %d != fft max width %d", width, fs.MaxWidth)
	}
	if uint64(len(g1)) != width || uint64(len(g2)) != width {
		return nil, errors.Wrapf(ErrSizeMismatch, "got %d g1 and %d g2 powers for width %d", len(g1), len(g2), width)
	}
	if width < 2 {
		return nil, errors.Wrapf(ErrSizeMismatch, "width %d has no [s]2 power to verify against", width)
	}
	for i := 0; i < 2; i++ {
		if err := curve.ValidateG2(&g2[i]); err != nil {
			return nil, errors.Wrapf(err, "srs g2 power %d", i)
		}
	}

	ks := &Settings{
		fs: fs,
		g1: make([]curve.G1, width),
		g2: make([]curve.G2, width),
	}
	copy(ks.g1, g1)
	copy(ks.g2, g2)

	log := logger.Logger()
	log.Debug().
		Uint64("width", width).
		Uint8("scale", fs.Scale).
		Msg("kzg settings ready")
	return ks, nil
}

func (ks *Settings) FFTSettings() *fft.Settings { return ks.fs }

// MaxWidth is the number of SRS powers, i.e. the longest polynomial that can be committed.
func (ks *Settings) MaxWidth() uint64 { return uint64(len(ks.g1)) }

// G1Power returns s^i * G1.
func (ks *Settings) G1Power(i int) curve.G1 { return ks.g1[i] }

// G2Power returns s^i * G2.
func (ks *Settings) G2Power(i int) curve.G2 { return ks.g2[i] }

// lagrangeG1 returns the SRS in Lagrange form over the MaxWidth roots of unity,
// computed on first use with an inverse FFT on the G1 powers.
func (ks *Settings) lagrangeG1() ([]curve.G1, error) {
	ks.lagrangeOnce.Do(func() {
		ks.lagrange, ks.lagrangeErr = ks.fs.FFTG1(ks.g1, true)
	})
	return ks.lagrange, ks.lagrangeErr
}
