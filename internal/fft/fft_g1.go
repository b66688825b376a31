package fft

import (
	"math/big"
	"math/bits"
	"time"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/field"
	"github.com/Han-16/kzgist/internal/parallel"
)

// Profile holds per-phase timings of one FFTG1 run.
type Profile struct {
	N               int
	Workers         int
	Stages          int
	TAffineToJac    time.Duration
	TButterflyTotal time.Duration
	PerStage        []time.Duration
	TScale          time.Duration // inverse only
	TJacToAff       time.Duration
	TTotal          time.Duration
}

// FFTG1 is FFT with G1 points as coefficients: field multiplication by a root
// becomes scalar multiplication and field addition becomes point addition.
func (fs *Settings) FFTG1(values []curve.G1, inverse bool) ([]curve.G1, error) {
	return fs.fftG1(values, inverse, nil)
}

// FFTG1Profile runs FFTG1 and reports how long each phase took.
func (fs *Settings) FFTG1Profile(values []curve.G1, inverse bool) ([]curve.G1, Profile, error) {
	var prof Profile
	out, err := fs.fftG1(values, inverse, &prof)
	return out, prof, err
}

func (fs *Settings) fftG1(values []curve.G1, inverse bool, prof *Profile) ([]curve.G1, error) {
	n := uint64(len(values))
	if err := fs.checkLength(n); err != nil {
		return nil, err
	}
	// group ops are costly enough to always fan out
	workers := fs.Workers

	var tAll, t0 time.Time
	if prof != nil {
		prof.N = int(n)
		prof.Workers = workers
		prof.Stages = bits.Len64(n) - 1
		prof.PerStage = make([]time.Duration, prof.Stages)
		tAll = time.Now()
		t0 = tAll
	}

	// 1) Affine -> Jacobian
	buf := make([]curve.G1Jac, n)
	parallel.Range(int(n), workers, func(i0, i1 int) {
		for i := i0; i < i1; i++ {
			buf[i].FromAffine(&values[i])
		}
	})
	if prof != nil {
		prof.TAffineToJac = time.Since(t0)
	}

	// 2) butterflies
	roots := fs.ExpandedRoots
	if inverse {
		roots = fs.ReverseRoots
	}
	bitReverse(int(n), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })

	stages := bits.Len64(n) - 1
	half := int(n >> 1)
	tButter := time.Now()
	for r := 0; r < stages; r++ {
		tStage := time.Now()
		shift := uint(r)
		mask := (1 << r) - 1
		dist := 1 << r
		rootStep := int(fs.MaxWidth >> (r + 1))

		parallel.Range(half, workers, func(k0, k1 int) {
			var s big.Int
			for k := k0; k < k1; k++ {
				j := k & mask
				aIdx := ((k >> shift) << (r + 1)) | j
				cIdx := aIdx + dist

				a := &buf[aIdx]
				c := &buf[cIdx]

				var tc curve.G1Jac
				if j == 0 {
					tc = *c
				} else {
					tc.ScalarMultiplication(c, roots[j*rootStep].BigInt(&s))
				}
				diff := *a
				diff.SubAssign(&tc)
				a.AddAssign(&tc)
				*c = diff
			}
		})
		if prof != nil {
			prof.PerStage[r] = time.Since(tStage)
		}
	}
	if prof != nil {
		prof.TButterflyTotal = time.Since(tButter)
	}

	// 3) 1/n scaling for the inverse transform
	if inverse {
		t1 := time.Now()
		invLen := field.FromUint64(n)
		invLen.Inverse(&invLen)
		invBig := invLen.BigInt(new(big.Int))
		parallel.Range(int(n), workers, func(i0, i1 int) {
			for i := i0; i < i1; i++ {
				buf[i].ScalarMultiplication(&buf[i], invBig)
			}
		})
		if prof != nil {
			prof.TScale = time.Since(t1)
		}
	}

	// 4) Jacobian -> Affine (batch inversion + parallel multiplies)
	t2 := time.Now()
	out := curve.BatchJacobianToAffineG1(buf, workers)
	if prof != nil {
		prof.TJacToAff = time.Since(t2)
		prof.TTotal = time.Since(tAll)
	}
	return out, nil
}
