package fft

import (
	"math/bits"

	"github.com/Han-16/kzgist/internal/field"
	"github.com/Han-16/kzgist/internal/parallel"
)

// minButterfliesPerWorker keeps small stages on one goroutine.
const minButterfliesPerWorker = 256

// FFT evaluates (inverse=false) or interpolates (inverse=true) values over the
// subgroup of len(values)-th roots of unity. The input is not modified.
func (fs *Settings) FFT(values []field.Element, inverse bool) ([]field.Element, error) {
	n := uint64(len(values))
	if err := fs.checkLength(n); err != nil {
		return nil, err
	}
	out := make([]field.Element, n)
	copy(out, values)

	roots := fs.ExpandedRoots
	if inverse {
		roots = fs.ReverseRoots
	}
	fs.butterflyFr(out, roots)

	if inverse {
		invLen := field.FromUint64(n)
		invLen.Inverse(&invLen)
		parallel.Range(len(out), fs.workersFor(len(out)), func(i0, i1 int) {
			for i := i0; i < i1; i++ {
				out[i].Mul(&out[i], &invLen)
			}
		})
	}
	return out, nil
}

// butterflyFr runs the in-place iterative Cooley-Tukey transform: bit-reversal
// permutation, then log2(n) stages. Stage r pairs indices that are 1<<r apart;
// butterflies within a stage are independent and split across workers, and
// each stage completes before the next starts.
func (fs *Settings) butterflyFr(buf []field.Element, roots []field.Element) {
	n := len(buf)
	bitReverse(n, func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })

	stages := bits.Len(uint(n)) - 1
	half := n >> 1
	workers := fs.workersFor(half)

	for r := 0; r < stages; r++ {
		shift := uint(r)
		mask := (1 << r) - 1
		dist := 1 << r
		// twiddle for butterfly j of a 2^(r+1) block is root^(j * MaxWidth/2^(r+1))
		rootStep := int(fs.MaxWidth >> (r + 1))

		parallel.Range(half, workers, func(k0, k1 int) {
			var t field.Element
			for k := k0; k < k1; k++ {
				j := k & mask
				aIdx := ((k >> shift) << (r + 1)) | j
				cIdx := aIdx + dist

				t.Mul(&buf[cIdx], &roots[j*rootStep])
				buf[cIdx].Sub(&buf[aIdx], &t)
				buf[aIdx].Add(&buf[aIdx], &t)
			}
		})
	}
}

func (fs *Settings) workersFor(items int) int {
	w := items / minButterfliesPerWorker
	if w < 1 {
		return 1
	}
	if w > fs.Workers {
		return fs.Workers
	}
	return w
}

// bitReverse calls swap for every pair (i, rev(i)) with i < rev(i); n must be a power of two.
func bitReverse(n int, swap func(i, j int)) {
	if n <= 2 {
		return
	}
	shift := uint(64 - (bits.Len(uint(n)) - 1))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if i < j {
			swap(i, j)
		}
	}
}
