package randutil

import (
	"sync"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/field"
	"github.com/Han-16/kzgist/internal/parallel"
)

// RandomScalarsPar draws n scalars on a pool of workers (<= 0 => GOMAXPROCS(0)).
// maskTopByte clears the most significant byte of every draw.
func RandomScalarsPar(n, workers int, maskTopByte bool) ([]field.Element, error) {
	out := make([]field.Element, max(n, 0))
	err := fill(n, workers, func(i int) error {
		e, err := randomScalar(maskTopByte)
		if err != nil {
			return err
		}
		out[i] = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RandomPointsG1Par generates n random G1 points in parallel.
// Each point is (random scalar) * G1 generator (affine).
func RandomPointsG1Par(n, workers int) ([]curve.G1, error) {
	out := make([]curve.G1, max(n, 0))
	g := curve.G1Generator()
	err := fill(n, workers, func(i int) error {
		s, err := randomScalar(false)
		if err != nil {
			return err
		}
		out[i] = curve.ScalarMulG1(&g, &s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// fill runs job(i) for i in [0, n) on a pool of workers and returns the first error.
func fill(n, workers int, job func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers = min(parallel.Workers(workers), n)

	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	// workers
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := job(i); err != nil {
					errOnce.Do(func() { firstErr = err })
				}
			}
		}()
	}

	// enqueue jobs
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return firstErr
}
