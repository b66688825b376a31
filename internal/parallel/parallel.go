// Package parallel splits index ranges across worker goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Workers normalizes a worker count: <= 0 means GOMAXPROCS(0).
func Workers(workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// Range calls fn on contiguous chunks [i0, i1) covering [0, n).
// With a single effective worker fn runs on the calling goroutine.
func Range(n, workers int, fn func(i0, i1 int)) {
	if n <= 0 {
		return
	}
	workers = Workers(workers)
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		i0 := w * chunk
		if i0 >= n {
			break
		}
		i1 := i0 + chunk
		if i1 > n {
			i1 = n
		}
		wg.Add(1)
		go func(i0, i1 int) {
			defer wg.Done()
			fn(i0, i1)
		}(i0, i1)
	}
	wg.Wait()
}
