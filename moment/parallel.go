package moment

import "sync"

// forEachColumns runs fn over contiguous sub-ranges of [0, n). When elems
// (the total element count of the stage) reaches the configured threshold,
// the ranges are dispatched to worker goroutines; otherwise fn runs once for
// the whole range on the calling goroutine.
//
// Each invocation of fn owns its half-open column range exclusively, so
// workers never write to shared elements and no locking is needed.
func (cfg config) forEachColumns(elems, n int, fn func(lo, hi int)) {
	workers := cfg.workers
	if workers > n {
		workers = n
	}

	if elems < cfg.minParallelSize || workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup

	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)

		wg.Add(1)

		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}

	wg.Wait()
}
