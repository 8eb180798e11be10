// Package parallel splits index ranges across goroutines. It backs the
// O(n^2) point-set diagnostics; the samplers themselves never start
// goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// ParallelFor executes fn for indices [start, end) using n workers. Each
// worker receives one contiguous chunk.
func ParallelFor(start, end, n int, fn func(i int)) {
	chunked(start, end, n, func(s, e int) {
		for i := s; i < e; i++ {
			fn(i)
		}
	})
}

// ParallelMap applies fn to each index in [start, end) and collects the
// results in index order.
func ParallelMap[T any](start, end, n int, fn func(i int) T) []T {
	if end <= start {
		return nil
	}
	results := make([]T, end-start)
	chunked(start, end, n, func(s, e int) {
		for i := s; i < e; i++ {
			results[i-start] = fn(i)
		}
	})
	return results
}

// Do executes multiple functions in parallel and waits for all of them.
func Do(fns ...func()) {
	switch len(fns) {
	case 0:
		return
	case 1:
		fns[0]()
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		go func(f func()) {
			defer wg.Done()
			f()
		}(fn)
	}
	wg.Wait()
}

// chunked cuts [start, end) into at most n contiguous chunks and runs fn on
// each. With n <= 1 it runs inline.
func chunked(start, end, n int, fn func(s, e int)) {
	total := end - start
	if total <= 0 {
		return
	}
	if n <= 1 || total == 1 {
		fn(start, end)
		return
	}

	var wg sync.WaitGroup
	size := (total + n - 1) / n
	for s := start; s < end; s += size {
		e := min(s+size, end)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(s, e)
	}
	wg.Wait()
}
