// Package parallel provides row-sliced loop execution for staging
// copies and element-wise passes over large matrices.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how loops are split across goroutines.
type Config struct {
	Enabled  bool // Run loop bodies concurrently.
	Workers  int  // Goroutines to fan out across.
	MinIters int  // Below this trip count the loop stays sequential.
}

// DefaultConfig sizes the worker pool to the CPU count. Small loops
// stay sequential: for the staging copies this package serves, the
// goroutine overhead only pays off past a few hundred rows.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:  n > 1,
		Workers:  n,
		MinIters: 256,
	}
}

// For runs f(i) for i in [0, n), splitting the range into contiguous
// chunks across workers. Iterations must be independent: each f(i) may
// only touch state indexed by i.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinIters {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := (n + cfg.Workers - 1) / cfg.Workers
	if chunk < cfg.MinIters {
		chunk = cfg.MinIters
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
