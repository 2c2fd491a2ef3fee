// Package parallel fans out independent evaluations across goroutines.
//
// Forward-mode differentiation needs one function evaluation per seeded
// direction. Those evaluations share nothing, so they can run on separate
// workers without coordination beyond waiting for completion.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled  bool // Whether parallel execution is enabled.
	Workers  int  // Maximum number of worker goroutines.
	MinTasks int  // Below this many tasks everything runs on the caller's goroutine.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:  n > 1,
		Workers:  n,
		MinTasks: 2,
	}
}

// Sequential returns a config that never spawns goroutines.
func Sequential() Config {
	return Config{}
}

// For executes f(i) for i in [0, n). Every index is visited exactly once.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	workers := cfg.Workers
	if !cfg.Enabled || workers < 2 || n < max(cfg.MinTasks, 2) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
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

// Pair is an index pair (I, J) with I <= J.
type Pair struct {
	I, J int
}

// UpperTriangle lists the pairs (i, j) with 0 <= i <= j < n in row order.
func UpperTriangle(n int) []Pair {
	pairs := make([]Pair, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}
	return pairs
}

// ForPairs executes f(i, j) for every pair of the upper triangle of an n×n
// matrix, diagonal included. Used for symmetric second-order results.
func ForPairs(n int, f func(i, j int), cfg Config) {
	pairs := UpperTriangle(n)
	For(len(pairs), func(k int) {
		f(pairs[k].I, pairs[k].J)
	}, cfg)
}
