// Copyright 2025 The vpicgo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs slice kernels over disjoint index ranges on a set
// of persistent goroutines.
//
// Ranges handed to a callback always start on a multiple of the requested
// alignment, so a kernel working in whole vectors of N lanes only ever sees
// a partial vector in the last range of a call.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.ParallelFor(len(x), v8.N, func(start, end int) {
//	    scaleRange(x[start:end], a)
//	})
//
// A nil *Pool is valid and runs everything on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/vpicgo/lanes"
)

// Pool is a fixed set of worker goroutines reused across calls.
type Pool struct {
	workers   int
	work      chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with the given number of workers, or GOMAXPROCS workers
// if workers <= 0.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		work:    make(chan task, 2*workers),
	}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.work {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers, 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close stops the workers once queued work drains. Calls made on a closed
// pool run inline. Close is idempotent.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.work)
	})
}

func (p *Pool) inline() bool {
	return p == nil || p.closed.Load() || p.workers == 1
}

// run executes every fn, on the workers when possible, and waits.
func (p *Pool) run(fns []func()) {
	if p.inline() || len(fns) == 1 {
		for _, fn := range fns {
			fn()
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		p.work <- task{fn: fn, done: &wg}
	}
	wg.Wait()
}

// Split divides [0, n) into at most parts contiguous ranges whose interior
// boundaries are multiples of align. Ranges are returned as consecutive
// boundaries: range i is [b[i], b[i+1]). The last range takes the remainder.
func Split(n, align, parts int) []int {
	if n <= 0 {
		return nil
	}
	if align <= 0 {
		align = 1
	}
	if parts <= 0 {
		parts = 1
	}
	blocks := (n + align - 1) / align
	parts = min(parts, blocks)
	bounds := make([]int, 0, parts+1)
	bounds = append(bounds, 0)
	per, extra := blocks/parts, blocks%parts
	at := 0
	for i := range parts {
		at += per
		if i < extra {
			at++
		}
		bounds = append(bounds, min(at*align, n))
	}
	return bounds
}

// ParallelFor calls fn over disjoint ranges covering [0, n), one range per
// worker at most. Every range except the last has a length that is a
// multiple of align. fn must be safe to call concurrently on disjoint
// ranges.
func (p *Pool) ParallelFor(n, align int, fn func(start, end int)) {
	bounds := Split(n, align, p.NumWorkers())
	if len(bounds) == 0 {
		return
	}
	fns := make([]func(), len(bounds)-1)
	for i := range fns {
		start, end := bounds[i], bounds[i+1]
		fns[i] = func() { fn(start, end) }
	}
	p.run(fns)
}

// ParallelForBatched hands out batches of batch items on demand, which
// balances uneven per-item cost. batch is rounded up to a multiple of align.
func (p *Pool) ParallelForBatched(n, align, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}
	batch = max(lanes.PaddedSize(batch, align), align)
	if p.inline() || n <= batch {
		for start := 0; start < n; start += batch {
			fn(start, min(start+batch, n))
		}
		return
	}
	var next atomic.Int64
	drain := func() {
		for {
			start := int(next.Add(int64(batch))) - batch
			if start >= n {
				return
			}
			fn(start, min(start+batch, n))
		}
	}
	workers := min(p.workers, (n+batch-1)/batch)
	fns := make([]func(), workers)
	for i := range fns {
		fns[i] = drain
	}
	p.run(fns)
}
