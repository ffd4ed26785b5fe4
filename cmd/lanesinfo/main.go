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

// Command lanesinfo prints the lane backends compiled into the binary, the
// block kernels available per width and a short throughput probe.
//
// Usage:
//
//	lanesinfo                      # defaults: 1M elements, 20 rounds
//	lanesinfo -n 65536 -rounds 100 -workers 4
//	go run -tags v16_avx512 ./cmd/lanesinfo
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vpicgo/lanes"
	"github.com/vpicgo/lanes/contrib/block"
	"github.com/vpicgo/lanes/contrib/workerpool"
	"github.com/vpicgo/lanes/v16"
	"github.com/vpicgo/lanes/v4"
	"github.com/vpicgo/lanes/v8"
)

var (
	numElems = flag.Int("n", 1<<20, "Elements per probe slice")
	rounds   = flag.Int("rounds", 20, "Timed rounds per kernel")
	workers  = flag.Int("workers", 0, "Workers for the parallel probes (0: GOMAXPROCS, 1: skip)")
	skip     = flag.Bool("noprobe", false, "Only print the configuration")
)

func main() {
	flag.Parse()

	opts := Options{N: *numElems, Rounds: *rounds, Workers: *workers, Probe: !*skip}
	if err := Run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Options controls Run.
type Options struct {
	N       int
	Rounds  int
	Workers int
	Probe   bool
}

// Run writes the report to w.
func Run(w io.Writer, opts Options) error {
	if opts.Probe && (opts.N <= 0 || opts.Rounds <= 0) {
		return fmt.Errorf("invalid probe size: n=%d rounds=%d", opts.N, opts.Rounds)
	}
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Backends:\n")
	// Referencing the packages links them in; their init registers them.
	widths := map[int]lanes.Backend{4: v4.Backend(), 8: v8.Backend(), 16: v16.Backend()}
	for _, c := range lanes.Backends() {
		accel := ""
		if c.Backend.Accelerated() {
			accel = " (hardware)"
		}
		if widths[c.Width] != c.Backend {
			return fmt.Errorf("width %d reports backend %s, registered %s", c.Width, widths[c.Width], c.Backend)
		}
		p.Fprintf(w, "  v%-2d  %s%s\n", c.Width, c.Backend, accel)
	}

	p.Fprintf(w, "\nBlock kernels:\n")
	for _, k := range block.Kernels() {
		p.Fprintf(w, "  %-11s %s\n", k.Op, describeWidths(k.Widths))
	}

	if !opts.Probe {
		return nil
	}

	p.Fprintf(w, "\nThroughput (%d elements, %d rounds):\n", opts.N, opts.Rounds)
	for _, r := range probe(opts.N, opts.Rounds, nil) {
		p.Fprintf(w, "  %-22s %12.1f Melem/s\n", r.name, r.rate/1e6)
	}
	if opts.Workers != 1 {
		pool := workerpool.New(opts.Workers)
		defer pool.Close()
		p.Fprintf(w, "\nParallel throughput (%d workers):\n", pool.NumWorkers())
		for _, r := range probe(opts.N, opts.Rounds, pool) {
			p.Fprintf(w, "  %-22s %12.1f Melem/s\n", r.name, r.rate/1e6)
		}
	}
	return nil
}

func describeWidths(widths []int) string {
	if len(widths) == 0 {
		return "scalar"
	}
	parts := make([]string, len(widths))
	for i, n := range widths {
		parts[i] = fmt.Sprintf("v%d", n)
	}
	return strings.Join(parts, " ")
}

type result struct {
	name string
	rate float64 // elements per second
}

// probe times the block kernels on slices of n elements. A nil pool runs
// the sequential entry points.
func probe(n, rounds int, pool *workerpool.Pool) []result {
	x, y, z := make([]float32, n), make([]float32, n), make([]float32, n)
	dst := make([]float32, n)
	for i := range x {
		x[i] = 1 + float32(i%1000)/1000
		y[i] = 2 - float32(i%777)/1000
		z[i] = 0.5 + float32(i%333)/1000
	}

	kernels := []struct {
		name string
		seq  func()
		par  func()
	}{
		{"Scale", func() { block.Scale(x, 1) }, func() { block.ScaleParallel(pool, x, 1) }},
		{"Reciprocal", func() { block.Reciprocal(dst, x) }, func() { block.ReciprocalParallel(pool, dst, x) }},
		{"Rsqrt", func() { block.Rsqrt(dst, x) }, func() { block.RsqrtParallel(pool, dst, x) }},
		{"Sqrt", func() { block.Sqrt(dst, x) }, func() { block.SqrtParallel(pool, dst, x) }},
		{"MulAdd", func() { block.MulAdd(dst, x, y, z) }, func() { block.MulAddParallel(pool, dst, x, y, z) }},
		{"Normalize3", func() { block.Normalize3(x, y, z) }, func() { block.Normalize3Parallel(pool, x, y, z) }},
	}

	results := make([]result, 0, len(kernels))
	for _, k := range kernels {
		fn := k.seq
		if pool != nil {
			fn = k.par
		}
		fn() // warm up
		start := time.Now()
		for range rounds {
			fn()
		}
		elapsed := time.Since(start).Seconds()
		if elapsed <= 0 {
			elapsed = 1e-9
		}
		results = append(results, result{k.name, float64(n*rounds) / elapsed})
	}
	return results
}
