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

// Command lanegen generates the width-specific sources of the lanes vector
// packages.
//
// Usage:
//
//	lanegen -width 8 -output lanes/v8
//
// Or via go:generate, from the package directory:
//
//	//go:generate go run ../../cmd/lanegen -width 8 -output .
//
// For a width N it writes:
//  1. ops_gen.go, the Int and Float types with every operator, the cross
//     lane operations and the memory access family, written against the
//     backend primitives (rload, iadd, rtranspose, ...)
//  2. portable_gen.go, the lane-by-lane backend built when no hardware
//     backend is selected for the width
//
// The hardware backends (backend_sse.go, backend_avx2.go, ...) are written by
// hand.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	width     = flag.Int("width", 0, "Lane count of the package to generate: 4, 8 or 16 (required)")
	outputDir = flag.String("output", ".", "Output directory (default: current directory)")
)

func main() {
	flag.Parse()

	if *width == 0 {
		fmt.Fprintf(os.Stderr, "Error: -width flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{Width: *width, OutputDir: *outputDir}
	files, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, f := range files {
		fmt.Printf("Generated %s\n", f)
	}
}
