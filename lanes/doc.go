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

// Package lanes holds the build configuration shared by the fixed-width
// vector packages v4, v8 and v16.
//
// Each width package exports an Int and a Float type of N 32-bit lanes
// (N = 4, 8 or 16) with the same operation set. The concrete instruction set
// behind a width is chosen when the program is built, never at run time:
//
//	go build                          # defaults for the target
//	go build -tags v4_portable        # force the scalar emulation for v4
//	GOEXPERIMENT=simd go build -tags v16_avx512
//
// A width package registers the backend it was compiled with during
// initialization; Backends reports the resulting configuration.
//
// Basic usage:
//
//	import "github.com/vpicgo/lanes/v4"
//
//	a := v4.MakeFloat(0, 1, 2, 3)
//	b := v4.BroadcastFloat(2)
//	c := v4.Fma(a, b, v4.BroadcastFloat(1)) // a*b + 1
//	r := c.Rcp()                           // refined reciprocal
//
// Besides the configuration, this package provides the binary operator table
// used by the compound assignment methods, a per-operation kernel registry that
// prefers the widest available width, and helpers for walking arrays in
// blocks of N elements. Slice kernels built on the width packages live in
// contrib/block.
package lanes
