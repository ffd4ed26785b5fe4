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

// Package v8 provides 8-lane vectors of 32-bit integers and floats.
//
// Backends:
//
//	-tags v8_avx2      256-bit archsimd vectors with fused multiply-add
//	                   (default on amd64 with GOEXPERIMENT=simd)
//	-tags v8_avx       256-bit float vectors for AVX hosts without AVX2;
//	                   integer lanes one at a time, unfused multiply-add
//	-tags v8_portable  lane-by-lane Go (default everywhere else)
//
// Besides the operations shared with v4 and v16, v8 has the square
// transposed accessors Load8x8Tr and Store8x8Tr.
package v8

//go:generate go run ../../cmd/lanegen -width 8 -output .
