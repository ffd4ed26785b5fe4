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

// Package v16 provides 16-lane vectors of 32-bit integers and floats.
//
// The portable backend is the default on every platform; the AVX-512
// backend must be requested with -tags v16_avx512 (and GOEXPERIMENT=simd).
package v16

//go:generate go run ../../cmd/lanegen -width 16 -output .
