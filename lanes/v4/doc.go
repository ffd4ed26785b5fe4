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

// Package v4 provides 4-lane vectors of 32-bit integers and floats.
//
// The backend is chosen when the package is compiled:
//
//	-tags v4_sse       128-bit archsimd vectors (default on amd64 with GOEXPERIMENT=simd)
//	-tags v4_altivec   model of the POWER AltiVec unit (default on ppc64 and ppc64le)
//	-tags v4_portable  lane-by-lane Go (default everywhere else)
//
// Setting two of the tags fails to compile. See package lanes for the
// rules every backend follows.
package v4

//go:generate go run ../../cmd/lanegen -width 4 -output .
