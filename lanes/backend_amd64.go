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

//go:build amd64

package lanes

import "golang.org/x/sys/cpu"

// hostSupports reports whether the running CPU can execute b.
//
// archsimd emits VEX encoded instructions even for 128-bit vectors, so the
// SSE backend needs AVX too. The AVX2 backend uses fused multiply-add.
func (b Backend) hostSupports() bool {
	switch b {
	case BackendSSE, BackendAVX:
		return cpu.X86.HasAVX
	case BackendAVX2:
		return cpu.X86.HasAVX2 && cpu.X86.HasFMA
	case BackendAVX512:
		return cpu.X86.HasAVX512F
	default:
		// Portable and the AltiVec model are pure Go.
		return true
	}
}
