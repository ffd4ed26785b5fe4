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

package lanes

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"sync"
)

// Backend identifies the instruction set a width package was compiled for.
type Backend int

const (
	// BackendPortable is the pure Go lane-by-lane emulation.
	BackendPortable Backend = iota

	// BackendSSE uses 128-bit x86 vectors (archsimd Float32x4 / Int32x4).
	BackendSSE

	// BackendAVX uses 256-bit x86 float vectors without fused multiply-add.
	// Integer lanes are computed one at a time: AVX has no 256-bit integer
	// instructions.
	BackendAVX

	// BackendAVX2 uses 256-bit x86 vectors (archsimd Float32x8 / Int32x8).
	BackendAVX2

	// BackendAVX512 uses 512-bit x86 vectors (archsimd Float32x16 / Int32x16).
	BackendAVX512

	// BackendAltiVec models the POWER AltiVec unit: 12-bit estimate
	// instructions, fused multiply-add and estimate based division.
	BackendAltiVec
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendPortable:
		return "portable"
	case BackendSSE:
		return "sse"
	case BackendAVX:
		return "avx"
	case BackendAVX2:
		return "avx2"
	case BackendAVX512:
		return "avx512"
	case BackendAltiVec:
		return "altivec"
	default:
		return "unknown"
	}
}

// Accelerated reports whether b executes lanes in hardware vector registers.
func (b Backend) Accelerated() bool {
	return b == BackendSSE || b == BackendAVX || b == BackendAVX2 || b == BackendAVX512
}

// Config describes the backend compiled in for one lane width.
type Config struct {
	Width   int
	Backend Backend
}

func (c Config) String() string {
	return fmt.Sprintf("v%d:%s", c.Width, c.Backend)
}

var (
	configMu sync.Mutex
	configs  []Config
)

// Register records the backend of a width package. It is called from the
// init function of v4, v8 and v16 and panics if the host cannot execute the
// backend (unless LANES_SKIP_HOST_CHECK is set) or if the width was already
// registered with a different backend.
func Register(width int, b Backend) {
	if !SkipHostCheckEnv() && !b.hostSupports() {
		panic(fmt.Sprintf("lanes: v%d was built for the %s backend, which this CPU cannot execute; rebuild with -tags v%d_portable",
			width, b, width))
	}

	configMu.Lock()
	defer configMu.Unlock()
	for _, c := range configs {
		if c.Width == width {
			if c.Backend != b {
				panic(fmt.Sprintf("lanes: v%d registered twice (%s and %s)", width, c.Backend, b))
			}
			return
		}
	}
	configs = append(configs, Config{Width: width, Backend: b})
	slices.SortFunc(configs, func(x, y Config) int { return y.Width - x.Width })
}

// Backends returns the compiled-in configuration, widest first. Only width
// packages linked into the binary appear.
func Backends() []Config {
	configMu.Lock()
	defer configMu.Unlock()
	return slices.Clone(configs)
}

// BackendFor returns the backend registered for width.
func BackendFor(width int) (Backend, bool) {
	configMu.Lock()
	defer configMu.Unlock()
	for _, c := range configs {
		if c.Width == width {
			return c.Backend, true
		}
	}
	return BackendPortable, false
}

// SkipHostCheckEnv checks if the LANES_SKIP_HOST_CHECK environment variable
// is set. When set, Register does not verify that the CPU supports the
// compiled-in backend. This is useful under emulators that hide CPUID bits.
func SkipHostCheckEnv() bool {
	val := os.Getenv("LANES_SKIP_HOST_CHECK")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
