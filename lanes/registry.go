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
	"slices"
	"sync"
)

// Registry maps operation names to kernels implemented at one or more lane
// widths. Lookup applies the priority rule of the build configuration: the
// widest registered implementation of an operation wins, and operations
// that only exist at narrower widths fall back to them. The choice is made per
// operation, never globally.
//
// Kernels are registered from init functions of files guarded by the width
// build tags, so the set of entries is fixed once the program starts.
type Registry[F any] struct {
	mu      sync.RWMutex
	entries map[string][]Kernel[F]
}

// Kernel is one registered implementation of an operation.
type Kernel[F any] struct {
	Op    string
	Width int
	Fn    F
}

// NewRegistry creates an empty registry.
func NewRegistry[F any]() *Registry[F] {
	return &Registry[F]{entries: make(map[string][]Kernel[F])}
}

// Register adds fn as the implementation of op at width. Registering the same
// (op, width) twice replaces the previous kernel.
func (r *Registry[F]) Register(op string, width int, fn F) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ks := r.entries[op]
	for i := range ks {
		if ks[i].Width == width {
			ks[i].Fn = fn
			return
		}
	}
	ks = append(ks, Kernel[F]{Op: op, Width: width, Fn: fn})
	// Widest first.
	slices.SortFunc(ks, func(a, b Kernel[F]) int { return b.Width - a.Width })
	r.entries[op] = ks
}

// Lookup returns the widest kernel registered for op. ok is false when no
// width implements op; callers then use their scalar path.
func (r *Registry[F]) Lookup(op string) (k Kernel[F], ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ks := r.entries[op]
	if len(ks) == 0 {
		return k, false
	}
	return ks[0], true
}

// LookupAtMost returns the widest kernel for op whose width does not exceed
// maxWidth. It is used when a block is too short for the widest kernel.
func (r *Registry[F]) LookupAtMost(op string, maxWidth int) (k Kernel[F], ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.entries[op] {
		if c.Width <= maxWidth {
			return c, true
		}
	}
	return k, false
}

// Widths returns the widths implementing op, widest first.
func (r *Registry[F]) Widths(op string) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ks := r.entries[op]
	widths := make([]int, len(ks))
	for i, k := range ks {
		widths[i] = k.Width
	}
	return widths
}

// Ops returns the registered operation names in sorted order.
func (r *Registry[F]) Ops() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ops := make([]string, 0, len(r.entries))
	for op := range r.entries {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}
