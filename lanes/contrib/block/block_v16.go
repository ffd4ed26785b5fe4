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

//go:build !lanes_no_v16

package block

import (
	"unsafe"

	"github.com/vpicgo/lanes"
	"github.com/vpicgo/lanes/v16"
)

// Normalize3 has no 16-lane kernel; it resolves to the 8-lane one.
func init() {
	updates.Register(opScale, v16.N, scale16)
	updates.Register(opIncrement, v16.N, increment16)
	updates.Register(opDecrement, v16.N, decrement16)
	unaries.Register(opReciprocal, v16.N, reciprocal16)
	unaries.Register(opRsqrt, v16.N, rsqrt16)
	unaries.Register(opSqrt, v16.N, sqrt16)
	ternaries.Register(opMulAdd, v16.N, mulAdd16)
	vec3s.Register(opAoSToSoA, v16.N, aosToSoA16)
	vec3s.Register(opSoAToAoS, v16.N, soaToAoS16)
}

func scale16(x []float32, a float32) {
	s := v16.BroadcastFloat(a)
	lanes.ProcessBlocks(len(x), v16.N,
		func(off int) { v16.Scale(x[off:], s) },
		func(off, count int) { scaleScalar(x[off:off+count], a) })
}

func increment16(x []float32, a float32) {
	s := v16.BroadcastFloat(a)
	lanes.ProcessBlocks(len(x), v16.N,
		func(off int) { v16.Increment(x[off:], s) },
		func(off, count int) { incrementScalar(x[off:off+count], a) })
}

func decrement16(x []float32, a float32) {
	s := v16.BroadcastFloat(a)
	lanes.ProcessBlocks(len(x), v16.N,
		func(off int) { v16.Decrement(x[off:], s) },
		func(off, count int) { decrementScalar(x[off:off+count], a) })
}

func reciprocal16(dst, x []float32) {
	lanes.ProcessBlocks(len(x), v16.N,
		func(off int) { v16.LoadFloat(x[off:]).Rcp().Store(dst[off:]) },
		func(off, count int) { tail16(dst[off:off+count], x[off:off+count], v16.Float.Rcp) })
}

func rsqrt16(dst, x []float32) {
	lanes.ProcessBlocks(len(x), v16.N,
		func(off int) { v16.LoadFloat(x[off:]).Rsqrt().Store(dst[off:]) },
		func(off, count int) { tail16(dst[off:off+count], x[off:off+count], v16.Float.Rsqrt) })
}

func sqrt16(dst, x []float32) {
	lanes.ProcessBlocks(len(x), v16.N,
		func(off int) { v16.LoadFloat(x[off:]).Sqrt().Store(dst[off:]) },
		func(off, count int) { tail16(dst[off:off+count], x[off:off+count], v16.Float.Sqrt) })
}

// tail16 runs fn on a zero-padded copy of the remainder so the tail gets the
// same rounding as the full blocks.
func tail16(dst, x []float32, fn func(v16.Float) v16.Float) {
	var buf [v16.N]float32
	copy(buf[:], x)
	fn(v16.FloatFromArray(buf)).Store(buf[:])
	copy(dst, buf[:len(x)])
}

func mulAdd16(dst, a, b, c []float32) {
	lanes.ProcessBlocks(len(a), v16.N,
		func(off int) {
			v16.Fma(v16.LoadFloat(a[off:]), v16.LoadFloat(b[off:]), v16.LoadFloat(c[off:])).Store(dst[off:])
		},
		func(off, count int) {
			end := off + count
			mulAddScalar(dst[off:end], a[off:end], b[off:end], c[off:end])
		})
}

// records16 points at the three-vectors off to off+N-1 of aos.
func records16(aos []float32, off int) *[v16.N]unsafe.Pointer {
	var p [v16.N]unsafe.Pointer
	for i := range p {
		p[i] = unsafe.Pointer(&aos[3*(off+i)])
	}
	return &p
}

func aosToSoA16(aos, x, y, z []float32) {
	lanes.ProcessBlocks(len(x), v16.N,
		func(off int) {
			var vx, vy, vz v16.Float
			v16.Load16x3Tr(records16(aos, off), &vx, &vy, &vz)
			vx.Store(x[off:])
			vy.Store(y[off:])
			vz.Store(z[off:])
		},
		func(off, count int) {
			end := off + count
			aosToSoAScalar(aos[3*off:3*end], x[off:end], y[off:end], z[off:end])
		})
}

func soaToAoS16(aos, x, y, z []float32) {
	lanes.ProcessBlocks(len(x), v16.N,
		func(off int) {
			v16.Store16x3Tr(v16.LoadFloat(x[off:]), v16.LoadFloat(y[off:]), v16.LoadFloat(z[off:]), records16(aos, off))
		},
		func(off, count int) {
			end := off + count
			soaToAoSScalar(aos[3*off:3*end], x[off:end], y[off:end], z[off:end])
		})
}
