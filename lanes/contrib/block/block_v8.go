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

//go:build !lanes_no_v8

package block

import (
	"unsafe"

	"github.com/vpicgo/lanes"
	"github.com/vpicgo/lanes/v8"
)

func init() {
	updates.Register(opScale, v8.N, scale8)
	updates.Register(opIncrement, v8.N, increment8)
	updates.Register(opDecrement, v8.N, decrement8)
	unaries.Register(opReciprocal, v8.N, reciprocal8)
	unaries.Register(opRsqrt, v8.N, rsqrt8)
	unaries.Register(opSqrt, v8.N, sqrt8)
	ternaries.Register(opMulAdd, v8.N, mulAdd8)
	vec3s.Register(opAoSToSoA, v8.N, aosToSoA8)
	vec3s.Register(opSoAToAoS, v8.N, soaToAoS8)
	vec3s.Register(opNormalize3, v8.N, normalize3v8)
}

func scale8(x []float32, a float32) {
	s := v8.BroadcastFloat(a)
	lanes.ProcessBlocks(len(x), v8.N,
		func(off int) { v8.Scale(x[off:], s) },
		func(off, count int) { scaleScalar(x[off:off+count], a) })
}

func increment8(x []float32, a float32) {
	s := v8.BroadcastFloat(a)
	lanes.ProcessBlocks(len(x), v8.N,
		func(off int) { v8.Increment(x[off:], s) },
		func(off, count int) { incrementScalar(x[off:off+count], a) })
}

func decrement8(x []float32, a float32) {
	s := v8.BroadcastFloat(a)
	lanes.ProcessBlocks(len(x), v8.N,
		func(off int) { v8.Decrement(x[off:], s) },
		func(off, count int) { decrementScalar(x[off:off+count], a) })
}

func reciprocal8(dst, x []float32) {
	lanes.ProcessBlocks(len(x), v8.N,
		func(off int) { v8.LoadFloat(x[off:]).Rcp().Store(dst[off:]) },
		func(off, count int) { tail8(dst[off:off+count], x[off:off+count], v8.Float.Rcp) })
}

func rsqrt8(dst, x []float32) {
	lanes.ProcessBlocks(len(x), v8.N,
		func(off int) { v8.LoadFloat(x[off:]).Rsqrt().Store(dst[off:]) },
		func(off, count int) { tail8(dst[off:off+count], x[off:off+count], v8.Float.Rsqrt) })
}

func sqrt8(dst, x []float32) {
	lanes.ProcessBlocks(len(x), v8.N,
		func(off int) { v8.LoadFloat(x[off:]).Sqrt().Store(dst[off:]) },
		func(off, count int) { tail8(dst[off:off+count], x[off:off+count], v8.Float.Sqrt) })
}

// tail8 runs fn on a zero-padded copy of the remainder so the tail gets the
// same rounding as the full blocks.
func tail8(dst, x []float32, fn func(v8.Float) v8.Float) {
	var buf [v8.N]float32
	copy(buf[:], x)
	fn(v8.FloatFromArray(buf)).Store(buf[:])
	copy(dst, buf[:len(x)])
}

func mulAdd8(dst, a, b, c []float32) {
	lanes.ProcessBlocks(len(a), v8.N,
		func(off int) {
			v8.Fma(v8.LoadFloat(a[off:]), v8.LoadFloat(b[off:]), v8.LoadFloat(c[off:])).Store(dst[off:])
		},
		func(off, count int) {
			end := off + count
			mulAddScalar(dst[off:end], a[off:end], b[off:end], c[off:end])
		})
}

// records8 points at the three-vectors off to off+N-1 of aos.
func records8(aos []float32, off int) *[v8.N]unsafe.Pointer {
	var p [v8.N]unsafe.Pointer
	for i := range p {
		p[i] = unsafe.Pointer(&aos[3*(off+i)])
	}
	return &p
}

func aosToSoA8(aos, x, y, z []float32) {
	lanes.ProcessBlocks(len(x), v8.N,
		func(off int) {
			var vx, vy, vz v8.Float
			v8.Load8x3Tr(records8(aos, off), &vx, &vy, &vz)
			vx.Store(x[off:])
			vy.Store(y[off:])
			vz.Store(z[off:])
		},
		func(off, count int) {
			end := off + count
			aosToSoAScalar(aos[3*off:3*end], x[off:end], y[off:end], z[off:end])
		})
}

func soaToAoS8(aos, x, y, z []float32) {
	lanes.ProcessBlocks(len(x), v8.N,
		func(off int) {
			v8.Store8x3Tr(v8.LoadFloat(x[off:]), v8.LoadFloat(y[off:]), v8.LoadFloat(z[off:]), records8(aos, off))
		},
		func(off, count int) {
			end := off + count
			soaToAoSScalar(aos[3*off:3*end], x[off:end], y[off:end], z[off:end])
		})
}

func normalize3v8(_, x, y, z []float32) {
	zero := v8.BroadcastFloat(0)
	lanes.ProcessBlocks(len(x), v8.N,
		func(off int) {
			vx, vy, vz := v8.LoadFloat(x[off:]), v8.LoadFloat(y[off:]), v8.LoadFloat(z[off:])
			n2 := v8.Fma(vz, vz, v8.Fma(vy, vy, vx.Mul(vx)))
			// Zero lanes would get Inf from Rsqrt; scale them by 1 instead.
			r := v8.Merge(n2.Equal(zero), v8.BroadcastFloat(1), n2.Rsqrt())
			vx.Mul(r).Store(x[off:])
			vy.Mul(r).Store(y[off:])
			vz.Mul(r).Store(z[off:])
		},
		func(off, count int) {
			end := off + count
			normalize3Scalar(nil, x[off:end], y[off:end], z[off:end])
		})
}
