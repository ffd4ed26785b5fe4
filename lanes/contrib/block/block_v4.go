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

//go:build !lanes_no_v4

package block

import (
	"unsafe"

	"github.com/vpicgo/lanes"
	"github.com/vpicgo/lanes/v4"
)

func init() {
	updates.Register(opScale, v4.N, scale4)
	updates.Register(opIncrement, v4.N, increment4)
	updates.Register(opDecrement, v4.N, decrement4)
	unaries.Register(opReciprocal, v4.N, reciprocal4)
	unaries.Register(opRsqrt, v4.N, rsqrt4)
	unaries.Register(opSqrt, v4.N, sqrt4)
	ternaries.Register(opMulAdd, v4.N, mulAdd4)
	vec3s.Register(opAoSToSoA, v4.N, aosToSoA4)
	vec3s.Register(opSoAToAoS, v4.N, soaToAoS4)
	vec3s.Register(opNormalize3, v4.N, normalize3v4)
}

func scale4(x []float32, a float32) {
	s := v4.BroadcastFloat(a)
	lanes.ProcessBlocks(len(x), v4.N,
		func(off int) { v4.Scale(x[off:], s) },
		func(off, count int) { scaleScalar(x[off:off+count], a) })
}

func increment4(x []float32, a float32) {
	s := v4.BroadcastFloat(a)
	lanes.ProcessBlocks(len(x), v4.N,
		func(off int) { v4.Increment(x[off:], s) },
		func(off, count int) { incrementScalar(x[off:off+count], a) })
}

func decrement4(x []float32, a float32) {
	s := v4.BroadcastFloat(a)
	lanes.ProcessBlocks(len(x), v4.N,
		func(off int) { v4.Decrement(x[off:], s) },
		func(off, count int) { decrementScalar(x[off:off+count], a) })
}

func reciprocal4(dst, x []float32) {
	lanes.ProcessBlocks(len(x), v4.N,
		func(off int) { v4.LoadFloat(x[off:]).Rcp().Store(dst[off:]) },
		func(off, count int) { tail4(dst[off:off+count], x[off:off+count], v4.Float.Rcp) })
}

func rsqrt4(dst, x []float32) {
	lanes.ProcessBlocks(len(x), v4.N,
		func(off int) { v4.LoadFloat(x[off:]).Rsqrt().Store(dst[off:]) },
		func(off, count int) { tail4(dst[off:off+count], x[off:off+count], v4.Float.Rsqrt) })
}

func sqrt4(dst, x []float32) {
	lanes.ProcessBlocks(len(x), v4.N,
		func(off int) { v4.LoadFloat(x[off:]).Sqrt().Store(dst[off:]) },
		func(off, count int) { tail4(dst[off:off+count], x[off:off+count], v4.Float.Sqrt) })
}

// tail4 runs fn on a zero-padded copy of the remainder so the tail gets the
// same rounding as the full blocks.
func tail4(dst, x []float32, fn func(v4.Float) v4.Float) {
	var buf [v4.N]float32
	copy(buf[:], x)
	fn(v4.FloatFromArray(buf)).Store(buf[:])
	copy(dst, buf[:len(x)])
}

func mulAdd4(dst, a, b, c []float32) {
	lanes.ProcessBlocks(len(a), v4.N,
		func(off int) {
			v4.Fma(v4.LoadFloat(a[off:]), v4.LoadFloat(b[off:]), v4.LoadFloat(c[off:])).Store(dst[off:])
		},
		func(off, count int) {
			end := off + count
			mulAddScalar(dst[off:end], a[off:end], b[off:end], c[off:end])
		})
}

// records4 points at the three-vectors off to off+N-1 of aos.
func records4(aos []float32, off int) *[v4.N]unsafe.Pointer {
	var p [v4.N]unsafe.Pointer
	for i := range p {
		p[i] = unsafe.Pointer(&aos[3*(off+i)])
	}
	return &p
}

func aosToSoA4(aos, x, y, z []float32) {
	lanes.ProcessBlocks(len(x), v4.N,
		func(off int) {
			var vx, vy, vz v4.Float
			v4.Load4x3Tr(records4(aos, off), &vx, &vy, &vz)
			vx.Store(x[off:])
			vy.Store(y[off:])
			vz.Store(z[off:])
		},
		func(off, count int) {
			end := off + count
			aosToSoAScalar(aos[3*off:3*end], x[off:end], y[off:end], z[off:end])
		})
}

func soaToAoS4(aos, x, y, z []float32) {
	lanes.ProcessBlocks(len(x), v4.N,
		func(off int) {
			v4.Store4x3Tr(v4.LoadFloat(x[off:]), v4.LoadFloat(y[off:]), v4.LoadFloat(z[off:]), records4(aos, off))
		},
		func(off, count int) {
			end := off + count
			soaToAoSScalar(aos[3*off:3*end], x[off:end], y[off:end], z[off:end])
		})
}

func normalize3v4(_, x, y, z []float32) {
	zero := v4.BroadcastFloat(0)
	lanes.ProcessBlocks(len(x), v4.N,
		func(off int) {
			vx, vy, vz := v4.LoadFloat(x[off:]), v4.LoadFloat(y[off:]), v4.LoadFloat(z[off:])
			n2 := v4.Fma(vz, vz, v4.Fma(vy, vy, vx.Mul(vx)))
			// Zero lanes would get Inf from Rsqrt; scale them by 1 instead.
			r := v4.Merge(n2.Equal(zero), v4.BroadcastFloat(1), n2.Rsqrt())
			vx.Mul(r).Store(x[off:])
			vy.Mul(r).Store(y[off:])
			vz.Mul(r).Store(z[off:])
		},
		func(off, count int) {
			end := off + count
			normalize3Scalar(nil, x[off:end], y[off:end], z[off:end])
		})
}
