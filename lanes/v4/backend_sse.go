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

//go:build amd64 && goexperiment.simd && !v4_portable && (v4_sse || !v4_altivec)

package v4

import (
	"simd/archsimd"
	"unsafe"

	"github.com/vpicgo/lanes"
	"github.com/vpicgo/lanes/internal/scalar"
)

// This file maps the 4-lane operators onto 128-bit archsimd vectors. archsimd
// emits VEX encoded instructions, so the host needs AVX even though only the
// SSE register width is used.
//
// SSE has no fused multiply-add: Fma rounds the product and the sum
// separately, like the portable backend. Integer multiply, divide and
// remainder and per-lane shifts have no 128-bit instruction in the subset
// archsimd exposes here and are computed lane by lane.

const backend = lanes.BackendSSE

func init() { lanes.Register(N, backend) }

type reg = archsimd.Int32x4

func rbroadcast(x uint32) reg { return archsimd.BroadcastInt32x4(int32(x)) }

func rload(p *[N]uint32) reg {
	return archsimd.LoadInt32x4Slice((*[N]int32)(unsafe.Pointer(p))[:])
}

func rstore(r reg, p *[N]uint32) { r.StoreSlice((*[N]int32)(unsafe.Pointer(p))[:]) }

func f32(r reg) archsimd.Float32x4 { return r.AsFloat32x4() }
func i32(f archsimd.Float32x4) reg { return f.AsInt32x4() }

// fromMask expands a comparison mask into a boolean vector.
func fromMask(m archsimd.Mask32x4) reg {
	t := archsimd.BroadcastInt32x4(-1).AsFloat32x4()
	return i32(t.Merge(archsimd.BroadcastFloat32x4(0), m))
}

func scalarize(a, b reg, k func(dst, a, b []int32)) reg {
	var x, y [N]int32
	a.StoreSlice(x[:])
	b.StoreSlice(y[:])
	k(x[:], x[:], y[:])
	return archsimd.LoadInt32x4Slice(x[:])
}

func iadd(a, b reg) reg { return a.Add(b) }
func isub(a, b reg) reg { return a.Sub(b) }
func imul(a, b reg) reg { return scalarize(a, b, scalar.MulInt32) }
func idiv(a, b reg) reg { return scalarize(a, b, scalar.DivInt32) }
func irem(a, b reg) reg { return scalarize(a, b, scalar.RemInt32) }
func ishl(a, b reg) reg { return scalarize(a, b, scalar.ShlInt32) }
func ishr(a, b reg) reg { return scalarize(a, b, scalar.ShrInt32) }
func ieq(a, b reg) reg  { return fromMask(a.Equal(b)) }
func ilt(a, b reg) reg  { return fromMask(a.Less(b)) }
func igt(a, b reg) reg  { return fromMask(a.Greater(b)) }

func band(a, b reg) reg    { return a.And(b) }
func bor(a, b reg) reg     { return a.Or(b) }
func bxor(a, b reg) reg    { return a.Xor(b) }
func bandnot(a, b reg) reg { return a.AndNot(b) }

func rselect(c, t, f reg) reg { return t.And(c).Or(f.AndNot(c)) }

func fadd(a, b reg) reg { return i32(f32(a).Add(f32(b))) }
func fsub(a, b reg) reg { return i32(f32(a).Sub(f32(b))) }
func fmul(a, b reg) reg { return i32(f32(a).Mul(f32(b))) }
func fdiv(a, b reg) reg { return i32(f32(a).Div(f32(b))) }
func feq(a, b reg) reg  { return fromMask(f32(a).Equal(f32(b))) }
func flt(a, b reg) reg  { return fromMask(f32(a).Less(f32(b))) }
func fgt(a, b reg) reg  { return fromMask(f32(a).Greater(f32(b))) }

func fmadd(a, b, c reg) reg { return i32(f32(a).Mul(f32(b)).Add(f32(c))) }

func fsqrt(a reg) reg  { return i32(f32(a).Sqrt()) }
func ffloor(a reg) reg { return i32(f32(a).Floor()) }
func fceil(a reg) reg  { return i32(f32(a).Ceil()) }

// frcpEst models RCPPS: archsimd does not expose it, so the 12-bit estimate
// is reproduced lane by lane.
func frcpEst(a reg) reg {
	var x [N]float32
	f32(a).StoreSlice(x[:])
	scalar.RcpEstimate12(x[:], x[:])
	return i32(archsimd.LoadFloat32x4Slice(x[:]))
}

func frsqrtEst(a reg) reg { return i32(f32(a).ReciprocalSqrt()) }

func cvtI2F(a reg) reg { return i32(a.ConvertToFloat32()) }

// cvtF2I truncates (CVTTPS2DQ); invalid lanes produce 0x80000000.
func cvtF2I(a reg) reg { return f32(a).ConvertToInt32() }

func rsplat(a reg, n int) reg {
	var x [N]int32
	a.StoreSlice(x[:])
	return archsimd.BroadcastInt32x4(x[n])
}

func rshuffle(a reg, idx *[N]int) reg {
	var x, y [N]int32
	a.StoreSlice(x[:])
	for i, j := range idx {
		y[i] = x[j]
	}
	return archsimd.LoadInt32x4Slice(y[:])
}

// unpacklo and unpackhi interleave the low and high halves of a and b, like
// UNPCKLPS and UNPCKHPS. movelh and movehl concatenate 64-bit halves, like
// MOVLHPS and MOVHLPS.

func lanes4(r reg) (x [N]int32) {
	r.StoreSlice(x[:])
	return x
}

func unpacklo(a, b reg) reg {
	x, y := lanes4(a), lanes4(b)
	return archsimd.LoadInt32x4Slice([]int32{x[0], y[0], x[1], y[1]})
}

func unpackhi(a, b reg) reg {
	x, y := lanes4(a), lanes4(b)
	return archsimd.LoadInt32x4Slice([]int32{x[2], y[2], x[3], y[3]})
}

func movelh(a, b reg) reg {
	x, y := lanes4(a), lanes4(b)
	return archsimd.LoadInt32x4Slice([]int32{x[0], x[1], y[0], y[1]})
}

func movehl(a, b reg) reg {
	x, y := lanes4(a), lanes4(b)
	return archsimd.LoadInt32x4Slice([]int32{y[2], y[3], x[2], x[3]})
}

// rtranspose is the _MM_TRANSPOSE4_PS sequence.
func rtranspose(rows *[N]reg) {
	t0 := unpacklo(rows[0], rows[1])
	t1 := unpacklo(rows[2], rows[3])
	t2 := unpackhi(rows[0], rows[1])
	t3 := unpackhi(rows[2], rows[3])
	rows[0] = movelh(t0, t1)
	rows[1] = movehl(t1, t0)
	rows[2] = movelh(t2, t3)
	rows[3] = movehl(t3, t2)
}

func rany(a reg) bool { return a.Equal(archsimd.BroadcastInt32x4(0)).ToBits() != 0xF }
func rall(a reg) bool { return a.Equal(archsimd.BroadcastInt32x4(0)).ToBits() == 0 }
