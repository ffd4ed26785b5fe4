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

//go:build amd64 && goexperiment.simd && !v8_portable && !v8_avx2 && v8_avx

package v8

import (
	"simd/archsimd"
	"unsafe"

	"github.com/vpicgo/lanes"
	"github.com/vpicgo/lanes/internal/scalar"
)

// The AVX backend keeps lanes in 256-bit registers but only uses the float
// instructions AVX adds: VADDPS, VMULPS, VCMPPS, VBLENDVPS and friends.
// Integer arithmetic, bitwise operators and integer comparisons are computed
// lane by lane, and multiply-add is a multiply followed by an add.
//
// Constants are loaded from memory since register broadcasts need AVX2.

const backend = lanes.BackendAVX

func init() { lanes.Register(N, backend) }

type reg = archsimd.Int32x8

var trueLanes = [N]int32{-1, -1, -1, -1, -1, -1, -1, -1}

func rbroadcast(x uint32) reg {
	var a [N]uint32
	scalar.Broadcast(a[:], x)
	return rload(&a)
}

func rload(p *[N]uint32) reg {
	return archsimd.LoadInt32x8Slice((*[N]int32)(unsafe.Pointer(p))[:])
}

func rstore(r reg, p *[N]uint32) { r.StoreSlice((*[N]int32)(unsafe.Pointer(p))[:]) }

func f32(r reg) archsimd.Float32x8 { return r.AsFloat32x8() }
func i32(f archsimd.Float32x8) reg { return f.AsInt32x8() }

// fromMask expands a VCMPPS mask into a boolean vector with VBLENDVPS.
func fromMask(m archsimd.Mask32x8) reg {
	t := archsimd.LoadInt32x8Slice(trueLanes[:]).AsFloat32x8()
	return i32(t.Merge(archsimd.LoadFloat32x8Slice(make([]float32, N)), m))
}

func scalarize(a, b reg, k func(dst, a, b []int32)) reg {
	var x, y [N]int32
	a.StoreSlice(x[:])
	b.StoreSlice(y[:])
	k(x[:], x[:], y[:])
	return archsimd.LoadInt32x8Slice(x[:])
}

func bits(a, b reg, k func(dst, a, b []uint32)) reg {
	var x, y [N]uint32
	rstore(a, &x)
	rstore(b, &y)
	k(x[:], x[:], y[:])
	return rload(&x)
}

func iadd(a, b reg) reg { return scalarize(a, b, scalar.AddInt32) }
func isub(a, b reg) reg { return scalarize(a, b, scalar.SubInt32) }
func imul(a, b reg) reg { return scalarize(a, b, scalar.MulInt32) }
func idiv(a, b reg) reg { return scalarize(a, b, scalar.DivInt32) }
func irem(a, b reg) reg { return scalarize(a, b, scalar.RemInt32) }
func ishl(a, b reg) reg { return scalarize(a, b, scalar.ShlInt32) }
func ishr(a, b reg) reg { return scalarize(a, b, scalar.ShrInt32) }
func ieq(a, b reg) reg  { return scalarize(a, b, scalar.EqualInt32) }
func ilt(a, b reg) reg  { return scalarize(a, b, scalar.LessInt32) }
func igt(a, b reg) reg  { return scalarize(a, b, scalar.GreaterInt32) }

func band(a, b reg) reg    { return bits(a, b, scalar.And) }
func bor(a, b reg) reg     { return bits(a, b, scalar.Or) }
func bxor(a, b reg) reg    { return bits(a, b, scalar.Xor) }
func bandnot(a, b reg) reg { return bits(a, b, scalar.AndNot) }

func rselect(c, t, f reg) reg {
	var x, y, z [N]uint32
	rstore(c, &x)
	rstore(t, &y)
	rstore(f, &z)
	scalar.Select(x[:], x[:], y[:], z[:])
	return rload(&x)
}

func fadd(a, b reg) reg { return i32(f32(a).Add(f32(b))) }
func fsub(a, b reg) reg { return i32(f32(a).Sub(f32(b))) }
func fmul(a, b reg) reg { return i32(f32(a).Mul(f32(b))) }
func fdiv(a, b reg) reg { return i32(f32(a).Div(f32(b))) }
func feq(a, b reg) reg  { return fromMask(f32(a).Equal(f32(b))) }
func flt(a, b reg) reg  { return fromMask(f32(a).Less(f32(b))) }
func fgt(a, b reg) reg  { return fromMask(f32(a).Greater(f32(b))) }

// fmadd rounds the product before the sum.
func fmadd(a, b, c reg) reg { return i32(f32(a).Mul(f32(b)).Add(f32(c))) }

func fsqrt(a reg) reg  { return i32(f32(a).Sqrt()) }
func ffloor(a reg) reg { return i32(f32(a).Floor()) }
func fceil(a reg) reg  { return i32(f32(a).Ceil()) }

// frcpEst reproduces the 12-bit VRCPPS estimate lane by lane.
func frcpEst(a reg) reg {
	var x [N]float32
	f32(a).StoreSlice(x[:])
	scalar.RcpEstimate12(x[:], x[:])
	return i32(archsimd.LoadFloat32x8Slice(x[:]))
}

func frsqrtEst(a reg) reg { return i32(f32(a).ReciprocalSqrt()) }

func cvtI2F(a reg) reg { return i32(a.ConvertToFloat32()) }
func cvtF2I(a reg) reg { return f32(a).ConvertToInt32() }

func rsplat(a reg, n int) reg {
	var x, y [N]uint32
	rstore(a, &x)
	scalar.Splat(y[:], x[:], n)
	return rload(&y)
}

func rshuffle(a reg, idx *[N]int) reg {
	var x, y [N]uint32
	rstore(a, &x)
	scalar.Shuffle(y[:], x[:], idx[:])
	return rload(&y)
}

// rtranspose goes through memory: the in-register sequence needs the
// 256-bit integer unpacks of AVX2.
func rtranspose(rows *[N]reg) {
	var m [N][N]uint32
	for i := range rows {
		rstore(rows[i], &m[i])
	}
	scalar.Transpose((*[N * N]uint32)(unsafe.Pointer(&m))[:], N)
	for i := range rows {
		rows[i] = rload(&m[i])
	}
}

func rany(a reg) bool {
	var x [N]uint32
	rstore(a, &x)
	return scalar.AnyNonzero(x[:])
}

func rall(a reg) bool {
	var x [N]uint32
	rstore(a, &x)
	return scalar.AllNonzero(x[:])
}
