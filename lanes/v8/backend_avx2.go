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

//go:build amd64 && goexperiment.simd && !v8_portable && (v8_avx2 || !v8_avx)

package v8

import (
	"simd/archsimd"
	"unsafe"

	"github.com/vpicgo/lanes"
	"github.com/vpicgo/lanes/internal/scalar"
)

// This file maps the 8-lane operators onto 256-bit archsimd vectors.
// Multiply-add is fused (VFMADD231PS). Integer divide and remainder have no
// instruction; they, the integer multiply and per-lane shifts are computed
// lane by lane so every backend shares one definition of wraparound and shift
// count masking.

const backend = lanes.BackendAVX2

func init() { lanes.Register(N, backend) }

type reg = archsimd.Int32x8

func rbroadcast(x uint32) reg { return archsimd.BroadcastInt32x8(int32(x)) }

func rload(p *[N]uint32) reg {
	return archsimd.LoadInt32x8Slice((*[N]int32)(unsafe.Pointer(p))[:])
}

func rstore(r reg, p *[N]uint32) { r.StoreSlice((*[N]int32)(unsafe.Pointer(p))[:]) }

func f32(r reg) archsimd.Float32x8 { return r.AsFloat32x8() }
func i32(f archsimd.Float32x8) reg { return f.AsInt32x8() }

// fromMask expands a comparison mask into a boolean vector.
func fromMask(m archsimd.Mask32x8) reg {
	t := archsimd.BroadcastInt32x8(-1).AsFloat32x8()
	return i32(t.Merge(archsimd.BroadcastFloat32x8(0), m))
}

func scalarize(a, b reg, k func(dst, a, b []int32)) reg {
	var x, y [N]int32
	a.StoreSlice(x[:])
	b.StoreSlice(y[:])
	k(x[:], x[:], y[:])
	return archsimd.LoadInt32x8Slice(x[:])
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

func fmadd(a, b, c reg) reg { return i32(f32(a).MulAdd(f32(b), f32(c))) }

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
	var x [N]int32
	a.StoreSlice(x[:])
	return archsimd.BroadcastInt32x8(x[n])
}

func rshuffle(a reg, idx *[N]int) reg {
	var x, y [N]int32
	a.StoreSlice(x[:])
	for i, j := range idx {
		y[i] = x[j]
	}
	return archsimd.LoadInt32x8Slice(y[:])
}

// Two-source permutes used by the transpose. Each table selects from the
// concatenation of a (0-7) and b (8-15) and matches the named instruction.
var (
	unpcklps   = [N]int{0, 8, 1, 9, 4, 12, 5, 13}
	unpckhps   = [N]int{2, 10, 3, 11, 6, 14, 7, 15}
	shufps44   = [N]int{0, 1, 8, 9, 4, 5, 12, 13}
	shufpsEE   = [N]int{2, 3, 10, 11, 6, 7, 14, 15}
	perm2f1x20 = [N]int{0, 1, 2, 3, 8, 9, 10, 11}
	perm2f1x31 = [N]int{4, 5, 6, 7, 12, 13, 14, 15}
)

func permute2(a, b reg, sel *[N]int) reg {
	var src [2 * N]int32
	var dst [N]int32
	a.StoreSlice(src[:N])
	b.StoreSlice(src[N:])
	for i, j := range sel {
		dst[i] = src[j]
	}
	return archsimd.LoadInt32x8Slice(dst[:])
}

// rtranspose is the usual three stage AVX 8x8 transpose: interleave pairs of
// rows, gather 2x2 blocks within each 128-bit half, then exchange halves.
func rtranspose(rows *[N]reg) {
	var t, u [N]reg
	for i := 0; i < N; i += 2 {
		t[i] = permute2(rows[i], rows[i+1], &unpcklps)
		t[i+1] = permute2(rows[i], rows[i+1], &unpckhps)
	}
	for i := 0; i < N; i += 4 {
		u[i] = permute2(t[i], t[i+2], &shufps44)
		u[i+1] = permute2(t[i], t[i+2], &shufpsEE)
		u[i+2] = permute2(t[i+1], t[i+3], &shufps44)
		u[i+3] = permute2(t[i+1], t[i+3], &shufpsEE)
	}
	for i := range 4 {
		rows[i] = permute2(u[i], u[i+4], &perm2f1x20)
		rows[i+4] = permute2(u[i], u[i+4], &perm2f1x31)
	}
}

func rany(a reg) bool { return a.Equal(archsimd.BroadcastInt32x8(0)).ToBits() != 0xFF }
func rall(a reg) bool { return a.Equal(archsimd.BroadcastInt32x8(0)).ToBits() == 0 }
