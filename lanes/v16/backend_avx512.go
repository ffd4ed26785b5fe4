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

//go:build amd64 && goexperiment.simd && v16_avx512 && !v16_portable

package v16

import (
	"math"
	"simd/archsimd"
	"unsafe"

	"github.com/vpicgo/lanes"
	"github.com/vpicgo/lanes/internal/scalar"
)

// 512-bit archsimd vectors. The backend is opt-in (-tags v16_avx512): on
// many parts the 512-bit units lower the core clock, which costs more than
// the wider vectors gain for short kernels.
//
// The AVX-512 estimates are more precise than the SSE ones: VRCP14PS and
// VRSQRT14PS guarantee 14 bits.

const backend = lanes.BackendAVX512

func init() { lanes.Register(N, backend) }

type reg = archsimd.Int32x16

func rbroadcast(x uint32) reg { return archsimd.BroadcastInt32x16(int32(x)) }

func rload(p *[N]uint32) reg {
	return archsimd.LoadInt32x16Slice((*[N]int32)(unsafe.Pointer(p))[:])
}

func rstore(r reg, p *[N]uint32) { r.StoreSlice((*[N]int32)(unsafe.Pointer(p))[:]) }

func f32(r reg) archsimd.Float32x16 { return r.AsFloat32x16() }
func i32(f archsimd.Float32x16) reg { return f.AsInt32x16() }

func fromMask(m archsimd.Mask32x16) reg {
	t := archsimd.BroadcastInt32x16(-1).AsFloat32x16()
	return i32(t.Merge(archsimd.BroadcastFloat32x16(0), m))
}

func scalarize(a, b reg, k func(dst, a, b []int32)) reg {
	var x, y [N]int32
	a.StoreSlice(x[:])
	b.StoreSlice(y[:])
	k(x[:], x[:], y[:])
	return archsimd.LoadInt32x16Slice(x[:])
}

// mapFloat evaluates k lane by lane for the float operators archsimd does
// not expose on 512-bit vectors.
func mapFloat(a reg, k func(dst, a []float32)) reg {
	var x [N]float32
	f32(a).StoreSlice(x[:])
	k(x[:], x[:])
	return i32(archsimd.LoadFloat32x16Slice(x[:]))
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

// rselect blends through a mask register. Selects composed from And, AndNot
// and Or return wrong lanes on AVX-512, so lanes are picked whole: c must be
// a boolean vector.
func rselect(c, t, f reg) reg {
	return t.Merge(f, c.NotEqual(archsimd.BroadcastInt32x16(0)))
}

func fadd(a, b reg) reg { return i32(f32(a).Add(f32(b))) }
func fsub(a, b reg) reg { return i32(f32(a).Sub(f32(b))) }
func fmul(a, b reg) reg { return i32(f32(a).Mul(f32(b))) }
func fdiv(a, b reg) reg { return i32(f32(a).Div(f32(b))) }
func feq(a, b reg) reg  { return fromMask(f32(a).Equal(f32(b))) }
func flt(a, b reg) reg  { return fromMask(f32(a).Less(f32(b))) }
func fgt(a, b reg) reg  { return fromMask(f32(a).Greater(f32(b))) }

func fmadd(a, b, c reg) reg { return i32(f32(a).MulAdd(f32(b), f32(c))) }

func fsqrt(a reg) reg { return i32(f32(a).Sqrt()) }

func ffloor(a reg) reg {
	return mapFloat(a, func(dst, a []float32) { scalar.Map1(dst, a, math.Floor) })
}

func fceil(a reg) reg {
	return mapFloat(a, func(dst, a []float32) { scalar.Map1(dst, a, math.Ceil) })
}

// frcpEst reproduces the 14-bit VRCP14PS estimate lane by lane.
func frcpEst(a reg) reg {
	return mapFloat(a, func(dst, a []float32) { scalar.RcpEstimate(dst, a, 14) })
}

func frsqrtEst(a reg) reg { return i32(f32(a).ReciprocalSqrt()) }

func cvtI2F(a reg) reg { return i32(a.ConvertToFloat32()) }
func cvtF2I(a reg) reg { return f32(a).ConvertToInt32() }

func rsplat(a reg, n int) reg {
	var x [N]int32
	a.StoreSlice(x[:])
	return archsimd.BroadcastInt32x16(x[n])
}

func rshuffle(a reg, idx *[N]int) reg {
	var x, y [N]int32
	a.StoreSlice(x[:])
	for i, j := range idx {
		y[i] = x[j]
	}
	return archsimd.LoadInt32x16Slice(y[:])
}

// permutex2var selects from the concatenation of a (0-15) and b (16-31),
// like VPERMT2D.
func permutex2var(a, b reg, sel *[N]int) reg {
	var src [2 * N]int32
	var dst [N]int32
	a.StoreSlice(src[:N])
	b.StoreSlice(src[N:])
	for i, j := range sel {
		dst[i] = src[j]
	}
	return archsimd.LoadInt32x16Slice(dst[:])
}

// transposeSel holds, per stage, the VPERMT2D controls that swap the
// off-diagonal blocks of size 8, 4, 2 and 1 between row i and row i+size.
var transposeSel = func() (s [4][2][N]int) {
	for stage, size := 0, N/2; size >= 1; stage, size = stage+1, size/2 {
		for k := range N {
			if k&size == 0 {
				s[stage][0][k] = k
				s[stage][1][k] = k + size
			} else {
				s[stage][0][k] = N + k - size
				s[stage][1][k] = N + k
			}
		}
	}
	return s
}()

// rtranspose swaps off-diagonal blocks in four stages of two-source permutes.
func rtranspose(rows *[N]reg) {
	for stage, size := 0, N/2; size >= 1; stage, size = stage+1, size/2 {
		for i := range N {
			if i&size != 0 {
				continue
			}
			j := i + size
			rows[i], rows[j] = permutex2var(rows[i], rows[j], &transposeSel[stage][0]),
				permutex2var(rows[i], rows[j], &transposeSel[stage][1])
		}
	}
}

func rany(a reg) bool { return a.Equal(archsimd.BroadcastInt32x16(0)).ToBits() != 0xFFFF }
func rall(a reg) bool { return a.Equal(archsimd.BroadcastInt32x16(0)).ToBits() == 0 }
