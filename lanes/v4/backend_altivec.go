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

//go:build !v4_portable && !(amd64 && goexperiment.simd && v4_sse) && (v4_altivec || ppc64 || ppc64le)

package v4

import (
	"math"
	"unsafe"

	"github.com/vpicgo/lanes"
	"github.com/vpicgo/lanes/internal/scalar"
)

// The AltiVec backend models the POWER vector unit instruction by
// instruction. Go has no ppc64 vector intrinsics, so each v* helper below
// reproduces the result of the instruction it is named after:
//
//   - there is no float multiply, only the fused vmaddfp;
//   - there is no float divide or square root: they are built from the
//     12-bit vrefp and vrsqrtefp estimates and two Newton-Raphson steps;
//   - integer multiply, divide and remainder have no 32-bit form and are
//     computed lane by lane;
//   - cross-lane operations go through vperm, vmrghw and vmrglw.

const backend = lanes.BackendAltiVec

func init() { lanes.Register(N, backend) }

type reg [N]uint32

func (r *reg) i() []int32   { return (*[N]int32)(unsafe.Pointer(r))[:] }
func (r *reg) f() []float32 { return (*[N]float32)(unsafe.Pointer(r))[:] }

// negZero is the additive identity vmaddfp needs to act as a multiply: a*b +
// -0 keeps the sign of a zero product.
var negZero = reg{1 << 31, 1 << 31, 1 << 31, 1 << 31}

func vspltisw(x uint32) reg { return reg{x, x, x, x} }

func vmaddfp(a, b, c reg) (r reg) {
	scalar.FusedMulAddFloat32(r.f(), a.f(), b.f(), c.f())
	return r
}

// vnmsubfp computes -(a*b - c) with a single rounding.
func vnmsubfp(a, b, c reg) reg { return vmaddfp(vxor(a, negZero), b, c) }

func vrefp(a reg) (r reg) {
	scalar.RcpEstimate12(r.f(), a.f())
	return r
}

func vrsqrtefp(a reg) (r reg) {
	scalar.RsqrtEstimate12(r.f(), a.f())
	return r
}

func vxor(a, b reg) (r reg) {
	scalar.Xor(r[:], a[:], b[:])
	return r
}

// vrcp refines vrefp: x += x*(1 - a*x), twice.
func vrcp(a reg) reg {
	one := bfloat(1)
	x := vrefp(a)
	for range 2 {
		x = vmaddfp(vnmsubfp(a, x, one), x, x)
	}
	return x
}

// vrsqrt refines vrsqrtefp: y += 0.5*y*(1 - a*y*y), twice.
func vrsqrt(a reg) reg {
	one, half := bfloat(1), bfloat(0.5)
	y := vrsqrtefp(a)
	for range 2 {
		yy := vmaddfp(y, y, negZero)
		y = vmaddfp(vmaddfp(half, y, negZero), vnmsubfp(a, yy, one), y)
	}
	return y
}

func bfloat(x float32) reg { return vspltisw(math.Float32bits(x)) }

// vperm selects bytes from the 32-byte concatenation of a and b.
func vperm(a, b reg, pattern *[4 * N]byte) (r reg) {
	var src [8 * N]byte
	copy(src[:4*N], (*[4 * N]byte)(unsafe.Pointer(&a))[:])
	copy(src[4*N:], (*[4 * N]byte)(unsafe.Pointer(&b))[:])
	dst := (*[4 * N]byte)(unsafe.Pointer(&r))
	for i, p := range pattern {
		dst[i] = src[p&0x1F]
	}
	return r
}

// wordPattern builds the vperm control selecting word idx[i] of a into
// word i.
func wordPattern(idx *[N]int) (p [4 * N]byte) {
	for i, w := range idx {
		for k := range 4 {
			p[4*i+k] = byte(4*w + k)
		}
	}
	return p
}

func vmrghw(a, b reg) reg { return reg{a[0], b[0], a[1], b[1]} }
func vmrglw(a, b reg) reg { return reg{a[2], b[2], a[3], b[3]} }

func rbroadcast(x uint32) reg    { return vspltisw(x) }
func rload(p *[N]uint32) reg     { return reg(*p) }
func rstore(r reg, p *[N]uint32) { *p = r }

func int2(a, b reg, k func(dst, a, b []int32)) (r reg) {
	k(r.i(), a.i(), b.i())
	return r
}

func iadd(a, b reg) reg { return int2(a, b, scalar.AddInt32) }
func isub(a, b reg) reg { return int2(a, b, scalar.SubInt32) }
func imul(a, b reg) reg { return int2(a, b, scalar.MulInt32) }
func idiv(a, b reg) reg { return int2(a, b, scalar.DivInt32) }
func irem(a, b reg) reg { return int2(a, b, scalar.RemInt32) }

// vslw and vsraw use the low five bits of each count lane.
func ishl(a, b reg) reg { return int2(a, b, scalar.ShlInt32) }
func ishr(a, b reg) reg { return int2(a, b, scalar.ShrInt32) }

func ieq(a, b reg) reg { return int2(a, b, scalar.EqualInt32) }
func igt(a, b reg) reg { return int2(a, b, scalar.GreaterInt32) }
func ilt(a, b reg) reg { return igt(b, a) }

func band(a, b reg) (r reg) {
	scalar.And(r[:], a[:], b[:])
	return r
}

func bor(a, b reg) (r reg) {
	scalar.Or(r[:], a[:], b[:])
	return r
}

func bxor(a, b reg) reg { return vxor(a, b) }

// bandnot is vandc.
func bandnot(a, b reg) (r reg) {
	scalar.AndNot(r[:], a[:], b[:])
	return r
}

// rselect is vsel.
func rselect(c, t, f reg) (r reg) {
	scalar.Select(r[:], c[:], t[:], f[:])
	return r
}

func fadd(a, b reg) (r reg) {
	scalar.AddFloat32(r.f(), a.f(), b.f())
	return r
}

func fsub(a, b reg) (r reg) {
	scalar.SubFloat32(r.f(), a.f(), b.f())
	return r
}

func fmul(a, b reg) reg { return vmaddfp(a, b, negZero) }

func fdiv(a, b reg) reg { return vmaddfp(a, vrcp(b), negZero) }

func fmadd(a, b, c reg) reg { return vmaddfp(a, b, c) }

func fsqrt(a reg) reg { return vmaddfp(a, vrsqrt(a), negZero) }

func feq(a, b reg) (r reg) {
	scalar.EqualFloat32(r.i(), a.f(), b.f())
	return r
}

func fgt(a, b reg) (r reg) {
	scalar.GreaterFloat32(r.i(), a.f(), b.f())
	return r
}

func flt(a, b reg) reg { return fgt(b, a) }

// ffloor and fceil are vrfim and vrfip, which round exactly.
func ffloor(a reg) reg {
	scalar.Map1(a.f(), a.f(), math.Floor)
	return a
}

func fceil(a reg) reg {
	scalar.Map1(a.f(), a.f(), math.Ceil)
	return a
}

func frcpEst(a reg) reg   { return vrefp(a) }
func frsqrtEst(a reg) reg { return vrsqrtefp(a) }

func cvtI2F(a reg) (r reg) {
	scalar.ConvertToFloat32(r.f(), a.i())
	return r
}

// cvtF2I follows the conversion rule shared by every backend rather than the
// saturating vctsxs.
func cvtF2I(a reg) (r reg) {
	scalar.ConvertToInt32(r.i(), a.f())
	return r
}

func rsplat(a reg, n int) reg {
	idx := [N]int{n, n, n, n}
	p := wordPattern(&idx)
	return vperm(a, a, &p)
}

func rshuffle(a reg, idx *[N]int) reg {
	p := wordPattern(idx)
	return vperm(a, a, &p)
}

func rtranspose(rows *[N]reg) {
	t0 := vmrghw(rows[0], rows[2])
	t1 := vmrghw(rows[1], rows[3])
	t2 := vmrglw(rows[0], rows[2])
	t3 := vmrglw(rows[1], rows[3])
	rows[0] = vmrghw(t0, t1)
	rows[1] = vmrglw(t0, t1)
	rows[2] = vmrghw(t2, t3)
	rows[3] = vmrglw(t2, t3)
}

// rany and rall are vec_any_ne and vec_all_ne against zero.
func rany(a reg) bool { return scalar.AnyNonzero(a[:]) }
func rall(a reg) bool { return scalar.AllNonzero(a[:]) }
