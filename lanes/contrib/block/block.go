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

// Package block applies lane vector operations to whole float32 slices.
//
// Every operation is implemented once per enabled lane width (files guarded
// by the lanes_no_v4, lanes_no_v8 and lanes_no_v16 tags) and registered in a
// lanes.Registry. A call uses the widest implementation whose width fits the
// slice; slices shorter than every width, and operations with no vector
// implementation, take the scalar path. Lengths need not be multiples of the
// width: the remainder is processed lane by lane.
//
// The Parallel variants split the slice into disjoint, width-aligned ranges
// and run them on a workerpool.Pool.
package block

import (
	"github.com/vpicgo/lanes"
	"github.com/vpicgo/lanes/contrib/workerpool"
)

// Operation names, as registered and as reported by Kernels.
const (
	opScale      = "Scale"
	opIncrement  = "Increment"
	opDecrement  = "Decrement"
	opReciprocal = "Reciprocal"
	opRsqrt      = "Rsqrt"
	opSqrt       = "Sqrt"
	opMulAdd     = "MulAdd"
	opAoSToSoA   = "AoSToSoA"
	opSoAToAoS   = "SoAToAoS"
	opNormalize3 = "Normalize3"
)

// UpdateFunc applies a scalar operand to x in place.
type UpdateFunc func(x []float32, a float32)

// UnaryFunc writes f(x[i]) to dst[i].
type UnaryFunc func(dst, x []float32)

// TernaryFunc writes f(a[i], b[i], c[i]) to dst[i].
type TernaryFunc func(dst, a, b, c []float32)

// Vec3Func works on the components of len(x) three-vectors stored as
// separate slices, next to their interleaved form aos (x0 y0 z0 x1 ...).
type Vec3Func func(aos, x, y, z []float32)

var (
	updates   = lanes.NewRegistry[UpdateFunc]()
	unaries   = lanes.NewRegistry[UnaryFunc]()
	ternaries = lanes.NewRegistry[TernaryFunc]()
	vec3s     = lanes.NewRegistry[Vec3Func]()
)

// pick returns the widest kernel for op no wider than n.
func pick[F any](r *lanes.Registry[F], op string, n int) (lanes.Kernel[F], bool) {
	return r.LookupAtMost(op, n)
}

// Scale multiplies every element of x by a.
func Scale(x []float32, a float32) { update(opScale, x, a) }

// Increment adds a to every element of x.
func Increment(x []float32, a float32) { update(opIncrement, x, a) }

// Decrement subtracts a from every element of x.
func Decrement(x []float32, a float32) { update(opDecrement, x, a) }

func update(op string, x []float32, a float32) {
	if k, ok := pick(updates, op, len(x)); ok {
		k.Fn(x, a)
		return
	}
	scalarUpdates[op](x, a)
}

// Reciprocal sets dst[i] = 1/x[i] with the refined vector reciprocal.
// dst must be at least as long as x.
func Reciprocal(dst, x []float32) { unary(opReciprocal, dst, x) }

// Rsqrt sets dst[i] = 1/sqrt(x[i]).
func Rsqrt(dst, x []float32) { unary(opRsqrt, dst, x) }

// Sqrt sets dst[i] = sqrt(x[i]).
func Sqrt(dst, x []float32) { unary(opSqrt, dst, x) }

func unary(op string, dst, x []float32) {
	dst = dst[:len(x)]
	if k, ok := pick(unaries, op, len(x)); ok {
		k.Fn(dst, x)
		return
	}
	scalarUnaries[op](dst, x)
}

// MulAdd sets dst[i] = a[i]*b[i] + c[i]. Whether the product is rounded
// before the addition depends on the backend of the chosen width.
func MulAdd(dst, a, b, c []float32) {
	n := len(a)
	dst, b, c = dst[:n], b[:n], c[:n]
	if k, ok := pick(ternaries, opMulAdd, n); ok {
		k.Fn(dst, a, b, c)
		return
	}
	mulAddScalar(dst, a, b, c)
}

// AoSToSoA splits the interleaved three-vectors of aos into x, y and z.
// aos must hold 3*len(x) elements.
func AoSToSoA(x, y, z, aos []float32) { vec3(opAoSToSoA, aos, x, y, z) }

// SoAToAoS interleaves x, y and z into aos.
func SoAToAoS(aos, x, y, z []float32) { vec3(opSoAToAoS, aos, x, y, z) }

// Normalize3 scales every three-vector (x[i], y[i], z[i]) to unit length.
// Zero vectors are left unchanged.
func Normalize3(x, y, z []float32) { vec3(opNormalize3, nil, x, y, z) }

func vec3(op string, aos, x, y, z []float32) {
	n := len(x)
	y, z = y[:n], z[:n]
	if aos != nil {
		aos = aos[:3*n]
	}
	if k, ok := pick(vec3s, op, n); ok {
		k.Fn(aos, x, y, z)
		return
	}
	scalarVec3s[op](aos, x, y, z)
}

// ScaleParallel is Scale run on pool.
func ScaleParallel(pool *workerpool.Pool, x []float32, a float32) {
	parallelUpdate(pool, opScale, x, a)
}

// IncrementParallel is Increment run on pool.
func IncrementParallel(pool *workerpool.Pool, x []float32, a float32) {
	parallelUpdate(pool, opIncrement, x, a)
}

// DecrementParallel is Decrement run on pool.
func DecrementParallel(pool *workerpool.Pool, x []float32, a float32) {
	parallelUpdate(pool, opDecrement, x, a)
}

func parallelUpdate(pool *workerpool.Pool, op string, x []float32, a float32) {
	pool.ParallelFor(len(x), alignment(updates, op), func(start, end int) {
		update(op, x[start:end], a)
	})
}

// ReciprocalParallel is Reciprocal run on pool.
func ReciprocalParallel(pool *workerpool.Pool, dst, x []float32) {
	parallelUnary(pool, opReciprocal, dst, x)
}

// RsqrtParallel is Rsqrt run on pool.
func RsqrtParallel(pool *workerpool.Pool, dst, x []float32) {
	parallelUnary(pool, opRsqrt, dst, x)
}

// SqrtParallel is Sqrt run on pool.
func SqrtParallel(pool *workerpool.Pool, dst, x []float32) {
	parallelUnary(pool, opSqrt, dst, x)
}

func parallelUnary(pool *workerpool.Pool, op string, dst, x []float32) {
	dst = dst[:len(x)]
	pool.ParallelFor(len(x), alignment(unaries, op), func(start, end int) {
		unary(op, dst[start:end], x[start:end])
	})
}

// MulAddParallel is MulAdd run on pool.
func MulAddParallel(pool *workerpool.Pool, dst, a, b, c []float32) {
	n := len(a)
	dst, b, c = dst[:n], b[:n], c[:n]
	pool.ParallelFor(n, alignment(ternaries, opMulAdd), func(start, end int) {
		MulAdd(dst[start:end], a[start:end], b[start:end], c[start:end])
	})
}

// Normalize3Parallel is Normalize3 run on pool.
func Normalize3Parallel(pool *workerpool.Pool, x, y, z []float32) {
	n := len(x)
	y, z = y[:n], z[:n]
	pool.ParallelFor(n, alignment(vec3s, opNormalize3), func(start, end int) {
		Normalize3(x[start:end], y[start:end], z[start:end])
	})
}

// alignment is the width of the widest kernel for op, or 1.
func alignment[F any](r *lanes.Registry[F], op string) int {
	if k, ok := r.Lookup(op); ok {
		return k.Width
	}
	return 1
}

// KernelInfo describes the vector implementations of one operation.
type KernelInfo struct {
	Op     string
	Widths []int // widest first; empty when only the scalar path exists
}

// Kernels lists every operation with the widths compiled in for it.
func Kernels() []KernelInfo {
	ops := []struct {
		name   string
		widths func(string) []int
	}{
		{opScale, updates.Widths},
		{opIncrement, updates.Widths},
		{opDecrement, updates.Widths},
		{opReciprocal, unaries.Widths},
		{opRsqrt, unaries.Widths},
		{opSqrt, unaries.Widths},
		{opMulAdd, ternaries.Widths},
		{opAoSToSoA, vec3s.Widths},
		{opSoAToAoS, vec3s.Widths},
		{opNormalize3, vec3s.Widths},
	}
	infos := make([]KernelInfo, len(ops))
	for i, op := range ops {
		infos[i] = KernelInfo{Op: op.name, Widths: op.widths(op.name)}
	}
	return infos
}
