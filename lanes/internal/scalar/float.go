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

package scalar

import "math"

// Float kernels convert every intermediate result to float32 explicitly. The
// Go compiler may otherwise fuse x*y + z into one FMA, and the portable
// backend promises one rounding per operation.

// AddFloat32 computes dst = a + b.
func AddFloat32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// SubFloat32 computes dst = a - b.
func SubFloat32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// MulFloat32 computes dst = a * b.
func MulFloat32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// DivFloat32 computes dst = a / b with IEEE semantics.
func DivFloat32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// MulAddFloat32 computes a*b + c rounding the product and the sum
// separately.
func MulAddFloat32(dst, a, b, c []float32) {
	for i := range dst {
		dst[i] = float32(a[i]*b[i]) + c[i]
	}
}

// FusedMulAddFloat32 computes a*b + c without rounding the product. The
// product of two float32 values is exact in float64; the sum is rounded to
// float64 and then to float32, which differs from a true float32 FMA only in
// rare halfway cases.
func FusedMulAddFloat32(dst, a, b, c []float32) {
	for i := range dst {
		dst[i] = float32(math.FMA(float64(a[i]), float64(b[i]), float64(c[i])))
	}
}

// SqrtFloat32 computes the correctly rounded square root.
func SqrtFloat32(dst, a []float32) {
	for i := range dst {
		dst[i] = float32(math.Sqrt(float64(a[i])))
	}
}

// EqualFloat32 sets dst to a boolean vector of a == b (false for NaN).
func EqualFloat32(dst []int32, a, b []float32) {
	for i := range dst {
		dst[i] = boolLane(a[i] == b[i])
	}
}

// LessFloat32 sets dst to a boolean vector of a < b (false for NaN).
func LessFloat32(dst []int32, a, b []float32) {
	for i := range dst {
		dst[i] = boolLane(a[i] < b[i])
	}
}

// GreaterFloat32 sets dst to a boolean vector of a > b (false for NaN).
func GreaterFloat32(dst []int32, a, b []float32) {
	for i := range dst {
		dst[i] = boolLane(a[i] > b[i])
	}
}

// ConvertToInt32 truncates each lane toward zero. NaN and values outside the
// int32 range produce math.MinInt32, matching the x86 "integer indefinite"
// result of CVTTPS2DQ.
func ConvertToInt32(dst []int32, a []float32) {
	for i := range dst {
		dst[i] = TruncInt32(a[i])
	}
}

// TruncInt32 converts one lane like ConvertToInt32.
func TruncInt32(f float32) int32 {
	// 2^31 is exactly representable; anything >= it or < -2^31 overflows.
	if f != f || f >= 2147483648 || f < -2147483648 {
		return math.MinInt32
	}
	return int32(f)
}

// Map1 applies fn lane by lane, computing in float64.
func Map1(dst, a []float32, fn func(float64) float64) {
	for i := range dst {
		dst[i] = float32(fn(float64(a[i])))
	}
}

// Map2 applies fn lane by lane, computing in float64.
func Map2(dst, a, b []float32, fn func(x, y float64) float64) {
	for i := range dst {
		dst[i] = float32(fn(float64(a[i]), float64(b[i])))
	}
}
