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

// Package scalar implements vector lane semantics one lane at a time.
//
// The portable backends are built entirely on these kernels, and the
// hardware backends use them for the operators their instruction set lacks
// (integer multiply, divide and remainder, per-lane shifts, transcendental
// functions). Keeping one implementation of each lane rule is what makes the
// backends agree bit for bit.
//
// All kernels write dst[i] for i < len(dst); the inputs must be at least as
// long. dst may alias an input.
package scalar

// True is the lane value of a true boolean lane.
const True int32 = -1

func boolLane(b bool) int32 {
	if b {
		return True
	}
	return 0
}

// AddInt32 computes dst = a + b with wraparound.
func AddInt32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// SubInt32 computes dst = a - b with wraparound.
func SubInt32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// MulInt32 computes the low 32 bits of a * b.
func MulInt32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// DivInt32 computes a / b truncated toward zero. A zero divisor panics with
// the Go run-time error; MinInt32 / -1 wraps to MinInt32.
func DivInt32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// RemInt32 computes a % b with the sign of a. A zero divisor panics.
func RemInt32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] % b[i]
	}
}

// ShlInt32 shifts a left by the low five bits of b.
func ShlInt32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] << (uint32(b[i]) & 31)
	}
}

// ShrInt32 shifts a right arithmetically by the low five bits of b.
func ShrInt32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] >> (uint32(b[i]) & 31)
	}
}

// NegInt32 computes dst = -a with wraparound.
func NegInt32(dst, a []int32) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// AbsInt32 computes |a|; MinInt32 stays MinInt32.
func AbsInt32(dst, a []int32) {
	for i := range dst {
		if a[i] < 0 {
			dst[i] = -a[i]
		} else {
			dst[i] = a[i]
		}
	}
}

// EqualInt32 sets dst to a boolean vector of a == b.
func EqualInt32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = boolLane(a[i] == b[i])
	}
}

// LessInt32 sets dst to a boolean vector of a < b.
func LessInt32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = boolLane(a[i] < b[i])
	}
}

// GreaterInt32 sets dst to a boolean vector of a > b.
func GreaterInt32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = boolLane(a[i] > b[i])
	}
}

// ConvertToFloat32 converts each lane to the nearest float32.
func ConvertToFloat32(dst []float32, a []int32) {
	for i := range dst {
		dst[i] = float32(a[i])
	}
}
