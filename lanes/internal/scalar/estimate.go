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

// Hardware estimates are modeled by truncating the exact result to a given
// number of explicit mantissa bits, which bounds the relative error by
// 2^-bits. The AltiVec vrefp and vrsqrtefp and the x86 RCPPS and RSQRTPS
// instructions document 12 bits; the AVX-512 RCP14PS documents 14.

// mantissaBits is the number of explicit mantissa bits of a float32.
const mantissaBits = 23

func truncateMantissa(f float32, bits int) float32 {
	if f != f || math.IsInf(float64(f), 0) || f == 0 {
		return f
	}
	drop := uint(mantissaBits - bits)
	return math.Float32frombits(math.Float32bits(f) &^ (1<<drop - 1))
}

// RcpEstimate models a reciprocal estimate with the given precision.
// ±0 gives ±Inf, ±Inf gives ±0 and NaN propagates.
func RcpEstimate(dst, a []float32, bits int) {
	for i := range dst {
		dst[i] = truncateMantissa(1/a[i], bits)
	}
}

// RsqrtEstimate models a reciprocal square root estimate with the given
// precision. Negative inputs give NaN and +0 gives +Inf.
func RsqrtEstimate(dst, a []float32, bits int) {
	for i := range dst {
		dst[i] = truncateMantissa(rsqrt(a[i]), bits)
	}
}

// RcpEstimate12 is RcpEstimate with 12 bits of precision.
func RcpEstimate12(dst, a []float32) { RcpEstimate(dst, a, 12) }

// RsqrtEstimate12 is RsqrtEstimate with 12 bits of precision.
func RsqrtEstimate12(dst, a []float32) { RsqrtEstimate(dst, a, 12) }

// RcpExact computes the correctly rounded reciprocal. The portable backend
// uses it as its "estimate", so refinement steps leave it unchanged.
func RcpExact(dst, a []float32) {
	for i := range dst {
		dst[i] = 1 / a[i]
	}
}

// RsqrtExact computes 1/sqrt(a) rounded once from float64.
func RsqrtExact(dst, a []float32) {
	for i := range dst {
		dst[i] = rsqrt(a[i])
	}
}

func rsqrt(f float32) float32 {
	return float32(1 / math.Sqrt(float64(f)))
}
