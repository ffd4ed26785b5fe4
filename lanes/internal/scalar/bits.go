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

// Bitwise and data movement kernels work on raw lane bits so that float
// lanes are never loaded into float registers (which could quiet a
// signaling NaN).

// And computes dst = a & b.
func And(dst, a, b []uint32) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

// Or computes dst = a | b.
func Or(dst, a, b []uint32) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

// Xor computes dst = a ^ b.
func Xor(dst, a, b []uint32) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// AndNot computes dst = a &^ b.
func AndNot(dst, a, b []uint32) {
	for i := range dst {
		dst[i] = a[i] &^ b[i]
	}
}

// Select computes (t & c) | (f &^ c) for every lane.
func Select(dst, c, t, f []uint32) {
	for i := range dst {
		dst[i] = (t[i] & c[i]) | (f[i] &^ c[i])
	}
}

// Broadcast sets every lane of dst to x.
func Broadcast(dst []uint32, x uint32) {
	for i := range dst {
		dst[i] = x
	}
}

// Splat sets every lane of dst to a[n].
func Splat(dst, a []uint32, n int) {
	x := a[n]
	for i := range dst {
		dst[i] = x
	}
}

// Shuffle sets dst[i] = a[idx[i]]. dst must not alias a.
func Shuffle(dst, a []uint32, idx []int) {
	for i := range dst {
		dst[i] = a[idx[i]]
	}
}

// AnyNonzero reports whether some lane of a is nonzero.
func AnyNonzero(a []uint32) bool {
	for _, x := range a {
		if x != 0 {
			return true
		}
	}
	return false
}

// AllNonzero reports whether every lane of a is nonzero.
func AllNonzero(a []uint32) bool {
	for _, x := range a {
		if x == 0 {
			return false
		}
	}
	return true
}

// Transpose transposes the n×n matrix m, stored row-major, in place.
func Transpose(m []uint32, n int) {
	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			m[r*n+c], m[c*n+r] = m[c*n+r], m[r*n+c]
		}
	}
}
