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

package block

import (
	"math"

	"github.com/vpicgo/lanes/internal/scalar"
)

// Scalar implementations. They serve slices shorter than every registered
// width, the remainders of the vector kernels and builds with every width
// disabled.

var scalarUpdates = map[string]UpdateFunc{
	opScale:     scaleScalar,
	opIncrement: incrementScalar,
	opDecrement: decrementScalar,
}

var scalarUnaries = map[string]UnaryFunc{
	opReciprocal: scalar.RcpExact,
	opRsqrt:      scalar.RsqrtExact,
	opSqrt:       scalar.SqrtFloat32,
}

var scalarVec3s = map[string]Vec3Func{
	opAoSToSoA:   aosToSoAScalar,
	opSoAToAoS:   soaToAoSScalar,
	opNormalize3: normalize3Scalar,
}

func scaleScalar(x []float32, a float32) {
	for i := range x {
		x[i] *= a
	}
}

func incrementScalar(x []float32, a float32) {
	for i := range x {
		x[i] += a
	}
}

func decrementScalar(x []float32, a float32) {
	for i := range x {
		x[i] -= a
	}
}

func mulAddScalar(dst, a, b, c []float32) { scalar.MulAddFloat32(dst, a, b, c) }

func aosToSoAScalar(aos, x, y, z []float32) {
	for i := range x {
		x[i], y[i], z[i] = aos[3*i], aos[3*i+1], aos[3*i+2]
	}
}

func soaToAoSScalar(aos, x, y, z []float32) {
	for i := range x {
		aos[3*i], aos[3*i+1], aos[3*i+2] = x[i], y[i], z[i]
	}
}

func normalize3Scalar(_, x, y, z []float32) {
	for i := range x {
		n2 := x[i]*x[i] + y[i]*y[i] + z[i]*z[i]
		if n2 == 0 {
			continue
		}
		r := float32(1 / math.Sqrt(float64(n2)))
		x[i], y[i], z[i] = x[i]*r, y[i]*r, z[i]*r
	}
}
