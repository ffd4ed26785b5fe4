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

package v4

import (
	"math"
	"testing"
	"unsafe"

	"github.com/vpicgo/lanes"
)

func iota32(start int32) (a [N]int32) {
	for i := range a {
		a[i] = start + int32(i)
	}
	return a
}

func iotaF(start float32) (a [N]float32) {
	for i := range a {
		a[i] = start + float32(i)
	}
	return a
}

func near(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want)/math.Abs(want) <= tol
}

func TestBackendRegistered(t *testing.T) {
	b, ok := lanes.BackendFor(N)
	if !ok {
		t.Fatalf("no backend registered for width %d", N)
	}
	if b != Backend() {
		t.Errorf("registered backend %v, package reports %v", b, Backend())
	}
	if Align != 4*N {
		t.Errorf("Align = %d, want %d", Align, 4*N)
	}
}

func TestIntArithmetic(t *testing.T) {
	a := IntFromArray(iota32(-2))
	b := BroadcastInt(3)
	tests := []struct {
		name string
		got  Int
		want func(x, y int32) int32
	}{
		{"Add", a.Add(b), func(x, y int32) int32 { return x + y }},
		{"Sub", a.Sub(b), func(x, y int32) int32 { return x - y }},
		{"Mul", a.Mul(b), func(x, y int32) int32 { return x * y }},
		{"Div", a.Div(b), func(x, y int32) int32 { return x / y }},
		{"Rem", a.Rem(b), func(x, y int32) int32 { return x % y }},
		{"Xor", a.Xor(b), func(x, y int32) int32 { return x ^ y }},
		{"And", a.And(b), func(x, y int32) int32 { return x & y }},
		{"Or", a.Or(b), func(x, y int32) int32 { return x | y }},
		{"Shl", a.Shl(b), func(x, y int32) int32 { return x << y }},
		{"Shr", a.Shr(b), func(x, y int32) int32 { return x >> y }},
	}
	x := a.Lanes()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.got.Lanes()
			for i := range N {
				if want := tt.want(x[i], 3); got[i] != want {
					t.Errorf("lane %d: got %d, want %d", i, got[i], want)
				}
			}
		})
	}
}

func TestIntUnary(t *testing.T) {
	a := IntFromArray(iota32(-1))
	x := a.Lanes()
	neg, not, lnot, abs := a.Neg().Lanes(), a.Not().Lanes(), a.LogicalNot().Lanes(), a.Abs().Lanes()
	for i := range N {
		if neg[i] != -x[i] || not[i] != ^x[i] {
			t.Errorf("lane %d: Neg=%d Not=%d for %d", i, neg[i], not[i], x[i])
		}
		want := int32(0)
		if x[i] == 0 {
			want = -1
		}
		if lnot[i] != want {
			t.Errorf("lane %d: LogicalNot(%d) = %d, want %d", i, x[i], lnot[i], want)
		}
		if abs[i] < 0 || (abs[i] != x[i] && abs[i] != -x[i]) {
			t.Errorf("lane %d: Abs(%d) = %d", i, x[i], abs[i])
		}
	}
	if got := a.Pos(); got.Lanes() != a.Lanes() {
		t.Errorf("Pos changed the vector: %v", got)
	}
	if got := BroadcastInt(math.MinInt32).Abs().Lane(0); got != math.MinInt32 {
		t.Errorf("Abs(MinInt32) = %d", got)
	}
}

func TestIntEdgeCases(t *testing.T) {
	t.Run("ShiftCountMasked", func(t *testing.T) {
		got := BroadcastInt(1).Shl(BroadcastInt(33)).Lane(0)
		if got != 2 {
			t.Errorf("1 << 33 = %d, want 2 (count & 31)", got)
		}
		got = BroadcastInt(-8).Shr(BroadcastInt(1)).Lane(0)
		if got != -4 {
			t.Errorf("-8 >> 1 = %d, want -4 (arithmetic)", got)
		}
	})
	t.Run("MinInt32DivMinusOne", func(t *testing.T) {
		got := BroadcastInt(math.MinInt32).Div(BroadcastInt(-1)).Lane(0)
		if got != math.MinInt32 {
			t.Errorf("MinInt32 / -1 = %d, want wraparound", got)
		}
	})
	t.Run("DivByZeroPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("integer division by zero did not panic")
			}
		}()
		_ = BroadcastInt(1).Div(BroadcastInt(0))
	})
}

func TestIntComparisons(t *testing.T) {
	a := IntFromArray(iota32(0))
	b := BroadcastInt(N / 2)
	x := a.Lanes()
	boolLane := func(c bool) int32 {
		if c {
			return -1
		}
		return 0
	}
	tests := []struct {
		name string
		got  Int
		want func(x, y int32) bool
	}{
		{"Less", a.Less(b), func(x, y int32) bool { return x < y }},
		{"Greater", a.Greater(b), func(x, y int32) bool { return x > y }},
		{"Equal", a.Equal(b), func(x, y int32) bool { return x == y }},
		{"NotEqual", a.NotEqual(b), func(x, y int32) bool { return x != y }},
		{"LessEqual", a.LessEqual(b), func(x, y int32) bool { return x <= y }},
		{"GreaterEqual", a.GreaterEqual(b), func(x, y int32) bool { return x >= y }},
		{"LogicalAnd", a.LogicalAnd(b), func(x, y int32) bool { return x != 0 && y != 0 }},
		{"LogicalOr", a.LogicalOr(BroadcastInt(0)), func(x, y int32) bool { return x != 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.got.Lanes()
			for i := range N {
				if want := boolLane(tt.want(x[i], N/2)); got[i] != want {
					t.Errorf("lane %d (%d vs %d): got %d, want %d", i, x[i], N/2, got[i], want)
				}
			}
		})
	}
}

func TestIncDecAssign(t *testing.T) {
	a := BroadcastInt(5)
	if got := a.PostInc().Lane(0); got != 5 {
		t.Errorf("PostInc returned %d, want old value 5", got)
	}
	if got := a.Lane(0); got != 6 {
		t.Errorf("after PostInc a = %d, want 6", got)
	}
	if got := a.Inc().Lane(0); got != 7 {
		t.Errorf("Inc returned %d, want 7", got)
	}
	if got := a.PostDec().Lane(0); got != 7 {
		t.Errorf("PostDec returned %d, want 7", got)
	}
	if got := a.Dec().Lane(0); got != 5 {
		t.Errorf("Dec returned %d, want 5", got)
	}

	b := BroadcastInt(3)
	want := map[lanes.Op]int32{
		lanes.OpAdd: 8, lanes.OpSub: 2, lanes.OpMul: 15, lanes.OpDiv: 1, lanes.OpRem: 2,
		lanes.OpXor: 6, lanes.OpAnd: 1, lanes.OpOr: 7, lanes.OpShl: 40, lanes.OpShr: 0,
	}
	for _, op := range lanes.Ops() {
		t.Run(op.String(), func(t *testing.T) {
			x := BroadcastInt(5)
			got := x.Assign(op, b)
			if got.Lanes() != x.Lanes() {
				t.Error("Assign did not return the updated receiver")
			}
			if got.Lane(N-1) != want[op] {
				t.Errorf("5 %s 3 = %d, want %d", op.Symbol(), got.Lane(N-1), want[op])
			}
			if b.Lane(0) != 3 {
				t.Error("Assign modified its operand")
			}
		})
	}

	f := BroadcastFloat(1.5)
	f.Inc()
	if got := f.Assign(lanes.OpMul, BroadcastFloat(2)).Lane(0); got != 5 {
		t.Errorf("(1.5+1)*2 = %v, want 5", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Float Assign with OpRem did not panic")
		}
	}()
	f.Assign(lanes.OpRem, BroadcastFloat(2))
}

func TestFloatArithmetic(t *testing.T) {
	a := FloatFromArray(iotaF(1))
	b := BroadcastFloat(0.5)
	x := a.Lanes()
	tests := []struct {
		name string
		got  Float
		want func(x float64) float64
	}{
		{"Add", a.Add(b), func(x float64) float64 { return x + 0.5 }},
		{"Sub", a.Sub(b), func(x float64) float64 { return x - 0.5 }},
		{"Mul", a.Mul(b), func(x float64) float64 { return x * 0.5 }},
		{"Div", a.Div(b), func(x float64) float64 { return x / 0.5 }},
		{"Sqrt", a.Sqrt(), math.Sqrt},
		{"Floor", a.Mul(BroadcastFloat(0.3)).Floor(), func(x float64) float64 { return math.Floor(float64(float32(x) * 0.3)) }},
		{"Ceil", a.Mul(BroadcastFloat(0.3)).Ceil(), func(x float64) float64 { return math.Ceil(float64(float32(x) * 0.3)) }},
		{"Exp", a.Exp(), math.Exp},
		{"Log", a.Log(), math.Log},
		{"Sin", a.Sin(), math.Sin},
		{"Tanh", a.Tanh(), math.Tanh},
		{"Pow", a.Pow(b), math.Sqrt},
		{"Atan2", a.Atan2(BroadcastFloat(1)), math.Atan},
		{"Fmod", a.Fmod(BroadcastFloat(2)), func(x float64) float64 { return math.Mod(x, 2) }},
		{"Rcp", a.Rcp(), func(x float64) float64 { return 1 / x }},
		{"Rsqrt", a.Rsqrt(), func(x float64) float64 { return 1 / math.Sqrt(x) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.got.Lanes()
			for i := range N {
				if want := tt.want(float64(x[i])); !near(float64(got[i]), want, 1e-6) {
					t.Errorf("lane %d: %s(%v) = %v, want %v", i, tt.name, x[i], got[i], want)
				}
			}
		})
	}
}

func TestFloatSignBits(t *testing.T) {
	z := BroadcastFloat(0)
	if got := uint32(z.Neg().AsInt().Lane(0)); got != 0x80000000 {
		t.Errorf("Neg(0) bits = %#x, want -0", got)
	}
	if got := BroadcastFloat(-2).Abs().Lane(0); got != 2 {
		t.Errorf("Abs(-2) = %v", got)
	}
	if got := BroadcastFloat(3).Copysign(BroadcastFloat(-1)).Lane(0); got != -3 {
		t.Errorf("Copysign(3, -1) = %v", got)
	}
	nan := BroadcastFloat(float32(math.NaN()))
	if got := nan.Abs().Lane(0); !math.IsNaN(float64(got)) {
		t.Errorf("Abs(NaN) = %v", got)
	}
}

func TestCopysign(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	inf := float32(math.Inf(1))
	tests := []struct{ a, b, want float32 }{
		{3, 1, 3},
		{3, -1, -3},
		{-3, 1, 3},
		{-3, -1, -3},
		{0, -1, negZero},
		{negZero, 1, 0},
		{2, negZero, -2},
		{inf, -5, -inf},
	}
	for _, tt := range tests {
		got := BroadcastFloat(tt.a).Copysign(BroadcastFloat(tt.b)).Lanes()
		for i := range N {
			if math.Float32bits(got[i]) != math.Float32bits(tt.want) {
				t.Errorf("Copysign(%v, %v) lane %d = %v, want %v", tt.a, tt.b, i, got[i], tt.want)
			}
		}
	}

	// Alternating signs, with a NaN magnitude in the last lane.
	a := FloatFromArray(iotaF(1))
	a.SetLane(N-1, float32(math.NaN()))
	var s [N]float32
	for i := range s {
		s[i] = 1 - 2*float32(i%2)
	}
	x := a.Lanes()
	got := a.Copysign(FloatFromArray(s)).Lanes()
	for i := range N {
		want := math.Float32bits(x[i])&^(1<<31) | math.Float32bits(s[i])&(1<<31)
		if math.Float32bits(got[i]) != want {
			t.Errorf("lane %d: Copysign(%v, %v) bits = %#x, want %#x", i, x[i], s[i], math.Float32bits(got[i]), want)
		}
	}
}

func TestFloatComparisons(t *testing.T) {
	nan := float32(math.NaN())
	a := FloatFromArray(iotaF(-1))
	a.SetLane(0, nan)
	b := BroadcastFloat(1)

	x := a.Lanes()
	less, le, ne := a.Less(b).Lanes(), a.LessEqual(b).Lanes(), a.NotEqual(b).Lanes()
	lnot, land := a.LogicalNot().Lanes(), a.LogicalAnd(b).Lanes()
	for i := range N {
		isNaN := x[i] != x[i]
		if want := !isNaN && x[i] < 1; (less[i] != 0) != want {
			t.Errorf("lane %d: %v < 1 = %d", i, x[i], less[i])
		}
		if want := !isNaN && x[i] <= 1; (le[i] != 0) != want {
			t.Errorf("lane %d: %v <= 1 = %d", i, x[i], le[i])
		}
		if want := isNaN || x[i] != 1; (ne[i] != 0) != want {
			t.Errorf("lane %d: %v != 1 = %d", i, x[i], ne[i])
		}
		// NaN is logically true.
		if want := x[i] == 0; (lnot[i] != 0) != want {
			t.Errorf("lane %d: !%v = %d", i, x[i], lnot[i])
		}
		if want := x[i] != 0; (land[i] != 0) != want {
			t.Errorf("lane %d: %v && 1 = %d", i, x[i], land[i])
		}
	}
	if got := a.GreaterEqual(b).Lane(1); got != 0 {
		t.Errorf("0 >= 1 = %d", got)
	}
	if got := a.Equal(a).Lane(0); got != 0 {
		t.Errorf("NaN == NaN = %d", got)
	}
	if got := a.LogicalOr(BroadcastFloat(0)).Lane(1); got != 0 {
		t.Errorf("0 || 0 = %d", got)
	}
}

func TestConversions(t *testing.T) {
	tests := []struct {
		in   float32
		want int32
	}{
		{1.9, 1},
		{-1.9, -1},
		{0, 0},
		{2147483520, 2147483520},
		{3e9, math.MinInt32},
		{-3e9, math.MinInt32},
		{float32(math.NaN()), math.MinInt32},
		{float32(math.Inf(1)), math.MinInt32},
	}
	for _, tt := range tests {
		if got := BroadcastFloat(tt.in).ConvertToInt().Lane(0); got != tt.want {
			t.Errorf("ConvertToInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := BroadcastInt(-7).ConvertToFloat().Lane(0); got != -7 {
		t.Errorf("ConvertToFloat(-7) = %v", got)
	}

	// Reinterpretation round trips bit for bit, including a signaling NaN.
	bits := IntFromArray(iota32(0x7F800001))
	if got := bits.AsFloat().AsInt(); got.Lanes() != bits.Lanes() {
		t.Errorf("AsFloat/AsInt round trip = %v, want %v", got, bits)
	}
	if got := BroadcastFloat(1).AsInt().Lane(0); got != 0x3F800000 {
		t.Errorf("bits of 1.0 = %#x", got)
	}
}

func TestApproximations(t *testing.T) {
	if got := BroadcastFloat(2).Rcp().Lane(0); math.Abs(float64(got)-0.5) > 1e-7 {
		t.Errorf("Rcp(2) = %v", got)
	}
	// Every binade of the normal range, plus both ends.
	var xs []float32
	for x := float32(0x1p-126); x < math.MaxFloat32/1.37; x *= 1.37 {
		xs = append(xs, x)
	}
	xs = append(xs, math.MaxFloat32)
	for _, x := range xs {
		a := BroadcastFloat(x)
		rcp, rsqrt, sqrt := a.Rcp().Lane(0), a.Rsqrt().Lane(0), a.Sqrt().Lane(0)
		// Above 2^126 the reciprocal is subnormal and holds fewer bits.
		wantRcp := 1 / float64(x)
		if !near(float64(rcp), wantRcp, 1e-6) && math.Abs(float64(rcp)-wantRcp) > 0x1p-147 {
			t.Errorf("Rcp(%v) = %v", x, rcp)
		}
		if !near(float64(rsqrt), 1/math.Sqrt(float64(x)), 1e-6) {
			t.Errorf("Rsqrt(%v) = %v", x, rsqrt)
		}
		if !near(float64(sqrt), math.Sqrt(float64(x)), 1e-6) {
			t.Errorf("Sqrt(%v) = %v", x, sqrt)
		}
		// Estimates only promise hardware precision, and only for normal
		// results.
		if wantRcp >= 0x1p-126 {
			if est := a.RcpApprox().Lane(0); !near(float64(est), wantRcp, 1.0/2048) {
				t.Errorf("RcpApprox(%v) = %v", x, est)
			}
		}
		if est := a.RsqrtApprox().Lane(0); !near(float64(est), 1/math.Sqrt(float64(x)), 1.0/2048) {
			t.Errorf("RsqrtApprox(%v) = %v", x, est)
		}
	}
}

func TestFusedOps(t *testing.T) {
	a, b, c := BroadcastFloat(2), BroadcastFloat(3), BroadcastFloat(1)
	if got := Fma(a, b, c).Lane(0); got != 7 {
		t.Errorf("Fma = %v, want 7", got)
	}
	if got := Fms(a, b, c).Lane(0); got != 5 {
		t.Errorf("Fms = %v, want 5", got)
	}
	if got := Fnms(a, b, c).Lane(0); got != -5 {
		t.Errorf("Fnms = %v, want -5", got)
	}
}

func TestBitOps(t *testing.T) {
	sign := BroadcastInt(math.MinInt32)
	a := BroadcastFloat(-2)
	if got := ClearBits(sign, a).Lane(0); got != 2 {
		t.Errorf("ClearBits = %v", got)
	}
	if got := SetBits(sign, BroadcastFloat(2)).Lane(0); got != -2 {
		t.Errorf("SetBits = %v", got)
	}
	if got := ToggleBits(sign, a).Lane(0); got != 2 {
		t.Errorf("ToggleBits = %v", got)
	}
}

func TestInPlaceUpdates(t *testing.T) {
	p := make([]float32, N+1)
	for i := range p {
		p[i] = float32(i)
	}
	Increment(p, BroadcastFloat(1))
	Scale(p, BroadcastFloat(2))
	Decrement(p, BroadcastFloat(0.5))
	for i := range N {
		if want := (float32(i)+1)*2 - 0.5; p[i] != want {
			t.Errorf("p[%d] = %v, want %v", i, p[i], want)
		}
	}
	if p[N] != N {
		t.Errorf("update touched p[N] = %v", p[N])
	}
}

func TestSelect(t *testing.T) {
	tv, fv := BroadcastFloat(1), BroadcastFloat(2)
	yes, no := BroadcastInt(-1), BroadcastInt(0)
	if got := Merge(yes, tv, fv); got.Lanes() != tv.Lanes() {
		t.Errorf("Merge(true) = %v", got)
	}
	if got := Merge(no, tv, fv); got.Lanes() != fv.Lanes() {
		t.Errorf("Merge(false) = %v", got)
	}
	c := IntFromArray(iota32(0)).Less(BroadcastInt(1))
	m := Merge(c, BroadcastInt(7), BroadcastInt(9)).Lanes()
	for i := range N {
		want := int32(9)
		if i == 0 {
			want = 7
		}
		if m[i] != want {
			t.Errorf("Merge lane %d = %d, want %d", i, m[i], want)
		}
	}
	if got := Czero(yes, tv); got.AsInt().Lanes() != no.Lanes() {
		t.Errorf("Czero(true) = %v", got)
	}
	if got := NotCzero(yes, tv); got.Lanes() != tv.Lanes() {
		t.Errorf("NotCzero(true) = %v", got)
	}
	if got := NotCzero(no, tv); got.AsInt().Lanes() != no.Lanes() {
		t.Errorf("NotCzero(false) = %v", got)
	}
}

func TestMergeLanes(t *testing.T) {
	var m [N]int32
	for i := range m {
		if i%3 == 0 {
			m[i] = -1
		}
	}
	c := IntFromArray(m)
	tv, fv := IntFromArray(iota32(100)), IntFromArray(iota32(-50))
	got := Merge(c, tv, fv).Lanes()
	gotF := Merge(c, tv.AsFloat(), fv.AsFloat()).AsInt().Lanes()
	tl, fl := tv.Lanes(), fv.Lanes()
	for i := range N {
		want := fl[i]
		if m[i] != 0 {
			want = tl[i]
		}
		if got[i] != want || gotF[i] != want {
			t.Errorf("lane %d: Merge = %d (float %d), want %d", i, got[i], gotF[i], want)
		}
	}

	abs := IntFromArray(iota32(-N / 2)).Abs().Lanes()
	for i := range N {
		want := int32(i - N/2)
		if want < 0 {
			want = -want
		}
		if abs[i] != want {
			t.Errorf("Abs(%d) = %d, want %d", i-N/2, abs[i], want)
		}
	}
}

func TestCrossLane(t *testing.T) {
	a := IntFromArray(iota32(10))
	if got := Shuffle(a, 0, 1, 2, 3); got.Lanes() != a.Lanes() {
		t.Errorf("identity Shuffle = %v, want %v", got, a)
	}
	rev := Shuffle(a, 3, 2, 1, 0).Lanes()
	for i := range N {
		if rev[i] != 10+int32(N-1-i) {
			t.Errorf("reversed lane %d = %d", i, rev[i])
		}
	}
	if got := Splat(a, N-1); got.Lanes() != BroadcastInt(10+N-1).Lanes() {
		t.Errorf("Splat = %v", got)
	}
	b := BroadcastInt(1)
	a2, b2 := a, b
	Swap(&a2, &b2)
	if a2.Lanes() != b.Lanes() || b2.Lanes() != a.Lanes() {
		t.Error("Swap did not exchange")
	}
	if !Any(IntFromArray(iota32(0))) || Any(BroadcastInt(0)) {
		t.Error("Any wrong")
	}
	if All(IntFromArray(iota32(0))) || !All(BroadcastInt(-1)) {
		t.Error("All wrong")
	}
}

func transposeRows(r *[N]Int) { Transpose(&r[0], &r[1], &r[2], &r[3]) }

func TestTranspose(t *testing.T) {
	var r, orig [N]Int
	for i := range N {
		r[i] = IntFromArray(iota32(int32(i * N)))
	}
	orig = r
	transposeRows(&r)
	for i := range N {
		for j := range N {
			if got := r[i].Lane(j); got != int32(j*N+i) {
				t.Errorf("row %d lane %d = %d, want %d", i, j, got, j*N+i)
			}
		}
	}
	transposeRows(&r)
	for i := range N {
		if r[i].Lanes() != orig[i].Lanes() {
			t.Errorf("Transpose twice: row %d = %v, want %v", i, r[i], orig[i])
		}
	}
}

func TestContiguousMemory(t *testing.T) {
	src := iota32(1)
	var dst [N]int32
	var a Float
	Load4x1(unsafe.Pointer(&src), &a)
	if a.AsInt().Lanes() != src {
		t.Errorf("Load4x1 = %v", a.AsInt())
	}
	Store4x1(a, unsafe.Pointer(&dst))
	if dst != src {
		t.Errorf("Store4x1 wrote %v", dst)
	}
	var streamed [N]int32
	Stream4x1(a.AsInt(), unsafe.Pointer(&streamed))
	if streamed != src {
		t.Errorf("Stream4x1 wrote %v", streamed)
	}
	other := iota32(100)
	Swap4x1(unsafe.Pointer(&dst), unsafe.Pointer(&other))
	if dst != iota32(100) || other != src {
		t.Errorf("Swap4x1 = %v, %v", dst, other)
	}
	Copy4x1(unsafe.Pointer(&dst), unsafe.Pointer(&src))
	if dst != src {
		t.Errorf("Copy4x1 = %v", dst)
	}
}

// record has more words than any transposed access touches so the tests can
// check the tail is left alone.
type record [5]int32

func records() (recs [N]record) {
	for i := range recs {
		for k := range recs[i] {
			recs[i][k] = int32(100*i + k)
		}
	}
	return recs
}

func pointers(recs *[N]record) (p [N]unsafe.Pointer) {
	for i := range recs {
		p[i] = unsafe.Pointer(&recs[i])
	}
	return p
}

func TestTransposedMemory(t *testing.T) {
	recs := records()
	p := pointers(&recs)

	var a, c Int
	var b, d Float
	Load4x4Tr(&p, &a, &b, &c, &d)
	fields := [4][N]int32{a.Lanes(), b.AsInt().Lanes(), c.Lanes(), d.AsInt().Lanes()}
	for k, f := range fields {
		for i := range N {
			if f[i] != int32(100*i+k) {
				t.Errorf("field %d lane %d = %d, want %d", k, i, f[i], 100*i+k)
			}
		}
	}

	tests := []struct {
		name  string
		k     int
		round func(p *[N]unsafe.Pointer)
	}{
		{"1", 1, func(p *[N]unsafe.Pointer) {
			var a Int
			Load4x1Tr(p, &a)
			Store4x1Tr(a.Add(BroadcastInt(1)), p)
		}},
		{"2", 2, func(p *[N]unsafe.Pointer) {
			var a Int
			var b Float
			Load4x2Tr(p, &a, &b)
			Store4x2Tr(a.Add(BroadcastInt(1)), b.AsInt().Add(BroadcastInt(1)), p)
		}},
		{"3", 3, func(p *[N]unsafe.Pointer) {
			var a, b, c Int
			Load4x3Tr(p, &a, &b, &c)
			one := BroadcastInt(1)
			Store4x3Tr(a.Add(one), b.Add(one), c.Add(one), p)
		}},
		{"4", 4, func(p *[N]unsafe.Pointer) {
			var a, b, c, d Int
			Load4x4Tr(p, &a, &b, &c, &d)
			one := BroadcastInt(1)
			Store4x4Tr(a.Add(one), b.Add(one), c.Add(one), d.Add(one), p)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := records()
			p := pointers(&recs)
			tt.round(&p)
			for i := range N {
				for k := range recs[i] {
					want := int32(100*i + k)
					if k < tt.k {
						want++
					}
					if recs[i][k] != want {
						t.Errorf("record %d word %d = %d, want %d", i, k, recs[i][k], want)
					}
				}
			}
		})
	}
}

func TestLaneAccess(t *testing.T) {
	a := BroadcastInt(0)
	a.SetLane(N-1, 42)
	if a.Lane(N-1) != 42 || a.Lane(0) != 0 {
		t.Errorf("SetLane: %v", a)
	}
	out := make([]int32, N)
	a.Store(out)
	if out[N-1] != 42 {
		t.Errorf("Store: %v", out)
	}
	if got := LoadInt(out); got.Lanes() != a.Lanes() {
		t.Errorf("LoadInt = %v", got)
	}
	f := LoadFloat([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	if f.Lane(N-1) != N {
		t.Errorf("LoadFloat lane %d = %v", N-1, f.Lane(N-1))
	}
	defer func() {
		if recover() == nil {
			t.Error("LoadInt on a short slice did not panic")
		}
	}()
	LoadInt(out[:N-1])
}

func BenchmarkRsqrt(b *testing.B) {
	a := FloatFromArray(iotaF(1))
	var s Float
	for b.Loop() {
		s = s.Add(a.Rsqrt())
	}
	_ = s
}

func BenchmarkTransposedLoad(b *testing.B) {
	recs := records()
	p := pointers(&recs)
	var x, y, z Float
	for b.Loop() {
		Load4x3Tr(&p, &x, &y, &z)
	}
}
