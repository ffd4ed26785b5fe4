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

package lanes

// Op is a lanewise binary operator. It names the compound assignment
// operators of the vector types (a.Assign(lanes.OpAdd, b) is a += b) and is
// the table cmd/lanegen walks when emitting the operator methods.
type Op uint8

const (
	OpAdd Op = iota // +
	OpSub           // -
	OpMul           // *
	OpDiv           // /
	OpRem           // %
	OpXor           // ^
	OpAnd           // &
	OpOr            // |
	OpShl           // <<
	OpShr           // >>

	numOps
)

type opInfo struct {
	name   string
	method string
	symbol string
	float  bool
}

var opTable = [numOps]opInfo{
	OpAdd: {"add", "Add", "+", true},
	OpSub: {"sub", "Sub", "-", true},
	OpMul: {"mul", "Mul", "*", true},
	OpDiv: {"div", "Div", "/", true},
	OpRem: {"rem", "Rem", "%", false},
	OpXor: {"xor", "Xor", "^", false},
	OpAnd: {"and", "And", "&", false},
	OpOr:  {"or", "Or", "|", false},
	OpShl: {"shl", "Shl", "<<", false},
	OpShr: {"shr", "Shr", ">>", false},
}

// Ops returns every operator in table order.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// Valid reports whether op is a known operator.
func (op Op) Valid() bool {
	return op < numOps
}

func (op Op) String() string {
	if !op.Valid() {
		return "unknown"
	}
	return opTable[op].name
}

// Method returns the name of the vector method implementing op ("Add").
func (op Op) Method() string {
	if !op.Valid() {
		return ""
	}
	return opTable[op].method
}

// Symbol returns the Go operator token for op ("+=" without the "=").
func (op Op) Symbol() string {
	if !op.Valid() {
		return ""
	}
	return opTable[op].symbol
}

// FloatOK reports whether op is defined for Float vectors. Bitwise, shift and
// remainder operators exist only on Int.
func (op Op) FloatOK() bool {
	return op.Valid() && opTable[op].float
}
