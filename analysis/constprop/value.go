// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package constprop

import "strconv"

type valueKind uint8

const (
	kindUndef valueKind = iota
	kindConst
	kindNAC
)

// Value is an element of the constant-propagation lattice. The zero
// Value is UNDEF.
type Value struct {
	kind valueKind
	c    int32
}

// Undef returns the bottom element: no value has reached the variable.
func Undef() Value { return Value{} }

// NAC returns the top element: the variable is not a constant.
func NAC() Value { return Value{kind: kindNAC} }

// Const returns the lattice point for the single constant c.
func Const(c int32) Value { return Value{kind: kindConst, c: c} }

// IsUndef reports whether v is the bottom element.
func (v Value) IsUndef() bool { return v.kind == kindUndef }

// IsConstant reports whether v denotes a single constant.
func (v Value) IsConstant() bool { return v.kind == kindConst }

// IsNAC reports whether v is the top element.
func (v Value) IsNAC() bool { return v.kind == kindNAC }

// Constant returns the constant v denotes. It panics unless IsConstant.
func (v Value) Constant() int32 {
	if v.kind != kindConst {
		panic("constprop: Constant called on " + v.String())
	}
	return v.c
}

func (v Value) String() string {
	switch v.kind {
	case kindUndef:
		return "UNDEF"
	case kindNAC:
		return "NAC"
	default:
		return strconv.FormatInt(int64(v.c), 10)
	}
}

// MeetValue combines two lattice values. NAC absorbs everything, UNDEF
// is the identity, and two distinct constants meet to NAC.
func MeetValue(a, b Value) Value {
	switch {
	case a.IsNAC() || b.IsNAC():
		return NAC()
	case a.IsUndef():
		return b
	case b.IsUndef():
		return a
	case a.c == b.c:
		return a
	default:
		return NAC()
	}
}
