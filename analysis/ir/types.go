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

package ir

// Type is the type of a local variable, parameter or return value. The
// analyses only distinguish the primitive kinds that can hold a 32-bit
// integer from everything else; reference types all collapse into TypeRef.
type Type int

const (
	TypeVoid Type = iota
	TypeByte
	TypeShort
	TypeInt
	TypeChar
	TypeBoolean
	TypeLong
	TypeFloat
	TypeDouble
	TypeRef
)

var typeNames = map[Type]string{
	TypeVoid:    "void",
	TypeByte:    "byte",
	TypeShort:   "short",
	TypeInt:     "int",
	TypeChar:    "char",
	TypeBoolean: "boolean",
	TypeLong:    "long",
	TypeFloat:   "float",
	TypeDouble:  "double",
	TypeRef:     "ref",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// CanHoldInt reports whether a variable of this type can hold a 32-bit
// integer value. Long, float and double are excluded even though they are
// numeric; their arithmetic is out of scope for the integer analyses.
func (t Type) CanHoldInt() bool {
	switch t {
	case TypeByte, TypeShort, TypeInt, TypeChar, TypeBoolean:
		return true
	default:
		return false
	}
}

// Var is a local variable or formal parameter of a method. Vars are
// compared by identity: two distinct methods never share a *Var, and a
// method never declares the same *Var twice.
type Var struct {
	Name string
	Type Type
}

func (v *Var) String() string {
	return v.Name
}
