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

import (
	"fmt"
	"strings"
)

// Exp is the sealed interface of all right-hand-side expression forms.
type Exp interface {
	fmt.Stringer
	isExp()
}

// IntLiteral is a 32-bit integer constant.
type IntLiteral struct {
	Value int32
}

func (e *IntLiteral) isExp() {}

func (e *IntLiteral) String() string { return fmt.Sprintf("%d", e.Value) }

// ArithmeticOp enumerates the integer arithmetic operators.
type ArithmeticOp int

const (
	OpAdd ArithmeticOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
)

var arithmeticSymbols = [...]string{"+", "-", "*", "/", "%"}

func (op ArithmeticOp) String() string { return arithmeticSymbols[op] }

// ArithmeticExp is a binary arithmetic expression over two variables.
// Operands are always variables; the IR is in three-address form.
type ArithmeticExp struct {
	Op   ArithmeticOp
	X, Y *Var
}

func (e *ArithmeticExp) isExp() {}

func (e *ArithmeticExp) String() string { return binaryString(e.X, e.Op.String(), e.Y) }

// Operands returns the two variable operands of the expression.
func (e *ArithmeticExp) Operands() (*Var, *Var) { return e.X, e.Y }

// BitwiseOp enumerates the bitwise operators.
type BitwiseOp int

const (
	OpAnd BitwiseOp = iota
	OpOr
	OpXor
)

var bitwiseSymbols = [...]string{"&", "|", "^"}

func (op BitwiseOp) String() string { return bitwiseSymbols[op] }

// BitwiseExp is a binary bitwise expression over two variables.
type BitwiseExp struct {
	Op   BitwiseOp
	X, Y *Var
}

func (e *BitwiseExp) isExp() {}

func (e *BitwiseExp) String() string { return binaryString(e.X, e.Op.String(), e.Y) }

// Operands returns the two variable operands of the expression.
func (e *BitwiseExp) Operands() (*Var, *Var) { return e.X, e.Y }

// ConditionOp enumerates the integer comparison operators.
type ConditionOp int

const (
	OpEQ ConditionOp = iota
	OpNE
	OpLT
	OpLE
	OpGT
	OpGE
)

var conditionSymbols = [...]string{"==", "!=", "<", "<=", ">", ">="}

func (op ConditionOp) String() string { return conditionSymbols[op] }

// ConditionExp is a binary comparison producing 1 or 0.
type ConditionExp struct {
	Op   ConditionOp
	X, Y *Var
}

func (e *ConditionExp) isExp() {}

func (e *ConditionExp) String() string { return binaryString(e.X, e.Op.String(), e.Y) }

// Operands returns the two variable operands of the expression.
func (e *ConditionExp) Operands() (*Var, *Var) { return e.X, e.Y }

// ShiftOp enumerates the shift operators. OpShr is the arithmetic right
// shift, OpUshr the logical one.
type ShiftOp int

const (
	OpShl ShiftOp = iota
	OpShr
	OpUshr
)

var shiftSymbols = [...]string{"<<", ">>", ">>>"}

func (op ShiftOp) String() string { return shiftSymbols[op] }

// ShiftExp is a binary shift expression over two variables.
type ShiftExp struct {
	Op   ShiftOp
	X, Y *Var
}

func (e *ShiftExp) isExp() {}

func (e *ShiftExp) String() string { return binaryString(e.X, e.Op.String(), e.Y) }

// Operands returns the two variable operands of the expression.
func (e *ShiftExp) Operands() (*Var, *Var) { return e.X, e.Y }

// BinaryExp is implemented by the four binary expression forms.
type BinaryExp interface {
	Exp
	Operands() (*Var, *Var)
}

// VarExp wraps a variable used as a right-hand side on its own,
// as in the copy statement x = y.
type VarExp struct {
	Var *Var
}

func (e *VarExp) isExp() {}

func (e *VarExp) String() string { return e.Var.Name }

// FieldAccess reads a static or instance field. Base is nil for static
// fields. The analyses treat the loaded value as unknown.
type FieldAccess struct {
	Base  *Var
	Field string
}

func (e *FieldAccess) isExp() {}

func (e *FieldAccess) String() string {
	if e.Base == nil {
		return e.Field
	}
	return e.Base.Name + "." + e.Field
}

// ArrayAccess reads an array element.
type ArrayAccess struct {
	Base  *Var
	Index *Var
}

func (e *ArrayAccess) isExp() {}

func (e *ArrayAccess) String() string { return e.Base.Name + "[" + e.Index.Name + "]" }

// NewExp allocates an object of the named class.
type NewExp struct {
	Class string
}

func (e *NewExp) isExp() {}

func (e *NewExp) String() string { return "new " + e.Class }

// CastExp casts a variable to the named class. The cast may throw at
// runtime, so it is never removable.
type CastExp struct {
	Class string
	X     *Var
}

func (e *CastExp) isExp() {}

func (e *CastExp) String() string { return "(" + e.Class + ") " + e.X.Name }

// InstanceOfExp tests whether a variable is an instance of the named class.
type InstanceOfExp struct {
	X     *Var
	Class string
}

func (e *InstanceOfExp) isExp() {}

func (e *InstanceOfExp) String() string { return e.X.Name + " instanceof " + e.Class }

// CallKind distinguishes the dispatch forms of an invocation.
type CallKind int

const (
	CallStatic CallKind = iota
	CallSpecial
	CallVirtual
	CallInterface
	CallDynamic
)

var callKindNames = [...]string{"static", "special", "virtual", "interface", "dynamic"}

func (k CallKind) String() string { return callKindNames[k] }

// MethodRef names a method as it appears at a call site: the declared
// receiver class plus the subsignature. The referenced class is resolved
// against the hierarchy when the call graph is built.
type MethodRef struct {
	Class  *Class
	Name   string
	Params []Type
	Ret    Type
}

// Subsignature returns the method name with its parameter and return
// types, excluding the declaring class.
func (r *MethodRef) Subsignature() string {
	return subsignature(r.Name, r.Params, r.Ret)
}

func (r *MethodRef) String() string {
	return r.Class.Name + "." + r.Subsignature()
}

// InvokeExp is a method invocation. Base is the receiver variable; it is
// nil for static calls.
type InvokeExp struct {
	Kind CallKind
	Ref  *MethodRef
	Base *Var
	Args []*Var
}

func (e *InvokeExp) isExp() {}

func (e *InvokeExp) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.Name
	}
	recv := e.Ref.Class.Name
	if e.Base != nil {
		recv = e.Base.Name
	}
	return fmt.Sprintf("invoke%s %s.%s(%s)", e.Kind, recv, e.Ref.Name, strings.Join(args, ", "))
}

func binaryString(x *Var, op string, y *Var) string {
	return x.Name + " " + op + " " + y.Name
}

func subsignature(name string, params []Type, ret Type) string {
	ps := make([]string, len(params))
	for i, p := range params {
		ps[i] = p.String()
	}
	return fmt.Sprintf("%s %s(%s)", ret, name, strings.Join(ps, ","))
}
