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

import "github.com/awslabs/ar-bc-tools/analysis/ir"

// Evaluate computes the lattice value of exp under the incoming fact.
// Literals and variable reads are exact; binary expressions over two
// constants are computed with 32-bit two's-complement wraparound.
// Expression forms the lattice cannot track (allocation, field and
// array access, casts, calls) evaluate to NAC.
func Evaluate(exp ir.Exp, in *Fact) Value {
	switch e := exp.(type) {
	case *ir.IntLiteral:
		return Const(e.Value)
	case *ir.VarExp:
		if !e.Var.Type.CanHoldInt() {
			return Undef()
		}
		return in.Get(e.Var)
	case ir.BinaryExp:
		return evaluateBinary(e, in)
	default:
		return NAC()
	}
}

func evaluateBinary(e ir.BinaryExp, in *Fact) Value {
	o1, o2 := e.Operands()
	if !o1.Type.CanHoldInt() || !o2.Type.CanHoldInt() {
		return Undef()
	}
	v1, v2 := in.Get(o1), in.Get(o2)

	// Division and remainder by a constant zero cannot produce a value,
	// even when the dividend is NAC.
	if v2.IsConstant() && v2.Constant() == 0 {
		if a, ok := e.(*ir.ArithmeticExp); ok && (a.Op == ir.OpDiv || a.Op == ir.OpRem) {
			return Undef()
		}
	}
	if v1.IsNAC() || v2.IsNAC() {
		return NAC()
	}
	if !v1.IsConstant() || !v2.IsConstant() {
		return Undef()
	}
	c1, c2 := v1.Constant(), v2.Constant()

	switch b := e.(type) {
	case *ir.ArithmeticExp:
		switch b.Op {
		case ir.OpAdd:
			return Const(c1 + c2)
		case ir.OpSub:
			return Const(c1 - c2)
		case ir.OpMul:
			return Const(c1 * c2)
		case ir.OpDiv:
			if c2 == 0 {
				return Undef()
			}
			return Const(c1 / c2)
		case ir.OpRem:
			if c2 == 0 {
				return Undef()
			}
			return Const(c1 % c2)
		}
	case *ir.BitwiseExp:
		switch b.Op {
		case ir.OpAnd:
			return Const(c1 & c2)
		case ir.OpOr:
			return Const(c1 | c2)
		case ir.OpXor:
			return Const(c1 ^ c2)
		}
	case *ir.ShiftExp:
		// Shift distances wrap modulo 32.
		s := uint32(c2) & 31
		switch b.Op {
		case ir.OpShl:
			return Const(c1 << s)
		case ir.OpShr:
			return Const(c1 >> s)
		case ir.OpUshr:
			return Const(int32(uint32(c1) >> s))
		}
	case *ir.ConditionExp:
		return Const(boolToInt(compare(b.Op, c1, c2)))
	}
	return NAC()
}

func compare(op ir.ConditionOp, c1, c2 int32) bool {
	switch op {
	case ir.OpEQ:
		return c1 == c2
	case ir.OpNE:
		return c1 != c2
	case ir.OpLT:
		return c1 < c2
	case ir.OpGT:
		return c1 > c2
	case ir.OpLE:
		return c1 <= c2
	default:
		return c1 >= c2
	}
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
