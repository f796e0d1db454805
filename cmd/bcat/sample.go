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

package main

import "github.com/awslabs/ar-bc-tools/analysis/ir"

// sampleWorld builds a small program exercising the whole pipeline:
// virtual dispatch over a two-class cone, a static helper whose constant
// argument flows interprocedurally, a branch decided by a constant, and
// an assignment nothing reads.
func sampleWorld() *ir.World {
	object := ir.NewClass("Object", nil)
	speaker := ir.NewInterface("Speaker")
	value := ir.NewMethod(speaker, "value", nil, ir.TypeInt, true)

	a := ir.NewClass("A", object)
	a.Interfaces = append(a.Interfaces, speaker)
	aValue := ir.NewMethod(a, "value", nil, ir.TypeInt, false)
	{
		b := ir.NewBuilder(aValue)
		r := b.Local("r", ir.TypeInt)
		b.AssignInt(r, 1)
		b.Return(r)
		b.Finish()
	}

	bc := ir.NewClass("B", a)
	bValue := ir.NewMethod(bc, "value", nil, ir.TypeInt, false)
	{
		b := ir.NewBuilder(bValue)
		r := b.Local("r", ir.TypeInt)
		two := b.Local("two", ir.TypeInt)
		b.AssignInt(r, 20)
		b.AssignInt(two, 2)
		b.Assign(r, &ir.ArithmeticExp{Op: ir.OpMul, X: r, Y: two})
		b.Return(r)
		b.Finish()
	}

	mainClass := ir.NewClass("Main", object)

	halfN := &ir.Var{Name: "n", Type: ir.TypeInt}
	half := ir.NewMethod(mainClass, "half", []*ir.Var{halfN}, ir.TypeInt, false)
	{
		b := ir.NewBuilder(half)
		two := b.Local("two", ir.TypeInt)
		r := b.Local("r", ir.TypeInt)
		b.AssignInt(two, 2)
		b.Assign(r, &ir.ArithmeticExp{Op: ir.OpDiv, X: halfN, Y: two})
		b.Return(r)
		b.Finish()
	}

	entry := ir.NewMethod(mainClass, "main", nil, ir.TypeVoid, false)
	{
		b := ir.NewBuilder(entry)
		x := b.Local("x", ir.TypeInt)
		y := b.Local("y", ir.TypeInt)
		z := b.Local("z", ir.TypeInt)
		h := b.Local("h", ir.TypeInt)
		v := b.Local("v", ir.TypeInt)
		unused := b.Local("unused", ir.TypeInt)
		s := b.Local("s", ir.TypeRef)

		thenL := b.NewLabel()
		joinL := b.NewLabel()

		b.AssignInt(x, 10)
		b.AssignInt(y, 5)
		b.If(&ir.ConditionExp{Op: ir.OpGT, X: x, Y: y}, thenL)
		b.AssignInt(z, 0)
		b.Goto(joinL)
		b.Bind(thenL)
		b.AssignInt(z, 1)
		b.Bind(joinL)
		b.Assign(unused, &ir.ArithmeticExp{Op: ir.OpAdd, X: z, Y: x})
		b.Call(h, half, nil, x)
		b.Invoke(v, &ir.InvokeExp{Kind: ir.CallInterface, Ref: value.Ref(), Base: s})
		b.Return(nil)
		b.Finish()
	}

	h := ir.BuildHierarchy([]*ir.Class{object, speaker, a, bc, mainClass})
	return ir.NewWorld(h, entry)
}
