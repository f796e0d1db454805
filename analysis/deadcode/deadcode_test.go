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

package deadcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

func detect(t *testing.T, m *ir.Method) map[ir.Stmt]bool {
	t.Helper()
	dead, err := Detect(m)
	require.NoError(t, err)
	set := map[ir.Stmt]bool{}
	for _, s := range dead {
		set[s] = true
	}
	return set
}

func newMethod(name string) *ir.Method {
	c := ir.NewClass("Test", nil)
	return ir.NewMethod(c, name, nil, ir.TypeInt, false)
}

func TestConstantBranchPrunesElse(t *testing.T) {
	m := newMethod("branch")
	b := ir.NewBuilder(m)
	x := b.Local("x", ir.TypeInt)
	one := b.Local("one", ir.TypeInt)
	y := b.Local("y", ir.TypeInt)
	thenL := b.NewLabel()
	joinL := b.NewLabel()
	b.AssignInt(x, 1)
	b.AssignInt(one, 1)
	b.If(&ir.ConditionExp{Op: ir.OpEQ, X: x, Y: one}, thenL)
	elseAssign := b.AssignInt(y, 3)
	b.Goto(joinL)
	b.Bind(thenL)
	thenAssign := b.AssignInt(y, 2)
	b.Bind(joinL)
	ret := b.Return(y)
	b.Finish()

	dead := detect(t, m)
	assert.True(t, dead[elseAssign], "y = 3 is unreachable")
	assert.False(t, dead[thenAssign], "y = 2 reaches and is live")
	assert.False(t, dead[ret])
}

func TestOverwrittenAssignmentIsDead(t *testing.T) {
	m := newMethod("overwrite")
	b := ir.NewBuilder(m)
	x := b.Local("x", ir.TypeInt)
	first := b.AssignInt(x, 1)
	second := b.AssignInt(x, 2)
	b.Return(x)
	b.Finish()

	dead := detect(t, m)
	assert.True(t, dead[first], "x = 1 is overwritten before any read")
	assert.False(t, dead[second])
}

func TestSwitchCollapse(t *testing.T) {
	m := newMethod("collapse")
	b := ir.NewBuilder(m)
	x := b.Local("x", ir.TypeInt)
	a := b.Local("a", ir.TypeInt)
	case1 := b.NewLabel()
	case2 := b.NewLabel()
	defL := b.NewLabel()
	endL := b.NewLabel()
	b.AssignInt(x, 2)
	b.Switch(x, []ir.SwitchCase{{Value: 1, Target: case1}, {Value: 2, Target: case2}}, defL)
	b.Bind(case1)
	s1 := b.AssignInt(a, 1)
	b.Goto(endL)
	b.Bind(case2)
	s2 := b.AssignInt(a, 2)
	b.Goto(endL)
	b.Bind(defL)
	s3 := b.AssignInt(a, 3)
	b.Bind(endL)
	b.Return(a)
	b.Finish()

	dead := detect(t, m)
	assert.True(t, dead[s1], "case 1 is unreachable")
	assert.False(t, dead[s2], "case 2 matches the constant")
	assert.True(t, dead[s3], "default is bypassed by the matching case")
}

func TestUnknownSwitchKeepsAllCases(t *testing.T) {
	p := &ir.Var{Name: "p", Type: ir.TypeInt}
	c := ir.NewClass("Test", nil)
	m := ir.NewMethod(c, "opaque", []*ir.Var{p}, ir.TypeInt, false)
	b := ir.NewBuilder(m)
	a := b.Local("a", ir.TypeInt)
	case1 := b.NewLabel()
	defL := b.NewLabel()
	endL := b.NewLabel()
	b.Switch(p, []ir.SwitchCase{{Value: 1, Target: case1}}, defL)
	b.Bind(case1)
	s1 := b.AssignInt(a, 1)
	b.Goto(endL)
	b.Bind(defL)
	s3 := b.AssignInt(a, 3)
	b.Bind(endL)
	b.Return(a)
	b.Finish()

	dead := detect(t, m)
	assert.False(t, dead[s1])
	assert.False(t, dead[s3])
}

func TestSideEffectKeepsUnusedAssignment(t *testing.T) {
	p := &ir.Var{Name: "p", Type: ir.TypeInt}
	q := &ir.Var{Name: "q", Type: ir.TypeInt}
	c := ir.NewClass("Test", nil)
	m := ir.NewMethod(c, "effects", []*ir.Var{p, q}, ir.TypeInt, false)
	b := ir.NewBuilder(m)
	x := b.Local("x", ir.TypeInt)
	y := b.Local("y", ir.TypeInt)
	z := b.Local("z", ir.TypeInt)
	div := b.Assign(x, &ir.ArithmeticExp{Op: ir.OpDiv, X: p, Y: q})
	pure := b.Assign(y, &ir.ArithmeticExp{Op: ir.OpAdd, X: p, Y: q})
	b.AssignInt(z, 0)
	b.Return(z)
	b.Finish()

	dead := detect(t, m)
	assert.False(t, dead[div], "division may throw, the assignment must stay")
	assert.True(t, dead[pure], "pure unused assignment is dead")
}

func TestCodeAfterReturnIsUnreachable(t *testing.T) {
	m := newMethod("after")
	b := ir.NewBuilder(m)
	x := b.Local("x", ir.TypeInt)
	b.AssignInt(x, 1)
	b.Return(x)
	trailing := b.AssignInt(x, 9)
	b.Return(x)
	b.Finish()

	dead := detect(t, m)
	assert.True(t, dead[trailing])
}
