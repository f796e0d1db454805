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

import "testing"

func TestBuilderPatchesForwardLabels(t *testing.T) {
	c := NewClass("Test", nil)
	m := NewMethod(c, "fwd", nil, TypeInt, false)
	b := NewBuilder(m)
	x := b.Local("x", TypeInt)
	target := b.NewLabel()
	branch := b.If(&ConditionExp{Op: OpEQ, X: x, Y: x}, target)
	jump := b.Goto(target)
	b.Bind(target)
	ret := b.Return(x)
	b.Finish()

	if branch.Target != ret.Index() {
		t.Errorf("if target = %d, want %d", branch.Target, ret.Index())
	}
	if jump.Target != ret.Index() {
		t.Errorf("goto target = %d, want %d", jump.Target, ret.Index())
	}
}

func TestBuilderPatchesSwitchTargets(t *testing.T) {
	c := NewClass("Test", nil)
	m := NewMethod(c, "sw", nil, TypeInt, false)
	b := NewBuilder(m)
	x := b.Local("x", TypeInt)
	caseL := b.NewLabel()
	defL := b.NewLabel()
	sw := b.Switch(x, []SwitchCase{{Value: 1, Target: caseL}}, defL)
	b.Bind(caseL)
	caseRet := b.Return(x)
	b.Bind(defL)
	defRet := b.Return(x)
	b.Finish()

	if sw.Cases[0].Target != caseRet.Index() {
		t.Errorf("case target = %d, want %d", sw.Cases[0].Target, caseRet.Index())
	}
	if sw.DefaultTarget != defRet.Index() {
		t.Errorf("default target = %d, want %d", sw.DefaultTarget, defRet.Index())
	}
}

func TestFinishPanicsOnUnboundLabel(t *testing.T) {
	c := NewClass("Test", nil)
	m := NewMethod(c, "unbound", nil, TypeVoid, false)
	b := NewBuilder(m)
	l := b.NewLabel()
	b.Goto(l)
	defer func() {
		if recover() == nil {
			t.Error("Finish should panic on an unbound label")
		}
	}()
	b.Finish()
}

func TestStatementIndicesAreDense(t *testing.T) {
	c := NewClass("Test", nil)
	m := NewMethod(c, "dense", nil, TypeInt, false)
	b := NewBuilder(m)
	x := b.Local("x", TypeInt)
	b.AssignInt(x, 1)
	b.Nop()
	b.Return(x)
	b.Finish()

	for i, s := range m.Stmts() {
		if s.Index() != i {
			t.Errorf("statement %d has index %d", i, s.Index())
		}
		if s.LineNumber() != i+1 {
			t.Errorf("statement %d has line %d, want %d", i, s.LineNumber(), i+1)
		}
	}
}

func TestDefAndUses(t *testing.T) {
	x := &Var{Name: "x", Type: TypeInt}
	y := &Var{Name: "y", Type: TypeInt}
	z := &Var{Name: "z", Type: TypeInt}

	assign := &AssignStmt{LHS: z, RHS: &ArithmeticExp{Op: OpAdd, X: x, Y: y}}
	if Def(assign) != z {
		t.Error("assignment defines its LHS")
	}
	uses := Uses(assign)
	if len(uses) != 2 || uses[0] != x || uses[1] != y {
		t.Errorf("assignment uses = %v, want x and y", uses)
	}

	branch := &If{Cond: &ConditionExp{Op: OpLT, X: x, Y: y}}
	if Def(branch) != nil {
		t.Error("a branch defines nothing")
	}
	if got := Uses(branch); len(got) != 2 {
		t.Errorf("branch uses = %v, want both operands", got)
	}

	call := &Invoke{LHS: z, Exp: &InvokeExp{Kind: CallVirtual, Base: x, Args: []*Var{y}}}
	if Def(call) != z {
		t.Error("a call defines its LHS")
	}
	if got := Uses(call); len(got) != 2 || got[0] != x || got[1] != y {
		t.Errorf("call uses = %v, want base then args", got)
	}

	if Def(&Return{Var: x}) != nil {
		t.Error("a return defines nothing")
	}
	if got := Uses(&Return{}); got != nil {
		t.Errorf("void return uses = %v, want none", got)
	}
}

func TestSubsignatureExcludesClass(t *testing.T) {
	a := NewClass("A", nil)
	bb := NewClass("B", nil)
	p := &Var{Name: "p", Type: TypeInt}
	q := &Var{Name: "q", Type: TypeRef}
	am := NewMethod(a, "m", []*Var{p}, TypeInt, false)
	bm := NewMethod(bb, "m", []*Var{q}, TypeInt, false)

	if am.Subsignature() != "int m(int)" {
		t.Errorf("subsignature = %q", am.Subsignature())
	}
	if am.Subsignature() == bm.Subsignature() {
		t.Error("different parameter types must give different subsignatures")
	}
	if got := NewMethod(a, "n", nil, TypeVoid, false).Subsignature(); got != "void n()" {
		t.Errorf("nullary subsignature = %q", got)
	}
}

func TestDeclaredMethodLookup(t *testing.T) {
	c := NewClass("C", nil)
	m := NewMethod(c, "m", nil, TypeInt, false)
	if c.DeclaredMethod(m.Subsignature()) != m {
		t.Error("declared method not found by subsignature")
	}
	if c.DeclaredMethod("void other()") != nil {
		t.Error("lookup of an undeclared method should be nil")
	}
}

func TestHierarchyReverseEdges(t *testing.T) {
	itf := NewInterface("I")
	sub := NewInterface("J")
	sub.Interfaces = []*Class{itf}
	a := NewClass("A", nil)
	a.Interfaces = []*Class{itf}
	bb := NewClass("B", a)

	h := BuildHierarchy([]*Class{itf, sub, a, bb})
	if got := h.DirectSubclassesOf(a); len(got) != 1 || got[0] != bb {
		t.Errorf("subclasses of A = %v, want [B]", got)
	}
	if got := h.DirectSubinterfacesOf(itf); len(got) != 1 || got[0] != sub {
		t.Errorf("subinterfaces of I = %v, want [J]", got)
	}
	if got := h.DirectImplementorsOf(itf); len(got) != 1 || got[0] != a {
		t.Errorf("implementors of I = %v, want [A]", got)
	}
	if h.Class("A") != a || h.Class("missing") != nil {
		t.Error("class lookup by name is wrong")
	}
}

func TestWorldMethodsSkipAbstract(t *testing.T) {
	itf := NewInterface("I")
	decl := NewMethod(itf, "m", nil, TypeInt, true)
	c := NewClass("C", nil)
	c.Interfaces = []*Class{itf}
	impl := NewMethod(c, "m", nil, TypeInt, false)
	{
		b := NewBuilder(impl)
		r := b.Local("r", TypeInt)
		b.AssignInt(r, 1)
		b.Return(r)
		b.Finish()
	}
	entry := NewMethod(c, "main", nil, TypeVoid, false)
	{
		b := NewBuilder(entry)
		b.Return(nil)
		b.Finish()
	}

	w := NewWorld(BuildHierarchy([]*Class{itf, c}), entry)
	for _, m := range w.Methods() {
		if m == decl {
			t.Fatal("abstract declaration must not be listed as a world method")
		}
	}
}
