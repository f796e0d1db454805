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

package callgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// bodyReturningConst attaches "r = c; return r" to m.
func bodyReturningConst(m *ir.Method, c int32) {
	b := ir.NewBuilder(m)
	r := b.Local("r", ir.TypeInt)
	b.AssignInt(r, c)
	b.Return(r)
	b.Finish()
}

func TestVirtualCone(t *testing.T) {
	a := ir.NewClass("A", nil)
	bb := ir.NewClass("B", a)
	am := ir.NewMethod(a, "m", nil, ir.TypeInt, false)
	bodyReturningConst(am, 1)
	bm := ir.NewMethod(bb, "m", nil, ir.TypeInt, false)
	bodyReturningConst(bm, 2)

	mainClass := ir.NewClass("Main", nil)
	entry := ir.NewMethod(mainClass, "main", nil, ir.TypeVoid, false)
	eb := ir.NewBuilder(entry)
	recv := eb.Local("recv", ir.TypeRef)
	x := eb.Local("x", ir.TypeInt)
	call := eb.Invoke(x, &ir.InvokeExp{Kind: ir.CallVirtual, Ref: am.Ref(), Base: recv})
	eb.Return(nil)
	eb.Finish()

	h := ir.BuildHierarchy([]*ir.Class{a, bb, mainClass})
	cg := BuildCHA(ir.NewWorld(h, entry))

	assert.ElementsMatch(t, []*ir.Method{am, bm}, cg.CalleesOf(call))
	assert.True(t, cg.Contains(am))
	assert.True(t, cg.Contains(bm))
}

func TestInterfaceDispatchReachesAllImplementors(t *testing.T) {
	itf := ir.NewInterface("I")
	decl := ir.NewMethod(itf, "m", nil, ir.TypeInt, true)
	a := ir.NewClass("A", nil)
	a.Interfaces = []*ir.Class{itf}
	am := ir.NewMethod(a, "m", nil, ir.TypeInt, false)
	bodyReturningConst(am, 1)
	bb := ir.NewClass("B", a)
	bm := ir.NewMethod(bb, "m", nil, ir.TypeInt, false)
	bodyReturningConst(bm, 2)

	mainClass := ir.NewClass("Main", nil)
	entry := ir.NewMethod(mainClass, "main", nil, ir.TypeVoid, false)
	eb := ir.NewBuilder(entry)
	recv := eb.Local("recv", ir.TypeRef)
	call := eb.Invoke(nil, &ir.InvokeExp{Kind: ir.CallInterface, Ref: decl.Ref(), Base: recv})
	eb.Return(nil)
	eb.Finish()

	h := ir.BuildHierarchy([]*ir.Class{itf, a, bb, mainClass})
	cg := BuildCHA(ir.NewWorld(h, entry))

	assert.ElementsMatch(t, []*ir.Method{am, bm}, cg.CalleesOf(call))
}

func TestDispatchWalksSuperclassChain(t *testing.T) {
	a := ir.NewClass("A", nil)
	am := ir.NewMethod(a, "m", nil, ir.TypeInt, false)
	bodyReturningConst(am, 1)
	// B inherits m from A.
	bb := ir.NewClass("B", a)

	got := Dispatch(bb, am.Subsignature())
	require.NotNil(t, got)
	assert.Same(t, am, got)
}

func TestDispatchSkipsAbstract(t *testing.T) {
	a := ir.NewAbstractClass("A", nil)
	abs := ir.NewMethod(a, "m", nil, ir.TypeInt, true)
	assert.Nil(t, Dispatch(a, abs.Subsignature()))

	bb := ir.NewClass("B", a)
	bm := ir.NewMethod(bb, "m", nil, ir.TypeInt, false)
	bodyReturningConst(bm, 2)
	assert.Same(t, bm, Dispatch(bb, abs.Subsignature()))
}

func TestUnreachableMethodIsExcluded(t *testing.T) {
	c := ir.NewClass("Main", nil)
	called := ir.NewMethod(c, "called", nil, ir.TypeInt, false)
	bodyReturningConst(called, 1)
	orphan := ir.NewMethod(c, "orphan", nil, ir.TypeInt, false)
	bodyReturningConst(orphan, 2)

	entry := ir.NewMethod(c, "main", nil, ir.TypeVoid, false)
	eb := ir.NewBuilder(entry)
	x := eb.Local("x", ir.TypeInt)
	eb.Call(x, called, nil)
	eb.Return(nil)
	eb.Finish()

	h := ir.BuildHierarchy([]*ir.Class{c})
	cg := BuildCHA(ir.NewWorld(h, entry))

	assert.True(t, cg.Contains(called))
	assert.False(t, cg.Contains(orphan))
	require.Len(t, cg.CallersOf(called), 1)
	assert.Same(t, entry, cg.CallersOf(called)[0].Caller)
}

func TestRecursiveGroups(t *testing.T) {
	c := ir.NewClass("Main", nil)
	ping := ir.NewMethod(c, "ping", nil, ir.TypeVoid, false)
	pong := ir.NewMethod(c, "pong", nil, ir.TypeVoid, false)
	self := ir.NewMethod(c, "self", nil, ir.TypeVoid, false)
	{
		b := ir.NewBuilder(ping)
		b.Call(nil, pong, nil)
		b.Return(nil)
		b.Finish()
	}
	{
		b := ir.NewBuilder(pong)
		b.Call(nil, ping, nil)
		b.Return(nil)
		b.Finish()
	}
	{
		b := ir.NewBuilder(self)
		b.Call(nil, self, nil)
		b.Return(nil)
		b.Finish()
	}
	entry := ir.NewMethod(c, "main", nil, ir.TypeVoid, false)
	{
		b := ir.NewBuilder(entry)
		b.Call(nil, ping, nil)
		b.Call(nil, self, nil)
		b.Return(nil)
		b.Finish()
	}

	h := ir.BuildHierarchy([]*ir.Class{c})
	cg := BuildCHA(ir.NewWorld(h, entry))

	groups := RecursiveGroups(cg)
	require.Len(t, groups, 2)
	var flat [][]*ir.Method
	for _, g := range groups {
		flat = append(flat, g)
	}
	assert.Contains(t, flat, []*ir.Method{self})
	found := false
	for _, g := range flat {
		if len(g) == 2 {
			assert.ElementsMatch(t, []*ir.Method{ping, pong}, g)
			found = true
		}
	}
	assert.True(t, found, "ping/pong group missing")
}
