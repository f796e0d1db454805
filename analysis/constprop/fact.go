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

import (
	"sort"
	"strings"

	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// Fact maps variables to lattice values. A variable absent from the map
// is UNDEF; Update maintains that representation by deleting keys whose
// value becomes UNDEF.
type Fact struct {
	values map[*ir.Var]Value
}

// NewFact returns a fact with every variable UNDEF.
func NewFact() *Fact {
	return &Fact{values: map[*ir.Var]Value{}}
}

// Get returns the value bound to v, UNDEF when unbound.
func (f *Fact) Get(v *ir.Var) Value { return f.values[v] }

// Update binds v to val and reports whether the fact changed.
func (f *Fact) Update(v *ir.Var, val Value) bool {
	old, ok := f.values[v]
	if val.IsUndef() {
		if !ok {
			return false
		}
		delete(f.values, v)
		return true
	}
	if ok && old == val {
		return false
	}
	f.values[v] = val
	return true
}

// Remove unbinds v, resetting it to UNDEF.
func (f *Fact) Remove(v *ir.Var) {
	delete(f.values, v)
}

// Copy returns an independent copy of f.
func (f *Fact) Copy() *Fact {
	c := &Fact{values: make(map[*ir.Var]Value, len(f.values))}
	for v, val := range f.values {
		c.values[v] = val
	}
	return c
}

// Set replaces the contents of f with those of other.
func (f *Fact) Set(other *Fact) {
	f.values = make(map[*ir.Var]Value, len(other.values))
	for v, val := range other.values {
		f.values[v] = val
	}
}

// Equal reports whether f and other bind the same values.
func (f *Fact) Equal(other *Fact) bool {
	if len(f.values) != len(other.values) {
		return false
	}
	for v, val := range f.values {
		if other.values[v] != val {
			return false
		}
	}
	return true
}

// Len returns the number of non-UNDEF bindings.
func (f *Fact) Len() int { return len(f.values) }

// ForEach calls fn on every non-UNDEF binding in unspecified order.
func (f *Fact) ForEach(fn func(*ir.Var, Value)) {
	for v, val := range f.values {
		fn(v, val)
	}
}

// String renders the bindings sorted by variable name, for logs and
// test failures.
func (f *Fact) String() string {
	var parts []string
	for v, val := range f.values {
		parts = append(parts, v.Name+"="+val.String())
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}
