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

// World is the root object handed to the analyses: the class hierarchy,
// the designated entry method, and a result map for whole-program
// analyses. The hierarchy and IR are read-only once the world is built.
type World struct {
	Hierarchy *Hierarchy
	Entry     *Method

	results map[string]any
}

// NewWorld creates a world over the given hierarchy with the given entry
// method.
func NewWorld(h *Hierarchy, entry *Method) *World {
	return &World{Hierarchy: h, Entry: entry, results: map[string]any{}}
}

// Methods returns every method with a body declared by any class in the
// world.
func (w *World) Methods() []*Method {
	var ms []*Method
	for _, c := range w.Hierarchy.Classes() {
		for _, m := range c.DeclaredMethods() {
			if !m.Abstract {
				ms = append(ms, m)
			}
		}
	}
	return ms
}

// GetResult returns the whole-program analysis result stored under id.
func (w *World) GetResult(id string) (any, bool) {
	r, ok := w.results[id]
	return r, ok
}

// StoreResult records a whole-program analysis result under id.
func (w *World) StoreResult(id string, result any) {
	w.results[id] = result
}
