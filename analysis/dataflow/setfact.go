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

package dataflow

import "github.com/awslabs/ar-bc-tools/internal/funcutil"

// SetFact is an unordered set of elements used as a dataflow fact. Union
// is the meet for may-analyses such as live variables.
type SetFact[T comparable] struct {
	elems map[T]bool
}

// NewSetFact returns an empty set fact.
func NewSetFact[T comparable]() *SetFact[T] {
	return &SetFact[T]{elems: map[T]bool{}}
}

// Has reports membership of x.
func (s *SetFact[T]) Has(x T) bool { return s.elems[x] }

// Add inserts x and reports whether the set changed.
func (s *SetFact[T]) Add(x T) bool {
	if s.elems[x] {
		return false
	}
	s.elems[x] = true
	return true
}

// Remove deletes x and reports whether the set changed.
func (s *SetFact[T]) Remove(x T) bool {
	if !s.elems[x] {
		return false
	}
	delete(s.elems, x)
	return true
}

// Union adds all elements of other into s.
func (s *SetFact[T]) Union(other *SetFact[T]) {
	funcutil.Union(s.elems, other.elems)
}

// Copy returns an independent copy of s.
func (s *SetFact[T]) Copy() *SetFact[T] {
	c := NewSetFact[T]()
	funcutil.Union(c.elems, s.elems)
	return c
}

// Set replaces the contents of s with those of other.
func (s *SetFact[T]) Set(other *SetFact[T]) {
	s.elems = make(map[T]bool, len(other.elems))
	funcutil.Union(s.elems, other.elems)
}

// Equal reports whether s and other contain the same elements.
func (s *SetFact[T]) Equal(other *SetFact[T]) bool {
	if len(s.elems) != len(other.elems) {
		return false
	}
	for x := range s.elems {
		if !other.elems[x] {
			return false
		}
	}
	return true
}

// Len returns the number of elements.
func (s *SetFact[T]) Len() int { return len(s.elems) }

// ForEach calls f on every element in unspecified order.
func (s *SetFact[T]) ForEach(f func(T)) {
	for x := range s.elems {
		f(x)
	}
}
