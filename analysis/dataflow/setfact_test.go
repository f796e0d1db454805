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

import "testing"

func TestSetFact(t *testing.T) {
	s := NewSetFact[string]()
	if !s.Add("a") || s.Add("a") {
		t.Error("Add should report a change exactly once")
	}
	s.Add("b")

	c := s.Copy()
	if !c.Equal(s) {
		t.Error("copy should equal the original")
	}
	c.Remove("b")
	if c.Equal(s) {
		t.Error("copy should be independent of the original")
	}
	if !s.Has("b") {
		t.Error("original lost an element through the copy")
	}

	other := NewSetFact[string]()
	other.Add("c")
	s.Union(other)
	if s.Len() != 3 || !s.Has("c") {
		t.Errorf("union has %d elements, want 3 with c", s.Len())
	}

	s.Set(other)
	if s.Len() != 1 || !s.Has("c") {
		t.Error("Set should replace the contents")
	}
}
