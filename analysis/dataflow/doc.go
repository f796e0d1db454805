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

// Package dataflow implements the generic fixed-point machinery shared by
// the concrete analyses: the Analysis capability record, the IN/OUT fact
// container, iterative and worklist solvers over intraprocedural CFGs, and
// an interprocedural solver that composes node transfers with per-edge
// transfer functions over an ICFG.
//
// An analysis supplies its lattice through four operations (boundary
// fact, initial fact, meet, node transfer); the solvers iterate them to
// the meet-over-all-paths fixed point. Termination relies on the facts
// forming a finite-height lattice and every transfer being monotone; the
// solvers never inspect fact contents.
package dataflow
