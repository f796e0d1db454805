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

// Package constprop implements constant propagation over int-typed
// variables. Each variable is mapped to a value in the three-point
// lattice UNDEF < CONST(c) < NAC; the intraprocedural analysis runs on
// a single CFG with parameters pinned to NAC at entry, and the
// interprocedural variant refines call boundaries by propagating
// argument constants along call edges of an ICFG.
//
// Arithmetic follows 32-bit two's-complement semantics. Division and
// remainder by a constant zero produce UNDEF rather than NAC, matching
// the treatment of expressions whose evaluation cannot complete.
package constprop
