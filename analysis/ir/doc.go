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

// Package ir defines the three-address intermediate representation the
// analyses in this module operate on: classes, methods, typed local
// variables, statements and expressions, together with the class hierarchy
// queries used for dispatch resolution.
//
// Statements and expressions are sealed tagged sums: the set of concrete
// forms is fixed by this package, and consumers dispatch exhaustively with
// type switches. All IR objects are immutable once a method body has been
// built; analyses attach their results to methods and to the world through
// the result maps, they never modify the IR itself.
package ir
