// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package listdiff compares two sequences and reports the elements that have to be inserted and
// deleted to transform one into the other.
//
// The main functions are [Diff] and [DiffFunc], which return the result as [Facts]: the inserted
// and deleted elements in the order they appear in the edit script, a rendered description of the
// diff, and whether the result was truncated.
//
// Comparisons use Myers' O(ND) algorithm in linear space. The search is split recursively around
// the middle snake of the edit graph, see [MiddleSnake] and [Snakes] for the building blocks. The
// number of reported edit operations can be capped with [Limit]. Inputs that are already sorted
// can be compared in linear time with [Presorted].
//
// Callers that do not know the element order up front can use a [Request], which falls back to the
// natural order of the element type.
//
// Note: For a line-by-line diff of text, please see [znkr.io/listdiff/textdiff].
//
// [znkr.io/listdiff/textdiff]: https://pkg.go.dev/znkr.io/listdiff/textdiff
package listdiff
