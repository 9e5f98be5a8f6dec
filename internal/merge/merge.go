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

// Package merge compares sorted inputs with a linear merge.
package merge

import "znkr.io/listdiff/internal/edits"

// Merge compares x and y, which both must be sorted according to compare, and returns the edit
// operations to transform x into y.
//
// Elements that compare equal match, elements that only exist in x are deleted, and elements that
// only exist in y are inserted. If x or y are not sorted, the result is undefined.
func Merge[T any](x, y []T, compare func(a, b T) int) []edits.Edit {
	var out []edits.Edit
	s, t := 0, 0
	for s < len(x) && t < len(y) {
		switch c := compare(x[s], y[t]); {
		case c < 0:
			out = append(out, edits.Edit{Flag: edits.Delete, S: s, T: t})
			s++
		case c > 0:
			out = append(out, edits.Edit{Flag: edits.Insert, S: s, T: t})
			t++
		default:
			s++
			t++
		}
	}
	for ; s < len(x); s++ {
		out = append(out, edits.Edit{Flag: edits.Delete, S: s, T: t})
	}
	for ; t < len(y); t++ {
		out = append(out, edits.Edit{Flag: edits.Insert, S: s, T: t})
	}
	return out
}
