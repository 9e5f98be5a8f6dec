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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
package byteview

import (
	"strings"
	"unsafe"
)

type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

// To converts v back to a string or []byte. A []byte shares memory with v and must not be
// modified.
func To[T string | []byte](v ByteView) T {
	switch any((*T)(nil)).(type) {
	case *string:
		return T(v.data)
	case *[]byte:
		return T(unsafe.Slice(unsafe.StringData(v.data), len(v.data)))
	}
	panic("never reached")
}

// ToSlice converts all views in vs with [To]. It returns nil if vs is nil.
func ToSlice[T string | []byte](vs []ByteView) []T {
	if vs == nil {
		return nil
	}
	out := make([]T, len(vs))
	for i, v := range vs {
		out[i] = To[T](v)
	}
	return out
}

func (v ByteView) Len() int { return len(v.data) }

func (v ByteView) String() string { return v.data }

// SplitLines splits the input on '\n' and returns the lines without the newline character. A
// final newline character does not start a new line.
func SplitLines(v ByteView) []ByteView {
	s := v.data
	n := strings.Count(v.data, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	a := make([]ByteView, n)
	for i := range n {
		m := strings.Index(s, "\n")
		if m < 0 {
			break
		}
		a[i] = ByteView{s[:m]}
		s = s[m+1:]
	}
	if len(s) > 0 {
		a[n-1] = ByteView{s}
	}
	return a
}
