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

package listdiff

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrNoOrdering is returned by [Request.Diff] if no comparison function was provided and the
// element type has no natural order.
var ErrNoOrdering = errors.New("listdiff: element type has no natural order")

// Request collects the inputs of a comparison.
type Request[T any] struct {
	Original []T
	Edited   []T

	// Compare orders elements, two elements match if Compare returns 0. If nil, the natural order
	// of T is used: types with a method Compare(T) int are ordered by that method, integer,
	// floating-point and string types are ordered like [cmp.Compare].
	Compare func(a, b T) int

	// Options for the comparison, see [DiffFunc].
	Options []Option
}

// Diff compares r.Original with r.Edited.
//
// It returns an error wrapping [ErrNoOrdering] if r.Compare is nil and T has no natural order. No
// comparison takes place in that case.
func (r Request[T]) Diff() (Facts[T], error) {
	compare := r.Compare
	if compare == nil {
		var err error
		compare, err = NaturalOrder[T]()
		if err != nil {
			return Facts[T]{}, err
		}
	}
	return DiffFunc(r.Original, r.Edited, compare, r.Options...), nil
}

// NaturalOrder returns the natural order of T or an error wrapping [ErrNoOrdering] if T has none.
// See [Request.Compare] for the types that have a natural order.
func NaturalOrder[T any]() (func(a, b T) int, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(strings.Compare).(func(a, b T) int), nil
	case int:
		return any(cmp.Compare[int]).(func(a, b T) int), nil
	case float64:
		return any(cmp.Compare[float64]).(func(a, b T) int), nil
	case interface{ Compare(T) int }:
		return func(a, b T) int {
			return any(a).(interface{ Compare(T) int }).Compare(b)
		}, nil
	}

	typ := reflect.TypeFor[T]()
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, nil
	case reflect.String:
		return func(a, b T) int {
			return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNoOrdering, typ)
}
