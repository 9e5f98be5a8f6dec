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

	"znkr.io/listdiff/internal/config"
	"znkr.io/listdiff/internal/impl"
	"znkr.io/listdiff/internal/myers"
)

// Point is a position in the edit graph of two sequences x and y. X is an index into x, Y an index
// into y.
type Point = myers.Point

// Snake is a single step through the edit graph followed by a run of matching elements.
type Snake = myers.Snake

// Direction tells in which order the step and the diagonal of a [Snake] are taken.
type Direction = myers.Direction

const (
	Forward = myers.Forward // The step comes first, followed by the diagonal.
	Reverse = myers.Reverse // The diagonal comes first, followed by the step.
)

// Facts is the result of a comparison.
type Facts[T any] struct {
	// Elements inserted from the edited sequence, in edit script order.
	Insertions []T
	// Elements deleted from the original sequence, in edit script order.
	Deletions []T
	// One line per edit operation, e.g. "- 6 x" for a deletion of x at position 6 in the original
	// or "+ 3 a" for an insertion of a at position 3 in the edited sequence. Positions are 1-based.
	// Lines are separated by newlines, there is no trailing newline.
	Text string
	// Set if the edit script needed more operations than allowed by [Limit]. Insertions,
	// Deletions and Text then only describe a prefix of the edit script.
	Truncated bool
}

// Diff compares the contents of x and y and returns the insertions and deletions necessary to
// convert from one to the other.
//
// If x and y are identical, the output is the zero value.
//
// The following options are supported: [listdiff.Limit], [listdiff.Presorted]
func Diff[T cmp.Ordered](x, y []T, opts ...Option) Facts[T] {
	return DiffFunc(x, y, cmp.Compare[T], opts...)
}

// DiffFunc compares the contents of x and y using the provided comparison function and returns the
// insertions and deletions necessary to convert from one to the other.
//
// Two elements a and b match if compare(a, b) == 0. The sign of the comparison is only used with
// [Presorted].
//
// The following options are supported: [listdiff.Limit], [listdiff.Presorted]
func DiffFunc[T any](x, y []T, compare func(a, b T) int, opts ...Option) Facts[T] {
	cfg := config.FromOptions(opts, config.Limit|config.Presorted)
	return diff(x, y, compare, cfg)
}

func diff[T any](x, y []T, compare func(a, b T) int, cfg config.Config) Facts[T] {
	es, truncated := impl.Diff(x, y, compare, cfg)
	insertions, deletions, text := impl.Render(x, y, es, cfg)
	return Facts[T]{
		Insertions: insertions,
		Deletions:  deletions,
		Text:       text,
		Truncated:  truncated,
	}
}

// Snakes compares the contents of x and y and returns the chain of snakes that describes the edit
// script.
//
// The chain starts at (0, 0), ends at (len(x), len(y)) and every snake starts where the previous
// one ended. If x and y are both empty, the chain is empty. If the edit script is truncated by
// [Limit], the chain stops after the last allowed edit operation.
//
// The following option is supported: [listdiff.Limit]
func Snakes[T cmp.Ordered](x, y []T, opts ...Option) []Snake {
	return SnakesFunc(x, y, cmp.Compare[T], opts...)
}

// SnakesFunc is like [Snakes] but uses the provided comparison function to match elements.
//
// The following option is supported: [listdiff.Limit]
func SnakesFunc[T any](x, y []T, compare func(a, b T) int, opts ...Option) []Snake {
	cfg := config.FromOptions(opts, config.Limit)
	chain, _ := myers.Snakes(x, y, cfg.Limit, compare)
	return chain
}

// MiddleSnake returns the middle snake of the shortest edit script from x to y. The D field of the
// result is the length of the shortest edit script.
func MiddleSnake[T cmp.Ordered](x, y []T) Snake {
	return myers.MiddleSnake(x, y, cmp.Compare[T])
}

// MiddleSnakeFunc is like [MiddleSnake] but uses the provided comparison function to match
// elements.
func MiddleSnakeFunc[T any](x, y []T, compare func(a, b T) int) Snake {
	return myers.MiddleSnake(x, y, compare)
}
