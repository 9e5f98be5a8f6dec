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

// Package impl selects the algorithm for a comparison and renders its result.
package impl

import (
	"fmt"
	"strconv"
	"strings"

	"znkr.io/listdiff/internal/config"
	"znkr.io/listdiff/internal/edits"
	"znkr.io/listdiff/internal/merge"
	"znkr.io/listdiff/internal/myers"
)

// Markers for rendered lines.
const (
	DeleteMarker = '-'
	InsertMarker = '+'
)

// Diff compares the contents of x and y and returns the edit operations necessary to convert from
// one to the other.
//
// Sorted inputs (cfg.Presorted) are compared with a linear merge, which never truncates. All other
// inputs are compared with Myers' algorithm and at most cfg.Limit edit operations are returned.
func Diff[T any](x, y []T, compare func(a, b T) int, cfg config.Config) (es []edits.Edit, truncated bool) {
	if cfg.Presorted {
		return merge.Merge(x, y, compare), false
	}
	chain, truncated := myers.Snakes(x, y, cfg.Limit, compare)
	return myers.Edits(chain), truncated
}

// Render collects the inserted and deleted elements and renders one line per edit operation.
//
// A line consists of a marker, the 1-based position of the element in x (for deletions) or y (for
// insertions) and the element itself, e.g. "- 6 x". Lines are separated by a newline character.
func Render[T any](x, y []T, es []edits.Edit, cfg config.Config) (insertions, deletions []T, text string) {
	nd, ni := edits.Counts(es)
	if nd > 0 {
		deletions = make([]T, 0, nd)
	}
	if ni > 0 {
		insertions = make([]T, 0, ni)
	}

	var sb strings.Builder
	for i, e := range es {
		if i > 0 {
			sb.WriteByte('\n')
		}
		var (
			marker byte
			pos    int
			v      T
			color  string
		)
		switch e.Flag {
		case edits.Delete:
			marker, pos, v = DeleteMarker, e.S, x[e.S]
			deletions = append(deletions, v)
			if cfg.Color != nil {
				color = cfg.Color.Delete
			}
		case edits.Insert:
			marker, pos, v = InsertMarker, e.T, y[e.T]
			insertions = append(insertions, v)
			if cfg.Color != nil {
				color = cfg.Color.Insert
			}
		default:
			panic(fmt.Sprintf("unexpected edit: %v", e.Flag))
		}

		sb.WriteString(color)
		sb.WriteByte(marker)
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(pos + 1))
		sb.WriteByte(' ')
		sb.WriteString(format(v))
		if color != "" {
			sb.WriteString(config.Reset)
		}
	}
	return insertions, deletions, sb.String()
}

func format[T any](v T) string {
	if s, ok := any(v).(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
