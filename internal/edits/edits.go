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

// Package edits contains the internal edit script representation that's produced by the
// algorithms in this module and is then translated to a user facing API.
package edits

import "fmt"

// Flag describes the kind of an edit operation.
type Flag uint8

const (
	None   Flag = 0
	Delete Flag = 1 << iota
	Insert
)

func (e Flag) String() string {
	switch e {
	case None:
		return "none"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprint(uint8(e))
	}
}

// Edit is a single edit operation at position (S, T) in the edit graph.
//
//   - For Delete, x[S] is deleted.
//   - For Insert, y[T] is inserted.
type Edit struct {
	Flag Flag
	S, T int
}

// Counts returns the number of deletions and insertions in edits.
func Counts(edits []Edit) (deletions, insertions int) {
	for _, e := range edits {
		switch e.Flag {
		case Delete:
			deletions++
		case Insert:
			insertions++
		}
	}
	return
}
