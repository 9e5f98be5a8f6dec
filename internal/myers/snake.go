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

package myers

// Direction is the search direction in which a [Snake] was found.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Direction
type Direction int

const (
	Forward Direction = iota // The non-diagonal step precedes the diagonal run.
	Reverse                  // The diagonal run precedes the non-diagonal step.
)

// Point is a vertex in the edit graph. X indexes into the original sequence and Y into the edited
// sequence.
type Point struct {
	X, Y int
}

// Snake is a segment of a path through the edit graph. It consists of at most one non-diagonal
// step and a, possibly empty, run of diagonals:
//
//   - Forward:  Start -> (step) -> Mid -> (diagonals) -> End
//   - Reverse:  Start -> (diagonals) -> Mid -> (step) -> End
//
// D is the number of edit operations of the optimal path through the subproblem in which the
// snake was found.
type Snake struct {
	Start, Mid, End Point
	Direction       Direction
	D               int
}

// Step returns the endpoints of the non-diagonal step of the snake. If the snake has no such step,
// from and to are identical.
func (s Snake) Step() (from, to Point) {
	if s.Direction == Forward {
		return s.Start, s.Mid
	}
	return s.Mid, s.End
}
