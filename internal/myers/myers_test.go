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

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"znkr.io/listdiff/internal/edits"
)

func TestMiddleSnake(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want Snake
	}{
		{
			name: "empty",
			x:    "",
			y:    "",
			want: Snake{Point{0, 0}, Point{0, 0}, Point{0, 0}, Reverse, 0},
		},
		{
			name: "identical",
			x:    "ab",
			y:    "ab",
			want: Snake{Point{0, 0}, Point{2, 2}, Point{2, 2}, Reverse, 0},
		},
		{
			name: "different-singletons",
			x:    "a",
			y:    "c",
			want: Snake{Point{0, 1}, Point{0, 1}, Point{1, 1}, Reverse, 2},
		},
		{
			name: "y-empty",
			x:    "a",
			y:    "",
			want: Snake{Point{0, 0}, Point{1, 0}, Point{1, 0}, Forward, 1},
		},
		{
			name: "x-empty",
			x:    "",
			y:    "abc",
			want: Snake{Point{0, 1}, Point{0, 2}, Point{0, 2}, Forward, 3},
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    "ABCABBA",
			y:    "CBABAC",
			want: Snake{Point{3, 1}, Point{3, 2}, Point{5, 4}, Forward, 5},
		},
		{
			name: "same-prefix",
			x:    "abc",
			y:    "abd",
			want: Snake{Point{2, 3}, Point{2, 3}, Point{3, 3}, Reverse, 2},
		},
		{
			name: "same-suffix",
			x:    "xab",
			y:    "yab",
			want: Snake{Point{0, 1}, Point{0, 1}, Point{1, 1}, Reverse, 2},
		},
		{
			name: "inner-match",
			x:    "axxxyyxxxb",
			y:    "cxxxzzxxxd",
			want: Snake{Point{4, 6}, Point{4, 6}, Point{5, 6}, Reverse, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MiddleSnake(split(tt.x), split(tt.y), strings.Compare)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MiddleSnake(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestSnakes(t *testing.T) {
	tests := []struct {
		name       string
		x, y       string
		want       string
		wantSnakes int
	}{
		{
			name:       "identical",
			x:          "abcadxbba",
			y:          "abcadxbba",
			want:       "MMMMMMMMM",
			wantSnakes: 1,
		},
		{
			name:       "empty",
			x:          "",
			y:          "",
			want:       "",
			wantSnakes: 0,
		},
		{
			name:       "x-empty",
			x:          "",
			y:          "abc",
			want:       "III",
			wantSnakes: 3,
		},
		{
			name:       "y-empty",
			x:          "abcadxbba",
			y:          "",
			want:       "DDDDDDDDD",
			wantSnakes: 9,
		},
		{
			name:       "ABCABBA_to_CBABAC",
			x:          "ABCABBA",
			y:          "CBABAC",
			want:       "DDMIMMDMI",
			wantSnakes: 6,
		},
		{
			name:       "abcadxbba_to_abacadbrbfza",
			x:          "abcadxbba",
			y:          "abacadbrbfza",
			want:       "MMIMMMDMIMIIM",
			wantSnakes: 8,
		},
		{
			name:       "Florian_to_Zenker",
			x:          "Florian",
			y:          "Zenker",
			want:       "IIIIDIDDMDDD",
			wantSnakes: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := split(tt.x), split(tt.y)
			chain, truncated := Snakes(x, y, -1, strings.Compare)
			if truncated {
				t.Errorf("Snakes(...) is truncated without a limit")
			}
			verifyChain(t, chain, len(x), len(y))
			if got := render(chain); got != tt.want {
				t.Errorf("Snakes(...) path is %q, want %q", got, tt.want)
			}
			if len(chain) != tt.wantSnakes {
				t.Errorf("Snakes(...) returned %d snakes, want %d", len(chain), tt.wantSnakes)
			}
		})
	}
}

func TestSnakesLimit(t *testing.T) {
	x, y := split("abcadxbba"), split("abacadbrbfza")
	tests := []struct {
		limit         int
		want          string
		wantTruncated bool
	}{
		{0, "", true},
		{1, "MMI", true},
		{2, "MMIMMMDM", true},
		{3, "MMIMMMDMIM", true},
		{4, "MMIMMMDMIMI", true},
		{5, "MMIMMMDMIMIIM", false},
		{6, "MMIMMMDMIMIIM", false},
		{-1, "MMIMMMDMIMIIM", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit=%d", tt.limit), func(t *testing.T) {
			chain, truncated := Snakes(x, y, tt.limit, strings.Compare)
			if got := render(chain); got != tt.want {
				t.Errorf("Snakes(..., %d, ...) path is %q, want %q", tt.limit, got, tt.want)
			}
			if truncated != tt.wantTruncated {
				t.Errorf("Snakes(..., %d, ...) truncated = %v, want %v", tt.limit, truncated, tt.wantTruncated)
			}
		})
	}

	t.Run("no-edits-needed", func(t *testing.T) {
		for _, in := range []string{"", "abcadxbba"} {
			chain, truncated := Snakes(split(in), split(in), 0, strings.Compare)
			if truncated {
				t.Errorf("Snakes(%q, %q, 0, ...) is truncated", in, in)
			}
			verifyChain(t, chain, len(in), len(in))
		}
	})
}

func TestEdits(t *testing.T) {
	x, y := split("ABCABBA"), split("CBABAC")
	chain, _ := Snakes(x, y, -1, strings.Compare)
	want := []edits.Edit{
		{Flag: edits.Delete, S: 0, T: 0},
		{Flag: edits.Delete, S: 1, T: 0},
		{Flag: edits.Insert, S: 3, T: 1},
		{Flag: edits.Delete, S: 5, T: 4},
		{Flag: edits.Insert, S: 7, T: 5},
	}
	if diff := cmp.Diff(want, Edits(chain)); diff != "" {
		t.Errorf("Edits(...) differs [-want,+got]:\n%s", diff)
	}
	if got := Edits(nil); got != nil {
		t.Errorf("Edits(nil) = %v, want nil", got)
	}
}

func TestSnakes_randomInputs(t *testing.T) {
	for i := range 50 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:8]), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			alphabet := 2 + rng.IntN(6)
			x := make([]int, rng.IntN(40))
			for s := range x {
				x[s] = rng.IntN(alphabet)
			}
			y := make([]int, rng.IntN(40))
			for t := range y {
				y[t] = rng.IntN(alphabet)
			}
			compare := func(a, b int) int { return a - b }

			chain, truncated := Snakes(x, y, -1, compare)
			if truncated {
				t.Fatalf("Snakes(...) is truncated without a limit")
			}
			verifyChain(t, chain, len(x), len(y))
			for _, snake := range chain {
				verifyDiagonal(t, snake, x, y)
			}
			full := Edits(chain)
			if got, want := len(full), editDistance(x, y); got != want {
				t.Fatalf("Snakes(...) found %d edits, the optimum is %d", got, want)
			}

			// Lowering the limit only ever cuts off edits at the end.
			for limit := len(full); limit >= 0; limit-- {
				chain, truncated := Snakes(x, y, limit, compare)
				got := Edits(chain)
				if len(got) != limit {
					t.Errorf("Snakes(..., %d, ...) found %d edits", limit, len(got))
				}
				if wantTruncated := limit < len(full); truncated != wantTruncated {
					t.Errorf("Snakes(..., %d, ...) truncated = %v, want %v", limit, truncated, wantTruncated)
				}
				if diff := cmp.Diff(full[:len(got)], got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Snakes(..., %d, ...) is not a prefix of the unlimited result [-want,+got]:\n%s", limit, diff)
				}
			}
		})
	}
}

func FuzzMiddleSnake(f *testing.F) {
	f.Add([]byte("ABCABBA"), []byte("CBABAC"))
	f.Add([]byte(""), []byte("abc"))
	f.Add([]byte("abc"), []byte(""))
	compare := func(a, b byte) int { return int(a) - int(b) }
	f.Fuzz(func(t *testing.T, x, y []byte) {
		snake := MiddleSnake(x, y, compare)
		for _, p := range []Point{snake.Start, snake.Mid, snake.End} {
			if p.X < 0 || p.X > len(x) || p.Y < 0 || p.Y > len(y) {
				t.Fatalf("snake %+v is outside of the edit graph", snake)
			}
		}
		verifyDiagonal(t, snake, x, y)
		from, to := snake.Step()
		steps := (to.X - from.X) + (to.Y - from.Y)
		if snake.D == 0 && steps != 0 || snake.D > 0 && steps != 1 {
			t.Errorf("snake %+v with D=%d has %d steps", snake, snake.D, steps)
		}
		if (snake.D-(len(x)-len(y)))%2 != 0 {
			t.Errorf("snake %+v has wrong parity for inputs of length %d and %d", snake, len(x), len(y))
		}
	})
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

// render returns the path along a chain of snakes with D for deletions, I for insertions and M for
// matches.
func render(chain []Snake) string {
	var sb strings.Builder
	for _, snake := range chain {
		if snake.Direction == Reverse {
			sb.WriteString(strings.Repeat("M", snake.Mid.X-snake.Start.X))
		}
		from, to := snake.Step()
		switch {
		case to.X > from.X:
			sb.WriteRune('D')
		case to.Y > from.Y:
			sb.WriteRune('I')
		}
		if snake.Direction == Forward {
			sb.WriteString(strings.Repeat("M", snake.End.X-snake.Mid.X))
		}
	}
	return sb.String()
}

func verifyChain(t *testing.T, chain []Snake, n, m int) {
	t.Helper()
	if len(chain) == 0 {
		if n != 0 || m != 0 {
			t.Errorf("empty chain for inputs of length %d and %d", n, m)
		}
		return
	}
	if got, want := chain[0].Start, (Point{0, 0}); got != want {
		t.Errorf("chain starts at %v, want %v", got, want)
	}
	if got, want := chain[len(chain)-1].End, (Point{n, m}); got != want {
		t.Errorf("chain ends at %v, want %v", got, want)
	}
	for i, snake := range chain {
		switch snake.Direction {
		case Forward:
			if snake.End.X-snake.Mid.X != snake.End.Y-snake.Mid.Y {
				t.Errorf("forward snake %d %+v is not diagonal after its mid point", i, snake)
			}
		case Reverse:
			if snake.Mid.X-snake.Start.X != snake.Mid.Y-snake.Start.Y {
				t.Errorf("reverse snake %d %+v is not diagonal before its mid point", i, snake)
			}
		}
		if i+1 < len(chain) && snake.End != chain[i+1].Start {
			t.Errorf("snake %d ends at %v but snake %d starts at %v", i, snake.End, i+1, chain[i+1].Start)
		}
	}
}

// verifyDiagonal checks that all diagonal edges in a snake are matches.
func verifyDiagonal[T comparable](t *testing.T, snake Snake, x, y []T) {
	t.Helper()
	from, to := snake.Start, snake.Mid
	if snake.Direction == Forward {
		from, to = snake.Mid, snake.End
	}
	if !slices.Equal(x[from.X:to.X], y[from.Y:to.Y]) {
		t.Errorf("snake %+v has a diagonal that doesn't match: %v vs %v", snake, x[from.X:to.X], y[from.Y:to.Y])
	}
}

// editDistance computes the number of edits using the textbook quadratic LCS algorithm.
func editDistance[T comparable](x, y []T) int {
	lcs := make([][]int, len(x)+1)
	for s := range lcs {
		lcs[s] = make([]int, len(y)+1)
	}
	for s := range x {
		for t := range y {
			if x[s] == y[t] {
				lcs[s+1][t+1] = lcs[s][t] + 1
			} else {
				lcs[s+1][t+1] = max(lcs[s][t+1], lcs[s+1][t])
			}
		}
	}
	return len(x) + len(y) - 2*lcs[len(x)][len(y)]
}
