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

import "znkr.io/listdiff/internal/edits"

// Snakes returns the chain of snakes along an optimal path through the edit graph from (0, 0) to
// (len(x), len(y)).
//
// At most limit edit operations are part of the chain, a negative limit disables the limit. If the
// limit prevents the chain from reaching (len(x), len(y)), truncated is true and the edit
// operations in the chain are a prefix of the edit operations of the unlimited chain.
func Snakes[T any](x, y []T, limit int, compare func(a, b T) int) (chain []Snake, truncated bool) {
	if limit < 0 {
		limit = len(x) + len(y)
	}
	var m myers[T]
	m.init(x, y, compare)
	chain, _, truncated = m.snakes(0, len(x), 0, len(y), limit)
	return chain, truncated
}

// MiddleSnake returns the middle snake of an optimal path from (0, 0) to (len(x), len(y)).
func MiddleSnake[T any](x, y []T, compare func(a, b T) int) Snake {
	var m myers[T]
	m.init(x, y, compare)
	return m.middleSnake(0, len(x), 0, len(y))
}

// Edits returns the edit operations for the non-diagonal steps in chain.
func Edits(chain []Snake) []edits.Edit {
	if len(chain) == 0 {
		return nil
	}
	out := make([]edits.Edit, 0, len(chain))
	for _, snake := range chain {
		from, to := snake.Step()
		switch {
		case to.X == from.X+1 && to.Y == from.Y:
			out = append(out, edits.Edit{Flag: edits.Delete, S: from.X, T: from.Y})
		case to.X == from.X && to.Y == from.Y+1:
			out = append(out, edits.Edit{Flag: edits.Insert, S: from.X, T: from.Y})
		}
	}
	return out
}

type myers[T any] struct {
	// Inputs to compare.
	x, y []T
	eq   func(a, b T) bool

	// v-arrays for forwards and backwards iteration respectively. A v-array stores the furthest
	// reaching endpoint of a d-path in diagonal k in v[v0+k]. Diagonals are numbered k = s - t
	// for the whole input, so that v0 = len(y) translates k in [-len(y), len(x)] to an index. The
	// endpoints only store the s-coordinate since t = s - k.
	vf, vb []int
	v0     int
}

func (m *myers[T]) init(x, y []T, compare func(a, b T) int) {
	vlen := len(x) + len(y) + 1
	buf := make([]int, 2*vlen) // allocate space for vf and vb with a single allocation

	m.x = x
	m.y = y
	m.eq = func(a, b T) bool { return compare(a, b) == 0 }
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = len(y)
}

// snakes finds the chain of snakes along an optimal path from (smin, tmin) to (smax, tmax) using
// at most budget edit operations. It returns the chain, the number of edit operations in the
// chain and whether the budget ran out before (smax, tmax) was reached.
func (m *myers[T]) snakes(smin, smax, tmin, tmax, budget int) (chain []Snake, used int, truncated bool) {
	switch {
	case smin == smax && tmin == tmax:
		return nil, 0, false
	case smin == smax:
		// s is empty, therefore everything in tmin to tmax is an insertion.
		n := min(tmax-tmin, budget)
		chain = make([]Snake, n)
		for i := range chain {
			p, q := Point{smin, tmin + i}, Point{smin, tmin + i + 1}
			chain[i] = Snake{Start: p, Mid: q, End: q, Direction: Forward, D: 1}
		}
		return chain, n, n < tmax-tmin
	case tmin == tmax:
		// t is empty, therefore everything in smin to smax is a deletion.
		n := min(smax-smin, budget)
		chain = make([]Snake, n)
		for i := range chain {
			p, q := Point{smin + i, tmin}, Point{smin + i + 1, tmin}
			chain[i] = Snake{Start: p, Mid: q, End: q, Direction: Forward, D: 1}
		}
		return chain, n, n < smax-smin
	}

	if budget <= 0 {
		// Nothing left to spend, only a run of matches can still be added.
		if !m.identical(smin, smax, tmin, tmax) {
			return nil, 0, true
		}
		start, end := Point{smin, tmin}, Point{smax, tmax}
		return []Snake{{Start: start, Mid: end, End: end, Direction: Reverse}}, 0, false
	}

	mid := m.middleSnake(smin, smax, tmin, tmax)
	if mid.D == 0 {
		return []Snake{mid}, 0, false
	}

	// The middle snake divides the input into two, possibly empty, rects that are solved
	// recursively: (smin, tmin) to mid.Start and mid.End to (smax, tmax). Each recursion only gets
	// what's left of the budget, so that the result is always a prefix of the unlimited result.
	chain, used, truncated = m.snakes(smin, mid.Start.X, tmin, mid.Start.Y, budget)
	if truncated || used == budget {
		return chain, used, true
	}
	chain = append(chain, mid)
	used++

	right, rused, truncated := m.snakes(mid.End.X, smax, mid.End.Y, tmax, budget-used)
	return append(chain, right...), used + rused, truncated
}

func (m *myers[T]) identical(smin, smax, tmin, tmax int) bool {
	if smax-smin != tmax-tmin {
		return false
	}
	for s, t := smin, tmin; s < smax; s, t = s+1, t+1 {
		if !m.eq(m.x[s], m.y[t]) {
			return false
		}
	}
	return true
}

// middleSnake finds the snake in the middle of an optimal path from (smin, tmin) to (smax, tmax).
//
// If x[smin:smax] and y[tmin:tmax] are identical, the result is a single reverse snake covering
// the whole diagonal with D = 0. If both are empty, that snake has length zero.
func (m *myers[T]) middleSnake(smin, smax, tmin, tmax int) Snake {
	N, M := smax-smin, tmax-tmin
	x, y, eq := m.x, m.y, m.eq
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Bounds for k. Since t = s - k, we can determine the min and max for k using: k = s - t.
	kmin, kmax := smin-tmax, smax-tmin

	// The forwards search starts in diagonal fmid and the backwards search in bmid. Both use the
	// same numbering for k, so no conversion is needed when checking for overlap.
	fmid, bmid := smin-tmin, smax-tmax

	// We know from Corollary 1 that the optimal diff length is going to be odd or even as (N-M) is
	// odd or even. Overlaps are only checked after forwards iterations if it's odd and only after
	// backwards iterations if it's even.
	odd := (N-M)%2 != 0

	// Diagonals searched in the previous iteration.
	var pfmin, pfmax, pbmin, pbmax int

	// We know from Lemma 3 that there's an overlap for d = ⌈(N+M)/2⌉ at the latest. Therefore, we
	// can omit the loop condition and instead blindly increment d.
	for d := 0; ; d++ {
		// Forwards iteration.
		fmin, fmax := diagonals(fmid, d, kmin, kmax)
		for k := fmin; k <= fmax; k += 2 {
			// According to Lemma 2 the furthest reaching d-path on diagonal k extends the furthest
			// reaching (d-1)-path on diagonal k+1 with a vertical edge or the one on diagonal k-1
			// with a horizontal edge. Prefer the one that's further along, on a tie prefer the
			// horizontal edge (deletions before insertions). The 0-path has no such edge.
			s0, pk := smin, fmid
			if d > 0 {
				if k+1 <= pfmax && (k-1 < pfmin || vf[v0+k-1] < vf[v0+k+1]) {
					pk = k + 1
				} else {
					pk = k - 1
				}
				s0 = vf[v0+pk]
			}
			t0 := s0 - pk
			s := s0
			if pk == k-1 {
				s++
			}
			t := s - k

			// Then follow the diagonals as long as possible.
			s1, t1 := s, t
			for s1 < smax && t1 < tmax && eq(x[s1], y[t1]) {
				s1++
				t1++
			}
			vf[v0+k] = s1

			// Check for an overlap with a backwards (d-1)-path.
			if odd && d > 0 && pbmin <= k && k <= pbmax && s1 >= vb[v0+k] {
				return Snake{
					Start:     Point{s0, t0},
					Mid:       Point{s, t},
					End:       Point{s1, t1},
					Direction: Forward,
					D:         2*d - 1,
				}
			}
		}

		// Backwards iteration.
		//
		// This mirrors the forward iteration: The furthest reaching path is the one with the
		// smallest s, a vertical edge comes from diagonal k-1 and a horizontal edge from diagonal
		// k+1.
		bmin, bmax := diagonals(bmid, d, kmin, kmax)
		for k := bmin; k <= bmax; k += 2 {
			s0, pk := smax, bmid
			if d > 0 {
				if k-1 >= pbmin && (k+1 > pbmax || vb[v0+k-1] < vb[v0+k+1]) {
					pk = k - 1
				} else {
					pk = k + 1
				}
				s0 = vb[v0+pk]
			}
			t0 := s0 - pk
			s := s0
			if pk == k+1 {
				s--
			}
			t := s - k

			s1, t1 := s, t
			for s1 > smin && t1 > tmin && eq(x[s1-1], y[t1-1]) {
				s1--
				t1--
			}
			vb[v0+k] = s1

			// Check for an overlap with a forwards d-path.
			if !odd && fmin <= k && k <= fmax && s1 <= vf[v0+k] {
				return Snake{
					Start:     Point{s1, t1},
					Mid:       Point{s, t},
					End:       Point{s0, t0},
					Direction: Reverse,
					D:         2 * d,
				}
			}
		}

		pfmin, pfmax = fmin, fmax
		pbmin, pbmax = bmin, bmax
	}
}

// diagonals returns the range of diagonals to search in the d-th iteration of a search starting in
// diagonal mid. Originally, we would search k = [mid-d, mid+d] in steps of 2, but that would lead
// us to move outside the edit grid. Instead the range is limited to [kmin, kmax] while keeping the
// parity of the original bounds.
func diagonals(mid, d, kmin, kmax int) (lo, hi int) {
	lo, hi = mid-d, mid+d
	if lo < kmin {
		lo += (kmin - lo + 1) &^ 1
	}
	if hi > kmax {
		hi -= (hi - kmax + 1) &^ 1
	}
	return lo, hi
}
