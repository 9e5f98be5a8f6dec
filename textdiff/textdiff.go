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

// Package textdiff provides functions to compare text line by line.
package textdiff

import (
	"strings"

	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/byteview"
	"znkr.io/listdiff/internal/config"
	"znkr.io/listdiff/internal/impl"
)

const allowed = config.Limit | config.Presorted | config.IgnoreSpace | config.IgnoreCase | config.Color

// Lines compares the lines in x and y and returns the lines that need to be inserted and deleted
// to convert from one to the other.
//
// Lines are separated by '\n' and don't include it. A final newline does not start another line,
// "a\n" and "a" both consist of the single line "a".
//
// The following options are supported: [listdiff.Limit], [listdiff.Presorted],
// [textdiff.IgnoreSpace], [textdiff.IgnoreCase], [textdiff.TerminalColors]
func Lines(x, y string, opts ...listdiff.Option) listdiff.Facts[string] {
	return lines(x, y, opts)
}

// LinesBytes is like [Lines] but for []byte inputs. The lines in the result share memory with x
// and y and must not be modified.
//
// The following options are supported: [listdiff.Limit], [listdiff.Presorted],
// [textdiff.IgnoreSpace], [textdiff.IgnoreCase], [textdiff.TerminalColors]
func LinesBytes(x, y []byte, opts ...listdiff.Option) listdiff.Facts[[]byte] {
	return lines(x, y, opts)
}

func lines[T string | []byte](x, y T, opts []listdiff.Option) listdiff.Facts[T] {
	cfg := config.FromOptions(opts, allowed)

	xlines := byteview.SplitLines(byteview.From(x))
	ylines := byteview.SplitLines(byteview.From(y))

	es, truncated := impl.Diff(keys(xlines, cfg), keys(ylines, cfg), strings.Compare, cfg)
	insertions, deletions, text := impl.Render(xlines, ylines, es, cfg)
	return listdiff.Facts[T]{
		Insertions: byteview.ToSlice[T](insertions),
		Deletions:  byteview.ToSlice[T](deletions),
		Text:       text,
		Truncated:  truncated,
	}
}

// keys returns the lines in the form they are compared in.
func keys(lines []byteview.ByteView, cfg config.Config) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		s := line.String()
		if cfg.IgnoreSpace {
			s = strings.TrimSpace(s)
		}
		if cfg.IgnoreCase {
			s = strings.ToLower(s)
		}
		out[i] = s
	}
	return out
}
