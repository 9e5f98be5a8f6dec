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

package textdiff

import (
	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/config"
	"znkr.io/listdiff/textdiff/color"
)

// IgnoreSpace ignores leading and trailing white space when comparing lines. The result still
// reports the lines as they appear in the input.
func IgnoreSpace() listdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreSpace = true
		return config.IgnoreSpace
	}
}

// IgnoreCase compares lines without regard to letter case.
func IgnoreCase() listdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreCase = true
		return config.IgnoreCase
	}
}

// TerminalColors colors the rendered lines in [listdiff.Facts.Text] using ANSI escape sequences.
// Without further options, deletions are red and insertions are green.
func TerminalColors(opts ...color.Option) listdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cc := config.DefaultColors
		for _, opt := range opts {
			opt(&cc)
		}
		cfg.Color = &cc
		return config.Color
	}
}
