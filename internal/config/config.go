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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// listdiff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Limit is the maximum number of edit operations to report. Negative values disable the limit.
	Limit int

	// If set, the inputs are sorted and can be compared with a linear merge.
	Presorted bool

	// If set, textdiff ignores leading and trailing white space when comparing lines.
	IgnoreSpace bool

	// If set, textdiff compares lines case insensitively.
	IgnoreCase bool

	// Colors for rendered diff lines, no colors are used if nil.
	Color *ColorConfig
}

// ColorConfig contains the ANSI escape sequences to use for rendered diff lines.
type ColorConfig struct {
	Delete string
	Insert string
}

// DefaultColors is the color configuration used when colors are enabled without further options.
var DefaultColors = ColorConfig{
	Delete: "\033[31m",
	Insert: "\033[32m",
}

// Reset is the ANSI escape sequence that resets all colors.
const Reset = "\033[0m"

// Default is the default configuration.
var Default = Config{
	Limit:       -1,
	Presorted:   false,
	IgnoreSpace: false,
	IgnoreCase:  false,
	Color:       nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Limit Flag = 1 << iota
	Presorted
	IgnoreSpace
	IgnoreCase
	Color
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Limit:
		return "listdiff.Limit"
	case Presorted:
		return "listdiff.Presorted"
	case IgnoreSpace:
		return "textdiff.IgnoreSpace"
	case IgnoreCase:
		return "textdiff.IgnoreCase"
	case Color:
		return "textdiff.TerminalColors"
	default:
		panic("never reached")
	}
}
