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

package main

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v2"
	"znkr.io/listdiff"
	"znkr.io/listdiff/textdiff"
	"znkr.io/listdiff/textdiff/color"
)

// ErrUnsupportedConfigVersion is returned for config files written for a newer version of listdiff.
var ErrUnsupportedConfigVersion = errors.New("unsupported config version")

// Config holds the defaults read from a config file. Flags given on the command line take
// precedence.
type Config struct {
	Version     int          `yaml:"version"`
	Limit       *int         `yaml:"limit"`
	Presorted   bool         `yaml:"presorted"`
	IgnoreSpace bool         `yaml:"ignoreSpace"`
	IgnoreCase  bool         `yaml:"ignoreCase"`
	Color       bool         `yaml:"color"`
	Colors      ConfigColors `yaml:"colors"`
}

// ConfigColors contains SGR parameters for colored output, e.g. [1, 31] for bold red.
type ConfigColors struct {
	Delete []int `yaml:"delete"`
	Insert []int `yaml:"insert"`
}

// ConfigLoadReader reads the config from an io.Reader
func ConfigLoadReader(r io.Reader) (*Config, error) {
	c := &Config{}
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if c.Version > 1 {
		return c, ErrUnsupportedConfigVersion
	}
	return c, nil
}

// ConfigLoadFile loads the config from a specified filename
func ConfigLoadFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ConfigLoadReader(file)
}

// apply merges the config file defaults into the command line flags.
func (c *Config) apply(flags *cli) {
	if c.Limit != nil && flags.Limit < 0 {
		flags.Limit = *c.Limit
	}
	flags.Presorted = flags.Presorted || c.Presorted
	flags.IgnoreSpace = flags.IgnoreSpace || c.IgnoreSpace
	flags.IgnoreCase = flags.IgnoreCase || c.IgnoreCase
	flags.Color = flags.Color || c.Color
}

// colors returns the color options for textdiff.TerminalColors.
func (c *Config) colors() []color.Option {
	var opts []color.Option
	if len(c.Colors.Delete) > 0 {
		opts = append(opts, color.Deletes(c.Colors.Delete...))
	}
	if len(c.Colors.Insert) > 0 {
		opts = append(opts, color.Inserts(c.Colors.Insert...))
	}
	return opts
}

// options returns the diff options selected by the flags.
func (flags *cli) options(cfg *Config) []listdiff.Option {
	opts := []listdiff.Option{listdiff.Limit(flags.Limit)}
	if flags.Presorted {
		opts = append(opts, listdiff.Presorted())
	}
	if flags.Numeric {
		return opts
	}
	if flags.IgnoreSpace {
		opts = append(opts, textdiff.IgnoreSpace())
	}
	if flags.IgnoreCase {
		opts = append(opts, textdiff.IgnoreCase())
	}
	if flags.Color {
		opts = append(opts, textdiff.TerminalColors(cfg.colors()...))
	}
	return opts
}
