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

// listdiff compares two files line by line and prints the lines that need to be inserted and
// deleted to turn the original into the edited file.
//
// Usage:
//
//	listdiff [flags] <original> <edited>
//
// Every reported line has the form "- <line> <text>" for a deletion from the original file or
// "+ <line> <text>" for an insertion from the edited file. The exit status is 0 if the files are
// equal, 1 if they differ and 2 if an error occurred.
//
// Defaults for the flags can be stored in a YAML file passed with --config:
//
//	version: 1
//	limit: 100
//	ignoreSpace: true
//	color: true
//	colors:
//	  delete: [1, 31]
//	  insert: [1, 32]
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"znkr.io/listdiff"
	"znkr.io/listdiff/textdiff"
)

type cli struct {
	Original    string `arg:"" help:"Original file."`
	Edited      string `arg:"" help:"Edited file."`
	Limit       int    `short:"l" default:"-1" help:"Maximum number of edit operations to report, negative values disable the limit."`
	Presorted   bool   `help:"Both files are sorted, compare them with a linear merge."`
	IgnoreSpace bool   `short:"b" help:"Ignore leading and trailing white space."`
	IgnoreCase  bool   `short:"i" help:"Ignore letter case."`
	Color       bool   `help:"Color the output using ANSI escape sequences."`
	Numeric     bool   `short:"n" help:"Compare lines as floating point numbers."`
	Config      string `short:"c" help:"YAML file with default settings."`
	Verbosity   string `short:"v" default:"warning" help:"Log level (debug, info, warning, error)."`
}

func main() {
	differ, err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	case differ:
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) (differ bool, err error) {
	var flags cli
	parser, err := kong.New(&flags,
		kong.Name("listdiff"),
		kong.Description("Compare two files line by line."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return false, err
	}
	if _, err := parser.Parse(args); err != nil {
		return false, err
	}

	log := &logrus.Logger{
		Out:       stderr,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.WarnLevel,
	}
	lvl, err := logrus.ParseLevel(flags.Verbosity)
	if err != nil {
		return false, fmt.Errorf("invalid verbosity: %w", err)
	}
	log.SetLevel(lvl)

	cfg := &Config{}
	if flags.Config != "" {
		cfg, err = ConfigLoadFile(flags.Config)
		if err != nil {
			return false, fmt.Errorf("loading config %s: %w", flags.Config, err)
		}
		log.WithFields(logrus.Fields{
			"file":    flags.Config,
			"version": cfg.Version,
		}).Debug("Loaded config")
		cfg.apply(&flags)
	}

	original, err := os.ReadFile(flags.Original)
	if err != nil {
		return false, fmt.Errorf("reading original file: %w", err)
	}
	edited, err := os.ReadFile(flags.Edited)
	if err != nil {
		return false, fmt.Errorf("reading edited file: %w", err)
	}

	opts := flags.options(cfg)
	var (
		text                  string
		insertions, deletions int
		truncated             bool
	)
	if flags.Numeric {
		if flags.Color || flags.IgnoreCase {
			log.WithFields(logrus.Fields{
				"color":      flags.Color,
				"ignoreCase": flags.IgnoreCase,
			}).Warn("Options are ignored for numeric comparisons")
		}
		facts, err := numeric(original, edited, opts)
		if err != nil {
			return false, err
		}
		text, insertions, deletions, truncated = facts.Text, len(facts.Insertions), len(facts.Deletions), facts.Truncated
	} else {
		facts := textdiff.LinesBytes(original, edited, opts...)
		text, insertions, deletions, truncated = facts.Text, len(facts.Insertions), len(facts.Deletions), facts.Truncated
	}

	log.WithFields(logrus.Fields{
		"original":   flags.Original,
		"edited":     flags.Edited,
		"insertions": insertions,
		"deletions":  deletions,
	}).Debug("Compared files")
	if truncated {
		log.WithFields(logrus.Fields{
			"limit": flags.Limit,
		}).Warn("Diff truncated, there are more differences than the limit allows")
	}

	if text != "" {
		if _, err := fmt.Fprintln(stdout, text); err != nil {
			return false, err
		}
	}
	return insertions+deletions > 0 || truncated, nil
}

// numeric compares the lines of original and edited as floating point numbers.
func numeric(original, edited []byte, opts []listdiff.Option) (listdiff.Facts[float64], error) {
	x, err := parseNumbers(original)
	if err != nil {
		return listdiff.Facts[float64]{}, fmt.Errorf("original file: %w", err)
	}
	y, err := parseNumbers(edited)
	if err != nil {
		return listdiff.Facts[float64]{}, fmt.Errorf("edited file: %w", err)
	}
	return listdiff.Request[float64]{
		Original: x,
		Edited:   y,
		Options:  opts,
	}.Diff()
}

func parseNumbers(data []byte) ([]float64, error) {
	var out []float64
	for line := range strings.Lines(string(data)) {
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", len(out)+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}
