// Package color provides configuration for coloring diff lines using ANSI escape sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents deleted lines in bold red:
//
//	Deletes(1, 31)
//
// This is equivalent to the following raw ANSI sequence: \033[1;31m.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"znkr.io/listdiff/internal/config"
)

// A Option makes it possible to configure custom colors in [TerminalColors].
//
// [TerminalColors]: https://pkg.go.dev/znkr.io/listdiff/textdiff#TerminalColors
type Option func(*config.ColorConfig)

// Deletes colors deleted lines.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors inserted lines.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

func format(params []int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
