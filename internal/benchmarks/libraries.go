package benchmarks

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/listdiff"
	"znkr.io/listdiff/textdiff"
)

// Impl is a line diff implementation. Diff returns one line per inserted or deleted line, starting
// with '+' or '-' respectively. Other lines in the output are ignored.
type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

var Impls = []Impl{
	{
		Name: "listdiff",
		Diff: func(x, y []byte) []byte {
			return []byte(textdiff.LinesBytes(x, y).Text)
		},
	},
	{
		Name: "listdiff-limit-100",
		Diff: func(x, y []byte) []byte {
			return []byte(textdiff.LinesBytes(x, y, listdiff.Limit(100)).Text)
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) []byte {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var buf bytes.Buffer
			var s, t int
			for _, diff := range diffs {
				for _, line := range strings.SplitAfter(diff.Text, "\n") {
					if line == "" {
						continue
					}
					line = strings.TrimSuffix(line, "\n")
					switch diff.Type {
					case diffmatchpatch.DiffInsert:
						t++
						fmt.Fprintf(&buf, "+ %d %s\n", t, line)
					case diffmatchpatch.DiffDelete:
						s++
						fmt.Fprintf(&buf, "- %d %s\n", s, line)
					case diffmatchpatch.DiffEqual:
						s++
						t++
					}
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			// godebug marks lines with "+" and "-" as well, but also prints matching lines.
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var buf bytes.Buffer
			for _, ch := range changes {
				for i := range ch.Del {
					fmt.Fprintf(&buf, "- %d %s", ch.A+i+1, d.x[ch.A+i])
				}
				for i := range ch.Ins {
					fmt.Fprintf(&buf, "+ %d %s", ch.B+i+1, d.y[ch.B+i])
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
	},
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
