package lsdiff

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/lsx"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Line is one line of canonical LSX output attributed to one side of
// the diff or both.
type Line struct {
	Op   Op
	Text string
}

// Diff compares two documents by their canonical LSX encodings,
// line-aligned. Two structurally equal documents diff to all-Equal
// lines regardless of which encoding they were decoded from.
func Diff(from, to *ir.Document) ([]Line, error) {
	a, err := canonical(from)
	if err != nil {
		return nil, err
	}
	b, err := canonical(to)
	if err != nil {
		return nil, err
	}
	dmp := diffpatch.New()
	ca, cb, arr := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	diffs = dmp.DiffCharsToLines(diffs, arr)
	var res []Line
	for i := range diffs {
		d := &diffs[i]
		op := Equal
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, ln := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res, nil
}

// Changed reports whether lines contains any non-Equal line.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Format writes lines with -/+ prefixes, colorized when colors is set.
func Format(w io.Writer, lines []Line, colors bool) error {
	for i := range lines {
		ln := &lines[i]
		var out string
		switch ln.Op {
		case Delete:
			out = "-" + ln.Text
			if colors {
				out = color.RedString("%s", out)
			}
		case Insert:
			out = "+" + ln.Text
			if colors {
				out = color.GreenString("%s", out)
			}
		default:
			out = " " + ln.Text
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func canonical(doc *ir.Document) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := lsx.Encode(doc, buf, lsx.EncodeProlog(false)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
