// Package pos maps byte offsets in a source document to line/column
// positions for error messages.
package pos

import (
	"fmt"
	"sort"
	"strconv"
)

// Doc indexes the newlines of a source document so offsets can be
// resolved to line/column pairs lazily, only when an error is printed.
type Doc struct {
	d []byte
	n []int
}

func NewDoc(d []byte) *Doc {
	doc := &Doc{d: d}
	for i, b := range d {
		if b == '\n' {
			doc.n = append(doc.n, i)
		}
	}
	return doc
}

// LineCol returns the zero-based line and column of off.
func (p *Doc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *Doc) At(off int) *Pos {
	if off > len(p.d) {
		off = len(p.d)
	}
	if off < 0 {
		off = 0
	}
	return &Pos{I: off, D: p}
}

type Pos struct {
	I int
	D *Doc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-8):min(p.I+8, len(p.D.d))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
