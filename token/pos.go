package token

import (
	"fmt"
	"sort"
)

// PosDoc indexes the newline offsets of a document so byte offsets
// translate to line/column pairs in O(log n).
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the 1-based line and column of the byte at off.
// Offsets count raw bytes, not code points.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

func (p *PosDoc) Pos(off int) *Pos {
	return &Pos{I: off, D: p}
}

// Pos is a byte offset into a document, with enough context to
// render a line/column.
type Pos struct {
	I int
	D *PosDoc
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
	l, c := p.LineCol()
	return fmt.Sprintf("Line %d, Column %d", l, c)
}
