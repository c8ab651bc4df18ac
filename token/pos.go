package token

import (
	"fmt"
	"sort"
	"strconv"
)

// Doc maps byte offsets in one source text to 1-based line and column
// numbers through a table of newline offsets.
type Doc struct {
	d []byte
	n []int
}

func NewDoc(d []byte) *Doc {
	doc := &Doc{d: d}
	for i, c := range d {
		if c == '\n' {
			doc.n = append(doc.n, i)
		}
	}
	return doc
}

func (c *Doc) Bytes() []byte { return c.d }

// LineCol returns the 1-based line and column of the byte offset.
func (c *Doc) LineCol(off int) (int, int) {
	N := len(c.n)
	di := sort.Search(N, func(i int) bool {
		return c.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - c.n[di-1]
}

func (c *Doc) Pos(off int) *Pos {
	return &Pos{Off: off, Doc: c}
}

type Pos struct {
	Off int
	Doc *Doc
}

func (p *Pos) LineCol() (int, int) {
	return p.Doc.LineCol(p.Off)
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
	d := p.Doc.d
	lo := p.Off - 5
	if lo < 0 {
		lo = 0
	}
	hi := p.Off + 5
	if hi > len(d) {
		hi = len(d)
	}
	sample := strconv.Quote(string(d[lo:hi]))
	sample = sample[1 : len(sample)-1]
	l, c := p.LineCol()
	return fmt.Sprintf("`...%s...` at %d:%d", sample, l, c)
}
