package drawtest

import (
	"github.com/mattn/go-runewidth"

	"github.com/rjkroege/edframe/draw"
)

var _ = draw.Font((*cellFont)(nil))

// cellFont measures runes in terminal cells: wide East Asian runes take
// two cells and combining marks none.
type cellFont struct {
	cell, height int
	cond         *runewidth.Condition
}

// NewCellFont returns a draw.Font whose advance is cell pixels per
// terminal cell.
func NewCellFont(cell, height int) draw.Font {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return &cellFont{
		cell:   cell,
		height: height,
		cond:   cond,
	}
}

func (f *cellFont) Name() string { return "cell" }
func (f *cellFont) Height() int  { return f.height }

func (f *cellFont) BytesWidth(b []byte) int { return f.StringWidth(string(b)) }

func (f *cellFont) RunesWidth(r []rune) int {
	w := 0
	for _, c := range r {
		w += f.cond.RuneWidth(c)
	}
	return w * f.cell
}

func (f *cellFont) StringWidth(s string) int {
	w := 0
	for _, c := range s {
		w += f.cond.RuneWidth(c)
	}
	return w * f.cell
}
