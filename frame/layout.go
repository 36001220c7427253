package frame

import (
	"image"
)

// atlinestart reports whether pt is at the left edge of the frame. At
// least one rune is always placed there, however narrow the frame.
func (f *frameimpl) atlinestart(pt image.Point) bool {
	return pt.X <= f.rect.Min.X
}

// canfit returns how many runes of box b fit on the line at pt. Break
// boxes count as one rune. Anything fits at the start of a line. A
// newline has no minimum width so it fits anywhere short of the right
// edge; past it, Insert relies on the newline wrapping.
func (f *frameimpl) canfit(pt image.Point, b *frbox) int {
	left := f.rect.Max.X - pt.X
	if b.Nrune < 0 {
		if b.Minwid <= left || f.atlinestart(pt) {
			return 1
		}
		return 0
	}
	if left >= b.Wid {
		return b.Nrune
	}
	for nr, r := range b.R {
		left -= f.font.RunesWidth([]rune{r})
		if left < 0 {
			if nr == 0 && f.atlinestart(pt) {
				return 1
			}
			return nr
		}
	}
	return b.Nrune
}

// cklinewrap moves p to the start of the next line if b is too wide to
// be drawn at p. It assumes that layout has already split boxes.
func (f *frameimpl) cklinewrap(p *image.Point, b *frbox) {
	w := b.Wid
	if b.Nrune < 0 {
		w = b.Minwid
	}
	if w > f.rect.Max.X-p.X && !f.atlinestart(*p) {
		p.X = f.rect.Min.X
		p.Y += f.defaultfontheight
	}
}

// cklinewrap0 moves p to the start of the next line unless some of b
// fits at p.
func (f *frameimpl) cklinewrap0(p *image.Point, b *frbox) {
	if f.canfit(*p, b) == 0 {
		p.X = f.rect.Min.X
		p.Y += f.defaultfontheight
	}
}

// advance moves p past box b.
func (f *frameimpl) advance(p *image.Point, b *frbox) {
	if b.Nrune < 0 && b.Bc == '\n' {
		p.X = f.rect.Min.X
		p.Y += f.defaultfontheight
	} else {
		p.X += b.Wid
	}
}

// newwid sets the width of box b drawn at pt and returns it.
func (f *frameimpl) newwid(pt image.Point, b *frbox) int {
	b.Wid = f.newwid0(pt, b)
	return b.Wid
}

// newwid0 returns the width box b would have at pt. Only tabs vary: a
// tab reaches the next tab stop but is never narrower than Minwid.
func (f *frameimpl) newwid0(pt image.Point, b *frbox) int {
	c := f.rect.Max.X
	x := pt.X
	if b.Nrune >= 0 || b.Bc != '\t' {
		return b.Wid
	}
	if x+b.Minwid > c && !f.atlinestart(pt) {
		x = f.rect.Min.X
		pt.X = x
	}
	if f.maxtab > 0 {
		x += f.maxtab
		x -= (x - f.rect.Min.X) % f.maxtab
	}
	if x-pt.X < b.Minwid || x > c {
		x = pt.X + b.Minwid
	}
	return x - pt.X
}

// clean merges adjacent text boxes in [n0, n1) that fit on one line and
// recomputes lastlinefull. pt is the position of box n0.
func (f *frameimpl) clean(pt image.Point, n0, n1 int) {
	c := f.rect.Max.X
	nb := n0
	for ; nb < n1-1; nb++ {
		f.cklinewrap(&pt, &f.box[nb])
		for f.box[nb].Nrune >= 0 && nb < n1-1 && f.box[nb+1].Nrune >= 0 && pt.X+f.box[nb].Wid+f.box[nb+1].Wid < c {
			f.mergebox(nb)
			n1--
		}
		f.advance(&pt, &f.box[nb])
	}
	for ; nb < len(f.box); nb++ {
		f.cklinewrap(&pt, &f.box[nb])
		f.advance(&pt, &f.box[nb])
	}
	f.lastlinefull = pt.Y >= f.rect.Max.Y
}

// strlen returns the number of characters in boxes nb onward.
func (f *frameimpl) strlen(nb int) int {
	n := 0
	for ; nb < len(f.box); nb++ {
		n += nrune(&f.box[nb])
	}
	return n
}

// delbox drops boxes n0 through n1 inclusive.
func (f *frameimpl) delbox(n0, n1 int) {
	if n0 >= len(f.box) || n1 < n0 {
		return
	}
	f.freebox(n0, n1)
	f.closebox(n0, n1)
}
