package frame

import (
	"fmt"
	"image"

	"github.com/rjkroege/edframe/draw"
)

// tmpsize bounds the number of runes in a box made by bxscan.
const tmpsize = 256

// bxscan lays out r as the boxes of an auxiliary frame with the geometry
// of f, starting at *ppt. Scanning stops once more than maxlines
// newlines have been seen. *ppt is moved to where the first box will be
// drawn; the returned point is the end of the layout.
func (f *frameimpl) bxscan(r []rune, ppt *image.Point) (image.Point, *frameimpl) {
	auxf := &frameimpl{
		rect:              f.rect,
		background:        f.background,
		display:           f.display,
		font:              f.font,
		maxtab:            f.maxtab,
		cols:              f.cols,
		defaultfontheight: f.defaultfontheight,
		maxlines:          f.maxlines,
		noredraw:          f.noredraw,
		box:               f.aux[:0],
	}

	// The boxes share one copy of r.
	rs := make([]rune, len(r))
	copy(rs, r)

	spacewidth := f.font.StringWidth(" ")
	nl := 0
	for i := 0; i < len(rs) && nl <= f.maxlines; {
		c := rs[i]
		if c == '\t' || c == '\n' {
			b := frbox{
				Bc:    c,
				Wid:   5000,
				Nrune: -1,
			}
			if c == '\t' {
				b.Minwid = spacewidth
			} else {
				nl++
			}
			auxf.box = append(auxf.box, b)
			auxf.nchars++
			i++
			continue
		}

		j := i
		w := 0
		for j < len(rs) && j-i < tmpsize {
			c := rs[j]
			if c == '\t' || c == '\n' {
				break
			}
			w += f.font.RunesWidth(rs[j : j+1])
			j++
		}
		auxf.box = append(auxf.box, frbox{
			R:     rs[i:j:j],
			Wid:   w,
			Nrune: j - i,
		})
		auxf.nchars += j - i
		i = j
	}

	if len(auxf.box) > 0 {
		f.cklinewrap0(ppt, &auxf.box[0])
	}
	return auxf.draw(*ppt), auxf
}

// draw lays out the boxes of f starting at pt, splitting text boxes at
// line ends and resolving break box widths. Boxes that fall off the
// bottom are dropped. It returns the end point.
func (f *frameimpl) draw(pt image.Point) image.Point {
	for nb := 0; nb < len(f.box); nb++ {
		f.cklinewrap0(&pt, &f.box[nb])
		if pt.Y >= f.rect.Max.Y {
			f.nchars -= f.strlen(nb)
			f.delbox(nb, len(f.box)-1)
			break
		}
		b := &f.box[nb]
		if b.Nrune > 0 {
			n := f.canfit(pt, b)
			if n == 0 {
				break
			}
			if n != b.Nrune {
				f.splitbox(nb, n)
				b = &f.box[nb]
			}
			pt.X += b.Wid
		} else {
			if b.Bc == '\n' {
				pt.X = f.rect.Min.X
				pt.Y += f.defaultfontheight
			} else {
				pt.X += f.newwid(pt, b)
			}
		}
	}
	return pt
}

// chop truncates the frame at the first box, starting from box bn at pt
// and character p, that would be drawn below the frame.
func (f *frameimpl) chop(pt image.Point, p, bn int) {
	for ; ; bn++ {
		if bn >= len(f.box) {
			f.Logboxes("-- chop: end of frame --")
			panic("frame.chop: end of frame")
		}
		b := &f.box[bn]
		f.cklinewrap(&pt, b)
		if pt.Y >= f.rect.Max.Y {
			break
		}
		p += nrune(b)
		f.advance(&pt, b)
	}
	f.nchars = p
	f.nlines = f.maxlines
	f.delbox(bn, len(f.box)-1)
}

// drawtext draws the text boxes of f from pt.
func (f *frameimpl) drawtext(pt image.Point, text, back draw.Image) {
	for nb := range f.box {
		b := &f.box[nb]
		f.cklinewrap(&pt, b)
		if !f.noredraw && b.Nrune >= 0 {
			f.background.RunesBg(pt, text, image.Point{}, f.font, b.R, back, image.Point{})
		}
		pt.X += b.Wid
	}
}

type insertpts struct {
	pt0, pt1 image.Point
}

// Insert inserts r into the frame at character p0, redrawing only what
// moved. It reports whether text fell off the bottom of the frame.
func (f *frameimpl) Insert(r []rune, p0 int) bool {
	if p0 > f.nchars {
		panic(fmt.Sprint("frame.Insert: p0 ", p0, " beyond nchars ", f.nchars))
	}
	if len(r) == 0 || f.background == nil {
		return false
	}
	f.validateboxmodel("frame.Insert before, p0 %d %q", p0, string(r))
	defer f.validateboxmodel("frame.Insert after, p0 %d %q", p0, string(r))

	n0 := f.findbox(0, 0, p0)
	cn0 := p0
	nn0 := n0
	pt0 := f.ptofcharnb(p0, n0)
	ppt0 := pt0
	opt0 := pt0
	pt1, auxf := f.bxscan(r, &ppt0)
	ppt1 := pt1

	if n0 < len(f.box) {
		f.cklinewrap(&pt0, &f.box[n0]) // for drawsel
		f.cklinewrap0(&ppt1, &f.box[n0])
	}
	f.modified = true

	// ppt0 and ppt1 are the start and end of the insertion as they will
	// appear when the insertion is complete. pt0 is the current location
	// of the insertion position (p0); pt1 is the terminal point (without
	// line wrap) of the insertion.
	if f.sp0 == f.sp1 {
		f.Tick(f.ptofchar(f.sp0), false)
	}

	// Find the point where the old and new x's line up.
	// Invariants:
	//	pt0 is where the next box (b, n0) is now
	//	pt1 is where it will be after the insertion
	// If pt1 goes off the rectangle, everything from there on can be tossed.
	pts := make([]insertpts, 0, 25)
	for ; pt1.X != pt0.X && pt1.Y != f.rect.Max.Y && n0 < len(f.box); n0++ {
		f.cklinewrap(&pt0, &f.box[n0])
		f.cklinewrap0(&pt1, &f.box[n0])
		if f.box[n0].Nrune > 0 {
			n := f.canfit(pt1, &f.box[n0])
			if n == 0 {
				panic("frame.Insert: canfit == 0")
			}
			if n != f.box[n0].Nrune {
				f.splitbox(n0, n)
			}
		}
		// Has a text box overflowed off the frame?
		if pt1.Y >= f.rect.Max.Y {
			break
		}
		b := &f.box[n0]
		pts = append(pts, insertpts{pt0: pt0, pt1: pt1})
		f.advance(&pt0, b)
		pt1.X += f.newwid(pt1, b)
		cn0 += nrune(b)
	}

	if pt1.Y > f.rect.Max.Y {
		panic("frame.Insert: pt1 too far")
	}
	if pt1.Y == f.rect.Max.Y && n0 < len(f.box) {
		f.nchars -= f.strlen(n0)
		f.delbox(n0, len(f.box)-1)
	}
	h := f.defaultfontheight
	if n0 == len(f.box) {
		div := (pt1.Y - f.rect.Min.Y) / h
		if pt1.X > f.rect.Min.X {
			div++
		}
		f.nlines = div
	} else if pt1.Y != pt0.Y {
		y := f.rect.Max.Y
		y0 := pt0.Y + h
		y1 := pt1.Y + h
		f.nlines += (y1 - y0) / h
		if f.nlines > f.maxlines {
			f.chop(ppt1, p0, nn0)
		}
		if pt1.Y < y && !f.noredraw {
			rect := f.rect
			rect.Min.Y = y1
			rect.Max.Y = y
			if y1 < y {
				f.background.Draw(rect, f.background, nil, image.Pt(f.rect.Min.X, y0))
			}
			rect.Min = pt1
			rect.Max.X = pt1.X + (f.rect.Max.X - pt0.X)
			rect.Max.Y = y1
			f.background.Draw(rect, f.background, nil, pt0)
		}
	}

	// Move the old stuff down to make room. The loop moves the stuff
	// between the insertion and the point where the x's lined up. The
	// draws above moved everything after that point.
	y := 0
	if pt1.Y == f.rect.Max.Y {
		y = pt1.Y
	}
	for npts := len(pts) - 1; npts >= 0; npts-- {
		b := &f.box[n0-len(pts)+npts]
		pt := pts[npts].pt1
		if b.Nrune > 0 {
			if !f.noredraw {
				rect := image.Rectangle{pt, pt.Add(image.Pt(b.Wid, h))}
				f.background.Draw(rect, f.background, nil, pts[npts].pt0)
				// Clear the bit hanging off the right.
				if npts == 0 && pt.Y > pt0.Y {
					// The first new char is bigger than the first char
					// displaced, causing a line wrap.
					rect = image.Rect(opt0.X, opt0.Y, f.rect.Max.X, opt0.Y+h)
					f.background.Draw(rect, f.selcolor(cn0), nil, rect.Min)
				} else if pt.Y < y {
					rect = image.Rect(pt.X+b.Wid, pt.Y, f.rect.Max.X, pt.Y+h)
					f.background.Draw(rect, f.selcolor(cn0), nil, rect.Min)
				}
			}
			y = pt.Y
			cn0 -= b.Nrune
		} else {
			rect := image.Rectangle{pt, pt.Add(image.Pt(b.Wid, h))}
			if rect.Max.X >= f.rect.Max.X {
				rect.Max.X = f.rect.Max.X
			}
			cn0--
			if !f.noredraw {
				f.background.Draw(rect, f.selcolor(cn0), nil, rect.Min)
			}
			y = 0
			if pt.X == f.rect.Min.X {
				y = pt.Y
			}
		}
	}

	// Insertion can extend the selection, so the condition here differs.
	col, tcol := f.cols[ColBack], f.cols[ColText]
	if f.sp0 < p0 && p0 <= f.sp1 {
		col, tcol = f.cols[ColHigh], f.cols[ColHText]
	}
	if !f.noredraw {
		f.SelectPaint(ppt0, ppt1, col)
		auxf.drawtext(ppt0, tcol, col)
	}

	nbox := len(auxf.box)
	f.addbox(nn0, nbox)
	copy(f.box[nn0:], auxf.box)
	for i := range auxf.box {
		auxf.box[i] = frbox{}
	}
	f.aux = auxf.box[:0]

	if nn0 > 0 && f.box[nn0-1].Nrune >= 0 && ppt0.X-f.box[nn0-1].Wid >= f.rect.Min.X {
		nn0--
		ppt0.X -= f.box[nn0].Wid
	}
	n0 += nbox
	if n0 < len(f.box)-1 {
		f.clean(ppt0, nn0, n0+1)
	} else {
		f.clean(ppt0, nn0, n0)
	}

	f.nchars += auxf.nchars
	if f.sp0 >= p0 {
		f.sp0 += auxf.nchars
	}
	if f.sp0 > f.nchars {
		f.sp0 = f.nchars
	}
	if f.sp1 >= p0 {
		f.sp1 += auxf.nchars
	}
	if f.sp1 > f.nchars {
		f.sp1 = f.nchars
	}
	if f.sp0 == f.sp1 {
		f.Tick(f.ptofchar(f.sp0), true)
	}
	return f.lastlinefull
}

// selcolor returns the background colour of character p.
func (f *frameimpl) selcolor(p int) draw.Image {
	if f.sp0 <= p && p < f.sp1 {
		return f.cols[ColHigh]
	}
	return f.cols[ColBack]
}
