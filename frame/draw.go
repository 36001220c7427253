package frame

import (
	"fmt"
	"image"

	"github.com/rjkroege/edframe/draw"
)

// DrawSel repaints characters p0 up to p1, which start at pt, as
// selected or not. An empty range draws or removes the tick instead.
func (f *frameimpl) DrawSel(pt image.Point, p0, p1 int, issel bool) {
	if f.ticked {
		f.Tick(f.ptofchar(f.sp0), false)
	}
	if p0 == p1 {
		f.Tick(pt, issel)
		return
	}
	back, text := f.cols[ColBack], f.cols[ColText]
	if issel {
		back, text = f.cols[ColHigh], f.cols[ColHText]
	}
	f.DrawSel0(pt, p0, p1, back, text)
}

// DrawSel0 paints characters p0 up to p1, starting at pt, with text on
// back. It returns the point after the last character painted.
func (f *frameimpl) DrawSel0(pt image.Point, p0, p1 int, back, text draw.Image) image.Point {
	if p0 > p1 {
		panic(fmt.Sprint("frame.DrawSel0: p0=", p0, " > p1=", p1))
	}
	if f.background == nil || f.noredraw {
		return pt
	}
	h := f.defaultfontheight
	p := 0
	nb := 0
	trim := false
	for ; nb < len(f.box) && p < p1; nb++ {
		b := &f.box[nb]
		nr := nrune(b)
		if p+nr <= p0 {
			p += nr
			continue
		}
		if p >= p0 {
			qt := pt
			f.cklinewrap(&pt, b)
			// Fill in the end of a wrapped line.
			if pt.Y > qt.Y {
				f.background.Draw(image.Rect(qt.X, qt.Y, f.rect.Max.X, pt.Y), back, nil, qt)
			}
		}
		r := b.R
		if p < p0 {
			// Beginning of the region: advance into the box.
			r = r[p0-p:]
			nr -= p0 - p
			p = p0
		}
		trim = false
		if p+nr > p1 {
			// End of the region: trim the box.
			nr -= (p + nr) - p1
			trim = true
		}
		var w int
		if b.Nrune < 0 || nr == b.Nrune {
			w = b.Wid
		} else {
			r = r[:nr]
			w = f.font.RunesWidth(r)
		}
		x := pt.X + w
		if x > f.rect.Max.X {
			x = f.rect.Max.X
		}
		f.background.Draw(image.Rect(pt.X, pt.Y, x, pt.Y+h), back, nil, pt)
		if b.Nrune >= 0 {
			f.background.RunesBg(pt, text, image.Point{}, f.font, r, back, image.Point{})
		}
		pt.X += w
		p += nr
	}

	// At the end of the last text box on a wrapped line, fill to the end
	// of the line.
	if p1 > p0 && nb > 0 && nb < len(f.box) && f.box[nb-1].Nrune > 0 && !trim {
		qt := pt
		f.cklinewrap(&pt, &f.box[nb])
		if pt.Y > qt.Y {
			f.background.Draw(image.Rect(qt.X, qt.Y, f.rect.Max.X, pt.Y), back, nil, qt)
		}
	}
	return pt
}

// Redraw repaints the text, selection and tick of the frame.
func (f *frameimpl) Redraw() {
	if f.background == nil || f.noredraw {
		return
	}
	if f.sp0 == f.sp1 {
		ticked := f.ticked
		if ticked {
			f.Tick(f.ptofchar(f.sp0), false)
		}
		f.DrawSel0(f.ptofchar(0), 0, f.nchars, f.cols[ColBack], f.cols[ColText])
		if ticked {
			f.Tick(f.ptofchar(f.sp0), true)
		}
		return
	}

	pt := f.ptofchar(0)
	pt = f.DrawSel0(pt, 0, f.sp0, f.cols[ColBack], f.cols[ColText])
	pt = f.DrawSel0(pt, f.sp0, f.sp1, f.cols[ColHigh], f.cols[ColHText])
	f.DrawSel0(pt, f.sp1, f.nchars, f.cols[ColBack], f.cols[ColText])
}

// SelectPaint fills the area from p0 to p1, the tops of two character
// cells, with col.
func (f *frameimpl) SelectPaint(p0, p1 image.Point, col draw.Image) {
	if f.background == nil {
		panic("frame.SelectPaint: no background")
	}
	if f.noredraw || p0.Y == f.rect.Max.Y {
		return
	}
	h := f.defaultfontheight
	q0 := p0.Add(image.Pt(0, h))
	q1 := p1.Add(image.Pt(0, h))
	n := (p1.Y - p0.Y) / h

	if n == 0 {
		f.background.Draw(image.Rectangle{p0, q1}, col, nil, image.Point{})
		return
	}
	if p0.X >= f.rect.Max.X {
		p0.X = f.rect.Max.X - 1
	}
	f.background.Draw(image.Rect(p0.X, p0.Y, f.rect.Max.X, q0.Y), col, nil, image.Point{})
	if n > 1 {
		f.background.Draw(image.Rect(f.rect.Min.X, q0.Y, f.rect.Max.X, p1.Y), col, nil, image.Point{})
	}
	f.background.Draw(image.Rect(f.rect.Min.X, p1.Y, q1.X, q1.Y), col, nil, image.Point{})
}
