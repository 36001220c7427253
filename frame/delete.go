package frame

import (
	"fmt"
	"image"
)

// Delete removes characters p0 up to p1 from the frame, moving the text
// after them up and left. It returns the number of display lines freed
// at the bottom of the frame, which the caller can refill.
func (f *frameimpl) Delete(p0, p1 int) int {
	if p0 >= f.nchars || p0 == p1 || f.background == nil {
		return 0
	}
	if p1 > f.nchars {
		p1 = f.nchars
	}
	f.validateboxmodel("frame.Delete before p0=%d p1=%d", p0, p1)
	defer f.validateboxmodel("frame.Delete after p0=%d p1=%d", p0, p1)

	n0 := f.findbox(0, 0, p0)
	if n0 == len(f.box) {
		panic(fmt.Sprint("frame.Delete: off end p0=", p0, " nchars=", f.nchars))
	}
	n1 := f.findbox(n0, p0, p1)
	pt0 := f.ptofcharnb(p0, n0)
	pt1 := f.ptofchar(p1)
	if f.sp0 == f.sp1 {
		f.Tick(f.ptofchar(f.sp0), false)
	}
	nn0 := n0
	ppt0 := pt0
	f.freebox(n0, n1-1)
	f.modified = true
	h := f.defaultfontheight

	// Invariants:
	//  pt0 points to the beginning, pt1 points to the end
	//  n0 is the box containing the beginning of the deleted text
	//  n1 is the box containing the beginning of the kept text
	//  cn1 is the character position of n1
	//  sp0 and sp1 are not adjusted until the deletion is done
	cn1 := p1
	for pt1.X != pt0.X && n1 < len(f.box) {
		b := &f.box[n1]
		f.cklinewrap0(&pt0, b)
		f.cklinewrap(&pt1, b)
		n := f.canfit(pt0, b)
		if n == 0 {
			panic("frame.Delete: canfit == 0")
		}
		r := image.Rectangle{pt0, pt0.Add(image.Pt(0, h))}
		if b.Nrune > 0 {
			w0 := b.Wid
			if n != b.Nrune {
				f.splitbox(n1, n)
				b = &f.box[n1]
			}
			r.Max.X += b.Wid
			if !f.noredraw {
				f.background.Draw(r, f.background, nil, pt1)
			}
			cn1 += b.Nrune

			// Blank the remainder of the line.
			r.Min.X = r.Max.X
			r.Max.X += w0 - b.Wid
			if r.Max.X > f.rect.Max.X {
				r.Max.X = f.rect.Max.X
			}
			if !f.noredraw {
				f.background.Draw(r, f.cols[ColBack], nil, r.Min)
			}
		} else {
			r.Max.X += f.newwid0(pt0, b)
			if r.Max.X > f.rect.Max.X {
				r.Max.X = f.rect.Max.X
			}
			if !f.noredraw {
				f.background.Draw(r, f.selcolor(cn1), nil, pt0)
			}
			cn1++
		}
		f.advance(&pt1, b)
		pt0.X += f.newwid(pt0, b)
		f.box[n0] = f.box[n1]
		n0++
		n1++
	}

	if !f.noredraw {
		// Deleting the last thing in the frame leaves a mess to clean up.
		if n1 == len(f.box) && pt0.X != pt1.X {
			f.SelectPaint(pt0, pt1, f.cols[ColBack])
		}
		if pt1.Y != pt0.Y {
			pt2 := f.ptofcharptb(32767, pt1, n1)
			if pt2.Y > f.rect.Max.Y {
				panic("frame.Delete: ptofchar past the bottom")
			}
			if n1 < len(f.box) {
				q0 := pt0.Y + h
				q1 := pt1.Y + h
				q2 := pt2.Y + h
				if q2 > f.rect.Max.Y {
					q2 = f.rect.Max.Y
				}
				f.background.Draw(image.Rect(pt0.X, pt0.Y, pt0.X+(f.rect.Max.X-pt1.X), q0), f.background, nil, pt1)
				f.background.Draw(image.Rect(f.rect.Min.X, q0, f.rect.Max.X, q0+(q2-q1)), f.background, nil, image.Pt(f.rect.Min.X, q1))
				f.SelectPaint(image.Pt(pt2.X, pt2.Y-(pt1.Y-pt0.Y)), pt2, f.cols[ColBack])
			} else {
				f.SelectPaint(pt0, pt2, f.cols[ColBack])
			}
		}
	}

	f.closebox(n0, n1-1)
	if nn0 > 0 && f.box[nn0-1].Nrune >= 0 && ppt0.X-f.box[nn0-1].Wid >= f.rect.Min.X {
		nn0--
		ppt0.X -= f.box[nn0].Wid
	}
	if n0 < len(f.box)-1 {
		f.clean(ppt0, nn0, n0+1)
	} else {
		f.clean(ppt0, nn0, n0)
	}

	switch {
	case f.sp1 > p1:
		f.sp1 -= p1 - p0
	case f.sp1 > p0:
		f.sp1 = p0
	}
	switch {
	case f.sp0 > p1:
		f.sp0 -= p1 - p0
	case f.sp0 > p0:
		f.sp0 = p0
	}
	f.nchars -= p1 - p0
	if f.sp0 == f.sp1 {
		f.Tick(f.ptofchar(f.sp0), true)
	}

	pt0 = f.ptofchar(f.nchars)
	n := f.nlines
	f.nlines = (pt0.Y - f.rect.Min.Y) / h
	if pt0.X > f.rect.Min.X {
		f.nlines++
	}
	return n - f.nlines
}
