package frame

import (
	"image"
)

// ptofcharptb returns the position of character p counted from box bn,
// which is drawn at pt.
func (f *frameimpl) ptofcharptb(p int, pt image.Point, bn int) image.Point {
	return f.ptofcharbounded(p, pt, bn, len(f.box))
}

func (f *frameimpl) ptofcharbounded(p int, pt image.Point, bn, nb int) image.Point {
	for ; bn < nb; bn++ {
		b := &f.box[bn]
		f.cklinewrap(&pt, b)
		l := nrune(b)
		if p < l {
			if b.Nrune > 0 {
				for _, r := range b.R[:p] {
					pt.X += f.font.RunesWidth([]rune{r})
				}
			}
			break
		}
		p -= l
		f.advance(&pt, b)
	}
	return pt
}

// Ptofchar returns the point at which character p is drawn.
func (f *frameimpl) Ptofchar(p int) image.Point {
	return f.ptofcharptb(p, f.rect.Min, 0)
}

func (f *frameimpl) ptofchar(p int) image.Point {
	return f.ptofcharptb(p, f.rect.Min, 0)
}

// ptofcharnb is ptofchar over the first nb boxes only. It does not do
// the final advance to the next line.
func (f *frameimpl) ptofcharnb(p int, nb int) image.Point {
	return f.ptofcharbounded(p, f.rect.Min, 0, nb)
}

// grid snaps p to the top of its line and clamps it to the right edge.
func (f *frameimpl) grid(p image.Point) image.Point {
	p.Y -= f.rect.Min.Y
	p.Y -= p.Y % f.defaultfontheight
	p.Y += f.rect.Min.Y
	if p.X > f.rect.Max.X {
		p.X = f.rect.Max.X
	}
	return p
}

// Charofpt returns the index of the character nearest pt. Points past
// the end of a line map to its last character; points past the end of
// the text map to nchars.
func (f *frameimpl) Charofpt(pt image.Point) int {
	pt = f.grid(pt)
	qt := f.rect.Min
	p := 0
	bn := 0

	for ; bn < len(f.box) && qt.Y < pt.Y; bn++ {
		b := &f.box[bn]
		f.cklinewrap(&qt, b)
		if qt.Y >= pt.Y {
			break
		}
		f.advance(&qt, b)
		p += nrune(b)
	}

	for ; bn < len(f.box) && qt.X <= pt.X; bn++ {
		b := &f.box[bn]
		f.cklinewrap(&qt, b)
		if qt.Y > pt.Y {
			break
		}
		if qt.X+b.Wid > pt.X {
			if b.Nrune < 0 {
				f.advance(&qt, b)
			} else {
				for _, r := range b.R {
					qt.X += f.font.RunesWidth([]rune{r})
					if qt.X > pt.X {
						break
					}
					p++
				}
			}
		} else {
			p += nrune(b)
			f.advance(&qt, b)
		}
	}
	return p
}
