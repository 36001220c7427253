package frame

import (
	"github.com/rjkroege/edframe/draw"
)

// region returns the sign of a - b.
func region(a, b int) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	}
	return 1
}

func (f *frameimpl) Select(mc draw.Mousectl) (int, int) {
	return f.SelectScroll(mc, nil)
}

// SelectScroll tracks the buttons held in mc.Current() until they
// change. The selection is anchored at the character under the initial
// sample and extends to the character under the pointer, repainting only
// the span that changed. When sc is not nil and the pointer is in one of
// its scroll zones, sc scrolls the text and is responsible for pacing.
func (f *frameimpl) SelectScroll(mc draw.Mousectl, sc Scroller) (int, int) {
	m := mc.Current()
	mp := m.Point
	b := m.Buttons

	f.selecting = true
	defer func() { f.selecting = false }()

	f.modified = false
	f.DrawSel(f.ptofchar(f.sp0), f.sp0, f.sp1, false)
	p0 := f.Charofpt(mp)
	p1 := p0
	f.sp0, f.sp1 = p0, p1
	pt0 := f.ptofchar(p0)
	pt1 := f.ptofchar(p1)
	f.DrawSel(pt0, p0, p1, true)

	reg := 0
	lastv := 0
	untick00 := false
	for {
		scrled := false
		if sc != nil {
			if v := sc.Zone(m); v != 0 {
				first := region(v, 0) != region(lastv, 0)
				untick00 = sc.Scroll(f, v, first)
				if v < 0 {
					p0, p1 = f.sp1, f.sp0
				} else {
					p0, p1 = f.sp0, f.sp1
				}
				scrled = true
				lastv = v
			} else {
				lastv = 0
			}
			if scrled {
				if reg != region(p1, p0) {
					// Undo the swap that happens below.
					p0, p1 = p1, p0
				}
				pt0 = f.ptofchar(p0)
				pt1 = f.ptofchar(p1)
				reg = region(p1, p0)
			}
		}

		q := f.Charofpt(mp)
		if p1 != q {
			if reg != region(q, p0) {
				// Crossed the starting point; reset.
				if reg > 0 {
					f.DrawSel(pt0, p0, p1, false)
				} else if reg < 0 {
					f.DrawSel(pt1, p1, p0, false)
				}
				p1 = p0
				pt1 = pt0
				reg = region(q, p0)
				if reg == 0 {
					f.DrawSel(pt0, p0, p1, true)
				}
			}
			qt := f.ptofchar(q)
			switch {
			case reg > 0 && q > p1:
				f.DrawSel(pt1, p1, q, true)
			case reg > 0 && q < p1:
				f.DrawSel(qt, q, p1, false)
			case reg < 0 && q > p1:
				f.DrawSel(pt1, p1, q, false)
			case reg < 0 && q < p1:
				f.DrawSel(qt, q, p1, true)
			}
			p1 = q
			pt1 = qt
		}

		// An empty selection at the top of the frame is not ticked when the
		// scroller says the whole selection lies above it.
		if p0 == 0 && p1 == 0 && untick00 {
			f.Tick(pt0, false)
		}
		f.modified = false
		if p0 < p1 {
			f.sp0, f.sp1 = p0, p1
		} else {
			f.sp0, f.sp1 = p1, p0
		}

		if scrled {
			untick00 = sc.Scroll(f, 0, false)
		}
		if f.display != nil {
			if err := f.display.Flush(); err != nil {
				panic(err)
			}
		}
		if scrled {
			sc.Pace(mc)
			m = mc.Current()
		} else {
			m = mc.Read()
		}
		mp = m.Point
		if m.Buttons != b {
			break
		}
	}

	if f.sp1 > f.nchars {
		f.sp1 = f.nchars
	}
	return f.sp0, f.sp1
}
