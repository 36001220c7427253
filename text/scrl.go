package text

import (
	"image"
	"time"

	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/frame"
	"github.com/rjkroege/edframe/internal/dragscroll"
	"github.com/rjkroege/edframe/internal/drawutil"
	"github.com/rjkroege/edframe/internal/util"
)

// ScrDraw draws the scroll bar when the puck has moved since it was
// last drawn. Only the rows the puck left or entered are painted.
func (t *Text) ScrDraw() {
	if t.noredraw || t.scrollr.Empty() {
		return
	}
	r := t.scrollr
	r2 := drawutil.ScrPos(r, t.org, t.org+t.fr.GetFrameFillStatus().Nchars, t.Nc())
	if r2 == t.lastsr {
		return
	}
	b := t.background
	if t.lastsr.Empty() {
		b.Draw(r, t.cols[frame.ColBord], nil, image.Point{})
		t.drawPuck(r2)
	} else {
		for _, band := range rowsOutside(t.lastsr, r2) {
			b.Draw(band, t.cols[frame.ColBord], nil, image.Point{})
		}
		for _, band := range rowsOutside(r2, t.lastsr) {
			t.drawPuck(band)
		}
	}
	t.lastsr = r2
}

// drawPuck paints r as part of the puck, with its right edge in the
// border colour.
func (t *Text) drawPuck(r image.Rectangle) {
	b := t.background
	b.Draw(r, t.cols[frame.ColBack], nil, image.Point{})
	r.Min.X = r.Max.X - 1
	b.Draw(r, t.cols[frame.ColBord], nil, image.Point{})
}

// rowsOutside returns the bands of rows of a that are not rows of b. Both
// span the same columns.
func rowsOutside(a, b image.Rectangle) []image.Rectangle {
	var bands []image.Rectangle
	if a.Min.Y < b.Min.Y {
		r := a
		r.Max.Y = min(a.Max.Y, b.Min.Y)
		bands = append(bands, r)
	}
	if a.Max.Y > b.Max.Y {
		r := a
		r.Min.Y = max(a.Min.Y, b.Max.Y)
		bands = append(bands, r)
	}
	return bands
}

// clampMouse moves the pointer to x and into [ymin,ymax) vertically if
// it is not there already. It returns the clamped y.
func (t *Text) clampMouse(x, ymin, ymax int) int {
	mc := t.sess.Mousectl
	m := mc.Current()
	p := image.Pt(x, util.Clamp(m.Y, ymin, ymax-1))
	if p != m.Point {
		if err := mc.MoveTo(p); err != nil {
			t.sess.warn("scroll bar: %v", err)
		}
	}
	return p.Y
}

// ScrClick scrolls the text while button but is held in the scroll bar.
// Button 2 sets the origin in proportion to the pointer's height. Button
// 1 scrolls back and button 3 forward at a speed set by the pointer's
// distance from the top of the bar. The first step happens at once and
// the next after a short wait, so a click moves a fixed distance.
func (t *Text) ScrClick(but int) {
	mc := t.sess.Mousectl
	butmask := 1 << uint(but-1)
	sr := t.scrollr
	sx := sr.Min.X + sr.Dx()/2
	t.eq0 = -1
	t.Commit()

	switch but {
	case 2:
		sh := sr.Dy() - 1
		oldp0 := -1
		for {
			my := t.clampMouse(sx, sr.Min.Y, sr.Max.Y)
			p0 := int(int64(t.Nc()) * int64(my-sr.Min.Y) / int64(max(sh, 1)))
			if p0 != oldp0 {
				oldp0 = p0
				p0 = t.BackNL(p0, 0)
				if p0 != t.org {
					t.SetOrigin(p0, true)
					t.flush()
				}
			}
			if mc.Read().Buttons&butmask == 0 {
				break
			}
		}

	case 1, 3:
		pacer := dragscroll.Pacer{Now: t.sess.Now}
		first := true
		m := mc.Current()
		pacer.Reset(m, -dragscroll.PaceMsec)
		lh := t.geom.LineHeight()
		minmove := lh / 2
		for {
			my := t.clampMouse(sx, sr.Min.Y, sr.Max.Y)
			speed := t.geom.LinesForHeight(my - sr.Min.Y)
			if delta := pacer.Delta(speed, dragscroll.PaceMsec); delta != 0 {
				var p0 int
				if but == 1 {
					p0 = t.BackNL(t.org, delta)
				} else {
					p0 = t.frCharOfLine(delta)
				}
				if p0 != t.org {
					t.SetOrigin(p0, true)
					t.flush()
				}
			}
			if first {
				// Wait out the debounce in pieces so that processing time
				// doesn't lengthen it. Dragging half a line ends it early.
				wait := dragscroll.DebounceMsec / 2
				t0 := pacer.WallMsec()
				y0 := my
				for {
					m = pacer.Poll(mc, time.Duration(wait)*time.Millisecond)
					my = t.clampMouse(sx, sr.Min.Y, sr.Max.Y)
					wait = dragscroll.DebounceMsec - int(pacer.WallMsec()-t0)
					if wait <= 0 || m.Buttons&butmask == 0 || util.Abs(my-y0) >= minmove {
						break
					}
				}
				// Start as if a line had just finished its time.
				speed = t.geom.LinesForHeight(my - sr.Min.Y)
				pacediff := 0
				if speed > 0 {
					pacediff = -dragscroll.PaceMsec / speed
				}
				pacer.Reset(m, pacediff)
				first = false
			} else {
				m = pacer.Poll(mc, dragscroll.SleepMsec*time.Millisecond)
			}
			if m.Buttons&butmask == 0 {
				break
			}
		}
	}

	for mc.Current().Buttons != 0 {
		mc.Read()
	}
}

// ScrollNL scrolls the text by lines display lines, back when negative.
// Unless scrollpastend is set, scrolling forward stops once the last
// line is on screen and never leaves empty lines at the bottom.
func (t *Text) ScrollNL(lines int, scrollpastend bool) {
	fs := t.fr.GetFrameFillStatus()
	switch {
	case lines < 0:
		if t.org == 0 {
			return
		}
		t.SetOrigin(t.BackNL(t.org, -lines), true)
	case lines > 0:
		if scrollpastend {
			if t.org == t.Nc() {
				return
			}
		} else if !t.fr.IsLastLineFull() {
			return
		}
		org := t.frCharOfLine(min(lines, fs.Maxlines))
		if lines > fs.Maxlines {
			org = t.ForwardNL(org, lines-fs.Maxlines)
		}
		t.SetOrigin(org, true)
		if !scrollpastend {
			t.ScrollUpIfPastEnd()
		}
	}
}

// ScrollUpIfPastEnd scrolls back until the frame has no empty lines
// below the end of the text, if the text is long enough.
func (t *Text) ScrollUpIfPastEnd() {
	if t.fr.IsLastLineFull() {
		return
	}
	fs := t.fr.GetFrameFillStatus()
	n := fs.Maxlines - fs.Nlines
	if t.EndsWithNL() {
		n--
	}
	if n > 0 {
		t.SetOrigin(t.BackNL(t.org, n), true)
	}
}

// WheelScroll scrolls the text for the wheel or trackpad sample m. It
// reports whether m was a scroll sample.
func (t *Text) WheelScroll(m draw.Mouse) bool {
	if m.Buttons&draw.ScrollMask == 0 {
		return false
	}
	n := t.sess.Wheel.Lines(m, t.geom.LineHeight())
	if m.Buttons&draw.ScrollMask == draw.LineScroll {
		n *= drawutil.MouseScrollSize(t.fr.GetFrameFillStatus().Maxlines)
	}
	if n != 0 {
		t.eq0 = -1
		t.Commit()
		t.ScrollNL(n, false)
		t.flush()
	}
	return true
}
