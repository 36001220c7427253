package text

import (
	"image"
	"time"

	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/frame"
	"github.com/rjkroege/edframe/internal/util"
)

// A null selection is a sweep released within minMoveMsec that moved
// less than minMovePx along both axes.
const (
	minMoveMsec = 2
	minMovePx   = 4
)

// SetSelect selects [q0,q1), repainting only the characters whose
// selection state changes. An empty selection in view gets the tick.
func (t *Text) SetSelect(q0, q1 int) {
	// The frame's selection is always right; t.q0 and t.q1 may be off.
	old0, old1 := t.fr.GetSelectionExtent()
	p0, p1 := t.frCharOfPos(q0), t.frCharOfPos(q1)
	new0, new1 := p0, p1
	if t.fr.Ticked() {
		t.fr.Tick(t.fr.Ptofchar(old0), false)
	}

	// Find the symmetric difference of the two ranges, in place.
	if old0 <= new0 && new0 < old1 {
		new0, old1 = old1, new0
	} else if new0 <= old0 && old0 < new1 {
		old0, new1 = new1, old0
	}
	// An inverted range has its selection state inverted too.
	if old0 != old1 {
		t.drawOrientedSel(old0, old1, false)
	}
	if new0 != new1 {
		t.drawOrientedSel(new0, new1, true)
	}

	if q0 == q1 && q0 == t.org+p0 {
		t.fr.Tick(t.fr.Ptofchar(p0), true)
	}
	t.fr.SetSelectionExtent(p0, p1)
	t.q0 = q0
	t.q1 = q1
}

func (t *Text) drawOrientedSel(p0, p1 int, issel bool) {
	if p0 > p1 {
		p0, p1 = p1, p0
		issel = !issel
	}
	t.fr.DrawSel(t.fr.Ptofchar(p0), p0, p1, issel)
}

// Select handles button 1 held down in the text: a click, a double
// click, or a sweep that scrolls the text when the pointer leaves the
// frame. Chording button 2 cuts the selection and button 3 pastes.
func (t *Text) Select() {
	mc := t.sess.Mousectl
	clicks := t.sess.Clicks
	t.eq0 = -1
	t.Commit()

	m := mc.Current()
	b := m.Buttons
	start := m.Point
	q0, q1 := t.q0, t.q1
	selectq := t.org + t.fr.Charofpt(m.Point)

	// Double-click immediately if it might make sense, to allow
	// double-clicking and chording together.
	if clicks.IsDouble(t, m.Msec) && q0 == q1 && selectq == q0 {
		q0, q1 = t.DoubleClick(q0, q1)
		t.SetSelect(q0, q1)
		t.flush()
		// Stay here until something interesting happens.
		for {
			m = mc.Read()
			if m.Buttons != b || util.Abs(m.X-start.X) >= 3 || util.Abs(m.Y-start.Y) >= 3 {
				break
			}
		}
		q0, q1 = t.q0, t.q1 // may have changed
		selectq = q0
	}

	if m.Buttons == b {
		t.frameSelect(&startAt{Mousectl: mc, pt: start}, selectq)
		// The drag may have scrolled the start out of view.
		p0, p1 := t.fr.GetSelectionExtent()
		nchars := t.fr.GetFrameFillStatus().Nchars
		if selectq > t.Nc() {
			selectq = t.org + p0
		}
		if selectq < t.org {
			q0 = selectq
		} else {
			q0 = t.org + p0
		}
		if selectq > t.org+nchars {
			q1 = selectq
		} else {
			q1 = t.org + p1
		}
		m = mc.Current()
	}

	if q0 == q1 {
		if q0 == t.q0 && clicks.IsDouble(t, m.Msec) {
			q0, q1 = t.DoubleClick(q0, q1)
			clicks.Clear()
		} else {
			clicks.Save(t, m.Msec)
		}
	} else {
		clicks.Clear()
	}
	t.SetSelect(q0, q1)
	t.flush()

	cut, pasted := false, false
	for m.Buttons != 0 {
		b = m.Buttons
		if b&draw.Button1 != 0 && b&(draw.Button2|draw.Button3) != 0 {
			t.file.Mark()
			if b&draw.Button2 != 0 && !cut {
				t.Cut()
				cut = true
			} else if b&draw.Button3 != 0 && !pasted {
				t.Paste()
				pasted = true
			}
			t.ScrDraw()
		}
		t.flush()
		for m.Buttons == b {
			m = mc.Read()
		}
		clicks.Clear()
	}
}

// startAt is a Mousectl whose current sample is moved to pt until the
// next one arrives, so that a frame sweep starts where the click was
// rather than where the pointer has wandered since.
type startAt struct {
	draw.Mousectl
	pt    image.Point
	moved bool
}

func (s *startAt) Current() draw.Mouse {
	m := s.Mousectl.Current()
	if !s.moved {
		m.Point = s.pt
	}
	return m
}

func (s *startAt) Read() draw.Mouse {
	s.moved = true
	return s.Mousectl.Read()
}

func (s *startAt) Wait(d time.Duration) bool {
	if s.Mousectl.Wait(d) {
		s.moved = true
		return true
	}
	return false
}

// Select23 sweeps a selection with button 2 or 3, painting it in high.
// It returns the buttons held when the sweep ended and the selection,
// which is the current one if any of the buttons in mask were pressed
// to cancel the sweep.
func (t *Text) Select23(high draw.Image, mask int) (buts, q0, q1 int) {
	mc := t.sess.Mousectl
	t.eq0 = -1
	t.Commit()

	p0, p1 := t.xselect(mc, high)
	buts = mc.Current().Buttons
	q0, q1 = t.q0, t.q1
	if buts&mask == 0 {
		q0, q1 = p0+t.org, p1+t.org
	}
	for mc.Current().Buttons != 0 {
		mc.Read()
	}
	return buts, q0, q1
}

// xselect sweeps a selection drawn in col without changing the frame's
// own selection. It returns the frame positions swept.
func (t *Text) xselect(mc draw.Mousectl, col draw.Image) (int, int) {
	fr := t.fr
	m := mc.Current()
	b := m.Buttons
	mp := m.Point
	msec := m.Msec
	white := t.display().White()

	sp0, sp1 := fr.GetSelectionExtent()
	if sp0 == sp1 {
		fr.Tick(fr.Ptofchar(sp0), false)
	}
	p0 := fr.Charofpt(mp)
	p1 := p0
	pt0 := fr.Ptofchar(p0)
	pt1 := pt0
	reg := 0
	fr.Tick(pt0, true)
	for {
		q := fr.Charofpt(m.Point)
		if p1 != q {
			if p0 == p1 {
				fr.Tick(pt0, false)
			}
			if reg != region(q, p0) {
				// Crossed the starting point; reset.
				if reg > 0 {
					t.redrawRange(pt0, p0, p1)
				} else if reg < 0 {
					t.redrawRange(pt1, p1, p0)
				}
				p1 = p0
				pt1 = pt0
				reg = region(q, p0)
				if reg == 0 {
					fr.DrawSel0(pt0, p0, p1, col, white)
				}
			}
			qt := fr.Ptofchar(q)
			switch {
			case reg > 0 && q > p1:
				fr.DrawSel0(pt1, p1, q, col, white)
			case reg > 0 && q < p1:
				t.redrawRange(qt, q, p1)
			case reg < 0 && q > p1:
				t.redrawRange(pt1, p1, q)
			case reg < 0 && q < p1:
				fr.DrawSel0(qt, q, p1, col, white)
			}
			p1 = q
			pt1 = qt
		}
		if p0 == p1 {
			fr.Tick(pt0, true)
		}
		t.flush()
		m = mc.Read()
		if m.Buttons != b {
			break
		}
	}

	if p0 != p1 && m.Msec-msec < minMoveMsec &&
		util.Abs(mp.X-m.X) < minMovePx && util.Abs(mp.Y-m.Y) < minMovePx {
		if reg > 0 {
			t.redrawRange(pt0, p0, p1)
		} else if reg < 0 {
			t.redrawRange(pt1, p1, p0)
		}
		p1 = p0
		pt1 = pt0
	}
	if p1 < p0 {
		p0, p1 = p1, p0
		pt0 = pt1
	}
	if p0 == p1 {
		fr.Tick(pt0, false)
	}
	t.redrawRange(pt0, p0, p1)
	if sp0 == sp1 {
		fr.Tick(fr.Ptofchar(sp0), true)
	}
	t.flush()
	return p0, p1
}

// redrawRange repaints frame positions [p0,p1), which start at pt0, as
// the frame's selection has them.
func (t *Text) redrawRange(pt0 image.Point, p0, p1 int) {
	fr := t.fr
	sp0, sp1 := fr.GetSelectionExtent()
	// Clip the selection to the range.
	s0 := util.Clamp(sp0, p0, p1)
	s1 := util.Clamp(sp1, p0, p1)
	if p0 < s0 {
		fr.DrawSel0(pt0, p0, s0, t.cols[frame.ColBack], t.cols[frame.ColText])
	}
	if s0 < s1 {
		pt := pt0
		if s0 != p0 {
			pt = fr.Ptofchar(s0)
		}
		fr.DrawSel0(pt, s0, s1, t.cols[frame.ColHigh], t.cols[frame.ColHText])
	}
	if s1 < p1 {
		pt := pt0
		if s1 != p0 {
			pt = fr.Ptofchar(s1)
		}
		fr.DrawSel0(pt, s1, p1, t.cols[frame.ColBack], t.cols[frame.ColText])
	}
}

// region returns the sign of a - b.
func region(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
