package text

import (
	"time"

	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/frame"
	"github.com/rjkroege/edframe/internal/dragscroll"
)

// selectScroller scrolls a text while a selection is swept past the top
// or bottom of its frame. The selection stays anchored at startq.
type selectScroller struct {
	t      *Text
	startq int
	zones  *dragscroll.Zones
	pacer  dragscroll.Pacer

	// ms is the mouse time, advanced by the pacer while the pointer
	// rests in a zone.
	ms uint32
}

var _ frame.Scroller = (*selectScroller)(nil)

// frameSelect sweeps a selection in the frame, starting at file
// position startq, and scrolls when the sweep leaves the frame.
func (t *Text) frameSelect(mc draw.Mousectl, startq int) {
	m := mc.Current()
	cfg := t.sess.Config
	s := &selectScroller{
		t:      t,
		startq: startq,
		pacer:  dragscroll.Pacer{Now: t.sess.Now},
		zones: dragscroll.NewZones(t.fr.Rect(), t.sess.screen(),
			t.geom.LineHeight(), cfg.ZoneLines, cfg.EaseMsec, m.Point),
		ms: m.Msec,
	}
	t.fr.SelectScroll(mc, s)
}

func (s *selectScroller) Zone(m draw.Mouse) int {
	if m.Msec > s.ms {
		s.ms = m.Msec
	}
	return s.zones.Zone(m.Point, s.ms)
}

func (s *selectScroller) Scroll(f frame.SelectScrollUpdater, v int, firstInStreak bool) bool {
	t := s.t
	if v == 0 {
		return t.q0 < t.org
	}
	if firstInStreak {
		s.pacer.Reset(draw.Mouse{Msec: s.ms}, 0)
	}

	// The end of the selection being dragged.
	p0, p1 := f.GetSelectionExtent()
	dragq := t.org + p1
	if v < 0 {
		dragq = t.org + p0
	}
	if delta := s.pacer.Delta(s.zones.Ease(v, s.ms), dragscroll.PaceMsec); delta != 0 {
		t.ScrollNL(delta, false)
	}
	t.SetSelect(min(dragq, s.startq), max(dragq, s.startq))
	return t.q0 < t.org
}

func (s *selectScroller) Pace(mc draw.Mousectl) {
	m := s.pacer.Poll(mc, dragscroll.SleepMsec*time.Millisecond)
	if m.Msec > s.ms {
		s.ms = m.Msec
	}
}
