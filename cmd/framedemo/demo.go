package main

import (
	"image"

	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/file"
	"github.com/rjkroege/edframe/frame"
	"github.com/rjkroege/edframe/internal/runes"
	"github.com/rjkroege/edframe/text"
)

// gap is the height of the border between panes.
const gap = 4

// demo shows one file in a stack of panes, each a Text.
type demo struct {
	sess  *text.Session
	file  *file.File
	texts []*text.Text
	focus *text.Text

	font   draw.Font
	cols   [frame.NumColours]draw.Image
	but2   draw.Image // button 2 sweeps
	but3   draw.Image // button 3 sweeps
	npanes int
	debug  bool
}

func newDemo(sess *text.Session, f *file.File, font draw.Font, cols [frame.NumColours]draw.Image, but2, but3 draw.Image, npanes int) *demo {
	if npanes < 1 {
		npanes = 1
	}
	return &demo{
		sess:   sess,
		file:   f,
		font:   font,
		cols:   cols,
		but2:   but2,
		but3:   but3,
		npanes: npanes,
	}
}

// layout stacks the panes in r, making them the first time.
func (dm *demo) layout(r image.Rectangle) {
	screen := dm.sess.Display.ScreenImage()
	screen.Draw(r, dm.cols[frame.ColBord], nil, image.Point{})
	for i, pr := range split(r, dm.npanes, gap) {
		if i < len(dm.texts) {
			dm.texts[i].Resize(pr, true, false)
			continue
		}
		t := text.New(dm.sess, dm.file, pr, dm.font, dm.cols)
		dm.texts = append(dm.texts, t)
		// Texts are trimmed to whole lines; paint the rest as the text does.
		if t.All().Max.Y < pr.Max.Y {
			t.Resize(pr, true, false)
		}
	}
	if dm.focus == nil && len(dm.texts) > 0 {
		dm.focus = dm.texts[0]
	}
}

// textAt returns the pane holding pt, or nil.
func (dm *demo) textAt(pt image.Point) *text.Text {
	for _, t := range dm.texts {
		if t.Contains(pt) {
			return t
		}
	}
	return nil
}

// setFocus sends typing to t. The typing cache of the old focus is
// committed and a wheel gesture in progress stops.
func (dm *demo) setFocus(t *text.Text) {
	if t == dm.focus {
		return
	}
	dm.sess.Wheel.Refocus()
	if dm.focus != nil {
		dm.focus.Commit()
	}
	dm.focus = t
}

// mouse handles the sample m, the current one of the session's mouse.
func (dm *demo) mouse(m draw.Mouse) {
	t := dm.textAt(m.Point)
	if t == nil {
		return
	}
	dm.setFocus(t)
	if t.WheelScroll(m) {
		return
	}
	if m.Point.In(t.ScrollRect()) {
		for but := 1; but <= 3; but++ {
			if m.Buttons&(1<<uint(but-1)) != 0 {
				t.ScrClick(but)
				return
			}
		}
		return
	}

	switch {
	case m.Buttons&draw.Button1 != 0:
		t.Select()
	case m.Buttons&draw.Button2 != 0:
		buts, q0, q1 := t.Select23(dm.but2, draw.Button1|draw.Button3)
		if buts == 0 && q1 > q0 {
			dm.sess.Snarf = readRange(t, q0, q1)
		}
	case m.Buttons&draw.Button3 != 0:
		buts, q0, q1 := t.Select23(dm.but3, draw.Button1|draw.Button2)
		if buts == 0 {
			dm.look(t, q0, q1)
		}
	}
	if dm.debug {
		t.Frame().Logboxes("after mouse %v", m)
	}
}

// key types r into the focused pane.
func (dm *demo) key(r rune) {
	if dm.focus == nil {
		return
	}
	dm.focus.Type(r)
	if dm.debug {
		dm.focus.Frame().Logboxes("after key %q", r)
	}
}

// look finds the next occurrence of the text in [q0,q1), or of the word
// there if the range is empty, and shows it selected.
func (dm *demo) look(t *text.Text, q0, q1 int) {
	if q0 == q1 {
		q0, q1 = t.DoubleClick(q0, q1)
	}
	if q0 == q1 {
		return
	}
	t.Commit()
	all := readRange(t, 0, t.Nc())
	needle := all[q0:q1]
	p := runes.Index(all[q1:], needle)
	if p >= 0 {
		p += q1
	} else if p = runes.Index(all, needle); p < 0 {
		return
	}
	t.Show(p, p+len(needle), true)
}

func readRange(t *text.Text, q0, q1 int) []rune {
	r := make([]rune, q1-q0)
	for i := range r {
		r[i] = t.ReadC(q0 + i)
	}
	return r
}
