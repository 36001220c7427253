// Package text implements Text, an editable view of a file.File drawn
// in a frame.Frame with a scroll bar to its left.
//
// A Text maps positions in its File (buffer-absolute offsets) to
// positions in its Frame by clamping to the visible range starting at
// the origin org. Many Texts can show one File; a change made through
// any of them is mirrored into all of them before it returns.
package text

import (
	"fmt"
	"image"

	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/file"
	"github.com/rjkroege/edframe/frame"
	"github.com/rjkroege/edframe/internal/ui"
)

// Text is a view onto a File, managing a Frame. Files have possibly many
// texts, one per split view.
type Text struct {
	file *file.File
	fr   frame.Frame
	sess *Session

	font       draw.Font
	cols       [frame.NumColours]draw.Image
	background draw.Image
	geom       *ui.Geometry
	tabstop    int
	noredraw   bool

	all     image.Rectangle
	scrollr image.Rectangle
	lastsr  image.Rectangle // puck as last drawn

	org int // origin of the frame within the file
	q0  int
	q1  int

	iq1 int // where typing goes
	eq0 int // start of the text typed since the last selection, or -1

	// The typing cache holds runes typed at cq0 that every text of
	// the file shows but the file does not hold yet.
	cq0    int
	cache  []rune
	nofill bool
}

var _ file.Observer = (*Text)(nil)

// New creates a Text showing f in r and registers it with f. The text
// is filled from f and drawn.
func New(sess *Session, f *file.File, r image.Rectangle, font draw.Font, cols [frame.NumColours]draw.Image) *Text {
	if sess == nil || sess.Display == nil {
		panic("text.New: no display")
	}
	d := sess.Display
	t := &Text{
		file:       f,
		sess:       sess,
		font:       font,
		cols:       cols,
		background: d.ScreenImage(),
		geom:       ui.NewGeometry(font.Height(), d.ScaleSize),
		tabstop:    sess.Config.TabStop,
		eq0:        -1,
	}
	_, framer := t.geom.Split(r)
	t.fr = frame.NewFrame(framer,
		frame.OptFont(font),
		frame.OptBackground(t.background),
		frame.OptColors(cols),
		frame.OptMaxTab(t.tabstop))
	f.AddText(t)
	t.resize(t.geom.Trim(r, false), false, false)
	return t
}

// Redraw lays the text out afresh in frame rectangle r and draws it,
// along with the scroll bar. With noredraw the text is laid out but
// nothing is drawn.
func (t *Text) Redraw(r image.Rectangle, noredraw bool) {
	t.noredraw = noredraw
	t.fr.Init(r,
		frame.OptFont(t.font),
		frame.OptBackground(t.background),
		frame.OptColors(t.cols),
		frame.OptMaxTab(t.tabstop),
		frame.OptNoRedraw(noredraw))
	rr := t.fr.Rect()
	rr.Min.X = t.all.Min.X // back fill to scroll bar
	if !noredraw {
		t.background.Draw(rr, t.cols[frame.ColBack], nil, image.Point{})
	}
	t.lastsr = image.Rectangle{}
	t.Fill()
	t.SetSelect(t.q0, t.q1)
	t.ScrDraw()
}

// Resize moves the text to r, trimmed to whole lines unless keepextra
// is set. It returns the bottom of the trimmed rectangle. Resizing to
// the current rectangle does nothing.
func (t *Text) Resize(r image.Rectangle, keepextra, noredraw bool) int {
	r = t.geom.Trim(r, keepextra)
	if r == t.all && noredraw == t.noredraw {
		return t.all.Max.Y
	}
	return t.resize(r, keepextra, noredraw)
}

func (t *Text) resize(r image.Rectangle, keepextra, noredraw bool) int {
	t.all = r
	scrollr, framer := t.geom.Split(r)
	t.scrollr = scrollr
	t.fr.Clear(false)
	t.Redraw(framer, noredraw)
	if keepextra && t.fr.Rect().Max.Y < t.all.Max.Y && !noredraw {
		// Draw background in bottom fringe of window.
		fringe := image.Rect(t.scrollr.Max.X, t.fr.Rect().Max.Y, t.all.Max.X, t.all.Max.Y)
		t.background.Draw(fringe, t.cols[frame.ColBack], nil, image.Point{})
	}
	return t.all.Max.Y
}

// Close unregisters the text from its file and releases the frame.
func (t *Text) Close() error {
	t.Commit()
	t.fr.Clear(true)
	if err := t.file.DelText(t); err != nil {
		return fmt.Errorf("closing text of %q: %w", t.file.Name(), err)
	}
	return nil
}

// Reset empties the file and every text showing it.
func (t *Text) Reset() {
	t.Commit()
	t.eachText(func(u *Text) { u.eq0 = -1 })
	if n := t.file.Nr(); n > 0 {
		t.Delete(0, n, true)
	}
	t.iq1 = 0
	t.SetSelect(0, 0)
	t.file.Clean()
}

func (t *Text) File() *file.File            { return t.file }
func (t *Text) Frame() frame.Frame          { return t.fr }
func (t *Text) Org() int                    { return t.org }
func (t *Text) Q0() int                     { return t.q0 }
func (t *Text) Q1() int                     { return t.q1 }
func (t *Text) All() image.Rectangle        { return t.all }
func (t *Text) ScrollRect() image.Rectangle { return t.scrollr }

// Contains reports whether pt lies in the text's rectangle.
func (t *Text) Contains(pt image.Point) bool {
	return pt.In(t.all)
}

// eachText calls fn for every text showing t's file, t included.
func (t *Text) eachText(fn func(u *Text)) {
	t.file.AllTexts(func(o file.Observer) {
		if u, ok := o.(*Text); ok {
			fn(u)
		}
	})
}

// frCharOfPos returns the frame position of file position q.
func (t *Text) frCharOfPos(q int) int {
	if q <= t.org {
		return 0
	}
	q -= t.org
	if n := t.fr.GetFrameFillStatus().Nchars; q > n {
		return n
	}
	return q
}

// frCharOfLine returns the file position at the start of frame line n.
func (t *Text) frCharOfLine(n int) int {
	p := t.fr.Rect().Min
	p.Y += t.geom.HeightForLines(n)
	return t.org + t.fr.Charofpt(p)
}

func (t *Text) display() draw.Display {
	return t.sess.Display
}

func (t *Text) flush() {
	if t.noredraw {
		return
	}
	if err := t.display().Flush(); err != nil {
		t.sess.warn("flush: %v", err)
	}
}
