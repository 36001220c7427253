package frame

import (
	"image"

	"github.com/rjkroege/edframe/draw"
)

const (
	ColBack = iota
	ColHigh
	ColBord
	ColText
	ColHText
	NumColours

	frtickw = 3
)

// Frame is a rectangle of laid out, selectable text.
type Frame interface {
	SelectScrollUpdater

	// Init prepares the Frame to show text in rectangle r. Options set the
	// font, colours, background image and tab width.
	Init(r image.Rectangle, opts ...OptionClosure)

	// Clear empties the Frame's box list. With freeall, the tick images
	// are released too.
	Clear(freeall bool)

	// Redraw repaints the whole Frame from its box list.
	Redraw()

	// Select tracks a button held in mc, painting the selection as it
	// changes. It returns the selection when the buttons change.
	Select(mc draw.Mousectl) (int, int)

	// SelectScroll is Select with auto-scrolling: sc is asked to scroll
	// whenever the pointer sits in one of its scroll zones.
	SelectScroll(mc draw.Mousectl, sc Scroller) (int, int)

	// SelectPaint fills the area from p0 to p1 with col.
	SelectPaint(p0, p1 image.Point, col draw.Image)

	// Maxtab sets the tab stop in pixels.
	Maxtab(m int)
	GetMaxtab() int

	InitTick()

	// Selecting reports whether a Select is underway.
	Selecting() bool

	// Runes returns a copy of the visible text.
	Runes() []rune

	Logboxes(format string, args ...interface{})
}

// SelectScrollUpdater is the view of a Frame offered to code that runs
// while the Frame is selecting.
type SelectScrollUpdater interface {
	GetFrameFillStatus() FrameFillStatus
	Charofpt(pt image.Point) int
	Ptofchar(p int) image.Point
	DefaultFontHeight() int
	Delete(p0, p1 int) int
	Insert(r []rune, p0 int) bool
	IsLastLineFull() bool
	Rect() image.Rectangle
	GetSelectionExtent() (int, int)
	SetSelectionExtent(p0, p1 int)
	DrawSel(pt image.Point, p0, p1 int, issel bool)
	DrawSel0(pt image.Point, p0, p1 int, back, text draw.Image) image.Point
	Tick(pt image.Point, ticked bool)
	Ticked() bool
}

// Scroller moves a Frame's view during SelectScroll. Its velocities are
// signed display lines: negative towards the start of the text.
type Scroller interface {
	// Zone returns the raw velocity for the mouse sample m or 0 when m is
	// outside every scroll zone.
	Zone(m draw.Mouse) int

	// Scroll moves the view for a pointer with velocity v, firstInStreak
	// being true when the previous sample was not scrolling the same way.
	// A zero v is a pacing call made after each scrolling step. Scroll
	// reports whether the tick should be hidden when the selection
	// collapses to the start of the frame.
	Scroll(f SelectScrollUpdater, v int, firstInStreak bool) bool

	// Pace waits for the next mouse sample or for the next scrolling
	// step, whichever comes first.
	Pace(mc draw.Mousectl)
}

// FrameFillStatus is a snapshot of the capacity of the Frame.
type FrameFillStatus struct {
	Nchars   int
	Nlines   int
	Maxlines int
}

type frameimpl struct {
	font       draw.Font
	display    draw.Display            // on which the frame is displayed
	background draw.Image              // on which the frame appears
	cols       [NumColours]draw.Image // background and text colours
	rect       image.Rectangle         // in which the text appears
	entire     image.Rectangle         // size of full frame

	defaultfontheight int

	box []frbox // the boxes of text in this frame.
	aux []frbox // reused by bxscan

	sp0, sp1 int // bounds of a selection
	maxtab   int // max size of a tab (in pixels)
	nchars   int // number of runes in frame
	nlines   int // number of lines with text
	maxlines int // total number of lines in frame

	lastlinefull bool
	modified     bool
	selecting    bool
	noredraw     bool // measure only; emit no drawing

	tickimage draw.Image // typing tick
	tickback  draw.Image // image under tick
	ticked    bool
	tickscale int // tick scaling factor
}

var _ = Frame((*frameimpl)(nil))

// NewFrame creates a Frame of size r with the given options.
func NewFrame(r image.Rectangle, opts ...OptionClosure) Frame {
	f := new(frameimpl)
	f.Init(r, opts...)
	return f
}

func (f *frameimpl) Init(r image.Rectangle, opts ...OptionClosure) {
	ctx := f.Option(opts...)
	if f.font == nil {
		panic("frame.Init: no font")
	}
	if f.background != nil {
		f.display = f.background.Display()
	}
	f.maxtab = ctx.computemaxtab(f.maxtab, f.font.StringWidth("0"))
	if f.maxtab <= 0 {
		f.maxtab = 8 * f.font.StringWidth("0")
	}
	f.nchars = 0
	f.nlines = 0
	f.sp0 = 0
	f.sp1 = 0
	f.box = f.box[:0]
	f.lastlinefull = false
	f.ticked = false
	f.defaultfontheight = f.font.Height()
	f.setrects(r)

	if ctx.updatetick || f.tickimage == nil {
		f.InitTick()
	}
}

// setrects establishes the geometry of the frame.
func (f *frameimpl) setrects(r image.Rectangle) {
	height := f.defaultfontheight
	f.entire = r
	f.rect = r
	f.rect.Max.Y -= r.Dy() % height
	f.maxlines = r.Dy() / height
}

// Clear frees the box list so that the Frame can be re-Init'ed. It does
// not clear the display.
func (f *frameimpl) Clear(freeall bool) {
	for i := range f.box {
		f.box[i] = frbox{}
	}
	f.box = f.box[:0]
	f.aux = nil
	if freeall {
		if f.tickimage != nil {
			f.tickimage.Free()
		}
		if f.tickback != nil {
			f.tickback.Free()
		}
		f.tickimage = nil
		f.tickback = nil
	}
	f.ticked = false
}

func (f *frameimpl) Maxtab(m int)   { f.maxtab = m }
func (f *frameimpl) GetMaxtab() int { return f.maxtab }

func (f *frameimpl) GetFrameFillStatus() FrameFillStatus {
	return FrameFillStatus{
		Nchars:   f.nchars,
		Nlines:   f.nlines,
		Maxlines: f.maxlines,
	}
}

func (f *frameimpl) IsLastLineFull() bool   { return f.lastlinefull }
func (f *frameimpl) Rect() image.Rectangle  { return f.rect }
func (f *frameimpl) DefaultFontHeight() int { return f.defaultfontheight }
func (f *frameimpl) Selecting() bool        { return f.selecting }
func (f *frameimpl) Ticked() bool           { return f.ticked }

func (f *frameimpl) GetSelectionExtent() (int, int) {
	return f.sp0, f.sp1
}

// SetSelectionExtent records the selection without drawing it.
func (f *frameimpl) SetSelectionExtent(p0, p1 int) {
	if p0 > p1 || p1 > f.nchars || p0 < 0 {
		panic("frame.SetSelectionExtent: selection out of range")
	}
	f.sp0, f.sp1 = p0, p1
}

func (f *frameimpl) Runes() []rune {
	r := make([]rune, 0, f.nchars)
	for i := range f.box {
		b := &f.box[i]
		if b.Nrune < 0 {
			r = append(r, b.Bc)
			continue
		}
		r = append(r, b.R...)
	}
	return r
}
