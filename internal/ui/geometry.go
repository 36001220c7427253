package ui

import "image"

// Unscaled size of the scrollbar and the gap between it and the text.
const (
	ScrollWidth = 12
	ScrollGap   = 4
)

// Geometry lays out a text: a scrollbar on the left, a gap, then the
// frame. It also converts between pixel heights and lines of the
// text's font.
type Geometry struct {
	lineHeight int
	scale      func(int) int
}

// NewGeometry creates a Geometry for lines lineHeight pixels high. Scale
// converts unscaled sizes to pixels, as Display.ScaleSize does; nil
// leaves them unchanged.
func NewGeometry(lineHeight int, scale func(int) int) *Geometry {
	if scale == nil {
		scale = func(n int) int { return n }
	}
	return &Geometry{
		lineHeight: lineHeight,
		scale:      scale,
	}
}

// LineHeight returns the height of a line in pixels.
func (g *Geometry) LineHeight() int {
	return g.lineHeight
}

// Trim returns r shortened to a whole number of lines unless keepextra
// is set. An empty or inverted r is collapsed to zero height.
func (g *Geometry) Trim(r image.Rectangle, keepextra bool) image.Rectangle {
	if r.Dy() <= 0 {
		r.Max.Y = r.Min.Y
		return r
	}
	if !keepextra && g.lineHeight > 0 {
		r.Max.Y -= r.Dy() % g.lineHeight
	}
	return r
}

// Split divides the text rectangle r into the scrollbar track and the
// rectangle of the frame.
func (g *Geometry) Split(r image.Rectangle) (scrollr, framer image.Rectangle) {
	scrollr = r
	scrollr.Max.X = r.Min.X + g.scale(ScrollWidth)
	framer = r
	framer.Min.X += g.scale(ScrollWidth + ScrollGap)
	if framer.Min.X > framer.Max.X {
		framer.Min.X = framer.Max.X
	}
	return scrollr, framer
}

// LinesForHeight returns the number of complete lines that fit in
// height pixels.
func (g *Geometry) LinesForHeight(height int) int {
	if g.lineHeight == 0 || height < 0 {
		return 0
	}
	return height / g.lineHeight
}

// HeightForLines returns the pixel height of n lines.
func (g *Geometry) HeightForLines(n int) int {
	return n * g.lineHeight
}
