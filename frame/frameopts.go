package frame

import (
	"github.com/rjkroege/edframe/draw"
)

// optioncontext collects what the options of one Init call require of
// the Frame once they have all been applied.
type optioncontext struct {
	updatetick  bool // the tick images must be rebuilt
	maxtabchars int  // tab width in '0' characters, or -1 to keep the current one
}

// OptionClosure sets one Frame option. See
// https://commandcenter.blogspot.ca/2014/01/self-referential-functions-and-design.html
type OptionClosure func(*frameimpl, *optioncontext)

// Option applies opts to f.
func (f *frameimpl) Option(opts ...OptionClosure) *optioncontext {
	ctx := &optioncontext{
		updatetick:  false,
		maxtabchars: -1,
	}
	for _, opt := range opts {
		opt(f, ctx)
	}
	return ctx
}

// OptColors sets the background, highlight, border and text colours.
func OptColors(cols [NumColours]draw.Image) OptionClosure {
	return func(f *frameimpl, ctx *optioncontext) {
		ctx.updatetick = ctx.updatetick || f.cols[ColBack] != cols[ColBack]
		f.cols = cols
	}
}

// OptBackground sets the image the Frame draws on. A nil image gives a
// detached Frame that lays out text without drawing.
func OptBackground(b draw.Image) OptionClosure {
	return func(f *frameimpl, ctx *optioncontext) {
		ctx.updatetick = ctx.updatetick || f.background != b
		f.background = b
		if b == nil {
			f.display = nil
		}
	}
}

// OptFont sets the font.
func OptFont(ft draw.Font) OptionClosure {
	return func(f *frameimpl, ctx *optioncontext) {
		ctx.updatetick = ctx.updatetick || f.font == nil || f.defaultfontheight != ft.Height()
		f.font = ft
	}
}

// OptMaxTab sets the tab width in '0' characters.
func OptMaxTab(maxtabchars int) OptionClosure {
	return func(f *frameimpl, ctx *optioncontext) {
		ctx.maxtabchars = maxtabchars
	}
}

// OptNoRedraw makes the Frame lay out text without drawing it, for
// measuring text off screen.
func OptNoRedraw(noredraw bool) OptionClosure {
	return func(f *frameimpl, ctx *optioncontext) {
		f.noredraw = noredraw
	}
}

// computemaxtab returns the tab width given the current width maxtab and
// the width ftw of a '0'.
func (ctx *optioncontext) computemaxtab(maxtab, ftw int) int {
	if ctx.maxtabchars < 0 {
		return maxtab
	}
	return ctx.maxtabchars * ftw
}
