package frame

import (
	"image"

	"github.com/rjkroege/edframe/draw"
)

// InitTick builds the tick image and the image saved under it.
func (f *frameimpl) InitTick() {
	if f.cols[ColBack] == nil || f.display == nil {
		return
	}
	f.tickscale = f.display.ScaleSize(1)
	pix := f.display.ScreenImage().Pix()
	height := f.defaultfontheight

	if f.tickimage != nil {
		f.tickimage.Free()
		f.tickimage = nil
	}
	if f.tickback != nil {
		f.tickback.Free()
		f.tickback = nil
	}

	var err error
	f.tickimage, err = f.display.AllocImage(image.Rect(0, 0, f.tickscale*frtickw, height), pix, false, draw.Transparent)
	if err != nil {
		f.tickimage = nil
		return
	}
	f.tickback, err = f.display.AllocImage(f.tickimage.R(), pix, false, draw.White)
	if err != nil {
		f.tickimage.Free()
		f.tickimage = nil
		f.tickback = nil
		return
	}
	f.tickback.Draw(f.tickback.R(), f.cols[ColBack], nil, image.Point{})

	f.tickimage.Draw(f.tickimage.R(), f.display.Transparent(), nil, image.Point{})
	// vertical line
	f.tickimage.Draw(image.Rect(f.tickscale*(frtickw/2), 0, f.tickscale*(frtickw/2+1), height), f.display.Opaque(), nil, image.Point{})
	// box on each end
	f.tickimage.Draw(image.Rect(0, 0, f.tickscale*frtickw, f.tickscale*frtickw), f.display.Opaque(), nil, image.Point{})
	f.tickimage.Draw(image.Rect(0, height-f.tickscale*frtickw, f.tickscale*frtickw, height), f.display.Opaque(), nil, image.Point{})
}

// Tick draws (ticked) or removes the typing tick at pt.
func (f *frameimpl) Tick(pt image.Point, ticked bool) {
	if f.ticked == ticked || f.tickimage == nil || f.background == nil || !pt.In(f.rect) {
		return
	}
	pt.X -= f.tickscale // looks best just left of where requested
	r := image.Rect(pt.X, pt.Y, pt.X+frtickw*f.tickscale, pt.Y+f.defaultfontheight)
	// can go into left border but not right
	if r.Max.X > f.rect.Max.X {
		r.Max.X = f.rect.Max.X
	}
	if !f.noredraw {
		if ticked {
			f.tickback.Draw(f.tickback.R(), f.background, nil, pt)
			f.background.Draw(r, f.tickimage, nil, image.Point{})
		} else {
			f.background.Draw(r, f.tickback, nil, image.Point{})
		}
	}
	f.ticked = ticked
}
