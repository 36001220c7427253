// Command framedemo edits a file in a stack of acme-style text panes,
// all showing the same file.
//
// Button 1 selects, with double-clicks and chords: button 2 cuts and
// button 3 pastes. Button 2 copies what it sweeps and button 3 looks for
// the next occurrence. The scroll bar scrolls as acme's does. Holding
// button 1 past the top or bottom of a pane scrolls it.
//
// Set $tabstop to change the tab width and $mousescrollsize for the
// wheel. The -validateboxes flag checks the frames after every change.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math/rand"
	"os"

	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/file"
	"github.com/rjkroege/edframe/frame"
	"github.com/rjkroege/edframe/text"
)

const margin = 4

var (
	fontflag       = flag.String("font", "", "font name, default $font")
	tabstopflag    = flag.Int("tabstop", 0, "tab width in widths of '0', default $tabstop or 4")
	fileflag       = flag.String("file", "", "file to edit, default generated text")
	panesflag      = flag.Int("panes", 2, "number of panes")
	autoindentflag = flag.Bool("a", false, "autoindent")
	debugflag      = flag.Bool("debug", false, "log the frame after every action")
	winsize        = flag.String("W", "1024x768", "window size (WidthxHeight)")
)

// Fonts to try when none is named.
var fontnames = []string{
	"/mnt/font/Go-Regular/13a/font",
	"/lib/font/bit/lucsans/euro.8.font",
}

func main() {
	flag.Parse()
	cfg := configure(os.Getenv, *tabstopflag, *autoindentflag)

	f, err := loadFile(*fileflag)
	if err != nil {
		log.Fatal(err)
	}

	fontname := fontName(os.Getenv, *fontflag)
	d, err := draw.NewDisplay(nil, fontname, "framedemo", *winsize)
	if err != nil {
		log.Fatalf("can't open display: %v", err)
	}
	if err := d.Attach(draw.Refnone); err != nil {
		log.Fatalf("failed to attach to window: %v", err)
	}
	font, err := openFont(d, fontname)
	if err != nil {
		log.Fatal(err)
	}
	cols, but2, but3, err := textColours(d)
	if err != nil {
		log.Fatal(err)
	}

	mc := d.InitMouse()
	kbd := d.InitKeyboard()
	sess := text.NewSession(d, mc, cfg)
	dm := newDemo(sess, f, font, cols, but2, but3, *panesflag)
	dm.debug = *debugflag
	dm.layout(d.ScreenImage().R().Inset(margin))
	flush(d)

	for {
		select {
		case r := <-kbd.C:
			dm.do("key", func() { dm.key(r) })
		case <-mc.Resize:
			if err := d.Attach(draw.Refnone); err != nil {
				log.Fatalf("failed to attach to window: %v", err)
			}
			dm.do("resize", func() { dm.layout(d.ScreenImage().R().Inset(margin)) })
		case m, ok := <-mc.C:
			if !ok {
				if f.Dirty() {
					log.Printf("%s modified; changes lost", f.Name())
				}
				return
			}
			mc.Mouse = m
			dm.do("mouse", func() { dm.mouse(m) })
		}
		flush(d)
	}
}

// do runs one user action. A failed action is logged and the demo goes
// on with the next one.
func (dm *demo) do(what string, fn func()) {
	defer func() {
		if err := recover(); err != nil {
			log.Printf("%s: %v", what, err)
		}
	}()
	fn()
}

func flush(d draw.Display) {
	if err := d.Flush(); err != nil {
		log.Printf("flush: %v", err)
	}
}

func loadFile(name string) (*file.File, error) {
	if name == "" {
		f := file.NewFile("lorem")
		f.Insert(0, []rune(loremText(rand.New(rand.NewSource(1)), 12, 40)))
		f.Clean()
		return f, nil
	}
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	f := file.NewFile(name)
	_, hasNulls, err := f.Load(0, fd)
	if err != nil {
		return nil, err
	}
	if hasNulls {
		log.Printf("%s: NUL bytes dropped", name)
	}
	f.Clean()
	return f, nil
}

func openFont(d draw.Display, name string) (draw.Font, error) {
	names := fontnames
	if name != "" {
		names = append([]string{name}, names...)
	}
	for _, fn := range names {
		font, err := d.OpenFont(fn)
		if err == nil {
			return font, nil
		}
		log.Printf("can't open font %s: %v", fn, err)
	}
	return nil, fmt.Errorf("none of the fonts %q could be opened", names)
}

// textColours allocates acme's colours for text and for button 2 and 3
// sweeps.
func textColours(d draw.Display) (cols [frame.NumColours]draw.Image, but2, but3 draw.Image, err error) {
	solid := func(c draw.Color) draw.Image {
		if err != nil {
			return nil
		}
		var i draw.Image
		i, err = d.AllocImage(image.Rect(0, 0, 1, 1), d.ScreenImage().Pix(), true, c)
		return i
	}
	cols[frame.ColBack] = d.AllocImageMix(draw.Paleyellow, draw.White)
	cols[frame.ColHigh] = solid(draw.Darkyellow)
	cols[frame.ColBord] = solid(draw.Yellowgreen)
	cols[frame.ColText] = d.Black()
	cols[frame.ColHText] = d.Black()
	but2 = solid(0xAA0000FF)
	but3 = solid(0x006600FF)
	if err != nil {
		return cols, nil, nil, fmt.Errorf("allocating colours: %w", err)
	}
	return cols, but2, but3, nil
}
