package frame

import (
	"flag"
	"fmt"
	"log"
)

// frbox is one layout unit. Text boxes hold a run of runes without tabs
// or newlines. Break boxes hold a single tab or newline, have Nrune < 0
// and a width resolved against the pen position during layout.
type frbox struct {
	Wid    int    // In pixels. Fixed large size for newline boxes.
	Nrune  int    // Number of runes in R or -1 for break boxes (tab, newline)
	R      []rune // Text of the box; nil for break boxes.
	Bc     rune   // The kind of break box: '\n' or '\t'
	Minwid int    // Smallest width a break box may take.
}

// nrune returns the number of characters the box stands for.
func nrune(b *frbox) int {
	if b.Nrune < 0 {
		return 1
	}
	return b.Nrune
}

// addbox opens n empty boxes at bn, shifting box[bn:] up by n.
func (f *frameimpl) addbox(bn, n int) {
	if bn > len(f.box) {
		panic(fmt.Sprint("Frame.addbox", " bn=", bn, " len(f.box)", len(f.box)))
	}
	f.box = append(f.box, make([]frbox, n)...)
	copy(f.box[bn+n:], f.box[bn:])
	for i := bn; i < bn+n; i++ {
		f.box[i] = frbox{}
	}
}

// closebox removes boxes n0 through n1 inclusive.
func (f *frameimpl) closebox(n0, n1 int) {
	if n0 >= len(f.box) || n1 >= len(f.box) || n1 < n0 {
		panic(fmt.Sprint("Frame.closebox bounds bad", " n0=", n0, " n1=", n1, " len(box)", len(f.box)))
	}
	n1++
	copy(f.box[n0:], f.box[n1:])
	for i := len(f.box) - (n1 - n0); i < len(f.box); i++ {
		f.box[i] = frbox{}
	}
	f.box = f.box[0 : len(f.box)-(n1-n0)]
}

// freebox drops the text of boxes n0 through n1 inclusive, leaving the
// slots to be overwritten.
func (f *frameimpl) freebox(n0, n1 int) {
	if n1 < n0 {
		return
	}
	if n1 >= len(f.box) {
		panic(fmt.Sprint("Frame.freebox", " n0=", n0, " n1=", n1, " len(box)", len(f.box)))
	}
	for i := n0; i <= n1; i++ {
		f.box[i].R = nil
	}
}

// dupbox duplicates box i. box i must exist and hold text.
func (f *frameimpl) dupbox(i int) {
	if i >= len(f.box) {
		f.Logboxes("-- dupbox sadness -- ")
		panic(fmt.Sprint("dupbox i is out of bounds", " i=", i))
	}
	if f.box[i].Nrune < 0 {
		panic("dupbox invalid Nrune")
	}
	f.box = append(f.box, frbox{})
	copy(f.box[i+1:], f.box[i:])
}

// truncatebox drops the last n runes of box bn.
func (f *frameimpl) truncatebox(bn, n int) {
	b := &f.box[bn]
	if b.Nrune < 0 || b.Nrune < n {
		f.Logboxes("-- truncatebox panic -- ")
		panic(fmt.Sprint("Frame.truncatebox", " Nrune=", b.Nrune, " n=", n))
	}
	b.Nrune -= n
	b.R = b.R[0:b.Nrune:b.Nrune]
	b.Wid = f.font.RunesWidth(b.R)
}

// chopbox removes the first n runes of box bn.
func (f *frameimpl) chopbox(bn, n int) {
	b := &f.box[bn]
	if b.Nrune < 0 || b.Nrune < n {
		f.Logboxes("-- panic in chopbox --")
		panic(fmt.Sprint("chopbox", " b.Nrune=", b.Nrune, " n=", n))
	}
	b.R = b.R[n:]
	b.Nrune -= n
	b.Wid = f.font.RunesWidth(b.R)
}

// splitbox divides box bn at rune n into a prefix box bn and a suffix
// box bn+1.
func (f *frameimpl) splitbox(bn, n int) {
	if bn >= len(f.box) {
		panic(fmt.Sprint("splitbox", " bn=", bn, " n=", n))
	}
	f.dupbox(bn)
	f.truncatebox(bn, f.box[bn].Nrune-n)
	f.chopbox(bn+1, n)
}

// mergebox combines boxes bn and bn+1.
func (f *frameimpl) mergebox(bn int) {
	b0, b1 := &f.box[bn], &f.box[bn+1]
	r := make([]rune, 0, len(b0.R)+len(b1.R))
	r = append(r, b0.R...)
	r = append(r, b1.R...)
	b0.R = r
	b0.Nrune += b1.Nrune
	b0.Wid += b1.Wid
	f.closebox(bn+1, bn+1)
}

// findbox finds the box containing q and puts q on a box boundary
// starting from rune p in box bn. p must be the first rune of box[bn].
func (f *frameimpl) findbox(bn, p, q int) int {
	for ; bn < len(f.box); bn++ {
		b := &f.box[bn]
		if p+nrune(b) > q {
			break
		}
		p += nrune(b)
	}
	if p != q {
		f.splitbox(bn, q-p)
		bn++
	}
	return bn
}

var validate = flag.Bool("validateboxes", false, "Check that box model is valid")

// validateboxmodel panics if the box model of f is inconsistent. It does
// nothing unless -validateboxes is set.
func (f *frameimpl) validateboxmodel(format string, args ...interface{}) {
	if !*validate {
		return
	}
	fail := func(msg string) {
		log.Printf(format, args...)
		f.Logboxes(msg)
		panic(msg)
	}

	total := 0
	for i := range f.box {
		b := &f.box[i]
		total += nrune(b)
		if b.Nrune < 0 {
			if b.Bc != '\n' && b.Bc != '\t' {
				fail("-- break box with bad break character --")
			}
			continue
		}
		if len(b.R) != b.Nrune {
			fail("-- box with contents has invalid rune count --")
		}
		if b.Wid != f.font.RunesWidth(b.R) {
			fail("-- box with contents has invalid width --")
		}
	}
	if total != f.nchars {
		fail("-- runes in boxes != nchars --")
	}
	if f.sp0 > f.sp1 || f.sp1 > f.nchars {
		fail("-- selection outside of frame --")
	}
}
