package frame

import (
	"fmt"
	"log"

	"github.com/sanity-io/litter"
)

var boxdumper = litter.Options{
	HidePrivateFields: false,
	Compact:           true,
	StripPackageNames: true,
}

// Logboxes logs the frame's state and box list, headed by a message
// made from format and args.
func (f *frameimpl) Logboxes(format string, args ...interface{}) {
	log.Printf(format, args...)
	log.Printf("rect %v nchars %d nlines %d maxlines %d sel [%d,%d) lastlinefull %v",
		f.rect, f.nchars, f.nlines, f.maxlines, f.sp0, f.sp1, f.lastlinefull)
	for i := range f.box {
		log.Printf("  box[%d] %s", i, dumpbox(&f.box[i]))
	}
}

func dumpbox(b *frbox) string {
	if b.Nrune < 0 {
		return fmt.Sprintf("break %q wid %d minwid %d", b.Bc, b.Wid, b.Minwid)
	}
	return boxdumper.Sdump(*b)
}
