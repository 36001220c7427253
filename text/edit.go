package text

import (
	"fmt"
)

// fillChunk bounds the runes read from the file per frame insertion
// while filling.
const fillChunk = 2000

// Insert inserts r at q0. With tofile the runes go into the file and
// every text showing it; otherwise only this text's frame changes, as
// when typing into the cache.
func (t *Text) Insert(q0 int, r []rune, tofile bool) {
	if tofile && len(t.cache) != 0 {
		panic(fmt.Sprintf("text.Insert: %d runes pending in the typing cache", len(t.cache)))
	}
	if len(r) == 0 {
		return
	}
	if !tofile {
		t.insert(q0, r)
		return
	}
	t.file.Insert(q0, r)
}

// Inserted mirrors an insertion into the file. The text that made the
// change gets it too, which keeps its frame selection in step with q0
// and q1.
func (t *Text) Inserted(q0 int, r []rune) {
	t.insert(q0, r)
	t.SetSelect(t.q0, t.q1)
	t.ScrDraw()
}

func (t *Text) insert(q0 int, r []rune) {
	n := len(r)
	if q0 < t.iq1 {
		t.iq1 += n
	}
	if q0 < t.q1 {
		t.q1 += n
	}
	if q0 < t.q0 {
		t.q0 += n
	}
	if q0 < t.org {
		t.org += n
	} else if q0 <= t.org+t.fr.GetFrameFillStatus().Nchars {
		t.fr.Insert(r, q0-t.org)
	}
}

// Delete removes [q0,q1). With tofile the runes leave the file and
// every text showing it.
func (t *Text) Delete(q0, q1 int, tofile bool) {
	if tofile && len(t.cache) != 0 {
		panic(fmt.Sprintf("text.Delete: %d runes pending in the typing cache", len(t.cache)))
	}
	if q1 == q0 {
		return
	}
	if !tofile {
		t.delete(q0, q1)
		return
	}
	t.file.Delete(q0, q1)
}

// Deleted mirrors a deletion from the file.
func (t *Text) Deleted(q0, q1 int) {
	t.delete(q0, q1)
	t.SetSelect(t.q0, t.q1)
	t.ScrDraw()
}

func (t *Text) delete(q0, q1 int) {
	n := q1 - q0
	if q0 < t.iq1 {
		t.iq1 -= min(n, t.iq1-q0)
	}
	if q0 < t.q0 {
		t.q0 -= min(n, t.q0-q0)
	}
	if q0 < t.q1 {
		t.q1 -= min(n, t.q1-q0)
	}
	nchars := t.fr.GetFrameFillStatus().Nchars
	switch {
	case q1 <= t.org:
		t.org -= n
	case q0 < t.org+nchars:
		p1 := min(q1-t.org, nchars)
		p0 := 0
		if q0 < t.org {
			t.org = q0
		} else {
			p0 = q0 - t.org
		}
		t.fr.Delete(p0, p1)
		t.Fill()
	}
}

// Fill fills the frame lines left empty below the text, typing cache
// included.
func (t *Text) Fill() {
	if t.fr.IsLastLineFull() || t.nofill {
		return
	}
	for {
		fs := t.fr.GetFrameFillStatus()
		q := t.org + fs.Nchars
		n := t.Nc() - q
		if n <= 0 {
			break
		}
		if n > fillChunk {
			n = fillChunk
		}
		rp := t.readRunes(q, n)

		// It's expensive to insert more than we need, so count newlines.
		nl := fs.Maxlines - fs.Nlines
		m, i := 0, 0
		for i < n {
			c := rp[i]
			i++
			if c == '\n' {
				m++
				if m >= nl {
					break
				}
			}
		}
		t.fr.Insert(rp[:i], fs.Nchars)
		if t.fr.IsLastLineFull() || t.fr.GetFrameFillStatus().Nchars == fs.Nchars {
			break
		}
	}
}

// ReadC reads the rune at q as the text shows it: the file with the
// typing cache spliced in at cq0.
func (t *Text) ReadC(q int) rune {
	n := len(t.cache)
	switch {
	case n == 0 || q < t.cq0:
		return t.file.ReadC(q)
	case q < t.cq0+n:
		return t.cache[q-t.cq0]
	}
	return t.file.ReadC(q - n)
}

// readRunes reads the n runes at q as the text shows them.
func (t *Text) readRunes(q, n int) []rune {
	r := make([]rune, n)
	if len(t.cache) == 0 {
		t.file.Read(q, r)
		return r
	}
	for i := range r {
		r[i] = t.ReadC(q + i)
	}
	return r
}

// Nc returns the length of the text, typing cache included.
func (t *Text) Nc() int {
	return t.file.Nr() + len(t.cache)
}

// Commit moves the typing cache into the file. The texts showing the
// file already display the runes, so only the caches change.
func (t *Text) Commit() {
	if len(t.cache) == 0 {
		return
	}
	t.file.Splice(t.cq0, t.cache)
	t.eachText(func(u *Text) {
		u.cache = u.cache[:0]
	})
}

// EndsWithNL reports whether the text ends with a newline.
func (t *Text) EndsWithNL() bool {
	nc := t.Nc()
	return nc > 0 && t.ReadC(nc-1) == '\n'
}

// Constrain clips q0 and q1 to the text.
func (t *Text) Constrain(q0, q1 int) (p0, p1 int) {
	nc := t.Nc()
	return min(q0, nc), min(q1, nc)
}
