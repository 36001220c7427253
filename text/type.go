package text

import (
	"image"

	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/internal/runes"
)

// Control runes with editing meanings.
const (
	CtrlA = 0x01 // beginning of line
	CtrlE = 0x05 // end of line
	CtrlH = 0x08 // erase character
	CtrlU = 0x15 // erase line
	CtrlW = 0x17 // erase word
	Esc   = 0x1b // select what was typed
)

// Type handles the key r typed into the text. Ordinary runes go into
// the typing cache of every text showing the file; a newline commits.
func (t *Text) Type(r rune) {
	fs := t.fr.GetFrameFillStatus()
	switch r {
	case draw.KeyLeft:
		t.Commit()
		if t.q0 > 0 {
			t.Show(t.q0-1, t.q0-1, true)
		}
		return
	case draw.KeyRight:
		t.Commit()
		if t.q1 < t.Nc() {
			t.Show(t.q1+1, t.q1+1, true)
		}
		return
	case draw.KeyDown:
		t.scrollDown(fs.Maxlines / 3)
		return
	case draw.KeyPageDown:
		t.scrollDown(2 * fs.Maxlines / 3)
		return
	case draw.KeyUp:
		t.SetOrigin(t.BackNL(t.org, fs.Maxlines/3), true)
		return
	case draw.KeyPageUp:
		t.SetOrigin(t.BackNL(t.org, 2*fs.Maxlines/3), true)
		return
	case draw.KeyHome:
		t.Commit()
		if t.org > t.iq1 {
			t.SetOrigin(t.BackNL(t.iq1, 1), true)
		} else {
			t.Show(0, 0, false)
		}
		return
	case draw.KeyEnd:
		t.Commit()
		if t.iq1 > t.org+fs.Nchars {
			t.iq1 = min(t.iq1, t.Nc())
			t.SetOrigin(t.BackNL(t.iq1, 1), true)
		} else {
			t.Show(t.Nc(), t.Nc(), false)
		}
		return
	case CtrlA:
		t.Commit()
		q := t.BsPos(t.q0, CtrlA)
		t.Show(q, q, true)
		return
	case CtrlE:
		t.Commit()
		q, nc := t.q0, t.Nc()
		for q < nc && t.ReadC(q) != '\n' {
			q++
		}
		t.Show(q, q, true)
		return
	}

	t.file.Mark()
	if len(t.cache) > 0 && t.q0 != t.cq0+len(t.cache) {
		// The insertion point moved away from the cache.
		t.Commit()
	}
	if t.q1 > t.q0 {
		t.Commit()
		t.Cut()
		t.eq0 = -1
	}
	t.Show(t.q0, t.q0, true)

	rp := []rune{r}
	switch r {
	case Esc:
		if t.eq0 != -1 {
			if t.eq0 <= t.q0 {
				t.SetSelect(t.eq0, t.q0)
			} else {
				t.SetSelect(t.q0, t.eq0)
			}
		}
		t.Commit()
		t.iq1 = t.q0
		return
	case CtrlH, CtrlU, CtrlW:
		t.backspace(r)
		return
	case '\n':
		if t.sess.Config.AutoIndent {
			// Copy the indent of the line being ended.
			nnb := t.q0 - t.BsPos(t.q0, CtrlU)
			for i := 0; i < nnb; i++ {
				c := t.ReadC(t.q0 - nnb + i)
				if c != ' ' && c != '\t' {
					break
				}
				rp = append(rp, c)
			}
		}
	}

	q0 := t.q0
	t.eachText(func(u *Text) {
		if u.eq0 == -1 {
			u.eq0 = q0
		}
		if len(u.cache) == 0 {
			u.cq0 = q0
		}
		u.Insert(q0, rp, false)
		if u != t {
			u.SetSelect(u.q0, u.q1)
		}
		u.cache = append(u.cache, rp...)
	})
	t.SetSelect(q0+len(rp), q0+len(rp))
	if r == '\n' {
		t.Commit()
	}
	t.iq1 = t.q0
}

// backspace erases towards the start of the text as bs directs, taking
// runes from the typing caches first.
func (t *Text) backspace(bs rune) {
	if t.q0 == 0 {
		return
	}
	q1 := t.q0
	// At the top of the frame, don't erase what can't be seen.
	q0 := max(t.BsPos(q1, bs), t.org)
	nnb := q1 - q0
	if nnb <= 0 {
		return
	}

	nb := nnb
	t.eachText(func(u *Text) {
		u.nofill = true
		if n := len(u.cache); n > 0 {
			if q1 != u.cq0+n {
				panic("text.backspace: typing cache is not at the insertion point")
			}
			n = min(n, nnb)
			u.cache = u.cache[:len(u.cache)-n]
			u.Delete(q1-n, q1, false)
			nb = nnb - n
		}
		if u.eq0 == q1 || u.eq0 == -1 {
			u.eq0 = q0
		}
	})
	if nb > 0 {
		t.Delete(q0, q0+nb, true)
	}
	t.eachText(func(u *Text) {
		if u == t {
			u.SetSelect(q0, q0)
		} else {
			u.SetSelect(u.q0, u.q1)
		}
		u.nofill = false
	})
	t.eachText(func(u *Text) { u.Fill() })
	t.iq1 = t.q0
}

// BsPos returns where the backspace rune bs typed at q0 erases back to.
// ^H erases a rune. ^U erases to the start of the line and ^W to the
// start of the word before q0. Started just after a newline, both also
// erase the newline, while ^A, which only moves, stays put.
func (t *Text) BsPos(q0 int, bs rune) int {
	if bs == CtrlH {
		if q0 > 0 {
			return q0 - 1
		}
		return 0
	}
	inword := false
	q := q0
	for ; q > 0; q-- {
		r := t.ReadC(q - 1)
		if r == '\n' {
			if q == q0 && bs != CtrlA {
				q--
			}
			break
		}
		if bs == CtrlW {
			if runes.IsAlnum(r) {
				inword = true
			} else if inword {
				break
			}
		}
	}
	return q
}

// scrollDown moves the origin down n lines of the frame.
func (t *Text) scrollDown(n int) {
	r := t.fr.Rect()
	q0 := t.org + t.fr.Charofpt(image.Pt(r.Min.X, r.Min.Y+t.geom.HeightForLines(n)))
	t.SetOrigin(q0, true)
}

// Cut moves the selection into the session's snarf buffer.
func (t *Text) Cut() {
	q0, q1 := t.q0, t.q1
	if q0 == q1 {
		return
	}
	t.Commit()
	t.sess.Snarf = t.readRunes(q0, q1-q0)
	t.Delete(q0, q1, true)
	t.SetSelect(q0, q0)
}

// Paste replaces the selection with the snarf buffer and selects it.
func (t *Text) Paste() {
	t.Commit()
	q0, q1 := t.q0, t.q1
	if q1 > q0 {
		t.Delete(q0, q1, true)
	}
	snarf := t.sess.Snarf
	t.Insert(q0, snarf, true)
	t.SetSelect(q0, q0+len(snarf))
	t.ScrDraw()
}
