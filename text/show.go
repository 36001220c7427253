package text

// Show makes [q0,q1) visible, selecting it if doselect is set. The text
// only scrolls when q0 is out of view, and then puts q0 a fraction of
// the way down the frame so that small moves don't scroll again.
func (t *Text) Show(q0, q1 int, doselect bool) {
	if doselect {
		t.SetSelect(q0, q1)
	}
	fs := t.fr.GetFrameFillStatus()
	qe := t.org + fs.Nchars
	nc := t.Nc()
	tsd := false // only redraw the scroll bar?
	if t.org <= q0 {
		switch {
		case nc == 0 || q0 < qe:
			tsd = true
		case q0 == qe && qe == nc:
			if t.ReadC(nc-1) == '\n' {
				tsd = fs.Nlines < fs.Maxlines
			} else {
				tsd = true
			}
		}
	}
	if tsd {
		t.ScrDraw()
		return
	}

	nl := int(float64(fs.Maxlines) * t.sess.Config.ShowFraction)
	q := t.BackNL(q0, nl)
	// Avoid going backwards if trying to go forwards: long lines!
	if !(q0 > t.org && q < t.org) {
		t.SetOrigin(q, true)
	}
	for q0 > t.org+t.fr.GetFrameFillStatus().Nchars {
		org := t.ForwardNL(t.org, 1)
		if org == t.org {
			break
		}
		t.SetOrigin(org, true)
	}
}

// SetOrigin scrolls the text to start at org. Unless exact is set, org
// is an estimate and the text starts after the next newline found in
// the following 256 runes.
func (t *Text) SetOrigin(org int, exact bool) {
	if org > 0 && !exact && t.ReadC(org-1) != '\n' {
		nc := t.Nc()
		for i := 0; i < 256 && org < nc; i++ {
			if t.ReadC(org) == '\n' {
				org++
				break
			}
			org++
		}
	}

	fixup := false
	nchars := t.fr.GetFrameFillStatus().Nchars
	switch {
	case org >= t.org:
		n := org - t.org
		t.fr.Delete(0, n)
		// The frame can't know what follows the deleted text, so the
		// end of its last line can be left in the wrong selection mode.
		fixup = n < t.fr.GetFrameFillStatus().Nchars
	case t.org-org < nchars:
		t.fr.Insert(t.readRunes(org, t.org-org), 0)
	default:
		t.fr.Delete(0, nchars)
	}
	t.org = org
	t.Fill()
	t.ScrDraw()
	t.SetSelect(t.q0, t.q1)
	if p0, p1 := t.fr.GetSelectionExtent(); fixup && p1 > p0 {
		t.fr.DrawSel(t.fr.Ptofchar(p1-1), p1-1, p1, true)
	}
}

// BackNL returns the start of the display line n lines above the one
// holding p, taking wrapping into account. With n == 0 it returns the
// start of p's line, which is p itself when p starts a line.
func (t *Text) BackNL(p, n int) int {
	mintab := t.font.StringWidth(" ")
	maxtab := max(t.fr.GetMaxtab(), 1)
	maxw := t.fr.Rect().Dx()

	if n == 0 && p > 0 && t.ReadC(p-1) != '\n' {
		n = 1
	}
	for ; n > 0 && p > 0; n-- {
		// p is at the first rune after a display line break.
		if t.ReadC(p-1) == '\n' {
			p--
		}
		// wl is the width of the runes left of the last tab seen and wr
		// the width of everything right of it to the end of the line.
		seentab := false
		w, wl, wr := 0, 0, 0
		for p0 := p; p > 0; p-- {
			r := t.ReadC(p - 1)
			if r == '\n' {
				break
			}
			if r == '\t' {
				seentab = true
				wl = 0
				wr = w
				w += maxtab
			} else {
				wl += t.font.RunesWidth([]rune{r})
				w = wl
				if seentab {
					w += wr + max(mintab, maxtab-wl%maxtab)
				}
			}
			if w > maxw {
				// Even a single rune that doesn't fit takes a line.
				if p == p0 {
					p--
				}
				break
			}
		}
	}
	return p
}

// ForwardNL returns the start of the display line n lines below the one
// holding p. With n == 0 it returns the start of the next line unless p
// starts a line.
func (t *Text) ForwardNL(p, n int) int {
	mintab := t.font.StringWidth(" ")
	maxtab := max(t.fr.GetMaxtab(), 1)
	maxw := t.fr.Rect().Dx()
	end := t.Nc()

	if n == 0 && p > 0 && t.ReadC(p-1) != '\n' {
		n = 1
	}
	for ; n > 0 && p < end; n-- {
		w := 0
		for p0 := p; p < end; p++ {
			r := t.ReadC(p)
			if r == '\n' {
				p++
				break
			}
			if r == '\t' {
				w += max(mintab, maxtab-w%maxtab)
			} else {
				w += t.font.RunesWidth([]rune{r})
			}
			if w > maxw {
				if p == p0 {
					p++
				}
				break
			}
		}
	}
	return p
}
