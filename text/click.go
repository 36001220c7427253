package text

import (
	"github.com/rjkroege/edframe/internal/runes"
)

var (
	left1  = []rune{'{', '[', '(', '<', '«'}
	right1 = []rune{'}', ']', ')', '>', '»'}
	left2  = []rune{'\n'}
	left3  = []rune{'\'', '"', '`'}

	left = [][]rune{
		left1,
		left2,
		left3,
	}
	right = [][]rune{
		right1,
		left2,
		left3,
	}
)

// DoubleClick expands the empty selection at q0 for a double click.
// Just inside a delimiter it selects up to the matching delimiter, and
// just right of a closing bracket it selects the bracketed text with
// the brackets. An HTML tag selects up to its matching tag. Otherwise the
// word around q0 is selected.
func (t *Text) DoubleClick(q0, q1 int) (int, int) {
	if p0, p1, ok := t.ClickHTMLMatch(q0); ok {
		return p0, p1
	}
	nc := t.Nc()

	for i, l := range left {
		r := right[i]
		// Try matching the character to the left, looking right.
		c := '\n'
		if q0 > 0 {
			c = t.ReadC(q0 - 1)
		}
		if p := runes.IndexRune(l, c); p >= 0 {
			if q, ok := t.ClickMatch(c, r[p], 1, q0); ok {
				q1 = q
				if c != '\n' {
					q1--
				}
			}
			return q0, q1
		}
		// Try matching the character to the right, looking left.
		c = '\n'
		if q0 < nc {
			c = t.ReadC(q0)
		}
		if p := runes.IndexRune(r, c); p >= 0 {
			if q, ok := t.ClickMatch(c, l[p], -1, q0); ok {
				q1 = q0
				if q0 < nc && c == '\n' {
					q1++
				}
				q0 = q
				if c != '\n' || q != 0 || t.ReadC(0) == '\n' {
					q0++
				}
			}
			return q0, q1
		}
	}

	// Just right of a closing bracket, take the bracketed span,
	// delimiters included.
	if q0 > 0 {
		c := t.ReadC(q0 - 1)
		if p := runes.IndexRune(right1, c); p >= 0 {
			if q, ok := t.ClickMatch(c, left1[p], -1, q0-1); ok {
				return q, q0
			}
		}
	}

	// Try filling out the word to the right, then to the left.
	for q1 < nc && runes.IsAlnum(t.ReadC(q1)) {
		q1++
	}
	for q0 > 0 && runes.IsAlnum(t.ReadC(q0-1)) {
		q0--
	}
	return q0, q1
}

// ClickMatch looks from q in direction dir for the cr matching cl,
// counting nested pairs. It returns the position after the match
// (before it when looking left). A newline also matches the start or
// end of the text.
func (t *Text) ClickMatch(cl, cr rune, dir, q int) (int, bool) {
	nc := t.Nc()
	nest := 1
	for {
		var c rune
		if dir > 0 {
			if q == nc {
				break
			}
			c = t.ReadC(q)
			q++
		} else {
			if q == 0 {
				break
			}
			q--
			c = t.ReadC(q)
		}
		if c == cr {
			nest--
			if nest == 0 {
				return q, true
			}
		} else if c == cl {
			nest++
		}
	}
	return q, cl == '\n' && nest == 1
}

// isHTMLStart reports whether the text at q is an HTML tag: 1 for <a>,
// -1 for </a>, 0 for no tag, <a /> or a comment. It also returns the
// position after the tag.
func (t *Text) isHTMLStart(q int) (int, int) {
	nc := t.Nc()
	if q+2 > nc {
		return 0, q
	}
	if t.ReadC(q) != '<' {
		return 0, q
	}
	q++
	c := t.ReadC(q)
	q++
	c1, c2 := c, c
	for c != '>' {
		if q >= nc {
			return 0, q
		}
		c2 = c
		c = t.ReadC(q)
		q++
	}
	switch {
	case c1 == '/':
		return -1, q
	case c2 == '/' || c2 == '!':
		return 0, q
	}
	return 1, q
}

// isHTMLEnd is isHTMLStart for the tag ending at q. It returns the
// start of the tag.
func (t *Text) isHTMLEnd(q int) (int, int) {
	if q < 2 {
		return 0, q
	}
	q--
	if t.ReadC(q) != '>' {
		return 0, q
	}
	q--
	c := t.ReadC(q)
	c1, c2 := c, c
	for c != '<' {
		if q == 0 {
			return 0, q
		}
		c1 = c
		q--
		c = t.ReadC(q)
	}
	switch {
	case c1 == '/':
		return -1, q
	case c2 == '/' || c2 == '!':
		return 0, q
	}
	return 1, q
}

// ClickHTMLMatch selects the text between an HTML tag next to q and
// its matching tag: after an opening tag it looks forward, before a
// closing tag it looks back.
func (t *Text) ClickHTMLMatch(q int) (q0, q1 int, ok bool) {
	nc := t.Nc()
	q0, q1 = q, q

	if n, _ := t.isHTMLEnd(q); n == 1 {
		depth := 1
		for p := q; p < nc; {
			n, np := t.isHTMLStart(p)
			if n == 0 {
				p++
				continue
			}
			depth += n
			if depth == 0 {
				return q0, p, true
			}
			p = np
		}
	}

	if n, _ := t.isHTMLStart(q); n == -1 {
		depth := -1
		for p := q; p > 0; {
			n, np := t.isHTMLEnd(p)
			if n == 0 {
				p--
				continue
			}
			depth += n
			if depth == 0 {
				return p, q1, true
			}
			p = np
		}
	}
	return q0, q1, false
}
