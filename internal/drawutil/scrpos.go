package drawutil

import "image"

// bigtext is the length beyond which ScrPos scales positions down to
// avoid overflow.
const bigtext = 1024 * 1024

// ScrPos returns the puck of a scrollbar track r for a view showing
// [p0,p1) of a text of tot runes. The puck is at least 2 pixels high.
func ScrPos(r image.Rectangle, p0, p1, tot int) image.Rectangle {
	q := r
	h := q.Dy()
	if tot == 0 {
		return q
	}
	if tot > bigtext {
		tot >>= 10
		p0 >>= 10
		p1 >>= 10
	}
	if p0 > 0 {
		q.Min.Y += h * p0 / tot
	}
	if p1 < tot {
		q.Max.Y -= h * (tot - p1) / tot
	}
	if q.Max.Y < q.Min.Y+2 {
		if q.Min.Y+2 <= r.Max.Y {
			q.Max.Y = q.Min.Y + 2
		} else {
			q.Min.Y = q.Max.Y - 2
		}
	}
	return q
}
