package file

import "io"

// Buffer is a mutable array of runes.
type Buffer []rune

func NewBuffer() Buffer { return []rune{} }

// Insert inserts r at q0. It panics if q0 is past the end.
func (b *Buffer) Insert(q0 int, r []rune) {
	if q0 < 0 || q0 > len(*b) {
		panic("internal error: Buffer.Insert: out of range insertion")
	}
	*b = append((*b)[:q0], append(r[:len(r):len(r)], (*b)[q0:]...)...)
}

// Delete removes [q0,q1).
func (b *Buffer) Delete(q0, q1 int) {
	if q0 < 0 || q0 > q1 || q1 > len(*b) {
		panic("internal error: Buffer.Delete: out of range delete")
	}
	copy((*b)[q0:], (*b)[q1:])
	*b = (*b)[:len(*b)-(q1-q0)]
}

// Read copies runes starting at q0 into r and returns how many were
// copied.
func (b *Buffer) Read(q0 int, r []rune) (int, error) {
	if q0 < 0 || q0 > len(*b) {
		panic("internal error: Buffer.Read: out of range read")
	}
	n := copy(r, (*b)[q0:])
	if n < len(r) {
		return n, io.EOF
	}
	return n, nil
}

// ReadC returns the rune at q.
func (b *Buffer) ReadC(q int) rune { return (*b)[q] }

// String returns a string representation of buffer. See fmt.Stringer interface.
func (b *Buffer) String() string { return string(*b) }

// Nr returns the number of runes in the Buffer.
func (b *Buffer) Nr() int {
	return len(*b)
}
