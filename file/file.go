// Package file holds the rune buffer shared by the texts that show it.
package file

import (
	"fmt"
	"io"
	"sync"

	"github.com/rjkroege/edframe/internal/util"
)

// Observer is told of every change made to a File. A Text showing the
// File is an Observer and mirrors the change into its frame.
//
// Observers run with the File locked and must not modify the File.
type Observer interface {
	// Inserted reports that r was inserted at q0.
	Inserted(q0 int, r []rune)

	// Deleted reports that [q0,q1) was deleted.
	Deleted(q0, q1 int)
}

// File is a rune buffer with a set of observing texts. Many texts can
// share one File to show split views of it. File is a model in MVC
// parlance while Text is a View-Controller.
//
// A change and its delivery to every observer happen with the File
// locked so no observer sees a partly mirrored change.
type File struct {
	mu sync.Mutex

	b    Buffer
	name string

	observers []Observer
	cur       Observer

	seq int  // edit sequence number, advanced by Mark
	mod bool // changed since the last Clean
}

// NewFile creates an empty File with the given name.
func NewFile(name string) *File {
	return &File{
		b:    NewBuffer(),
		name: name,
	}
}

func (f *File) Name() string { return f.name }

// Nr returns the number of runes in the File.
func (f *File) Nr() int {
	return f.b.Nr()
}

// ReadC reads the rune at q.
func (f *File) ReadC(q int) rune {
	return f.b.ReadC(q)
}

// Read reads at most len(r) runes from the File at q.
func (f *File) Read(q int, r []rune) (int, error) {
	return f.b.Read(q, r)
}

// String returns the whole text.
func (f *File) String() string {
	return f.b.String()
}

// Insert inserts r at q and mirrors it to every observer.
func (f *File) Insert(q int, r []rune) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if q < 0 || q > f.b.Nr() {
		panic(fmt.Sprintf("internal error: File.Insert at %d beyond %d", q, f.b.Nr()))
	}
	if len(r) == 0 {
		return
	}
	f.b.Insert(q, r)
	f.mod = true
	for _, o := range f.observers {
		o.Inserted(q, r)
	}
}

// Delete removes [q0,q1) and mirrors it to every observer.
func (f *File) Delete(q0, q1 int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !(0 <= q0 && q0 <= q1 && q1 <= f.b.Nr()) {
		panic(fmt.Sprintf("internal error: File.Delete [%d,%d) beyond %d", q0, q1, f.b.Nr()))
	}
	if q0 == q1 {
		return
	}
	f.b.Delete(q0, q1)
	f.mod = true
	for _, o := range f.observers {
		o.Deleted(q0, q1)
	}
}

// Splice inserts r at q without telling the observers. It is for runes
// that every observer already shows, such as a committed typing cache.
func (f *File) Splice(q int, r []rune) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if q < 0 || q > f.b.Nr() {
		panic(fmt.Sprintf("internal error: File.Splice at %d beyond %d", q, f.b.Nr()))
	}
	if len(r) == 0 {
		return
	}
	f.b.Insert(q, r)
	f.mod = true
}

// Load inserts the contents of rd at q0. It returns the number of runes
// inserted and whether NUL bytes were dropped.
func (f *File) Load(q0 int, rd io.Reader) (n int, hasNulls bool, err error) {
	d, err := io.ReadAll(rd)
	if err != nil {
		return 0, false, fmt.Errorf("loading %q: %w", f.name, err)
	}
	r, _, hasNulls := util.Cvttorunes(d, len(d))
	f.Insert(q0, r)
	return len(r), hasNulls, nil
}

// AddText adds o as an observer of this File and makes it current.
func (f *File) AddText(o Observer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.observers {
		if p == o {
			f.cur = o
			return
		}
	}
	f.observers = append(f.observers, o)
	f.cur = o
}

// DelText removes o from the observers of this File.
func (f *File) DelText(o Observer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.observers {
		if p != o {
			continue
		}
		f.observers = append(f.observers[:i], f.observers[i+1:]...)
		if f.cur == o {
			f.cur = nil
			if len(f.observers) > 0 {
				f.cur = f.observers[0]
			}
		}
		return nil
	}
	return fmt.Errorf("can't find text in File.DelText")
}

// AllTexts calls tf for every observer in the order they were added.
func (f *File) AllTexts(tf func(o Observer)) {
	for _, o := range f.observers {
		tf(o)
	}
}

// CurText returns the observer that last had the focus.
func (f *File) CurText() Observer { return f.cur }

// HasMultipleTexts returns true if the File is shown more than once.
func (f *File) HasMultipleTexts() bool {
	return len(f.observers) > 1
}

// Seq returns the current edit sequence number.
func (f *File) Seq() int { return f.seq }

// Mark starts a new edit sequence.
func (f *File) Mark() { f.seq++ }

// Dirty returns true if the File changed since the last Clean.
func (f *File) Dirty() bool { return f.mod }

// Clean marks the File as unchanged.
func (f *File) Clean() { f.mod = false }
