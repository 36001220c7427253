package file

import (
	"fmt"
	"testing"
)

type observation struct {
	callback string
	q0       int
	q1       int
	payload  string
}

func (o *observation) String() string {
	if o.callback == "Inserted" {
		return fmt.Sprintf("%s %q at %d", o.callback, o.payload, o.q0)
	}
	return fmt.Sprintf("%s [%d, %d)", o.callback, o.q0, o.q1)
}

// testObserver records the changes it is told of and checks that the
// File already holds them.
type testObserver struct {
	t    *testing.T
	f    *File
	name string
	log  *[]string
}

func (o *testObserver) Inserted(q0 int, r []rune) {
	o.t.Helper()
	got := string(o.f.b[q0 : q0+len(r)])
	if got != string(r) {
		o.t.Errorf("%s: Inserted %q but file holds %q", o.name, string(r), got)
	}
	obs := &observation{callback: "Inserted", q0: q0, payload: string(r)}
	*o.log = append(*o.log, o.name+": "+obs.String())
}

func (o *testObserver) Deleted(q0, q1 int) {
	obs := &observation{callback: "Deleted", q0: q0, q1: q1}
	*o.log = append(*o.log, o.name+": "+obs.String())
}
