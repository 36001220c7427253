// Package ui holds small pieces of user interface state shared by the
// texts of an editing session.
package ui

// DoubleClickMsec is the default double-click threshold.
const DoubleClickMsec = 500

// ClickState remembers the last single click so that a second click on
// the same owner can be recognised as a double click. It replaces a pair
// of globals naming the clicked text and the time of the click.
type ClickState struct {
	owner interface{}
	msec  uint32

	// Threshold is the longest gap between the clicks of a double
	// click, in milliseconds. DoubleClickMsec is used when it is 0.
	Threshold uint32
}

// NewClickState creates a ClickState with no click saved.
func NewClickState(threshold uint32) *ClickState {
	return &ClickState{Threshold: threshold}
}

func (cs *ClickState) threshold() uint32 {
	if cs.Threshold == 0 {
		return DoubleClickMsec
	}
	return cs.Threshold
}

// Save records a click on owner at msec, overwriting any earlier click.
func (cs *ClickState) Save(owner interface{}, msec uint32) {
	cs.owner = owner
	cs.msec = msec
}

// Clear forgets the saved click.
func (cs *ClickState) Clear() {
	cs.owner = nil
}

// HasSaved returns true if a click is saved.
func (cs *ClickState) HasSaved() bool {
	return cs.owner != nil
}

// IsDouble reports whether a click on owner at msec follows the saved
// click closely enough to be a double click.
func (cs *ClickState) IsDouble(owner interface{}, msec uint32) bool {
	return owner != nil && cs.owner == owner && msec-cs.msec < cs.threshold()
}
