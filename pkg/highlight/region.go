package highlight

import "example.com/tsview/pkg/syntax"

// Tracker follows a single highlight region across one pre-order walk.
//
// Only one region is held at a time. A captured node opens a region only
// when none is active, and the region closes at the first node that falls
// outside it. Captures nested inside an open region do not start a region of
// their own, so nested highlights are not distinguished.
type Tracker struct {
	index   Index
	current syntax.Range
	active  bool
}

// NewTracker returns a tracker with no active region.
func NewTracker(index Index) *Tracker {
	return &Tracker{index: index}
}

// Visit advances the tracker to n and reports whether n is inside the
// active region afterwards.
func (t *Tracker) Visit(n syntax.Node) bool {
	r := n.Range()
	if t.active && !t.current.Contains(r) {
		t.active = false
	}
	if !t.active && t.index.Has(n) {
		t.current = r
		t.active = true
	}
	return t.active
}

// Region returns the active region, if any.
func (t *Tracker) Region() (syntax.Range, bool) {
	return t.current, t.active
}
