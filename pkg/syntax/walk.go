package syntax

import "iter"

// Visit is one step of a pre-order walk.
type Visit struct {
	Node  Node
	Depth int
	Field string
}

// Walk yields every node reachable from the cursor's current position in
// pre-order, along with its depth relative to the start and its field name.
// The walk drives the cursor itself, so the sequence can be ranged over only
// once.
func Walk(c Cursor) iter.Seq[Visit] {
	return func(yield func(Visit) bool) {
		depth := 0
		for {
			if !yield(Visit{Node: c.Node(), Depth: depth, Field: c.FieldName()}) {
				return
			}
			if c.GotoFirstChild() {
				depth++
				continue
			}
			if depth > 0 && c.GotoNextSibling() {
				continue
			}
			for {
				if depth == 0 || !c.GotoParent() {
					return
				}
				depth--
				if depth > 0 && c.GotoNextSibling() {
					break
				}
			}
		}
	}
}
