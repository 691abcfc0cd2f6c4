// Package highlight maps query captures onto tree nodes and tracks which
// part of a walk lies inside a captured region.
package highlight

import "example.com/tsview/pkg/syntax"

// Index maps each captured node to the capture slots matched at it.
type Index struct {
	slots map[syntax.NodeID][]uint32
}

// BuildIndex folds every capture of every match into an Index. Slots keep
// first-seen order, duplicates included.
func BuildIndex(matches []syntax.Match) Index {
	idx := Index{slots: make(map[syntax.NodeID][]uint32)}
	for _, m := range matches {
		for _, c := range m.Captures {
			id := c.Node.ID()
			idx.slots[id] = append(idx.slots[id], c.Index)
		}
	}
	return idx
}

// IndexQuery runs q over tree and indexes the result. A nil query yields
// an empty index.
func IndexQuery(q syntax.Query, tree syntax.Tree, src []byte) Index {
	if q == nil {
		return Index{}
	}
	return BuildIndex(q.Matches(tree, src))
}

// Slots returns the capture slots recorded for n.
func (i Index) Slots(n syntax.Node) []uint32 {
	return i.slots[n.ID()]
}

// Has reports whether n was captured at all.
func (i Index) Has(n syntax.Node) bool {
	_, ok := i.slots[n.ID()]
	return ok
}

// Len is the number of distinct captured nodes.
func (i Index) Len() int { return len(i.slots) }
