// Package syntax is the language-neutral view of a parsed tree that the
// highlighter and renderer work against. Parser backends adapt their own
// node and cursor types to these interfaces.
package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Range represents a byte-offset half-open interval [Start, End).
type Range struct {
	Start uint32
	End   uint32
}

// Contains reports whether r encompasses o.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && r.End >= o.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// NodeID identifies one node within a single tree. Two handles to the same
// node compare equal; nodes of different trees are never compared.
//
// Path is the chain of child indexes from the root, so zero-width siblings
// of the same kind at one offset still get distinct IDs.
type NodeID struct {
	Start uint32
	End   uint32
	Kind  string
	Path  string
}

// ChildPath encodes child indexes from the root, e.g. [0 2 1] as "0.2.1".
// The root's path is empty.
func ChildPath(indexes []int) string {
	var b strings.Builder
	for i, idx := range indexes {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}

// Node is a read-only handle into a tree. It must not outlive the tree.
type Node interface {
	ID() NodeID
	Kind() string
	Range() Range
	IsError() bool
	// Text returns the node's source excerpt from src.
	Text(src []byte) string
}

// Cursor is a stateful position in a tree. Moves report false and leave
// the cursor in place when there is nowhere to go.
type Cursor interface {
	Node() Node
	// FieldName is the field under which the current node hangs off its
	// parent, or "".
	FieldName() string
	GotoFirstChild() bool
	GotoNextSibling() bool
	GotoParent() bool
}

// Tree is an immutable parse result.
type Tree interface {
	// Walk returns a fresh cursor positioned at the root.
	Walk() Cursor
}

// Capture is one (node, capture slot) pair from a query match.
type Capture struct {
	Node  Node
	Index uint32
}

// Match is a single pattern match.
type Match struct {
	Captures []Capture
}

// Query is a compiled pattern that can be matched against trees built with
// the same grammar.
type Query interface {
	Matches(tree Tree, src []byte) []Match
	// CaptureNames is indexed by Capture.Index.
	CaptureNames() []string
}
