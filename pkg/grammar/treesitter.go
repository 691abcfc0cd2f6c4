package grammar

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"example.com/tsview/pkg/syntax"
)

// QueryError reports a query that failed to compile.
type QueryError struct {
	Language string
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query for %s: %v", e.Language, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// Parse returns a syntax tree for src. Each call builds a fresh parser, so
// concurrent calls are safe.
func (l *Language) Parse(ctx context.Context, src []byte) (syntax.Tree, error) {
	p := sitter.NewParser()
	p.SetLanguage(l.ts)
	t, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.Name, err)
	}
	return &Tree{t: t}, nil
}

// CompileQuery compiles a tree-sitter query against this language.
func (l *Language) CompileQuery(src []byte) (syntax.Query, error) {
	q, err := sitter.NewQuery(src, l.ts)
	if err != nil {
		return nil, &QueryError{Language: l.Name, Err: err}
	}
	return &Query{q: q}, nil
}

// Tree adapts a tree-sitter tree.
type Tree struct {
	t *sitter.Tree
}

func (t *Tree) Walk() syntax.Cursor {
	return &cursor{c: sitter.NewTreeCursor(t.t.RootNode())}
}

// node pairs a tree-sitter node with its child path, which is part of its
// ID. A nil path on a non-root node means not yet known.
type node struct {
	n    *sitter.Node
	path []int
	root bool
}

func (n *node) ID() syntax.NodeID {
	if n.path == nil && !n.root {
		n.path = pathOf(n.n)
		n.root = len(n.path) == 0
	}
	return syntax.NodeID{Start: n.n.StartByte(), End: n.n.EndByte(), Kind: n.n.Type(), Path: syntax.ChildPath(n.path)}
}

// pathOf climbs to the root, recording the child index at each level.
func pathOf(n *sitter.Node) []int {
	var rev []int
	for p := n.Parent(); p != nil && !p.IsNull(); n, p = p, p.Parent() {
		rev = append(rev, childIndex(p, n))
	}
	path := make([]int, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = idx
	}
	return path
}

func childIndex(parent, child *sitter.Node) int {
	for i := 0; i < int(parent.ChildCount()); i++ {
		if c := parent.Child(i); c != nil && c.Equal(child) {
			return i
		}
	}
	return -1
}

func (n *node) Kind() string { return n.n.Type() }

func (n *node) Range() syntax.Range {
	return syntax.Range{Start: n.n.StartByte(), End: n.n.EndByte()}
}

func (n *node) IsError() bool { return n.n.IsError() }

func (n *node) Text(src []byte) string {
	start, end := n.n.StartByte(), n.n.EndByte()
	if int(end) > len(src) || start > end {
		return ""
	}
	return string(src[start:end])
}

type cursor struct {
	c *sitter.TreeCursor
	// path holds the child index at each level below the start node.
	path []int
}

func (c *cursor) Node() syntax.Node {
	return &node{n: c.c.CurrentNode(), path: append([]int{}, c.path...), root: len(c.path) == 0}
}

func (c *cursor) FieldName() string { return c.c.CurrentFieldName() }

func (c *cursor) GotoFirstChild() bool {
	if c.c.GoToFirstChild() {
		c.path = append(c.path, 0)
		return true
	}
	return false
}

func (c *cursor) GotoNextSibling() bool {
	if len(c.path) > 0 && c.c.GoToNextSibling() {
		c.path[len(c.path)-1]++
		return true
	}
	return false
}

func (c *cursor) GotoParent() bool {
	if c.c.GoToParent() {
		c.path = c.path[:len(c.path)-1]
		return true
	}
	return false
}

// Query adapts a compiled tree-sitter query.
type Query struct {
	q *sitter.Query
}

// Matches runs the query over the whole tree, applying text predicates
// such as #eq? and #match? against src.
func (q *Query) Matches(tree syntax.Tree, src []byte) []syntax.Match {
	t, ok := tree.(*Tree)
	if !ok {
		return nil
	}
	qc := sitter.NewQueryCursor()
	qc.Exec(q.q, t.t.RootNode())
	var out []syntax.Match
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		m = qc.FilterPredicates(m, src)
		if len(m.Captures) == 0 {
			continue
		}
		sm := syntax.Match{Captures: make([]syntax.Capture, 0, len(m.Captures))}
		for _, c := range m.Captures {
			n := c.Node
			sm.Captures = append(sm.Captures, syntax.Capture{Node: &node{n: n}, Index: c.Index})
		}
		out = append(out, sm)
	}
	return out
}

func (q *Query) CaptureNames() []string {
	n := q.q.CaptureCount()
	names := make([]string, n)
	for i := uint32(0); i < n; i++ {
		names[i] = q.q.CaptureNameForId(i)
	}
	return names
}
