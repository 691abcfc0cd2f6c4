// Package testhelpers provides an in-memory tree, grammar and query engine so
// traversal, highlighting and view tests can run without a parser backend.
package testhelpers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"unicode"

	"example.com/tsview/pkg/syntax"
)

// Node is a hand-built tree node.
type Node struct {
	kind     string
	field    string
	start    uint32
	end      uint32
	isError  bool
	path     []int
	parent   *Node
	children []*Node
}

// N builds a node spanning [start, end) with the given children.
func N(kind string, start, end uint32, children ...*Node) *Node {
	return &Node{kind: kind, start: start, end: end, children: children}
}

// Field sets the field name the node hangs off its parent under.
func (n *Node) Field(name string) *Node {
	n.field = name
	return n
}

// Err flags the node as an error node.
func (n *Node) Err() *Node {
	n.isError = true
	return n
}

func (n *Node) ID() syntax.NodeID {
	return syntax.NodeID{Start: n.start, End: n.end, Kind: n.kind, Path: syntax.ChildPath(n.path)}
}
func (n *Node) Kind() string        { return n.kind }
func (n *Node) Range() syntax.Range { return syntax.Range{Start: n.start, End: n.end} }
func (n *Node) IsError() bool       { return n.isError }

func (n *Node) Text(src []byte) string {
	if int(n.end) > len(src) || n.start > n.end {
		return ""
	}
	return string(src[n.start:n.end])
}

// Tree is an in-memory syntax.Tree.
type Tree struct {
	Root *Node
}

// NewTree links parents and child paths below root.
func NewTree(root *Node) *Tree {
	var link func(n *Node, path []int)
	link = func(n *Node, path []int) {
		n.path = path
		for i, c := range n.children {
			c.parent = n
			link(c, append(append([]int(nil), path...), i))
		}
	}
	link(root, nil)
	return &Tree{Root: root}
}

func (t *Tree) Walk() syntax.Cursor { return &cursor{node: t.Root} }

// Nodes returns every node in pre-order.
func (t *Tree) Nodes() []*Node {
	var out []*Node
	var visit func(n *Node)
	visit = func(n *Node) {
		out = append(out, n)
		for _, c := range n.children {
			visit(c)
		}
	}
	visit(t.Root)
	return out
}

type cursor struct {
	node *Node
}

func (c *cursor) Node() syntax.Node { return c.node }
func (c *cursor) FieldName() string { return c.node.field }

func (c *cursor) GotoFirstChild() bool {
	if len(c.node.children) == 0 {
		return false
	}
	c.node = c.node.children[0]
	return true
}

func (c *cursor) GotoNextSibling() bool {
	p := c.node.parent
	if p == nil {
		return false
	}
	for i, s := range p.children {
		if s == c.node && i+1 < len(p.children) {
			c.node = p.children[i+1]
			return true
		}
	}
	return false
}

func (c *cursor) GotoParent() bool {
	if c.node.parent == nil {
		return false
	}
	c.node = c.node.parent
	return true
}

// Grammar is a toy grammar: the root "program" spans the whole input and
// has one child per whitespace separated token. Words become "identifier"
// (field "name"), digit runs become "literal" (field "value"), a lone "="
// is skipped and anything else becomes an ERROR node.
type Grammar struct {
	parses atomic.Int64
}

func (g *Grammar) Name() string { return "synthetic" }

// Parses counts Parse calls.
func (g *Grammar) Parses() int { return int(g.parses.Load()) }

func (g *Grammar) Parse(_ context.Context, src []byte) (syntax.Tree, error) {
	g.parses.Add(1)
	root := N("program", 0, uint32(len(src)))
	i := 0
	for i < len(src) {
		if unicode.IsSpace(rune(src[i])) {
			i++
			continue
		}
		j := i
		for j < len(src) && !unicode.IsSpace(rune(src[j])) {
			j++
		}
		tok := string(src[i:j])
		i = j
		if tok == "=" {
			continue
		}
		n := N(classify(tok), uint32(j-len(tok)), uint32(j))
		switch n.kind {
		case "identifier":
			n.Field("name")
		case "literal":
			n.Field("value")
		case "ERROR":
			n.Err()
		}
		root.children = append(root.children, n)
	}
	return NewTree(root), nil
}

func classify(tok string) string {
	letters, digits := true, true
	for _, r := range tok {
		if !unicode.IsLetter(r) && r != '_' {
			letters = false
		}
		if !unicode.IsDigit(r) {
			digits = false
		}
	}
	switch {
	case letters:
		return "identifier"
	case digits:
		return "literal"
	default:
		return "ERROR"
	}
}

var patternLine = regexp.MustCompile(`^\(([A-Za-z_]+)\)((?:\s+@[A-Za-z_.]+)+)$`)

// ErrBadPattern is returned by CompileQuery for lines it cannot read.
var ErrBadPattern = errors.New("bad pattern")

// CompileQuery accepts one pattern per line of the form
// "(kind) @name [@name...]". Blank lines and ";" comments are skipped.
func (g *Grammar) CompileQuery(src []byte) (syntax.Query, error) {
	q := &Query{}
	seen := map[string]uint32{}
	for n, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		m := patternLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: %w: %q", n+1, ErrBadPattern, line)
		}
		p := pattern{kind: m[1]}
		for _, name := range strings.Fields(m[2]) {
			name = strings.TrimPrefix(name, "@")
			idx, ok := seen[name]
			if !ok {
				idx = uint32(len(q.names))
				seen[name] = idx
				q.names = append(q.names, name)
			}
			p.slots = append(p.slots, idx)
		}
		q.patterns = append(q.patterns, p)
	}
	return q, nil
}

type pattern struct {
	kind  string
	slots []uint32
}

// Query matches node kinds against a synthetic Tree.
type Query struct {
	names    []string
	patterns []pattern
}

func (q *Query) CaptureNames() []string { return q.names }

func (q *Query) Matches(tree syntax.Tree, _ []byte) []syntax.Match {
	t, ok := tree.(*Tree)
	if !ok {
		return nil
	}
	var out []syntax.Match
	for _, n := range t.Nodes() {
		for _, p := range q.patterns {
			if p.kind != n.kind {
				continue
			}
			m := syntax.Match{}
			for _, s := range p.slots {
				m.Captures = append(m.Captures, syntax.Capture{Node: n, Index: s})
			}
			out = append(out, m)
		}
	}
	return out
}
