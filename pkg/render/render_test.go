package render_test

import (
	"context"
	"strings"
	"testing"

	"example.com/tsview/internal/testhelpers"
	"example.com/tsview/pkg/config"
	"example.com/tsview/pkg/render"
	"example.com/tsview/pkg/syntax"
)

func parse(t *testing.T, src, query string) (syntax.Tree, syntax.Query) {
	t.Helper()
	g := &testhelpers.Grammar{}
	tree, err := g.Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if query == "" {
		return tree, nil
	}
	q, err := g.CompileQuery([]byte(query))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return tree, q
}

func spanWith(l render.Line, role render.Role) (render.Span, bool) {
	for _, s := range l {
		if s.Role == role {
			return s, true
		}
	}
	return render.Span{}, false
}

func TestFrameAssignment(t *testing.T) {
	src := "x = 1"
	tree, q := parse(t, src, "(identifier) @var")
	lines := render.Frame(tree, q, []byte(src), config.DefaultDisplay(), config.DefaultKeymap())

	want := []string{
		`program  0..5 "x = 1"`,
		`|  name identifier @var  0..1 "x"`,
		`|  value literal  4..5 "1"`,
	}
	for i, w := range want {
		if got := lines[i].String(); got != w {
			t.Fatalf("line %d: expected %q, got %q", i, w, got)
		}
	}
	root, _ := spanWith(lines[0], render.RoleKind)
	if root.Highlight {
		t.Fatalf("expected root without highlight")
	}
	ident, _ := spanWith(lines[1], render.RoleKind)
	if !ident.Highlight {
		t.Fatalf("expected identifier highlighted")
	}
	if g, _ := spanWith(lines[1], render.RoleGuide); !g.Highlight {
		t.Fatalf("expected highlighted guide on captured line")
	}
	if c, ok := spanWith(lines[1], render.RoleCapture); !ok || c.Text != "var" {
		t.Fatalf("expected @var capture span, got %+v", c)
	}
	lit, _ := spanWith(lines[2], render.RoleKind)
	if lit.Highlight {
		t.Fatalf("expected literal outside the region")
	}
}

func TestFrameTogglingRanges(t *testing.T) {
	src := "x = 1"
	tree, q := parse(t, src, "(identifier) @var")
	d := config.DefaultDisplay()
	d.ToggleRanges()
	off := render.Frame(tree, q, []byte(src), d, nil)
	for _, l := range off[:3] {
		if _, ok := spanWith(l, render.RoleRange); ok {
			t.Fatalf("expected no range with ranges off: %q", l.String())
		}
	}
	d.ToggleRanges()
	tree, q = parse(t, src, "(identifier) @var")
	on := render.Frame(tree, q, []byte(src), d, nil)
	if r, ok := spanWith(on[1], render.RoleRange); !ok || r.Text != "0..1" {
		t.Fatalf("expected range back after second toggle, got %q", on[1].String())
	}
	d.ToggleRanges()
	tree, q = parse(t, src, "(identifier) @var")
	again := render.Frame(tree, q, []byte(src), d, nil)
	for i := range off {
		if off[i].String() != again[i].String() {
			t.Fatalf("line %d differs after on/off: %q vs %q", i, off[i].String(), again[i].String())
		}
	}
}

func TestNodeLineOptionalParts(t *testing.T) {
	leaf := testhelpers.N("identifier", 0, 3)
	testhelpers.NewTree(testhelpers.N("root", 0, 3, leaf))
	d := config.Display{IndentLevel: 0}
	l := render.NodeLine(render.Input{Node: leaf, Depth: 3, Field: "name", Display: d, Source: []byte("abc")})
	if got := l.String(); got != "|||identifier " {
		t.Fatalf("unexpected line %q", got)
	}
	d = config.Display{IndentLevel: 1, ShowFieldNames: true, ShowSource: true}
	l = render.NodeLine(render.Input{Node: leaf, Depth: 1, Field: "name", Display: d, Source: []byte("a\"\n")})
	if got := l.String(); got != `| name identifier  "a\"\n"` {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestNodeLineErrorNode(t *testing.T) {
	bad := testhelpers.N("ERROR", 0, 1).Err()
	testhelpers.NewTree(bad)
	l := render.NodeLine(render.Input{Node: bad, Highlight: true, Display: config.DefaultDisplay(), Source: []byte("?")})
	if _, ok := spanWith(l, render.RoleKind); ok {
		t.Fatalf("error node must not use the kind role")
	}
	s, ok := spanWith(l, render.RoleError)
	if !ok || s.Highlight {
		t.Fatalf("expected unhighlighted error span, got %+v", s)
	}
}

func TestNodeLineDuplicateCaptures(t *testing.T) {
	n := testhelpers.N("identifier", 0, 1)
	testhelpers.NewTree(n)
	l := render.NodeLine(render.Input{
		Node:         n,
		Slots:        []uint32{1, 0, 1},
		CaptureNames: []string{"a", "b"},
		Display:      config.Display{},
	})
	if got := l.String(); got != "identifier @b @a @b " {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestFrameFooter(t *testing.T) {
	tree, _ := parse(t, "x", "")
	lines := render.Frame(tree, nil, []byte("x"), config.DefaultDisplay(), nil)
	footer := lines[len(lines)-7:]
	if footer[0].String() != "" {
		t.Fatalf("expected blank line before help, got %q", footer[0].String())
	}
	want := []string{
		"(>) increase indent",
		"(<) decrease indent",
		"(n) toggle ranges",
		"(s) toggle source text",
		"(r) reload from disk",
		"(C-c) quit",
	}
	for i, w := range want {
		if got := footer[i+1].String(); got != w {
			t.Fatalf("footer %d: expected %q, got %q", i, w, got)
		}
	}
	if len(lines) != 2+len(footer) {
		t.Fatalf("expected 2 node lines before footer, got %d", len(lines)-len(footer))
	}
}

func TestFooterUsesKeymap(t *testing.T) {
	km := config.DefaultKeymap()
	km[config.CmdReload] = 'R'
	var found bool
	for _, l := range render.Footer(km) {
		if strings.HasPrefix(l.String(), "(R) reload") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected remapped reload key in footer")
	}
}
