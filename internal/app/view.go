package app

import (
	"context"
	"fmt"
	"os"

	"example.com/tsview/pkg/config"
	"example.com/tsview/pkg/render"
	"example.com/tsview/pkg/syntax"
)

// Grammar parses sources and compiles queries for one language.
type Grammar interface {
	Parse(ctx context.Context, src []byte) (syntax.Tree, error)
	CompileQuery(src []byte) (syntax.Query, error)
}

// View is everything needed to draw one source file: the display settings
// plus the parse result they apply to.
type View struct {
	Display   config.Display
	Path      string
	QueryPath string // empty when no query was given
	Grammar   Grammar
	Source    []byte
	Tree      syntax.Tree
	Query     syntax.Query
}

// NewView parses src and, when queryPath is set, reads and compiles the
// query at that path.
func NewView(ctx context.Context, src []byte, path, queryPath string, g Grammar, d config.Display) (*View, error) {
	tree, err := g.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	v := &View{
		Display:   d,
		Path:      path,
		QueryPath: queryPath,
		Grammar:   g,
		Source:    append([]byte(nil), src...),
		Tree:      tree,
	}
	if queryPath != "" {
		qsrc, err := os.ReadFile(queryPath)
		if err != nil {
			return nil, fmt.Errorf("read query: %w", err)
		}
		q, err := g.CompileQuery(qsrc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", queryPath, err)
		}
		v.Query = q
	}
	return v, nil
}

// Reload re-reads the source and query from disk and replaces the parse
// result. Display settings carry over. On error v is left as it was.
func (v *View) Reload(ctx context.Context) error {
	src, err := os.ReadFile(v.Path)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	next, err := NewView(ctx, src, v.Path, v.QueryPath, v.Grammar, v.Display)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	*v = *next
	return nil
}

func (v *View) IncreaseIndent() { v.Display.IncreaseIndent() }
func (v *View) DecreaseIndent() { v.Display.DecreaseIndent() }
func (v *View) ToggleRanges()   { v.Display.ToggleRanges() }
func (v *View) ToggleSource()   { v.Display.ToggleSource() }

// Frame renders the tree and help footer.
func (v *View) Frame(keys config.Keymap) []render.Line {
	return render.Frame(v.Tree, v.Query, v.Source, v.Display, keys)
}

// Draw clears t and writes a full frame to it.
func (v *View) Draw(t Terminal, keys config.Keymap) error {
	t.Clear()
	for _, l := range v.Frame(keys) {
		t.WriteLine(l)
	}
	return t.Show()
}
