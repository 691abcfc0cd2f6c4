package app

import (
	"strings"
	"testing"

	"example.com/tsview/pkg/config"
	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("initializing simulation screen failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestScreenTerminalDrawsFrame(t *testing.T) {
	s := newSimScreen(t, 60, 20)
	th := config.DefaultTheme()
	term := NewScreenTerminal(s, th)
	v, _, _, _ := newTestView(t, "x = 1", "(identifier) @var")
	if err := v.Draw(term, config.DefaultKeymap()); err != nil {
		t.Fatalf("draw: %v", err)
	}

	if got, want := rowText(s, 0), `program  0..5 "x = 1"`; got != want {
		t.Fatalf("row 0: expected %q, got %q", want, got)
	}
	if got, want := rowText(s, 1), `|  name identifier @var  0..1 "x"`; got != want {
		t.Fatalf("row 1: expected %q, got %q", want, got)
	}
	if got := rowText(s, 9); got != "(C-c) quit" {
		t.Fatalf("expected quit help on row 9, got %q", got)
	}

	// "identifier" starts after "|  name ".
	_, _, style, _ := s.GetContent(8, 1)
	fg, bg, _ := style.Decompose()
	if bg != th.HighlightBG || fg != th.HighlightFG {
		t.Fatalf("expected highlighted kind, got fg=%v bg=%v", fg, bg)
	}
	_, _, style, _ = s.GetContent(3, 1)
	if fg, bg, _ = style.Decompose(); bg != th.HighlightBG || fg != th.Field {
		t.Fatalf("expected field color on highlight, got fg=%v bg=%v", fg, bg)
	}
	_, _, style, _ = s.GetContent(0, 2)
	if _, bg, attr := style.Decompose(); bg == th.HighlightBG || attr&tcell.AttrDim == 0 {
		t.Fatalf("expected dim unhighlighted guide on row 2, got bg=%v attr=%v", bg, attr)
	}
}

func TestScreenTerminalClipsWidth(t *testing.T) {
	s := newSimScreen(t, 10, 20)
	term := NewScreenTerminal(s, config.DefaultTheme())
	v, _, _, _ := newTestView(t, "x = 1", "")
	if err := v.Draw(term, config.DefaultKeymap()); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if got := rowText(s, 0); got != "program  0" {
		t.Fatalf("expected clipped row, got %q", got)
	}
}

func TestScreenTerminalScroll(t *testing.T) {
	s := newSimScreen(t, 40, 5)
	term := NewScreenTerminal(s, config.DefaultTheme())
	v, _, _, _ := newTestView(t, "x = 1", "")
	if err := v.Draw(term, config.DefaultKeymap()); err != nil {
		t.Fatalf("draw: %v", err)
	}
	// 3 tree lines plus 7 footer lines on a 5 row screen.
	term.ScrollToEnd()
	if term.Top() != 5 {
		t.Fatalf("expected top 5 at end, got %d", term.Top())
	}
	if got := rowText(s, 4); got != "(C-c) quit" {
		t.Fatalf("expected last help line at bottom, got %q", got)
	}
	term.Scroll(-100)
	if term.Top() != 0 || !strings.HasPrefix(rowText(s, 0), "program") {
		t.Fatalf("expected top of frame, got %d %q", term.Top(), rowText(s, 0))
	}
	term.Scroll(1)
	if got := rowText(s, 0); !strings.HasPrefix(got, "|  name identifier") {
		t.Fatalf("expected second line at top, got %q", got)
	}
	term.ScrollPage(1)
	if term.Top() != 5 {
		t.Fatalf("expected page scroll clamped to 5, got %d", term.Top())
	}

	// A redraw keeps the viewport.
	if err := v.Draw(term, config.DefaultKeymap()); err != nil {
		t.Fatalf("redraw: %v", err)
	}
	if term.Top() != 5 {
		t.Fatalf("expected top kept across redraw, got %d", term.Top())
	}
	term.ScrollTo(0)
	term.Resize()
	if term.Top() != 0 {
		t.Fatalf("expected top 0 after resize, got %d", term.Top())
	}
}
