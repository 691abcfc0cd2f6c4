package app

import (
	"math"
	"sync"

	"example.com/tsview/pkg/config"
	"example.com/tsview/pkg/render"
	"github.com/gdamore/tcell/v2"
)

// ScreenTerminal draws frames on a tcell screen. Frames taller than the
// screen are clipped to a scrollable viewport; long lines are cut at the
// right edge.
type ScreenTerminal struct {
	Screen tcell.Screen
	Theme  config.Theme

	mu      sync.Mutex
	pending []render.Line
	shown   []render.Line
	top     int
}

// NewScreenTerminal wraps an initialized screen.
func NewScreenTerminal(s tcell.Screen, th config.Theme) *ScreenTerminal {
	return &ScreenTerminal{Screen: s, Theme: th}
}

func (t *ScreenTerminal) Clear() {
	t.mu.Lock()
	t.pending = nil
	t.mu.Unlock()
}

func (t *ScreenTerminal) WriteLine(l render.Line) {
	t.mu.Lock()
	t.pending = append(t.pending, l)
	t.mu.Unlock()
}

// Show replaces the visible frame with the lines written since Clear. The
// viewport keeps its position where the new frame allows.
func (t *ScreenTerminal) Show() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shown = t.pending
	t.pending = nil
	t.paint()
	return nil
}

func (t *ScreenTerminal) Scroll(delta int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.top += delta
	t.paint()
}

func (t *ScreenTerminal) ScrollPage(pages int) {
	_, h := t.Screen.Size()
	t.Scroll(pages * h)
}

func (t *ScreenTerminal) ScrollTo(top int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.top = top
	t.paint()
}

func (t *ScreenTerminal) ScrollToEnd() {
	t.ScrollTo(math.MaxInt)
}

// Resize syncs the screen after a terminal size change and repaints.
func (t *ScreenTerminal) Resize() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Screen.Sync()
	t.paint()
}

// Top is the index of the first visible line.
func (t *ScreenTerminal) Top() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.top
}

// paint requires t.mu.
func (t *ScreenTerminal) paint() {
	s := t.Screen
	width, height := s.Size()
	if last := len(t.shown) - height; t.top > last {
		t.top = last
	}
	if t.top < 0 {
		t.top = 0
	}
	s.SetStyle(t.Theme.Plain())
	s.Clear()
	for y := 0; y < height && t.top+y < len(t.shown); y++ {
		x := 0
		for _, span := range t.shown[t.top+y] {
			style := t.style(span)
			for _, r := range span.Text {
				if x >= width {
					break
				}
				s.SetContent(x, y, r, nil, style)
				x++
			}
		}
	}
	s.Show()
}

func (t *ScreenTerminal) style(span render.Span) tcell.Style {
	th := t.Theme
	st := th.Plain()
	switch span.Role {
	case render.RoleGuide:
		st = st.Foreground(th.Guide).Attributes(tcell.AttrDim)
	case render.RoleField:
		st = st.Foreground(th.Field)
	case render.RoleError:
		st = st.Foreground(th.Error)
	case render.RoleCapture:
		st = st.Foreground(th.Capture)
	case render.RoleRange:
		st = st.Foreground(th.Range).Attributes(tcell.AttrDim)
	case render.RoleSource:
		st = st.Foreground(th.Source)
	case render.RoleHelp:
		st = st.Foreground(th.Help)
	}
	if span.Highlight {
		st = th.Highlighted(st, span.Role == render.RoleKind)
	}
	return st
}
