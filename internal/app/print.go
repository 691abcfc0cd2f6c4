package app

import (
	"fmt"
	"io"
	"strings"

	"example.com/tsview/pkg/config"
	"example.com/tsview/pkg/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// PrintTerminal writes frames to a plain writer such as stdout, styled with
// lipgloss. Color is dropped automatically when the writer is not a
// terminal.
type PrintTerminal struct {
	w      io.Writer
	styles map[render.Role]lipgloss.Style
	mark   lipgloss.Style
	lines  []render.Line
}

// NewPrintTerminal builds lipgloss styles for th on a renderer bound to w.
func NewPrintTerminal(w io.Writer, th config.Theme) *PrintTerminal {
	re := lipgloss.NewRenderer(w)
	base := re.NewStyle()
	fg := func(c tcell.Color) lipgloss.Style {
		if lc, ok := lipglossColor(c); ok {
			return base.Foreground(lc)
		}
		return base
	}
	p := &PrintTerminal{
		w: w,
		styles: map[render.Role]lipgloss.Style{
			render.RolePlain:   base,
			render.RoleKind:    fg(th.Foreground),
			render.RoleGuide:   fg(th.Guide).Faint(true),
			render.RoleField:   fg(th.Field),
			render.RoleError:   fg(th.Error),
			render.RoleCapture: fg(th.Capture),
			render.RoleRange:   fg(th.Range).Faint(true),
			render.RoleSource:  fg(th.Source),
			render.RoleHelp:    fg(th.Help),
		},
		mark: base.Reverse(true),
	}
	if bg, ok := lipglossColor(th.HighlightBG); ok {
		p.mark = base.Background(bg)
		if hf, ok := lipglossColor(th.HighlightFG); ok {
			p.mark = p.mark.Foreground(hf)
		}
	}
	return p
}

// lipglossColor converts palette and RGB colors; the terminal default has
// no equivalent.
func lipglossColor(c tcell.Color) (lipgloss.Color, bool) {
	h := c.Hex()
	if h < 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%06x", h)), true
}

func (p *PrintTerminal) Clear() { p.lines = nil }

func (p *PrintTerminal) WriteLine(l render.Line) { p.lines = append(p.lines, l) }

func (p *PrintTerminal) Show() error {
	var b strings.Builder
	for _, l := range p.lines {
		for _, span := range l {
			b.WriteString(p.style(span).Render(span.Text))
		}
		b.WriteByte('\n')
	}
	p.lines = nil
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *PrintTerminal) style(span render.Span) lipgloss.Style {
	st := p.styles[span.Role]
	if span.Highlight {
		st = st.Background(p.mark.GetBackground())
		if span.Role == render.RoleKind {
			st = st.Inherit(p.mark)
		}
		if _, none := p.mark.GetBackground().(lipgloss.NoColor); none {
			st = st.Reverse(true)
		}
	}
	return st
}
