// Package render turns a syntax tree into styled text lines, one per node,
// followed by a help footer. Lines carry roles rather than colors; the
// terminal decides how each role looks.
package render

import (
	"strconv"
	"strings"

	"example.com/tsview/pkg/config"
	"example.com/tsview/pkg/syntax"
)

// Role classifies a span for styling.
type Role int

const (
	RolePlain Role = iota
	RoleGuide
	RoleField
	RoleKind
	RoleError
	RoleCapture
	RoleRange
	RoleSource
	RoleHelp
)

// Span is a run of text sharing one style.
type Span struct {
	Text string
	Role Role
	// Highlight marks text drawn on the capture highlight background.
	Highlight bool
}

// Line is one output row.
type Line []Span

// String returns the line without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Input is everything NodeLine needs to format one node.
type Input struct {
	Node         syntax.Node
	Depth        int
	Field        string
	Slots        []uint32
	CaptureNames []string
	Highlight    bool
	Display      config.Display
	Source       []byte
}

// NodeLine formats one node as guide, field, kind, capture tags, byte range
// and source excerpt, in that order.
func NodeLine(in Input) Line {
	var line Line
	if in.Depth > 0 {
		unit := "|" + strings.Repeat(" ", in.Display.IndentLevel)
		line = append(line, Span{Text: strings.Repeat(unit, in.Depth), Role: RoleGuide, Highlight: in.Highlight})
	}
	if in.Display.ShowFieldNames && in.Field != "" {
		line = append(line, Span{Text: in.Field, Role: RoleField, Highlight: in.Highlight}, Span{Text: " "})
	}
	if in.Node.IsError() {
		line = append(line, Span{Text: in.Node.Kind(), Role: RoleError})
	} else {
		line = append(line, Span{Text: in.Node.Kind(), Role: RoleKind, Highlight: in.Highlight})
	}
	line = append(line, Span{Text: " "})
	for _, slot := range in.Slots {
		line = append(line, Span{Text: "@"}, Span{Text: captureName(in.CaptureNames, slot), Role: RoleCapture}, Span{Text: " "})
	}
	if in.Display.ShowRanges {
		line = append(line, Span{Text: " "}, Span{Text: in.Node.Range().String(), Role: RoleRange})
	}
	if in.Display.ShowSource {
		line = append(line, Span{Text: " "}, Span{Text: strconv.Quote(in.Node.Text(in.Source)), Role: RoleSource})
	}
	return line
}

func captureName(names []string, slot uint32) string {
	if int(slot) < len(names) {
		return names[slot]
	}
	return strconv.FormatUint(uint64(slot), 10)
}
