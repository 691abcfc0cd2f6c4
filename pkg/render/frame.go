package render

import (
	"fmt"

	"example.com/tsview/pkg/config"
	"example.com/tsview/pkg/highlight"
	"example.com/tsview/pkg/syntax"
)

// Frame renders every node of tree in pre-order and appends the help
// footer. query may be nil.
func Frame(tree syntax.Tree, query syntax.Query, src []byte, d config.Display, keys config.Keymap) []Line {
	idx := highlight.IndexQuery(query, tree, src)
	var names []string
	if query != nil {
		names = query.CaptureNames()
	}
	tracker := highlight.NewTracker(idx)
	var lines []Line
	for v := range syntax.Walk(tree.Walk()) {
		active := tracker.Visit(v.Node)
		lines = append(lines, NodeLine(Input{
			Node:         v.Node,
			Depth:        v.Depth,
			Field:        v.Field,
			Slots:        idx.Slots(v.Node),
			CaptureNames: names,
			Highlight:    active,
			Display:      d,
			Source:       src,
		}))
	}
	return append(lines, Footer(keys)...)
}

var helpText = map[config.Command]string{
	config.CmdIncreaseIndent: "increase indent",
	config.CmdDecreaseIndent: "decrease indent",
	config.CmdToggleRanges:   "toggle ranges",
	config.CmdToggleSource:   "toggle source text",
	config.CmdReload:         "reload from disk",
}

// Footer lists the key bindings after a blank line.
func Footer(keys config.Keymap) []Line {
	if keys == nil {
		keys = config.DefaultKeymap()
	}
	lines := []Line{{}}
	for _, cmd := range config.Commands {
		lines = append(lines, Line{{Text: fmt.Sprintf("(%c) %s", keys[cmd], helpText[cmd]), Role: RoleHelp}})
	}
	return append(lines, Line{{Text: "(C-c) quit", Role: RoleHelp}})
}
