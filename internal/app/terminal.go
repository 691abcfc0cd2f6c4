package app

import "example.com/tsview/pkg/render"

// Terminal receives whole frames: Clear, one WriteLine per row, then Show.
type Terminal interface {
	Clear()
	WriteLine(render.Line)
	Show() error
}

// Scroller is implemented by terminals with a viewport over the last frame.
type Scroller interface {
	Scroll(delta int)
	ScrollPage(pages int)
	ScrollTo(top int)
	ScrollToEnd()
	Resize()
}
