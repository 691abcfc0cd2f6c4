package app

import (
	"example.com/tsview/pkg/config"
	"github.com/gdamore/tcell/v2"
)

// EventKind distinguishes what the keyboard reader forwards to the runner.
type EventKind int

const (
	EventCommand EventKind = iota
	EventQuit
	EventResize
	EventScroll
	EventPage
	EventHome
	EventEnd
)

// Event is one input the runner acts on.
type Event struct {
	Kind    EventKind
	Command config.Command
	// Delta is the line or page count for scroll events.
	Delta int
}

// translate maps a tcell event onto an Event. Unbound keys report false.
func translate(ev tcell.Event, keys config.Keymap) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Event{Kind: EventResize}, true
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return Event{Kind: EventQuit}, true
		case tcell.KeyUp:
			return Event{Kind: EventScroll, Delta: -1}, true
		case tcell.KeyDown:
			return Event{Kind: EventScroll, Delta: 1}, true
		case tcell.KeyPgUp:
			return Event{Kind: EventPage, Delta: -1}, true
		case tcell.KeyPgDn:
			return Event{Kind: EventPage, Delta: 1}, true
		case tcell.KeyHome:
			return Event{Kind: EventHome}, true
		case tcell.KeyEnd:
			return Event{Kind: EventEnd}, true
		case tcell.KeyRune:
			if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
				if ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0 {
					return Event{Kind: EventQuit}, true
				}
				return Event{}, false
			}
			if cmd, ok := keys.Lookup(ev.Rune()); ok {
				return Event{Kind: EventCommand, Command: cmd}, true
			}
		}
	}
	return Event{}, false
}

// readKeys blocks on the screen's event queue and forwards recognized input
// to out until the screen is finalized or done is closed.
func readKeys(s tcell.Screen, keys config.Keymap, out chan<- Event, done <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		e, ok := translate(ev, keys)
		if !ok {
			continue
		}
		select {
		case out <- e:
		case <-done:
			return
		}
	}
}
