package app

import (
	"context"
	"fmt"
	"time"

	"example.com/tsview/pkg/config"
	"example.com/tsview/pkg/logs"
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

// DefaultTick is how often the runner polls for keyboard commands.
const DefaultTick = 10 * time.Millisecond

// Runner owns the event loop. Input arrives from three independent
// producers: the keyboard reader and one file watcher each for the source
// and the query. All of them go through Shared, so a producer that finds
// the view busy drops its event.
type Runner struct {
	Shared *Shared
	Term   Terminal
	// Screen supplies keyboard events. Without one, only Events is read.
	Screen tcell.Screen
	Keymap config.Keymap
	Logger *logs.Logger

	// WatchPaths are watched for writes; each gets its own watcher.
	WatchPaths []string

	// Fatal is called with reload and draw failures from any goroutine.
	// It is expected not to return.
	Fatal func(error)

	Tick   time.Duration
	Events chan Event
}

// Run draws the view once and then processes events until ctx is done or
// the user quits.
func (r *Runner) Run(ctx context.Context) error {
	if r.Tick <= 0 {
		r.Tick = DefaultTick
	}
	if r.Keymap == nil {
		r.Keymap = config.DefaultKeymap()
	}
	if r.Events == nil {
		r.Events = make(chan Event, 64)
	}
	r.Logger.RunStart(r.WatchPaths)
	defer r.Logger.RunEnd()

	for _, path := range r.WatchPaths {
		w, err := Watch(path, func(ev fsnotify.Event) { r.fileChanged(ctx, ev) }, r.watchError)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	done := make(chan struct{})
	defer close(done)
	if r.Screen != nil {
		go readKeys(r.Screen, r.Keymap, r.Events, done)
	}

	if _, err := r.Shared.TryRead(r.draw); err != nil {
		r.fatal(err)
	}

	ticker := time.NewTicker(r.Tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		select {
		case ev := <-r.Events:
			if r.handle(ctx, ev) {
				r.Logger.Quit()
				return nil
			}
		default:
		}
	}
}

// handle applies one event and reports whether the runner should quit.
func (r *Runner) handle(ctx context.Context, ev Event) bool {
	sc, _ := r.Term.(Scroller)
	switch ev.Kind {
	case EventQuit:
		return true
	case EventResize:
		if sc != nil {
			sc.Resize()
		}
	case EventScroll:
		if sc != nil {
			sc.Scroll(ev.Delta)
		}
	case EventPage:
		if sc != nil {
			sc.ScrollPage(ev.Delta)
		}
	case EventHome:
		if sc != nil {
			sc.ScrollTo(0)
		}
	case EventEnd:
		if sc != nil {
			sc.ScrollToEnd()
		}
	case EventCommand:
		r.Logger.Key(string(ev.Command))
		r.update(string(ev.Command), func(v *View) error {
			return r.apply(ctx, v, ev.Command)
		})
	}
	return false
}

// apply runs a keyboard command against v. Called with the write lock held.
func (r *Runner) apply(ctx context.Context, v *View, cmd config.Command) error {
	switch cmd {
	case config.CmdIncreaseIndent:
		v.IncreaseIndent()
	case config.CmdDecreaseIndent:
		v.DecreaseIndent()
	case config.CmdToggleRanges:
		v.ToggleRanges()
	case config.CmdToggleSource:
		v.ToggleSource()
	case config.CmdReload:
		if err := r.reload(ctx, v); err != nil {
			return err
		}
	default:
		return nil
	}
	return r.draw(v)
}

func (r *Runner) fileChanged(ctx context.Context, ev fsnotify.Event) {
	r.Logger.FileChanged(ev.Name, ev.Op.String())
	r.update("watch", func(v *View) error {
		if err := r.reload(ctx, v); err != nil {
			return err
		}
		return r.draw(v)
	})
}

func (r *Runner) reload(ctx context.Context, v *View) error {
	err := v.Reload(ctx)
	r.Logger.Reload(v.Path, len(v.Source), err)
	return err
}

// update runs fn under a best-effort write lock. A busy lock drops the
// attempt; errors are fatal.
func (r *Runner) update(source string, fn func(*View) error) {
	applied, err := r.Shared.TryUpdate(fn)
	if err != nil {
		r.fatal(err)
		return
	}
	if !applied {
		r.Logger.Contended(source, r.Shared.Skipped())
	}
}

func (r *Runner) draw(v *View) error {
	if err := v.Draw(r.Term, r.Keymap); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

func (r *Runner) watchError(err error) {
	r.Logger.WatchError(err)
}

func (r *Runner) fatal(err error) {
	r.Logger.Fatal(err)
	if r.Fatal != nil {
		r.Fatal(err)
		return
	}
	panic(err)
}
