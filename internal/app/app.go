package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"example.com/tsview/pkg/config"
	"example.com/tsview/pkg/grammar"
	"example.com/tsview/pkg/logs"
	"github.com/gdamore/tcell/v2"
)

// Options is what the command line resolves to.
type Options struct {
	Language   string // a registered name, or "auto" to detect from SourcePath
	SourcePath string
	QueryPath  string

	Config *config.Config
	// Print renders a single frame to Out instead of starting the viewer.
	Print bool
	Out   io.Writer

	Registry *grammar.Registry
	Logger   *logs.Logger
	// Screen overrides the terminal screen, mainly for tests.
	Screen tcell.Screen
	// Exit is called after a fatal error has been reported. Defaults to os.Exit.
	Exit func(code int)
}

// ResolveLanguage maps the language argument onto a grammar.
func ResolveLanguage(reg *grammar.Registry, name, sourcePath string) (*grammar.Language, error) {
	if name == "auto" {
		return reg.DetectByPath(sourcePath)
	}
	return reg.Lookup(name)
}

// Start loads the view and runs the viewer, or prints one frame in
// print mode. Startup errors are returned; errors once the viewer is running
// end the process through Options.Exit.
func Start(ctx context.Context, opts Options) error {
	if opts.Registry == nil {
		opts.Registry = grammar.Default()
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Exit == nil {
		opts.Exit = os.Exit
	}
	lang, err := ResolveLanguage(opts.Registry, opts.Language, opts.SourcePath)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(opts.SourcePath)
	if err != nil {
		return fmt.Errorf("unable to read file: %w", err)
	}
	view, err := NewView(ctx, src, opts.SourcePath, opts.QueryPath, lang, opts.Config.Display)
	if err != nil {
		return err
	}

	if opts.Print {
		return view.Draw(NewPrintTerminal(opts.Out, opts.Config.Theme), opts.Config.Keymap)
	}

	s := opts.Screen
	if s == nil {
		if s, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("error creating screen: %w", err)
		}
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("error initializing screen: %w", err)
	}
	s.SetStyle(opts.Config.Theme.Plain())
	s.Clear()
	var once sync.Once
	fini := func() { once.Do(s.Fini) }
	defer fini()

	shared := NewShared(view)
	shared.Queue = opts.Config.QueueMutations
	watch := []string{opts.SourcePath}
	if opts.QueryPath != "" {
		watch = append(watch, opts.QueryPath)
	}
	r := &Runner{
		Shared:     shared,
		Term:       NewScreenTerminal(s, opts.Config.Theme),
		Screen:     s,
		Keymap:     opts.Config.Keymap,
		Logger:     opts.Logger,
		WatchPaths: watch,
		Fatal: func(err error) {
			fini()
			fmt.Fprintln(os.Stderr, "tsview:", err)
			opts.Logger.Close()
			opts.Exit(1)
		},
	}
	return r.Run(ctx)
}
