package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"example.com/tsview/internal/app"
	"example.com/tsview/pkg/config"
	"example.com/tsview/pkg/grammar"
	"example.com/tsview/pkg/logs"
	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var version = semver.Version{
	Major: 0,
	Minor: 3,
	Patch: 0,
	Build: semver.Commit(),
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "tsview:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		themeName  string
		indent     int
		noRanges   bool
		noSource   bool
		noFields   bool
		queue      bool
		printOnce  bool
	)
	cmd := &cobra.Command{
		Use:   "tsview <language> <source> [query]",
		Short: "Live tree-sitter syntax tree viewer",
		Long: `Show the syntax tree of a source file as indented text, highlighting
nodes captured by an optional tree-sitter query. The view redraws whenever
the source or query file is written.

Language is one of the bundled grammars or "auto" to pick by extension.`,
		Version:       version.Core(),
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("no language passed")
			}
			if len(args) < 2 {
				return errors.New("no source path passed")
			}
			var cfg *config.Config
			var err error
			if configPath != "" {
				cfg, err = config.Load(configPath)
			} else {
				cfg, err = config.LoadDefault()
			}
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("indent") {
				if indent < 0 {
					return errors.New("--indent must not be negative")
				}
				cfg.Display.IndentLevel = indent
			}
			if noRanges {
				cfg.Display.ShowRanges = false
			}
			if noSource {
				cfg.Display.ShowSource = false
			}
			if noFields {
				cfg.Display.ShowFieldNames = false
			}
			if queue {
				cfg.QueueMutations = true
			}
			if themeName != "" {
				th, err := config.ThemeByName(themeName)
				if err != nil {
					return err
				}
				cfg.Theme = th
			}
			opts := app.Options{
				Language:   args[0],
				SourcePath: args[1],
				Config:     cfg,
				Print:      printOnce,
				Out:        cmd.OutOrStdout(),
				Registry:   grammar.Default(),
				Logger:     logs.NewFromEnv(),
			}
			if len(args) > 2 {
				opts.QueryPath = args[2]
			}
			defer opts.Logger.Close()
			return app.Start(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "configuration file (default ~/.tsview/config.toml)")
	f.StringVar(&themeName, "theme", "", "builtin theme name or Base16/Alacritty theme file")
	f.IntVar(&indent, "indent", 2, "indentation width per tree level")
	f.BoolVar(&noRanges, "no-ranges", false, "start with byte ranges hidden")
	f.BoolVar(&noSource, "no-source", false, "start with source text hidden")
	f.BoolVar(&noFields, "no-fields", false, "hide field names")
	f.BoolVar(&queue, "queue", false, "wait for a busy view instead of dropping the event")
	f.BoolVarP(&printOnce, "print", "p", false, "print the tree once and exit")
	cmd.AddCommand(newLanguagesCmd())
	return cmd
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the bundled grammars",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range grammar.Default().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
