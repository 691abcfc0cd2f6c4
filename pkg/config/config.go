package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// Command names a keyboard action.
type Command string

const (
	CmdIncreaseIndent Command = "increase_indent"
	CmdDecreaseIndent Command = "decrease_indent"
	CmdToggleRanges   Command = "toggle_ranges"
	CmdToggleSource   Command = "toggle_source"
	CmdReload         Command = "reload"
)

// Commands lists the bindable commands in help-footer order.
var Commands = []Command{CmdIncreaseIndent, CmdDecreaseIndent, CmdToggleRanges, CmdToggleSource, CmdReload}

// Keymap binds commands to single characters.
type Keymap map[Command]rune

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		CmdIncreaseIndent: '>',
		CmdDecreaseIndent: '<',
		CmdToggleRanges:   'n',
		CmdToggleSource:   's',
		CmdReload:         'r',
	}
}

// Lookup returns the command bound to r.
func (k Keymap) Lookup(r rune) (Command, bool) {
	for cmd, b := range k {
		if b == r {
			return cmd, true
		}
	}
	return "", false
}

// Config holds user configuration values.
type Config struct {
	Display        Display
	Theme          Theme
	Keymap         Keymap
	QueueMutations bool
}

// Default returns a Config with default display settings, theme and keys.
func Default() *Config {
	return &Config{Display: DefaultDisplay(), Theme: DefaultTheme(), Keymap: DefaultKeymap()}
}

// file mirrors the on-disk TOML layout.
type file struct {
	Display        Display           `toml:"display"`
	Keymap         map[string]string `toml:"keymap"`
	QueueMutations bool              `toml:"queue_mutations"`
	Theme          struct {
		Name   string            `toml:"name"`
		Colors map[string]string `toml:"colors"`
	} `toml:"theme"`
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	// Keys absent from the file keep their default values.
	f := file{Display: cfg.Display}
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if f.Display.IndentLevel < 0 {
		return nil, fmt.Errorf("%s: indent must not be negative", path)
	}
	cfg.Display = f.Display
	cfg.QueueMutations = f.QueueMutations
	if f.Theme.Name != "" {
		th, err := ThemeByName(f.Theme.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Theme = th
	}
	if err := cfg.Theme.Apply(f.Theme.Colors); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Keymap.apply(f.Keymap); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault attempts to read ~/.tsview/config.toml.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath is where LoadDefault looks for the configuration file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tsview", "config.toml"), nil
}

func (k Keymap) apply(bindings map[string]string) error {
	known := map[Command]bool{}
	for _, c := range Commands {
		known[c] = true
	}
	for name, binding := range bindings {
		cmd := Command(name)
		if !known[cmd] {
			return errors.New("unknown command in keymap: " + name)
		}
		r, err := ParseKeybinding(binding)
		if err != nil {
			return err
		}
		k[cmd] = r
	}
	seen := map[rune]Command{}
	cmds := make([]string, 0, len(k))
	for cmd := range k {
		cmds = append(cmds, string(cmd))
	}
	sort.Strings(cmds)
	for _, name := range cmds {
		r := k[Command(name)]
		if other, dup := seen[r]; dup {
			return fmt.Errorf("key %q bound to both %s and %s", r, other, name)
		}
		seen[r] = Command(name)
	}
	return nil
}

// ParseKeybinding converts a binding such as ">" into its rune. Exactly one
// printable character is accepted.
func ParseKeybinding(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New("invalid keybinding: " + s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || r < ' ' || r == 0x7f {
		return 0, errors.New("invalid keybinding: " + s)
	}
	return r, nil
}
