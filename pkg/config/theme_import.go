package config

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ImportTheme reads a theme file in a known format and converts it to Theme.
// Supported:
// - Base16 YAML (keys base00..base0F)
// - Alacritty YAML (colors.primary/normal/bright)
func ImportTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	content := string(data)
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "base00:"):
		return importBase16(content), nil
	case strings.Contains(lower, "colors:"):
		return importAlacritty(content), nil
	default:
		return Theme{}, errors.New("unrecognized theme format: " + filepath.Base(path))
	}
}

// ThemeByName resolves a builtin theme name or, failing that, a theme file.
func ThemeByName(name string) (Theme, error) {
	if th, ok := BuiltinThemes[name]; ok {
		return th, nil
	}
	if _, err := os.Stat(name); err != nil {
		return Theme{}, errors.New("unknown theme: " + name)
	}
	return ImportTheme(name)
}

var reKVHex = regexp.MustCompile(`^\s*([A-Za-z0-9_.-]+)\s*:\s*['\"]?([#0-9a-fA-Fx]{6,8})['\"]?\s*$`)

func parseHexToColor(v string, fallback tcell.Color) tcell.Color {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, "'\"")
	if strings.HasPrefix(v, "#") {
		v = v[1:]
	} else if strings.HasPrefix(strings.ToLower(v), "0x") {
		v = v[2:]
	}
	if len(v) != 6 {
		return fallback
	}
	if _, err := strconv.ParseInt(v, 16, 32); err != nil {
		return fallback
	}
	return ParseColor("#"+strings.ToLower(v), fallback)
}

// importBase16 maps a Base16 scheme onto tree roles.
func importBase16(s string) Theme {
	bases := map[string]string{}
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		m := reKVHex.FindStringSubmatch(scanner.Text())
		if len(m) == 3 && strings.HasPrefix(strings.ToLower(m[1]), "base") {
			bases[strings.ToLower(m[1])] = m[2]
		}
	}
	t := DefaultTheme()
	get := func(k string, fb tcell.Color) tcell.Color { return parseHexToColor(bases[k], fb) }

	t.Background = get("base00", t.Background)
	t.Foreground = get("base05", t.Foreground)
	t.Help = t.Foreground

	t.Guide = get("base03", t.Guide)
	t.Range = get("base04", t.Range)
	t.Error = get("base08", t.Error)
	t.Field = get("base0a", t.Field)
	t.Source = get("base0c", t.Source)
	t.Capture = get("base0e", t.Capture)

	t.HighlightBG = get("base02", t.HighlightBG)
	t.HighlightFG = t.Foreground
	return t
}

// importAlacritty parses an Alacritty colors YAML fragment.
func importAlacritty(s string) Theme {
	// Very light YAML walker based on indentation and key:value lines
	type entry struct {
		indent int
		key    string
	}
	var stack []entry
	kv := map[string]string{}
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		for len(stack) > 0 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		if m := reKVHex.FindStringSubmatch(line); len(m) == 3 {
			keys := make([]string, 0, len(stack)+1)
			for _, e := range stack {
				keys = append(keys, e.key)
			}
			keys = append(keys, strings.ToLower(m[1]))
			kv[strings.Join(keys, ".")] = m[2]
			continue
		}
		// section header without value
		if i := strings.Index(line, ":"); i >= 0 && i == len(line)-1 {
			stack = append(stack, entry{indent: indent, key: strings.ToLower(strings.TrimSpace(line[:i]))})
		}
	}

	t := DefaultTheme()
	getPath := func(p string, fb tcell.Color) tcell.Color {
		if v, ok := kv[strings.ToLower(p)]; ok {
			return parseHexToColor(v, fb)
		}
		return fb
	}

	t.Background = getPath("colors.primary.background", t.Background)
	t.Foreground = getPath("colors.primary.foreground", t.Foreground)
	t.Help = t.Foreground

	t.Guide = getPath("colors.bright.black", t.Guide)
	t.Range = t.Guide
	t.Error = getPath("colors.normal.red", t.Error)
	t.Field = getPath("colors.normal.yellow", t.Field)
	t.Capture = getPath("colors.normal.magenta", t.Capture)
	t.Source = getPath("colors.normal.cyan", t.Source)

	t.HighlightBG = getPath("colors.bright.yellow", t.HighlightBG)
	t.HighlightFG = getPath("colors.primary.background", t.HighlightFG)
	return t
}
