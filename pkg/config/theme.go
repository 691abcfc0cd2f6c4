package config

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme represents configurable colors for each part of a rendered tree line.
type Theme struct {
	// Base UI
	Background tcell.Color
	Foreground tcell.Color

	// Indentation guides and byte ranges are drawn dimmed in these colors.
	Guide tcell.Color
	Range tcell.Color

	Field   tcell.Color
	Error   tcell.Color
	Capture tcell.Color
	Source  tcell.Color
	Help    tcell.Color

	// Nodes inside a captured region
	HighlightBG tcell.Color
	HighlightFG tcell.Color
}

// DefaultTheme returns the built-in theme on ANSI palette colors.
func DefaultTheme() Theme {
	return Theme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,

		Guide: tcell.ColorGray,
		Range: tcell.ColorGray,

		Field:   tcell.ColorOlive,
		Error:   tcell.ColorMaroon,
		Capture: tcell.ColorPurple,
		Source:  tcell.ColorTeal,
		Help:    tcell.ColorDefault,

		HighlightBG: tcell.ColorYellow,
		HighlightFG: tcell.ColorBlack,
	}
}

// TerminalTheme leaves every color to the terminal's defaults except the
// highlight background, so the tree reads as plain text.
func TerminalTheme() Theme {
	return Theme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		Guide:       tcell.ColorDefault,
		Range:       tcell.ColorDefault,
		Field:       tcell.ColorDefault,
		Error:       tcell.ColorRed,
		Capture:     tcell.ColorDefault,
		Source:      tcell.ColorDefault,
		Help:        tcell.ColorDefault,
		HighlightBG: tcell.ColorYellow,
		HighlightFG: tcell.ColorDefault,
	}
}

// BuiltinThemes exposes a couple of presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
	"dark": {
		Background: tcell.ColorBlack,
		Foreground: tcell.ColorWhite,

		Guide: tcell.ColorDimGray,
		Range: tcell.ColorSilver,

		Field:   tcell.ColorLightYellow,
		Error:   tcell.ColorRed,
		Capture: tcell.ColorViolet,
		Source:  tcell.ColorLightCyan,
		Help:    tcell.ColorSilver,

		HighlightBG: tcell.ColorDarkOliveGreen,
		HighlightFG: tcell.ColorWhite,
	},
}

// roles maps config keys to theme fields.
func (t *Theme) roles() map[string]*tcell.Color {
	return map[string]*tcell.Color{
		"background":   &t.Background,
		"foreground":   &t.Foreground,
		"guide":        &t.Guide,
		"range":        &t.Range,
		"field":        &t.Field,
		"error":        &t.Error,
		"capture":      &t.Capture,
		"source":       &t.Source,
		"help":         &t.Help,
		"highlight_bg": &t.HighlightBG,
		"highlight_fg": &t.HighlightFG,
	}
}

// Apply overrides colors by role name, e.g. {"field": "#d29922"}.
func (t *Theme) Apply(colors map[string]string) error {
	roles := t.roles()
	for role, value := range colors {
		dst, ok := roles[strings.ToLower(role)]
		if !ok {
			return fmt.Errorf("unknown theme color %q", role)
		}
		c := ParseColor(value, tcell.ColorDefault)
		if c == tcell.ColorDefault && !strings.EqualFold(value, "default") {
			return fmt.Errorf("invalid color %q for %s", value, role)
		}
		*dst = c
	}
	return nil
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	// tcell.GetColor supports W3C names or #RRGGBB (case-insensitive)
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// Style helpers used by terminals.

// Plain is the base style for unstyled text.
func (t Theme) Plain() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Foreground).Background(t.Background)
}

// Highlighted puts s on the highlight background. Node kinds, which have
// no color of their own, also take the highlight foreground.
func (t Theme) Highlighted(s tcell.Style, plain bool) tcell.Style {
	s = s.Background(t.HighlightBG)
	if plain {
		s = s.Foreground(t.HighlightFG)
	}
	return s
}
