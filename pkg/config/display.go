package config

import "math"

// Display holds the view settings that keystrokes toggle. It is a value
// type: each view owns its own copy.
type Display struct {
	IndentLevel    int  `toml:"indent"`
	ShowRanges     bool `toml:"show_ranges"`
	ShowSource     bool `toml:"show_source"`
	ShowFieldNames bool `toml:"show_field_names"`
}

// DefaultDisplay returns the startup settings.
func DefaultDisplay() Display {
	return Display{
		IndentLevel:    2,
		ShowRanges:     true,
		ShowSource:     true,
		ShowFieldNames: true,
	}
}

func (d *Display) IncreaseIndent() {
	if d.IndentLevel < math.MaxInt {
		d.IndentLevel++
	}
}

// DecreaseIndent never goes below zero.
func (d *Display) DecreaseIndent() {
	if d.IndentLevel > 0 {
		d.IndentLevel--
	}
}

func (d *Display) ToggleRanges()     { d.ShowRanges = !d.ShowRanges }
func (d *Display) ToggleSource()     { d.ShowSource = !d.ShowSource }
func (d *Display) ToggleFieldNames() { d.ShowFieldNames = !d.ShowFieldNames }
