package golay

import (
	"encoding/json"
	"fmt"
	"os"
)

// The theme boundary: per component id, a JSON object of unit strings.
//
//	{
//	  "base_size": 16,
//	  "components": {
//	    "sidebar": {"position": "absolute", "size": "fixed",
//	                "left": "0px", "top": "0px", "width": "18rb",
//	                "min_width": "120px"}
//	  }
//	}
//
// A component the theme does not mention resolves with the default fill
// spec. A component with a malformed entry also falls back to the default
// fill spec; the problem is reported as a ThemeWarning, not an error, so one
// bad entry cannot take the whole theme down.

// ThemeEntry mirrors the JSON shape of one component's layout block. Empty
// strings mean absent.
type ThemeEntry struct {
	Position string `json:"position,omitempty"`
	Size     string `json:"size,omitempty"`

	Left   string `json:"left,omitempty"`
	Top    string `json:"top,omitempty"`
	Right  string `json:"right,omitempty"`
	Bottom string `json:"bottom,omitempty"`

	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`

	MinWidth  string `json:"min_width,omitempty"`
	MaxWidth  string `json:"max_width,omitempty"`
	MinHeight string `json:"min_height,omitempty"`
	MaxHeight string `json:"max_height,omitempty"`
}

// Theme is the parsed layout side of a theme file.
type Theme struct {
	BaseSize   float64                    `json:"base_size,omitempty"`
	Components map[ComponentID]ThemeEntry `json:"components"`
}

// ThemeWarning reports one theme entry that could not be used and fell back
// to the default fill spec.
type ThemeWarning struct {
	Component ComponentID
	Field     string
	Err       error
}

func (w ThemeWarning) String() string {
	return fmt.Sprintf("%s.%s: %v", w.Component, w.Field, w.Err)
}

// ParseTheme decodes theme JSON into a spec table ready for Engine.SetProps.
// Malformed component entries degrade to DefaultProps and are reported in
// the warning list. The returned error covers only undecodable JSON.
func ParseTheme(data []byte) (*Theme, map[ComponentID]LayoutProps, []ThemeWarning, error) {
	var theme Theme
	if err := json.Unmarshal(data, &theme); err != nil {
		return nil, nil, nil, fmt.Errorf("golay: decoding theme: %w", err)
	}
	if theme.BaseSize <= 0 {
		theme.BaseSize = DefaultBaseSize
	}

	table := make(map[ComponentID]LayoutProps, len(theme.Components))
	var warnings []ThemeWarning
	for id, entry := range theme.Components {
		props, warn := entry.Props()
		if warn != nil {
			warn.Component = id
			warnings = append(warnings, *warn)
			props = DefaultProps()
		}
		table[id] = props
	}
	return &theme, table, warnings, nil
}

// LoadThemeFile reads and parses a theme file from disk.
func LoadThemeFile(path string) (*Theme, map[ComponentID]LayoutProps, []ThemeWarning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("golay: reading theme: %w", err)
	}
	return ParseTheme(data)
}

// Props converts one theme entry into a LayoutProps. The returned warning is
// non-nil when any field is malformed; the caller decides the fallback.
func (e ThemeEntry) Props() (LayoutProps, *ThemeWarning) {
	props := LayoutProps{
		Position: PositionAbsolute,
		Size:     SizeFixed,
	}

	switch e.Position {
	case "", "absolute":
		props.Position = PositionAbsolute
	case "relative":
		props.Position = PositionRelative
	default:
		return props, &ThemeWarning{Field: "position", Err: fmt.Errorf("unknown position mode %q", e.Position)}
	}

	switch e.Size {
	case "", "fixed":
		props.Size = SizeFixed
	case "fill":
		props.Size = SizeFill
	case "fit-content":
		props.Size = SizeFitContent
	default:
		return props, &ThemeWarning{Field: "size", Err: fmt.Errorf("unknown size mode %q", e.Size)}
	}

	fields := []struct {
		name  string
		value string
		dst   **Unit
	}{
		{"left", e.Left, &props.Left},
		{"top", e.Top, &props.Top},
		{"right", e.Right, &props.Right},
		{"bottom", e.Bottom, &props.Bottom},
		{"width", e.Width, &props.Width},
		{"height", e.Height, &props.Height},
		{"min_width", e.MinWidth, &props.MinWidth},
		{"max_width", e.MaxWidth, &props.MaxWidth},
		{"min_height", e.MinHeight, &props.MinHeight},
		{"max_height", e.MaxHeight, &props.MaxHeight},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		u, err := ParseUnit(f.value)
		if err != nil {
			return props, &ThemeWarning{Field: f.name, Err: err}
		}
		unit := u
		*f.dst = &unit
	}

	return props, nil
}
