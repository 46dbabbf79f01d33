// Package theme loads named styles from TOML files.
//
// A theme file maps style names to color/attribute specs:
//
//	[styles.default]
//	fg = "#d8d8d8"
//	bg = "#1c1c1c"
//
//	[styles."window.focused"]
//	fg = "white"
//	bold = true
package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/paneview/internal/screen"
)

// styleSpec is the on-disk form of one style.
type styleSpec struct {
	FG        string `toml:"fg"`
	BG        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Dim       bool   `toml:"dim"`
	Underline bool   `toml:"underline"`
	Reverse   bool   `toml:"reverse"`
}

// fileTheme is the on-disk form of a theme.
type fileTheme struct {
	Styles map[string]styleSpec `toml:"styles"`
}

// Theme resolves style names to concrete styles.
type Theme struct {
	styles map[string]screen.Style
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{styles: map[string]screen.Style{
		"default":        screen.DefaultStyle(),
		"window":         screen.DefaultStyle(),
		"window.focused": screen.DefaultStyle().WithForeground(screen.ColorWhite).Bold(),
		"scrollbar":      screen.DefaultStyle().Dim(),
		"float": screen.DefaultStyle().
			WithForeground(screen.ColorBlack).
			WithBackground(screen.ColorGray),
	}}
}

// Load reads a theme file and overlays it on the built-in theme. A
// missing file is not an error; the built-in theme is returned.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses TOML theme data, overlaid on the built-in theme.
func Parse(data []byte) (*Theme, error) {
	var file fileTheme
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	t := Default()
	for name, spec := range file.Styles {
		style, err := resolveSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		t.styles[name] = style
	}
	return t, nil
}

// Style returns the style registered under name, falling back to the
// default style.
func (t *Theme) Style(name string) screen.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return t.styles["default"]
}

// Has reports whether a style is registered under name.
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// resolveSpec converts an on-disk spec to a style.
func resolveSpec(spec styleSpec) (screen.Style, error) {
	style := screen.DefaultStyle()

	if spec.FG != "" {
		fg, err := parseColor(spec.FG)
		if err != nil {
			return screen.Style{}, err
		}
		style.Foreground = fg
	}
	if spec.BG != "" {
		bg, err := parseColor(spec.BG)
		if err != nil {
			return screen.Style{}, err
		}
		style.Background = bg
	}

	if spec.Bold {
		style = style.Bold()
	}
	if spec.Dim {
		style = style.Dim()
	}
	if spec.Underline {
		style = style.Underline()
	}
	if spec.Reverse {
		style = style.Reverse()
	}

	return style, nil
}

// namedColors maps color names accepted in theme files.
var namedColors = map[string]screen.Color{
	"black":   screen.ColorBlack,
	"white":   screen.ColorWhite,
	"red":     screen.ColorRed,
	"green":   screen.ColorGreen,
	"blue":    screen.ColorBlue,
	"yellow":  screen.ColorYellow,
	"cyan":    screen.ColorCyan,
	"magenta": screen.ColorMagenta,
	"gray":    screen.ColorGray,
}

// parseColor accepts "default", a named color, or a hex string.
func parseColor(s string) (screen.Color, error) {
	if s == "default" {
		return screen.ColorDefault, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	return screen.ColorFromHex(s)
}
