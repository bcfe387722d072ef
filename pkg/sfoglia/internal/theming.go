package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the paged container.
// Colors typically come from CFW theme files loaded via LoadThemeFile.
type Theme struct {
	AccentColor         sdl.Color // Active page dot, scroll indicator
	TextColor           sdl.Color // Title and page counter text
	HintColor           sdl.Color // Footer help text, inactive page dots
	BackgroundColor     sdl.Color // Screen background color
	PlaceholderColor    sdl.Color // Glyph tint for unmaterialized pages
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Path to the background image
}

// DefaultTheme returns the fallback theme used when no CFW theme file is
// available.
func DefaultTheme() Theme {
	return Theme{
		AccentColor:      HexToColor(0x008080),
		TextColor:        HexToColor(0xFFFFFF),
		HintColor:        HexToColor(0x9A9A9A),
		BackgroundColor:  HexToColor(0x000000),
		PlaceholderColor: HexToColor(0x3C3C3C),
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// themeFile is the TOML shape of a theme file:
//
//	font = "/mnt/SDCARD/System/fonts/Cannoli.ttf"
//	background_image = "/mnt/SDCARD/System/bg.png"
//
//	[colors]
//	accent = "#008080"
//	text = "#FFFFFF"
//	hint = "#9A9A9A"
//	background = "#000000"
//	placeholder = "#3C3C3C"
type themeFile struct {
	Font            string `toml:"font"`
	BackgroundImage string `toml:"background_image"`
	Colors          struct {
		Accent      string `toml:"accent"`
		Text        string `toml:"text"`
		Hint        string `toml:"hint"`
		Background  string `toml:"background"`
		Placeholder string `toml:"placeholder"`
	} `toml:"colors"`
}

// LoadThemeFile reads a TOML theme file. Colors missing from the file keep
// their DefaultTheme values, so partial themes are fine.
func LoadThemeFile(path string) (Theme, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}

	theme := DefaultTheme()
	theme.FontPath = tf.Font
	theme.BackgroundImagePath = tf.BackgroundImage

	assign := func(dst *sdl.Color, raw string) {
		if raw == "" {
			return
		}
		if c, err := ParseHexColor(raw); err == nil {
			*dst = c
		} else {
			GetInternalLogger().Warn("Ignoring invalid theme color", "value", raw, "error", err)
		}
	}

	assign(&theme.AccentColor, tf.Colors.Accent)
	assign(&theme.TextColor, tf.Colors.Text)
	assign(&theme.HintColor, tf.Colors.Hint)
	assign(&theme.BackgroundColor, tf.Colors.Background)
	assign(&theme.PlaceholderColor, tf.Colors.Placeholder)

	return theme, nil
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB".
func ParseHexColor(s string) (sdl.Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return sdl.Color{}, fmt.Errorf("hex color %q: want 6 digits", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	return HexToColor(uint32(v)), nil
}
