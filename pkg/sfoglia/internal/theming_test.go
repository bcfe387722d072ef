package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#008080")
	require.NoError(t, err)
	require.Equal(t, sdl.Color{R: 0, G: 0x80, B: 0x80, A: 255}, c)

	c, err = ParseHexColor("ffFFff")
	require.NoError(t, err)
	require.Equal(t, sdl.Color{R: 255, G: 255, B: 255, A: 255}, c)

	_, err = ParseHexColor("#fff")
	require.Error(t, err)

	_, err = ParseHexColor("#zzzzzz")
	require.Error(t, err)
}

func TestHexToColor(t *testing.T) {
	require.Equal(t, sdl.Color{R: 0x12, G: 0x34, B: 0x56, A: 255}, HexToColor(0x123456))
}

func writeThemeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadThemeFile(t *testing.T) {
	path := writeThemeFile(t, `
font = "/mnt/SDCARD/System/fonts/Cannoli.ttf"
background_image = "/mnt/SDCARD/System/bg.png"

[colors]
accent = "#FF8800"
text = "#EEEEEE"
`)

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)
	require.Equal(t, "/mnt/SDCARD/System/fonts/Cannoli.ttf", theme.FontPath)
	require.Equal(t, "/mnt/SDCARD/System/bg.png", theme.BackgroundImagePath)
	require.Equal(t, sdl.Color{R: 0xFF, G: 0x88, B: 0, A: 255}, theme.AccentColor)
	require.Equal(t, sdl.Color{R: 0xEE, G: 0xEE, B: 0xEE, A: 255}, theme.TextColor)

	// Colors absent from the file keep the built-in defaults.
	require.Equal(t, DefaultTheme().HintColor, theme.HintColor)
	require.Equal(t, DefaultTheme().BackgroundColor, theme.BackgroundColor)
}

func TestLoadThemeFile_InvalidColorIgnored(t *testing.T) {
	path := writeThemeFile(t, `
[colors]
accent = "not-a-color"
`)

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultTheme().AccentColor, theme.AccentColor)
}

func TestLoadThemeFile_MissingFile(t *testing.T) {
	_, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
