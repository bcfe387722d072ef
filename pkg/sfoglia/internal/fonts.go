package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes holds the point sizes opened for each role.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

// DefaultFontSizes matches the proportions used across stock CFW themes.
var DefaultFontSizes = FontSizes{Large: 40, Medium: 30, Small: 20}

// FontSet holds the opened fonts shared by all components.
type FontSet struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

// Fonts is the shared font set, populated by Init.
var Fonts FontSet

func initFonts(fontPath string, sizes FontSizes) {
	if fontPath == "" {
		GetInternalLogger().Warn("No theme font configured; text rendering disabled")
		return
	}

	open := func(size int) *ttf.Font {
		font, err := ttf.OpenFont(fontPath, size)
		if err != nil {
			GetInternalLogger().Error("Failed to open font", "path", fontPath, "size", size, "error", err)
			return nil
		}
		return font
	}

	Fonts = FontSet{
		LargeFont:  open(sizes.Large),
		MediumFont: open(sizes.Medium),
		SmallFont:  open(sizes.Small),
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
